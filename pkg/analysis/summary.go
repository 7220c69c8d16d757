package analysis

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"

	"github.com/beaconlabs/att-stats/pkg/slotdata"
)

// SummaryRow is the per-slot attestation coverage and reward summary.
type SummaryRow struct {
	Slot                phase0.Slot `csv:"slot"`
	Graffiti            string      `csv:"graffiti"`
	NumAttestations     int         `csv:"num_attestations"`
	UselessAttestations int         `csv:"useless_attestations"`
	ValidatorsCovered   int         `csv:"validators_covered"`
	BlockReward         phase0.Gwei `csv:"block_reward"`
}

// Summarize builds the summary row for one block reward record. An
// attestation is useless when its reward map is empty: it contributed no new
// votes. Validators covered counts rewarded validators across the previous
// and current epoch.
func Summarize(slot phase0.Slot, record *slotdata.RewardRecord) SummaryRow {
	useless := 0
	for _, rewards := range record.PerAttestationRewards {
		if len(rewards) == 0 {
			useless++
		}
	}
	return SummaryRow{
		Slot:                slot,
		Graffiti:            record.Graffiti,
		NumAttestations:     len(record.PerAttestationRewards),
		UselessAttestations: useless,
		ValidatorsCovered:   len(record.PrevEpochRewards) + len(record.CurrEpochRewards),
		BlockReward:         record.Total,
	}
}
