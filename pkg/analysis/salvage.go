package analysis

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"

	"github.com/beaconlabs/att-stats/pkg/slotdata"
)

// SalvageStats counts salvaged attestations in a block: rewarded attestations
// whose target slot is older than the parent slot. Such attestations are
// normally unprofitable to include, so a nonzero reward means the proposer
// recovered votes missed by prior proposers.
type SalvageStats struct {
	NumSalvaged     int         `csv:"num_salvaged"`
	SalvagedVotes   int         `csv:"salvaged_votes"`
	SalvagedRewards phase0.Gwei `csv:"salvaged_rewards"`
}

// DetectSalvaged pairs the block body's attestations with their reward maps
// by index, truncating to the shorter of the two lists.
func DetectSalvaged(
	attestations []slotdata.BlockAttestation,
	rewards []slotdata.RewardMap,
	parentSlot phase0.Slot,
) SalvageStats {
	n := len(attestations)
	if len(rewards) < n {
		n = len(rewards)
	}
	var stats SalvageStats
	for i := 0; i < n; i++ {
		if len(rewards[i]) == 0 {
			continue
		}
		if attestations[i].Data.Slot.Slot() < parentSlot {
			stats.NumSalvaged++
			stats.SalvagedVotes += len(rewards[i])
			stats.SalvagedRewards += rewards[i].Sum()
		}
	}
	return stats
}
