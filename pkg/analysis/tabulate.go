package analysis

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"

	"github.com/beaconlabs/att-stats/pkg/slotdata"
)

// TabulatedRow extends the summary with salvage detection against the carried
// parent slot and the reward-ordering heuristic.
type TabulatedRow struct {
	SummaryRow
	ParentSlot phase0.Slot `csv:"parent_slot"`
	SalvageStats
	OrderingStats
}

// Tabulate builds the extended row for one slot from its reward record and
// the matching raw block record. parentSlot is the slot of the previously
// processed file, not the block's chain parent.
func Tabulate(
	slot, parentSlot phase0.Slot,
	record *slotdata.RewardRecord,
	block *slotdata.BlockRecord,
) TabulatedRow {
	return TabulatedRow{
		SummaryRow:    Summarize(slot, record),
		ParentSlot:    parentSlot,
		SalvageStats:  DetectSalvaged(block.Attestations(), record.PerAttestationRewards, parentSlot),
		OrderingStats: OrderingOf(AttestationTotals(record.PerAttestationRewards)),
	}
}
