package analysis

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/beaconlabs/att-stats/pkg/beacon"
	"github.com/beaconlabs/att-stats/pkg/slotdata"
)

// MissedTotals accumulates missed attestations by validator, by subnet and by
// the slot's position within its epoch. Accumulate with Add, then flush with
// the row accessors.
type MissedTotals struct {
	spec       beacon.Spec
	validators map[phase0.ValidatorIndex]int
	subnets    map[uint64]int
	byPosition []int
}

func NewMissedTotals(spec beacon.Spec) *MissedTotals {
	return &MissedTotals{
		spec:       spec,
		validators: make(map[phase0.ValidatorIndex]int),
		subnets:    make(map[uint64]int),
		byPosition: make([]int, spec.SlotsPerEpoch),
	}
}

// Add folds one per-slot missed-attestation record into the totals.
func (t *MissedTotals) Add(slot phase0.Slot, record *slotdata.MissedRecord) {
	t.byPosition[t.spec.PositionInEpoch(slot)] += len(record.All)
	for _, validator := range record.All {
		t.validators[validator]++
	}
	for _, attestation := range record.PerAttestation {
		t.subnets[attestation.Subnet]++
	}
}

type ValidatorMissRow struct {
	ValidatorIndex     phase0.ValidatorIndex `csv:"validator_index"`
	MissedAttestations int                   `csv:"missed_attestations"`
}

type SubnetMissRow struct {
	Subnet             uint64 `csv:"subnet"`
	MissedAttestations int    `csv:"missed_attestations"`
}

type PositionMissRow struct {
	SlotMod            phase0.Slot `csv:"slot_mod"`
	MissedAttestations int         `csv:"missed_attestations"`
}

// ValidatorRows returns per-validator miss counts in ascending validator
// index order, so that reruns produce identical output.
func (t *MissedTotals) ValidatorRows() []ValidatorMissRow {
	indices := maps.Keys(t.validators)
	slices.Sort(indices)
	rows := make([]ValidatorMissRow, len(indices))
	for i, index := range indices {
		rows[i] = ValidatorMissRow{
			ValidatorIndex:     index,
			MissedAttestations: t.validators[index],
		}
	}
	return rows
}

// SubnetRows returns per-subnet miss counts in ascending subnet order.
func (t *MissedTotals) SubnetRows() []SubnetMissRow {
	subnets := maps.Keys(t.subnets)
	slices.Sort(subnets)
	rows := make([]SubnetMissRow, len(subnets))
	for i, subnet := range subnets {
		rows[i] = SubnetMissRow{
			Subnet:             subnet,
			MissedAttestations: t.subnets[subnet],
		}
	}
	return rows
}

// PositionRows returns miss counts for every slot position in the epoch,
// including zero buckets.
func (t *MissedTotals) PositionRows() []PositionMissRow {
	rows := make([]PositionMissRow, len(t.byPosition))
	for position, count := range t.byPosition {
		rows[position] = PositionMissRow{
			SlotMod:            phase0.Slot(position),
			MissedAttestations: count,
		}
	}
	return rows
}
