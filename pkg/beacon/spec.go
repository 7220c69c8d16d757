package beacon

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"
)

// Spec holds the consensus parameters the aggregators depend on.
type Spec struct {
	SlotsPerEpoch phase0.Slot
}

var Mainnet = Spec{SlotsPerEpoch: 32}

func (s Spec) FirstSlot(epoch phase0.Epoch) phase0.Slot {
	return phase0.Slot(epoch) * s.SlotsPerEpoch
}

func (s Spec) LastSlot(epoch phase0.Epoch) phase0.Slot {
	return s.FirstSlot(epoch+1) - 1
}

func (s Spec) EpochAt(slot phase0.Slot) phase0.Epoch {
	return phase0.Epoch(slot / s.SlotsPerEpoch)
}

// PositionInEpoch returns the slot's offset within its epoch.
func (s Spec) PositionInEpoch(slot phase0.Slot) phase0.Slot {
	return slot % s.SlotsPerEpoch
}
