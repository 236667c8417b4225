// Package slots provides conversions between slots and epochs.
package slots

import (
	"github.com/castellanlabs/castellan/config/params"
	types "github.com/prysmaticlabs/eth2-types"
)

// ToEpoch returns the epoch number of the input slot.
//
// Spec pseudocode definition:
//  def compute_epoch_at_slot(slot: Slot) -> Epoch:
//    """
//    Return the epoch number at ``slot``.
//    """
//    return Epoch(slot // SLOTS_PER_EPOCH)
func ToEpoch(slot types.Slot) types.Epoch {
	return types.Epoch(slot / params.BeaconConfig().SlotsPerEpoch)
}

// EpochStart returns the first slot number of the given epoch.
//
// Spec pseudocode definition:
//  def compute_start_slot_at_epoch(epoch: Epoch) -> Slot:
//    """
//    Return the start slot of ``epoch``.
//    """
//    return Slot(epoch * SLOTS_PER_EPOCH)
func EpochStart(epoch types.Epoch) types.Slot {
	return types.Slot(epoch) * params.BeaconConfig().SlotsPerEpoch
}

// EpochEnd returns the last slot number of the given epoch.
func EpochEnd(epoch types.Epoch) types.Slot {
	return EpochStart(epoch+1) - 1
}
