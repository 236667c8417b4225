// Package time provides epoch accessors computed from the beacon state slot.
package time

import (
	"github.com/castellanlabs/castellan/beacon-chain/state"
	"github.com/castellanlabs/castellan/config/params"
	"github.com/castellanlabs/castellan/time/slots"
	types "github.com/prysmaticlabs/eth2-types"
)

// CurrentEpoch returns the current epoch number calculated from
// the slot number stored in beacon state.
//
// Spec pseudocode definition:
//  def get_current_epoch(state: BeaconState) -> Epoch:
//    """
//    Return the current epoch.
//    """
//    return compute_epoch_at_slot(state.slot)
func CurrentEpoch(st *state.BeaconState) types.Epoch {
	return slots.ToEpoch(st.Slot())
}

// PrevEpoch returns the previous epoch number calculated from
// the slot number stored in beacon state. It also checks for
// underflow condition.
//
// Spec pseudocode definition:
//  def get_previous_epoch(state: BeaconState) -> Epoch:
//    """`
//    Return the previous epoch (unless the current epoch is ``GENESIS_EPOCH``).
//    """
//    current_epoch = get_current_epoch(state)
//    return GENESIS_EPOCH if current_epoch == GENESIS_EPOCH else Epoch(current_epoch - 1)
func PrevEpoch(st *state.BeaconState) types.Epoch {
	current := CurrentEpoch(st)
	if current > params.BeaconConfig().GenesisEpoch {
		return current - 1
	}
	return params.BeaconConfig().GenesisEpoch
}

// NextEpoch returns the next epoch number calculated from
// the slot number stored in beacon state.
func NextEpoch(st *state.BeaconState) types.Epoch {
	return CurrentEpoch(st) + 1
}
