package state

import (
	"github.com/castellanlabs/castellan/consensus-types/containers"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
)

// SetSlot for the beacon state.
func (b *BeaconState) SetSlot(val types.Slot) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.Slot = val
}

// SetFork version for the beacon chain.
func (b *BeaconState) SetFork(val *containers.Fork) error {
	if val == nil {
		return errors.New("received nil fork")
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.Fork = val.Copy()
	return nil
}

// SetGenesisValidatorsRoot for the beacon state.
func (b *BeaconState) SetGenesisValidatorsRoot(val [32]byte) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.GenesisValidatorsRoot = val
}

// SetLatestBlockHeader in the beacon state.
func (b *BeaconState) SetLatestBlockHeader(val *containers.BeaconBlockHeader) error {
	if val == nil {
		return errors.New("received nil block header")
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.LatestBlockHeader = val.Copy()
	return nil
}

// SetValidators for the beacon state. Updates the entire registry.
func (b *BeaconState) SetValidators(val []*containers.Validator) error {
	if val == nil {
		return ErrNilValidatorsInState
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.Validators = val
	return nil
}

// AppendValidator to the registry alongside its starting balance.
func (b *BeaconState) AppendValidator(val *containers.Validator, balance uint64) error {
	if val == nil {
		return errors.New("received nil validator")
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.Validators = append(b.state.Validators, val)
	b.state.Balances = append(b.state.Balances, balance)
	return nil
}

// UpdateValidatorAtIndex for the beacon state. Updates the validator at the
// provided index to the given value.
func (b *BeaconState) UpdateValidatorAtIndex(idx types.ValidatorIndex, val *containers.Validator) error {
	if val == nil {
		return errors.New("received nil validator")
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.state.Validators)) <= uint64(idx) {
		return errors.Errorf("index %d out of range", idx)
	}
	b.state.Validators[idx] = val
	return nil
}

// SetBalances for the beacon state. Updates the entire list.
func (b *BeaconState) SetBalances(val []uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.Balances = val
	return nil
}

// UpdateBalancesAtIndex for the beacon state. This method updates the balance
// at a specific index to a new value.
func (b *BeaconState) UpdateBalancesAtIndex(idx types.ValidatorIndex, val uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.state.Balances)) <= uint64(idx) {
		return errors.Errorf("index %d out of range", idx)
	}
	b.state.Balances[idx] = val
	return nil
}

// SetSlashings for the beacon state. Updates the entire slashings vector.
func (b *BeaconState) SetSlashings(val []uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.Slashings = val
	return nil
}

// UpdateSlashingsAtIndex for the beacon state. Updates the slashings vector
// at a specific index to a new value.
func (b *BeaconState) UpdateSlashingsAtIndex(idx, val uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.state.Slashings)) <= idx {
		return errors.Errorf("index %d out of range", idx)
	}
	b.state.Slashings[idx] = val
	return nil
}
