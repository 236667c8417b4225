package state

import (
	"github.com/castellanlabs/castellan/consensus-types/containers"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
)

// Slot of the current beacon chain state.
func (b *BeaconState) Slot() types.Slot {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.state.Slot
}

// Fork version of the beacon chain.
func (b *BeaconState) Fork() *containers.Fork {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.state.Fork.Copy()
}

// GenesisValidatorsRoot of the beacon chain the state belongs to.
func (b *BeaconState) GenesisValidatorsRoot() [32]byte {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.state.GenesisValidatorsRoot
}

// LatestBlockHeader stored within the beacon state.
func (b *BeaconState) LatestBlockHeader() *containers.BeaconBlockHeader {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.state.LatestBlockHeader.Copy()
}

// Validators participating in consensus on the beacon chain.
//
// WARNING: This method exposes the actual validator registry, mutations leak
// into the state. Use ValidatorAtIndex or ReadFromEveryValidator where a copy
// suffices.
func (b *BeaconState) Validators() []*containers.Validator {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.state.Validators
}

// NumValidators returns the size of the validator registry.
func (b *BeaconState) NumValidators() int {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return len(b.state.Validators)
}

// ValidatorAtIndex is the validator at the provided index, copied so the
// caller may not mutate the registry.
func (b *BeaconState) ValidatorAtIndex(idx types.ValidatorIndex) (*containers.Validator, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if b.state.Validators == nil {
		return nil, ErrNilValidatorsInState
	}
	if uint64(len(b.state.Validators)) <= uint64(idx) {
		return nil, errors.Errorf("index %d out of range", idx)
	}
	return b.state.Validators[idx].Copy(), nil
}

// ValidatorAtIndexReadOnly is the validator at the provided index. This method
// doesn't clone the validator.
func (b *BeaconState) ValidatorAtIndexReadOnly(idx types.ValidatorIndex) (ReadOnlyValidator, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if b.state.Validators == nil {
		return ReadOnlyValidator{}, ErrNilValidatorsInState
	}
	if uint64(len(b.state.Validators)) <= uint64(idx) {
		return ReadOnlyValidator{}, errors.Errorf("index %d out of range", idx)
	}
	return ReadOnlyValidator{validator: b.state.Validators[idx]}, nil
}

// ReadFromEveryValidator reads values from every validator and applies it to
// the provided function.
func (b *BeaconState) ReadFromEveryValidator(f func(idx int, val ReadOnlyValidator) error) error {
	b.lock.RLock()
	validators := b.state.Validators
	b.lock.RUnlock()

	if validators == nil {
		return ErrNilValidatorsInState
	}
	for i, v := range validators {
		if err := f(i, ReadOnlyValidator{validator: v}); err != nil {
			return err
		}
	}
	return nil
}

// Balances of validators participating in consensus on the beacon chain.
func (b *BeaconState) Balances() []uint64 {
	b.lock.RLock()
	defer b.lock.RUnlock()

	res := make([]uint64, len(b.state.Balances))
	copy(res, b.state.Balances)
	return res
}

// BalanceAtIndex of the validator with the provided index.
func (b *BeaconState) BalanceAtIndex(idx types.ValidatorIndex) (uint64, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if uint64(len(b.state.Balances)) <= uint64(idx) {
		return 0, errors.Errorf("index %d out of range", idx)
	}
	return b.state.Balances[idx], nil
}

// Slashings of the validators penalized in the current slashings window.
func (b *BeaconState) Slashings() []uint64 {
	b.lock.RLock()
	defer b.lock.RUnlock()

	res := make([]uint64, len(b.state.Slashings))
	copy(res, b.state.Slashings)
	return res
}

// SlashingAtIndex returns the accumulated slashed balance at the provided
// index of the slashings vector.
func (b *BeaconState) SlashingAtIndex(idx uint64) (uint64, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if uint64(len(b.state.Slashings)) <= idx {
		return 0, errors.Errorf("index %d out of range", idx)
	}
	return b.state.Slashings[idx], nil
}
