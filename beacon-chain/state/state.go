// Package state defines the beacon chain state kept in memory by the runtime,
// with guarded read and write access to every field group touched by block
// operation processing.
package state

import (
	"sync"

	"github.com/castellanlabs/castellan/consensus-types/containers"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
)

// ErrNilValidatorsInState returned when the state has a nil validator registry.
var ErrNilValidatorsInState = errors.New("state has nil validator slice")

// Data holds the raw field groups of the beacon state.
type Data struct {
	Slot                  types.Slot
	Fork                  *containers.Fork
	GenesisValidatorsRoot [32]byte
	LatestBlockHeader     *containers.BeaconBlockHeader
	Validators            []*containers.Validator
	Balances              []uint64
	Slashings             []uint64
}

// BeaconState defines a struct containing the beacon chain state with a
// mutex for thread safety.
type BeaconState struct {
	state *Data
	lock  sync.RWMutex
}

// InitializeFromData creates the beacon state from the raw fields. The
// slashings accumulator is sized to EPOCHS_PER_SLASHINGS_VECTOR by the
// caller.
func InitializeFromData(data *Data) (*BeaconState, error) {
	if data == nil {
		return nil, errors.New("received nil state data")
	}
	if data.Fork == nil {
		return nil, errors.New("state data requires a fork")
	}
	if data.LatestBlockHeader == nil {
		return nil, errors.New("state data requires a latest block header")
	}
	return &BeaconState{state: data}, nil
}

// Copy returns a deep copy of the beacon state.
func (b *BeaconState) Copy() *BeaconState {
	b.lock.RLock()
	defer b.lock.RUnlock()

	validators := make([]*containers.Validator, len(b.state.Validators))
	for i, v := range b.state.Validators {
		validators[i] = v.Copy()
	}
	balances := make([]uint64, len(b.state.Balances))
	copy(balances, b.state.Balances)
	slashings := make([]uint64, len(b.state.Slashings))
	copy(slashings, b.state.Slashings)

	return &BeaconState{
		state: &Data{
			Slot:                  b.state.Slot,
			Fork:                  b.state.Fork.Copy(),
			GenesisValidatorsRoot: b.state.GenesisValidatorsRoot,
			LatestBlockHeader:     b.state.LatestBlockHeader.Copy(),
			Validators:            validators,
			Balances:              balances,
			Slashings:             slashings,
		},
	}
}
