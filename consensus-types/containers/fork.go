package containers

import (
	ssz "github.com/ferranbt/fastssz"
	types "github.com/prysmaticlabs/eth2-types"
)

// Fork carries the previous and current fork versions along with the epoch
// of the most recent fork.
type Fork struct {
	PreviousVersion [4]byte
	CurrentVersion  [4]byte
	Epoch           types.Epoch
}

// HashTreeRoot ssz hashes the Fork object.
func (f *Fork) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(f)
}

// HashTreeRootWith ssz hashes the Fork object with a hasher.
func (f *Fork) HashTreeRootWith(hh *ssz.Hasher) error {
	idx := hh.Index()

	// Field (0) 'PreviousVersion'
	hh.PutBytes(f.PreviousVersion[:])

	// Field (1) 'CurrentVersion'
	hh.PutBytes(f.CurrentVersion[:])

	// Field (2) 'Epoch'
	hh.PutUint64(uint64(f.Epoch))

	hh.Merkleize(idx)
	return nil
}

// Copy returns a deep copy of the fork.
func (f *Fork) Copy() *Fork {
	if f == nil {
		return nil
	}
	nf := *f
	return &nf
}

// ForkData binds a fork version to a genesis validators root for domain
// separation across chains.
type ForkData struct {
	CurrentVersion        [4]byte
	GenesisValidatorsRoot [32]byte
}

// HashTreeRoot ssz hashes the ForkData object.
func (f *ForkData) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(f)
}

// HashTreeRootWith ssz hashes the ForkData object with a hasher.
func (f *ForkData) HashTreeRootWith(hh *ssz.Hasher) error {
	idx := hh.Index()

	// Field (0) 'CurrentVersion'
	hh.PutBytes(f.CurrentVersion[:])

	// Field (1) 'GenesisValidatorsRoot'
	hh.PutBytes(f.GenesisValidatorsRoot[:])

	hh.Merkleize(idx)
	return nil
}
