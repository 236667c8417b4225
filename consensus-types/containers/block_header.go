// Package containers defines the consensus data structures used across the
// beacon chain runtime, along with their SSZ hash tree root methods.
package containers

import (
	ssz "github.com/ferranbt/fastssz"
	types "github.com/prysmaticlabs/eth2-types"
)

// BeaconBlockHeader is a summary of a beacon block carrying the root of its
// body in place of the full body.
type BeaconBlockHeader struct {
	Slot          types.Slot
	ProposerIndex types.ValidatorIndex
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

// HashTreeRoot ssz hashes the BeaconBlockHeader object.
func (b *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockHeader object with a hasher.
func (b *BeaconBlockHeader) HashTreeRootWith(hh *ssz.Hasher) error {
	idx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(uint64(b.Slot))

	// Field (1) 'ProposerIndex'
	hh.PutUint64(uint64(b.ProposerIndex))

	// Field (2) 'ParentRoot'
	hh.PutBytes(b.ParentRoot[:])

	// Field (3) 'StateRoot'
	hh.PutBytes(b.StateRoot[:])

	// Field (4) 'BodyRoot'
	hh.PutBytes(b.BodyRoot[:])

	hh.Merkleize(idx)
	return nil
}

// Copy returns a deep copy of the block header.
func (b *BeaconBlockHeader) Copy() *BeaconBlockHeader {
	if b == nil {
		return nil
	}
	h := *b
	return &h
}

// SignedBeaconBlockHeader is a beacon block header along with the proposer's
// signature over its signing root.
type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader
	Signature [96]byte
}

// HashTreeRoot ssz hashes the SignedBeaconBlockHeader object.
func (s *SignedBeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedBeaconBlockHeader object with a hasher.
func (s *SignedBeaconBlockHeader) HashTreeRootWith(hh *ssz.Hasher) error {
	idx := hh.Index()

	// Field (0) 'Header'
	if s.Header == nil {
		s.Header = &BeaconBlockHeader{}
	}
	if err := s.Header.HashTreeRootWith(hh); err != nil {
		return err
	}

	// Field (1) 'Signature'
	hh.PutBytes(s.Signature[:])

	hh.Merkleize(idx)
	return nil
}

// Copy returns a deep copy of the signed block header.
func (s *SignedBeaconBlockHeader) Copy() *SignedBeaconBlockHeader {
	if s == nil {
		return nil
	}
	return &SignedBeaconBlockHeader{
		Header:    s.Header.Copy(),
		Signature: s.Signature,
	}
}

// ProposerSlashing is evidence that a proposer signed two distinct headers
// for the same slot.
type ProposerSlashing struct {
	Header1 *SignedBeaconBlockHeader
	Header2 *SignedBeaconBlockHeader
}

// HashTreeRoot ssz hashes the ProposerSlashing object.
func (p *ProposerSlashing) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(p)
}

// HashTreeRootWith ssz hashes the ProposerSlashing object with a hasher.
func (p *ProposerSlashing) HashTreeRootWith(hh *ssz.Hasher) error {
	idx := hh.Index()

	// Field (0) 'Header1'
	if p.Header1 == nil {
		p.Header1 = &SignedBeaconBlockHeader{}
	}
	if err := p.Header1.HashTreeRootWith(hh); err != nil {
		return err
	}

	// Field (1) 'Header2'
	if p.Header2 == nil {
		p.Header2 = &SignedBeaconBlockHeader{}
	}
	if err := p.Header2.HashTreeRootWith(hh); err != nil {
		return err
	}

	hh.Merkleize(idx)
	return nil
}

// Copy returns a deep copy of the proposer slashing.
func (p *ProposerSlashing) Copy() *ProposerSlashing {
	if p == nil {
		return nil
	}
	return &ProposerSlashing{
		Header1: p.Header1.Copy(),
		Header2: p.Header2.Copy(),
	}
}
