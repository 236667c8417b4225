package containers_test

import (
	"testing"

	"github.com/castellanlabs/castellan/consensus-types/containers"
	"github.com/castellanlabs/castellan/testing/assert"
	"github.com/castellanlabs/castellan/testing/require"
	types "github.com/prysmaticlabs/eth2-types"
)

func TestBeaconBlockHeader_HashTreeRoot(t *testing.T) {
	h := &containers.BeaconBlockHeader{
		Slot:          types.Slot(10),
		ProposerIndex: types.ValidatorIndex(3),
		ParentRoot:    [32]byte{'a'},
		StateRoot:     [32]byte{'b'},
		BodyRoot:      [32]byte{'c'},
	}
	r1, err := h.HashTreeRoot()
	require.NoError(t, err)
	r2, err := h.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "Hash tree root is not deterministic")

	h2 := h.Copy()
	h2.BodyRoot = [32]byte{'d'}
	r3, err := h2.HashTreeRoot()
	require.NoError(t, err)
	assert.NotEqual(t, r1, r3, "Distinct headers hashed to the same root")
}

func TestBeaconBlockHeader_StructuralEquality(t *testing.T) {
	h1 := &containers.BeaconBlockHeader{Slot: 5, ProposerIndex: 1, BodyRoot: [32]byte{0xff}}
	h2 := h1.Copy()
	assert.Equal(t, true, *h1 == *h2)
	h2.StateRoot = [32]byte{1}
	assert.Equal(t, false, *h1 == *h2)
}

func TestSignedBeaconBlockHeader_Copy(t *testing.T) {
	s := &containers.SignedBeaconBlockHeader{
		Header:    &containers.BeaconBlockHeader{Slot: 7},
		Signature: [96]byte{0x01},
	}
	cp := s.Copy()
	require.NotNil(t, cp.Header)
	cp.Header.Slot = 8
	assert.Equal(t, types.Slot(7), s.Header.Slot, "Copy aliased the original header")
}

func TestProposerSlashing_Copy(t *testing.T) {
	p := &containers.ProposerSlashing{
		Header1: &containers.SignedBeaconBlockHeader{Header: &containers.BeaconBlockHeader{Slot: 1}},
		Header2: &containers.SignedBeaconBlockHeader{Header: &containers.BeaconBlockHeader{Slot: 1, StateRoot: [32]byte{1}}},
	}
	cp := p.Copy()
	cp.Header2.Header.StateRoot = [32]byte{2}
	assert.Equal(t, [32]byte{1}, p.Header2.Header.StateRoot, "Copy aliased the original slashing")
}

func TestValidator_HashTreeRoot(t *testing.T) {
	v := &containers.Validator{
		PublicKey:                  [48]byte{1, 2, 3},
		WithdrawalCredentials:      [32]byte{4},
		EffectiveBalance:           32 * 1e9,
		ActivationEligibilityEpoch: 0,
		ActivationEpoch:            0,
		ExitEpoch:                  types.Epoch(1<<64 - 1),
		WithdrawableEpoch:          types.Epoch(1<<64 - 1),
	}
	r1, err := v.HashTreeRoot()
	require.NoError(t, err)

	v2 := v.Copy()
	v2.Slashed = true
	r2, err := v2.HashTreeRoot()
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2, "Slashed flag did not affect the root")
}

func TestForkData_HashTreeRoot(t *testing.T) {
	f1 := &containers.ForkData{CurrentVersion: [4]byte{0, 0, 0, 0}}
	f2 := &containers.ForkData{CurrentVersion: [4]byte{1, 0, 0, 0}}
	r1, err := f1.HashTreeRoot()
	require.NoError(t, err)
	r2, err := f2.HashTreeRoot()
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2, "Different fork versions hashed to the same root")
}
