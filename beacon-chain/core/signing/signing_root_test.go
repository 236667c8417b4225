package signing_test

import (
	"bytes"
	"testing"

	"github.com/castellanlabs/castellan/beacon-chain/core/signing"
	"github.com/castellanlabs/castellan/config/params"
	"github.com/castellanlabs/castellan/consensus-types/containers"
	"github.com/castellanlabs/castellan/crypto/bls"
	"github.com/castellanlabs/castellan/encoding/bytesutil"
	"github.com/castellanlabs/castellan/testing/assert"
	"github.com/castellanlabs/castellan/testing/require"
	"github.com/castellanlabs/castellan/testing/util"
	types "github.com/prysmaticlabs/eth2-types"
)

func TestSigningRoot_ComputeSigningRoot(t *testing.T) {
	emptyHeader := &containers.BeaconBlockHeader{}
	_, err := signing.ComputeSigningRoot(emptyHeader, bytesutil.PadTo([]byte{'T', 'E', 'S', 'T'}, 32))
	assert.NoError(t, err, "Could not compute signing root of block header")
}

func TestSigningRoot_ComputeDomain(t *testing.T) {
	tests := []struct {
		epoch      uint64
		domainType [4]byte
		domain     []byte
	}{
		{epoch: 1, domainType: [4]byte{4, 0, 0, 0}, domain: []byte{4, 0, 0, 0, 245, 165, 253, 66, 209, 106, 32, 48, 39, 152, 239, 110, 211, 9, 151, 155, 67, 0, 61, 35, 32, 217, 240, 232, 234, 152, 49, 169}},
		{epoch: 2, domainType: [4]byte{4, 0, 0, 0}, domain: []byte{4, 0, 0, 0, 245, 165, 253, 66, 209, 106, 32, 48, 39, 152, 239, 110, 211, 9, 151, 155, 67, 0, 61, 35, 32, 217, 240, 232, 234, 152, 49, 169}},
		{epoch: 2, domainType: [4]byte{5, 0, 0, 0}, domain: []byte{5, 0, 0, 0, 245, 165, 253, 66, 209, 106, 32, 48, 39, 152, 239, 110, 211, 9, 151, 155, 67, 0, 61, 35, 32, 217, 240, 232, 234, 152, 49, 169}},
	}
	for _, tt := range tests {
		if got, err := signing.ComputeDomain(tt.domainType, nil, nil); !bytes.Equal(got, tt.domain) {
			t.Errorf("wanted domain version: %d, got: %d", tt.domain, got)
		} else {
			require.NoError(t, err)
		}
	}
}

func TestSigningRoot_Domain_UsesForkVersionByEpoch(t *testing.T) {
	fork := &containers.Fork{
		PreviousVersion: [4]byte{0, 0, 0, 0},
		CurrentVersion:  [4]byte{1, 0, 0, 0},
		Epoch:           5,
	}
	genesisRoot := bytesutil.PadTo([]byte("genesis"), 32)
	dPrev, err := signing.Domain(fork, 4, params.BeaconConfig().DomainBeaconProposer, genesisRoot)
	require.NoError(t, err)
	dCurr, err := signing.Domain(fork, 5, params.BeaconConfig().DomainBeaconProposer, genesisRoot)
	require.NoError(t, err)
	assert.Equal(t, false, bytes.Equal(dPrev, dCurr), "Expected domains on both sides of the fork boundary to differ")

	wantPrev, err := signing.ComputeDomain(params.BeaconConfig().DomainBeaconProposer, fork.PreviousVersion[:], genesisRoot)
	require.NoError(t, err)
	assert.DeepEqual(t, wantPrev, dPrev)
}

func TestSigningRoot_Domain_NilFork(t *testing.T) {
	_, err := signing.Domain(nil, 0, params.BeaconConfig().DomainBeaconProposer, params.BeaconConfig().ZeroHash[:])
	assert.ErrorContains(t, "nil fork", err)
}

func TestVerifySigningRoot_SignRoundtrip(t *testing.T) {
	priv, err := bls.SecretKeyFromBytes(bytesutil.PadTo([]byte{1, 2, 3, 4}, 32))
	require.NoError(t, err)
	pub := priv.PublicKey().Marshal()
	header := &containers.BeaconBlockHeader{Slot: 10, ProposerIndex: 1}
	d, err := signing.ComputeDomain(params.BeaconConfig().DomainBeaconProposer, nil, nil)
	require.NoError(t, err)
	root, err := signing.ComputeSigningRoot(header, d)
	require.NoError(t, err)
	sig := priv.Sign(root[:]).Marshal()

	require.NoError(t, signing.VerifySigningRoot(header, pub, sig, d))
	require.NoError(t, signing.VerifyBlockHeaderSigningRoot(header, pub, sig, d))

	// A different domain must not verify.
	dOther, err := signing.ComputeDomain(params.BeaconConfig().DomainVoluntaryExit, nil, nil)
	require.NoError(t, err)
	err = signing.VerifySigningRoot(header, pub, sig, dOther)
	require.ErrorContains(t, signing.ErrSigFailedToVerify.Error(), err)
}

func TestComputeDomainVerifySigningRoot_MatchesSigner(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 4)
	idx := types.ValidatorIndex(2)
	header := &containers.BeaconBlockHeader{Slot: 3, ProposerIndex: idx}
	sig, err := signing.ComputeDomainAndSign(beaconState, 0, header, params.BeaconConfig().DomainBeaconProposer, privKeys[idx])
	require.NoError(t, err)
	require.NoError(t, signing.ComputeDomainVerifySigningRoot(beaconState, idx, 0, header, params.BeaconConfig().DomainBeaconProposer, sig))

	// Signature from another validator's key must not verify.
	wrongSig, err := signing.ComputeDomainAndSign(beaconState, 0, header, params.BeaconConfig().DomainBeaconProposer, privKeys[0])
	require.NoError(t, err)
	err = signing.ComputeDomainVerifySigningRoot(beaconState, idx, 0, header, params.BeaconConfig().DomainBeaconProposer, wrongSig)
	require.ErrorContains(t, signing.ErrSigFailedToVerify.Error(), err)
}

func TestVerifyBlockHeaderSigningRoot_NilHeader(t *testing.T) {
	err := signing.VerifyBlockHeaderSigningRoot(nil, nil, nil, nil)
	assert.ErrorContains(t, "nil block header", err)
}
