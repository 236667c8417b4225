package util

import (
	"github.com/castellanlabs/castellan/beacon-chain/core/signing"
	coreTime "github.com/castellanlabs/castellan/beacon-chain/core/time"
	"github.com/castellanlabs/castellan/beacon-chain/state"
	"github.com/castellanlabs/castellan/config/params"
	"github.com/castellanlabs/castellan/consensus-types/containers"
	"github.com/castellanlabs/castellan/crypto/bls"
	"github.com/castellanlabs/castellan/encoding/bytesutil"
	types "github.com/prysmaticlabs/eth2-types"
)

// SignBlockHeader signs the header with the given key under the proposer
// domain for the epoch of the header slot.
func SignBlockHeader(st *state.BeaconState, header *containers.BeaconBlockHeader, priv bls.SecretKey) (*containers.SignedBeaconBlockHeader, error) {
	epoch := coreTime.CurrentEpoch(st)
	sig, err := signing.ComputeDomainAndSign(st, epoch, header, params.BeaconConfig().DomainBeaconProposer, priv)
	if err != nil {
		return nil, err
	}
	return &containers.SignedBeaconBlockHeader{
		Header:    header,
		Signature: bytesutil.ToBytes96(sig),
	}, nil
}

// GenerateProposerSlashingForValidator for a specific validator index. The
// two headers share the state's slot and differ only in body root.
func GenerateProposerSlashingForValidator(
	bState *state.BeaconState,
	priv bls.SecretKey,
	idx types.ValidatorIndex,
) (*containers.ProposerSlashing, error) {
	header1, err := SignBlockHeader(bState, &containers.BeaconBlockHeader{
		ProposerIndex: idx,
		Slot:          bState.Slot(),
		BodyRoot:      bytesutil.ToBytes32(bytesutil.PadTo([]byte{0, 1, 0}, 32)),
	}, priv)
	if err != nil {
		return nil, err
	}
	header2, err := SignBlockHeader(bState, &containers.BeaconBlockHeader{
		ProposerIndex: idx,
		Slot:          bState.Slot(),
		BodyRoot:      bytesutil.ToBytes32(bytesutil.PadTo([]byte{0, 2, 0}, 32)),
	}, priv)
	if err != nil {
		return nil, err
	}
	return &containers.ProposerSlashing{
		Header1: header1,
		Header2: header2,
	}, nil
}
