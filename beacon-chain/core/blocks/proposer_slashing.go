// Package blocks contains block processing libraries according to
// the Ethereum beacon chain spec.
package blocks

import (
	"context"
	"fmt"

	"github.com/castellanlabs/castellan/beacon-chain/core/helpers"
	"github.com/castellanlabs/castellan/beacon-chain/core/signing"
	coreTime "github.com/castellanlabs/castellan/beacon-chain/core/time"
	"github.com/castellanlabs/castellan/beacon-chain/state"
	"github.com/castellanlabs/castellan/config/params"
	"github.com/castellanlabs/castellan/consensus-types/containers"
	"github.com/castellanlabs/castellan/time/slots"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
)

var (
	// ErrSlotMismatch returned when the two headers are for different slots.
	ErrSlotMismatch = errors.New("mismatched header slots")
	// ErrProposerMismatch returned when the two headers name different proposers.
	ErrProposerMismatch = errors.New("mismatched proposer indices")
	// ErrIdenticalHeaders returned when the two headers are structurally equal.
	ErrIdenticalHeaders = errors.New("expected slashing headers to differ")
	// ErrInvalidProposerIndex returned when the accused index is outside the registry.
	ErrInvalidProposerIndex = errors.New("validator index out of registry range")
	// ErrNotSlashable returned when the accused validator cannot be slashed at the current epoch.
	ErrNotSlashable = errors.New("validator is not slashable")
)

type slashValidatorFunc func(
	ctx context.Context,
	st *state.BeaconState,
	vid types.ValidatorIndex,
	penaltyQuotient uint64,
	whistleBlowerQuotient uint64,
) (*state.BeaconState, error)

// ProcessProposerSlashings is one of the operations performed
// on each processed beacon block to slash proposers based on
// slashing conditions if any slashable events occurred.
//
// Spec pseudocode definition:
//  def process_proposer_slashing(state: BeaconState, proposer_slashing: ProposerSlashing) -> None:
//    header_1 = proposer_slashing.signed_header_1.message
//    header_2 = proposer_slashing.signed_header_2.message
//
//    # Verify header slots match
//    assert header_1.slot == header_2.slot
//    # Verify header proposer indices match
//    assert header_1.proposer_index == header_2.proposer_index
//    # Verify the headers are different
//    assert header_1 != header_2
//    # Verify the proposer is slashable
//    proposer = state.validators[header_1.proposer_index]
//    assert is_slashable_validator(proposer, get_current_epoch(state))
//    # Verify signatures
//    for signed_header in (proposer_slashing.signed_header_1, proposer_slashing.signed_header_2):
//        domain = get_domain(state, DOMAIN_BEACON_PROPOSER, compute_epoch_at_slot(signed_header.message.slot))
//        signing_root = compute_signing_root(signed_header.message, domain)
//        assert bls.Verify(proposer.pubkey, signing_root, signed_header.signature)
//
//    slash_validator(state, header_1.proposer_index)
func ProcessProposerSlashings(
	ctx context.Context,
	beaconState *state.BeaconState,
	slashings []*containers.ProposerSlashing,
	slashFunc slashValidatorFunc,
) (*state.BeaconState, error) {
	var err error
	for _, slashing := range slashings {
		beaconState, err = ProcessProposerSlashing(ctx, beaconState, slashing, slashFunc)
		if err != nil {
			return nil, err
		}
	}
	return beaconState, nil
}

// ProcessProposerSlashing processes individual proposer slashing.
func ProcessProposerSlashing(
	ctx context.Context,
	beaconState *state.BeaconState,
	slashing *containers.ProposerSlashing,
	slashFunc slashValidatorFunc,
) (*state.BeaconState, error) {
	var err error
	if slashing == nil {
		return nil, errors.New("nil proposer slashings in block body")
	}
	if err = VerifyProposerSlashing(beaconState, slashing); err != nil {
		return nil, errors.Wrap(err, "could not verify proposer slashing")
	}
	cfg := params.BeaconConfig()
	beaconState, err = slashFunc(ctx, beaconState, slashing.Header1.Header.ProposerIndex, cfg.MinSlashingPenaltyQuotient, cfg.WhistleBlowerRewardQuotient)
	if err != nil {
		return nil, errors.Wrapf(err, "could not slash proposer index %d", slashing.Header1.Header.ProposerIndex)
	}
	return beaconState, nil
}

// VerifyProposerSlashing verifies that the data provided from slashing is valid.
// All checks run before the first state mutation, a rejected slashing leaves
// the state untouched.
func VerifyProposerSlashing(
	beaconState *state.BeaconState,
	slashing *containers.ProposerSlashing,
) error {
	if slashing.Header1 == nil || slashing.Header1.Header == nil || slashing.Header2 == nil || slashing.Header2.Header == nil {
		return errors.New("nil header cannot be verified")
	}
	h1 := slashing.Header1.Header
	h2 := slashing.Header2.Header
	if h1.Slot != h2.Slot {
		return errors.Wrapf(ErrSlotMismatch, "received %d and %d", h1.Slot, h2.Slot)
	}
	if h1.ProposerIndex != h2.ProposerIndex {
		return errors.Wrapf(ErrProposerMismatch, "received %d and %d", h1.ProposerIndex, h2.ProposerIndex)
	}
	if *h1 == *h2 {
		return ErrIdenticalHeaders
	}
	if uint64(h1.ProposerIndex) >= uint64(beaconState.NumValidators()) {
		return errors.Wrapf(ErrInvalidProposerIndex, "received %d with registry size %d", h1.ProposerIndex, beaconState.NumValidators())
	}
	proposer, err := beaconState.ValidatorAtIndexReadOnly(h1.ProposerIndex)
	if err != nil {
		return err
	}
	if !helpers.IsSlashableValidatorUsingROVal(proposer, coreTime.CurrentEpoch(beaconState)) {
		return errors.Wrapf(ErrNotSlashable, "validator with key %#x", proposer.PublicKey())
	}
	headers := []*containers.SignedBeaconBlockHeader{slashing.Header1, slashing.Header2}
	for i, header := range headers {
		if err := signing.ComputeDomainVerifySigningRoot(beaconState, h1.ProposerIndex, slots.ToEpoch(header.Header.Slot),
			header.Header, params.BeaconConfig().DomainBeaconProposer, header.Signature[:]); err != nil {
			return errors.Wrap(err, fmt.Sprintf("could not verify beacon block header %d", i+1))
		}
	}
	return nil
}
