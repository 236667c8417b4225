package blocks_test

import (
	"context"
	"testing"

	"github.com/castellanlabs/castellan/beacon-chain/core/blocks"
	"github.com/castellanlabs/castellan/beacon-chain/core/signing"
	"github.com/castellanlabs/castellan/beacon-chain/core/validators"
	"github.com/castellanlabs/castellan/beacon-chain/state"
	"github.com/castellanlabs/castellan/config/params"
	"github.com/castellanlabs/castellan/consensus-types/containers"
	"github.com/castellanlabs/castellan/testing/assert"
	"github.com/castellanlabs/castellan/testing/require"
	"github.com/castellanlabs/castellan/testing/util"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
)

func TestProcessProposerSlashings_UnmatchedHeaderSlots(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 20)
	slashings := []*containers.ProposerSlashing{
		{
			Header1: &containers.SignedBeaconBlockHeader{
				Header: &containers.BeaconBlockHeader{
					ProposerIndex: 1,
					Slot:          params.BeaconConfig().SlotsPerEpoch + 1,
				},
			},
			Header2: &containers.SignedBeaconBlockHeader{
				Header: &containers.BeaconBlockHeader{
					ProposerIndex: 1,
					Slot:          0,
				},
			},
		},
	}
	beaconState.SetSlot(0)

	_, err := blocks.ProcessProposerSlashings(context.Background(), beaconState, slashings, validators.SlashValidator)
	assert.ErrorContains(t, "mismatched header slots", err)
	assert.Equal(t, true, errors.Is(err, blocks.ErrSlotMismatch))
}

func TestProcessProposerSlashings_HeadersInDifferentEpochs(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 4)
	idx := types.ValidatorIndex(1)
	header1, err := util.SignBlockHeader(beaconState, &containers.BeaconBlockHeader{
		ProposerIndex: idx,
		Slot:          0,
	}, privKeys[idx])
	require.NoError(t, err)
	header2, err := util.SignBlockHeader(beaconState, &containers.BeaconBlockHeader{
		ProposerIndex: idx,
		Slot:          params.BeaconConfig().SlotsPerEpoch,
	}, privKeys[idx])
	require.NoError(t, err)

	slashing := &containers.ProposerSlashing{Header1: header1, Header2: header2}
	err = blocks.VerifyProposerSlashing(beaconState, slashing)
	assert.Equal(t, true, errors.Is(err, blocks.ErrSlotMismatch))
}

func TestProcessProposerSlashings_UnmatchedProposerIndices(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 20)
	slashings := []*containers.ProposerSlashing{
		{
			Header1: &containers.SignedBeaconBlockHeader{
				Header: &containers.BeaconBlockHeader{
					ProposerIndex: 1,
					Slot:          0,
				},
			},
			Header2: &containers.SignedBeaconBlockHeader{
				Header: &containers.BeaconBlockHeader{
					ProposerIndex: 2,
					Slot:          0,
				},
			},
		},
	}

	_, err := blocks.ProcessProposerSlashings(context.Background(), beaconState, slashings, validators.SlashValidator)
	assert.ErrorContains(t, "mismatched proposer indices", err)
	assert.Equal(t, true, errors.Is(err, blocks.ErrProposerMismatch))
}

func TestProcessProposerSlashings_SameHeaders(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 2)
	slashings := []*containers.ProposerSlashing{
		{
			Header1: &containers.SignedBeaconBlockHeader{
				Header: &containers.BeaconBlockHeader{
					ProposerIndex: 1,
					Slot:          0,
				},
			},
			Header2: &containers.SignedBeaconBlockHeader{
				Header: &containers.BeaconBlockHeader{
					ProposerIndex: 1,
					Slot:          0,
				},
			},
		},
	}

	_, err := blocks.ProcessProposerSlashings(context.Background(), beaconState, slashings, validators.SlashValidator)
	assert.ErrorContains(t, "expected slashing headers to differ", err)
	assert.Equal(t, true, errors.Is(err, blocks.ErrIdenticalHeaders))
}

func TestProcessProposerSlashings_IdenticalSignaturesStillDiffer(t *testing.T) {
	// Headers with equal fields are identical regardless of their signatures.
	beaconState, _ := util.DeterministicGenesisState(t, 2)
	slashing := &containers.ProposerSlashing{
		Header1: &containers.SignedBeaconBlockHeader{
			Header:    &containers.BeaconBlockHeader{ProposerIndex: 1},
			Signature: [96]byte{0x01},
		},
		Header2: &containers.SignedBeaconBlockHeader{
			Header:    &containers.BeaconBlockHeader{ProposerIndex: 1},
			Signature: [96]byte{0x02},
		},
	}
	err := blocks.VerifyProposerSlashing(beaconState, slashing)
	assert.Equal(t, true, errors.Is(err, blocks.ErrIdenticalHeaders))
}

func TestProcessProposerSlashings_InvalidProposerIndex(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 5)
	// One past the end of the registry, as in the conformance vector.
	idx := types.ValidatorIndex(beaconState.NumValidators())
	slashing, err := util.GenerateProposerSlashingForValidator(beaconState, privKeys[0], idx)
	require.NoError(t, err)

	_, err = blocks.ProcessProposerSlashing(context.Background(), beaconState, slashing, validators.SlashValidator)
	assert.Equal(t, true, errors.Is(err, blocks.ErrInvalidProposerIndex))
}

func TestProcessProposerSlashings_ValidatorNotSlashable(t *testing.T) {
	tests := []struct {
		name     string
		modifier func(v *containers.Validator)
	}{
		{
			name: "already slashed",
			modifier: func(v *containers.Validator) {
				v.Slashed = true
			},
		},
		{
			name: "not yet activated",
			modifier: func(v *containers.Validator) {
				v.ActivationEpoch = 1
			},
		},
		{
			name: "past withdrawable epoch",
			modifier: func(v *containers.Validator) {
				v.WithdrawableEpoch = 0
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			beaconState, privKeys := util.DeterministicGenesisState(t, 3)
			idx := types.ValidatorIndex(1)
			val, err := beaconState.ValidatorAtIndex(idx)
			require.NoError(t, err)
			test.modifier(val)
			require.NoError(t, beaconState.UpdateValidatorAtIndex(idx, val))

			slashing, err := util.GenerateProposerSlashingForValidator(beaconState, privKeys[idx], idx)
			require.NoError(t, err)

			_, err = blocks.ProcessProposerSlashing(context.Background(), beaconState, slashing, validators.SlashValidator)
			assert.ErrorContains(t, "not slashable", err)
			assert.Equal(t, true, errors.Is(err, blocks.ErrNotSlashable))
		})
	}
}

func TestProcessProposerSlashings_InvalidSignature(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 5)
	idx := types.ValidatorIndex(1)

	tests := []struct {
		name   string
		mutate func(s *containers.ProposerSlashing)
	}{
		{
			name: "invalid signature 1",
			mutate: func(s *containers.ProposerSlashing) {
				s.Header1.Signature[5] ^= 0xff
			},
		},
		{
			name: "invalid signature 2",
			mutate: func(s *containers.ProposerSlashing) {
				s.Header2.Signature[5] ^= 0xff
			},
		},
		{
			name: "invalid signature 1 and 2",
			mutate: func(s *containers.ProposerSlashing) {
				s.Header1.Signature[5] ^= 0xff
				s.Header2.Signature[5] ^= 0xff
			},
		},
		{
			name: "signed by a different key",
			mutate: func(s *containers.ProposerSlashing) {
				resigned, err := util.SignBlockHeader(beaconState, s.Header1.Header, privKeys[2])
				require.NoError(t, err)
				s.Header1.Signature = resigned.Signature
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			slashing, err := util.GenerateProposerSlashingForValidator(beaconState, privKeys[idx], idx)
			require.NoError(t, err)
			test.mutate(slashing)
			_, err = blocks.ProcessProposerSlashing(context.Background(), beaconState, slashing, validators.SlashValidator)
			require.NotNil(t, err)
			assert.Equal(t, true, errors.Is(err, signing.ErrSigFailedToVerify), "expected a signature verification failure, got: %v", err)
		})
	}
}

func TestProcessProposerSlashings_AppliesCorrectStatus(t *testing.T) {
	// We test the case when data is correct and verify the validator
	// registry has been updated.
	beaconState, privKeys := util.DeterministicGenesisState(t, 100)
	proposerIdx := types.ValidatorIndex(1)
	blockProposerIdx := types.ValidatorIndex(7)
	require.NoError(t, beaconState.SetLatestBlockHeader(&containers.BeaconBlockHeader{
		Slot:          beaconState.Slot(),
		ProposerIndex: blockProposerIdx,
	}))

	slashing, err := util.GenerateProposerSlashingForValidator(beaconState, privKeys[proposerIdx], proposerIdx)
	require.NoError(t, err)

	newState, err := blocks.ProcessProposerSlashings(context.Background(), beaconState, []*containers.ProposerSlashing{slashing}, validators.SlashValidator)
	require.NoError(t, err)

	cfg := params.BeaconConfig()
	slashed, err := newState.ValidatorAtIndex(proposerIdx)
	require.NoError(t, err)
	assert.Equal(t, true, slashed.Slashed, "Proposer was not marked slashed")
	assert.NotEqual(t, cfg.FarFutureEpoch, slashed.ExitEpoch, "Proposer exit was not initiated")
	assert.Equal(t, types.Epoch(0)+cfg.EpochsPerSlashingsVector, slashed.WithdrawableEpoch)

	// Slashings accumulator carries the effective balance.
	assert.Equal(t, cfg.MaxEffectiveBalance, newState.Slashings()[0])

	penalty := cfg.MaxEffectiveBalance / cfg.MinSlashingPenaltyQuotient
	reward := cfg.MaxEffectiveBalance / cfg.WhistleBlowerRewardQuotient
	slashedBal, err := newState.BalanceAtIndex(proposerIdx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxEffectiveBalance-penalty-reward, slashedBal, "Slashed validator balance incorrect")

	whistleblowerBal, err := newState.BalanceAtIndex(blockProposerIdx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxEffectiveBalance+reward, whistleblowerBal, "Whistleblower balance incorrect")
}

func TestProcessProposerSlashings_RejectionLeavesStateUntouched(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 10)
	idx := types.ValidatorIndex(3)
	slashing, err := util.GenerateProposerSlashingForValidator(beaconState, privKeys[idx], idx)
	require.NoError(t, err)
	// Corrupt one signature so the last check fails.
	slashing.Header2.Signature[0] ^= 0xff

	before := beaconState.Copy()
	_, err = blocks.ProcessProposerSlashing(context.Background(), beaconState, slashing, validators.SlashValidator)
	require.NotNil(t, err)

	assert.DeepEqual(t, before.Balances(), beaconState.Balances(), "Rejected slashing mutated balances")
	assert.DeepEqual(t, before.Slashings(), beaconState.Slashings(), "Rejected slashing mutated the slashings vector")
	assert.DeepEqual(t, before.Validators(), beaconState.Validators(), "Rejected slashing mutated the registry")
}

func TestProcessProposerSlashings_NilSlashing(t *testing.T) {
	beaconState, _ := util.DeterministicGenesisState(t, 1)
	_, err := blocks.ProcessProposerSlashing(context.Background(), beaconState, nil, validators.SlashValidator)
	assert.ErrorContains(t, "nil proposer slashings in block body", err)

	err = blocks.VerifyProposerSlashing(beaconState, &containers.ProposerSlashing{})
	assert.ErrorContains(t, "nil header cannot be verified", err)
}

func TestProcessProposerSlashings_BatchAppliesAll(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 20)
	idx1 := types.ValidatorIndex(2)
	idx2 := types.ValidatorIndex(5)
	s1, err := util.GenerateProposerSlashingForValidator(beaconState, privKeys[idx1], idx1)
	require.NoError(t, err)
	s2, err := util.GenerateProposerSlashingForValidator(beaconState, privKeys[idx2], idx2)
	require.NoError(t, err)

	newState, err := blocks.ProcessProposerSlashings(context.Background(), beaconState, []*containers.ProposerSlashing{s1, s2}, validators.SlashValidator)
	require.NoError(t, err)
	for _, idx := range []types.ValidatorIndex{idx1, idx2} {
		val, err := newState.ValidatorAtIndex(idx)
		require.NoError(t, err)
		assert.Equal(t, true, val.Slashed, "Validator %d was not slashed", idx)
	}
}

func TestProcessProposerSlashings_SlashFuncFailureSurfaces(t *testing.T) {
	beaconState, privKeys := util.DeterministicGenesisState(t, 5)
	idx := types.ValidatorIndex(1)
	slashing, err := util.GenerateProposerSlashingForValidator(beaconState, privKeys[idx], idx)
	require.NoError(t, err)

	failingSlash := func(ctx context.Context, st *state.BeaconState, vid types.ValidatorIndex, penaltyQuotient, whistleBlowerQuotient uint64) (*state.BeaconState, error) {
		return nil, errors.New("slash failed")
	}
	_, err = blocks.ProcessProposerSlashing(context.Background(), beaconState, slashing, failingSlash)
	assert.ErrorContains(t, "could not slash proposer index 1", err)
}
