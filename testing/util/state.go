// Package util defines utilities to generate deterministic genesis states
// and signed operations for tests.
package util

import (
	"testing"

	"github.com/castellanlabs/castellan/beacon-chain/state"
	"github.com/castellanlabs/castellan/config/params"
	"github.com/castellanlabs/castellan/consensus-types/containers"
	"github.com/castellanlabs/castellan/crypto/bls"
	"github.com/castellanlabs/castellan/crypto/hash"
	"github.com/castellanlabs/castellan/encoding/bytesutil"
	"github.com/castellanlabs/castellan/testing/require"
)

// DeterministicallyGenerateKeys creates BLS secret keys derived from the
// validator index so tests are reproducible across runs.
func DeterministicallyGenerateKeys(startIndex, numKeys uint64) ([]bls.SecretKey, error) {
	keys := make([]bls.SecretKey, numKeys)
	for i := uint64(0); i < numKeys; i++ {
		h := hash.Hash(bytesutil.Bytes8(startIndex + i))
		// Clamp the edge bytes so the scalar stays below the curve order and
		// force a nonzero byte so the key is never zero.
		h[0] = 0
		h[31] = 0
		h[1] |= 1
		sk, err := bls.SecretKeyFromBytes(h[:])
		if err != nil {
			return nil, err
		}
		keys[i] = sk
	}
	return keys, nil
}

// DeterministicGenesisState returns a genesis state made using the
// deterministic keys, with every validator active and holding the maximum
// effective balance.
func DeterministicGenesisState(t testing.TB, numValidators uint64) (*state.BeaconState, []bls.SecretKey) {
	privKeys, err := DeterministicallyGenerateKeys(0, numValidators)
	require.NoError(t, err, "Could not generate deterministic keys")

	validators := make([]*containers.Validator, numValidators)
	balances := make([]uint64, numValidators)
	for i, key := range privKeys {
		pub := bytesutil.ToBytes48(key.PublicKey().Marshal())
		validators[i] = &containers.Validator{
			PublicKey:                  pub,
			WithdrawalCredentials:      hash.Hash(pub[:]),
			EffectiveBalance:           params.BeaconConfig().MaxEffectiveBalance,
			ActivationEligibilityEpoch: 0,
			ActivationEpoch:            0,
			ExitEpoch:                  params.BeaconConfig().FarFutureEpoch,
			WithdrawableEpoch:          params.BeaconConfig().FarFutureEpoch,
		}
		balances[i] = params.BeaconConfig().MaxEffectiveBalance
	}

	st, err := state.InitializeFromData(&state.Data{
		Slot: 0,
		Fork: &containers.Fork{
			PreviousVersion: bytesutil.ToBytes4(params.BeaconConfig().GenesisForkVersion),
			CurrentVersion:  bytesutil.ToBytes4(params.BeaconConfig().GenesisForkVersion),
			Epoch:           0,
		},
		LatestBlockHeader: &containers.BeaconBlockHeader{},
		Validators:        validators,
		Balances:          balances,
		Slashings:         make([]uint64, params.BeaconConfig().EpochsPerSlashingsVector),
	})
	require.NoError(t, err, "Could not initialize genesis state")
	return st, privKeys
}
