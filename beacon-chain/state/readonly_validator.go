package state

import (
	"github.com/castellanlabs/castellan/consensus-types/containers"
	types "github.com/prysmaticlabs/eth2-types"
)

// ReadOnlyValidator is a view over a registry entry which only exposes
// reads. The underlying validator is not copied.
type ReadOnlyValidator struct {
	validator *containers.Validator
}

// EffectiveBalance of the read only validator.
func (v ReadOnlyValidator) EffectiveBalance() uint64 {
	return v.validator.EffectiveBalance
}

// ActivationEligibilityEpoch of the read only validator.
func (v ReadOnlyValidator) ActivationEligibilityEpoch() types.Epoch {
	return v.validator.ActivationEligibilityEpoch
}

// ActivationEpoch of the read only validator.
func (v ReadOnlyValidator) ActivationEpoch() types.Epoch {
	return v.validator.ActivationEpoch
}

// ExitEpoch of the read only validator.
func (v ReadOnlyValidator) ExitEpoch() types.Epoch {
	return v.validator.ExitEpoch
}

// WithdrawableEpoch of the read only validator.
func (v ReadOnlyValidator) WithdrawableEpoch() types.Epoch {
	return v.validator.WithdrawableEpoch
}

// Slashed returns whether the read only validator has been slashed.
func (v ReadOnlyValidator) Slashed() bool {
	return v.validator.Slashed
}

// PublicKey returns the BLS public key of the read only validator.
func (v ReadOnlyValidator) PublicKey() [48]byte {
	return v.validator.PublicKey
}

// IsNil returns whether the view has no underlying validator.
func (v ReadOnlyValidator) IsNil() bool {
	return v.validator == nil
}
