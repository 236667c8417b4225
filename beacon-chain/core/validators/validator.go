// Package validators contains registry mutation primitives: initiating a
// validator's exit through the churn-limited exit queue and slashing a
// validator with the associated penalties and whistleblower reward.
package validators

import (
	"context"

	"github.com/castellanlabs/castellan/beacon-chain/core/helpers"
	coreTime "github.com/castellanlabs/castellan/beacon-chain/core/time"
	"github.com/castellanlabs/castellan/beacon-chain/state"
	"github.com/castellanlabs/castellan/config/features"
	"github.com/castellanlabs/castellan/config/params"
	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "validators")

// InitiateValidatorExit takes in validator index and updates
// validator with correct voluntary exit parameters.
//
// Spec pseudocode definition:
//  def initiate_validator_exit(state: BeaconState, index: ValidatorIndex) -> None:
//    """
//    Initiate the exit of the validator with index ``index``.
//    """
//    # Return if validator already initiated exit
//    validator = state.validators[index]
//    if validator.exit_epoch != FAR_FUTURE_EPOCH:
//        return
//
//    # Compute exit queue epoch
//    exit_epochs = [v.exit_epoch for v in state.validators if v.exit_epoch != FAR_FUTURE_EPOCH]
//    exit_queue_epoch = max(exit_epochs + [compute_activation_exit_epoch(get_current_epoch(state))])
//    exit_queue_churn = len([v for v in state.validators if v.exit_epoch == exit_queue_epoch])
//    if exit_queue_churn >= get_validator_churn_limit(state):
//        exit_queue_epoch += Epoch(1)
//
//    # Set validator exit epoch and withdrawable epoch
//    validator.exit_epoch = exit_queue_epoch
//    validator.withdrawable_epoch = Epoch(validator.exit_epoch + MIN_VALIDATOR_WITHDRAWABILITY_DELAY)
func InitiateValidatorExit(ctx context.Context, st *state.BeaconState, idx types.ValidatorIndex) (*state.BeaconState, error) {
	validator, err := st.ValidatorAtIndex(idx)
	if err != nil {
		return nil, err
	}
	if validator.ExitEpoch != params.BeaconConfig().FarFutureEpoch {
		return st, nil
	}
	currentEpoch := coreTime.CurrentEpoch(st)
	exitQueueEpoch := helpers.ActivationExitEpoch(currentEpoch)
	var exitQueueChurn uint64
	if err := st.ReadFromEveryValidator(func(i int, val state.ReadOnlyValidator) error {
		if val.ExitEpoch() == params.BeaconConfig().FarFutureEpoch {
			return nil
		}
		if val.ExitEpoch() > exitQueueEpoch {
			exitQueueEpoch = val.ExitEpoch()
			exitQueueChurn = 1
		} else if val.ExitEpoch() == exitQueueEpoch {
			exitQueueChurn++
		}
		return nil
	}); err != nil {
		return nil, err
	}

	activeValidatorCount, err := helpers.ActiveValidatorCount(st, currentEpoch)
	if err != nil {
		return nil, errors.Wrap(err, "could not get active validator count")
	}
	churn, err := helpers.ValidatorChurnLimit(activeValidatorCount)
	if err != nil {
		return nil, errors.Wrap(err, "could not get churn limit")
	}

	// We should bump the exit queue churn to a new epoch if the current
	// epoch's churn is already at the limit.
	if exitQueueChurn >= churn {
		exitQueueEpoch++
	}
	validator.ExitEpoch = exitQueueEpoch
	validator.WithdrawableEpoch = exitQueueEpoch + params.BeaconConfig().MinValidatorWithdrawabilityDelay
	if err := st.UpdateValidatorAtIndex(idx, validator); err != nil {
		return nil, err
	}
	return st, nil
}

// SlashValidator slashes the malicious validator's balance and awards
// the whistleblower's balance.
//
// Spec pseudocode definition:
//  def slash_validator(state: BeaconState,
//                    slashed_index: ValidatorIndex,
//                    whistleblower_index: ValidatorIndex=None) -> None:
//    """
//    Slash the validator with index ``slashed_index``.
//    """
//    epoch = get_current_epoch(state)
//    initiate_validator_exit(state, slashed_index)
//    validator = state.validators[slashed_index]
//    validator.slashed = True
//    validator.withdrawable_epoch = max(validator.withdrawable_epoch, Epoch(epoch + EPOCHS_PER_SLASHINGS_VECTOR))
//    state.slashings[epoch % EPOCHS_PER_SLASHINGS_VECTOR] += validator.effective_balance
//    decrease_balance(state, slashed_index, validator.effective_balance // MIN_SLASHING_PENALTY_QUOTIENT)
//
//    # Apply proposer and whistleblower rewards
//    proposer_index = get_beacon_proposer_index(state)
//    if whistleblower_index is None:
//        whistleblower_index = proposer_index
//    whistleblower_reward = Gwei(validator.effective_balance // WHISTLEBLOWER_REWARD_QUOTIENT)
//    increase_balance(state, whistleblower_index, whistleblower_reward)
//    decrease_balance(state, slashed_index, whistleblower_reward)
func SlashValidator(
	ctx context.Context,
	st *state.BeaconState,
	slashedIdx types.ValidatorIndex,
	penaltyQuotient uint64,
	whistleBlowerQuotient uint64,
) (*state.BeaconState, error) {
	st, err := InitiateValidatorExit(ctx, st, slashedIdx)
	if err != nil {
		return nil, errors.Wrapf(err, "could not initiate validator %d exit", slashedIdx)
	}
	currentEpoch := coreTime.CurrentEpoch(st)
	validator, err := st.ValidatorAtIndex(slashedIdx)
	if err != nil {
		return nil, err
	}
	validator.Slashed = true
	maxWithdrawableEpoch := validator.WithdrawableEpoch
	if epochWindow := currentEpoch + params.BeaconConfig().EpochsPerSlashingsVector; epochWindow > maxWithdrawableEpoch {
		maxWithdrawableEpoch = epochWindow
	}
	validator.WithdrawableEpoch = maxWithdrawableEpoch

	if err := st.UpdateValidatorAtIndex(slashedIdx, validator); err != nil {
		return nil, err
	}

	// The slashings accumulator tracks the total effective balance slashed in
	// the current window, consumed later by the proportional penalty.
	slashingsIdx := uint64(currentEpoch % params.BeaconConfig().EpochsPerSlashingsVector)
	currentSlashing, err := st.SlashingAtIndex(slashingsIdx)
	if err != nil {
		return nil, err
	}
	if err := st.UpdateSlashingsAtIndex(slashingsIdx, currentSlashing+validator.EffectiveBalance); err != nil {
		return nil, err
	}
	if err := helpers.DecreaseBalance(st, slashedIdx, validator.EffectiveBalance/penaltyQuotient); err != nil {
		return nil, err
	}

	// The proposer including the slashing evidence collects the whistleblower
	// reward, debited from the slashed validator.
	whistleBlowerIdx := st.LatestBlockHeader().ProposerIndex
	whistleblowerReward := validator.EffectiveBalance / whistleBlowerQuotient
	if err := helpers.IncreaseBalance(st, whistleBlowerIdx, whistleblowerReward); err != nil {
		return nil, errors.Wrapf(err, "could not increase balance for whistleblower %d", whistleBlowerIdx)
	}
	if err := helpers.DecreaseBalance(st, slashedIdx, whistleblowerReward); err != nil {
		return nil, err
	}

	if features.Get().EnableSlashingDebug {
		log.WithFields(logrus.Fields{
			"slashedIndex":       slashedIdx,
			"whistleBlowerIndex": whistleBlowerIdx,
			"penalty":            validator.EffectiveBalance / penaltyQuotient,
			"reward":             whistleblowerReward,
			"exitEpoch":          validator.ExitEpoch,
			"withdrawableEpoch":  validator.WithdrawableEpoch,
		}).Debug("Slashed validator")
	}
	return st, nil
}
