// Package params defines important constants that are essential to the
// castellan consensus core services.
package params

import (
	types "github.com/prysmaticlabs/eth2-types"
)

// BeaconChainConfig contains constant configs for node to participate in beacon chain.
type BeaconChainConfig struct {
	// Constants (non-configurable).
	GenesisSlot    types.Slot  `yaml:"GENESIS_SLOT"`     // GenesisSlot represents the first canonical slot number of the beacon chain.
	GenesisEpoch   types.Epoch `yaml:"GENESIS_EPOCH"`    // GenesisEpoch represents the first canonical epoch number of the beacon chain.
	FarFutureEpoch types.Epoch `yaml:"FAR_FUTURE_EPOCH"` // FarFutureEpoch represents a epoch extremely far away in the future used as the default penalization epoch for validators.

	// Misc constants.
	ConfigName             string `yaml:"CONFIG_NAME" spec:"true"`               // ConfigName for allowing an easy identification of the chain configuration.
	PresetBase             string `yaml:"PRESET_BASE" spec:"true"`               // PresetBase for allowing an easy identification of the preset base.
	MinPerEpochChurnLimit  uint64 `yaml:"MIN_PER_EPOCH_CHURN_LIMIT" spec:"true"` // MinPerEpochChurnLimit is the minimum amount of churn allotted for validator rotations.
	ChurnLimitQuotient     uint64 `yaml:"CHURN_LIMIT_QUOTIENT" spec:"true"`      // ChurnLimitQuotient is used to determine the limit of how many validators can rotate per epoch.
	ValidatorRegistryLimit uint64 `yaml:"VALIDATOR_REGISTRY_LIMIT" spec:"true"`  // ValidatorRegistryLimit defines the upper bound of validators can participate in the chain.

	// Gwei value constants.
	MinDepositAmount          uint64 `yaml:"MIN_DEPOSIT_AMOUNT" spec:"true"`          // MinDepositAmount is the minimum amount of Gwei a validator can send through a deposit.
	MaxEffectiveBalance       uint64 `yaml:"MAX_EFFECTIVE_BALANCE" spec:"true"`       // MaxEffectiveBalance is the maximal amount of Gwei that is effective for staking.
	EffectiveBalanceIncrement uint64 `yaml:"EFFECTIVE_BALANCE_INCREMENT" spec:"true"` // EffectiveBalanceIncrement is used for converting the high balance into the low balance for validators.

	// Time parameters constants.
	SlotsPerEpoch                    types.Slot  `yaml:"SLOTS_PER_EPOCH" spec:"true"`                     // SlotsPerEpoch is the number of slots in an epoch.
	MinSeedLookahead                 types.Epoch `yaml:"MIN_SEED_LOOKAHEAD" spec:"true"`                  // MinSeedLookahead is the duration of randao look ahead seed.
	MaxSeedLookahead                 types.Epoch `yaml:"MAX_SEED_LOOKAHEAD" spec:"true"`                  // MaxSeedLookahead is the duration a validator has to wait for entry and exit in epoch.
	MinValidatorWithdrawabilityDelay types.Epoch `yaml:"MIN_VALIDATOR_WITHDRAWABILITY_DELAY" spec:"true"` // MinValidatorWithdrawabilityDelay is the shortest amount of time a validator has to wait to withdraw.

	// Reward and penalty quotients constants.
	WhistleBlowerRewardQuotient uint64 `yaml:"WHISTLEBLOWER_REWARD_QUOTIENT" spec:"true"` // WhistleBlowerRewardQuotient is used to calculate whistle blower reward.
	ProposerRewardQuotient      uint64 `yaml:"PROPOSER_REWARD_QUOTIENT" spec:"true"`      // ProposerRewardQuotient is used to calculate proposer reward.
	MinSlashingPenaltyQuotient  uint64 `yaml:"MIN_SLASHING_PENALTY_QUOTIENT" spec:"true"` // MinSlashingPenaltyQuotient is used to calculate the minimum penalty to prevent DoS attacks.

	// State list lengths.
	EpochsPerSlashingsVector types.Epoch `yaml:"EPOCHS_PER_SLASHINGS_VECTOR" spec:"true"` // EpochsPerSlashingsVector defines max length in epoch to store old stats to recompute slashing witness.

	// Max operations per block constants.
	MaxProposerSlashings uint64 `yaml:"MAX_PROPOSER_SLASHINGS" spec:"true"` // MaxProposerSlashings defines the maximum number of slashings of proposers possible in a block.

	// BLS domain values.
	DomainBeaconProposer [4]byte `yaml:"DOMAIN_BEACON_PROPOSER" spec:"true"` // DomainBeaconProposer defines the BLS signature domain for beacon proposal verification.
	DomainVoluntaryExit  [4]byte `yaml:"DOMAIN_VOLUNTARY_EXIT" spec:"true"`  // DomainVoluntaryExit defines the BLS signature domain for exit verification.

	// Fork-related values.
	GenesisForkVersion []byte `yaml:"GENESIS_FORK_VERSION" spec:"true"` // GenesisForkVersion is used to track fork version between state transitions.

	// Castellan constants.
	GweiPerEth         uint64   // GweiPerEth is the amount of gwei corresponding to 1 eth.
	BLSSecretKeyLength int      // BLSSecretKeyLength defines the expected length of BLS secret keys in bytes.
	BLSPubkeyLength    int      // BLSPubkeyLength defines the expected length of BLS public keys in bytes.
	BLSSignatureLength int      // BLSSignatureLength defines the expected length of BLS signatures in bytes.
	ZeroHash           [32]byte // ZeroHash is used to represent a zeroed out 32 byte array.
	EmptySignature     [96]byte // EmptySignature is used to represent a zeroed out BLS Signature.
}
