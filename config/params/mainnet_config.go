package params

import (
	"math"

	types "github.com/prysmaticlabs/eth2-types"
)

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig
}

var mainnetBeaconConfig = &BeaconChainConfig{
	// Constants (non-configurable).
	GenesisSlot:    0,
	GenesisEpoch:   0,
	FarFutureEpoch: types.Epoch(math.MaxUint64),

	// Misc constant.
	ConfigName:             "mainnet",
	PresetBase:             "mainnet",
	MinPerEpochChurnLimit:  4,
	ChurnLimitQuotient:     1 << 16,
	ValidatorRegistryLimit: 1 << 40,

	// Gwei value constants.
	MinDepositAmount:          1 * 1e9,
	MaxEffectiveBalance:       32 * 1e9,
	EffectiveBalanceIncrement: 1 * 1e9,

	// Time parameter constants.
	SlotsPerEpoch:                    32,
	MinSeedLookahead:                 1,
	MaxSeedLookahead:                 4,
	MinValidatorWithdrawabilityDelay: 256,

	// Reward and penalty quotients constants.
	WhistleBlowerRewardQuotient: 512,
	ProposerRewardQuotient:      8,
	MinSlashingPenaltyQuotient:  128,

	// State list length constants.
	EpochsPerSlashingsVector: 8192,

	// Max operations per block constants.
	MaxProposerSlashings: 16,

	// BLS domain values.
	DomainBeaconProposer: [4]byte{0x00, 0x00, 0x00, 0x00},
	DomainVoluntaryExit:  [4]byte{0x04, 0x00, 0x00, 0x00},

	// Fork related values.
	GenesisForkVersion: []byte{0, 0, 0, 0},

	// Castellan constants.
	GweiPerEth:         1000000000,
	BLSSecretKeyLength: 32,
	BLSPubkeyLength:    48,
	BLSSignatureLength: 96,
	ZeroHash:           [32]byte{},
	EmptySignature:     [96]byte{},
}
