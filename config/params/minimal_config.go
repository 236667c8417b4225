package params

// MinimalSpecConfig retrieves the minimal config used in spec tests.
func MinimalSpecConfig() *BeaconChainConfig {
	minimalConfig := mainnetBeaconConfig.Copy()

	// Misc
	minimalConfig.ConfigName = "minimal"
	minimalConfig.PresetBase = "minimal"
	minimalConfig.MinPerEpochChurnLimit = 4
	minimalConfig.ChurnLimitQuotient = 32

	// Time parameters
	minimalConfig.SlotsPerEpoch = 8
	minimalConfig.MinSeedLookahead = 1
	minimalConfig.MaxSeedLookahead = 4
	minimalConfig.MinValidatorWithdrawabilityDelay = 256

	// State vector lengths
	minimalConfig.EpochsPerSlashingsVector = 64

	// Fork related values.
	minimalConfig.GenesisForkVersion = []byte{0, 0, 0, 1}

	return minimalConfig
}

// UseMinimalConfig for beacon chain services.
func UseMinimalConfig() {
	beaconConfig = MinimalSpecConfig()
}
