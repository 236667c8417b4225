package features

import (
	"github.com/urfave/cli/v2"
)

var (
	minimalConfigFlag = &cli.BoolFlag{
		Name:  "minimal-config",
		Usage: "Use minimal config with parameters as defined in the spec.",
	}
	// skipBLSVerifyFlag skips BLS signature verification across the runtime for development purposes.
	skipBLSVerifyFlag = &cli.BoolFlag{
		Name:   "skip-bls-verify",
		Usage:  "Whether or not to skip BLS verification of signature at runtime, this is unsafe and should only be used for development",
		Hidden: true,
	}
	enableSlashingDebugFlag = &cli.BoolFlag{
		Name:  "enable-slashing-debug",
		Usage: "Enables verbose logging of proposer slashing processing.",
	}
	disableExitPipeliningFlag = &cli.BoolFlag{
		Name:  "disable-exit-pipelining",
		Usage: "Processes validator exits one at a time instead of batching per epoch.",
	}
)

// devModeFlags holds list of flags that are set when development mode is on.
var devModeFlags = []cli.Flag{
	enableSlashingDebugFlag,
}

// BeaconChainFlags contains a list of all the feature flags that apply to the beacon-chain client.
var BeaconChainFlags = append(devModeFlags, []cli.Flag{
	minimalConfigFlag,
	skipBLSVerifyFlag,
	disableExitPipeliningFlag,
}...)
