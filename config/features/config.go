/*
Package features defines which features are enabled for runtime
in order to selectively enable certain features to maintain a stable runtime.

The process for implementing new features using this package is as follows:
	1. Add a new CMD flag in flags.go, and place it in the proper list(s) var for its client.
	2. Add a condition for the flag in the proper Configure function(s) below.
	3. Place any "new" behavior in the `if flagEnabled` statement.
	4. Place any "previous" behavior in the `else` statement.
	5. Ensure any tests using the new feature fail if the flag isn't enabled.
	5a. Use the following to enable your flag for tests:
	cfg := &features.Flags{
		VerifyAttestationSigs: true,
	}
	resetCfg := features.InitWithReset(cfg)
	defer resetCfg()
*/
package features

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Flags is a struct to represent which features the client will perform on runtime.
type Flags struct {
	// Feature related flags.
	SkipBLSVerify        bool // Skips BLS verification across the runtime.
	EnableSlashingDebug  bool // EnableSlashingDebug enables verbose logging of slashing operations.
	MinimalConfig        bool // MinimalConfig as defined in the spec.
	DisableExitPipelining bool // DisableExitPipelining processes validator exits without queue batching.
}

var featureConfig *Flags
var featureConfigLock sync.RWMutex

// Get retrieves feature config.
func Get() *Flags {
	featureConfigLock.RLock()
	defer featureConfigLock.RUnlock()

	if featureConfig == nil {
		return &Flags{}
	}
	return featureConfig
}

// Init sets the global config equal to the config that is passed in.
func Init(c *Flags) {
	featureConfigLock.Lock()
	defer featureConfigLock.Unlock()

	featureConfig = c
}

// InitWithReset sets the global config and returns function that is used to reset configuration.
func InitWithReset(c *Flags) func() {
	var prevConfig Flags
	if featureConfig != nil {
		prevConfig = *featureConfig
	} else {
		prevConfig = Flags{}
	}
	resetFunc := func() {
		Init(&prevConfig)
	}
	Init(c)
	return resetFunc
}

// logEnabled. Helper function for logging enabled features.
func logEnabled(flag cli.DocGenerationFlag) {
	var name string
	if names := flag.Names(); len(names) > 0 {
		name = names[0]
	}
	log.WithField(name, true).Info("Enabled feature flag")
}

// ConfigureBeaconChain sets the global config based
// on what flags are enabled for the beacon-chain client.
func ConfigureBeaconChain(ctx *cli.Context) {
	cfg := &Flags{}
	if ctx.Bool(minimalConfigFlag.Name) {
		logEnabled(minimalConfigFlag)
		cfg.MinimalConfig = true
	}
	if ctx.Bool(skipBLSVerifyFlag.Name) {
		logEnabled(skipBLSVerifyFlag)
		cfg.SkipBLSVerify = true
	}
	if ctx.Bool(enableSlashingDebugFlag.Name) {
		logEnabled(enableSlashingDebugFlag)
		cfg.EnableSlashingDebug = true
	}
	if ctx.Bool(disableExitPipeliningFlag.Name) {
		logEnabled(disableExitPipeliningFlag)
		cfg.DisableExitPipelining = true
	}
	Init(cfg)
}
