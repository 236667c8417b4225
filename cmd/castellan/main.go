// Package main defines the castellan command, which loads a chain
// configuration, applies feature flags and reports the active slashing
// parameters.
package main

import (
	"os"

	"github.com/castellanlabs/castellan/config/features"
	"github.com/castellanlabs/castellan/config/params"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var chainConfigFileFlag = &cli.StringFlag{
	Name:  "chain-config-file",
	Usage: "The path to a YAML file with chain config values",
}

func main() {
	app := &cli.App{
		Name:   "castellan",
		Usage:  "proposer slashing engine for the beacon chain",
		Flags:  append([]cli.Flag{chainConfigFileFlag}, features.BeaconChainFlags...),
		Before: setup,
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func setup(ctx *cli.Context) error {
	features.ConfigureBeaconChain(ctx)
	if features.Get().MinimalConfig {
		params.UseMinimalConfig()
	}
	if ctx.IsSet(chainConfigFileFlag.Name) {
		params.LoadChainConfigFile(ctx.String(chainConfigFileFlag.Name))
	}
	return nil
}

func run(ctx *cli.Context) error {
	cfg := params.BeaconConfig()
	log.WithFields(log.Fields{
		"config":                      cfg.ConfigName,
		"slotsPerEpoch":               cfg.SlotsPerEpoch,
		"epochsPerSlashingsVector":    cfg.EpochsPerSlashingsVector,
		"minSlashingPenaltyQuotient":  cfg.MinSlashingPenaltyQuotient,
		"whistleBlowerRewardQuotient": cfg.WhistleBlowerRewardQuotient,
		"maxProposerSlashings":        cfg.MaxProposerSlashings,
	}).Info("Active beacon chain configuration")
	return nil
}
