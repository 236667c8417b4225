package params

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/castellanlabs/castellan/testing/assert"
	"github.com/castellanlabs/castellan/testing/require"
)

func TestConfig_OverrideBeaconConfig(t *testing.T) {
	SetupTestConfigCleanup(t)
	cfg := BeaconConfig().Copy()
	cfg.SlotsPerEpoch = 5
	OverrideBeaconConfig(cfg)
	if c := BeaconConfig(); c.SlotsPerEpoch != 5 {
		t.Errorf("Shardcount in BeaconConfig incorrect. Wanted %d, got %d", 5, c.SlotsPerEpoch)
	}
}

func TestConfig_Copy(t *testing.T) {
	SetupTestConfigCleanup(t)
	cfg := BeaconConfig().Copy()
	cfg.MinSlashingPenaltyQuotient = 999
	require.Equal(t, uint64(999), cfg.MinSlashingPenaltyQuotient)
	// Copies do not alias the global config.
	assert.NotEqual(t, uint64(999), BeaconConfig().MinSlashingPenaltyQuotient)
}

func TestConfig_UseMinimalConfig(t *testing.T) {
	SetupTestConfigCleanup(t)
	UseMinimalConfig()
	assert.Equal(t, uint64(8), uint64(BeaconConfig().SlotsPerEpoch))
	assert.Equal(t, "minimal", BeaconConfig().ConfigName)
	UseMainnetConfig()
	assert.Equal(t, uint64(32), uint64(BeaconConfig().SlotsPerEpoch))
}

func TestLoadChainConfigFile(t *testing.T) {
	SetupTestConfigCleanup(t)
	dir := t.TempDir()
	content := []byte("CONFIG_NAME: 'testnet'\n" +
		"MIN_PER_EPOCH_CHURN_LIMIT: 7\n" +
		"GENESIS_FORK_VERSION: 0x00000064\n")
	fp := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(fp, content, os.ModePerm))
	LoadChainConfigFile(fp)
	assert.Equal(t, "testnet", BeaconConfig().ConfigName)
	assert.Equal(t, uint64(7), BeaconConfig().MinPerEpochChurnLimit)
	assert.DeepEqual(t, []byte{0, 0, 0, 100}, BeaconConfig().GenesisForkVersion)
}
