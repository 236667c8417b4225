package params

import (
	"testing"
)

// SetupTestConfigCleanup preserves configurations allowing to modify them
// within tests without any problems, everything will be restored after the
// test.
func SetupTestConfigCleanup(t testing.TB) {
	prevConfig := BeaconConfig().Copy()
	t.Cleanup(func() {
		OverrideBeaconConfig(prevConfig)
	})
}
