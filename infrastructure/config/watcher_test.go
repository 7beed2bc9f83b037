package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeDynamicConfig(t *testing.T, path string, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestValidateDynamicConfig_FeeRateBoundedByDomainCap(t *testing.T) {
	valid := &DynamicConfig{
		Limits: Limits{MaxFeeRateBps: 1000, MaxBookmarksPerAccount: 500},
		Epoch:  EpochConfig{DurationSeconds: 3600},
	}
	assert.NoError(t, validateDynamicConfig(valid))

	loosened := &DynamicConfig{
		Limits: Limits{MaxFeeRateBps: 2000, MaxBookmarksPerAccount: 500},
		Epoch:  EpochConfig{DurationSeconds: 3600},
	}
	assert.Error(t, validateDynamicConfig(loosened))

	zeroFee := &DynamicConfig{
		Limits: Limits{MaxFeeRateBps: 0, MaxBookmarksPerAccount: 500},
		Epoch:  EpochConfig{DurationSeconds: 3600},
	}
	assert.Error(t, validateDynamicConfig(zeroFee))

	badEpoch := &DynamicConfig{
		Limits: Limits{MaxFeeRateBps: 250, MaxBookmarksPerAccount: 500},
		Epoch:  EpochConfig{DurationSeconds: 0},
	}
	assert.Error(t, validateDynamicConfig(badEpoch))
}

func TestConfigWatcher_NotifiesRegisteredCallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.json")
	writeDynamicConfig(t, path, `{
		"limits": {"maxFeeRateBps": 250, "maxBookmarksPerAccount": 500},
		"epoch": {"durationSeconds": 3600}
	}`)

	w, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	notified := make(chan *DynamicConfig, 1)
	w.OnChange(func(cfg *DynamicConfig) {
		notified <- cfg
	})

	writeDynamicConfig(t, path, `{
		"limits": {"maxFeeRateBps": 500, "maxBookmarksPerAccount": 100},
		"epoch": {"durationSeconds": 600}
	}`)
	w.handleConfigChange()

	select {
	case cfg := <-notified:
		assert.Equal(t, uint64(500), cfg.Limits.MaxFeeRateBps)
		assert.Equal(t, 100, cfg.Limits.MaxBookmarksPerAccount)
		assert.Equal(t, 600, cfg.Epoch.DurationSeconds)
	case <-time.After(2 * time.Second):
		t.Fatal("callback was not invoked")
	}

	assert.Equal(t, uint64(500), w.GetCurrent().Limits.MaxFeeRateBps)
}

func TestConfigWatcher_KeepsCurrentOnInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.json")
	writeDynamicConfig(t, path, `{
		"limits": {"maxFeeRateBps": 250, "maxBookmarksPerAccount": 500},
		"epoch": {"durationSeconds": 3600}
	}`)

	w, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	w.OnChange(func(cfg *DynamicConfig) {
		t.Errorf("callback invoked for invalid config: %+v", cfg)
	})

	writeDynamicConfig(t, path, `{
		"limits": {"maxFeeRateBps": 9999, "maxBookmarksPerAccount": 500},
		"epoch": {"durationSeconds": 3600}
	}`)
	w.handleConfigChange()

	assert.Equal(t, uint64(250), w.GetCurrent().Limits.MaxFeeRateBps)
}
