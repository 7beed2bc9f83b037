package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, PersistenceModeMemory, cfg.PersistenceMode)
	assert.Equal(t, 24*time.Hour, cfg.EpochDuration)
	assert.Equal(t, uint64(250), cfg.DefaultFeeRateBps)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("PERSISTENCE_MODE", "dynamodb")
	t.Setenv("EPOCH_DURATION_SECONDS", "3600")
	t.Setenv("TABLE_NAME", "wordhoard-staging")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, PersistenceModeDynamoDB, cfg.PersistenceMode)
	assert.Equal(t, time.Hour, cfg.EpochDuration)
	assert.Equal(t, "wordhoard-staging", cfg.DynamoDBTable)
}

func TestValidate_RejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "sandbox")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate_RejectsUnknownPersistenceMode(t *testing.T) {
	t.Setenv("PERSISTENCE_MODE", "postgres")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate_ProductionRequiresRealAdminToken(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("ADMIN_TOKEN", "a-real-token")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_RejectsExcessiveFeeRate(t *testing.T) {
	t.Setenv("DEFAULT_FEE_RATE_BPS", "1001")

	_, err := LoadConfig()
	assert.Error(t, err)
}
