package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordhoard-backend/domain/config"
	"wordhoard-backend/domain/core/aggregates"
	apperrors "wordhoard-backend/pkg/errors"
)

func restoreDefaults(t *testing.T) {
	t.Helper()
	defaults := config.DefaultDomainConfig()
	t.Cleanup(func() {
		require.NoError(t, config.ApplyLimits(
			defaults.MaxFeeRateBps, defaults.MaxBookmarksPerAccount,
		))
	})
}

func TestApplyLimits_TightensActiveRules(t *testing.T) {
	restoreDefaults(t)

	require.NoError(t, config.ApplyLimits(500, 100))
	assert.Equal(t, uint64(500), config.Current().MaxFeeRateBps)
	assert.Equal(t, 100, config.Current().MaxBookmarksPerAccount)
}

func TestApplyLimits_CannotLoosenFeeCap(t *testing.T) {
	defaults := config.DefaultDomainConfig()

	err := config.ApplyLimits(defaults.MaxFeeRateBps+1, defaults.MaxBookmarksPerAccount)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, defaults.MaxFeeRateBps, config.Current().MaxFeeRateBps)

	err = config.ApplyLimits(0, defaults.MaxBookmarksPerAccount)
	assert.True(t, apperrors.IsValidation(err))

	err = config.ApplyLimits(defaults.MaxFeeRateBps, 0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplyLimits_GovernsNewExchanges(t *testing.T) {
	restoreDefaults(t)

	require.NoError(t, config.ApplyLimits(100, 100))

	_, err := aggregates.NewExchange("admin", 250)
	assert.True(t, apperrors.IsValidation(err))

	exchange, err := aggregates.NewExchange("admin", 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), exchange.FeeRateBps())
}

func TestApplyLimits_GovernsBookmarkCap(t *testing.T) {
	restoreDefaults(t)

	require.NoError(t, config.ApplyLimits(config.DefaultDomainConfig().MaxFeeRateBps, 1))

	account := aggregates.NewAccount()
	require.NoError(t, account.AddBookmark("ref://one", "word", ""))
	err := account.AddBookmark("ref://two", "word", "")
	assert.True(t, apperrors.IsConflict(err))
}
