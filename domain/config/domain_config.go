// Package config holds domain-level business rule configuration.
package config

import (
	"sync/atomic"

	apperrors "wordhoard-backend/pkg/errors"
)

// DomainConfig captures tunable business rules enforced by the aggregates.
type DomainConfig struct {
	// MaxFeeRateBps is the upper bound for the exchange fee rate (10%).
	MaxFeeRateBps uint64
	// FeeDenominator converts basis points to a fraction of the price.
	FeeDenominator uint64
	// AlphabetSize is the number of claimable letter classes (A-Z).
	AlphabetSize int
	// MaxBookmarksPerAccount bounds the bookmark map per account.
	MaxBookmarksPerAccount int
}

// DefaultDomainConfig returns the production rule set.
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxFeeRateBps:          1000,
		FeeDenominator:         10000,
		AlphabetSize:           26,
		MaxBookmarksPerAccount: 500,
	}
}

var current atomic.Pointer[DomainConfig]

func init() {
	current.Store(DefaultDomainConfig())
}

// Current returns the active rule set. Aggregates constructed after an
// ApplyLimits call pick up the new rules; instances built earlier keep
// the rules they were created with.
func Current() *DomainConfig {
	return current.Load()
}

// ApplyLimits activates runtime-tuned limits for subsequently created
// aggregates. The fee-rate cap can only tighten: the hard ceiling stays
// at the default.
func ApplyLimits(maxFeeRateBps uint64, maxBookmarksPerAccount int) error {
	defaults := DefaultDomainConfig()
	if maxFeeRateBps == 0 || maxFeeRateBps > defaults.MaxFeeRateBps {
		return apperrors.NewValidation("max fee rate must be between 1 and the default cap")
	}
	if maxBookmarksPerAccount <= 0 {
		return apperrors.NewValidation("max bookmarks per account must be positive")
	}

	next := *defaults
	next.MaxFeeRateBps = maxFeeRateBps
	next.MaxBookmarksPerAccount = maxBookmarksPerAccount
	current.Store(&next)
	return nil
}
