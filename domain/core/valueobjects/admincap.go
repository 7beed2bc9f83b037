package valueobjects

import (
	"crypto/subtle"

	apperrors "wordhoard-backend/pkg/errors"
)

// AdminCap is the opaque capability token gating admin operations.
// Whoever holds the token may act; the core never inspects its contents
// beyond an equality check.
type AdminCap struct {
	token string
}

// NewAdminCap wraps a bootstrap-issued token value.
func NewAdminCap(token string) (*AdminCap, error) {
	if token == "" {
		return nil, apperrors.NewValidation("admin capability token is required")
	}
	return &AdminCap{token: token}, nil
}

// Matches compares a presented token in constant time.
func (c *AdminCap) Matches(presented string) bool {
	if c == nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.token), []byte(presented)) == 1
}

// Authorize returns a NotOwner error when the presented token does not match.
func (c *AdminCap) Authorize(presented string) error {
	if !c.Matches(presented) {
		return apperrors.NewNotOwner("admin capability required")
	}
	return nil
}
