package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "wordhoard-backend/pkg/errors"
)

func TestNewAdminCap(t *testing.T) {
	cap, err := NewAdminCap("bootstrap-token")
	require.NoError(t, err)
	require.NotNil(t, cap)

	_, err = NewAdminCap("")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAdminCap_Matches(t *testing.T) {
	cap, err := NewAdminCap("secret")
	require.NoError(t, err)

	assert.True(t, cap.Matches("secret"))
	assert.False(t, cap.Matches("Secret"))
	assert.False(t, cap.Matches(""))

	var nilCap *AdminCap
	assert.False(t, nilCap.Matches("secret"))
}

func TestAdminCap_Authorize(t *testing.T) {
	cap, err := NewAdminCap("secret")
	require.NoError(t, err)

	require.NoError(t, cap.Authorize("secret"))

	err = cap.Authorize("wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotOwner(err))
}
