package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	apperrors "wordhoard-backend/pkg/errors"
)

func TestNewLocation(t *testing.T) {
	location, err := NewLocation("Library", "meta-ref", "fence-ref")
	require.NoError(t, err)

	assert.False(t, location.ID().IsZero())
	assert.True(t, location.Active())
	assert.Equal(t, "Library", location.Label())
	assert.Equal(t, valueobjects.ContentRef("meta-ref"), location.MetadataRef())
	assert.Equal(t, valueobjects.ContentRef("fence-ref"), location.GeofenceRef())

	uncommitted := location.GetUncommittedEvents()
	require.Len(t, uncommitted, 1)
	assert.Equal(t, events.TypeLocationCreated, uncommitted[0].GetEventType())
}

func TestNewLocation_EmptyLabel(t *testing.T) {
	location, err := NewLocation("", "meta", "fence")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Nil(t, location)
}

func TestLocation_RecordClaim_EpochStateMachine(t *testing.T) {
	location, err := NewLocation("Library", "", "")
	require.NoError(t, err)
	location.MarkEventsAsCommitted()
	account := valueobjects.NewAccountID()

	// First claim in epoch 10 succeeds
	require.NoError(t, location.RecordClaim(account, 10, "Q"))

	// Second claim in the same epoch is a replay
	err = location.RecordClaim(account, 10, "Z")
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateClaim(err))

	// An earlier epoch never succeeds after a later one was accepted
	err = location.RecordClaim(account, 9, "Z")
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateClaim(err))

	// The next epoch opens a fresh window
	require.NoError(t, location.RecordClaim(account, 11, "Z"))

	log := location.VisitorLog()
	require.Contains(t, log, account)
	assert.Equal(t, uint64(2), log[account].ClaimCount)
	assert.Equal(t, uint64(11), log[account].LastClaimEpoch)
}

func TestLocation_RecordClaim_RejectionLeavesStateUntouched(t *testing.T) {
	location, err := NewLocation("Library", "", "")
	require.NoError(t, err)
	account := valueobjects.NewAccountID()

	require.NoError(t, location.RecordClaim(account, 5, "A"))
	location.MarkEventsAsCommitted()
	version := location.Version()

	err = location.RecordClaim(account, 5, "B")
	require.Error(t, err)

	assert.Equal(t, version, location.Version())
	assert.Empty(t, location.GetUncommittedEvents())
	assert.Equal(t, uint64(1), location.VisitorLog()[account].ClaimCount)
}

func TestLocation_RecordClaim_IndependentPerAccount(t *testing.T) {
	location, err := NewLocation("Library", "", "")
	require.NoError(t, err)
	first := valueobjects.NewAccountID()
	second := valueobjects.NewAccountID()

	require.NoError(t, location.RecordClaim(first, 10, "A"))

	// A different account claiming in the same epoch is unaffected
	require.NoError(t, location.RecordClaim(second, 10, "B"))
}

func TestLocation_RecordClaim_Inactive(t *testing.T) {
	location, err := NewLocation("Library", "", "")
	require.NoError(t, err)
	location.SetActive(false)
	account := valueobjects.NewAccountID()

	err = location.RecordClaim(account, 10, "A")
	require.Error(t, err)
	assert.True(t, apperrors.IsInactive(err))

	// Reactivation restores claims, with history intact
	location.SetActive(true)
	require.NoError(t, location.RecordClaim(account, 10, "A"))
}

func TestLocation_SetActive(t *testing.T) {
	location, err := NewLocation("Library", "", "")
	require.NoError(t, err)
	location.MarkEventsAsCommitted()

	location.SetActive(false)
	assert.False(t, location.Active())

	uncommitted := location.GetUncommittedEvents()
	require.Len(t, uncommitted, 1)
	toggled, ok := uncommitted[0].(events.LocationToggled)
	require.True(t, ok)
	assert.False(t, toggled.Active)
}

func TestLocation_BoastReplacesPrevious(t *testing.T) {
	location, err := NewLocation("Library", "", "")
	require.NoError(t, err)
	account := valueobjects.NewAccountID()
	first := valueobjects.NewAssetID()
	second := valueobjects.NewAssetID()

	location.Boast(account, first, 5)
	location.Boast(account, second, 6)

	log := location.BoastLog()
	require.Contains(t, log, account)
	assert.Equal(t, second, log[account].Asset)
	assert.Equal(t, uint64(6), log[account].SinceEpoch)
}

func TestLocation_BoastDoesNotCheckOwnership(t *testing.T) {
	// The boast registry records whatever asset id the caller names.
	// Ownership verification is a display-layer concern.
	location, err := NewLocation("Library", "", "")
	require.NoError(t, err)
	account := valueobjects.NewAccountID()
	someoneElsesAsset := valueobjects.NewAssetID()

	location.Boast(account, someoneElsesAsset, 5)

	assert.Equal(t, someoneElsesAsset, location.BoastLog()[account].Asset)
}

func TestLocation_Unboast(t *testing.T) {
	location, err := NewLocation("Library", "", "")
	require.NoError(t, err)
	account := valueobjects.NewAccountID()

	location.Boast(account, valueobjects.NewAssetID(), 5)
	location.Unboast(account)
	assert.NotContains(t, location.BoastLog(), account)

	// Removing an absent record is a no-op, not an error
	location.Unboast(account)
	assert.Empty(t, location.BoastLog())
}
