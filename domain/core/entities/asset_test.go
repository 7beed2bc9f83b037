package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	apperrors "wordhoard-backend/pkg/errors"
)

func TestNewAsset(t *testing.T) {
	owner := valueobjects.NewAccountID()

	asset, err := NewAsset(owner, "HELLO", valueobjects.ContentRef("ref-1"), 5)
	require.NoError(t, err)
	require.NotNil(t, asset)

	assert.False(t, asset.ID().IsZero())
	assert.Equal(t, owner.String(), asset.Owner())
	assert.Equal(t, "HELLO", asset.DisplayText())
	assert.Equal(t, valueobjects.ContentRef("ref-1"), asset.ContentRef())
	assert.Equal(t, uint64(5), asset.LettersConsumed())
	assert.True(t, asset.OwnedBy(owner.String()))

	uncommitted := asset.GetUncommittedEvents()
	require.Len(t, uncommitted, 1)
	assert.Equal(t, events.TypeAssetMinted, uncommitted[0].GetEventType())
}

func TestNewAsset_Validation(t *testing.T) {
	owner := valueobjects.NewAccountID()

	tests := []struct {
		name        string
		owner       valueobjects.AccountID
		displayText string
		contentRef  valueobjects.ContentRef
	}{
		{name: "missing owner", owner: "", displayText: "HELLO", contentRef: "ref"},
		{name: "empty display text", owner: owner, displayText: "", contentRef: "ref"},
		{name: "empty content ref", owner: owner, displayText: "HELLO", contentRef: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := NewAsset(tt.owner, tt.displayText, tt.contentRef, 5)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Nil(t, asset)
		})
	}
}

func TestAsset_Transfer(t *testing.T) {
	owner := valueobjects.NewAccountID()
	asset, err := NewAsset(owner, "HELLO", valueobjects.ContentRef("ref-1"), 5)
	require.NoError(t, err)
	asset.MarkEventsAsCommitted()

	buyer := valueobjects.NewAccountID()
	require.NoError(t, asset.Transfer(buyer.String()))

	assert.Equal(t, buyer.String(), asset.Owner())
	assert.False(t, asset.OwnedBy(owner.String()))

	uncommitted := asset.GetUncommittedEvents()
	require.Len(t, uncommitted, 1)
	transferred, ok := uncommitted[0].(events.AssetTransferred)
	require.True(t, ok)
	assert.Equal(t, owner.String(), transferred.From)
	assert.Equal(t, buyer.String(), transferred.To)
}

func TestAsset_Transfer_EmptyTarget(t *testing.T) {
	asset, err := NewAsset(valueobjects.NewAccountID(), "HELLO", valueobjects.ContentRef("ref-1"), 5)
	require.NoError(t, err)

	err = asset.Transfer("")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAsset_MintTimeFieldsAreImmutable(t *testing.T) {
	asset, err := NewAsset(valueobjects.NewAccountID(), "HELLO", valueobjects.ContentRef("ref-1"), 5)
	require.NoError(t, err)

	text := asset.DisplayText()
	ref := asset.ContentRef()
	consumed := asset.LettersConsumed()

	// Transfers touch ownership only
	require.NoError(t, asset.Transfer(valueobjects.NewAccountID().String()))
	require.NoError(t, asset.Transfer(valueobjects.NewAccountID().String()))

	assert.Equal(t, text, asset.DisplayText())
	assert.Equal(t, ref, asset.ContentRef())
	assert.Equal(t, consumed, asset.LettersConsumed())
}

func TestReconstructAsset(t *testing.T) {
	id := valueobjects.NewAssetID()
	createdAt := time.Now().Add(-time.Hour)

	asset, err := ReconstructAsset(id, "holder", "WORD", valueobjects.ContentRef("ref-2"), 4, createdAt, 3)
	require.NoError(t, err)

	assert.Equal(t, id, asset.ID())
	assert.Equal(t, "holder", asset.Owner())
	assert.Equal(t, 3, asset.Version())
	assert.Empty(t, asset.GetUncommittedEvents())

	_, err = ReconstructAsset("", "holder", "WORD", "ref", 4, createdAt, 1)
	require.Error(t, err)
}
