package events

import (
	"time"

	"wordhoard-backend/domain/core/valueobjects"
)

// AssetMinted is raised when letters are converted into a word asset
type AssetMinted struct {
	BaseEvent
	Owner           string               `json:"owner"`
	Asset           valueobjects.AssetID `json:"asset"`
	LettersConsumed uint64               `json:"letters_consumed"`
}

// NewAssetMinted creates an AssetMinted event
func NewAssetMinted(owner string, asset valueobjects.AssetID, lettersConsumed uint64, timestamp time.Time) AssetMinted {
	return AssetMinted{
		BaseEvent: BaseEvent{
			AggregateID: asset.String(),
			EventType:   TypeAssetMinted,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner:           owner,
		Asset:           asset,
		LettersConsumed: lettersConsumed,
	}
}

// AssetTransferred is raised on every ownership reassignment,
// including moves in and out of exchange escrow
type AssetTransferred struct {
	BaseEvent
	From  string               `json:"from"`
	To    string               `json:"to"`
	Asset valueobjects.AssetID `json:"asset"`
}

// NewAssetTransferred creates an AssetTransferred event
func NewAssetTransferred(from, to string, asset valueobjects.AssetID, timestamp time.Time) AssetTransferred {
	return AssetTransferred{
		BaseEvent: BaseEvent{
			AggregateID: asset.String(),
			EventType:   TypeAssetTransferred,
			Timestamp:   timestamp,
			Version:     1,
		},
		From:  from,
		To:    to,
		Asset: asset,
	}
}
