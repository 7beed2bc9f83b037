package entities

import (
	"time"

	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	pkgerrors "wordhoard-backend/pkg/errors"
)

// Asset is an immutable word asset minted from consumed letters.
// Display text, content reference and the consumed-letter count are fixed
// at mint time; only ownership ever changes afterwards.
type Asset struct {
	// Private fields ensure encapsulation
	id              valueobjects.AssetID
	owner           string // account id, or exchange id while in escrow
	displayText     string
	contentRef      valueobjects.ContentRef
	lettersConsumed uint64
	createdAt       time.Time
	version         int

	// Domain events that occurred during this entity's lifetime
	events []events.DomainEvent
}

// NewAsset mints a new asset owned by the given account.
// lettersConsumed is the count of non-whitespace bytes in the consumption
// string; the minting handler computes it alongside the ledger charge.
func NewAsset(owner valueobjects.AccountID, displayText string, contentRef valueobjects.ContentRef, lettersConsumed uint64) (*Asset, error) {
	if owner.IsZero() {
		return nil, pkgerrors.NewValidation("owner is required")
	}
	if displayText == "" {
		return nil, pkgerrors.NewValidation("display text cannot be empty")
	}
	if contentRef.IsZero() {
		return nil, pkgerrors.NewValidation("content reference cannot be empty")
	}

	now := time.Now()
	asset := &Asset{
		id:              valueobjects.NewAssetID(),
		owner:           owner.String(),
		displayText:     displayText,
		contentRef:      contentRef,
		lettersConsumed: lettersConsumed,
		createdAt:       now,
		version:         1,
		events:          []events.DomainEvent{},
	}

	asset.addEvent(events.NewAssetMinted(asset.owner, asset.id, lettersConsumed, now))

	return asset, nil
}

// ReconstructAsset rebuilds an asset from repository data
func ReconstructAsset(
	id valueobjects.AssetID,
	owner string,
	displayText string,
	contentRef valueobjects.ContentRef,
	lettersConsumed uint64,
	createdAt time.Time,
	version int,
) (*Asset, error) {
	if id.IsZero() || owner == "" {
		return nil, pkgerrors.NewValidation("required fields missing for asset reconstruction")
	}

	return &Asset{
		id:              id,
		owner:           owner,
		displayText:     displayText,
		contentRef:      contentRef,
		lettersConsumed: lettersConsumed,
		createdAt:       createdAt,
		version:         version,
		events:          []events.DomainEvent{},
	}, nil
}

// ID returns the asset's unique identifier
func (a *Asset) ID() valueobjects.AssetID { return a.id }

// Owner returns the current holder's identifier
func (a *Asset) Owner() string { return a.owner }

// DisplayText returns the immutable display text
func (a *Asset) DisplayText() string { return a.displayText }

// ContentRef returns the immutable content reference
func (a *Asset) ContentRef() valueobjects.ContentRef { return a.contentRef }

// LettersConsumed returns the letter count charged at mint time
func (a *Asset) LettersConsumed() uint64 { return a.lettersConsumed }

// CreatedAt returns when the asset was minted
func (a *Asset) CreatedAt() time.Time { return a.createdAt }

// Version returns the entity version used for optimistic concurrency
func (a *Asset) Version() int { return a.version }

// OwnedBy reports whether the given identifier currently holds the asset
func (a *Asset) OwnedBy(holder string) bool { return a.owner == holder }

// Transfer reassigns ownership unconditionally. Business rules (price,
// approval) live in the exchange, not here.
func (a *Asset) Transfer(to string) error {
	if to == "" {
		return pkgerrors.NewValidation("transfer target cannot be empty")
	}

	from := a.owner
	a.owner = to
	a.version++

	a.addEvent(events.NewAssetTransferred(from, to, a.id, time.Now()))

	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (a *Asset) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(a.events))
	copy(out, a.events)
	return out
}

// MarkEventsAsCommitted clears all uncommitted events
func (a *Asset) MarkEventsAsCommitted() {
	a.events = []events.DomainEvent{}
}

func (a *Asset) addEvent(event events.DomainEvent) {
	a.events = append(a.events, event)
}
