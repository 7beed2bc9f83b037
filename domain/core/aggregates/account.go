package aggregates

import (
	"time"

	"wordhoard-backend/domain/config"
	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	pkgerrors "wordhoard-backend/pkg/errors"
)

// VisitRecord tracks one account's claim history at a single location
type VisitRecord struct {
	ClaimCount     uint64
	LastClaimEpoch uint64
}

// Bookmark stores one saved content reference
type Bookmark struct {
	Kind      string
	Note      string
	CreatedAt time.Time
}

// Account is the aggregate root for a player's letter inventory,
// visit history and social state. It guards the ledger invariants:
// inventory counts never go negative, and visit_total always equals the
// sum of per-location claim counts.
type Account struct {
	id            valueobjects.AccountID
	displayName   string
	bio           string
	inventory     valueobjects.LetterSet
	visitTotal    uint64
	visitHistory  map[valueobjects.LocationID]VisitRecord
	boastLocation *valueobjects.LocationID
	bookmarks     map[valueobjects.ContentRef]Bookmark
	createdAt     time.Time
	updatedAt     time.Time
	version       int
	events        []events.DomainEvent
	config        *config.DomainConfig
}

// NewAccount creates a new account aggregate under the active rule set
func NewAccount() *Account {
	return NewAccountWithConfig(config.Current())
}

// NewAccountWithConfig creates a new account aggregate with specific configuration
func NewAccountWithConfig(cfg *config.DomainConfig) *Account {
	if cfg == nil {
		cfg = config.Current()
	}

	now := time.Now()
	account := &Account{
		id:           valueobjects.NewAccountID(),
		visitHistory: make(map[valueobjects.LocationID]VisitRecord),
		bookmarks:    make(map[valueobjects.ContentRef]Bookmark),
		createdAt:    now,
		updatedAt:    now,
		version:      1,
		events:       []events.DomainEvent{},
		config:       cfg,
	}

	account.addEvent(events.NewAccountCreated(account.id, now))

	return account
}

// ReconstructAccount rebuilds an account from repository data
func ReconstructAccount(
	id valueobjects.AccountID,
	displayName, bio string,
	inventory valueobjects.LetterSet,
	visitTotal uint64,
	visitHistory map[valueobjects.LocationID]VisitRecord,
	boastLocation *valueobjects.LocationID,
	bookmarks map[valueobjects.ContentRef]Bookmark,
	createdAt, updatedAt time.Time,
	version int,
) (*Account, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidation("required fields missing for account reconstruction")
	}

	if visitHistory == nil {
		visitHistory = make(map[valueobjects.LocationID]VisitRecord)
	}
	if bookmarks == nil {
		bookmarks = make(map[valueobjects.ContentRef]Bookmark)
	}

	return &Account{
		id:            id,
		displayName:   displayName,
		bio:           bio,
		inventory:     inventory,
		visitTotal:    visitTotal,
		visitHistory:  visitHistory,
		boastLocation: boastLocation,
		bookmarks:     bookmarks,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		events:        []events.DomainEvent{},
		config:        config.Current(),
	}, nil
}

// ID returns the account's unique identifier
func (a *Account) ID() valueobjects.AccountID { return a.id }

// DisplayName returns the optional display name
func (a *Account) DisplayName() string { return a.displayName }

// Bio returns the optional profile bio
func (a *Account) Bio() string { return a.bio }

// VisitTotal returns the monotonic count of accepted claims
func (a *Account) VisitTotal() uint64 { return a.visitTotal }

// CreatedAt returns when the account was created
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns when the account last changed
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// Version returns the aggregate version used for optimistic concurrency
func (a *Account) Version() int { return a.version }

// BoastLocation returns the location the account currently boasts at, if any
func (a *Account) BoastLocation() *valueobjects.LocationID {
	if a.boastLocation == nil {
		return nil
	}
	loc := *a.boastLocation
	return &loc
}

// Inventory returns a snapshot of the letter multiset
func (a *Account) Inventory() valueobjects.LetterSet {
	return a.inventory
}

// VisitHistory returns a copy of the per-location claim records
func (a *Account) VisitHistory() map[valueobjects.LocationID]VisitRecord {
	out := make(map[valueobjects.LocationID]VisitRecord, len(a.visitHistory))
	for k, v := range a.visitHistory {
		out[k] = v
	}
	return out
}

// Bookmarks returns a copy of the saved content references
func (a *Account) Bookmarks() map[valueobjects.ContentRef]Bookmark {
	out := make(map[valueobjects.ContentRef]Bookmark, len(a.bookmarks))
	for k, v := range a.bookmarks {
		out[k] = v
	}
	return out
}

// SetProfile updates the optional display name and bio
func (a *Account) SetProfile(displayName, bio string) {
	a.displayName = displayName
	a.bio = bio
	a.touch()
}

// AppendLetters normalizes raw text and adds it to the inventory.
// Always succeeds; returns the normalized text actually credited.
func (a *Account) AppendLetters(raw string) string {
	normalized := valueobjects.Normalize(raw)
	a.inventory.Add(valueobjects.NewLetterSet(normalized))
	a.touch()

	a.addEvent(events.NewLettersAppended(a.id, normalized, a.updatedAt))

	return normalized
}

// CanConsume reports whether the inventory covers the normalized need.
// Advisory only: Consume re-validates under its own mutation boundary.
func (a *Account) CanConsume(raw string) bool {
	need := valueobjects.NewLetterSet(raw)
	return a.inventory.Covers(need)
}

// Consume atomically re-validates availability and subtracts the
// normalized need. A prior CanConsume is never a substitute for the
// internal check: validation and subtraction happen as one step, so a
// concurrent caller that lost the race observes InventoryShortage and
// no count ever goes negative. Returns the normalized text charged.
func (a *Account) Consume(raw string) (string, error) {
	normalized := valueobjects.Normalize(raw)
	need := valueobjects.NewLetterSet(normalized)

	if err := a.inventory.Subtract(need); err != nil {
		return "", err
	}
	a.touch()

	a.addEvent(events.NewLettersConsumed(a.id, normalized, a.updatedAt))

	return normalized, nil
}

// RecordVisit registers an accepted claim at a location. The location's
// own duplicate-claim guard runs first; this side only keeps the history
// and the visit_total invariant in sync.
func (a *Account) RecordVisit(location valueobjects.LocationID, epoch uint64) {
	record := a.visitHistory[location]
	record.ClaimCount++
	record.LastClaimEpoch = epoch
	a.visitHistory[location] = record
	a.visitTotal++
	a.touch()

	a.addEvent(events.NewVisitRecorded(a.id, location, record.ClaimCount, epoch, a.updatedAt))
}

// SetBoast points the account's boast at a location
func (a *Account) SetBoast(location valueobjects.LocationID) {
	a.boastLocation = &location
	a.touch()

	a.addEvent(events.NewBoastSet(a.id, location, a.updatedAt))
}

// ClearBoast removes the boast pointer. No-op if none is set.
func (a *Account) ClearBoast() {
	if a.boastLocation == nil {
		return
	}
	a.boastLocation = nil
	a.touch()

	a.addEvent(events.NewBoastSet(a.id, "", a.updatedAt))
}

// AddBookmark saves a content reference with its kind and note
func (a *Account) AddBookmark(ref valueobjects.ContentRef, kind, note string) error {
	if ref.IsZero() {
		return pkgerrors.NewValidation("bookmark reference cannot be empty")
	}
	if _, exists := a.bookmarks[ref]; !exists && a.config != nil && len(a.bookmarks) >= a.config.MaxBookmarksPerAccount {
		return pkgerrors.NewConflict("bookmark limit reached")
	}

	a.bookmarks[ref] = Bookmark{Kind: kind, Note: note, CreatedAt: time.Now()}
	a.touch()

	a.addEvent(events.NewBookmarkAdded(a.id, ref, kind, a.updatedAt))

	return nil
}

// RemoveBookmark deletes a saved reference
func (a *Account) RemoveBookmark(ref valueobjects.ContentRef) error {
	if _, exists := a.bookmarks[ref]; !exists {
		return pkgerrors.NewNotFound("bookmark")
	}

	delete(a.bookmarks, ref)
	a.touch()

	a.addEvent(events.NewBookmarkRemoved(a.id, ref, a.updatedAt))

	return nil
}

// Validate ensures account invariants
func (a *Account) Validate() error {
	var total uint64
	for _, record := range a.visitHistory {
		total += record.ClaimCount
	}
	if total != a.visitTotal {
		return pkgerrors.NewValidation("visit total does not match claim history")
	}
	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (a *Account) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(a.events))
	copy(out, a.events)
	return out
}

// MarkEventsAsCommitted clears all uncommitted events
func (a *Account) MarkEventsAsCommitted() {
	a.events = []events.DomainEvent{}
}

func (a *Account) addEvent(event events.DomainEvent) {
	a.events = append(a.events, event)
}

func (a *Account) touch() {
	a.updatedAt = time.Now()
	a.version++
}
