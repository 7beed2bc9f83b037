package aggregates

import (
	"time"

	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	pkgerrors "wordhoard-backend/pkg/errors"
)

// ClaimRecord tracks one visitor's claim history at this location
type ClaimRecord struct {
	ClaimCount     uint64
	LastClaimEpoch uint64
}

// BoastRecord tracks one visitor's boasted asset at this location
type BoastRecord struct {
	Asset      valueobjects.AssetID
	SinceEpoch uint64
}

// Location is the aggregate root for a claimable location. It owns the
// per-visitor claim state machine: a visitor moves from no record to a
// claimed record, and each further accepted claim must carry a strictly
// later epoch than the previous one.
type Location struct {
	id          valueobjects.LocationID
	active      bool
	label       string
	metadataRef valueobjects.ContentRef
	geofenceRef valueobjects.ContentRef
	visitorLog  map[valueobjects.AccountID]ClaimRecord
	boastLog    map[valueobjects.AccountID]BoastRecord
	createdAt   time.Time
	updatedAt   time.Time
	version     int
	events      []events.DomainEvent
}

// NewLocation registers a new active location. The caller is responsible
// for admin capability authorization; the aggregate only validates shape.
func NewLocation(label string, metadataRef, geofenceRef valueobjects.ContentRef) (*Location, error) {
	if label == "" {
		return nil, pkgerrors.NewValidation("label cannot be empty")
	}

	now := time.Now()
	location := &Location{
		id:          valueobjects.NewLocationID(),
		active:      true,
		label:       label,
		metadataRef: metadataRef,
		geofenceRef: geofenceRef,
		visitorLog:  make(map[valueobjects.AccountID]ClaimRecord),
		boastLog:    make(map[valueobjects.AccountID]BoastRecord),
		createdAt:   now,
		updatedAt:   now,
		version:     1,
		events:      []events.DomainEvent{},
	}

	location.addEvent(events.NewLocationCreated(location.id, label, now))

	return location, nil
}

// ReconstructLocation rebuilds a location from repository data
func ReconstructLocation(
	id valueobjects.LocationID,
	active bool,
	label string,
	metadataRef, geofenceRef valueobjects.ContentRef,
	visitorLog map[valueobjects.AccountID]ClaimRecord,
	boastLog map[valueobjects.AccountID]BoastRecord,
	createdAt, updatedAt time.Time,
	version int,
) (*Location, error) {
	if id.IsZero() || label == "" {
		return nil, pkgerrors.NewValidation("required fields missing for location reconstruction")
	}

	if visitorLog == nil {
		visitorLog = make(map[valueobjects.AccountID]ClaimRecord)
	}
	if boastLog == nil {
		boastLog = make(map[valueobjects.AccountID]BoastRecord)
	}

	return &Location{
		id:          id,
		active:      active,
		label:       label,
		metadataRef: metadataRef,
		geofenceRef: geofenceRef,
		visitorLog:  visitorLog,
		boastLog:    boastLog,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     version,
		events:      []events.DomainEvent{},
	}, nil
}

// ID returns the location's unique identifier
func (l *Location) ID() valueobjects.LocationID { return l.id }

// Active reports whether the location accepts claims
func (l *Location) Active() bool { return l.active }

// Label returns the display label
func (l *Location) Label() string { return l.label }

// MetadataRef returns the opaque metadata reference
func (l *Location) MetadataRef() valueobjects.ContentRef { return l.metadataRef }

// GeofenceRef returns the opaque geofence policy reference
func (l *Location) GeofenceRef() valueobjects.ContentRef { return l.geofenceRef }

// CreatedAt returns when the location was registered
func (l *Location) CreatedAt() time.Time { return l.createdAt }

// UpdatedAt returns when the location last changed
func (l *Location) UpdatedAt() time.Time { return l.updatedAt }

// Version returns the aggregate version used for optimistic concurrency
func (l *Location) Version() int { return l.version }

// VisitorLog returns a copy of the per-account claim records
func (l *Location) VisitorLog() map[valueobjects.AccountID]ClaimRecord {
	out := make(map[valueobjects.AccountID]ClaimRecord, len(l.visitorLog))
	for k, v := range l.visitorLog {
		out[k] = v
	}
	return out
}

// BoastLog returns a copy of the per-account boast records
func (l *Location) BoastLog() map[valueobjects.AccountID]BoastRecord {
	out := make(map[valueobjects.AccountID]BoastRecord, len(l.boastLog))
	for k, v := range l.boastLog {
		out[k] = v
	}
	return out
}

// SetActive toggles whether the location accepts claims
func (l *Location) SetActive(active bool) {
	l.active = active
	l.touch()

	l.addEvent(events.NewLocationToggled(l.id, active, l.updatedAt))
}

// RecordClaim validates and registers a claim by the account at the
// given epoch, recording the drawn letter. The anti-replay guard and the
// log update happen as one step: a claim is either fully registered or
// rejected with no state change. The epoch clock is non-decreasing, so
// an epoch at or before the last accepted one means a repeat claim
// within the current window.
func (l *Location) RecordClaim(account valueobjects.AccountID, epoch uint64, letter string) error {
	if !l.active {
		return pkgerrors.NewInactive("location is not accepting claims")
	}

	record, visited := l.visitorLog[account]
	if visited && epoch <= record.LastClaimEpoch {
		return pkgerrors.NewDuplicateClaim("letter already claimed here this epoch")
	}

	record.ClaimCount++
	record.LastClaimEpoch = epoch
	l.visitorLog[account] = record
	l.touch()

	l.addEvent(events.NewLettersClaimed(account, l.id, letter, l.updatedAt))

	return nil
}

// Boast records the account's boasted asset, replacing any previous
// record. Ownership of the asset is deliberately not verified here;
// callers re-verify off-core if they care (known accepted gap).
func (l *Location) Boast(account valueobjects.AccountID, asset valueobjects.AssetID, epoch uint64) {
	l.boastLog[account] = BoastRecord{Asset: asset, SinceEpoch: epoch}
	l.touch()

	l.addEvent(events.NewBoasted(account, l.id, asset, l.updatedAt))
}

// Unboast removes the account's boast record. Removing an absent record
// is a no-op, not an error.
func (l *Location) Unboast(account valueobjects.AccountID) {
	delete(l.boastLog, account)
	l.touch()

	l.addEvent(events.NewUnboasted(account, l.id, l.updatedAt))
}

// GetUncommittedEvents returns all uncommitted domain events
func (l *Location) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(l.events))
	copy(out, l.events)
	return out
}

// MarkEventsAsCommitted clears all uncommitted events
func (l *Location) MarkEventsAsCommitted() {
	l.events = []events.DomainEvent{}
}

func (l *Location) addEvent(event events.DomainEvent) {
	l.events = append(l.events, event)
}

func (l *Location) touch() {
	l.updatedAt = time.Now()
	l.version++
}
