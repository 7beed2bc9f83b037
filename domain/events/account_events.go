package events

import (
	"time"

	"wordhoard-backend/domain/core/valueobjects"
)

// AccountCreated is raised when a new account is created
type AccountCreated struct {
	BaseEvent
	Owner valueobjects.AccountID `json:"owner"`
}

// NewAccountCreated creates an AccountCreated event
func NewAccountCreated(owner valueobjects.AccountID, timestamp time.Time) AccountCreated {
	return AccountCreated{
		BaseEvent: BaseEvent{
			AggregateID: owner.String(),
			EventType:   TypeAccountCreated,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner: owner,
	}
}

// VisitRecorded is raised when an accepted claim lands in the visit history
type VisitRecorded struct {
	BaseEvent
	Owner    valueobjects.AccountID  `json:"owner"`
	Location valueobjects.LocationID `json:"location"`
	Count    uint64                  `json:"count"`
	Epoch    uint64                  `json:"epoch"`
}

// NewVisitRecorded creates a VisitRecorded event
func NewVisitRecorded(owner valueobjects.AccountID, location valueobjects.LocationID, count, epoch uint64, timestamp time.Time) VisitRecorded {
	return VisitRecorded{
		BaseEvent: BaseEvent{
			AggregateID: owner.String(),
			EventType:   TypeVisitRecorded,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner:    owner,
		Location: location,
		Count:    count,
		Epoch:    epoch,
	}
}

// LettersAppended is raised when normalized letters enter an inventory
type LettersAppended struct {
	BaseEvent
	Owner   valueobjects.AccountID `json:"owner"`
	Letters string                 `json:"letters"`
}

// NewLettersAppended creates a LettersAppended event
func NewLettersAppended(owner valueobjects.AccountID, letters string, timestamp time.Time) LettersAppended {
	return LettersAppended{
		BaseEvent: BaseEvent{
			AggregateID: owner.String(),
			EventType:   TypeLettersAppended,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner:   owner,
		Letters: letters,
	}
}

// LettersConsumed is raised when an atomic consumption succeeds.
// Letters carries the normalized text actually charged.
type LettersConsumed struct {
	BaseEvent
	Owner   valueobjects.AccountID `json:"owner"`
	Letters string                 `json:"letters"`
}

// NewLettersConsumed creates a LettersConsumed event
func NewLettersConsumed(owner valueobjects.AccountID, letters string, timestamp time.Time) LettersConsumed {
	return LettersConsumed{
		BaseEvent: BaseEvent{
			AggregateID: owner.String(),
			EventType:   TypeLettersConsumed,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner:   owner,
		Letters: letters,
	}
}

// BoastSet is raised when an account's boast pointer changes.
// Location is empty when the pointer is cleared.
type BoastSet struct {
	BaseEvent
	Owner    valueobjects.AccountID  `json:"owner"`
	Location valueobjects.LocationID `json:"location,omitempty"`
}

// NewBoastSet creates a BoastSet event
func NewBoastSet(owner valueobjects.AccountID, location valueobjects.LocationID, timestamp time.Time) BoastSet {
	return BoastSet{
		BaseEvent: BaseEvent{
			AggregateID: owner.String(),
			EventType:   TypeBoastSet,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner:    owner,
		Location: location,
	}
}

// BookmarkAdded is raised when a content reference is bookmarked
type BookmarkAdded struct {
	BaseEvent
	Owner valueobjects.AccountID  `json:"owner"`
	Ref   valueobjects.ContentRef `json:"ref"`
	Kind  string                  `json:"kind"`
}

// NewBookmarkAdded creates a BookmarkAdded event
func NewBookmarkAdded(owner valueobjects.AccountID, ref valueobjects.ContentRef, kind string, timestamp time.Time) BookmarkAdded {
	return BookmarkAdded{
		BaseEvent: BaseEvent{
			AggregateID: owner.String(),
			EventType:   TypeBookmarkAdded,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner: owner,
		Ref:   ref,
		Kind:  kind,
	}
}

// BookmarkRemoved is raised when a bookmark is removed
type BookmarkRemoved struct {
	BaseEvent
	Owner valueobjects.AccountID  `json:"owner"`
	Ref   valueobjects.ContentRef `json:"ref"`
}

// NewBookmarkRemoved creates a BookmarkRemoved event
func NewBookmarkRemoved(owner valueobjects.AccountID, ref valueobjects.ContentRef, timestamp time.Time) BookmarkRemoved {
	return BookmarkRemoved{
		BaseEvent: BaseEvent{
			AggregateID: owner.String(),
			EventType:   TypeBookmarkRemoved,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner: owner,
		Ref:   ref,
	}
}
