package events

import (
	"time"

	"wordhoard-backend/domain/core/valueobjects"
)

// LocationCreated is raised when an admin registers a location
type LocationCreated struct {
	BaseEvent
	Location valueobjects.LocationID `json:"location"`
	Label    string                  `json:"label"`
}

// NewLocationCreated creates a LocationCreated event
func NewLocationCreated(location valueobjects.LocationID, label string, timestamp time.Time) LocationCreated {
	return LocationCreated{
		BaseEvent: BaseEvent{
			AggregateID: location.String(),
			EventType:   TypeLocationCreated,
			Timestamp:   timestamp,
			Version:     1,
		},
		Location: location,
		Label:    label,
	}
}

// LocationToggled is raised when an admin flips the active flag
type LocationToggled struct {
	BaseEvent
	Location valueobjects.LocationID `json:"location"`
	Active   bool                    `json:"active"`
}

// NewLocationToggled creates a LocationToggled event
func NewLocationToggled(location valueobjects.LocationID, active bool, timestamp time.Time) LocationToggled {
	return LocationToggled{
		BaseEvent: BaseEvent{
			AggregateID: location.String(),
			EventType:   TypeLocationToggled,
			Timestamp:   timestamp,
			Version:     1,
		},
		Location: location,
		Active:   active,
	}
}

// LettersClaimed is raised when a claim draw succeeds
type LettersClaimed struct {
	BaseEvent
	Owner    valueobjects.AccountID  `json:"owner"`
	Location valueobjects.LocationID `json:"location"`
	Letter   string                  `json:"letter"`
}

// NewLettersClaimed creates a LettersClaimed event
func NewLettersClaimed(owner valueobjects.AccountID, location valueobjects.LocationID, letter string, timestamp time.Time) LettersClaimed {
	return LettersClaimed{
		BaseEvent: BaseEvent{
			AggregateID: location.String(),
			EventType:   TypeLettersClaimed,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner:    owner,
		Location: location,
		Letter:   letter,
	}
}

// Boasted is raised when an account boasts an asset at a location
type Boasted struct {
	BaseEvent
	Owner    valueobjects.AccountID  `json:"owner"`
	Location valueobjects.LocationID `json:"location"`
	Asset    valueobjects.AssetID    `json:"asset"`
}

// NewBoasted creates a Boasted event
func NewBoasted(owner valueobjects.AccountID, location valueobjects.LocationID, asset valueobjects.AssetID, timestamp time.Time) Boasted {
	return Boasted{
		BaseEvent: BaseEvent{
			AggregateID: location.String(),
			EventType:   TypeBoasted,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner:    owner,
		Location: location,
		Asset:    asset,
	}
}

// Unboasted is raised when an account withdraws its boast
type Unboasted struct {
	BaseEvent
	Owner    valueobjects.AccountID  `json:"owner"`
	Location valueobjects.LocationID `json:"location"`
}

// NewUnboasted creates an Unboasted event
func NewUnboasted(owner valueobjects.AccountID, location valueobjects.LocationID, timestamp time.Time) Unboasted {
	return Unboasted{
		BaseEvent: BaseEvent{
			AggregateID: location.String(),
			EventType:   TypeUnboasted,
			Timestamp:   timestamp,
			Version:     1,
		},
		Owner:    owner,
		Location: location,
	}
}
