package commands

import (
	apperrors "wordhoard-backend/pkg/errors"
)

// CreateLocationCommand registers a new claimable location. Admin-gated.
type CreateLocationCommand struct {
	Label       string `json:"label"`
	MetadataRef string `json:"metadata_ref,omitempty"`
	GeofenceRef string `json:"geofence_ref,omitempty"`
	AdminToken  string `json:"admin_token"`
}

// Validate validates the command
func (c CreateLocationCommand) Validate() error {
	if c.Label == "" {
		return apperrors.NewValidation("label is required")
	}
	return nil
}

// SetLocationActiveCommand toggles whether a location accepts claims. Admin-gated.
type SetLocationActiveCommand struct {
	LocationID string `json:"location_id"`
	Active     bool   `json:"active"`
	AdminToken string `json:"admin_token"`
}

// Validate validates the command
func (c SetLocationActiveCommand) Validate() error {
	if c.LocationID == "" {
		return apperrors.NewValidation("location ID is required")
	}
	return nil
}
