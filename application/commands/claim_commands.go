package commands

import (
	apperrors "wordhoard-backend/pkg/errors"
)

// ClaimLetterCommand represents a command to claim a letter at a location
type ClaimLetterCommand struct {
	AccountID  string `json:"account_id"`
	LocationID string `json:"location_id"`
}

// Validate validates the command
func (c ClaimLetterCommand) Validate() error {
	if c.AccountID == "" {
		return apperrors.NewValidation("account ID is required")
	}
	if c.LocationID == "" {
		return apperrors.NewValidation("location ID is required")
	}
	return nil
}

// BoastCommand represents a command to show off an asset at a location
type BoastCommand struct {
	AccountID  string `json:"account_id"`
	LocationID string `json:"location_id"`
	AssetID    string `json:"asset_id"`
}

// Validate validates the command
func (c BoastCommand) Validate() error {
	if c.AccountID == "" {
		return apperrors.NewValidation("account ID is required")
	}
	if c.LocationID == "" {
		return apperrors.NewValidation("location ID is required")
	}
	if c.AssetID == "" {
		return apperrors.NewValidation("asset ID is required")
	}
	return nil
}

// UnboastCommand represents a command to withdraw a boast
type UnboastCommand struct {
	AccountID  string `json:"account_id"`
	LocationID string `json:"location_id"`
}

// Validate validates the command
func (c UnboastCommand) Validate() error {
	if c.AccountID == "" {
		return apperrors.NewValidation("account ID is required")
	}
	if c.LocationID == "" {
		return apperrors.NewValidation("location ID is required")
	}
	return nil
}
