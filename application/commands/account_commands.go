package commands

import (
	apperrors "wordhoard-backend/pkg/errors"
)

// CreateAccountCommand represents a command to open a new account
type CreateAccountCommand struct {
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// Validate validates the command
func (c CreateAccountCommand) Validate() error {
	return nil
}

// UpdateProfileCommand represents a command to update profile fields
type UpdateProfileCommand struct {
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
}

// Validate validates the command
func (c UpdateProfileCommand) Validate() error {
	if c.AccountID == "" {
		return apperrors.NewValidation("account ID is required")
	}
	return nil
}

// AppendLettersCommand credits raw text to an account's inventory.
// Admin-gated: letters normally enter the ledger only through claims.
type AppendLettersCommand struct {
	AccountID  string `json:"account_id"`
	Letters    string `json:"letters"`
	AdminToken string `json:"admin_token"`
}

// Validate validates the command
func (c AppendLettersCommand) Validate() error {
	if c.AccountID == "" {
		return apperrors.NewValidation("account ID is required")
	}
	return nil
}

// AddBookmarkCommand represents a command to save a content reference
type AddBookmarkCommand struct {
	AccountID string `json:"account_id"`
	Ref       string `json:"ref"`
	Kind      string `json:"kind"`
	Note      string `json:"note,omitempty"`
}

// Validate validates the command
func (c AddBookmarkCommand) Validate() error {
	if c.AccountID == "" {
		return apperrors.NewValidation("account ID is required")
	}
	if c.Ref == "" {
		return apperrors.NewValidation("bookmark ref is required")
	}
	return nil
}

// RemoveBookmarkCommand represents a command to delete a saved reference
type RemoveBookmarkCommand struct {
	AccountID string `json:"account_id"`
	Ref       string `json:"ref"`
}

// Validate validates the command
func (c RemoveBookmarkCommand) Validate() error {
	if c.AccountID == "" {
		return apperrors.NewValidation("account ID is required")
	}
	if c.Ref == "" {
		return apperrors.NewValidation("bookmark ref is required")
	}
	return nil
}
