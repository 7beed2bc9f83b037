package commands

import (
	apperrors "wordhoard-backend/pkg/errors"
)

// MintAssetCommand spells a word: consumes letters and mints an asset
type MintAssetCommand struct {
	AccountID   string `json:"account_id"`
	ConsumeText string `json:"consume_text"`
	DisplayText string `json:"display_text"`
	ContentRef  string `json:"content_ref"`
}

// Validate validates the command
func (c MintAssetCommand) Validate() error {
	if c.AccountID == "" {
		return apperrors.NewValidation("account ID is required")
	}
	if c.DisplayText == "" {
		return apperrors.NewValidation("display text is required")
	}
	if c.ContentRef == "" {
		return apperrors.NewValidation("content ref is required")
	}
	return nil
}

// TransferAssetCommand reassigns asset ownership
type TransferAssetCommand struct {
	AssetID string `json:"asset_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Validate validates the command
func (c TransferAssetCommand) Validate() error {
	if c.AssetID == "" {
		return apperrors.NewValidation("asset ID is required")
	}
	if c.From == "" {
		return apperrors.NewValidation("sender is required")
	}
	if c.To == "" {
		return apperrors.NewValidation("recipient is required")
	}
	return nil
}
