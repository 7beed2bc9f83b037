package commands

import (
	apperrors "wordhoard-backend/pkg/errors"
)

// CreateExchangeCommand opens a new exchange. Admin-gated.
type CreateExchangeCommand struct {
	FeeRateBps uint64 `json:"fee_rate_bps"`
	AdminToken string `json:"admin_token"`
}

// Validate validates the command
func (c CreateExchangeCommand) Validate() error {
	return nil
}

// ListAssetCommand places an asset into escrow with an asking price
type ListAssetCommand struct {
	ExchangeID string `json:"exchange_id"`
	AssetID    string `json:"asset_id"`
	SellerID   string `json:"seller_id"`
	Price      uint64 `json:"price"`
}

// Validate validates the command
func (c ListAssetCommand) Validate() error {
	if c.ExchangeID == "" {
		return apperrors.NewValidation("exchange ID is required")
	}
	if c.AssetID == "" {
		return apperrors.NewValidation("asset ID is required")
	}
	if c.SellerID == "" {
		return apperrors.NewValidation("seller ID is required")
	}
	return nil
}

// DelistAssetCommand withdraws an active listing
type DelistAssetCommand struct {
	ExchangeID string `json:"exchange_id"`
	AssetID    string `json:"asset_id"`
	CallerID   string `json:"caller_id"`
}

// Validate validates the command
func (c DelistAssetCommand) Validate() error {
	if c.ExchangeID == "" {
		return apperrors.NewValidation("exchange ID is required")
	}
	if c.AssetID == "" {
		return apperrors.NewValidation("asset ID is required")
	}
	if c.CallerID == "" {
		return apperrors.NewValidation("caller ID is required")
	}
	return nil
}

// PurchaseAssetCommand buys a listed asset with an offered payment value
type PurchaseAssetCommand struct {
	ExchangeID string `json:"exchange_id"`
	AssetID    string `json:"asset_id"`
	BuyerID    string `json:"buyer_id"`
	Payment    uint64 `json:"payment"`
}

// Validate validates the command
func (c PurchaseAssetCommand) Validate() error {
	if c.ExchangeID == "" {
		return apperrors.NewValidation("exchange ID is required")
	}
	if c.AssetID == "" {
		return apperrors.NewValidation("asset ID is required")
	}
	if c.BuyerID == "" {
		return apperrors.NewValidation("buyer ID is required")
	}
	return nil
}

// SetFeeRateCommand updates the exchange fee policy. Admin-gated.
type SetFeeRateCommand struct {
	ExchangeID string `json:"exchange_id"`
	FeeRateBps uint64 `json:"fee_rate_bps"`
	AdminToken string `json:"admin_token"`
}

// Validate validates the command
func (c SetFeeRateCommand) Validate() error {
	if c.ExchangeID == "" {
		return apperrors.NewValidation("exchange ID is required")
	}
	return nil
}

// WithdrawFeesCommand sweeps the accrued fee balance. Admin-gated.
type WithdrawFeesCommand struct {
	ExchangeID string `json:"exchange_id"`
	AdminToken string `json:"admin_token"`
}

// Validate validates the command
func (c WithdrawFeesCommand) Validate() error {
	if c.ExchangeID == "" {
		return apperrors.NewValidation("exchange ID is required")
	}
	return nil
}
