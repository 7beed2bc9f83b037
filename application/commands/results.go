package commands

// CreateAccountResult is returned after opening an account
type CreateAccountResult struct {
	AccountID string `json:"account_id"`
}

// ClaimLetterResult reports the letter drawn by an accepted claim
type ClaimLetterResult struct {
	AccountID  string `json:"account_id"`
	LocationID string `json:"location_id"`
	Letter     string `json:"letter"`
	Epoch      uint64 `json:"epoch"`
}

// MintAssetResult reports the minted asset and the ledger charge
type MintAssetResult struct {
	AssetID         string `json:"asset_id"`
	DisplayText     string `json:"display_text"`
	LettersConsumed uint64 `json:"letters_consumed"`
}

// CreateLocationResult is returned after registering a location
type CreateLocationResult struct {
	LocationID string `json:"location_id"`
}

// CreateExchangeResult is returned after opening an exchange
type CreateExchangeResult struct {
	ExchangeID string `json:"exchange_id"`
}

// PurchaseAssetResult reports the settlement breakdown of a purchase
type PurchaseAssetResult struct {
	AssetID      string `json:"asset_id"`
	Price        uint64 `json:"price"`
	Fee          uint64 `json:"fee"`
	SellerAmount uint64 `json:"seller_amount"`
	Refund       uint64 `json:"refund"`
}

// WithdrawFeesResult reports the swept fee balance
type WithdrawFeesResult struct {
	ExchangeID string `json:"exchange_id"`
	Amount     uint64 `json:"amount"`
}
