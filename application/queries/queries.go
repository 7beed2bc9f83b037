package queries

// GetAccountQuery requests one account's profile, inventory and history
type GetAccountQuery struct {
	AccountID string `json:"account_id"`
}

// GetLocationQuery requests one location with its visitor and boast logs
type GetLocationQuery struct {
	LocationID string `json:"location_id"`
}

// GetAssetQuery requests one asset by id
type GetAssetQuery struct {
	AssetID string `json:"asset_id"`
}

// GetListingQuery requests one active listing on an exchange
type GetListingQuery struct {
	ExchangeID string `json:"exchange_id"`
	AssetID    string `json:"asset_id"`
}

// ListListingsQuery requests all active listings on an exchange
type ListListingsQuery struct {
	ExchangeID string `json:"exchange_id"`
}

// GetExchangeQuery requests an exchange's fee policy and balance
type GetExchangeQuery struct {
	ExchangeID string `json:"exchange_id"`
}
