package queries

// VisitEntry is one per-location claim record in a query result
type VisitEntry struct {
	ClaimCount     uint64 `json:"claim_count"`
	LastClaimEpoch uint64 `json:"last_claim_epoch"`
}

// BookmarkEntry is one saved content reference in a query result
type BookmarkEntry struct {
	Ref       string `json:"ref"`
	Kind      string `json:"kind"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}

// BoastEntry is one boast log record in a query result
type BoastEntry struct {
	AssetID    string `json:"asset_id"`
	SinceEpoch uint64 `json:"since_epoch"`
}

// GetAccountResult is the read model for one account
type GetAccountResult struct {
	ID            string                `json:"id"`
	DisplayName   string                `json:"display_name,omitempty"`
	Bio           string                `json:"bio,omitempty"`
	Inventory     map[string]int        `json:"inventory"`
	VisitTotal    uint64                `json:"visit_total"`
	VisitHistory  map[string]VisitEntry `json:"visit_history"`
	BoastLocation string                `json:"boast_location,omitempty"`
	Bookmarks     []BookmarkEntry       `json:"bookmarks"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
}

// GetLocationResult is the read model for one location
type GetLocationResult struct {
	ID          string                `json:"id"`
	Active      bool                  `json:"active"`
	Label       string                `json:"label"`
	MetadataRef string                `json:"metadata_ref,omitempty"`
	GeofenceRef string                `json:"geofence_ref,omitempty"`
	VisitorLog  map[string]VisitEntry `json:"visitor_log"`
	BoastLog    map[string]BoastEntry `json:"boast_log"`
	CreatedAt   string                `json:"created_at"`
}

// LocationSummary is one location in a list result
type LocationSummary struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
	Label  string `json:"label"`
}

// ListLocationsResult holds all registered locations
type ListLocationsResult struct {
	Locations []LocationSummary `json:"locations"`
}

// GetAssetResult is the read model for one asset
type GetAssetResult struct {
	ID              string `json:"id"`
	Owner           string `json:"owner"`
	DisplayText     string `json:"display_text"`
	ContentRef      string `json:"content_ref"`
	LettersConsumed uint64 `json:"letters_consumed"`
	CreatedAt       string `json:"created_at"`
}

// ListingResult is the read model for one active listing
type ListingResult struct {
	AssetID     string `json:"asset_id"`
	Seller      string `json:"seller"`
	Price       uint64 `json:"price"`
	DisplayText string `json:"display_text"`
	ContentRef  string `json:"content_ref"`
	ListedEpoch uint64 `json:"listed_epoch"`
}

// ListListingsResult holds all active listings on an exchange
type ListListingsResult struct {
	ExchangeID string          `json:"exchange_id"`
	Listings   []ListingResult `json:"listings"`
}

// GetExchangeResult is the read model for one exchange
type GetExchangeResult struct {
	ID            string `json:"id"`
	FeeRateBps    uint64 `json:"fee_rate_bps"`
	FeeBalance    uint64 `json:"fee_balance"`
	ActiveListing int    `json:"active_listings"`
	CreatedAt     string `json:"created_at"`
}
