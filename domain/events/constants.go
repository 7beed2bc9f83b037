package events

// Event sources - These define where events originate from
const (
	// SourceBackend is the primary backend service source
	SourceBackend = "wordhoard.backend"
)

// Event types - These define the types of events in the system
const (
	// Account events
	TypeAccountCreated  = "account.created"
	TypeVisitRecorded   = "account.visit_recorded"
	TypeLettersAppended = "account.letters_appended"
	TypeLettersConsumed = "account.letters_consumed"
	TypeBoastSet        = "account.boast_set"
	TypeBookmarkAdded   = "account.bookmark_added"
	TypeBookmarkRemoved = "account.bookmark_removed"

	// Location events
	TypeLocationCreated = "location.created"
	TypeLocationToggled = "location.toggled"
	TypeLettersClaimed  = "location.letters_claimed"
	TypeBoasted         = "location.boasted"
	TypeUnboasted       = "location.unboasted"

	// Asset events
	TypeAssetMinted      = "asset.minted"
	TypeAssetTransferred = "asset.transferred"

	// Exchange events
	TypeExchangeCreated = "exchange.created"
	TypeListed          = "exchange.listed"
	TypeDelisted        = "exchange.delisted"
	TypePurchased       = "exchange.purchased"
)
