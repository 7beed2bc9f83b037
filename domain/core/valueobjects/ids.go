package valueobjects

import "github.com/google/uuid"

// AccountID represents a unique account identifier
type AccountID string

// NewAccountID creates a new random AccountID
func NewAccountID() AccountID {
	return AccountID(uuid.New().String())
}

// String returns the string representation
func (id AccountID) String() string { return string(id) }

// IsZero reports whether the id is unset
func (id AccountID) IsZero() bool { return id == "" }

// LocationID represents a unique location identifier
type LocationID string

// NewLocationID creates a new random LocationID
func NewLocationID() LocationID {
	return LocationID(uuid.New().String())
}

// String returns the string representation
func (id LocationID) String() string { return string(id) }

// IsZero reports whether the id is unset
func (id LocationID) IsZero() bool { return id == "" }

// AssetID represents a unique asset identifier
type AssetID string

// NewAssetID creates a new random AssetID
func NewAssetID() AssetID {
	return AssetID(uuid.New().String())
}

// String returns the string representation
func (id AssetID) String() string { return string(id) }

// IsZero reports whether the id is unset
func (id AssetID) IsZero() bool { return id == "" }

// ExchangeID represents a unique exchange identifier
type ExchangeID string

// NewExchangeID creates a new random ExchangeID
func NewExchangeID() ExchangeID {
	return ExchangeID(uuid.New().String())
}

// String returns the string representation
func (id ExchangeID) String() string { return string(id) }

// IsZero reports whether the id is unset
func (id ExchangeID) IsZero() bool { return id == "" }

// ContentRef is an opaque content-addressed reference. The core never
// dereferences it; resolution belongs to the content storage collaborator.
type ContentRef string

// String returns the string representation
func (r ContentRef) String() string { return string(r) }

// IsZero reports whether the reference is unset
func (r ContentRef) IsZero() bool { return r == "" }
