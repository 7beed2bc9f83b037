package ports

import (
	"context"

	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/entities"
	"wordhoard-backend/domain/core/valueobjects"
)

// AccountRepository defines the interface for account persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type AccountRepository interface {
	// Save persists an account. Implementations condition the write on the
	// aggregate version so concurrent writers surface as conflicts.
	Save(ctx context.Context, account *aggregates.Account) error

	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id valueobjects.AccountID) (*aggregates.Account, error)
}

// LocationRepository defines the interface for location persistence
type LocationRepository interface {
	// Save persists a location (create or update)
	Save(ctx context.Context, location *aggregates.Location) error

	// GetByID retrieves a location by its ID
	GetByID(ctx context.Context, id valueobjects.LocationID) (*aggregates.Location, error)

	// List retrieves all registered locations
	List(ctx context.Context) ([]*aggregates.Location, error)
}

// AssetRepository defines the interface for asset persistence
type AssetRepository interface {
	// Save persists an asset (create or update)
	Save(ctx context.Context, asset *entities.Asset) error

	// GetByID retrieves an asset by its ID
	GetByID(ctx context.Context, id valueobjects.AssetID) (*entities.Asset, error)

	// GetByOwner retrieves all assets held by an owner identifier.
	// The owner may be an account id or an exchange id holding escrow.
	GetByOwner(ctx context.Context, owner string) ([]*entities.Asset, error)
}

// ExchangeRepository defines the interface for exchange persistence
type ExchangeRepository interface {
	// Save persists an exchange (create or update)
	Save(ctx context.Context, exchange *aggregates.Exchange) error

	// GetByID retrieves an exchange by its ID
	GetByID(ctx context.Context, id valueobjects.ExchangeID) (*aggregates.Exchange, error)
}

// UnitOfWork defines a transaction boundary for multi-aggregate operations.
// Claim, mint and purchase mutate more than one aggregate and must commit
// or fail as a whole.
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction. No-op after a successful commit.
	Rollback() error

	// Accounts returns the account repository bound to this transaction
	Accounts() AccountRepository

	// Locations returns the location repository bound to this transaction
	Locations() LocationRepository

	// Assets returns the asset repository bound to this transaction
	Assets() AssetRepository

	// Exchanges returns the exchange repository bound to this transaction
	Exchanges() ExchangeRepository
}

// UnitOfWorkFactory creates a fresh unit of work per operation
type UnitOfWorkFactory func() UnitOfWork
