package memory

import (
	"context"
	"sync"

	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/entities"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

// The in-memory stores hold deep copies and return deep copies, so no
// caller ever mutates shared state through an aliased pointer. Saves are
// version-conditional: a stale writer whose aggregate version does not
// advance past the stored one gets a conflict, mirroring the conditional
// writes of the DynamoDB backend.

// AccountStore provides an in-memory implementation of AccountRepository
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[valueobjects.AccountID]*aggregates.Account
}

// NewAccountStore creates a new in-memory account store
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[valueobjects.AccountID]*aggregates.Account)}
}

// Save persists an account copy, enforcing the version condition
func (s *AccountStore) Save(ctx context.Context, account *aggregates.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.accounts[account.ID()]; ok && existing.Version() >= account.Version() {
		return apperrors.NewConflict("account was modified concurrently")
	}

	copied, err := copyAccount(account)
	if err != nil {
		return err
	}
	s.accounts[account.ID()] = copied
	return nil
}

// GetByID retrieves a copy of an account by its ID
func (s *AccountStore) GetByID(ctx context.Context, id valueobjects.AccountID) (*aggregates.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, apperrors.NewNotFound("account not found")
	}
	return copyAccount(account)
}

// LocationStore provides an in-memory implementation of LocationRepository
type LocationStore struct {
	mu        sync.RWMutex
	locations map[valueobjects.LocationID]*aggregates.Location
}

// NewLocationStore creates a new in-memory location store
func NewLocationStore() *LocationStore {
	return &LocationStore{locations: make(map[valueobjects.LocationID]*aggregates.Location)}
}

// Save persists a location copy, enforcing the version condition
func (s *LocationStore) Save(ctx context.Context, location *aggregates.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.locations[location.ID()]; ok && existing.Version() >= location.Version() {
		return apperrors.NewConflict("location was modified concurrently")
	}

	copied, err := copyLocation(location)
	if err != nil {
		return err
	}
	s.locations[location.ID()] = copied
	return nil
}

// GetByID retrieves a copy of a location by its ID
func (s *LocationStore) GetByID(ctx context.Context, id valueobjects.LocationID) (*aggregates.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	location, ok := s.locations[id]
	if !ok {
		return nil, apperrors.NewNotFound("location not found")
	}
	return copyLocation(location)
}

// List retrieves copies of all registered locations
func (s *LocationStore) List(ctx context.Context) ([]*aggregates.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*aggregates.Location, 0, len(s.locations))
	for _, location := range s.locations {
		copied, err := copyLocation(location)
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
	}
	return out, nil
}

// AssetStore provides an in-memory implementation of AssetRepository
type AssetStore struct {
	mu     sync.RWMutex
	assets map[valueobjects.AssetID]*entities.Asset
}

// NewAssetStore creates a new in-memory asset store
func NewAssetStore() *AssetStore {
	return &AssetStore{assets: make(map[valueobjects.AssetID]*entities.Asset)}
}

// Save persists an asset copy, enforcing the version condition
func (s *AssetStore) Save(ctx context.Context, asset *entities.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.assets[asset.ID()]; ok && existing.Version() >= asset.Version() {
		return apperrors.NewConflict("asset was modified concurrently")
	}

	copied, err := copyAsset(asset)
	if err != nil {
		return err
	}
	s.assets[asset.ID()] = copied
	return nil
}

// GetByID retrieves a copy of an asset by its ID
func (s *AssetStore) GetByID(ctx context.Context, id valueobjects.AssetID) (*entities.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, ok := s.assets[id]
	if !ok {
		return nil, apperrors.NewNotFound("asset not found")
	}
	return copyAsset(asset)
}

// GetByOwner retrieves copies of all assets held by an owner
func (s *AssetStore) GetByOwner(ctx context.Context, owner string) ([]*entities.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.Asset, 0)
	for _, asset := range s.assets {
		if asset.OwnedBy(owner) {
			copied, err := copyAsset(asset)
			if err != nil {
				return nil, err
			}
			out = append(out, copied)
		}
	}
	return out, nil
}

// ExchangeStore provides an in-memory implementation of ExchangeRepository
type ExchangeStore struct {
	mu        sync.RWMutex
	exchanges map[valueobjects.ExchangeID]*aggregates.Exchange
}

// NewExchangeStore creates a new in-memory exchange store
func NewExchangeStore() *ExchangeStore {
	return &ExchangeStore{exchanges: make(map[valueobjects.ExchangeID]*aggregates.Exchange)}
}

// Save persists an exchange copy, enforcing the version condition
func (s *ExchangeStore) Save(ctx context.Context, exchange *aggregates.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.exchanges[exchange.ID()]; ok && existing.Version() >= exchange.Version() {
		return apperrors.NewConflict("exchange was modified concurrently")
	}

	copied, err := copyExchange(exchange)
	if err != nil {
		return err
	}
	s.exchanges[exchange.ID()] = copied
	return nil
}

// GetByID retrieves a copy of an exchange by its ID
func (s *ExchangeStore) GetByID(ctx context.Context, id valueobjects.ExchangeID) (*aggregates.Exchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exchange, ok := s.exchanges[id]
	if !ok {
		return nil, apperrors.NewNotFound("exchange not found")
	}
	return copyExchange(exchange)
}

// Deep copy helpers built on the reconstruction constructors. The getter
// methods already return defensive copies of maps and sets.

func copyAccount(a *aggregates.Account) (*aggregates.Account, error) {
	return aggregates.ReconstructAccount(
		a.ID(), a.DisplayName(), a.Bio(),
		a.Inventory(), a.VisitTotal(), a.VisitHistory(),
		a.BoastLocation(), a.Bookmarks(),
		a.CreatedAt(), a.UpdatedAt(), a.Version(),
	)
}

func copyLocation(l *aggregates.Location) (*aggregates.Location, error) {
	return aggregates.ReconstructLocation(
		l.ID(), l.Active(), l.Label(),
		l.MetadataRef(), l.GeofenceRef(),
		l.VisitorLog(), l.BoastLog(),
		l.CreatedAt(), l.UpdatedAt(), l.Version(),
	)
}

func copyAsset(a *entities.Asset) (*entities.Asset, error) {
	return entities.ReconstructAsset(
		a.ID(), a.Owner(), a.DisplayText(), a.ContentRef(),
		a.LettersConsumed(), a.CreatedAt(), a.Version(),
	)
}

func copyExchange(e *aggregates.Exchange) (*aggregates.Exchange, error) {
	return aggregates.ReconstructExchange(
		e.ID(), e.Admin(), e.FeeRateBps(), e.FeeBalance(),
		e.Listings(), e.CreatedAt(), e.UpdatedAt(), e.Version(),
	)
}
