package memory

import (
	"context"
	"sync"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/entities"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

// UnitOfWork stages writes against the in-memory stores and applies them
// on Commit. Reads pass straight through; writes accumulate as pending
// operations so an aborted operation leaves the stores untouched. The
// handler's per-entity locks make the commit effectively atomic.
type UnitOfWork struct {
	accounts  *AccountStore
	locations *LocationStore
	assets    *AssetStore
	exchanges *ExchangeStore

	mu      sync.Mutex
	active  bool
	pending []func(ctx context.Context) error
}

// NewUnitOfWork creates a unit of work over the shared stores
func NewUnitOfWork(
	accounts *AccountStore,
	locations *LocationStore,
	assets *AssetStore,
	exchanges *ExchangeStore,
) *UnitOfWork {
	return &UnitOfWork{
		accounts:  accounts,
		locations: locations,
		assets:    assets,
		exchanges: exchanges,
	}
}

// NewUnitOfWorkFactory returns a factory producing fresh units of work
// over the shared stores.
func NewUnitOfWorkFactory(
	accounts *AccountStore,
	locations *LocationStore,
	assets *AssetStore,
	exchanges *ExchangeStore,
) ports.UnitOfWorkFactory {
	return func() ports.UnitOfWork {
		return NewUnitOfWork(accounts, locations, assets, exchanges)
	}
}

// Begin starts a new transaction
func (u *UnitOfWork) Begin(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.active {
		return apperrors.NewConflict("transaction already active")
	}
	u.active = true
	u.pending = nil
	return nil
}

// Commit applies all staged writes
func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active {
		return apperrors.NewConflict("no active transaction")
	}

	for _, op := range u.pending {
		if err := op(ctx); err != nil {
			u.active = false
			u.pending = nil
			return err
		}
	}

	u.active = false
	u.pending = nil
	return nil
}

// Rollback discards all staged writes. No-op after a successful commit.
func (u *UnitOfWork) Rollback() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.active = false
	u.pending = nil
	return nil
}

// Accounts returns the account repository bound to this transaction
func (u *UnitOfWork) Accounts() ports.AccountRepository {
	return &txAccountRepo{uow: u}
}

// Locations returns the location repository bound to this transaction
func (u *UnitOfWork) Locations() ports.LocationRepository {
	return &txLocationRepo{uow: u}
}

// Assets returns the asset repository bound to this transaction
func (u *UnitOfWork) Assets() ports.AssetRepository {
	return &txAssetRepo{uow: u}
}

// Exchanges returns the exchange repository bound to this transaction
func (u *UnitOfWork) Exchanges() ports.ExchangeRepository {
	return &txExchangeRepo{uow: u}
}

func (u *UnitOfWork) stage(op func(ctx context.Context) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active {
		return apperrors.NewConflict("no active transaction")
	}
	u.pending = append(u.pending, op)
	return nil
}

type txAccountRepo struct{ uow *UnitOfWork }

func (r *txAccountRepo) Save(ctx context.Context, account *aggregates.Account) error {
	return r.uow.stage(func(ctx context.Context) error {
		return r.uow.accounts.Save(ctx, account)
	})
}

func (r *txAccountRepo) GetByID(ctx context.Context, id valueobjects.AccountID) (*aggregates.Account, error) {
	return r.uow.accounts.GetByID(ctx, id)
}

type txLocationRepo struct{ uow *UnitOfWork }

func (r *txLocationRepo) Save(ctx context.Context, location *aggregates.Location) error {
	return r.uow.stage(func(ctx context.Context) error {
		return r.uow.locations.Save(ctx, location)
	})
}

func (r *txLocationRepo) GetByID(ctx context.Context, id valueobjects.LocationID) (*aggregates.Location, error) {
	return r.uow.locations.GetByID(ctx, id)
}

func (r *txLocationRepo) List(ctx context.Context) ([]*aggregates.Location, error) {
	return r.uow.locations.List(ctx)
}

type txAssetRepo struct{ uow *UnitOfWork }

func (r *txAssetRepo) Save(ctx context.Context, asset *entities.Asset) error {
	return r.uow.stage(func(ctx context.Context) error {
		return r.uow.assets.Save(ctx, asset)
	})
}

func (r *txAssetRepo) GetByID(ctx context.Context, id valueobjects.AssetID) (*entities.Asset, error) {
	return r.uow.assets.GetByID(ctx, id)
}

func (r *txAssetRepo) GetByOwner(ctx context.Context, owner string) ([]*entities.Asset, error) {
	return r.uow.assets.GetByOwner(ctx, owner)
}

type txExchangeRepo struct{ uow *UnitOfWork }

func (r *txExchangeRepo) Save(ctx context.Context, exchange *aggregates.Exchange) error {
	return r.uow.stage(func(ctx context.Context) error {
		return r.uow.exchanges.Save(ctx, exchange)
	})
}

func (r *txExchangeRepo) GetByID(ctx context.Context, id valueobjects.ExchangeID) (*aggregates.Exchange, error) {
	return r.uow.exchanges.GetByID(ctx, id)
}
