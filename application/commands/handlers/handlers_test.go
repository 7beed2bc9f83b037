package handlers_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wordhoard-backend/application/commands"
	"wordhoard-backend/application/commands/handlers"
	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/entities"
	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/infrastructure/messaging"
	"wordhoard-backend/infrastructure/persistence/memory"
	apperrors "wordhoard-backend/pkg/errors"
)

type stubClock struct {
	mu    sync.Mutex
	epoch uint64
}

func (c *stubClock) Current(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch, nil
}

func (c *stubClock) advance() {
	c.mu.Lock()
	c.epoch++
	c.mu.Unlock()
}

type stubLetters struct{ letter byte }

func (s *stubLetters) Draw(ctx context.Context) (byte, error) {
	return s.letter, nil
}

type env struct {
	accounts  *memory.AccountStore
	locations *memory.LocationStore
	assets    *memory.AssetStore
	exchanges *memory.ExchangeStore
	locks     ports.LockManager
	uow       ports.UnitOfWorkFactory
	bus       ports.EventBus
	clock     *stubClock
	letters   *stubLetters
	logger    *zap.Logger
}

func newEnv() *env {
	accounts := memory.NewAccountStore()
	locations := memory.NewLocationStore()
	assets := memory.NewAssetStore()
	exchanges := memory.NewExchangeStore()
	logger := zap.NewNop()

	return &env{
		accounts:  accounts,
		locations: locations,
		assets:    assets,
		exchanges: exchanges,
		locks:     memory.NewKeyedLockManager(),
		uow:       memory.NewUnitOfWorkFactory(accounts, locations, assets, exchanges),
		bus:       messaging.NewDispatcher(logger),
		clock:     &stubClock{epoch: 10},
		letters:   &stubLetters{letter: 'A'},
		logger:    logger,
	}
}

func (e *env) seedAccount(t *testing.T, letters string) *aggregates.Account {
	t.Helper()
	account := aggregates.NewAccount()
	if letters != "" {
		account.AppendLetters(letters)
	}
	account.MarkEventsAsCommitted()
	require.NoError(t, e.accounts.Save(context.Background(), account))
	return account
}

func (e *env) seedLocation(t *testing.T) *aggregates.Location {
	t.Helper()
	location, err := aggregates.NewLocation("Harbor Steps", "ref://meta", "ref://fence")
	require.NoError(t, err)
	location.MarkEventsAsCommitted()
	require.NoError(t, e.locations.Save(context.Background(), location))
	return location
}

func (e *env) seedExchange(t *testing.T, feeRateBps uint64) *aggregates.Exchange {
	t.Helper()
	exchange, err := aggregates.NewExchange("admin", feeRateBps)
	require.NoError(t, err)
	exchange.MarkEventsAsCommitted()
	require.NoError(t, e.exchanges.Save(context.Background(), exchange))
	return exchange
}

func (e *env) seedAsset(t *testing.T, owner valueobjects.AccountID) *entities.Asset {
	t.Helper()
	asset, err := entities.NewAsset(owner, "HELLO", "ref://word/hello", 5)
	require.NoError(t, err)
	asset.MarkEventsAsCommitted()
	require.NoError(t, e.assets.Save(context.Background(), asset))
	return asset
}

func TestClaimHandler_ClaimOncePerEpoch(t *testing.T) {
	e := newEnv()
	account := e.seedAccount(t, "")
	location := e.seedLocation(t)

	handler := handlers.NewClaimHandler(e.uow, e.locks, e.clock, e.letters, e.bus, nil, e.logger)
	cmd := &commands.ClaimLetterCommand{
		AccountID:  account.ID().String(),
		LocationID: location.ID().String(),
	}

	result, err := handler.HandleClaimLetter(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "A", result.Letter)
	assert.Equal(t, uint64(10), result.Epoch)

	// Same epoch: rejected, no state change
	_, err = handler.HandleClaimLetter(context.Background(), cmd)
	assert.True(t, apperrors.IsDuplicateClaim(err))

	stored, err := e.accounts.GetByID(context.Background(), account.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Inventory().Counts()['A'])
	assert.Equal(t, uint64(1), stored.VisitTotal())

	// Next epoch: accepted again
	e.clock.advance()
	result, err = handler.HandleClaimLetter(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), result.Epoch)

	stored, err = e.accounts.GetByID(context.Background(), account.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Inventory().Counts()['A'])
	assert.Equal(t, uint64(2), stored.VisitTotal())
}

func TestClaimHandler_InactiveLocation(t *testing.T) {
	e := newEnv()
	account := e.seedAccount(t, "")
	location := e.seedLocation(t)
	location.SetActive(false)
	location.MarkEventsAsCommitted()
	require.NoError(t, e.locations.Save(context.Background(), location))

	handler := handlers.NewClaimHandler(e.uow, e.locks, e.clock, e.letters, e.bus, nil, e.logger)
	_, err := handler.HandleClaimLetter(context.Background(), &commands.ClaimLetterCommand{
		AccountID:  account.ID().String(),
		LocationID: location.ID().String(),
	})
	assert.True(t, apperrors.IsInactive(err))
}

func TestClaimHandler_UnknownLocation(t *testing.T) {
	e := newEnv()
	account := e.seedAccount(t, "")

	handler := handlers.NewClaimHandler(e.uow, e.locks, e.clock, e.letters, e.bus, nil, e.logger)
	_, err := handler.HandleClaimLetter(context.Background(), &commands.ClaimLetterCommand{
		AccountID:  account.ID().String(),
		LocationID: "missing",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMintHandler_ConsumesLetters(t *testing.T) {
	e := newEnv()
	account := e.seedAccount(t, "HELLOWORLD")

	handler := handlers.NewMintHandler(e.uow, e.locks, e.bus, nil, e.logger)
	result, err := handler.HandleMintAsset(context.Background(), &commands.MintAssetCommand{
		AccountID:   account.ID().String(),
		ConsumeText: "hello",
		DisplayText: "HELLO",
		ContentRef:  "ref://word/hello",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), result.LettersConsumed)

	stored, err := e.accounts.GetByID(context.Background(), account.ID())
	require.NoError(t, err)
	counts := stored.Inventory().Counts()
	// HELLOWORLD minus HELLO leaves WORLD
	assert.Equal(t, 1, counts['W'])
	assert.Equal(t, 1, counts['O'])
	assert.Equal(t, 1, counts['R'])
	assert.Equal(t, 1, counts['L'])
	assert.Equal(t, 1, counts['D'])
	assert.Equal(t, 0, counts['H'])
	assert.Equal(t, 0, counts['E'])

	minted, err := e.assets.GetByID(context.Background(), valueobjects.AssetID(result.AssetID))
	require.NoError(t, err)
	assert.True(t, minted.OwnedBy(account.ID().String()))
	assert.Equal(t, uint64(5), minted.LettersConsumed())
}

func TestMintHandler_ShortageMintsNothing(t *testing.T) {
	e := newEnv()
	account := e.seedAccount(t, "HELLO")

	handler := handlers.NewMintHandler(e.uow, e.locks, e.bus, nil, e.logger)
	_, err := handler.HandleMintAsset(context.Background(), &commands.MintAssetCommand{
		AccountID:   account.ID().String(),
		ConsumeText: "WORLD",
		DisplayText: "WORLD",
		ContentRef:  "ref://word/world",
	})
	assert.True(t, apperrors.IsShortage(err))

	// Inventory untouched, no asset created
	stored, err := e.accounts.GetByID(context.Background(), account.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Inventory().Counts()['H'])

	owned, err := e.assets.GetByOwner(context.Background(), account.ID().String())
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestMintHandler_ConcurrentMintSingleWinner(t *testing.T) {
	e := newEnv()
	account := e.seedAccount(t, "HELLO")

	handler := handlers.NewMintHandler(e.uow, e.locks, e.bus, nil, e.logger)
	cmd := func() *commands.MintAssetCommand {
		return &commands.MintAssetCommand{
			AccountID:   account.ID().String(),
			ConsumeText: "HELLO",
			DisplayText: "HELLO",
			ContentRef:  "ref://word/hello",
		}
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = handler.HandleMintAsset(context.Background(), cmd())
		}(i)
	}
	wg.Wait()

	var succeeded, short int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if apperrors.IsShortage(err) {
			short++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one mint must win the letters")
	assert.Equal(t, 1, short)

	owned, err := e.assets.GetByOwner(context.Background(), account.ID().String())
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestTransferHandler_RequiresOwnership(t *testing.T) {
	e := newEnv()
	owner := e.seedAccount(t, "")
	other := e.seedAccount(t, "")
	asset := e.seedAsset(t, owner.ID())

	handler := handlers.NewTransferHandler(e.assets, e.locks, e.bus, e.logger)

	err := handler.HandleTransferAsset(context.Background(), &commands.TransferAssetCommand{
		AssetID: asset.ID().String(),
		From:    other.ID().String(),
		To:      "somebody",
	})
	assert.True(t, apperrors.IsNotOwner(err))

	err = handler.HandleTransferAsset(context.Background(), &commands.TransferAssetCommand{
		AssetID: asset.ID().String(),
		From:    owner.ID().String(),
		To:      other.ID().String(),
	})
	require.NoError(t, err)

	stored, err := e.assets.GetByID(context.Background(), asset.ID())
	require.NoError(t, err)
	assert.True(t, stored.OwnedBy(other.ID().String()))
}

func TestListingHandler_EscrowRoundTrip(t *testing.T) {
	e := newEnv()
	seller := e.seedAccount(t, "")
	exchange := e.seedExchange(t, 250)
	asset := e.seedAsset(t, seller.ID())

	handler := handlers.NewListingHandler(e.uow, e.locks, e.clock, e.bus, nil, e.logger)

	err := handler.HandleListAsset(context.Background(), &commands.ListAssetCommand{
		ExchangeID: exchange.ID().String(),
		AssetID:    asset.ID().String(),
		SellerID:   seller.ID().String(),
		Price:      1000,
	})
	require.NoError(t, err)

	// Exchange holds the asset while listed
	escrowed, err := e.assets.GetByID(context.Background(), asset.ID())
	require.NoError(t, err)
	assert.True(t, escrowed.OwnedBy(exchange.ID().String()))

	// Seller cannot list what the exchange now holds
	err = handler.HandleListAsset(context.Background(), &commands.ListAssetCommand{
		ExchangeID: exchange.ID().String(),
		AssetID:    asset.ID().String(),
		SellerID:   seller.ID().String(),
		Price:      2000,
	})
	assert.True(t, apperrors.IsNotOwner(err))

	// Only the seller may delist
	err = handler.HandleDelistAsset(context.Background(), &commands.DelistAssetCommand{
		ExchangeID: exchange.ID().String(),
		AssetID:    asset.ID().String(),
		CallerID:   "somebody-else",
	})
	assert.True(t, apperrors.IsNotOwner(err))

	err = handler.HandleDelistAsset(context.Background(), &commands.DelistAssetCommand{
		ExchangeID: exchange.ID().String(),
		AssetID:    asset.ID().String(),
		CallerID:   seller.ID().String(),
	})
	require.NoError(t, err)

	returned, err := e.assets.GetByID(context.Background(), asset.ID())
	require.NoError(t, err)
	assert.True(t, returned.OwnedBy(seller.ID().String()))
}

func TestPurchaseHandler_SettlesWithFeeAndRefund(t *testing.T) {
	e := newEnv()
	seller := e.seedAccount(t, "")
	exchange := e.seedExchange(t, 250)
	asset := e.seedAsset(t, seller.ID())

	listings := handlers.NewListingHandler(e.uow, e.locks, e.clock, e.bus, nil, e.logger)
	require.NoError(t, listings.HandleListAsset(context.Background(), &commands.ListAssetCommand{
		ExchangeID: exchange.ID().String(),
		AssetID:    asset.ID().String(),
		SellerID:   seller.ID().String(),
		Price:      1000,
	}))

	purchases := handlers.NewPurchaseHandler(e.uow, e.locks, e.bus, nil, e.logger)

	// Underpayment is rejected and the listing survives
	_, err := purchases.HandlePurchaseAsset(context.Background(), &commands.PurchaseAssetCommand{
		ExchangeID: exchange.ID().String(),
		AssetID:    asset.ID().String(),
		BuyerID:    "buyer-1",
		Payment:    999,
	})
	assert.True(t, apperrors.IsInsufficientPayment(err))

	result, err := purchases.HandlePurchaseAsset(context.Background(), &commands.PurchaseAssetCommand{
		ExchangeID: exchange.ID().String(),
		AssetID:    asset.ID().String(),
		BuyerID:    "buyer-1",
		Payment:    1500,
	})
	require.NoError(t, err)

	// 250 bps of 1000 is 25; the rest of the price goes to the seller
	// and the overpayment comes back to the buyer
	assert.Equal(t, uint64(1000), result.Price)
	assert.Equal(t, uint64(25), result.Fee)
	assert.Equal(t, uint64(975), result.SellerAmount)
	assert.Equal(t, uint64(500), result.Refund)

	sold, err := e.assets.GetByID(context.Background(), asset.ID())
	require.NoError(t, err)
	assert.True(t, sold.OwnedBy("buyer-1"))

	settled, err := e.exchanges.GetByID(context.Background(), exchange.ID())
	require.NoError(t, err)
	assert.Equal(t, uint64(25), settled.FeeBalance())
	assert.Empty(t, settled.Listings())

	// The listing is gone, a second purchase finds nothing
	_, err = purchases.HandlePurchaseAsset(context.Background(), &commands.PurchaseAssetCommand{
		ExchangeID: exchange.ID().String(),
		AssetID:    asset.ID().String(),
		BuyerID:    "buyer-2",
		Payment:    1500,
	})
	assert.True(t, apperrors.IsNotListed(err))
}

func TestAccountHandler_AppendLettersRequiresAdminToken(t *testing.T) {
	e := newEnv()
	account := e.seedAccount(t, "")
	adminCap, err := valueobjects.NewAdminCap("secret-token")
	require.NoError(t, err)

	handler := handlers.NewAccountHandler(e.accounts, e.locks, adminCap, e.bus, e.logger)

	err = handler.HandleAppendLetters(context.Background(), &commands.AppendLettersCommand{
		AccountID:  account.ID().String(),
		Letters:    "HELLO",
		AdminToken: "wrong-token",
	})
	assert.True(t, apperrors.IsNotOwner(err))

	err = handler.HandleAppendLetters(context.Background(), &commands.AppendLettersCommand{
		AccountID:  account.ID().String(),
		Letters:    "HELLO",
		AdminToken: "secret-token",
	})
	require.NoError(t, err)

	stored, err := e.accounts.GetByID(context.Background(), account.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Inventory().Counts()['L'])
}

func TestBoastHandler_BoastAndWithdraw(t *testing.T) {
	e := newEnv()
	account := e.seedAccount(t, "")
	location := e.seedLocation(t)
	asset := e.seedAsset(t, account.ID())

	handler := handlers.NewBoastHandler(e.uow, e.locks, e.clock, e.bus, e.logger)

	err := handler.HandleBoast(context.Background(), &commands.BoastCommand{
		AccountID:  account.ID().String(),
		LocationID: location.ID().String(),
		AssetID:    asset.ID().String(),
	})
	require.NoError(t, err)

	storedLocation, err := e.locations.GetByID(context.Background(), location.ID())
	require.NoError(t, err)
	record, ok := storedLocation.BoastLog()[account.ID()]
	require.True(t, ok)
	assert.Equal(t, asset.ID(), record.Asset)

	storedAccount, err := e.accounts.GetByID(context.Background(), account.ID())
	require.NoError(t, err)
	require.NotNil(t, storedAccount.BoastLocation())
	assert.Equal(t, location.ID(), *storedAccount.BoastLocation())

	err = handler.HandleUnboast(context.Background(), &commands.UnboastCommand{
		AccountID:  account.ID().String(),
		LocationID: location.ID().String(),
	})
	require.NoError(t, err)

	storedLocation, err = e.locations.GetByID(context.Background(), location.ID())
	require.NoError(t, err)
	assert.Empty(t, storedLocation.BoastLog())

	storedAccount, err = e.accounts.GetByID(context.Background(), account.ID())
	require.NoError(t, err)
	assert.Nil(t, storedAccount.BoastLocation())
}

func TestBoastHandler_UnknownAsset(t *testing.T) {
	e := newEnv()
	account := e.seedAccount(t, "")
	location := e.seedLocation(t)

	handler := handlers.NewBoastHandler(e.uow, e.locks, e.clock, e.bus, e.logger)
	err := handler.HandleBoast(context.Background(), &commands.BoastCommand{
		AccountID:  account.ID().String(),
		LocationID: location.ID().String(),
		AssetID:    "missing",
	})
	assert.True(t, apperrors.IsNotFound(err))
}
