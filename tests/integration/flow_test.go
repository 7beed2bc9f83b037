package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordhoard-backend/application/commands"
	"wordhoard-backend/application/queries"
	"wordhoard-backend/infrastructure/config"
	"wordhoard-backend/infrastructure/di"
	apperrors "wordhoard-backend/pkg/errors"
)

const adminToken = "integration-admin-token"

func buildContainer(t *testing.T) *di.Container {
	t.Helper()
	t.Setenv("PERSISTENCE_MODE", "memory")
	t.Setenv("ADMIN_TOKEN", adminToken)
	t.Setenv("ENABLE_TRACING", "false")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	container, err := di.InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)
	return container
}

// The full player journey: an account collects letters, mints a word
// asset, lists it on the exchange, and a buyer takes it home.
func TestLetterToAssetToSaleFlow(t *testing.T) {
	c := buildContainer(t)
	ctx := context.Background()

	created, err := c.AccountHandler.HandleCreateAccount(ctx, &commands.CreateAccountCommand{
		DisplayName: "Ada",
	})
	require.NoError(t, err)
	accountID := created.AccountID

	require.NoError(t, c.AccountHandler.HandleAppendLetters(ctx, &commands.AppendLettersCommand{
		AccountID:  accountID,
		Letters:    "HELLO WORLD",
		AdminToken: adminToken,
	}))

	location, err := c.LocationHandler.HandleCreateLocation(ctx, &commands.CreateLocationCommand{
		Label:       "Fountain Square",
		MetadataRef: "ref://locations/fountain-square",
		GeofenceRef: "ref://geofences/fountain-square",
		AdminToken:  adminToken,
	})
	require.NoError(t, err)

	claim, err := c.ClaimHandler.HandleClaimLetter(ctx, &commands.ClaimLetterCommand{
		AccountID:  accountID,
		LocationID: location.LocationID,
	})
	require.NoError(t, err)
	require.Len(t, claim.Letter, 1)

	// One claim per location per epoch
	_, err = c.ClaimHandler.HandleClaimLetter(ctx, &commands.ClaimLetterCommand{
		AccountID:  accountID,
		LocationID: location.LocationID,
	})
	assert.True(t, apperrors.IsDuplicateClaim(err))

	minted, err := c.MintHandler.HandleMintAsset(ctx, &commands.MintAssetCommand{
		AccountID:   accountID,
		ConsumeText: "hello",
		DisplayText: "HELLO",
		ContentRef:  "ref://words/hello",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), minted.LettersConsumed)

	// The letters are spent: minting HELLO again falls short
	_, err = c.MintHandler.HandleMintAsset(ctx, &commands.MintAssetCommand{
		AccountID:   accountID,
		ConsumeText: "hello",
		DisplayText: "HELLO",
		ContentRef:  "ref://words/hello",
	})
	assert.True(t, apperrors.IsShortage(err))

	account, err := c.GetAccountHandler.Handle(ctx, queries.GetAccountQuery{AccountID: accountID})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), account.VisitTotal)
	// WORLD remains plus the one claimed letter
	remaining := 0
	for _, n := range account.Inventory {
		remaining += n
	}
	assert.Equal(t, 6, remaining)

	exchange, err := c.ExchangeAdminHandler.HandleCreateExchange(ctx, &commands.CreateExchangeCommand{
		FeeRateBps: 250,
		AdminToken: adminToken,
	})
	require.NoError(t, err)

	require.NoError(t, c.ListingHandler.HandleListAsset(ctx, &commands.ListAssetCommand{
		ExchangeID: exchange.ExchangeID,
		AssetID:    minted.AssetID,
		SellerID:   accountID,
		Price:      1000,
	}))

	// Listed assets sit in exchange custody
	asset, err := c.GetAssetHandler.Handle(ctx, queries.GetAssetQuery{AssetID: minted.AssetID})
	require.NoError(t, err)
	assert.Equal(t, exchange.ExchangeID, asset.Owner)

	listings, err := c.GetExchangeHandler.HandleListListings(ctx, queries.ListListingsQuery{
		ExchangeID: exchange.ExchangeID,
	})
	require.NoError(t, err)
	require.Len(t, listings.Listings, 1)
	assert.Equal(t, uint64(1000), listings.Listings[0].Price)

	buyer, err := c.AccountHandler.HandleCreateAccount(ctx, &commands.CreateAccountCommand{
		DisplayName: "Bo",
	})
	require.NoError(t, err)

	settlement, err := c.PurchaseHandler.HandlePurchaseAsset(ctx, &commands.PurchaseAssetCommand{
		ExchangeID: exchange.ExchangeID,
		AssetID:    minted.AssetID,
		BuyerID:    buyer.AccountID,
		Payment:    1200,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), settlement.Price)
	assert.Equal(t, uint64(25), settlement.Fee)
	assert.Equal(t, uint64(975), settlement.SellerAmount)
	assert.Equal(t, uint64(200), settlement.Refund)

	asset, err = c.GetAssetHandler.Handle(ctx, queries.GetAssetQuery{AssetID: minted.AssetID})
	require.NoError(t, err)
	assert.Equal(t, buyer.AccountID, asset.Owner)

	exchangeState, err := c.GetExchangeHandler.Handle(ctx, queries.GetExchangeQuery{
		ExchangeID: exchange.ExchangeID,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(25), exchangeState.FeeBalance)

	swept, err := c.ExchangeAdminHandler.HandleWithdrawFees(ctx, &commands.WithdrawFeesCommand{
		ExchangeID: exchange.ExchangeID,
		AdminToken: adminToken,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(25), swept.Amount)
}

func TestAdminOperationsRejectBadToken(t *testing.T) {
	c := buildContainer(t)
	ctx := context.Background()

	_, err := c.LocationHandler.HandleCreateLocation(ctx, &commands.CreateLocationCommand{
		Label:       "Back Alley",
		MetadataRef: "ref://locations/back-alley",
		GeofenceRef: "ref://geofences/back-alley",
		AdminToken:  "forged",
	})
	assert.True(t, apperrors.IsNotOwner(err))

	_, err = c.ExchangeAdminHandler.HandleCreateExchange(ctx, &commands.CreateExchangeCommand{
		FeeRateBps: 100,
		AdminToken: "forged",
	})
	assert.True(t, apperrors.IsNotOwner(err))
}
