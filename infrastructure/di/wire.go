//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/infrastructure/clock"
	"wordhoard-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideCollector,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideAdminCap,
	ProvideEpochClock,
	ProvideLetterSource,
	ProvideLockManager,
	ProvideEventBus,
	ProvideStorage,
	ProvideAccountHandler,
	ProvideClaimHandler,
	ProvideBoastHandler,
	ProvideMintHandler,
	ProvideTransferHandler,
	ProvideLocationHandler,
	ProvideExchangeAdminHandler,
	ProvideListingHandler,
	ProvidePurchaseHandler,
	ProvideGetAccountHandler,
	ProvideGetLocationHandler,
	ProvideGetAssetHandler,
	ProvideGetExchangeHandler,
	wire.Bind(new(ports.EpochClock), new(*clock.WallEpochClock)),
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
