package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	commandhandlers "wordhoard-backend/application/commands/handlers"
	"wordhoard-backend/application/ports"
	queryhandlers "wordhoard-backend/application/queries/handlers"
	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/infrastructure/clock"
	"wordhoard-backend/infrastructure/config"
	"wordhoard-backend/infrastructure/messaging"
	"wordhoard-backend/infrastructure/messaging/eventbridge"
	"wordhoard-backend/infrastructure/persistence/dynamodb"
	"wordhoard-backend/infrastructure/persistence/memory"
	"wordhoard-backend/infrastructure/random"
	"wordhoard-backend/pkg/observability"
)

// Storage bundles the repositories and the unit of work factory for
// whichever persistence mode the configuration selects.
type Storage struct {
	Accounts          ports.AccountRepository
	Locations         ports.LocationRepository
	Assets            ports.AssetRepository
	Exchanges         ports.ExchangeRepository
	UnitOfWorkFactory ports.UnitOfWorkFactory
}

// ProvideLogger creates the service logger
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	return observability.NewLogger(cfg.Environment, cfg.LogLevel)
}

// ProvideCollector creates the business metrics collector
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("wordhoard")
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideAdminCap creates the administrative capability from config
func ProvideAdminCap(cfg *config.Config) (*valueobjects.AdminCap, error) {
	return valueobjects.NewAdminCap(cfg.AdminToken)
}

// ProvideEpochClock creates the wall-time epoch clock
func ProvideEpochClock(cfg *config.Config) (*clock.WallEpochClock, error) {
	return clock.NewWallEpochClock(cfg.EpochDuration)
}

// ProvideLetterSource creates the crypto-backed letter source
func ProvideLetterSource() ports.LetterSource {
	return random.NewCryptoLetterSource()
}

// ProvideLockManager creates the in-process lock manager. Both
// persistence modes run behind a single process, so keyed mutexes are
// sufficient to serialize writers.
func ProvideLockManager() ports.LockManager {
	return memory.NewKeyedLockManager()
}

// ProvideEventBus selects the event bus for the persistence mode:
// in-process dispatch for memory mode, EventBridge behind a circuit
// breaker otherwise.
func ProvideEventBus(
	cfg *config.Config,
	client *awseventbridge.Client,
	metrics *observability.Collector,
	logger *zap.Logger,
) ports.EventBus {
	if cfg.PersistenceMode == config.PersistenceModeMemory {
		return messaging.NewDispatcher(logger)
	}
	publisher := eventbridge.NewPublisher(client, cfg.EventBusName, metrics, logger)
	return eventbridge.NewBreakerBus(publisher, logger)
}

// ProvideStorage wires the repositories for the configured mode
func ProvideStorage(cfg *config.Config, client *awsdynamodb.Client, logger *zap.Logger) *Storage {
	if cfg.PersistenceMode == config.PersistenceModeMemory {
		accounts := memory.NewAccountStore()
		locations := memory.NewLocationStore()
		assets := memory.NewAssetStore()
		exchanges := memory.NewExchangeStore()
		return &Storage{
			Accounts:          accounts,
			Locations:         locations,
			Assets:            assets,
			Exchanges:         exchanges,
			UnitOfWorkFactory: memory.NewUnitOfWorkFactory(accounts, locations, assets, exchanges),
		}
	}

	accounts := dynamodb.NewAccountRepository(client, cfg.DynamoDBTable, logger)
	locations := dynamodb.NewLocationRepository(client, cfg.DynamoDBTable, logger)
	assets := dynamodb.NewAssetRepository(client, cfg.DynamoDBTable, logger)
	exchanges := dynamodb.NewExchangeRepository(client, cfg.DynamoDBTable, logger)
	return &Storage{
		Accounts:  accounts,
		Locations: locations,
		Assets:    assets,
		Exchanges: exchanges,
		UnitOfWorkFactory: dynamodb.NewUnitOfWorkFactory(
			client, cfg.DynamoDBTable, accounts, locations, assets, exchanges, logger),
	}
}

// ProvideAccountHandler creates the account command handler
func ProvideAccountHandler(
	storage *Storage,
	locks ports.LockManager,
	adminCap *valueobjects.AdminCap,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *commandhandlers.AccountHandler {
	return commandhandlers.NewAccountHandler(storage.Accounts, locks, adminCap, eventBus, logger)
}

// ProvideClaimHandler creates the claim command handler
func ProvideClaimHandler(
	storage *Storage,
	locks ports.LockManager,
	epochClock *clock.WallEpochClock,
	letters ports.LetterSource,
	eventBus ports.EventBus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *commandhandlers.ClaimHandler {
	return commandhandlers.NewClaimHandler(storage.UnitOfWorkFactory, locks, epochClock, letters, eventBus, metrics, logger)
}

// ProvideBoastHandler creates the boast command handler
func ProvideBoastHandler(
	storage *Storage,
	locks ports.LockManager,
	epochClock *clock.WallEpochClock,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *commandhandlers.BoastHandler {
	return commandhandlers.NewBoastHandler(storage.UnitOfWorkFactory, locks, epochClock, eventBus, logger)
}

// ProvideMintHandler creates the mint command handler
func ProvideMintHandler(
	storage *Storage,
	locks ports.LockManager,
	eventBus ports.EventBus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *commandhandlers.MintHandler {
	return commandhandlers.NewMintHandler(storage.UnitOfWorkFactory, locks, eventBus, metrics, logger)
}

// ProvideTransferHandler creates the transfer command handler
func ProvideTransferHandler(
	storage *Storage,
	locks ports.LockManager,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *commandhandlers.TransferHandler {
	return commandhandlers.NewTransferHandler(storage.Assets, locks, eventBus, logger)
}

// ProvideLocationHandler creates the location command handler
func ProvideLocationHandler(
	storage *Storage,
	locks ports.LockManager,
	adminCap *valueobjects.AdminCap,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *commandhandlers.LocationHandler {
	return commandhandlers.NewLocationHandler(storage.Locations, locks, adminCap, eventBus, logger)
}

// ProvideExchangeAdminHandler creates the exchange admin handler
func ProvideExchangeAdminHandler(
	storage *Storage,
	locks ports.LockManager,
	adminCap *valueobjects.AdminCap,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *commandhandlers.ExchangeAdminHandler {
	return commandhandlers.NewExchangeAdminHandler(storage.Exchanges, locks, adminCap, eventBus, logger)
}

// ProvideListingHandler creates the listing command handler
func ProvideListingHandler(
	storage *Storage,
	locks ports.LockManager,
	epochClock *clock.WallEpochClock,
	eventBus ports.EventBus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *commandhandlers.ListingHandler {
	return commandhandlers.NewListingHandler(storage.UnitOfWorkFactory, locks, epochClock, eventBus, metrics, logger)
}

// ProvidePurchaseHandler creates the purchase command handler
func ProvidePurchaseHandler(
	storage *Storage,
	locks ports.LockManager,
	eventBus ports.EventBus,
	metrics *observability.Collector,
	logger *zap.Logger,
) *commandhandlers.PurchaseHandler {
	return commandhandlers.NewPurchaseHandler(storage.UnitOfWorkFactory, locks, eventBus, metrics, logger)
}

// ProvideGetAccountHandler creates the account query handler
func ProvideGetAccountHandler(storage *Storage, logger *zap.Logger) *queryhandlers.GetAccountHandler {
	return queryhandlers.NewGetAccountHandler(storage.Accounts, logger)
}

// ProvideGetLocationHandler creates the location query handler
func ProvideGetLocationHandler(storage *Storage, logger *zap.Logger) *queryhandlers.GetLocationHandler {
	return queryhandlers.NewGetLocationHandler(storage.Locations, logger)
}

// ProvideGetAssetHandler creates the asset query handler
func ProvideGetAssetHandler(storage *Storage, logger *zap.Logger) *queryhandlers.GetAssetHandler {
	return queryhandlers.NewGetAssetHandler(storage.Assets, logger)
}

// ProvideGetExchangeHandler creates the exchange query handler
func ProvideGetExchangeHandler(storage *Storage, logger *zap.Logger) *queryhandlers.GetExchangeHandler {
	return queryhandlers.NewGetExchangeHandler(storage.Exchanges, logger)
}
