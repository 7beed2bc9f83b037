package di

import (
	"go.uber.org/zap"

	commandhandlers "wordhoard-backend/application/commands/handlers"
	"wordhoard-backend/application/ports"
	queryhandlers "wordhoard-backend/application/queries/handlers"
	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/infrastructure/clock"
	"wordhoard-backend/infrastructure/config"
	"wordhoard-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *observability.Collector
	AdminCap   *valueobjects.AdminCap
	EpochClock *clock.WallEpochClock
	EventBus   ports.EventBus
	Locks      ports.LockManager
	Storage    *Storage

	AccountHandler       *commandhandlers.AccountHandler
	ClaimHandler         *commandhandlers.ClaimHandler
	BoastHandler         *commandhandlers.BoastHandler
	MintHandler          *commandhandlers.MintHandler
	TransferHandler      *commandhandlers.TransferHandler
	LocationHandler      *commandhandlers.LocationHandler
	ExchangeAdminHandler *commandhandlers.ExchangeAdminHandler
	ListingHandler       *commandhandlers.ListingHandler
	PurchaseHandler      *commandhandlers.PurchaseHandler

	GetAccountHandler  *queryhandlers.GetAccountHandler
	GetLocationHandler *queryhandlers.GetLocationHandler
	GetAssetHandler    *queryhandlers.GetAssetHandler
	GetExchangeHandler *queryhandlers.GetExchangeHandler
}
