package handlers

import (
	"context"

	"go.uber.org/zap"

	"wordhoard-backend/application/commands"
	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	apperrors "wordhoard-backend/pkg/errors"
	"wordhoard-backend/pkg/observability"
)

// ListingHandler handles listing and delisting: the listing record and
// the asset's custody move commit as one unit of work.
type ListingHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locks      ports.LockManager
	clock      ports.EpochClock
	eventBus   ports.EventPublisher
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewListingHandler creates a new listing command handler
func NewListingHandler(
	uowFactory ports.UnitOfWorkFactory,
	locks ports.LockManager,
	clock ports.EpochClock,
	eventBus ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *ListingHandler {
	return &ListingHandler{
		uowFactory: uowFactory,
		locks:      locks,
		clock:      clock,
		eventBus:   eventBus,
		metrics:    metrics,
		logger:     logger,
	}
}

// HandleListAsset executes the list asset command
func (h *ListingHandler) HandleListAsset(ctx context.Context, cmd *commands.ListAssetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, assetKey(cmd.AssetID), exchangeKey(cmd.ExchangeID))
	if err != nil {
		return err
	}
	defer release()

	epoch, err := h.clock.Current(ctx)
	if err != nil {
		return apperrors.Wrap(err, "failed to read epoch clock")
	}

	uow := h.uowFactory()
	if err := uow.Begin(ctx); err != nil {
		return apperrors.Wrap(err, "failed to begin transaction")
	}
	defer uow.Rollback()

	exchange, err := uow.Exchanges().GetByID(ctx, valueobjects.ExchangeID(cmd.ExchangeID))
	if err != nil {
		return err
	}
	asset, err := uow.Assets().GetByID(ctx, valueobjects.AssetID(cmd.AssetID))
	if err != nil {
		return err
	}

	if !asset.OwnedBy(cmd.SellerID) {
		return apperrors.NewNotOwner("seller does not hold the asset")
	}

	err = exchange.List(
		asset.ID(),
		valueobjects.AccountID(cmd.SellerID),
		cmd.Price,
		asset.DisplayText(),
		asset.ContentRef(),
		epoch,
	)
	if err != nil {
		return err
	}

	// Escrow: the exchange itself holds the asset while listed
	if err := asset.Transfer(exchange.ID().String()); err != nil {
		return err
	}

	if err := uow.Exchanges().Save(ctx, exchange); err != nil {
		return apperrors.Wrap(err, "failed to save exchange")
	}
	if err := uow.Assets().Save(ctx, asset); err != nil {
		return apperrors.Wrap(err, "failed to save asset")
	}
	if err := uow.Commit(ctx); err != nil {
		return apperrors.Wrap(err, "failed to commit listing")
	}

	var allEvents []events.DomainEvent
	allEvents = append(allEvents, exchange.GetUncommittedEvents()...)
	allEvents = append(allEvents, asset.GetUncommittedEvents()...)
	publishEvents(ctx, h.eventBus, h.logger, allEvents)
	exchange.MarkEventsAsCommitted()
	asset.MarkEventsAsCommitted()

	if h.metrics != nil {
		h.metrics.ListingsActive.Inc()
	}

	h.logger.Info("asset listed",
		zap.String("assetID", cmd.AssetID),
		zap.String("exchangeID", cmd.ExchangeID),
		zap.Uint64("price", cmd.Price),
	)

	return nil
}

// HandleDelistAsset executes the delist asset command
func (h *ListingHandler) HandleDelistAsset(ctx context.Context, cmd *commands.DelistAssetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, assetKey(cmd.AssetID), exchangeKey(cmd.ExchangeID))
	if err != nil {
		return err
	}
	defer release()

	uow := h.uowFactory()
	if err := uow.Begin(ctx); err != nil {
		return apperrors.Wrap(err, "failed to begin transaction")
	}
	defer uow.Rollback()

	exchange, err := uow.Exchanges().GetByID(ctx, valueobjects.ExchangeID(cmd.ExchangeID))
	if err != nil {
		return err
	}
	asset, err := uow.Assets().GetByID(ctx, valueobjects.AssetID(cmd.AssetID))
	if err != nil {
		return err
	}

	listing, err := exchange.Delist(asset.ID(), valueobjects.AccountID(cmd.CallerID))
	if err != nil {
		return err
	}

	// Release escrow back to the seller
	if err := asset.Transfer(listing.Seller.String()); err != nil {
		return err
	}

	if err := uow.Exchanges().Save(ctx, exchange); err != nil {
		return apperrors.Wrap(err, "failed to save exchange")
	}
	if err := uow.Assets().Save(ctx, asset); err != nil {
		return apperrors.Wrap(err, "failed to save asset")
	}
	if err := uow.Commit(ctx); err != nil {
		return apperrors.Wrap(err, "failed to commit delisting")
	}

	var allEvents []events.DomainEvent
	allEvents = append(allEvents, exchange.GetUncommittedEvents()...)
	allEvents = append(allEvents, asset.GetUncommittedEvents()...)
	publishEvents(ctx, h.eventBus, h.logger, allEvents)
	exchange.MarkEventsAsCommitted()
	asset.MarkEventsAsCommitted()

	if h.metrics != nil {
		h.metrics.ListingsActive.Dec()
	}

	h.logger.Info("asset delisted",
		zap.String("assetID", cmd.AssetID),
		zap.String("exchangeID", cmd.ExchangeID),
	)

	return nil
}
