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

// PurchaseHandler handles purchase settlement: fee accrual, seller
// payout, buyer refund and the asset's custody move commit as one unit
// of work. A rejected purchase returns the payment value unconsumed.
type PurchaseHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locks      ports.LockManager
	eventBus   ports.EventPublisher
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewPurchaseHandler creates a new purchase command handler
func NewPurchaseHandler(
	uowFactory ports.UnitOfWorkFactory,
	locks ports.LockManager,
	eventBus ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		uowFactory: uowFactory,
		locks:      locks,
		eventBus:   eventBus,
		metrics:    metrics,
		logger:     logger,
	}
}

// HandlePurchaseAsset executes the purchase asset command
func (h *PurchaseHandler) HandlePurchaseAsset(ctx context.Context, cmd *commands.PurchaseAssetCommand) (*commands.PurchaseAssetResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, err := h.locks.Acquire(ctx, assetKey(cmd.AssetID), exchangeKey(cmd.ExchangeID))
	if err != nil {
		return nil, err
	}
	defer release()

	uow := h.uowFactory()
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.Wrap(err, "failed to begin transaction")
	}
	defer uow.Rollback()

	exchange, err := uow.Exchanges().GetByID(ctx, valueobjects.ExchangeID(cmd.ExchangeID))
	if err != nil {
		return nil, err
	}
	asset, err := uow.Assets().GetByID(ctx, valueobjects.AssetID(cmd.AssetID))
	if err != nil {
		return nil, err
	}

	payment := valueobjects.NewPayment(cmd.Payment)

	settlement, err := exchange.Purchase(asset.ID(), payment.Value(), valueobjects.AccountID(cmd.BuyerID))
	if err != nil {
		return nil, err
	}

	// Split the instrument along the settlement: seller proceeds and fee
	// out, remainder stays with the buyer as the refund.
	sellerPart, err := payment.Split(settlement.SellerAmount)
	if err != nil {
		return nil, apperrors.Wrap(err, "settlement split failed")
	}
	feePart, err := payment.Split(settlement.Fee)
	if err != nil {
		return nil, apperrors.Wrap(err, "settlement split failed")
	}

	if err := asset.Transfer(cmd.BuyerID); err != nil {
		return nil, err
	}

	if err := uow.Exchanges().Save(ctx, exchange); err != nil {
		return nil, apperrors.Wrap(err, "failed to save exchange")
	}
	if err := uow.Assets().Save(ctx, asset); err != nil {
		return nil, apperrors.Wrap(err, "failed to save asset")
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, apperrors.Wrap(err, "failed to commit purchase")
	}

	var allEvents []events.DomainEvent
	allEvents = append(allEvents, exchange.GetUncommittedEvents()...)
	allEvents = append(allEvents, asset.GetUncommittedEvents()...)
	publishEvents(ctx, h.eventBus, h.logger, allEvents)
	exchange.MarkEventsAsCommitted()
	asset.MarkEventsAsCommitted()

	if h.metrics != nil {
		h.metrics.PurchasesSettled.Inc()
		h.metrics.FeesAccruedTotal.Add(float64(settlement.Fee))
		h.metrics.ListingsActive.Dec()
	}

	h.logger.Info("purchase settled",
		zap.String("assetID", cmd.AssetID),
		zap.String("buyerID", cmd.BuyerID),
		zap.Uint64("price", settlement.Listing.Price),
		zap.Uint64("fee", settlement.Fee),
	)

	return &commands.PurchaseAssetResult{
		AssetID:      cmd.AssetID,
		Price:        settlement.Listing.Price,
		Fee:          feePart.Value(),
		SellerAmount: sellerPart.Value(),
		Refund:       payment.Value(),
	}, nil
}
