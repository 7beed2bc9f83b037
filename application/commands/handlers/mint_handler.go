package handlers

import (
	"context"

	"go.uber.org/zap"

	"wordhoard-backend/application/commands"
	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/entities"
	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	apperrors "wordhoard-backend/pkg/errors"
	"wordhoard-backend/pkg/observability"
)

// MintHandler handles the mint-asset command: the ledger charge and the
// asset creation commit as one unit of work, so a shortage mints nothing
// and a mint never under-charges.
type MintHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locks      ports.LockManager
	eventBus   ports.EventPublisher
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewMintHandler creates a new mint command handler
func NewMintHandler(
	uowFactory ports.UnitOfWorkFactory,
	locks ports.LockManager,
	eventBus ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *MintHandler {
	return &MintHandler{
		uowFactory: uowFactory,
		locks:      locks,
		eventBus:   eventBus,
		metrics:    metrics,
		logger:     logger,
	}
}

// HandleMintAsset executes the mint asset command
func (h *MintHandler) HandleMintAsset(ctx context.Context, cmd *commands.MintAssetCommand) (*commands.MintAssetResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, err := h.locks.Acquire(ctx, accountKey(cmd.AccountID))
	if err != nil {
		return nil, err
	}
	defer release()

	uow := h.uowFactory()
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.Wrap(err, "failed to begin transaction")
	}
	defer uow.Rollback()

	account, err := uow.Accounts().GetByID(ctx, valueobjects.AccountID(cmd.AccountID))
	if err != nil {
		return nil, err
	}

	normalized, err := account.Consume(cmd.ConsumeText)
	if err != nil {
		return nil, err
	}

	// The charge is the non-whitespace byte count of the consumption text,
	// which is exactly the length after normalization.
	lettersConsumed := uint64(len(normalized))

	asset, err := entities.NewAsset(
		account.ID(),
		cmd.DisplayText,
		valueobjects.ContentRef(cmd.ContentRef),
		lettersConsumed,
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Accounts().Save(ctx, account); err != nil {
		return nil, apperrors.Wrap(err, "failed to save account")
	}
	if err := uow.Assets().Save(ctx, asset); err != nil {
		return nil, apperrors.Wrap(err, "failed to save asset")
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, apperrors.Wrap(err, "failed to commit mint")
	}

	var allEvents []events.DomainEvent
	allEvents = append(allEvents, account.GetUncommittedEvents()...)
	allEvents = append(allEvents, asset.GetUncommittedEvents()...)
	publishEvents(ctx, h.eventBus, h.logger, allEvents)
	account.MarkEventsAsCommitted()
	asset.MarkEventsAsCommitted()

	if h.metrics != nil {
		h.metrics.AssetsMinted.Inc()
		h.metrics.LettersConsumed.Add(float64(lettersConsumed))
	}

	h.logger.Info("asset minted",
		zap.String("accountID", cmd.AccountID),
		zap.String("assetID", asset.ID().String()),
		zap.Uint64("lettersConsumed", lettersConsumed),
	)

	return &commands.MintAssetResult{
		AssetID:         asset.ID().String(),
		DisplayText:     asset.DisplayText(),
		LettersConsumed: lettersConsumed,
	}, nil
}
