package handlers

import (
	"context"

	"go.uber.org/zap"

	"wordhoard-backend/application/commands"
	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

// TransferHandler handles direct asset transfers between holders
type TransferHandler struct {
	assets   ports.AssetRepository
	locks    ports.LockManager
	eventBus ports.EventPublisher
	logger   *zap.Logger
}

// NewTransferHandler creates a new transfer command handler
func NewTransferHandler(
	assets ports.AssetRepository,
	locks ports.LockManager,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *TransferHandler {
	return &TransferHandler{
		assets:   assets,
		locks:    locks,
		eventBus: eventBus,
		logger:   logger,
	}
}

// HandleTransferAsset executes the transfer asset command. Concurrent
// transfers of one asset serialize on the per-asset lock; the loser sees
// NotOwner because the winner already moved it.
func (h *TransferHandler) HandleTransferAsset(ctx context.Context, cmd *commands.TransferAssetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, assetKey(cmd.AssetID))
	if err != nil {
		return err
	}
	defer release()

	asset, err := h.assets.GetByID(ctx, valueobjects.AssetID(cmd.AssetID))
	if err != nil {
		return err
	}

	if !asset.OwnedBy(cmd.From) {
		return apperrors.NewNotOwner("sender does not hold the asset")
	}

	if err := asset.Transfer(cmd.To); err != nil {
		return err
	}

	if err := h.assets.Save(ctx, asset); err != nil {
		return apperrors.Wrap(err, "failed to save asset")
	}

	publishEvents(ctx, h.eventBus, h.logger, asset.GetUncommittedEvents())
	asset.MarkEventsAsCommitted()

	h.logger.Info("asset transferred",
		zap.String("assetID", cmd.AssetID),
		zap.String("from", cmd.From),
		zap.String("to", cmd.To),
	)

	return nil
}
