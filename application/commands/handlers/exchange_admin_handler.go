package handlers

import (
	"context"

	"go.uber.org/zap"

	"wordhoard-backend/application/commands"
	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

// ExchangeAdminHandler handles admin-gated exchange lifecycle commands
type ExchangeAdminHandler struct {
	exchanges ports.ExchangeRepository
	locks     ports.LockManager
	adminCap  *valueobjects.AdminCap
	eventBus  ports.EventPublisher
	logger    *zap.Logger
}

// NewExchangeAdminHandler creates a new exchange admin command handler
func NewExchangeAdminHandler(
	exchanges ports.ExchangeRepository,
	locks ports.LockManager,
	adminCap *valueobjects.AdminCap,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *ExchangeAdminHandler {
	return &ExchangeAdminHandler{
		exchanges: exchanges,
		locks:     locks,
		adminCap:  adminCap,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// HandleCreateExchange executes the create exchange command
func (h *ExchangeAdminHandler) HandleCreateExchange(ctx context.Context, cmd *commands.CreateExchangeCommand) (*commands.CreateExchangeResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.adminCap.Authorize(cmd.AdminToken); err != nil {
		return nil, err
	}

	exchange, err := aggregates.NewExchange("admin", cmd.FeeRateBps)
	if err != nil {
		return nil, err
	}

	if err := h.exchanges.Save(ctx, exchange); err != nil {
		return nil, apperrors.Wrap(err, "failed to save exchange")
	}

	publishEvents(ctx, h.eventBus, h.logger, exchange.GetUncommittedEvents())
	exchange.MarkEventsAsCommitted()

	h.logger.Info("exchange created",
		zap.String("exchangeID", exchange.ID().String()),
		zap.Uint64("feeRateBps", cmd.FeeRateBps),
	)

	return &commands.CreateExchangeResult{ExchangeID: exchange.ID().String()}, nil
}

// HandleSetFeeRate executes the set fee rate command
func (h *ExchangeAdminHandler) HandleSetFeeRate(ctx context.Context, cmd *commands.SetFeeRateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.adminCap.Authorize(cmd.AdminToken); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, exchangeKey(cmd.ExchangeID))
	if err != nil {
		return err
	}
	defer release()

	exchange, err := h.exchanges.GetByID(ctx, valueobjects.ExchangeID(cmd.ExchangeID))
	if err != nil {
		return err
	}

	if err := exchange.SetFeeRate(cmd.FeeRateBps); err != nil {
		return err
	}

	if err := h.exchanges.Save(ctx, exchange); err != nil {
		return apperrors.Wrap(err, "failed to save exchange")
	}

	h.logger.Info("fee rate updated",
		zap.String("exchangeID", cmd.ExchangeID),
		zap.Uint64("feeRateBps", cmd.FeeRateBps),
	)

	return nil
}

// HandleWithdrawFees executes the withdraw fees command. The swept
// balance is returned to the caller as an opaque payment value.
func (h *ExchangeAdminHandler) HandleWithdrawFees(ctx context.Context, cmd *commands.WithdrawFeesCommand) (*commands.WithdrawFeesResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.adminCap.Authorize(cmd.AdminToken); err != nil {
		return nil, err
	}

	release, err := h.locks.Acquire(ctx, exchangeKey(cmd.ExchangeID))
	if err != nil {
		return nil, err
	}
	defer release()

	exchange, err := h.exchanges.GetByID(ctx, valueobjects.ExchangeID(cmd.ExchangeID))
	if err != nil {
		return nil, err
	}

	amount := exchange.WithdrawFees()

	if err := h.exchanges.Save(ctx, exchange); err != nil {
		return nil, apperrors.Wrap(err, "failed to save exchange")
	}

	h.logger.Info("fees withdrawn",
		zap.String("exchangeID", cmd.ExchangeID),
		zap.Uint64("amount", amount),
	)

	return &commands.WithdrawFeesResult{ExchangeID: cmd.ExchangeID, Amount: amount}, nil
}
