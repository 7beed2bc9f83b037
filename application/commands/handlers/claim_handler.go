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

// ClaimHandler handles the claim-letter command: one uniform letter draw
// per location per epoch, committed atomically across the location's
// visitor log and the account's inventory and visit history.
type ClaimHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locks      ports.LockManager
	clock      ports.EpochClock
	letters    ports.LetterSource
	eventBus   ports.EventPublisher
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewClaimHandler creates a new claim command handler
func NewClaimHandler(
	uowFactory ports.UnitOfWorkFactory,
	locks ports.LockManager,
	clock ports.EpochClock,
	letters ports.LetterSource,
	eventBus ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *ClaimHandler {
	return &ClaimHandler{
		uowFactory: uowFactory,
		locks:      locks,
		clock:      clock,
		letters:    letters,
		eventBus:   eventBus,
		metrics:    metrics,
		logger:     logger,
	}
}

// HandleClaimLetter executes the claim letter command
func (h *ClaimHandler) HandleClaimLetter(ctx context.Context, cmd *commands.ClaimLetterCommand) (*commands.ClaimLetterResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, err := h.locks.Acquire(ctx, accountKey(cmd.AccountID), locationKey(cmd.LocationID))
	if err != nil {
		return nil, err
	}
	defer release()

	epoch, err := h.clock.Current(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read epoch clock")
	}

	letter, err := h.letters.Draw(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to draw letter")
	}

	uow := h.uowFactory()
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.Wrap(err, "failed to begin transaction")
	}
	defer uow.Rollback()

	location, err := uow.Locations().GetByID(ctx, valueobjects.LocationID(cmd.LocationID))
	if err != nil {
		return nil, err
	}
	account, err := uow.Accounts().GetByID(ctx, valueobjects.AccountID(cmd.AccountID))
	if err != nil {
		return nil, err
	}

	drawn := string(letter)
	if err := location.RecordClaim(account.ID(), epoch, drawn); err != nil {
		h.recordRejection(err)
		return nil, err
	}

	account.AppendLetters(drawn)
	account.RecordVisit(location.ID(), epoch)

	if err := uow.Locations().Save(ctx, location); err != nil {
		return nil, apperrors.Wrap(err, "failed to save location")
	}
	if err := uow.Accounts().Save(ctx, account); err != nil {
		return nil, apperrors.Wrap(err, "failed to save account")
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, apperrors.Wrap(err, "failed to commit claim")
	}

	var allEvents []events.DomainEvent
	allEvents = append(allEvents, location.GetUncommittedEvents()...)
	allEvents = append(allEvents, account.GetUncommittedEvents()...)
	publishEvents(ctx, h.eventBus, h.logger, allEvents)
	location.MarkEventsAsCommitted()
	account.MarkEventsAsCommitted()

	if h.metrics != nil {
		h.metrics.LettersClaimed.Inc()
	}

	h.logger.Info("letter claimed",
		zap.String("accountID", cmd.AccountID),
		zap.String("locationID", cmd.LocationID),
		zap.Uint64("epoch", epoch),
	)

	return &commands.ClaimLetterResult{
		AccountID:  cmd.AccountID,
		LocationID: cmd.LocationID,
		Letter:     drawn,
		Epoch:      epoch,
	}, nil
}

func (h *ClaimHandler) recordRejection(err error) {
	if h.metrics == nil {
		return
	}
	switch {
	case apperrors.IsInactive(err):
		h.metrics.ClaimsRejected.WithLabelValues("inactive").Inc()
	case apperrors.IsDuplicateClaim(err):
		h.metrics.ClaimsRejected.WithLabelValues("duplicate").Inc()
	default:
		h.metrics.ClaimsRejected.WithLabelValues("other").Inc()
	}
}
