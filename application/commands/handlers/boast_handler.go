package handlers

import (
	"context"

	"go.uber.org/zap"

	"wordhoard-backend/application/commands"
	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	apperrors "wordhoard-backend/pkg/errors"
)

// BoastHandler handles the boast and unboast commands, keeping the
// location's boast log and the account's boast pointer in sync.
type BoastHandler struct {
	uowFactory ports.UnitOfWorkFactory
	locks      ports.LockManager
	clock      ports.EpochClock
	eventBus   ports.EventPublisher
	logger     *zap.Logger
}

// NewBoastHandler creates a new boast command handler
func NewBoastHandler(
	uowFactory ports.UnitOfWorkFactory,
	locks ports.LockManager,
	clock ports.EpochClock,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *BoastHandler {
	return &BoastHandler{
		uowFactory: uowFactory,
		locks:      locks,
		clock:      clock,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// HandleBoast executes the boast command. The asset must exist, but
// ownership is deliberately not verified against the boaster.
func (h *BoastHandler) HandleBoast(ctx context.Context, cmd *commands.BoastCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, accountKey(cmd.AccountID), locationKey(cmd.LocationID))
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

	if _, err := uow.Assets().GetByID(ctx, valueobjects.AssetID(cmd.AssetID)); err != nil {
		return err
	}
	location, err := uow.Locations().GetByID(ctx, valueobjects.LocationID(cmd.LocationID))
	if err != nil {
		return err
	}
	account, err := uow.Accounts().GetByID(ctx, valueobjects.AccountID(cmd.AccountID))
	if err != nil {
		return err
	}

	location.Boast(account.ID(), valueobjects.AssetID(cmd.AssetID), epoch)
	account.SetBoast(location.ID())

	if err := uow.Locations().Save(ctx, location); err != nil {
		return apperrors.Wrap(err, "failed to save location")
	}
	if err := uow.Accounts().Save(ctx, account); err != nil {
		return apperrors.Wrap(err, "failed to save account")
	}
	if err := uow.Commit(ctx); err != nil {
		return apperrors.Wrap(err, "failed to commit boast")
	}

	var allEvents []events.DomainEvent
	allEvents = append(allEvents, location.GetUncommittedEvents()...)
	allEvents = append(allEvents, account.GetUncommittedEvents()...)
	publishEvents(ctx, h.eventBus, h.logger, allEvents)
	location.MarkEventsAsCommitted()
	account.MarkEventsAsCommitted()

	return nil
}

// HandleUnboast executes the unboast command. Removing an absent boast
// is a no-op, not an error.
func (h *BoastHandler) HandleUnboast(ctx context.Context, cmd *commands.UnboastCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, accountKey(cmd.AccountID), locationKey(cmd.LocationID))
	if err != nil {
		return err
	}
	defer release()

	uow := h.uowFactory()
	if err := uow.Begin(ctx); err != nil {
		return apperrors.Wrap(err, "failed to begin transaction")
	}
	defer uow.Rollback()

	location, err := uow.Locations().GetByID(ctx, valueobjects.LocationID(cmd.LocationID))
	if err != nil {
		return err
	}
	account, err := uow.Accounts().GetByID(ctx, valueobjects.AccountID(cmd.AccountID))
	if err != nil {
		return err
	}

	location.Unboast(account.ID())

	// Only clear the pointer when it actually points here
	if boastAt := account.BoastLocation(); boastAt != nil && *boastAt == location.ID() {
		account.ClearBoast()
	}

	if err := uow.Locations().Save(ctx, location); err != nil {
		return apperrors.Wrap(err, "failed to save location")
	}
	if err := uow.Accounts().Save(ctx, account); err != nil {
		return apperrors.Wrap(err, "failed to save account")
	}
	if err := uow.Commit(ctx); err != nil {
		return apperrors.Wrap(err, "failed to commit unboast")
	}

	var allEvents []events.DomainEvent
	allEvents = append(allEvents, location.GetUncommittedEvents()...)
	allEvents = append(allEvents, account.GetUncommittedEvents()...)
	publishEvents(ctx, h.eventBus, h.logger, allEvents)
	location.MarkEventsAsCommitted()
	account.MarkEventsAsCommitted()

	return nil
}
