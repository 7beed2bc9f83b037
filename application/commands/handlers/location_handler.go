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

// LocationHandler handles admin-gated location registry commands
type LocationHandler struct {
	locations ports.LocationRepository
	locks     ports.LockManager
	adminCap  *valueobjects.AdminCap
	eventBus  ports.EventPublisher
	logger    *zap.Logger
}

// NewLocationHandler creates a new location command handler
func NewLocationHandler(
	locations ports.LocationRepository,
	locks ports.LockManager,
	adminCap *valueobjects.AdminCap,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *LocationHandler {
	return &LocationHandler{
		locations: locations,
		locks:     locks,
		adminCap:  adminCap,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// HandleCreateLocation executes the create location command
func (h *LocationHandler) HandleCreateLocation(ctx context.Context, cmd *commands.CreateLocationCommand) (*commands.CreateLocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.adminCap.Authorize(cmd.AdminToken); err != nil {
		return nil, err
	}

	location, err := aggregates.NewLocation(
		cmd.Label,
		valueobjects.ContentRef(cmd.MetadataRef),
		valueobjects.ContentRef(cmd.GeofenceRef),
	)
	if err != nil {
		return nil, err
	}

	if err := h.locations.Save(ctx, location); err != nil {
		return nil, apperrors.Wrap(err, "failed to save location")
	}

	publishEvents(ctx, h.eventBus, h.logger, location.GetUncommittedEvents())
	location.MarkEventsAsCommitted()

	h.logger.Info("location created",
		zap.String("locationID", location.ID().String()),
		zap.String("label", cmd.Label),
	)

	return &commands.CreateLocationResult{LocationID: location.ID().String()}, nil
}

// HandleSetLocationActive executes the set location active command
func (h *LocationHandler) HandleSetLocationActive(ctx context.Context, cmd *commands.SetLocationActiveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.adminCap.Authorize(cmd.AdminToken); err != nil {
		return err
	}

	release, err := h.locks.Acquire(ctx, locationKey(cmd.LocationID))
	if err != nil {
		return err
	}
	defer release()

	location, err := h.locations.GetByID(ctx, valueobjects.LocationID(cmd.LocationID))
	if err != nil {
		return err
	}

	location.SetActive(cmd.Active)

	if err := h.locations.Save(ctx, location); err != nil {
		return apperrors.Wrap(err, "failed to save location")
	}

	publishEvents(ctx, h.eventBus, h.logger, location.GetUncommittedEvents())
	location.MarkEventsAsCommitted()

	h.logger.Info("location toggled",
		zap.String("locationID", cmd.LocationID),
		zap.Bool("active", cmd.Active),
	)

	return nil
}
