package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/application/queries"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

// GetLocationHandler handles get location queries
type GetLocationHandler struct {
	locations ports.LocationRepository
	logger    *zap.Logger
}

// NewGetLocationHandler creates a new get location handler
func NewGetLocationHandler(locations ports.LocationRepository, logger *zap.Logger) *GetLocationHandler {
	return &GetLocationHandler{locations: locations, logger: logger}
}

// Handle executes the get location query
func (h *GetLocationHandler) Handle(ctx context.Context, query queries.GetLocationQuery) (*queries.GetLocationResult, error) {
	if query.LocationID == "" {
		return nil, apperrors.NewValidation("location ID is required")
	}

	location, err := h.locations.GetByID(ctx, valueobjects.LocationID(query.LocationID))
	if err != nil {
		return nil, err
	}

	visitorLog := make(map[string]queries.VisitEntry)
	for accountID, record := range location.VisitorLog() {
		visitorLog[accountID.String()] = queries.VisitEntry{
			ClaimCount:     record.ClaimCount,
			LastClaimEpoch: record.LastClaimEpoch,
		}
	}

	boastLog := make(map[string]queries.BoastEntry)
	for accountID, record := range location.BoastLog() {
		boastLog[accountID.String()] = queries.BoastEntry{
			AssetID:    record.Asset.String(),
			SinceEpoch: record.SinceEpoch,
		}
	}

	result := &queries.GetLocationResult{
		ID:          location.ID().String(),
		Active:      location.Active(),
		Label:       location.Label(),
		MetadataRef: location.MetadataRef().String(),
		GeofenceRef: location.GeofenceRef().String(),
		VisitorLog:  visitorLog,
		BoastLog:    boastLog,
		CreatedAt:   location.CreatedAt().Format(time.RFC3339),
	}

	h.logger.Debug("location retrieved", zap.String("locationID", query.LocationID))

	return result, nil
}

// HandleList returns summaries of all registered locations
func (h *GetLocationHandler) HandleList(ctx context.Context) (*queries.ListLocationsResult, error) {
	locations, err := h.locations.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]queries.LocationSummary, 0, len(locations))
	for _, location := range locations {
		out = append(out, queries.LocationSummary{
			ID:     location.ID().String(),
			Active: location.Active(),
			Label:  location.Label(),
		})
	}

	return &queries.ListLocationsResult{Locations: out}, nil
}
