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

// GetAssetHandler handles get asset queries
type GetAssetHandler struct {
	assets ports.AssetRepository
	logger *zap.Logger
}

// NewGetAssetHandler creates a new get asset handler
func NewGetAssetHandler(assets ports.AssetRepository, logger *zap.Logger) *GetAssetHandler {
	return &GetAssetHandler{assets: assets, logger: logger}
}

// Handle executes the get asset query
func (h *GetAssetHandler) Handle(ctx context.Context, query queries.GetAssetQuery) (*queries.GetAssetResult, error) {
	if query.AssetID == "" {
		return nil, apperrors.NewValidation("asset ID is required")
	}

	asset, err := h.assets.GetByID(ctx, valueobjects.AssetID(query.AssetID))
	if err != nil {
		return nil, err
	}

	result := &queries.GetAssetResult{
		ID:              asset.ID().String(),
		Owner:           asset.Owner(),
		DisplayText:     asset.DisplayText(),
		ContentRef:      asset.ContentRef().String(),
		LettersConsumed: asset.LettersConsumed(),
		CreatedAt:       asset.CreatedAt().Format(time.RFC3339),
	}

	h.logger.Debug("asset retrieved", zap.String("assetID", query.AssetID))

	return result, nil
}
