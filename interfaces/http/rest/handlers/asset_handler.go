package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"wordhoard-backend/application/commands"
	commandhandlers "wordhoard-backend/application/commands/handlers"
	"wordhoard-backend/application/queries"
	queryhandlers "wordhoard-backend/application/queries/handlers"
	"wordhoard-backend/pkg/api"
)

// AssetHandler handles asset-related HTTP requests
type AssetHandler struct {
	mints     *commandhandlers.MintHandler
	transfers *commandhandlers.TransferHandler
	queries   *queryhandlers.GetAssetHandler
	logger    *zap.Logger
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(
	mints *commandhandlers.MintHandler,
	transfers *commandhandlers.TransferHandler,
	queries *queryhandlers.GetAssetHandler,
	logger *zap.Logger,
) *AssetHandler {
	return &AssetHandler{
		mints:     mints,
		transfers: transfers,
		queries:   queries,
		logger:    logger,
	}
}

// MintAssetRequest represents the request body for minting an asset
type MintAssetRequest struct {
	AccountID   string `json:"account_id"`
	ConsumeText string `json:"consume_text"`
	DisplayText string `json:"display_text"`
	ContentRef  string `json:"content_ref"`
}

// TransferAssetRequest represents the request body for transferring an asset
type TransferAssetRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MintAsset handles POST /assets
func (h *AssetHandler) MintAsset(w http.ResponseWriter, r *http.Request) {
	var req MintAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.mints.HandleMintAsset(r.Context(), &commands.MintAssetCommand{
		AccountID:   req.AccountID,
		ConsumeText: req.ConsumeText,
		DisplayText: req.DisplayText,
		ContentRef:  req.ContentRef,
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusCreated, result)
}

// GetAsset handles GET /assets/{assetID}
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.Handle(r.Context(), queries.GetAssetQuery{
		AssetID: chi.URLParam(r, "assetID"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}

// TransferAsset handles POST /assets/{assetID}/transfer
func (h *AssetHandler) TransferAsset(w http.ResponseWriter, r *http.Request) {
	var req TransferAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.transfers.HandleTransferAsset(r.Context(), &commands.TransferAssetCommand{
		AssetID: chi.URLParam(r, "assetID"),
		From:    req.From,
		To:      req.To,
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusNoContent, nil)
}
