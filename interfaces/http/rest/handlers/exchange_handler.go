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

// ExchangeHandler handles exchange-related HTTP requests
type ExchangeHandler struct {
	admin     *commandhandlers.ExchangeAdminHandler
	listings  *commandhandlers.ListingHandler
	purchases *commandhandlers.PurchaseHandler
	queries   *queryhandlers.GetExchangeHandler
	logger    *zap.Logger
}

// NewExchangeHandler creates a new exchange handler
func NewExchangeHandler(
	admin *commandhandlers.ExchangeAdminHandler,
	listings *commandhandlers.ListingHandler,
	purchases *commandhandlers.PurchaseHandler,
	queries *queryhandlers.GetExchangeHandler,
	logger *zap.Logger,
) *ExchangeHandler {
	return &ExchangeHandler{
		admin:     admin,
		listings:  listings,
		purchases: purchases,
		queries:   queries,
		logger:    logger,
	}
}

// CreateExchangeRequest represents the request body for creating an exchange
type CreateExchangeRequest struct {
	FeeRateBps uint64 `json:"fee_rate_bps"`
}

// SetFeeRateRequest represents the request body for changing the fee rate
type SetFeeRateRequest struct {
	FeeRateBps uint64 `json:"fee_rate_bps"`
}

// ListAssetRequest represents the request body for listing an asset
type ListAssetRequest struct {
	AssetID  string `json:"asset_id"`
	SellerID string `json:"seller_id"`
	Price    uint64 `json:"price"`
}

// DelistAssetRequest represents the request body for delisting an asset
type DelistAssetRequest struct {
	CallerID string `json:"caller_id"`
}

// PurchaseRequest represents the request body for purchasing a listed asset
type PurchaseRequest struct {
	BuyerID string `json:"buyer_id"`
	Payment uint64 `json:"payment"`
}

// CreateExchange handles POST /exchanges
func (h *ExchangeHandler) CreateExchange(w http.ResponseWriter, r *http.Request) {
	var req CreateExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.admin.HandleCreateExchange(r.Context(), &commands.CreateExchangeCommand{
		FeeRateBps: req.FeeRateBps,
		AdminToken: r.Header.Get("X-Admin-Token"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusCreated, result)
}

// GetExchange handles GET /exchanges/{exchangeID}
func (h *ExchangeHandler) GetExchange(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.Handle(r.Context(), queries.GetExchangeQuery{
		ExchangeID: chi.URLParam(r, "exchangeID"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}

// SetFeeRate handles PUT /exchanges/{exchangeID}/fee-rate
func (h *ExchangeHandler) SetFeeRate(w http.ResponseWriter, r *http.Request) {
	var req SetFeeRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.admin.HandleSetFeeRate(r.Context(), &commands.SetFeeRateCommand{
		ExchangeID: chi.URLParam(r, "exchangeID"),
		FeeRateBps: req.FeeRateBps,
		AdminToken: r.Header.Get("X-Admin-Token"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusNoContent, nil)
}

// WithdrawFees handles POST /exchanges/{exchangeID}/withdrawals
func (h *ExchangeHandler) WithdrawFees(w http.ResponseWriter, r *http.Request) {
	result, err := h.admin.HandleWithdrawFees(r.Context(), &commands.WithdrawFeesCommand{
		ExchangeID: chi.URLParam(r, "exchangeID"),
		AdminToken: r.Header.Get("X-Admin-Token"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}

// ListAsset handles POST /exchanges/{exchangeID}/listings
func (h *ExchangeHandler) ListAsset(w http.ResponseWriter, r *http.Request) {
	var req ListAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.listings.HandleListAsset(r.Context(), &commands.ListAssetCommand{
		ExchangeID: chi.URLParam(r, "exchangeID"),
		AssetID:    req.AssetID,
		SellerID:   req.SellerID,
		Price:      req.Price,
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusCreated, nil)
}

// ListListings handles GET /exchanges/{exchangeID}/listings
func (h *ExchangeHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.HandleListListings(r.Context(), queries.ListListingsQuery{
		ExchangeID: chi.URLParam(r, "exchangeID"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}

// GetListing handles GET /exchanges/{exchangeID}/listings/{assetID}
func (h *ExchangeHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.HandleGetListing(r.Context(), queries.GetListingQuery{
		ExchangeID: chi.URLParam(r, "exchangeID"),
		AssetID:    chi.URLParam(r, "assetID"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}

// DelistAsset handles DELETE /exchanges/{exchangeID}/listings/{assetID}
func (h *ExchangeHandler) DelistAsset(w http.ResponseWriter, r *http.Request) {
	var req DelistAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.listings.HandleDelistAsset(r.Context(), &commands.DelistAssetCommand{
		ExchangeID: chi.URLParam(r, "exchangeID"),
		AssetID:    chi.URLParam(r, "assetID"),
		CallerID:   req.CallerID,
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusNoContent, nil)
}

// Purchase handles POST /exchanges/{exchangeID}/listings/{assetID}/purchase
func (h *ExchangeHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.purchases.HandlePurchaseAsset(r.Context(), &commands.PurchaseAssetCommand{
		ExchangeID: chi.URLParam(r, "exchangeID"),
		AssetID:    chi.URLParam(r, "assetID"),
		BuyerID:    req.BuyerID,
		Payment:    req.Payment,
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}
