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

// LocationHandler handles location-related HTTP requests
type LocationHandler struct {
	locations *commandhandlers.LocationHandler
	claims    *commandhandlers.ClaimHandler
	boasts    *commandhandlers.BoastHandler
	queries   *queryhandlers.GetLocationHandler
	logger    *zap.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(
	locations *commandhandlers.LocationHandler,
	claims *commandhandlers.ClaimHandler,
	boasts *commandhandlers.BoastHandler,
	queries *queryhandlers.GetLocationHandler,
	logger *zap.Logger,
) *LocationHandler {
	return &LocationHandler{
		locations: locations,
		claims:    claims,
		boasts:    boasts,
		queries:   queries,
		logger:    logger,
	}
}

// CreateLocationRequest represents the request body for registering a location
type CreateLocationRequest struct {
	Label       string `json:"label"`
	MetadataRef string `json:"metadata_ref,omitempty"`
	GeofenceRef string `json:"geofence_ref,omitempty"`
}

// SetActiveRequest represents the request body for toggling a location
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// ClaimRequest represents the request body for claiming a letter
type ClaimRequest struct {
	AccountID string `json:"account_id"`
}

// BoastRequest represents the request body for boasting an asset
type BoastRequest struct {
	AccountID string `json:"account_id"`
	AssetID   string `json:"asset_id"`
}

// UnboastRequest represents the request body for withdrawing a boast
type UnboastRequest struct {
	AccountID string `json:"account_id"`
}

// CreateLocation handles POST /locations
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.locations.HandleCreateLocation(r.Context(), &commands.CreateLocationCommand{
		Label:       req.Label,
		MetadataRef: req.MetadataRef,
		GeofenceRef: req.GeofenceRef,
		AdminToken:  r.Header.Get("X-Admin-Token"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusCreated, result)
}

// ListLocations handles GET /locations
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.HandleList(r.Context())
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}

// GetLocation handles GET /locations/{locationID}
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.Handle(r.Context(), queries.GetLocationQuery{
		LocationID: chi.URLParam(r, "locationID"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}

// SetActive handles PUT /locations/{locationID}/active
func (h *LocationHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.locations.HandleSetLocationActive(r.Context(), &commands.SetLocationActiveCommand{
		LocationID: chi.URLParam(r, "locationID"),
		Active:     req.Active,
		AdminToken: r.Header.Get("X-Admin-Token"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusNoContent, nil)
}

// Claim handles POST /locations/{locationID}/claims
func (h *LocationHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.claims.HandleClaimLetter(r.Context(), &commands.ClaimLetterCommand{
		AccountID:  req.AccountID,
		LocationID: chi.URLParam(r, "locationID"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusCreated, result)
}

// Boast handles POST /locations/{locationID}/boasts
func (h *LocationHandler) Boast(w http.ResponseWriter, r *http.Request) {
	var req BoastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.boasts.HandleBoast(r.Context(), &commands.BoastCommand{
		AccountID:  req.AccountID,
		LocationID: chi.URLParam(r, "locationID"),
		AssetID:    req.AssetID,
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusCreated, nil)
}

// Unboast handles DELETE /locations/{locationID}/boasts
func (h *LocationHandler) Unboast(w http.ResponseWriter, r *http.Request) {
	var req UnboastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.boasts.HandleUnboast(r.Context(), &commands.UnboastCommand{
		AccountID:  req.AccountID,
		LocationID: chi.URLParam(r, "locationID"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusNoContent, nil)
}
