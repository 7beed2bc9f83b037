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

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	commands *commandhandlers.AccountHandler
	queries  *queryhandlers.GetAccountHandler
	logger   *zap.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(
	commands *commandhandlers.AccountHandler,
	queries *queryhandlers.GetAccountHandler,
	logger *zap.Logger,
) *AccountHandler {
	return &AccountHandler{
		commands: commands,
		queries:  queries,
		logger:   logger,
	}
}

// CreateAccountRequest represents the request body for creating an account
type CreateAccountRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// UpdateProfileRequest represents the request body for updating a profile
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
}

// AppendLettersRequest represents the admin grant request body
type AppendLettersRequest struct {
	Letters string `json:"letters"`
}

// AddBookmarkRequest represents the request body for saving a bookmark
type AddBookmarkRequest struct {
	Ref  string `json:"ref"`
	Kind string `json:"kind"`
	Note string `json:"note,omitempty"`
}

// CreateAccount handles POST /accounts
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.commands.HandleCreateAccount(r.Context(), &commands.CreateAccountCommand{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusCreated, result)
}

// GetAccount handles GET /accounts/{accountID}
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.Handle(r.Context(), queries.GetAccountQuery{
		AccountID: chi.URLParam(r, "accountID"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusOK, result)
}

// UpdateProfile handles PUT /accounts/{accountID}/profile
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.commands.HandleUpdateProfile(r.Context(), &commands.UpdateProfileCommand{
		AccountID:   chi.URLParam(r, "accountID"),
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusNoContent, nil)
}

// AppendLetters handles POST /accounts/{accountID}/letters
func (h *AccountHandler) AppendLetters(w http.ResponseWriter, r *http.Request) {
	var req AppendLettersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.commands.HandleAppendLetters(r.Context(), &commands.AppendLettersCommand{
		AccountID:  chi.URLParam(r, "accountID"),
		Letters:    req.Letters,
		AdminToken: r.Header.Get("X-Admin-Token"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusNoContent, nil)
}

// AddBookmark handles POST /accounts/{accountID}/bookmarks
func (h *AccountHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	var req AddBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.commands.HandleAddBookmark(r.Context(), &commands.AddBookmarkCommand{
		AccountID: chi.URLParam(r, "accountID"),
		Ref:       req.Ref,
		Kind:      req.Kind,
		Note:      req.Note,
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusCreated, nil)
}

// RemoveBookmark handles DELETE /accounts/{accountID}/bookmarks?ref=...
// The ref travels as a query parameter because content refs may contain
// path separators.
func (h *AccountHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	err := h.commands.HandleRemoveBookmark(r.Context(), &commands.RemoveBookmarkCommand{
		AccountID: chi.URLParam(r, "accountID"),
		Ref:       r.URL.Query().Get("ref"),
	})
	if err != nil {
		api.ErrorFrom(w, err)
		return
	}

	api.Success(w, http.StatusNoContent, nil)
}
