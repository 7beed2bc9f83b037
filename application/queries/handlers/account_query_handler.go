package handlers

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/application/queries"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

// GetAccountHandler handles get account queries
type GetAccountHandler struct {
	accounts ports.AccountRepository
	logger   *zap.Logger
}

// NewGetAccountHandler creates a new get account handler
func NewGetAccountHandler(accounts ports.AccountRepository, logger *zap.Logger) *GetAccountHandler {
	return &GetAccountHandler{accounts: accounts, logger: logger}
}

// Handle executes the get account query
func (h *GetAccountHandler) Handle(ctx context.Context, query queries.GetAccountQuery) (*queries.GetAccountResult, error) {
	if query.AccountID == "" {
		return nil, apperrors.NewValidation("account ID is required")
	}

	account, err := h.accounts.GetByID(ctx, valueobjects.AccountID(query.AccountID))
	if err != nil {
		return nil, err
	}

	inventory := make(map[string]int)
	for symbol, count := range account.Inventory().Counts() {
		inventory[string(symbol)] = count
	}

	history := make(map[string]queries.VisitEntry)
	for locationID, record := range account.VisitHistory() {
		history[locationID.String()] = queries.VisitEntry{
			ClaimCount:     record.ClaimCount,
			LastClaimEpoch: record.LastClaimEpoch,
		}
	}

	bookmarks := make([]queries.BookmarkEntry, 0)
	for ref, bookmark := range account.Bookmarks() {
		bookmarks = append(bookmarks, queries.BookmarkEntry{
			Ref:       ref.String(),
			Kind:      bookmark.Kind,
			Note:      bookmark.Note,
			CreatedAt: bookmark.CreatedAt.Format(time.RFC3339),
		})
	}
	sort.Slice(bookmarks, func(i, j int) bool { return bookmarks[i].Ref < bookmarks[j].Ref })

	result := &queries.GetAccountResult{
		ID:           account.ID().String(),
		DisplayName:  account.DisplayName(),
		Bio:          account.Bio(),
		Inventory:    inventory,
		VisitTotal:   account.VisitTotal(),
		VisitHistory: history,
		Bookmarks:    bookmarks,
		CreatedAt:    account.CreatedAt().Format(time.RFC3339),
		UpdatedAt:    account.UpdatedAt().Format(time.RFC3339),
	}
	if boastAt := account.BoastLocation(); boastAt != nil {
		result.BoastLocation = boastAt.String()
	}

	h.logger.Debug("account retrieved", zap.String("accountID", query.AccountID))

	return result, nil
}
