package handlers

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/application/queries"
	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

// GetExchangeHandler handles exchange, listing and listing-list queries
type GetExchangeHandler struct {
	exchanges ports.ExchangeRepository
	logger    *zap.Logger
}

// NewGetExchangeHandler creates a new exchange query handler
func NewGetExchangeHandler(exchanges ports.ExchangeRepository, logger *zap.Logger) *GetExchangeHandler {
	return &GetExchangeHandler{exchanges: exchanges, logger: logger}
}

// Handle executes the get exchange query
func (h *GetExchangeHandler) Handle(ctx context.Context, query queries.GetExchangeQuery) (*queries.GetExchangeResult, error) {
	if query.ExchangeID == "" {
		return nil, apperrors.NewValidation("exchange ID is required")
	}

	exchange, err := h.exchanges.GetByID(ctx, valueobjects.ExchangeID(query.ExchangeID))
	if err != nil {
		return nil, err
	}

	return &queries.GetExchangeResult{
		ID:            exchange.ID().String(),
		FeeRateBps:    exchange.FeeRateBps(),
		FeeBalance:    exchange.FeeBalance(),
		ActiveListing: len(exchange.Listings()),
		CreatedAt:     exchange.CreatedAt().Format(time.RFC3339),
	}, nil
}

// HandleGetListing executes the get listing query
func (h *GetExchangeHandler) HandleGetListing(ctx context.Context, query queries.GetListingQuery) (*queries.ListingResult, error) {
	if query.ExchangeID == "" {
		return nil, apperrors.NewValidation("exchange ID is required")
	}
	if query.AssetID == "" {
		return nil, apperrors.NewValidation("asset ID is required")
	}

	exchange, err := h.exchanges.GetByID(ctx, valueobjects.ExchangeID(query.ExchangeID))
	if err != nil {
		return nil, err
	}

	listing, ok := exchange.Listing(valueobjects.AssetID(query.AssetID))
	if !ok {
		return nil, apperrors.NewNotListed("no active listing for asset")
	}

	result := listingResult(listing)
	return &result, nil
}

// HandleListListings executes the list listings query
func (h *GetExchangeHandler) HandleListListings(ctx context.Context, query queries.ListListingsQuery) (*queries.ListListingsResult, error) {
	if query.ExchangeID == "" {
		return nil, apperrors.NewValidation("exchange ID is required")
	}

	exchange, err := h.exchanges.GetByID(ctx, valueobjects.ExchangeID(query.ExchangeID))
	if err != nil {
		return nil, err
	}

	listings := make([]queries.ListingResult, 0)
	for _, listing := range exchange.Listings() {
		listings = append(listings, listingResult(listing))
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].AssetID < listings[j].AssetID })

	return &queries.ListListingsResult{
		ExchangeID: query.ExchangeID,
		Listings:   listings,
	}, nil
}

func listingResult(listing aggregates.Listing) queries.ListingResult {
	return queries.ListingResult{
		AssetID:     listing.Asset.String(),
		Seller:      listing.Seller.String(),
		Price:       listing.Price,
		DisplayText: listing.DisplayText,
		ContentRef:  listing.ContentRef.String(),
		ListedEpoch: listing.ListedEpoch,
	}
}
