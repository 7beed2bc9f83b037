package aggregates

import (
	"time"

	"wordhoard-backend/domain/config"
	"wordhoard-backend/domain/core/valueobjects"
	"wordhoard-backend/domain/events"
	pkgerrors "wordhoard-backend/pkg/errors"
)

// Listing is one active escrow entry. Display text and content reference
// are snapshots taken at listing time so the listing stays renderable
// without dereferencing the asset.
type Listing struct {
	Asset       valueobjects.AssetID
	Seller      valueobjects.AccountID
	Price       uint64
	DisplayText string
	ContentRef  valueobjects.ContentRef
	ListedEpoch uint64
}

// Settlement is the outcome of a purchase: how the price splits between
// fee and seller proceeds, and how much of the payment flows back to the
// buyer. Fee + SellerAmount always equals the listing price.
type Settlement struct {
	Listing      Listing
	Buyer        valueobjects.AccountID
	Fee          uint64
	SellerAmount uint64
	Refund       uint64
}

// Exchange is the aggregate root for the escrowed marketplace. It owns
// the listing map (at most one active listing per asset id), the fee
// policy, and the accumulated fee balance.
type Exchange struct {
	id         valueobjects.ExchangeID
	admin      string
	feeRateBps uint64
	feeBalance uint64
	listings   map[valueobjects.AssetID]Listing
	createdAt  time.Time
	updatedAt  time.Time
	version    int
	events     []events.DomainEvent
	config     *config.DomainConfig
}

// NewExchange opens a new exchange with the given fee rate in basis
// points. The caller is responsible for admin capability authorization.
func NewExchange(admin string, feeRateBps uint64) (*Exchange, error) {
	return NewExchangeWithConfig(admin, feeRateBps, config.Current())
}

// NewExchangeWithConfig opens a new exchange with specific configuration
func NewExchangeWithConfig(admin string, feeRateBps uint64, cfg *config.DomainConfig) (*Exchange, error) {
	if cfg == nil {
		cfg = config.Current()
	}
	if admin == "" {
		return nil, pkgerrors.NewValidation("admin is required")
	}
	if feeRateBps > cfg.MaxFeeRateBps {
		return nil, pkgerrors.NewValidation("fee rate exceeds maximum basis points")
	}

	now := time.Now()
	exchange := &Exchange{
		id:         valueobjects.NewExchangeID(),
		admin:      admin,
		feeRateBps: feeRateBps,
		listings:   make(map[valueobjects.AssetID]Listing),
		createdAt:  now,
		updatedAt:  now,
		version:    1,
		events:     []events.DomainEvent{},
		config:     cfg,
	}

	exchange.addEvent(events.NewExchangeCreated(exchange.id, admin, now))

	return exchange, nil
}

// ReconstructExchange rebuilds an exchange from repository data
func ReconstructExchange(
	id valueobjects.ExchangeID,
	admin string,
	feeRateBps, feeBalance uint64,
	listings map[valueobjects.AssetID]Listing,
	createdAt, updatedAt time.Time,
	version int,
) (*Exchange, error) {
	if id.IsZero() || admin == "" {
		return nil, pkgerrors.NewValidation("required fields missing for exchange reconstruction")
	}

	if listings == nil {
		listings = make(map[valueobjects.AssetID]Listing)
	}

	return &Exchange{
		id:         id,
		admin:      admin,
		feeRateBps: feeRateBps,
		feeBalance: feeBalance,
		listings:   listings,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		version:    version,
		events:     []events.DomainEvent{},
		config:     config.Current(),
	}, nil
}

// ID returns the exchange's unique identifier
func (e *Exchange) ID() valueobjects.ExchangeID { return e.id }

// Admin returns the identifier recorded at creation
func (e *Exchange) Admin() string { return e.admin }

// FeeRateBps returns the current fee rate in basis points
func (e *Exchange) FeeRateBps() uint64 { return e.feeRateBps }

// FeeBalance returns the accumulated, unwithdrawn fees
func (e *Exchange) FeeBalance() uint64 { return e.feeBalance }

// CreatedAt returns when the exchange opened
func (e *Exchange) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns when the exchange last changed
func (e *Exchange) UpdatedAt() time.Time { return e.updatedAt }

// Version returns the aggregate version used for optimistic concurrency
func (e *Exchange) Version() int { return e.version }

// Listing returns the active listing for an asset id, if any
func (e *Exchange) Listing(asset valueobjects.AssetID) (Listing, bool) {
	listing, ok := e.listings[asset]
	return listing, ok
}

// Listings returns a copy of all active listings
func (e *Exchange) Listings() map[valueobjects.AssetID]Listing {
	out := make(map[valueobjects.AssetID]Listing, len(e.listings))
	for k, v := range e.listings {
		out[k] = v
	}
	return out
}

// List records an escrow listing for the asset. The caller moves the
// asset into exchange custody under the same unit of work.
func (e *Exchange) List(asset valueobjects.AssetID, seller valueobjects.AccountID, price uint64, displayText string, contentRef valueobjects.ContentRef, epoch uint64) error {
	if price == 0 {
		return pkgerrors.NewValidation("listing price must be positive")
	}
	if _, exists := e.listings[asset]; exists {
		return pkgerrors.NewAlreadyListed("asset already has an active listing")
	}

	e.listings[asset] = Listing{
		Asset:       asset,
		Seller:      seller,
		Price:       price,
		DisplayText: displayText,
		ContentRef:  contentRef,
		ListedEpoch: epoch,
	}
	e.touch()

	e.addEvent(events.NewListed(e.id, asset, seller, price, epoch, e.updatedAt))

	return nil
}

// Delist removes the caller's listing and returns it so the caller can
// release the asset from escrow back to the seller.
func (e *Exchange) Delist(asset valueobjects.AssetID, caller valueobjects.AccountID) (Listing, error) {
	listing, exists := e.listings[asset]
	if !exists {
		return Listing{}, pkgerrors.NewNotListed("no active listing for asset")
	}
	if listing.Seller != caller {
		return Listing{}, pkgerrors.NewNotOwner("only the seller may delist")
	}

	delete(e.listings, asset)
	e.touch()

	e.addEvent(events.NewDelisted(e.id, asset, listing.Seller, e.updatedAt))

	return listing, nil
}

// Purchase settles the listing against the offered payment value.
// fee = floor(price * feeRateBps / 10000) and sellerAmount = price - fee,
// so the two always sum to the price exactly. Anything offered above the
// price is returned to the buyer as a refund. Validation happens before
// the first mutation: a rejected purchase changes nothing.
func (e *Exchange) Purchase(asset valueobjects.AssetID, paymentValue uint64, buyer valueobjects.AccountID) (Settlement, error) {
	listing, exists := e.listings[asset]
	if !exists {
		return Settlement{}, pkgerrors.NewNotListed("no active listing for asset")
	}
	if paymentValue < listing.Price {
		return Settlement{}, pkgerrors.NewInsufficientPayment("payment below listing price")
	}

	fee := listing.Price * e.feeRateBps / e.config.FeeDenominator
	settlement := Settlement{
		Listing:      listing,
		Buyer:        buyer,
		Fee:          fee,
		SellerAmount: listing.Price - fee,
		Refund:       paymentValue - listing.Price,
	}

	delete(e.listings, asset)
	e.feeBalance += fee
	e.touch()

	e.addEvent(events.NewPurchased(e.id, asset, listing.Seller, buyer, listing.Price, fee, e.updatedAt))

	return settlement, nil
}

// SetFeeRate updates the fee policy. The caller is responsible for admin
// capability authorization.
func (e *Exchange) SetFeeRate(feeRateBps uint64) error {
	if feeRateBps > e.config.MaxFeeRateBps {
		return pkgerrors.NewValidation("fee rate exceeds maximum basis points")
	}

	e.feeRateBps = feeRateBps
	e.touch()

	return nil
}

// WithdrawFees zeroes the accumulated balance and returns the withdrawn
// amount. The caller wraps it into a payment instrument.
func (e *Exchange) WithdrawFees() uint64 {
	amount := e.feeBalance
	e.feeBalance = 0
	e.touch()

	return amount
}

// GetUncommittedEvents returns all uncommitted domain events
func (e *Exchange) GetUncommittedEvents() []events.DomainEvent {
	out := make([]events.DomainEvent, len(e.events))
	copy(out, e.events)
	return out
}

// MarkEventsAsCommitted clears all uncommitted events
func (e *Exchange) MarkEventsAsCommitted() {
	e.events = []events.DomainEvent{}
}

func (e *Exchange) addEvent(event events.DomainEvent) {
	e.events = append(e.events, event)
}

func (e *Exchange) touch() {
	e.updatedAt = time.Now()
	e.version++
}
