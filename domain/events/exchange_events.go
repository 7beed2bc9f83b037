package events

import (
	"time"

	"wordhoard-backend/domain/core/valueobjects"
)

// ExchangeCreated is raised when a new exchange opens
type ExchangeCreated struct {
	BaseEvent
	Exchange valueobjects.ExchangeID `json:"exchange"`
	Admin    string                  `json:"admin"`
}

// NewExchangeCreated creates an ExchangeCreated event
func NewExchangeCreated(exchange valueobjects.ExchangeID, admin string, timestamp time.Time) ExchangeCreated {
	return ExchangeCreated{
		BaseEvent: BaseEvent{
			AggregateID: exchange.String(),
			EventType:   TypeExchangeCreated,
			Timestamp:   timestamp,
			Version:     1,
		},
		Exchange: exchange,
		Admin:    admin,
	}
}

// Listed is raised when an asset enters escrow with an active listing
type Listed struct {
	BaseEvent
	Exchange valueobjects.ExchangeID `json:"exchange"`
	Asset    valueobjects.AssetID    `json:"asset"`
	Seller   valueobjects.AccountID  `json:"seller"`
	Price    uint64                  `json:"price"`
	Epoch    uint64                  `json:"epoch"`
}

// NewListed creates a Listed event
func NewListed(exchange valueobjects.ExchangeID, asset valueobjects.AssetID, seller valueobjects.AccountID, price, epoch uint64, timestamp time.Time) Listed {
	return Listed{
		BaseEvent: BaseEvent{
			AggregateID: exchange.String(),
			EventType:   TypeListed,
			Timestamp:   timestamp,
			Version:     1,
		},
		Exchange: exchange,
		Asset:    asset,
		Seller:   seller,
		Price:    price,
		Epoch:    epoch,
	}
}

// Delisted is raised when a seller withdraws an active listing
type Delisted struct {
	BaseEvent
	Exchange valueobjects.ExchangeID `json:"exchange"`
	Asset    valueobjects.AssetID    `json:"asset"`
	Seller   valueobjects.AccountID  `json:"seller"`
}

// NewDelisted creates a Delisted event
func NewDelisted(exchange valueobjects.ExchangeID, asset valueobjects.AssetID, seller valueobjects.AccountID, timestamp time.Time) Delisted {
	return Delisted{
		BaseEvent: BaseEvent{
			AggregateID: exchange.String(),
			EventType:   TypeDelisted,
			Timestamp:   timestamp,
			Version:     1,
		},
		Exchange: exchange,
		Asset:    asset,
		Seller:   seller,
	}
}

// Purchased is raised when a settlement completes
type Purchased struct {
	BaseEvent
	Exchange valueobjects.ExchangeID `json:"exchange"`
	Asset    valueobjects.AssetID    `json:"asset"`
	Seller   valueobjects.AccountID  `json:"seller"`
	Buyer    valueobjects.AccountID  `json:"buyer"`
	Price    uint64                  `json:"price"`
	Fee      uint64                  `json:"fee"`
}

// NewPurchased creates a Purchased event
func NewPurchased(exchange valueobjects.ExchangeID, asset valueobjects.AssetID, seller, buyer valueobjects.AccountID, price, fee uint64, timestamp time.Time) Purchased {
	return Purchased{
		BaseEvent: BaseEvent{
			AggregateID: exchange.String(),
			EventType:   TypePurchased,
			Timestamp:   timestamp,
			Version:     1,
		},
		Exchange: exchange,
		Asset:    asset,
		Seller:   seller,
		Buyer:    buyer,
		Price:    price,
		Fee:      fee,
	}
}
