package dynamodb

import (
	"time"

	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/entities"
	"wordhoard-backend/domain/core/valueobjects"
)

// Single-table layout. Partition and sort keys follow the
// ENTITY#<id> / METADATA pattern; every record carries its aggregate
// version for conditional writes.

const (
	entityTypeAccount  = "ACCOUNT"
	entityTypeLocation = "LOCATION"
	entityTypeAsset    = "ASSET"
	entityTypeExchange = "EXCHANGE"

	skMetadata = "METADATA"
)

type visitRecordItem struct {
	ClaimCount     uint64 `dynamodbav:"ClaimCount"`
	LastClaimEpoch uint64 `dynamodbav:"LastClaimEpoch"`
}

type bookmarkItem struct {
	Kind      string `dynamodbav:"Kind"`
	Note      string `dynamodbav:"Note,omitempty"`
	CreatedAt string `dynamodbav:"CreatedAt"`
}

type boastItem struct {
	AssetID    string `dynamodbav:"AssetID"`
	SinceEpoch uint64 `dynamodbav:"SinceEpoch"`
}

type listingItem struct {
	Seller      string `dynamodbav:"Seller"`
	Price       uint64 `dynamodbav:"Price"`
	DisplayText string `dynamodbav:"DisplayText"`
	ContentRef  string `dynamodbav:"ContentRef"`
	ListedEpoch uint64 `dynamodbav:"ListedEpoch"`
}

type accountRecord struct {
	PK            string                     `dynamodbav:"PK"`
	SK            string                     `dynamodbav:"SK"`
	EntityType    string                     `dynamodbav:"EntityType"`
	AccountID     string                     `dynamodbav:"AccountID"`
	DisplayName   string                     `dynamodbav:"DisplayName,omitempty"`
	Bio           string                     `dynamodbav:"Bio,omitempty"`
	Inventory     map[string]int             `dynamodbav:"Inventory,omitempty"`
	VisitTotal    uint64                     `dynamodbav:"VisitTotal"`
	VisitHistory  map[string]visitRecordItem `dynamodbav:"VisitHistory,omitempty"`
	BoastLocation string                     `dynamodbav:"BoastLocation,omitempty"`
	Bookmarks     map[string]bookmarkItem    `dynamodbav:"Bookmarks,omitempty"`
	CreatedAt     string                     `dynamodbav:"CreatedAt"`
	UpdatedAt     string                     `dynamodbav:"UpdatedAt"`
	Version       int                        `dynamodbav:"Version"`
}

type locationRecord struct {
	PK          string                     `dynamodbav:"PK"`
	SK          string                     `dynamodbav:"SK"`
	EntityType  string                     `dynamodbav:"EntityType"`
	LocationID  string                     `dynamodbav:"LocationID"`
	Active      bool                       `dynamodbav:"Active"`
	Label       string                     `dynamodbav:"Label"`
	MetadataRef string                     `dynamodbav:"MetadataRef,omitempty"`
	GeofenceRef string                     `dynamodbav:"GeofenceRef,omitempty"`
	VisitorLog  map[string]visitRecordItem `dynamodbav:"VisitorLog,omitempty"`
	BoastLog    map[string]boastItem       `dynamodbav:"BoastLog,omitempty"`
	CreatedAt   string                     `dynamodbav:"CreatedAt"`
	UpdatedAt   string                     `dynamodbav:"UpdatedAt"`
	Version     int                        `dynamodbav:"Version"`
}

type assetRecord struct {
	PK              string `dynamodbav:"PK"`
	SK              string `dynamodbav:"SK"`
	EntityType      string `dynamodbav:"EntityType"`
	AssetID         string `dynamodbav:"AssetID"`
	Owner           string `dynamodbav:"Owner"`
	DisplayText     string `dynamodbav:"DisplayText"`
	ContentRef      string `dynamodbav:"ContentRef"`
	LettersConsumed uint64 `dynamodbav:"LettersConsumed"`
	CreatedAt       string `dynamodbav:"CreatedAt"`
	Version         int    `dynamodbav:"Version"`
	// GSI1 keys asset lookups by owner
	GSI1PK string `dynamodbav:"GSI1PK"`
	GSI1SK string `dynamodbav:"GSI1SK"`
}

type exchangeRecord struct {
	PK         string                 `dynamodbav:"PK"`
	SK         string                 `dynamodbav:"SK"`
	EntityType string                 `dynamodbav:"EntityType"`
	ExchangeID string                 `dynamodbav:"ExchangeID"`
	Admin      string                 `dynamodbav:"Admin"`
	FeeRateBps uint64                 `dynamodbav:"FeeRateBps"`
	FeeBalance uint64                 `dynamodbav:"FeeBalance"`
	Listings   map[string]listingItem `dynamodbav:"Listings,omitempty"`
	CreatedAt  string                 `dynamodbav:"CreatedAt"`
	UpdatedAt  string                 `dynamodbav:"UpdatedAt"`
	Version    int                    `dynamodbav:"Version"`
}

func accountToRecord(a *aggregates.Account) accountRecord {
	inventory := make(map[string]int)
	for symbol, count := range a.Inventory().Counts() {
		inventory[string(symbol)] = count
	}

	history := make(map[string]visitRecordItem)
	for locationID, record := range a.VisitHistory() {
		history[locationID.String()] = visitRecordItem{
			ClaimCount:     record.ClaimCount,
			LastClaimEpoch: record.LastClaimEpoch,
		}
	}

	bookmarks := make(map[string]bookmarkItem)
	for ref, bookmark := range a.Bookmarks() {
		bookmarks[ref.String()] = bookmarkItem{
			Kind:      bookmark.Kind,
			Note:      bookmark.Note,
			CreatedAt: bookmark.CreatedAt.Format(time.RFC3339Nano),
		}
	}

	record := accountRecord{
		PK:           "ACCOUNT#" + a.ID().String(),
		SK:           skMetadata,
		EntityType:   entityTypeAccount,
		AccountID:    a.ID().String(),
		DisplayName:  a.DisplayName(),
		Bio:          a.Bio(),
		Inventory:    inventory,
		VisitTotal:   a.VisitTotal(),
		VisitHistory: history,
		Bookmarks:    bookmarks,
		CreatedAt:    a.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:    a.UpdatedAt().Format(time.RFC3339Nano),
		Version:      a.Version(),
	}
	if boastAt := a.BoastLocation(); boastAt != nil {
		record.BoastLocation = boastAt.String()
	}
	return record
}

func recordToAccount(r accountRecord) (*aggregates.Account, error) {
	counts := make(map[byte]int)
	for symbol, count := range r.Inventory {
		if len(symbol) == 1 {
			counts[symbol[0]] = count
		}
	}

	history := make(map[valueobjects.LocationID]aggregates.VisitRecord)
	for locationID, record := range r.VisitHistory {
		history[valueobjects.LocationID(locationID)] = aggregates.VisitRecord{
			ClaimCount:     record.ClaimCount,
			LastClaimEpoch: record.LastClaimEpoch,
		}
	}

	bookmarks := make(map[valueobjects.ContentRef]aggregates.Bookmark)
	for ref, bookmark := range r.Bookmarks {
		createdAt, _ := time.Parse(time.RFC3339Nano, bookmark.CreatedAt)
		bookmarks[valueobjects.ContentRef(ref)] = aggregates.Bookmark{
			Kind:      bookmark.Kind,
			Note:      bookmark.Note,
			CreatedAt: createdAt,
		}
	}

	var boastLocation *valueobjects.LocationID
	if r.BoastLocation != "" {
		loc := valueobjects.LocationID(r.BoastLocation)
		boastLocation = &loc
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, r.UpdatedAt)

	return aggregates.ReconstructAccount(
		valueobjects.AccountID(r.AccountID), r.DisplayName, r.Bio,
		valueobjects.LetterSetFromCounts(counts), r.VisitTotal, history,
		boastLocation, bookmarks, createdAt, updatedAt, r.Version,
	)
}

func locationToRecord(l *aggregates.Location) locationRecord {
	visitorLog := make(map[string]visitRecordItem)
	for accountID, record := range l.VisitorLog() {
		visitorLog[accountID.String()] = visitRecordItem{
			ClaimCount:     record.ClaimCount,
			LastClaimEpoch: record.LastClaimEpoch,
		}
	}

	boastLog := make(map[string]boastItem)
	for accountID, record := range l.BoastLog() {
		boastLog[accountID.String()] = boastItem{
			AssetID:    record.Asset.String(),
			SinceEpoch: record.SinceEpoch,
		}
	}

	return locationRecord{
		PK:          "LOCATION#" + l.ID().String(),
		SK:          skMetadata,
		EntityType:  entityTypeLocation,
		LocationID:  l.ID().String(),
		Active:      l.Active(),
		Label:       l.Label(),
		MetadataRef: l.MetadataRef().String(),
		GeofenceRef: l.GeofenceRef().String(),
		VisitorLog:  visitorLog,
		BoastLog:    boastLog,
		CreatedAt:   l.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:   l.UpdatedAt().Format(time.RFC3339Nano),
		Version:     l.Version(),
	}
}

func recordToLocation(r locationRecord) (*aggregates.Location, error) {
	visitorLog := make(map[valueobjects.AccountID]aggregates.ClaimRecord)
	for accountID, record := range r.VisitorLog {
		visitorLog[valueobjects.AccountID(accountID)] = aggregates.ClaimRecord{
			ClaimCount:     record.ClaimCount,
			LastClaimEpoch: record.LastClaimEpoch,
		}
	}

	boastLog := make(map[valueobjects.AccountID]aggregates.BoastRecord)
	for accountID, record := range r.BoastLog {
		boastLog[valueobjects.AccountID(accountID)] = aggregates.BoastRecord{
			Asset:      valueobjects.AssetID(record.AssetID),
			SinceEpoch: record.SinceEpoch,
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, r.UpdatedAt)

	return aggregates.ReconstructLocation(
		valueobjects.LocationID(r.LocationID), r.Active, r.Label,
		valueobjects.ContentRef(r.MetadataRef), valueobjects.ContentRef(r.GeofenceRef),
		visitorLog, boastLog, createdAt, updatedAt, r.Version,
	)
}

func assetToRecord(a *entities.Asset) assetRecord {
	return assetRecord{
		PK:              "ASSET#" + a.ID().String(),
		SK:              skMetadata,
		EntityType:      entityTypeAsset,
		AssetID:         a.ID().String(),
		Owner:           a.Owner(),
		DisplayText:     a.DisplayText(),
		ContentRef:      a.ContentRef().String(),
		LettersConsumed: a.LettersConsumed(),
		CreatedAt:       a.CreatedAt().Format(time.RFC3339Nano),
		Version:         a.Version(),
		GSI1PK:          "OWNER#" + a.Owner(),
		GSI1SK:          "ASSET#" + a.ID().String(),
	}
}

func recordToAsset(r assetRecord) (*entities.Asset, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)
	return entities.ReconstructAsset(
		valueobjects.AssetID(r.AssetID), r.Owner, r.DisplayText,
		valueobjects.ContentRef(r.ContentRef), r.LettersConsumed,
		createdAt, r.Version,
	)
}

func exchangeToRecord(e *aggregates.Exchange) exchangeRecord {
	listings := make(map[string]listingItem)
	for assetID, listing := range e.Listings() {
		listings[assetID.String()] = listingItem{
			Seller:      listing.Seller.String(),
			Price:       listing.Price,
			DisplayText: listing.DisplayText,
			ContentRef:  listing.ContentRef.String(),
			ListedEpoch: listing.ListedEpoch,
		}
	}

	return exchangeRecord{
		PK:         "EXCHANGE#" + e.ID().String(),
		SK:         skMetadata,
		EntityType: entityTypeExchange,
		ExchangeID: e.ID().String(),
		Admin:      e.Admin(),
		FeeRateBps: e.FeeRateBps(),
		FeeBalance: e.FeeBalance(),
		Listings:   listings,
		CreatedAt:  e.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:  e.UpdatedAt().Format(time.RFC3339Nano),
		Version:    e.Version(),
	}
}

func recordToExchange(r exchangeRecord) (*aggregates.Exchange, error) {
	listings := make(map[valueobjects.AssetID]aggregates.Listing)
	for assetID, listing := range r.Listings {
		listings[valueobjects.AssetID(assetID)] = aggregates.Listing{
			Asset:       valueobjects.AssetID(assetID),
			Seller:      valueobjects.AccountID(listing.Seller),
			Price:       listing.Price,
			DisplayText: listing.DisplayText,
			ContentRef:  valueobjects.ContentRef(listing.ContentRef),
			ListedEpoch: listing.ListedEpoch,
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, r.UpdatedAt)

	return aggregates.ReconstructExchange(
		valueobjects.ExchangeID(r.ExchangeID), r.Admin,
		r.FeeRateBps, r.FeeBalance, listings,
		createdAt, updatedAt, r.Version,
	)
}
