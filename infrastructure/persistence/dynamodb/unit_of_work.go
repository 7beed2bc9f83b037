package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/entities"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork accumulates conditional puts and commits them with a
// single TransactWriteItems call, so a multi-aggregate operation
// either lands whole or not at all.
type UnitOfWork struct {
	client    *awsdynamodb.Client
	tableName string
	logger    *zap.Logger

	accounts  ports.AccountRepository
	locations ports.LocationRepository
	assets    ports.AssetRepository
	exchanges ports.ExchangeRepository

	transactItems []types.TransactWriteItem
	inTransaction bool
}

// NewUnitOfWork creates a transactional unit of work over the table
func NewUnitOfWork(
	client *awsdynamodb.Client,
	tableName string,
	accounts ports.AccountRepository,
	locations ports.LocationRepository,
	assets ports.AssetRepository,
	exchanges ports.ExchangeRepository,
	logger *zap.Logger,
) *UnitOfWork {
	return &UnitOfWork{
		client:    client,
		tableName: tableName,
		logger:    logger,
		accounts:  accounts,
		locations: locations,
		assets:    assets,
		exchanges: exchanges,
	}
}

// NewUnitOfWorkFactory returns a factory producing fresh units of work
func NewUnitOfWorkFactory(
	client *awsdynamodb.Client,
	tableName string,
	accounts ports.AccountRepository,
	locations ports.LocationRepository,
	assets ports.AssetRepository,
	exchanges ports.ExchangeRepository,
	logger *zap.Logger,
) ports.UnitOfWorkFactory {
	return func() ports.UnitOfWork {
		return NewUnitOfWork(client, tableName, accounts, locations, assets, exchanges, logger)
	}
}

// Begin starts a new transaction
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.inTransaction {
		return apperrors.NewConflict("transaction already active")
	}
	u.inTransaction = true
	u.transactItems = nil
	return nil
}

// Commit executes all registered writes atomically
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.inTransaction {
		return apperrors.NewConflict("no active transaction")
	}
	defer func() {
		u.inTransaction = false
		u.transactItems = nil
	}()

	if len(u.transactItems) == 0 {
		return nil
	}

	// TransactWriteItems caps at 100 items; our operations touch at
	// most a handful of aggregates.
	if len(u.transactItems) > 25 {
		return apperrors.NewInternal(
			fmt.Sprintf("transaction exceeds safe limit: %d items", len(u.transactItems)), nil)
	}

	_, err := u.client.TransactWriteItems(ctx, &awsdynamodb.TransactWriteItemsInput{
		TransactItems: u.transactItems,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return apperrors.NewConflict("aggregate was modified concurrently")
				}
			}
		}
		return apperrors.Wrap(err, "transaction failed")
	}
	return nil
}

// Rollback discards all registered writes. No-op after a successful commit.
func (u *UnitOfWork) Rollback() error {
	u.inTransaction = false
	u.transactItems = nil
	return nil
}

// Accounts returns the account repository bound to this transaction
func (u *UnitOfWork) Accounts() ports.AccountRepository {
	return &txAccountRepo{uow: u}
}

// Locations returns the location repository bound to this transaction
func (u *UnitOfWork) Locations() ports.LocationRepository {
	return &txLocationRepo{uow: u}
}

// Assets returns the asset repository bound to this transaction
func (u *UnitOfWork) Assets() ports.AssetRepository {
	return &txAssetRepo{uow: u}
}

// Exchanges returns the exchange repository bound to this transaction
func (u *UnitOfWork) Exchanges() ports.ExchangeRepository {
	return &txExchangeRepo{uow: u}
}

func (u *UnitOfWork) registerPut(record any, version int, kind string) error {
	if !u.inTransaction {
		return apperrors.NewConflict("no active transaction")
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("failed to marshal %s", kind))
	}

	u.transactItems = append(u.transactItems, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(u.tableName),
			Item:                item,
			ConditionExpression: aws.String(versionCondition),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", version)},
			},
		},
	})
	return nil
}

type txAccountRepo struct{ uow *UnitOfWork }

func (r *txAccountRepo) Save(ctx context.Context, account *aggregates.Account) error {
	record := accountToRecord(account)
	return r.uow.registerPut(record, record.Version, "account")
}

func (r *txAccountRepo) GetByID(ctx context.Context, id valueobjects.AccountID) (*aggregates.Account, error) {
	return r.uow.accounts.GetByID(ctx, id)
}

type txLocationRepo struct{ uow *UnitOfWork }

func (r *txLocationRepo) Save(ctx context.Context, location *aggregates.Location) error {
	record := locationToRecord(location)
	return r.uow.registerPut(record, record.Version, "location")
}

func (r *txLocationRepo) GetByID(ctx context.Context, id valueobjects.LocationID) (*aggregates.Location, error) {
	return r.uow.locations.GetByID(ctx, id)
}

func (r *txLocationRepo) List(ctx context.Context) ([]*aggregates.Location, error) {
	return r.uow.locations.List(ctx)
}

type txAssetRepo struct{ uow *UnitOfWork }

func (r *txAssetRepo) Save(ctx context.Context, asset *entities.Asset) error {
	record := assetToRecord(asset)
	return r.uow.registerPut(record, record.Version, "asset")
}

func (r *txAssetRepo) GetByID(ctx context.Context, id valueobjects.AssetID) (*entities.Asset, error) {
	return r.uow.assets.GetByID(ctx, id)
}

func (r *txAssetRepo) GetByOwner(ctx context.Context, owner string) ([]*entities.Asset, error) {
	return r.uow.assets.GetByOwner(ctx, owner)
}

type txExchangeRepo struct{ uow *UnitOfWork }

func (r *txExchangeRepo) Save(ctx context.Context, exchange *aggregates.Exchange) error {
	record := exchangeToRecord(exchange)
	return r.uow.registerPut(record, record.Version, "exchange")
}

func (r *txExchangeRepo) GetByID(ctx context.Context, id valueobjects.ExchangeID) (*aggregates.Exchange, error) {
	return r.uow.exchanges.GetByID(ctx, id)
}
