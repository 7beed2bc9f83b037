package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"wordhoard-backend/application/ports"
	"wordhoard-backend/domain/core/aggregates"
	"wordhoard-backend/domain/core/entities"
	"wordhoard-backend/domain/core/valueobjects"
	apperrors "wordhoard-backend/pkg/errors"
)

const ownerIndexName = "GSI1"

// versionCondition guards every save: a writer whose aggregate version
// does not advance past the stored one loses.
const versionCondition = "attribute_not_exists(PK) OR Version < :version"

// Compile-time interface checks
var (
	_ ports.AccountRepository  = (*AccountRepository)(nil)
	_ ports.LocationRepository = (*LocationRepository)(nil)
	_ ports.AssetRepository    = (*AssetRepository)(nil)
	_ ports.ExchangeRepository = (*ExchangeRepository)(nil)
)

// AccountRepository persists accounts in the single-table layout
type AccountRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewAccountRepository creates a DynamoDB-backed account repository
func NewAccountRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{client: client, tableName: tableName, logger: logger}
}

// Save writes the account, failing with a conflict if a concurrent
// writer already advanced the stored version.
func (r *AccountRepository) Save(ctx context.Context, account *aggregates.Account) error {
	record := accountToRecord(account)
	return putConditional(ctx, r.client, r.tableName, record, record.Version, "account")
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id valueobjects.AccountID) (*aggregates.Account, error) {
	item, err := getItem(ctx, r.client, r.tableName, "ACCOUNT#"+id.String())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFound("account not found")
	}

	var record accountRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal account")
	}
	return recordToAccount(record)
}

// LocationRepository persists locations in the single-table layout
type LocationRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewLocationRepository creates a DynamoDB-backed location repository
func NewLocationRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *LocationRepository {
	return &LocationRepository{client: client, tableName: tableName, logger: logger}
}

// Save writes the location under the version condition
func (r *LocationRepository) Save(ctx context.Context, location *aggregates.Location) error {
	record := locationToRecord(location)
	return putConditional(ctx, r.client, r.tableName, record, record.Version, "location")
}

// GetByID retrieves a location by its ID
func (r *LocationRepository) GetByID(ctx context.Context, id valueobjects.LocationID) (*aggregates.Location, error) {
	item, err := getItem(ctx, r.client, r.tableName, "LOCATION#"+id.String())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFound("location not found")
	}

	var record locationRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal location")
	}
	return recordToLocation(record)
}

// List retrieves all registered locations. Location registries are small
// so a filtered scan is acceptable here.
func (r *LocationRepository) List(ctx context.Context) ([]*aggregates.Location, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("EntityType").Equal(expression.Value(entityTypeLocation))).
		Build()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build location filter")
	}

	out := make([]*aggregates.Location, 0)

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan locations")
		}
		for _, item := range page.Items {
			var record locationRecord
			if err := attributevalue.UnmarshalMap(item, &record); err != nil {
				return nil, apperrors.Wrap(err, "failed to unmarshal location")
			}
			location, err := recordToLocation(record)
			if err != nil {
				return nil, err
			}
			out = append(out, location)
		}
	}
	return out, nil
}

// AssetRepository persists assets in the single-table layout
type AssetRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewAssetRepository creates a DynamoDB-backed asset repository
func NewAssetRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *AssetRepository {
	return &AssetRepository{client: client, tableName: tableName, logger: logger}
}

// Save writes the asset under the version condition
func (r *AssetRepository) Save(ctx context.Context, asset *entities.Asset) error {
	record := assetToRecord(asset)
	return putConditional(ctx, r.client, r.tableName, record, record.Version, "asset")
}

// GetByID retrieves an asset by its ID
func (r *AssetRepository) GetByID(ctx context.Context, id valueobjects.AssetID) (*entities.Asset, error) {
	item, err := getItem(ctx, r.client, r.tableName, "ASSET#"+id.String())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFound("asset not found")
	}

	var record assetRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal asset")
	}
	return recordToAsset(record)
}

// GetByOwner retrieves all assets held by an owner via the owner index
func (r *AssetRepository) GetByOwner(ctx context.Context, owner string) ([]*entities.Asset, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("GSI1PK").Equal(expression.Value("OWNER#" + owner))).
		Build()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build owner key condition")
	}

	out := make([]*entities.Asset, 0)

	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(ownerIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to query assets by owner")
		}
		for _, item := range page.Items {
			var record assetRecord
			if err := attributevalue.UnmarshalMap(item, &record); err != nil {
				return nil, apperrors.Wrap(err, "failed to unmarshal asset")
			}
			asset, err := recordToAsset(record)
			if err != nil {
				return nil, err
			}
			out = append(out, asset)
		}
	}
	return out, nil
}

// ExchangeRepository persists exchanges in the single-table layout
type ExchangeRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewExchangeRepository creates a DynamoDB-backed exchange repository
func NewExchangeRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *ExchangeRepository {
	return &ExchangeRepository{client: client, tableName: tableName, logger: logger}
}

// Save writes the exchange under the version condition
func (r *ExchangeRepository) Save(ctx context.Context, exchange *aggregates.Exchange) error {
	record := exchangeToRecord(exchange)
	return putConditional(ctx, r.client, r.tableName, record, record.Version, "exchange")
}

// GetByID retrieves an exchange by its ID
func (r *ExchangeRepository) GetByID(ctx context.Context, id valueobjects.ExchangeID) (*aggregates.Exchange, error) {
	item, err := getItem(ctx, r.client, r.tableName, "EXCHANGE#"+id.String())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFound("exchange not found")
	}

	var record exchangeRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal exchange")
	}
	return recordToExchange(record)
}

func putConditional(ctx context.Context, client *dynamodb.Client, tableName string, record any, version int, kind string) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("failed to marshal %s", kind))
	}

	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(tableName),
		Item:                item,
		ConditionExpression: aws.String(versionCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", version)},
		},
	})
	if err != nil {
		return mapSaveError(err, kind)
	}
	return nil
}

func mapSaveError(err error, kind string) error {
	var conditionFailed *types.ConditionalCheckFailedException
	if errors.As(err, &conditionFailed) {
		return apperrors.NewConflict(fmt.Sprintf("%s was modified concurrently", kind))
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apperrors.Wrap(err,
			fmt.Sprintf("failed to save %s: %s", kind, apiErr.ErrorCode()))
	}
	return apperrors.Wrap(err, fmt.Sprintf("failed to save %s", kind))
}

func getItem(ctx context.Context, client *dynamodb.Client, tableName, pk string) (map[string]types.AttributeValue, error) {
	result, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: pk},
			"SK": &types.AttributeValueMemberS{Value: skMetadata},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "dynamodb get failed")
	}
	if result.Item == nil {
		return nil, nil
	}
	return result.Item, nil
}
