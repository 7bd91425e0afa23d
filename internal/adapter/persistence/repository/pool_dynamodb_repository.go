package repository

import (
	"context"
	"time"

	"aquaops/internal/domain/entities"
	"aquaops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPoolsTableName = "pools"
	poolsPropertyIDIndex  = "property_id-index"
)

type poolItem struct {
	ID             string  `dynamodbav:"id"`
	PropertyID     string  `dynamodbav:"property_id"`
	Type           string  `dynamodbav:"type"`
	Surface        string  `dynamodbav:"surface,omitempty"`
	LengthFt       float64 `dynamodbav:"length_ft,omitempty"`
	WidthFt        float64 `dynamodbav:"width_ft,omitempty"`
	ShallowDepthFt float64 `dynamodbav:"shallow_depth_ft,omitempty"`
	DeepDepthFt    float64 `dynamodbav:"deep_depth_ft,omitempty"`
	VolumeGallons  int64   `dynamodbav:"volume_gallons,omitempty"`
	EquipmentNotes string  `dynamodbav:"equipment_notes,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// PoolDynamoRepository persists Pool entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: property_id-index (PK: property_id)

type PoolDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPoolRepository = (*PoolDynamoRepository)(nil)

func NewPoolDynamoRepository(ddb *dynamodb.Client) *PoolDynamoRepository {
	return &PoolDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POOLS_TABLE", defaultPoolsTableName),
	}
}

func (r *PoolDynamoRepository) Create(ctx context.Context, p entities.Pool) (entities.Pool, error) {
	it := toPoolItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Pool{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Pool{}, err
	}
	return p, nil
}

func (r *PoolDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pool{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pool{}, nil
	}

	var it poolItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pool{}, err
	}
	return fromPoolItem(it), nil
}

func (r *PoolDynamoRepository) ListByPropertyID(ctx context.Context, propertyID string) ([]entities.Pool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(poolsPropertyIDIndex),
		KeyConditionExpression: aws.String("property_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: propertyID},
		},
	})
	if err != nil {
		return nil, err
	}

	pools := make([]entities.Pool, 0, len(out.Items))
	for _, raw := range out.Items {
		var it poolItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pools = append(pools, fromPoolItem(it))
	}
	return pools, nil
}

func (r *PoolDynamoRepository) Update(ctx context.Context, p entities.Pool) (entities.Pool, error) {
	it := toPoolItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Pool{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Pool{}, nil
		}
		return entities.Pool{}, err
	}
	return p, nil
}

func (r *PoolDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toPoolItem(p entities.Pool) poolItem {
	return poolItem{
		ID:             p.ID,
		PropertyID:     p.PropertyID,
		Type:           string(p.Type),
		Surface:        string(p.Surface),
		LengthFt:       p.LengthFt,
		WidthFt:        p.WidthFt,
		ShallowDepthFt: p.ShallowDepthFt,
		DeepDepthFt:    p.DeepDepthFt,
		VolumeGallons:  p.VolumeGallons,
		EquipmentNotes: p.EquipmentNotes,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPoolItem(it poolItem) entities.Pool {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Pool{
		ID:             it.ID,
		PropertyID:     it.PropertyID,
		Type:           entities.PoolType(it.Type),
		Surface:        entities.PoolSurface(it.Surface),
		LengthFt:       it.LengthFt,
		WidthFt:        it.WidthFt,
		ShallowDepthFt: it.ShallowDepthFt,
		DeepDepthFt:    it.DeepDepthFt,
		VolumeGallons:  it.VolumeGallons,
		EquipmentNotes: it.EquipmentNotes,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
