package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"aquaops/internal/domain/entities"
	"aquaops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCommunicationsTableName  = "communications"
	communicationsCustomerTimeIndex = "customer_id-occurred_at-index"
)

type communicationItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	Type       string `dynamodbav:"type"`
	Direction  string `dynamodbav:"direction"`
	Summary    string `dynamodbav:"summary"`
	OccurredAt string `dynamodbav:"occurred_at"`
	LoggedBy   string `dynamodbav:"logged_by,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CommunicationDynamoRepository persists Communication entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-occurred_at-index (PK: customer_id, SK: occurred_at)
//
// occurred_at uses the fixed-width sortable format so the GSI range key
// orders chronologically; the per-customer timeline is a reverse Query on
// that index. The list cursor is the base64 LastEvaluatedKey.

type CommunicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommunicationRepository = (*CommunicationDynamoRepository)(nil)

func NewCommunicationDynamoRepository(ddb *dynamodb.Client) *CommunicationDynamoRepository {
	return &CommunicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMMUNICATIONS_TABLE", defaultCommunicationsTableName),
	}
}

func (r *CommunicationDynamoRepository) Create(ctx context.Context, c entities.Communication) (entities.Communication, error) {
	it := toCommunicationItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Communication{}, err
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
		return entities.Communication{}, err
	}
	return c, nil
}

// List returns one page of the communications log, newest first. With a
// customer filter it queries the timeline GSI in reverse; without one it
// pages a scan and orders the page client-side.
func (r *CommunicationDynamoRepository) List(ctx context.Context, f entities.CommunicationFilter) (entities.CommunicationPage, error) {
	// f.Limit arrives already defaulted and clamped by the use case.
	limit := f.Limit

	startKey, err := decodeCommunicationCursor(f.Cursor)
	if err != nil {
		return entities.CommunicationPage{}, err
	}

	var items []map[string]types.AttributeValue
	var lastKey map[string]types.AttributeValue
	if f.CustomerID != "" {
		items, lastKey, err = r.queryTimeline(ctx, f, limit, startKey)
	} else {
		items, lastKey, err = r.scanLog(ctx, f, limit, startKey)
	}
	if err != nil {
		return entities.CommunicationPage{}, err
	}

	page := entities.CommunicationPage{Items: make([]entities.Communication, 0, len(items))}
	for _, raw := range items {
		var it communicationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.CommunicationPage{}, err
		}
		page.Items = append(page.Items, fromCommunicationItem(it))
	}
	if f.CustomerID == "" {
		sort.Slice(page.Items, func(i, j int) bool {
			return page.Items[i].OccurredAt.After(page.Items[j].OccurredAt)
		})
	}

	if len(lastKey) > 0 {
		page.HasMore = true
		page.NextCursor, err = encodeCommunicationCursor(lastKey)
		if err != nil {
			return entities.CommunicationPage{}, err
		}
	}
	return page, nil
}

func (r *CommunicationDynamoRepository) queryTimeline(ctx context.Context, f entities.CommunicationFilter, limit int32, startKey map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
	keyCond := "customer_id = :cid"
	values := map[string]types.AttributeValue{
		":cid": &types.AttributeValueMemberS{Value: f.CustomerID},
	}
	names := map[string]string{}

	switch {
	case !f.From.IsZero() && !f.To.IsZero():
		keyCond += " AND #occurred_at BETWEEN :from AND :to"
		values[":from"] = &types.AttributeValueMemberS{Value: f.From.UTC().Format(sortableTimeFormat)}
		values[":to"] = &types.AttributeValueMemberS{Value: f.To.UTC().Format(sortableTimeFormat)}
		names["#occurred_at"] = "occurred_at"
	case !f.From.IsZero():
		keyCond += " AND #occurred_at >= :from"
		values[":from"] = &types.AttributeValueMemberS{Value: f.From.UTC().Format(sortableTimeFormat)}
		names["#occurred_at"] = "occurred_at"
	case !f.To.IsZero():
		keyCond += " AND #occurred_at <= :to"
		values[":to"] = &types.AttributeValueMemberS{Value: f.To.UTC().Format(sortableTimeFormat)}
		names["#occurred_at"] = "occurred_at"
	}

	filterExpr := buildCommunicationFilter(f, values, names)

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(communicationsCustomerTimeIndex),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(false),
		Limit:                     aws.Int32(limit),
		ExclusiveStartKey:         startKey,
	}
	if filterExpr != "" {
		in.FilterExpression = aws.String(filterExpr)
	}
	if len(names) > 0 {
		in.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	return out.Items, out.LastEvaluatedKey, nil
}

func (r *CommunicationDynamoRepository) scanLog(ctx context.Context, f entities.CommunicationFilter, limit int32, startKey map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	var parts []string
	if !f.From.IsZero() {
		parts = append(parts, "#occurred_at >= :from")
		values[":from"] = &types.AttributeValueMemberS{Value: f.From.UTC().Format(sortableTimeFormat)}
		names["#occurred_at"] = "occurred_at"
	}
	if !f.To.IsZero() {
		parts = append(parts, "#occurred_at <= :to")
		values[":to"] = &types.AttributeValueMemberS{Value: f.To.UTC().Format(sortableTimeFormat)}
		names["#occurred_at"] = "occurred_at"
	}
	if extra := buildCommunicationFilter(f, values, names); extra != "" {
		parts = append(parts, extra)
	}

	in := &dynamodb.ScanInput{
		TableName:         aws.String(r.tableName),
		Limit:             aws.Int32(limit),
		ExclusiveStartKey: startKey,
	}
	if len(parts) > 0 {
		in.FilterExpression = aws.String(strings.Join(parts, " AND "))
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}
	if len(names) > 0 {
		in.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	return out.Items, out.LastEvaluatedKey, nil
}

// buildCommunicationFilter renders the non-key constraints (type, direction,
// summary search) into a filter expression, appending to the shared value and
// name maps.
func buildCommunicationFilter(f entities.CommunicationFilter, values map[string]types.AttributeValue, names map[string]string) string {
	var parts []string
	if f.Type != "" {
		parts = append(parts, "#type = :type")
		values[":type"] = &types.AttributeValueMemberS{Value: string(f.Type)}
		names["#type"] = "type"
	}
	if f.Direction != "" {
		parts = append(parts, "#direction = :direction")
		values[":direction"] = &types.AttributeValueMemberS{Value: string(f.Direction)}
		names["#direction"] = "direction"
	}
	if f.Search != "" {
		parts = append(parts, "contains(#summary, :search)")
		values[":search"] = &types.AttributeValueMemberS{Value: f.Search}
		names["#summary"] = "summary"
	}
	return strings.Join(parts, " AND ")
}

func (r *CommunicationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

// encodeCommunicationCursor flattens a LastEvaluatedKey into an opaque token.
// Every key attribute in this table is a string, so a string map round-trips
// it losslessly.
func encodeCommunicationCursor(key map[string]types.AttributeValue) (string, error) {
	flat := make(map[string]string, len(key))
	if err := attributevalue.UnmarshalMap(key, &flat); err != nil {
		return "", err
	}
	raw, err := json.Marshal(flat)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeCommunicationCursor(cursor string) (map[string]types.AttributeValue, error) {
	if cursor == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, err
	}
	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}
	key := make(map[string]types.AttributeValue, len(flat))
	for k, v := range flat {
		key[k] = &types.AttributeValueMemberS{Value: v}
	}
	return key, nil
}

func toCommunicationItem(c entities.Communication) communicationItem {
	return communicationItem{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		Type:       string(c.Type),
		Direction:  string(c.Direction),
		Summary:    c.Summary,
		OccurredAt: c.OccurredAt.UTC().Format(sortableTimeFormat),
		LoggedBy:   c.LoggedBy,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCommunicationItem(it communicationItem) entities.Communication {
	occurredAt, _ := time.Parse(time.RFC3339Nano, it.OccurredAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Communication{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Type:       entities.CommunicationType(it.Type),
		Direction:  entities.CommunicationDirection(it.Direction),
		Summary:    it.Summary,
		OccurredAt: occurredAt,
		LoggedBy:   it.LoggedBy,
		CreatedAt:  createdAt,
	}
}
