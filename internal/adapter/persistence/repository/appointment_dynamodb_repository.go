package repository

import (
	"context"
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

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	PropertyID string `dynamodbav:"property_id,omitempty"`
	Service    string `dynamodbav:"service"`
	StartsAt   string `dynamodbav:"starts_at"`
	EndsAt     string `dynamodbav:"ends_at"`
	Notes      string `dynamodbav:"notes,omitempty"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// starts_at/ends_at use the fixed-width sortable format so window filters can
// compare them as strings. Calendar windows are a filtered scan; the table
// stays small enough (one business's schedule) that a dedicated index isn't
// warranted.

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	it := toAppointmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

// ListWindow returns appointments with starts_at in [from, to), soonest
// first, optionally narrowed to one customer.
func (r *AppointmentDynamoRepository) ListWindow(ctx context.Context, from, to time.Time, customerID string) ([]entities.Appointment, error) {
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: from.UTC().Format(sortableTimeFormat)},
		":to":   &types.AttributeValueMemberS{Value: to.UTC().Format(sortableTimeFormat)},
	}
	names := map[string]string{"#starts_at": "starts_at"}
	parts := []string{"#starts_at >= :from", "#starts_at < :to"}
	if customerID != "" {
		parts = append(parts, "customer_id = :cid")
		values[":cid"] = &types.AttributeValueMemberS{Value: customerID}
	}

	var appointments []entities.Appointment
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(strings.Join(parts, " AND ")),
			ExpressionAttributeValues: values,
			ExpressionAttributeNames:  names,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it appointmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			appointments = append(appointments, fromAppointmentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].StartsAt.Before(appointments[j].StartsAt)
	})
	return appointments, nil
}

func (r *AppointmentDynamoRepository) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	it := toAppointmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Appointment{}, err
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
			return entities.Appointment{}, nil
		}
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		PropertyID: a.PropertyID,
		Service:    string(a.Service),
		StartsAt:   a.StartsAt.UTC().Format(sortableTimeFormat),
		EndsAt:     a.EndsAt.UTC().Format(sortableTimeFormat),
		Notes:      a.Notes,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	startsAt, _ := time.Parse(time.RFC3339Nano, it.StartsAt)
	endsAt, _ := time.Parse(time.RFC3339Nano, it.EndsAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Appointment{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		PropertyID: it.PropertyID,
		Service:    entities.AppointmentService(it.Service),
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		Notes:      it.Notes,
		Status:     entities.AppointmentStatus(it.Status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
