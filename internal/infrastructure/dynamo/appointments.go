package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/zenbourg/agency-api/internal/domain"
)

// AppointmentRepo provides typed DynamoDB operations for the appointments table.
// PK: appointment_id. The date-index GSI serves the availability computation,
// which must read the authoritative bookings for a day.
type AppointmentRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAppointmentRepo(client *dynamodb.Client, tableName string) *AppointmentRepo {
	return &AppointmentRepo{client: client, tableName: tableName}
}

func (r *AppointmentRepo) Put(ctx context.Context, a *domain.Appointment) error {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshal appointment: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *AppointmentRepo) Get(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("appointment_id", appointmentID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("appointment not found: %w", domain.ErrNotFound)
	}
	var a domain.Appointment
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByDate returns all appointments on a YYYY-MM-DD date via the date-index GSI.
func (r *AppointmentRepo) ListByDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("date-index"),
		KeyConditionExpression:    aws.String("#d = :v"),
		ExpressionAttributeNames:  map[string]string{"#d": "date"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: date}},
	})
	if err != nil {
		return nil, err
	}
	var appts []domain.Appointment
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, appointmentID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("appointment_id", appointmentID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *AppointmentRepo) Delete(ctx context.Context, appointmentID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("appointment_id", appointmentID),
	})
	return err
}
