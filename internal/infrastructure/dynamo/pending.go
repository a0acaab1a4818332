package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/zenbourg/agency-api/internal/domain"
)

// PendingUserRepo holds registrations awaiting email verification.
// PK: email. Records carry a TTL so abandoned signups expire in the store
// instead of leaking.
type PendingUserRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPendingUserRepo(client *dynamodb.Client, tableName string) *PendingUserRepo {
	return &PendingUserRepo{client: client, tableName: tableName}
}

func (r *PendingUserRepo) Put(ctx context.Context, p *domain.PendingUser) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal pending user: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *PendingUserRepo) Get(ctx context.Context, email string) (*domain.PendingUser, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("pending registration not found: %w", domain.ErrNotFound)
	}
	var p domain.PendingUser
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PendingUserRepo) Delete(ctx context.Context, email string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	return err
}
