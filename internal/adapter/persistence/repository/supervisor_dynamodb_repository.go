package repository

import (
	"context"
	"errors"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSupervisorsTableName = "supervisors"
	supervisorsEmailIndex       = "email-index"
)

type supervisorItem struct {
	ID           string   `dynamodbav:"id"`
	Name         string   `dynamodbav:"name"`
	Email        string   `dynamodbav:"email"`
	PasswordHash string   `dynamodbav:"password_hash,omitempty"`
	Phone        string   `dynamodbav:"phone,omitempty"`
	ProjectIDs   []string `dynamodbav:"project_ids,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// SupervisorDynamoRepository persists Supervisor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type SupervisorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISupervisorRepository = (*SupervisorDynamoRepository)(nil)

func NewSupervisorDynamoRepository(ddb *dynamodb.Client) *SupervisorDynamoRepository {
	return &SupervisorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUPERVISORS_TABLE", defaultSupervisorsTableName),
	}
}

func (r *SupervisorDynamoRepository) Create(ctx context.Context, s entities.Supervisor) (entities.Supervisor, error) {
	av, err := attributevalue.MarshalMap(toSupervisorItem(s))
	if err != nil {
		return entities.Supervisor{}, err
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
		return entities.Supervisor{}, err
	}
	return s, nil
}

func (r *SupervisorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Supervisor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Supervisor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Supervisor{}, nil
	}

	var it supervisorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Supervisor{}, err
	}
	return fromSupervisorItem(it), nil
}

func (r *SupervisorDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Supervisor, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(supervisorsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Supervisor{}, err
	}
	if len(out.Items) == 0 {
		return entities.Supervisor{}, nil
	}

	var it supervisorItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Supervisor{}, err
	}
	return fromSupervisorItem(it), nil
}

func (r *SupervisorDynamoRepository) List(ctx context.Context) ([]entities.Supervisor, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Supervisor, 0, len(out.Items))
	for _, raw := range out.Items {
		var it supervisorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSupervisorItem(it))
	}
	return items, nil
}

func (r *SupervisorDynamoRepository) Update(ctx context.Context, s entities.Supervisor) (entities.Supervisor, error) {
	av, err := attributevalue.MarshalMap(toSupervisorItem(s))
	if err != nil {
		return entities.Supervisor{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Supervisor{}, nil
		}
		return entities.Supervisor{}, err
	}
	return s, nil
}

func (r *SupervisorDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSupervisorItem(s entities.Supervisor) supervisorItem {
	return supervisorItem{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		Phone:        s.Phone,
		ProjectIDs:   s.ProjectIDs,
		CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSupervisorItem(it supervisorItem) entities.Supervisor {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Supervisor{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Phone:        it.Phone,
		ProjectIDs:   it.ProjectIDs,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
