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

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Description  string `dynamodbav:"description,omitempty"`
	Location     string `dynamodbav:"location,omitempty"`
	CustomerID   string `dynamodbav:"customer_id"`
	SupervisorID string `dynamodbav:"supervisor_id,omitempty"`
	Status       string `dynamodbav:"status"`
	StartDate    string `dynamodbav:"start_date,omitempty"`
	EndDate      string `dynamodbav:"end_date,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProjectItem(it))
	}
	return items, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	start := ""
	if p.StartDate != nil {
		start = p.StartDate.UTC().Format(time.RFC3339Nano)
	}
	end := ""
	if p.EndDate != nil {
		end = p.EndDate.UTC().Format(time.RFC3339Nano)
	}
	return projectItem{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Location:     p.Location,
		CustomerID:   p.CustomerID,
		SupervisorID: p.SupervisorID,
		Status:       string(p.Status),
		StartDate:    start,
		EndDate:      end,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var start, end *time.Time
	if it.StartDate != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, it.StartDate); err == nil {
			start = &parsed
		}
	}
	if it.EndDate != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, it.EndDate); err == nil {
			end = &parsed
		}
	}

	return entities.Project{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Location:     it.Location,
		CustomerID:   it.CustomerID,
		SupervisorID: it.SupervisorID,
		Status:       entities.ProjectStatus(it.Status),
		StartDate:    start,
		EndDate:      end,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
