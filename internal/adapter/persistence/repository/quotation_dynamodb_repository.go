package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationsProjectIDIndex   = "project_id-index"
)

type lineItemItem struct {
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
}

type quotationItem struct {
	ID          string         `dynamodbav:"id"`
	ProjectID   string         `dynamodbav:"project_id"`
	TotalAmount string         `dynamodbav:"total_amount"`
	Status      string         `dynamodbav:"status"`
	LineItems   []lineItemItem `dynamodbav:"line_items,omitempty"`
	Date        string         `dynamodbav:"date,omitempty"`
	FileName    string         `dynamodbav:"file_name,omitempty"`
	FileType    string         `dynamodbav:"file_type,omitempty"`
	FileURL     string         `dynamodbav:"file_url,omitempty"`
	CreatedAt   string         `dynamodbav:"created_at"`
	UpdatedAt   string         `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Status transitions go through UpdateStatusIfCurrent so that two concurrent
// approve/reject calls cannot both succeed; the losing writer sees a
// conditional-check failure and gets the zero value back.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quotation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

func (r *QuotationDynamoRepository) UpdateStatusIfCurrent(ctx context.Context, id string, from, to entities.QuotationStatus) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuotationItem(q entities.Quotation) quotationItem {
	items := make([]lineItemItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		items = append(items, lineItemItem{
			Description: li.Description,
			Amount:      floatToString(li.Amount),
		})
	}

	date := ""
	if q.Date != nil {
		date = q.Date.UTC().Format(time.RFC3339Nano)
	}

	return quotationItem{
		ID:          q.ID,
		ProjectID:   q.ProjectID,
		TotalAmount: floatToString(q.TotalAmount),
		Status:      string(q.Status),
		LineItems:   items,
		Date:        date,
		FileName:    q.FileName,
		FileType:    q.FileType,
		FileURL:     q.FileURL,
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)

	var date *time.Time
	if it.Date != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, it.Date); err == nil {
			date = &parsed
		}
	}

	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		amount, _ := strconv.ParseFloat(li.Amount, 64)
		items = append(items, entities.LineItem{Description: li.Description, Amount: amount})
	}
	if len(items) == 0 {
		items = nil
	}

	return entities.Quotation{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		TotalAmount: total,
		Status:      entities.QuotationStatus(it.Status),
		LineItems:   items,
		Date:        date,
		FileName:    it.FileName,
		FileType:    it.FileType,
		FileURL:     it.FileURL,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
