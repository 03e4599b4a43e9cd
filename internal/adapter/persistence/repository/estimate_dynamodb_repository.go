package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID         string `dynamodbav:"id"`
	RequestRaw string `dynamodbav:"request_raw"`
	PriceMin   int64  `dynamodbav:"price_min"`
	PriceMax   int64  `dynamodbav:"price_max"`
	Paid       bool   `dynamodbav:"paid"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The original request is stored as raw JSON: it is immutable input kept for
// traceability, never queried field by field.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

// MarkPaid flips paid to true, conditional on it still being false, so the
// transition is one-way at the storage layer regardless of caller behavior.
func (r *EstimateDynamoRepository) MarkPaid(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #paid = :unpaid"),
		UpdateExpression:    aws.String("SET #paid = :paid"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#paid": "paid",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":   &types.AttributeValueMemberBOOL{Value: true},
			":unpaid": &types.AttributeValueMemberBOOL{Value: false},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, gerr := r.GetByID(ctx, id)
			if gerr != nil {
				return entities.Estimate{}, gerr
			}
			if existing.ID == "" {
				return entities.Estimate{}, nil
			}
			return entities.Estimate{}, entities.ErrEstimateAlreadyPaid
		}
		return entities.Estimate{}, err
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	raw, err := json.Marshal(e.Request)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		ID:         e.ID,
		RequestRaw: string(raw),
		PriceMin:   e.Price.Min,
		PriceMax:   e.Price.Max,
		Paid:       e.Paid,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var req entities.EstimateRequest
	if it.RequestRaw != "" {
		if err := json.Unmarshal([]byte(it.RequestRaw), &req); err != nil {
			return entities.Estimate{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Estimate{
		ID:        it.ID,
		Request:   req,
		Price:     entities.PriceRange{Min: it.PriceMin, Max: it.PriceMax},
		Paid:      it.Paid,
		CreatedAt: createdAt,
	}, nil
}
