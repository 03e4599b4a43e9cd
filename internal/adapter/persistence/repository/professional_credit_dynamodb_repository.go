package repository

import (
	"context"
	"errors"
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProfessionalsTableName = "professionals"

type professionalItem struct {
	ID               string `dynamodbav:"id"`
	CreditBalance    int64  `dynamodbav:"credit_balance"`
	IsPremium        bool   `dynamodbav:"is_premium"`
	PremiumExpiresAt string `dynamodbav:"premium_expires_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// ProfessionalCreditDynamoRepository persists Professional entities and their
// credit balances in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Debit and Credit are single conditional UpdateItem calls, so the balance
// guard and the decrement are one atomic operation on the row. No Go-side
// lock is needed; DynamoDB serializes writes per item.

type ProfessionalCreditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditRepository = (*ProfessionalCreditDynamoRepository)(nil)

func NewProfessionalCreditDynamoRepository(ddb *dynamodb.Client) *ProfessionalCreditDynamoRepository {
	return &ProfessionalCreditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFESSIONALS_TABLE", defaultProfessionalsTableName),
	}
}

func (r *ProfessionalCreditDynamoRepository) Create(ctx context.Context, p entities.Professional) (entities.Professional, error) {
	av, err := attributevalue.MarshalMap(toProfessionalItem(p))
	if err != nil {
		return entities.Professional{}, err
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
		return entities.Professional{}, err
	}
	return p, nil
}

func (r *ProfessionalCreditDynamoRepository) GetByID(ctx context.Context, id string) (entities.Professional, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Professional{}, err
	}
	if len(out.Item) == 0 {
		return entities.Professional{}, nil
	}

	var it professionalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Professional{}, err
	}
	return fromProfessionalItem(it), nil
}

// Debit decrements the balance, guarded by credit_balance >= amount in the
// same write. A conditional failure is either an unknown id or an
// insufficient balance; one follow-up read distinguishes them.
func (r *ProfessionalCreditDynamoRepository) Debit(ctx context.Context, id string, amount int64) (entities.Professional, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #balance >= :amount"),
		UpdateExpression:    aws.String("SET #balance = #balance - :amount"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#balance": "credit_balance",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: int64ToString(amount)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, gerr := r.GetByID(ctx, id)
			if gerr != nil {
				return entities.Professional{}, gerr
			}
			if existing.ID == "" {
				return entities.Professional{}, nil
			}
			return entities.Professional{}, entities.ErrInsufficientCredits
		}
		return entities.Professional{}, err
	}

	var it professionalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Professional{}, err
	}
	return fromProfessionalItem(it), nil
}

func (r *ProfessionalCreditDynamoRepository) Credit(ctx context.Context, id string, amount int64) (entities.Professional, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #balance = #balance + :amount"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#balance": "credit_balance",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: int64ToString(amount)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Professional{}, nil
		}
		return entities.Professional{}, err
	}

	var it professionalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Professional{}, err
	}
	return fromProfessionalItem(it), nil
}

func toProfessionalItem(p entities.Professional) professionalItem {
	it := professionalItem{
		ID:            p.ID,
		CreditBalance: p.CreditBalance,
		IsPremium:     p.IsPremium,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.PremiumExpiresAt != nil {
		it.PremiumExpiresAt = p.PremiumExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromProfessionalItem(it professionalItem) entities.Professional {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.Professional{
		ID:            it.ID,
		CreditBalance: it.CreditBalance,
		IsPremium:     it.IsPremium,
		CreatedAt:     createdAt,
	}
	if it.PremiumExpiresAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PremiumExpiresAt); err == nil {
			p.PremiumExpiresAt = &t
		}
	}
	return p
}
