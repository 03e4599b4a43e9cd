package repository

import (
	"context"
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLeadPurchasesTableName = "lead_purchases"
	leadPurchasesJobIDIndex       = "job_id-index"
	leadPurchasesProfessionalIdx  = "professional_id-index"
)

type leadPurchaseItem struct {
	ID             string `dynamodbav:"id"`
	JobID          string `dynamodbav:"job_id"`
	ProfessionalID string `dynamodbav:"professional_id"`
	CreditsCharged int64  `dynamodbav:"credits_charged"`
	PurchasedAt    string `dynamodbav:"purchased_at"`
}

// LeadPurchaseDynamoRepository persists the append-only purchase audit trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//   - GSI: professional_id-index (PK: professional_id)

type LeadPurchaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadPurchaseRepository = (*LeadPurchaseDynamoRepository)(nil)

func NewLeadPurchaseDynamoRepository(ddb *dynamodb.Client) *LeadPurchaseDynamoRepository {
	return &LeadPurchaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEAD_PURCHASES_TABLE", defaultLeadPurchasesTableName),
	}
}

func (r *LeadPurchaseDynamoRepository) Append(ctx context.Context, rec entities.LeadPurchaseRecord) (entities.LeadPurchaseRecord, error) {
	av, err := attributevalue.MarshalMap(toLeadPurchaseItem(rec))
	if err != nil {
		return entities.LeadPurchaseRecord{}, err
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
		return entities.LeadPurchaseRecord{}, err
	}
	return rec, nil
}

func (r *LeadPurchaseDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.LeadPurchaseRecord, error) {
	return r.queryIndex(ctx, leadPurchasesJobIDIndex, "job_id", jobID)
}

func (r *LeadPurchaseDynamoRepository) ListByProfessionalID(ctx context.Context, professionalID string) ([]entities.LeadPurchaseRecord, error) {
	return r.queryIndex(ctx, leadPurchasesProfessionalIdx, "professional_id", professionalID)
}

func (r *LeadPurchaseDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.LeadPurchaseRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(key + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.LeadPurchaseRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it leadPurchaseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromLeadPurchaseItem(it))
	}
	return records, nil
}

func toLeadPurchaseItem(rec entities.LeadPurchaseRecord) leadPurchaseItem {
	return leadPurchaseItem{
		ID:             rec.ID,
		JobID:          rec.JobID,
		ProfessionalID: rec.ProfessionalID,
		CreditsCharged: rec.CreditsCharged,
		PurchasedAt:    rec.PurchasedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadPurchaseItem(it leadPurchaseItem) entities.LeadPurchaseRecord {
	purchasedAt, _ := time.Parse(time.RFC3339Nano, it.PurchasedAt)
	return entities.LeadPurchaseRecord{
		ID:             it.ID,
		JobID:          it.JobID,
		ProfessionalID: it.ProfessionalID,
		CreditsCharged: it.CreditsCharged,
		PurchasedAt:    purchasedAt,
	}
}
