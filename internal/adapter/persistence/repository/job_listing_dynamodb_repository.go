package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobListingsTableName = "job_listings"
	jobListingsEstimateIDIndex  = "estimate_id-index"
)

type jobListingItem struct {
	ID              string   `dynamodbav:"id"`
	OwnerCustomerID string   `dynamodbav:"owner_customer_id"`
	TradeCategory   string   `dynamodbav:"trade_category"`
	EstimateID      string   `dynamodbav:"estimate_id,omitempty"`
	Postcode        string   `dynamodbav:"postcode"`
	MaxSlots        int      `dynamodbav:"max_slots"`
	Occupants       []string `dynamodbav:"occupants,stringset,omitempty"`
	PostedAt        string   `dynamodbav:"posted_at"`
}

// JobListingDynamoRepository persists job listings in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id; sparse, only listings backed
//     by an estimate carry the attribute)
//   - occupants: string set (absent until the first grant; DynamoDB forbids
//     empty sets)
//
// GrantSlot folds the slot-count check, the duplicate check and the insert
// into one conditional ADD on the occupant set, so two professionals racing
// for the last slot are strictly ordered by DynamoDB's per-item writes and
// at most one wins.

type JobListingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobListingRepository = (*JobListingDynamoRepository)(nil)

func NewJobListingDynamoRepository(ddb *dynamodb.Client) *JobListingDynamoRepository {
	return &JobListingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_LISTINGS_TABLE", defaultJobListingsTableName),
	}
}

func (r *JobListingDynamoRepository) Create(ctx context.Context, j entities.JobListing) (entities.JobListing, error) {
	av, err := attributevalue.MarshalMap(toJobListingItem(j))
	if err != nil {
		return entities.JobListing{}, err
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
		return entities.JobListing{}, err
	}
	return j, nil
}

func (r *JobListingDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobListing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobListing{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobListing{}, nil
	}

	var it jobListingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobListing{}, err
	}
	return fromJobListingItem(it), nil
}

func (r *JobListingDynamoRepository) GetByEstimateID(ctx context.Context, estimateID string) (entities.JobListing, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobListingsEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.JobListing{}, err
	}
	if len(out.Items) == 0 {
		return entities.JobListing{}, nil
	}

	var it jobListingItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.JobListing{}, err
	}
	return fromJobListingItem(it), nil
}

// GrantSlot atomically adds the professional to the occupant set. On a
// conditional failure it re-reads the listing to report which rule rejected
// the grant: duplicate occupant, full listing, or unknown id.
func (r *JobListingDynamoRepository) GrantSlot(ctx context.Context, jobID, professionalID string) (entities.JobListing, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: jobID},
		},
		ConditionExpression: aws.String(
			"attribute_exists(#id) AND (attribute_not_exists(#occupants) OR (size(#occupants) < #max_slots AND NOT contains(#occupants, :pid)))",
		),
		UpdateExpression: aws.String("ADD #occupants :pid_set"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#occupants": "occupants",
			"#max_slots": "max_slots",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":     &types.AttributeValueMemberS{Value: professionalID},
			":pid_set": &types.AttributeValueMemberSS{Value: []string{professionalID}},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.classifyGrantConflict(ctx, jobID, professionalID)
		}
		return entities.JobListing{}, err
	}

	var it jobListingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.JobListing{}, err
	}
	return fromJobListingItem(it), nil
}

func (r *JobListingDynamoRepository) classifyGrantConflict(ctx context.Context, jobID, professionalID string) (entities.JobListing, error) {
	existing, err := r.GetByID(ctx, jobID)
	if err != nil {
		return entities.JobListing{}, err
	}
	if existing.ID == "" {
		return entities.JobListing{}, nil
	}
	if existing.HasOccupant(professionalID) {
		return entities.JobListing{}, entities.ErrAlreadyPurchased
	}
	if existing.Full() {
		return entities.JobListing{}, entities.ErrSlotsFull
	}
	// The condition failed but neither rule holds on re-read; only another
	// writer landing in between explains it.
	return entities.JobListing{}, fmt.Errorf("slot grant conflict on job %s", jobID)
}

func toJobListingItem(j entities.JobListing) jobListingItem {
	return jobListingItem{
		ID:              j.ID,
		OwnerCustomerID: j.OwnerCustomerID,
		TradeCategory:   string(j.TradeCategory),
		EstimateID:      j.EstimateID,
		Postcode:        j.Postcode,
		MaxSlots:        j.MaxSlots,
		Occupants:       j.Occupants,
		PostedAt:        j.PostedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobListingItem(it jobListingItem) entities.JobListing {
	postedAt, _ := time.Parse(time.RFC3339Nano, it.PostedAt)
	return entities.JobListing{
		ID:              it.ID,
		OwnerCustomerID: it.OwnerCustomerID,
		TradeCategory:   entities.TradeCategory(it.TradeCategory),
		EstimateID:      it.EstimateID,
		Postcode:        it.Postcode,
		MaxSlots:        it.MaxSlots,
		Occupants:       it.Occupants,
		PostedAt:        postedAt,
	}
}
