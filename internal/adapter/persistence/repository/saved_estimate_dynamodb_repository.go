package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSavedEstimatesTableName = "saved_estimates"
	defaultEstimateLinesTableName  = "saved_estimate_services"
	estimatesUserIDIndex           = "user_id-index"
	linesEstimateIDIndex           = "estimate_id-index"

	// numberCounterID is the singleton item in the saved_estimates table
	// holding the highest committed document ordinal.
	numberCounterID = "estimate-number-counter"
)

type savedEstimateItem struct {
	ID                  string  `dynamodbav:"id"`
	EstimateNumber      string  `dynamodbav:"estimate_number"`
	PatientName         string  `dynamodbav:"patient_name"`
	PatientUHID         string  `dynamodbav:"patient_uhid"`
	PatientCategory     string  `dynamodbav:"patient_category"`
	LengthOfStay        int     `dynamodbav:"length_of_stay"`
	Subtotal            float64 `dynamodbav:"subtotal"`
	TotalDiscount       float64 `dynamodbav:"total_discount"`
	FinalTotal          float64 `dynamodbav:"final_total"`
	GeneratedByRole     string  `dynamodbav:"generated_by_role"`
	GeneratedByUserID   string  `dynamodbav:"generated_by_user_id"`
	GeneratedByUsername string  `dynamodbav:"generated_by_username"`
	EstimateData        string  `dynamodbav:"estimate_data"`
	CreatedAt           string  `dynamodbav:"created_at"`
}

type savedEstimateServiceItem struct {
	ID              string  `dynamodbav:"id"`
	SavedEstimateID string  `dynamodbav:"saved_estimate_id"`
	ServiceID       string  `dynamodbav:"service_id"`
	ServiceName     string  `dynamodbav:"service_name"`
	Quantity        int     `dynamodbav:"quantity"`
	UnitPrice       float64 `dynamodbav:"unit_price"`
	LineTotal       float64 `dynamodbav:"line_total"`
	DiscountAmount  float64 `dynamodbav:"discount_amount"`
	FinalAmount     float64 `dynamodbav:"final_amount"`
}

// SavedEstimateDynamoRepository persists saved estimates, their line
// snapshots and the numbering counter in DynamoDB.
//
// Table requirements:
//   - saved_estimates: PK id (string), GSI user_id-index (PK: generated_by_user_id)
//   - saved_estimate_services: PK id (string), GSI estimate_id-index (PK: saved_estimate_id)
//
// The numbering counter lives in the saved_estimates table under a reserved
// id, so one TransactWriteItems covers the counter advance, the header and
// every line: either the whole document commits with its number, or nothing
// does.

type SavedEstimateDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	linesTableName string
}

var _ interfaces.ISavedEstimateRepository = (*SavedEstimateDynamoRepository)(nil)

func NewSavedEstimateDynamoRepository(ddb *dynamodb.Client) *SavedEstimateDynamoRepository {
	return &SavedEstimateDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("SAVED_ESTIMATES_TABLE", defaultSavedEstimatesTableName),
		linesTableName: getenvDefault("SAVED_ESTIMATE_SERVICES_TABLE", defaultEstimateLinesTableName),
	}
}

func (r *SavedEstimateDynamoRepository) LastAssignedOrdinal(ctx context.Context) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: numberCounterID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	n, ok := out.Item["last_ordinal"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.Atoi(n.Value)
}

func (r *SavedEstimateDynamoRepository) Save(ctx context.Context, est entities.SavedEstimate, lines []entities.SavedEstimateService, prevOrdinal int) (entities.SavedEstimate, error) {
	headerAV, err := attributevalue.MarshalMap(toSavedEstimateItem(est))
	if err != nil {
		return entities.SavedEstimate{}, err
	}

	items := make([]types.TransactWriteItem, 0, len(lines)+2)

	// The counter condition orders concurrent saves: whichever transaction
	// commits first advances the ordinal and fails the other's condition.
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: numberCounterID},
			},
			UpdateExpression:    aws.String("SET last_ordinal = :next"),
			ConditionExpression: aws.String("attribute_not_exists(#id) OR last_ordinal = :prev"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":next": &types.AttributeValueMemberN{Value: strconv.Itoa(prevOrdinal + 1)},
				":prev": &types.AttributeValueMemberN{Value: strconv.Itoa(prevOrdinal)},
			},
		},
	})

	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                headerAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})

	for _, line := range lines {
		lineAV, err := attributevalue.MarshalMap(toSavedEstimateServiceItem(line))
		if err != nil {
			return entities.SavedEstimate{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.linesTableName),
				Item:      lineAV,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.SavedEstimate{}, interfaces.ErrEstimateNumberConflict
				}
			}
		}
		return entities.SavedEstimate{}, err
	}
	return est, nil
}

func (r *SavedEstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.SavedEstimate, error) {
	if id == numberCounterID {
		return entities.SavedEstimate{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SavedEstimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.SavedEstimate{}, nil
	}

	var it savedEstimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SavedEstimate{}, err
	}
	return fromSavedEstimateItem(it), nil
}

func (r *SavedEstimateDynamoRepository) ListAll(ctx context.Context) ([]entities.SavedEstimate, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("attribute_exists(estimate_number)"),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalSavedEstimates(out.Items)
}

func (r *SavedEstimateDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.SavedEstimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesUserIDIndex),
		KeyConditionExpression: aws.String("generated_by_user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalSavedEstimates(out.Items)
}

func (r *SavedEstimateDynamoRepository) ListServicesByEstimateID(ctx context.Context, estimateID string) ([]entities.SavedEstimateService, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTableName),
		IndexName:              aws.String(linesEstimateIDIndex),
		KeyConditionExpression: aws.String("saved_estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return nil, err
	}

	lines := make([]entities.SavedEstimateService, 0, len(out.Items))
	for _, raw := range out.Items {
		var it savedEstimateServiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		lines = append(lines, entities.SavedEstimateService(it))
	}
	return lines, nil
}

func unmarshalSavedEstimates(raws []map[string]types.AttributeValue) ([]entities.SavedEstimate, error) {
	ests := make([]entities.SavedEstimate, 0, len(raws))
	for _, raw := range raws {
		var it savedEstimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ests = append(ests, fromSavedEstimateItem(it))
	}
	return ests, nil
}

func toSavedEstimateItem(e entities.SavedEstimate) savedEstimateItem {
	return savedEstimateItem{
		ID:                  e.ID,
		EstimateNumber:      e.EstimateNumber,
		PatientName:         e.PatientName,
		PatientUHID:         e.PatientUHID,
		PatientCategory:     e.PatientCategory,
		LengthOfStay:        e.LengthOfStay,
		Subtotal:            e.Subtotal,
		TotalDiscount:       e.TotalDiscount,
		FinalTotal:          e.FinalTotal,
		GeneratedByRole:     e.GeneratedByRole,
		GeneratedByUserID:   e.GeneratedByUserID,
		GeneratedByUsername: e.GeneratedByUsername,
		EstimateData:        string(e.EstimateData),
		CreatedAt:           e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSavedEstimateItem(it savedEstimateItem) entities.SavedEstimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.SavedEstimate{
		ID:                  it.ID,
		EstimateNumber:      it.EstimateNumber,
		PatientName:         it.PatientName,
		PatientUHID:         it.PatientUHID,
		PatientCategory:     it.PatientCategory,
		LengthOfStay:        it.LengthOfStay,
		Subtotal:            it.Subtotal,
		TotalDiscount:       it.TotalDiscount,
		FinalTotal:          it.FinalTotal,
		GeneratedByRole:     it.GeneratedByRole,
		GeneratedByUserID:   it.GeneratedByUserID,
		GeneratedByUsername: it.GeneratedByUsername,
		EstimateData:        []byte(it.EstimateData),
		CreatedAt:           createdAt,
	}
}

func toSavedEstimateServiceItem(l entities.SavedEstimateService) savedEstimateServiceItem {
	return savedEstimateServiceItem(l)
}
