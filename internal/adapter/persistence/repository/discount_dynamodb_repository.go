package repository

import (
	"context"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDiscountsTableName = "discounts"

type discountItem struct {
	DiscountKey       string  `dynamodbav:"discount_key"`
	ID                string  `dynamodbav:"id"`
	PatientCategoryID string  `dynamodbav:"patient_category_id"`
	ServiceCategoryID string  `dynamodbav:"service_category_id"`
	Kind              string  `dynamodbav:"kind"`
	Value             float64 `dynamodbav:"value"`
	CreatedAt         string  `dynamodbav:"created_at"`
}

// DiscountDynamoRepository persists discount rules keyed by the
// patient-category/service-category pair. The pair IS the partition key, so
// at most one rule can exist per pair and Upsert is a plain PutItem.

type DiscountDynamoRepository struct {
	ddb   *dynamodb.Client
	table string
}

var _ interfaces.IDiscountRepository = (*DiscountDynamoRepository)(nil)

func NewDiscountDynamoRepository(ddb *dynamodb.Client) *DiscountDynamoRepository {
	return &DiscountDynamoRepository{
		ddb:   ddb,
		table: getenvDefault("DISCOUNTS_TABLE", defaultDiscountsTableName),
	}
}

func (r *DiscountDynamoRepository) GetByPair(ctx context.Context, patientCategoryID, serviceCategoryID string) (entities.Discount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"discount_key": &types.AttributeValueMemberS{Value: entities.DiscountKey(patientCategoryID, serviceCategoryID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Discount{}, err
	}
	if len(out.Item) == 0 {
		return entities.Discount{}, nil
	}

	var it discountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Discount{}, err
	}
	return fromDiscountItem(it), nil
}

// GetByID scans for the rule's surrogate id. Rules are admin-managed and few,
// and the key-by-pair layout serves the hot path, so a GSI is not worth it.
func (r *DiscountDynamoRepository) GetByID(ctx context.Context, id string) (entities.Discount, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Discount{}, err
	}
	if len(out.Items) == 0 {
		return entities.Discount{}, nil
	}

	var it discountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Discount{}, err
	}
	return fromDiscountItem(it), nil
}

func (r *DiscountDynamoRepository) List(ctx context.Context) ([]entities.Discount, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, err
	}

	discounts := make([]entities.Discount, 0, len(out.Items))
	for _, raw := range out.Items {
		var it discountItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		discounts = append(discounts, fromDiscountItem(it))
	}
	return discounts, nil
}

func (r *DiscountDynamoRepository) Upsert(ctx context.Context, d entities.Discount) (entities.Discount, error) {
	av, err := attributevalue.MarshalMap(toDiscountItem(d))
	if err != nil {
		return entities.Discount{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		return entities.Discount{}, err
	}
	return d, nil
}

func (r *DiscountDynamoRepository) Delete(ctx context.Context, id string) error {
	d, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d.ID == "" {
		return nil
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"discount_key": &types.AttributeValueMemberS{Value: entities.DiscountKey(d.PatientCategoryID, d.ServiceCategoryID)},
		},
	})
	return err
}

func toDiscountItem(d entities.Discount) discountItem {
	return discountItem{
		DiscountKey:       entities.DiscountKey(d.PatientCategoryID, d.ServiceCategoryID),
		ID:                d.ID,
		PatientCategoryID: d.PatientCategoryID,
		ServiceCategoryID: d.ServiceCategoryID,
		Kind:              string(d.Kind),
		Value:             d.Value,
		CreatedAt:         d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDiscountItem(it discountItem) entities.Discount {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Discount{
		ID:                it.ID,
		PatientCategoryID: it.PatientCategoryID,
		ServiceCategoryID: it.ServiceCategoryID,
		Kind:              entities.DiscountKind(it.Kind),
		Value:             it.Value,
		CreatedAt:         createdAt,
	}
}
