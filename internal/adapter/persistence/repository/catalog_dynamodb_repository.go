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

const (
	defaultServiceCategoriesTableName = "service_categories"
	defaultPatientCategoriesTableName = "patient_categories"
	defaultServicesTableName          = "services"
)

type categoryItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	DisplayName string `dynamodbav:"display_name"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type serviceItem struct {
	ID                  string  `dynamodbav:"id"`
	Name                string  `dynamodbav:"name"`
	CategoryID          string  `dynamodbav:"category_id"`
	CategoryName        string  `dynamodbav:"category_name"`
	CategoryDisplayName string  `dynamodbav:"category_display_name"`
	CostPrice           float64 `dynamodbav:"cost_price"`
	MRP                 float64 `dynamodbav:"mrp"`
	IsDailyCharge       bool    `dynamodbav:"is_daily_charge"`
	VisitsPerDay        int     `dynamodbav:"visits_per_day"`
	CreatedAt           string  `dynamodbav:"created_at"`
}

// CatalogDynamoRepository persists the service catalog in DynamoDB.
//
// Table requirements:
//   - service_categories / patient_categories: PK name (string). The internal
//     name is the natural unique key, so by-name lookups are plain GetItems.
//   - services: PK id (string)

type CatalogDynamoRepository struct {
	ddb                    *dynamodb.Client
	serviceCategoriesTable string
	patientCategoriesTable string
	servicesTable          string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:                    ddb,
		serviceCategoriesTable: getenvDefault("SERVICE_CATEGORIES_TABLE", defaultServiceCategoriesTableName),
		patientCategoriesTable: getenvDefault("PATIENT_CATEGORIES_TABLE", defaultPatientCategoriesTableName),
		servicesTable:          getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *CatalogDynamoRepository) ListServiceCategories(ctx context.Context) ([]entities.ServiceCategory, error) {
	items, err := r.scanCategories(ctx, r.serviceCategoriesTable)
	if err != nil {
		return nil, err
	}
	cats := make([]entities.ServiceCategory, 0, len(items))
	for _, it := range items {
		cats = append(cats, entities.ServiceCategory(fromCategoryItem(it)))
	}
	return cats, nil
}

func (r *CatalogDynamoRepository) GetServiceCategoryByName(ctx context.Context, name string) (entities.ServiceCategory, error) {
	it, err := r.getCategoryByName(ctx, r.serviceCategoriesTable, name)
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	return entities.ServiceCategory(fromCategoryItem(it)), nil
}

func (r *CatalogDynamoRepository) CreateServiceCategory(ctx context.Context, c entities.ServiceCategory) (entities.ServiceCategory, error) {
	if err := r.putCategory(ctx, r.serviceCategoriesTable, toCategoryItem(c.ID, c.Name, c.DisplayName, c.CreatedAt)); err != nil {
		return entities.ServiceCategory{}, err
	}
	return c, nil
}

func (r *CatalogDynamoRepository) ListPatientCategories(ctx context.Context) ([]entities.PatientCategory, error) {
	items, err := r.scanCategories(ctx, r.patientCategoriesTable)
	if err != nil {
		return nil, err
	}
	cats := make([]entities.PatientCategory, 0, len(items))
	for _, it := range items {
		cats = append(cats, entities.PatientCategory(fromCategoryItem(it)))
	}
	return cats, nil
}

func (r *CatalogDynamoRepository) GetPatientCategoryByName(ctx context.Context, name string) (entities.PatientCategory, error) {
	it, err := r.getCategoryByName(ctx, r.patientCategoriesTable, name)
	if err != nil {
		return entities.PatientCategory{}, err
	}
	return entities.PatientCategory(fromCategoryItem(it)), nil
}

func (r *CatalogDynamoRepository) CreatePatientCategory(ctx context.Context, c entities.PatientCategory) (entities.PatientCategory, error) {
	if err := r.putCategory(ctx, r.patientCategoriesTable, toCategoryItem(c.ID, c.Name, c.DisplayName, c.CreatedAt)); err != nil {
		return entities.PatientCategory{}, err
	}
	return c, nil
}

func (r *CatalogDynamoRepository) CreateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.servicesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *CatalogDynamoRepository) GetServiceByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.servicesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *CatalogDynamoRepository) GetServicesByIDs(ctx context.Context, ids []string) ([]entities.Service, error) {
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}
	if len(keys) == 0 {
		return nil, nil
	}

	out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
		RequestItems: map[string]types.KeysAndAttributes{
			r.servicesTable: {Keys: keys, ConsistentRead: aws.Bool(true)},
		},
	})
	if err != nil {
		return nil, err
	}

	services := make([]entities.Service, 0, len(keys))
	for _, raw := range out.Responses[r.servicesTable] {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		services = append(services, fromServiceItem(it))
	}
	return services, nil
}

func (r *CatalogDynamoRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.servicesTable),
	})
	if err != nil {
		return nil, err
	}

	services := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		services = append(services, fromServiceItem(it))
	}
	return services, nil
}

func (r *CatalogDynamoRepository) UpdateService(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.servicesTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *CatalogDynamoRepository) DeleteService(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.servicesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *CatalogDynamoRepository) scanCategories(ctx context.Context, table string) ([]categoryItem, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return nil, err
	}

	items := make([]categoryItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it categoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *CatalogDynamoRepository) getCategoryByName(ctx context.Context, table, name string) (categoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return categoryItem{}, err
	}
	if len(out.Item) == 0 {
		return categoryItem{}, nil
	}

	var it categoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return categoryItem{}, err
	}
	return it, nil
}

func (r *CatalogDynamoRepository) putCategory(ctx context.Context, table string, it categoryItem) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#name)"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
	})
	return err
}

// categoryFields is the shared shape of both category tables; the entity
// structs convert to and from it directly.
type categoryFields struct {
	ID          string
	Name        string
	DisplayName string
	CreatedAt   time.Time
}

func toCategoryItem(id, name, displayName string, createdAt time.Time) categoryItem {
	return categoryItem{
		ID:          id,
		Name:        name,
		DisplayName: displayName,
		CreatedAt:   createdAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCategoryItem(it categoryItem) categoryFields {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return categoryFields{
		ID:          it.ID,
		Name:        it.Name,
		DisplayName: it.DisplayName,
		CreatedAt:   createdAt,
	}
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:                  s.ID,
		Name:                s.Name,
		CategoryID:          s.CategoryID,
		CategoryName:        s.CategoryName,
		CategoryDisplayName: s.CategoryDisplayName,
		CostPrice:           s.CostPrice,
		MRP:                 s.MRP,
		IsDailyCharge:       s.IsDailyCharge,
		VisitsPerDay:        s.VisitsPerDay,
		CreatedAt:           s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Service{
		ID:                  it.ID,
		Name:                it.Name,
		CategoryID:          it.CategoryID,
		CategoryName:        it.CategoryName,
		CategoryDisplayName: it.CategoryDisplayName,
		CostPrice:           it.CostPrice,
		MRP:                 it.MRP,
		IsDailyCharge:       it.IsDailyCharge,
		VisitsPerDay:        it.VisitsPerDay,
		CreatedAt:           createdAt,
	}
}
