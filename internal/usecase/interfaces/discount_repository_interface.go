package interfaces

import (
	"context"

	"hospital_billing/internal/domain/entities"
)

// IDiscountRepository abstracts DynamoDB persistence for discount rules.
//
// The partition key is the (patient category, service category) pair, so the
// store can never hold two rules for one pair; GetByPair returns the single
// rule or a zero-value Discount.

type IDiscountRepository interface {
	GetByPair(ctx context.Context, patientCategoryID, serviceCategoryID string) (entities.Discount, error)
	GetByID(ctx context.Context, id string) (entities.Discount, error)
	List(ctx context.Context) ([]entities.Discount, error)
	Upsert(ctx context.Context, d entities.Discount) (entities.Discount, error)
	Delete(ctx context.Context, id string) error
}
