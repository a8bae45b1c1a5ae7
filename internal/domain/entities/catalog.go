package entities

import "time"

// DiscountKind selects how a discount rule is applied to an estimate line.
//
// Domain notes:
//   - percentage: value is a percentage of the line total.
//   - flat: value is an amount per unit of quantity (not per line).

type DiscountKind string

const (
	DiscountKindPercentage DiscountKind = "percentage"
	DiscountKindFlat       DiscountKind = "flat"
)

func (k DiscountKind) Valid() bool {
	return k == DiscountKindPercentage || k == DiscountKindFlat
}

// ServiceCategory groups billable services (nursing, laboratory, ...) and is
// one half of the discount lookup key.
//
// Storage model (DynamoDB):
//   - PK: name (internal name, unique)
type ServiceCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// PatientCategory is the tier used to determine discount eligibility
// (charity, general, deluxe, ...).
//
// Storage model (DynamoDB):
//   - PK: name (internal name, unique)
type PatientCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Service is a billable catalog entry.
//
// Monetary representation:
//   - MRP is the billable unit price used by the estimate engine.
//   - CostPrice is informational only and never enters estimate math.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The category name/display name are denormalized onto the item so a resolved
// Service carries everything the engine needs for a line.
type Service struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	CategoryID          string    `json:"category_id"`
	CategoryName        string    `json:"category_name"`
	CategoryDisplayName string    `json:"category_display_name"`
	CostPrice           float64   `json:"cost_price"`
	MRP                 float64   `json:"mrp"`
	IsDailyCharge       bool      `json:"is_daily_charge"`
	VisitsPerDay        int       `json:"visits_per_day"`
	CreatedAt           time.Time `json:"created_at"`
}

// Discount is a single rule for a (patient category, service category) pair.
//
// Invariant: at most one discount exists per pair. The DynamoDB partition key
// is the pair itself (see DiscountKey), so the storage layer enforces this.
//
// Storage model (DynamoDB):
//   - PK: discount_key = "<patient_category_id>#<service_category_id>"
type Discount struct {
	ID                string       `json:"id"`
	PatientCategoryID string       `json:"patient_category_id"`
	ServiceCategoryID string       `json:"service_category_id"`
	Kind              DiscountKind `json:"kind"`
	Value             float64      `json:"value"`
	CreatedAt         time.Time    `json:"created_at"`
}

// DiscountKey builds the storage key that makes the pair unique.
func DiscountKey(patientCategoryID, serviceCategoryID string) string {
	return patientCategoryID + "#" + serviceCategoryID
}
