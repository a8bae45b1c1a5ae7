package request

import (
	"strings"

	"hospital_billing/internal/usecase"
)

type CreateServiceRequest struct {
	Name          string  `json:"name" binding:"required"`
	CategoryName  string  `json:"category_name" binding:"required"`
	CostPrice     float64 `json:"cost_price"`
	MRP           float64 `json:"mrp" binding:"required"`
	IsDailyCharge bool    `json:"is_daily_charge"`
	VisitsPerDay  int     `json:"visits_per_day"`
}

func (r CreateServiceRequest) ToInput() usecase.CreateServiceInput {
	return usecase.CreateServiceInput{
		Name:          strings.TrimSpace(r.Name),
		CategoryName:  strings.TrimSpace(r.CategoryName),
		CostPrice:     r.CostPrice,
		MRP:           r.MRP,
		IsDailyCharge: r.IsDailyCharge,
		VisitsPerDay:  r.VisitsPerDay,
	}
}

// UpdateServiceRequest uses pointers so absent fields are left untouched.
type UpdateServiceRequest struct {
	Name          *string  `json:"name"`
	CategoryName  *string  `json:"category_name"`
	CostPrice     *float64 `json:"cost_price"`
	MRP           *float64 `json:"mrp"`
	IsDailyCharge *bool    `json:"is_daily_charge"`
	VisitsPerDay  *int     `json:"visits_per_day"`
}

func (r UpdateServiceRequest) ToInput() usecase.UpdateServiceInput {
	return usecase.UpdateServiceInput{
		Name:          r.Name,
		CategoryName:  r.CategoryName,
		CostPrice:     r.CostPrice,
		MRP:           r.MRP,
		IsDailyCharge: r.IsDailyCharge,
		VisitsPerDay:  r.VisitsPerDay,
	}
}

// DiscountRequest addresses categories by their internal names.
type DiscountRequest struct {
	PatientCategory string  `json:"patient_category" binding:"required"`
	ServiceCategory string  `json:"service_category" binding:"required"`
	DiscountType    string  `json:"discount_type" binding:"required"`
	DiscountValue   float64 `json:"discount_value"`
}

func (r DiscountRequest) ToInput() usecase.DiscountInput {
	return usecase.DiscountInput{
		PatientCategory: strings.TrimSpace(r.PatientCategory),
		ServiceCategory: strings.TrimSpace(r.ServiceCategory),
		Kind:            strings.TrimSpace(r.DiscountType),
		Value:           r.DiscountValue,
	}
}
