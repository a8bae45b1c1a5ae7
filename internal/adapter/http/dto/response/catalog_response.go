package response

import (
	"hospital_billing/internal/domain/entities"
)

type ServiceResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	CategoryName        string  `json:"category_name"`
	CategoryDisplayName string  `json:"category_display_name"`
	CostPrice           float64 `json:"cost_price"`
	MRP                 float64 `json:"mrp"`
	IsDailyCharge       bool    `json:"is_daily_charge"`
	VisitsPerDay        int     `json:"visits_per_day"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                  s.ID,
		Name:                s.Name,
		CategoryName:        s.CategoryName,
		CategoryDisplayName: s.CategoryDisplayName,
		CostPrice:           s.CostPrice,
		MRP:                 s.MRP,
		IsDailyCharge:       s.IsDailyCharge,
		VisitsPerDay:        s.VisitsPerDay,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func FromServiceCategories(cats []entities.ServiceCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, DisplayName: c.DisplayName})
	}
	return out
}

func FromPatientCategories(cats []entities.PatientCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, DisplayName: c.DisplayName})
	}
	return out
}

// DiscountResponse joins the rule with the category display names so listings
// do not need a second lookup.
type DiscountResponse struct {
	ID              string  `json:"id"`
	PatientCategory string  `json:"patient_category"`
	ServiceCategory string  `json:"service_category"`
	DiscountType    string  `json:"discount_type"`
	DiscountValue   float64 `json:"discount_value"`
}

func FromDiscount(d entities.Discount, patientCats []entities.PatientCategory, serviceCats []entities.ServiceCategory) DiscountResponse {
	resp := DiscountResponse{
		ID:            d.ID,
		DiscountType:  string(d.Kind),
		DiscountValue: d.Value,
	}
	for _, c := range patientCats {
		if c.ID == d.PatientCategoryID {
			resp.PatientCategory = c.DisplayName
			break
		}
	}
	for _, c := range serviceCats {
		if c.ID == d.ServiceCategoryID {
			resp.ServiceCategory = c.DisplayName
			break
		}
	}
	return resp
}

func FromDiscounts(discounts []entities.Discount, patientCats []entities.PatientCategory, serviceCats []entities.ServiceCategory) []DiscountResponse {
	out := make([]DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		out = append(out, FromDiscount(d, patientCats, serviceCats))
	}
	return out
}
