package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

// EstimateNumberPrefix precedes the zero-padded ordinal of a saved estimate
// (EST001, EST002, ...).
const EstimateNumberPrefix = "EST"

// FormatEstimateNumber renders a document number for an ordinal. The padding
// width is 3; ordinals past 999 simply widen (EST1000), they are never
// rejected.
func FormatEstimateNumber(ordinal int) string {
	return fmt.Sprintf("%s%03d", EstimateNumberPrefix, ordinal)
}

// EstimateLine is one computed row of an estimate.
//
// Monetary representation:
//   - LineTotal is kept unrounded; summary accumulation uses it directly so
//     rounding error never compounds across lines.
//   - DiscountPercentage, DiscountAmount and FinalAmount are display values
//     rounded to 2 decimals.
type EstimateLine struct {
	ServiceID          string  `json:"service_id"`
	ServiceName        string  `json:"service_name"`
	Category           string  `json:"category"`
	UnitPrice          float64 `json:"unit_price"`
	Quantity           int     `json:"quantity"`
	UnitDescription    string  `json:"unit_description"`
	LineTotal          float64 `json:"line_total"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DiscountAmount     float64 `json:"discount_amount"`
	FinalAmount        float64 `json:"final_amount"`
}

// PatientDetails echoes the patient fields an estimate was computed for.
type PatientDetails struct {
	Name         string `json:"name"`
	UHID         string `json:"uhid"`
	Category     string `json:"category"`
	LengthOfStay int    `json:"length_of_stay"`
}

// EstimateSummary carries the rounded aggregate figures of an estimate.
type EstimateSummary struct {
	Subtotal           float64 `json:"subtotal"`
	TotalDiscount      float64 `json:"total_discount"`
	FinalTotal         float64 `json:"final_total"`
	DiscountPercentage float64 `json:"discount_percentage"`
}

// Estimate is the full result of one estimate computation. It is ephemeral:
// the engine returns it to the caller, and only an explicit save turns it
// into a SavedEstimate.
type Estimate struct {
	PatientDetails PatientDetails  `json:"patient_details"`
	Lines          []EstimateLine  `json:"estimate_lines"`
	Summary        EstimateSummary `json:"summary"`
	GeneratedAt    time.Time       `json:"generated_at"`
	GeneratedBy    string          `json:"generated_by"`
}

// SavedEstimate is a persisted, immutable estimate with its assigned document
// number. It keeps both the structured header fields (for listing) and the
// serialized full computation (for exact redisplay); both are written from
// the same Estimate, so their totals agree.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The table also holds the singleton numbering counter item; see the
// repository.
type SavedEstimate struct {
	ID                  string          `json:"id"`
	EstimateNumber      string          `json:"estimate_number"`
	PatientName         string          `json:"patient_name"`
	PatientUHID         string          `json:"patient_uhid"`
	PatientCategory     string          `json:"patient_category"`
	LengthOfStay        int             `json:"length_of_stay"`
	Subtotal            float64         `json:"subtotal"`
	TotalDiscount       float64         `json:"total_discount"`
	FinalTotal          float64         `json:"final_total"`
	GeneratedByRole     string          `json:"generated_by_role"`
	GeneratedByUserID   string          `json:"generated_by_user_id"`
	GeneratedByUsername string          `json:"generated_by_username"`
	EstimateData        json.RawMessage `json:"estimate_data,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// SavedEstimateService is a per-line snapshot tied to a SavedEstimate. The
// snapshot decouples the saved document from later edits or deletions in the
// live service catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (estimate_id-index): saved_estimate_id
type SavedEstimateService struct {
	ID              string  `json:"id"`
	SavedEstimateID string  `json:"saved_estimate_id"`
	ServiceID       string  `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	LineTotal       float64 `json:"line_total"`
	DiscountAmount  float64 `json:"discount_amount"`
	FinalAmount     float64 `json:"final_amount"`
}
