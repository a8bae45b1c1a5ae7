package response

import (
	"encoding/json"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase"
)

// generatedAtLayout is the human-facing timestamp format printed on estimate
// documents.
const generatedAtLayout = "2006-01-02 15:04:05"

type EstimateResponse struct {
	PatientDetails entities.PatientDetails  `json:"patient_details"`
	EstimateLines  []entities.EstimateLine  `json:"estimate_lines"`
	Summary        entities.EstimateSummary `json:"summary"`
	GeneratedAt    string                   `json:"generated_at"`
	GeneratedBy    string                   `json:"generated_by"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		PatientDetails: e.PatientDetails,
		EstimateLines:  e.Lines,
		Summary:        e.Summary,
		GeneratedAt:    e.GeneratedAt.Format(generatedAtLayout),
		GeneratedBy:    e.GeneratedBy,
	}
}

type SaveEstimateResponse struct {
	EstimateID     string `json:"estimate_id"`
	EstimateNumber string `json:"estimate_number"`
}

func FromSaveResult(r usecase.SaveEstimateResult) SaveEstimateResponse {
	return SaveEstimateResponse{
		EstimateID:     r.EstimateID,
		EstimateNumber: r.EstimateNumber,
	}
}

// SavedEstimateResponse is the listing row for a saved estimate; the full
// computation payload is omitted.
type SavedEstimateResponse struct {
	ID                  string    `json:"id"`
	EstimateNumber      string    `json:"estimate_number"`
	PatientName         string    `json:"patient_name"`
	PatientUHID         string    `json:"patient_uhid"`
	PatientCategory     string    `json:"patient_category"`
	LengthOfStay        int       `json:"length_of_stay"`
	Subtotal            float64   `json:"subtotal"`
	TotalDiscount       float64   `json:"total_discount"`
	FinalTotal          float64   `json:"final_total"`
	GeneratedByUsername string    `json:"generated_by_username"`
	GeneratedByRole     string    `json:"generated_by_role"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromSavedEstimate(e entities.SavedEstimate) SavedEstimateResponse {
	return SavedEstimateResponse{
		ID:                  e.ID,
		EstimateNumber:      e.EstimateNumber,
		PatientName:         e.PatientName,
		PatientUHID:         e.PatientUHID,
		PatientCategory:     e.PatientCategory,
		LengthOfStay:        e.LengthOfStay,
		Subtotal:            e.Subtotal,
		TotalDiscount:       e.TotalDiscount,
		FinalTotal:          e.FinalTotal,
		GeneratedByUsername: e.GeneratedByUsername,
		GeneratedByRole:     e.GeneratedByRole,
		CreatedAt:           e.CreatedAt,
	}
}

func FromSavedEstimates(ests []entities.SavedEstimate) []SavedEstimateResponse {
	out := make([]SavedEstimateResponse, 0, len(ests))
	for _, e := range ests {
		out = append(out, FromSavedEstimate(e))
	}
	return out
}

// SavedEstimateDetailResponse is the full readback of one saved estimate:
// header, the estimate exactly as computed, and the per-line snapshots.
type SavedEstimateDetailResponse struct {
	SavedEstimateResponse
	EstimateData json.RawMessage                 `json:"estimate_data"`
	Services     []entities.SavedEstimateService `json:"services"`
}

func FromSavedEstimateDetail(e entities.SavedEstimate, services []entities.SavedEstimateService) SavedEstimateDetailResponse {
	return SavedEstimateDetailResponse{
		SavedEstimateResponse: FromSavedEstimate(e),
		EstimateData:          e.EstimateData,
		Services:              services,
	}
}
