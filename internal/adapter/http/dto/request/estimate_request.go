package request

import (
	"strings"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase"
)

// ComputeEstimateRequest is the payload for an estimate calculation. Services
// carries catalog service ids; blank entries are dropped here so the use case
// only sees candidate ids.
type ComputeEstimateRequest struct {
	PatientName     string   `json:"patient_name" binding:"required"`
	PatientUHID     string   `json:"uhid"`
	PatientCategory string   `json:"patient_category" binding:"required"`
	LengthOfStay    int      `json:"length_of_stay" binding:"required"`
	Services        []string `json:"services" binding:"required"`
}

func (r ComputeEstimateRequest) ToInput() usecase.ComputeEstimateInput {
	ids := make([]string, 0, len(r.Services))
	for _, id := range r.Services {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return usecase.ComputeEstimateInput{
		PatientName:     strings.TrimSpace(r.PatientName),
		PatientUHID:     strings.TrimSpace(r.PatientUHID),
		PatientCategory: strings.TrimSpace(r.PatientCategory),
		LengthOfStay:    r.LengthOfStay,
		ServiceIDs:      ids,
	}
}

// SaveEstimateRequest persists a previously computed estimate verbatim. The
// estimate payload is stored as the immutable snapshot shown on later reads.
type SaveEstimateRequest struct {
	PatientName     string            `json:"patient_name" binding:"required"`
	PatientUHID     string            `json:"uhid"`
	PatientCategory string            `json:"patient_category" binding:"required"`
	LengthOfStay    int               `json:"length_of_stay" binding:"required"`
	Estimate        entities.Estimate `json:"estimate_data" binding:"required"`
}

func (r SaveEstimateRequest) ToInput() usecase.SaveEstimateInput {
	return usecase.SaveEstimateInput{
		PatientName:     strings.TrimSpace(r.PatientName),
		PatientUHID:     strings.TrimSpace(r.PatientUHID),
		PatientCategory: strings.TrimSpace(r.PatientCategory),
		LengthOfStay:    r.LengthOfStay,
		Estimate:        r.Estimate,
	}
}
