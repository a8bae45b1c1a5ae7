package response

import (
	"encoding/json"
	"testing"
	"time"

	"hospital_billing/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	loc := time.FixedZone("UTC+05:30", 5*3600+30*60)
	e := entities.Estimate{
		PatientDetails: entities.PatientDetails{Name: "John", UHID: "Not provided", Category: "General", LengthOfStay: 3},
		Lines: []entities.EstimateLine{
			{ServiceName: "CBC", Quantity: 1, FinalAmount: 300},
		},
		Summary:     entities.EstimateSummary{Subtotal: 300, FinalTotal: 300},
		GeneratedAt: time.Date(2026, 3, 1, 16, 0, 0, 0, loc),
		GeneratedBy: "Manager",
	}

	resp := FromEstimate(e)
	if resp.GeneratedAt != "2026-03-01 16:00:00" {
		t.Fatalf("unexpected generated_at: %q", resp.GeneratedAt)
	}
	if resp.GeneratedBy != "Manager" {
		t.Fatalf("unexpected generated_by: %q", resp.GeneratedBy)
	}
	if len(resp.EstimateLines) != 1 || resp.EstimateLines[0].ServiceName != "CBC" {
		t.Fatalf("unexpected lines: %+v", resp.EstimateLines)
	}
}

func TestFromSavedEstimateDetail(t *testing.T) {
	est := entities.SavedEstimate{
		ID:             "est-1",
		EstimateNumber: "EST001",
		PatientName:    "John",
		FinalTotal:     300,
		EstimateData:   json.RawMessage(`{"summary":{"final_total":300}}`),
	}
	services := []entities.SavedEstimateService{{ServiceName: "CBC", Quantity: 1, FinalAmount: 300}}

	resp := FromSavedEstimateDetail(est, services)
	if resp.EstimateNumber != "EST001" || resp.FinalTotal != 300 {
		t.Fatalf("unexpected header: %+v", resp.SavedEstimateResponse)
	}
	if len(resp.Services) != 1 {
		t.Fatalf("unexpected services: %+v", resp.Services)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	// The stored snapshot must come back as an object, not a quoted string.
	if _, ok := decoded["estimate_data"].(map[string]any); !ok {
		t.Fatalf("estimate_data not embedded as json: %s", raw)
	}
}

func TestFromSavedEstimates(t *testing.T) {
	out := FromSavedEstimates(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
}
