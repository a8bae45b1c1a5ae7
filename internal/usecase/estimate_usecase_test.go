package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"
	mock_interfaces "hospital_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testActor = entities.Actor{UserID: "user-1", Username: "jdoe", Role: entities.RoleUser, Approved: true}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEstimateUseCase_ComputeEstimate_Validation(t *testing.T) {
	t.Run("empty patient name", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.ComputeEstimate(context.Background(), ComputeEstimateInput{PatientName: "   ", PatientCategory: "general", LengthOfStay: 2}, testActor)
		if !errors.Is(err, ErrInvalidPatientName) {
			t.Fatalf("expected ErrInvalidPatientName, got %v", err)
		}
	})

	t.Run("length of stay below one", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.ComputeEstimate(context.Background(), ComputeEstimateInput{PatientName: "John", PatientCategory: "general", LengthOfStay: 0}, testActor)
		if !errors.Is(err, ErrInvalidLengthOfStay) {
			t.Fatalf("expected ErrInvalidLengthOfStay, got %v", err)
		}
	})

	t.Run("unknown patient category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewEstimateUseCase(catalog, nil, nil)

		catalog.EXPECT().GetPatientCategoryByName(gomock.Any(), "vip").Return(entities.PatientCategory{}, nil)

		_, err := uc.ComputeEstimate(context.Background(), ComputeEstimateInput{PatientName: "John", PatientCategory: "vip", LengthOfStay: 2, ServiceIDs: []string{"svc-1"}}, testActor)
		if !errors.Is(err, ErrInvalidPatientCategory) {
			t.Fatalf("expected ErrInvalidPatientCategory, got %v", err)
		}
	})

	t.Run("no valid services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewEstimateUseCase(catalog, nil, nil)

		catalog.EXPECT().GetPatientCategoryByName(gomock.Any(), "general").Return(entities.PatientCategory{ID: "pc-1", Name: "general", DisplayName: "General"}, nil)
		catalog.EXPECT().GetServicesByIDs(gomock.Any(), []string{"gone"}).Return(nil, nil)

		_, err := uc.ComputeEstimate(context.Background(), ComputeEstimateInput{PatientName: "John", PatientCategory: "general", LengthOfStay: 2, ServiceIDs: []string{"gone"}}, testActor)
		if !errors.Is(err, ErrNoValidServices) {
			t.Fatalf("expected ErrNoValidServices, got %v", err)
		}
	})
}

func TestEstimateUseCase_ComputeEstimate_Lines(t *testing.T) {
	generalCat := entities.PatientCategory{ID: "pc-1", Name: "general", DisplayName: "General"}

	newCompute := func(t *testing.T, svc entities.Service, discount entities.Discount, stay int) entities.Estimate {
		t.Helper()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		discounts := mock_interfaces.NewMockIDiscountRepository(ctrl)
		uc := NewEstimateUseCase(catalog, discounts, nil)

		catalog.EXPECT().GetPatientCategoryByName(gomock.Any(), "general").Return(generalCat, nil)
		catalog.EXPECT().GetServicesByIDs(gomock.Any(), []string{svc.ID}).Return([]entities.Service{svc}, nil)
		discounts.EXPECT().GetByPair(gomock.Any(), generalCat.ID, svc.CategoryID).Return(discount, nil)

		est, err := uc.ComputeEstimate(context.Background(), ComputeEstimateInput{
			PatientName:     "John",
			PatientCategory: "general",
			LengthOfStay:    stay,
			ServiceIDs:      []string{svc.ID},
		}, testActor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return est
	}

	t.Run("daily charge quantity is visits times days", func(t *testing.T) {
		svc := entities.Service{ID: "svc-1", Name: "Nursing", CategoryID: "sc-1", CategoryDisplayName: "Nursing Care", MRP: 100, IsDailyCharge: true, VisitsPerDay: 3}
		est := newCompute(t, svc, entities.Discount{}, 4)

		line := est.Lines[0]
		if line.Quantity != 12 {
			t.Fatalf("expected quantity 12, got %d", line.Quantity)
		}
		if line.UnitDescription != "3 visits/day × 4 days" {
			t.Fatalf("unexpected unit description %q", line.UnitDescription)
		}
		if line.LineTotal != 1200 {
			t.Fatalf("expected line total 1200, got %v", line.LineTotal)
		}
	})

	t.Run("one time charge quantity is one regardless of stay", func(t *testing.T) {
		svc := entities.Service{ID: "svc-2", Name: "MRI", CategoryID: "sc-2", CategoryDisplayName: "Radiology", MRP: 5000, IsDailyCharge: false, VisitsPerDay: 1}
		est := newCompute(t, svc, entities.Discount{}, 10)

		line := est.Lines[0]
		if line.Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", line.Quantity)
		}
		if line.UnitDescription != "One-time charge" {
			t.Fatalf("unexpected unit description %q", line.UnitDescription)
		}
		if line.LineTotal != 5000 {
			t.Fatalf("expected line total 5000, got %v", line.LineTotal)
		}
	})

	t.Run("percentage discount", func(t *testing.T) {
		svc := entities.Service{ID: "svc-3", Name: "Dialysis", CategoryID: "sc-3", CategoryDisplayName: "Procedures", MRP: 1000, IsDailyCharge: true, VisitsPerDay: 1}
		d := entities.Discount{ID: "d-1", PatientCategoryID: "pc-1", ServiceCategoryID: "sc-3", Kind: entities.DiscountKindPercentage, Value: 10}
		est := newCompute(t, svc, d, 2)

		line := est.Lines[0]
		if line.LineTotal != 2000 {
			t.Fatalf("expected line total 2000, got %v", line.LineTotal)
		}
		if line.DiscountAmount != 200 {
			t.Fatalf("expected discount 200, got %v", line.DiscountAmount)
		}
		if line.DiscountPercentage != 10 {
			t.Fatalf("expected discount pct 10, got %v", line.DiscountPercentage)
		}
		if line.FinalAmount != 1800 {
			t.Fatalf("expected final 1800, got %v", line.FinalAmount)
		}
	})

	t.Run("flat discount applies per unit", func(t *testing.T) {
		svc := entities.Service{ID: "svc-4", Name: "Physio", CategoryID: "sc-4", CategoryDisplayName: "Procedures", MRP: 500, IsDailyCharge: true, VisitsPerDay: 3}
		d := entities.Discount{ID: "d-2", PatientCategoryID: "pc-1", ServiceCategoryID: "sc-4", Kind: entities.DiscountKindFlat, Value: 50}
		est := newCompute(t, svc, d, 1)

		line := est.Lines[0]
		if line.LineTotal != 1500 {
			t.Fatalf("expected line total 1500, got %v", line.LineTotal)
		}
		if line.DiscountAmount != 150 {
			t.Fatalf("expected discount 150, got %v", line.DiscountAmount)
		}
		if line.FinalAmount != 1350 {
			t.Fatalf("expected final 1350, got %v", line.FinalAmount)
		}
		if line.DiscountPercentage != 10 {
			t.Fatalf("expected derived pct 10, got %v", line.DiscountPercentage)
		}
	})

	t.Run("no discount rule leaves line untouched", func(t *testing.T) {
		svc := entities.Service{ID: "svc-5", Name: "X-Ray", CategoryID: "sc-5", CategoryDisplayName: "Radiology", MRP: 800, IsDailyCharge: false, VisitsPerDay: 1}
		est := newCompute(t, svc, entities.Discount{}, 3)

		line := est.Lines[0]
		if line.DiscountAmount != 0 || line.DiscountPercentage != 0 {
			t.Fatalf("expected zero discount, got amount=%v pct=%v", line.DiscountAmount, line.DiscountPercentage)
		}
		if line.FinalAmount != 800 {
			t.Fatalf("expected final 800, got %v", line.FinalAmount)
		}
	})

	t.Run("flat discount larger than line total goes negative", func(t *testing.T) {
		svc := entities.Service{ID: "svc-6", Name: "Dressing", CategoryID: "sc-6", CategoryDisplayName: "Procedures", MRP: 50, IsDailyCharge: false, VisitsPerDay: 1}
		d := entities.Discount{ID: "d-3", PatientCategoryID: "pc-1", ServiceCategoryID: "sc-6", Kind: entities.DiscountKindFlat, Value: 100}
		est := newCompute(t, svc, d, 1)

		line := est.Lines[0]
		if line.FinalAmount != -50 {
			t.Fatalf("expected final -50, got %v", line.FinalAmount)
		}
		if est.Summary.FinalTotal != -50 {
			t.Fatalf("expected summary final -50, got %v", est.Summary.FinalTotal)
		}
	})

	t.Run("uhid defaults when blank", func(t *testing.T) {
		svc := entities.Service{ID: "svc-7", Name: "X-Ray", CategoryID: "sc-5", CategoryDisplayName: "Radiology", MRP: 800, IsDailyCharge: false, VisitsPerDay: 1}
		est := newCompute(t, svc, entities.Discount{}, 1)

		if est.PatientDetails.UHID != "Not provided" {
			t.Fatalf("expected default uhid, got %q", est.PatientDetails.UHID)
		}
	})
}

func TestEstimateUseCase_ComputeEstimate_Summary(t *testing.T) {
	generalCat := entities.PatientCategory{ID: "pc-1", Name: "general", DisplayName: "General"}
	nursing := entities.Service{ID: "svc-n", Name: "General Nursing", CategoryID: "sc-n", CategoryDisplayName: "Nursing Care", MRP: 200, IsDailyCharge: true, VisitsPerDay: 2}
	lab := entities.Service{ID: "svc-l", Name: "Blood Panel", CategoryID: "sc-l", CategoryDisplayName: "Laboratory", MRP: 1000, IsDailyCharge: false, VisitsPerDay: 1}
	nursingDiscount := entities.Discount{ID: "d-n", PatientCategoryID: "pc-1", ServiceCategoryID: "sc-n", Kind: entities.DiscountKindPercentage, Value: 10}

	setup := func(t *testing.T) *EstimateUseCase {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		discounts := mock_interfaces.NewMockIDiscountRepository(ctrl)

		catalog.EXPECT().GetPatientCategoryByName(gomock.Any(), "general").Return(generalCat, nil).AnyTimes()
		catalog.EXPECT().GetServicesByIDs(gomock.Any(), []string{"svc-n", "svc-l"}).Return([]entities.Service{nursing, lab}, nil).AnyTimes()
		discounts.EXPECT().GetByPair(gomock.Any(), "pc-1", "sc-n").Return(nursingDiscount, nil).AnyTimes()
		discounts.EXPECT().GetByPair(gomock.Any(), "pc-1", "sc-l").Return(entities.Discount{}, nil).AnyTimes()

		return NewEstimateUseCase(catalog, discounts, nil)
	}

	input := ComputeEstimateInput{
		PatientName:     "Jane",
		PatientUHID:     "UH-42",
		PatientCategory: "general",
		LengthOfStay:    3,
		ServiceIDs:      []string{"svc-n", "svc-l"},
	}

	t.Run("aggregates across lines", func(t *testing.T) {
		uc := setup(t)
		est, err := uc.ComputeEstimate(context.Background(), input, entities.Actor{UserID: "u-1", Role: entities.RoleManager})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(est.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(est.Lines))
		}
		// Nursing: 2 visits/day for 3 days at 200 = 1200, 10% off.
		if est.Lines[0].Quantity != 6 || est.Lines[0].LineTotal != 1200 || est.Lines[0].DiscountAmount != 120 || est.Lines[0].FinalAmount != 1080 {
			t.Fatalf("unexpected nursing line %+v", est.Lines[0])
		}
		if est.Lines[1].LineTotal != 1000 || est.Lines[1].FinalAmount != 1000 {
			t.Fatalf("unexpected lab line %+v", est.Lines[1])
		}

		if est.Summary.Subtotal != 2200 {
			t.Fatalf("expected subtotal 2200, got %v", est.Summary.Subtotal)
		}
		if est.Summary.TotalDiscount != 120 {
			t.Fatalf("expected total discount 120, got %v", est.Summary.TotalDiscount)
		}
		if est.Summary.FinalTotal != 2080 {
			t.Fatalf("expected final total 2080, got %v", est.Summary.FinalTotal)
		}
		if est.Summary.DiscountPercentage != 5.45 {
			t.Fatalf("expected overall pct 5.45, got %v", est.Summary.DiscountPercentage)
		}

		if est.PatientDetails.Category != "General" {
			t.Fatalf("expected display category, got %q", est.PatientDetails.Category)
		}
		if est.GeneratedBy != "Manager" {
			t.Fatalf("expected GeneratedBy Manager, got %q", est.GeneratedBy)
		}
	})

	t.Run("identical inputs produce identical output", func(t *testing.T) {
		at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
		uc := setup(t).WithClock(fixedClock(at))

		first, err := uc.ComputeEstimate(context.Background(), input, testActor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.ComputeEstimate(context.Background(), input, testActor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.Summary != second.Summary {
			t.Fatalf("summaries differ: %+v vs %+v", first.Summary, second.Summary)
		}
		if !first.GeneratedAt.Equal(second.GeneratedAt) {
			t.Fatalf("timestamps differ: %v vs %v", first.GeneratedAt, second.GeneratedAt)
		}
		for i := range first.Lines {
			if first.Lines[i] != second.Lines[i] {
				t.Fatalf("line %d differs", i)
			}
		}
	})

	t.Run("generated at uses the configured zone", func(t *testing.T) {
		at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
		uc := setup(t).WithClock(fixedClock(at))

		est, err := uc.ComputeEstimate(context.Background(), input, testActor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := est.GeneratedAt.Format("15:04"); got != "16:00" {
			t.Fatalf("expected 16:00 in UTC+05:30, got %s", got)
		}
	})
}

func validSaveInput() SaveEstimateInput {
	return SaveEstimateInput{
		PatientName:     "Jane",
		PatientUHID:     "UH-42",
		PatientCategory: "General",
		LengthOfStay:    3,
		Estimate: entities.Estimate{
			Lines: []entities.EstimateLine{
				{ServiceID: "svc-1", ServiceName: "Nursing", UnitPrice: 200, Quantity: 6, LineTotal: 1200, DiscountAmount: 120, FinalAmount: 1080},
			},
			Summary: entities.EstimateSummary{Subtotal: 1200, TotalDiscount: 120, FinalTotal: 1080},
		},
	}
}

func TestEstimateUseCase_SaveEstimate(t *testing.T) {
	t.Run("missing payload", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		in := validSaveInput()
		in.Estimate.Lines = nil
		_, err := uc.SaveEstimate(context.Background(), in, testActor)
		if !errors.Is(err, ErrMissingEstimatePayload) {
			t.Fatalf("expected ErrMissingEstimatePayload, got %v", err)
		}
	})

	t.Run("assigns next number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		repo.EXPECT().LastAssignedOrdinal(gomock.Any()).Return(4, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 4).DoAndReturn(
			func(_ context.Context, est entities.SavedEstimate, lines []entities.SavedEstimateService, _ int) (entities.SavedEstimate, error) {
				if est.EstimateNumber != "EST005" {
					t.Fatalf("expected EST005, got %s", est.EstimateNumber)
				}
				if len(lines) != 1 || lines[0].SavedEstimateID != est.ID {
					t.Fatalf("line snapshot not tied to header: %+v", lines)
				}
				return est, nil
			})

		result, err := uc.SaveEstimate(context.Background(), validSaveInput(), testActor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.EstimateNumber != "EST005" {
			t.Fatalf("expected EST005, got %s", result.EstimateNumber)
		}
	})

	t.Run("retries once on number conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		first := repo.EXPECT().LastAssignedOrdinal(gomock.Any()).Return(0, nil)
		conflicted := repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 0).Return(entities.SavedEstimate{}, interfaces.ErrEstimateNumberConflict).After(first)
		second := repo.EXPECT().LastAssignedOrdinal(gomock.Any()).Return(1, nil).After(conflicted)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 1).DoAndReturn(
			func(_ context.Context, est entities.SavedEstimate, _ []entities.SavedEstimateService, _ int) (entities.SavedEstimate, error) {
				return est, nil
			}).After(second)

		result, err := uc.SaveEstimate(context.Background(), validSaveInput(), testActor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.EstimateNumber != "EST002" {
			t.Fatalf("expected EST002 after retry, got %s", result.EstimateNumber)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		repo.EXPECT().LastAssignedOrdinal(gomock.Any()).Return(0, nil).Times(3)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 0).Return(entities.SavedEstimate{}, interfaces.ErrEstimateNumberConflict).Times(3)

		_, err := uc.SaveEstimate(context.Background(), validSaveInput(), testActor)
		if !errors.Is(err, ErrEstimateNumberConflict) {
			t.Fatalf("expected ErrEstimateNumberConflict, got %v", err)
		}
	})
}

// fakeEstimateStore emulates the conditional-write numbering contract so
// concurrent saves can race the way they would against the real table.
type fakeEstimateStore struct {
	mu          sync.Mutex
	lastOrdinal int
	saved       []entities.SavedEstimate
	lines       []entities.SavedEstimateService
}

func (f *fakeEstimateStore) LastAssignedOrdinal(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastOrdinal, nil
}

func (f *fakeEstimateStore) Save(ctx context.Context, est entities.SavedEstimate, lines []entities.SavedEstimateService, prevOrdinal int) (entities.SavedEstimate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastOrdinal != prevOrdinal {
		return entities.SavedEstimate{}, interfaces.ErrEstimateNumberConflict
	}
	f.lastOrdinal = prevOrdinal + 1
	f.saved = append(f.saved, est)
	f.lines = append(f.lines, lines...)
	return est, nil
}

func (f *fakeEstimateStore) GetByID(ctx context.Context, id string) (entities.SavedEstimate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, est := range f.saved {
		if est.ID == id {
			return est, nil
		}
	}
	return entities.SavedEstimate{}, nil
}

func (f *fakeEstimateStore) ListAll(ctx context.Context) ([]entities.SavedEstimate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entities.SavedEstimate(nil), f.saved...), nil
}

func (f *fakeEstimateStore) ListByUserID(ctx context.Context, userID string) ([]entities.SavedEstimate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.SavedEstimate
	for _, est := range f.saved {
		if est.GeneratedByUserID == userID {
			out = append(out, est)
		}
	}
	return out, nil
}

func (f *fakeEstimateStore) ListServicesByEstimateID(ctx context.Context, estimateID string) ([]entities.SavedEstimateService, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.SavedEstimateService
	for _, l := range f.lines {
		if l.SavedEstimateID == estimateID {
			out = append(out, l)
		}
	}
	return out, nil
}

func TestEstimateUseCase_SaveEstimate_RoundTrip(t *testing.T) {
	store := &fakeEstimateStore{}
	uc := NewEstimateUseCase(nil, nil, store)

	in := SaveEstimateInput{
		PatientName:     "Jane",
		PatientUHID:     "UH-42",
		PatientCategory: "General",
		LengthOfStay:    3,
		Estimate: entities.Estimate{
			PatientDetails: entities.PatientDetails{Name: "Jane", UHID: "UH-42", Category: "General", LengthOfStay: 3},
			Lines: []entities.EstimateLine{
				{ServiceID: "svc-1", ServiceName: "Nursing", Category: "Nursing Care", UnitPrice: 200, Quantity: 6, UnitDescription: "2 visits/day × 3 days", LineTotal: 1200, DiscountPercentage: 10, DiscountAmount: 120, FinalAmount: 1080},
				{ServiceID: "svc-2", ServiceName: "CBC", Category: "Laboratory", UnitPrice: 1000, Quantity: 1, UnitDescription: "One-time charge", LineTotal: 1000, FinalAmount: 1000},
			},
			Summary:     entities.EstimateSummary{Subtotal: 2200, TotalDiscount: 120, FinalTotal: 2080, DiscountPercentage: 5.45},
			GeneratedBy: "Manager",
		},
	}

	result, err := uc.SaveEstimate(context.Background(), in, testActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EstimateNumber != "EST001" {
		t.Fatalf("expected EST001, got %s", result.EstimateNumber)
	}

	est, lines, err := uc.GetEstimate(context.Background(), result.EstimateID, testActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.Subtotal != 2200 || est.TotalDiscount != 120 || est.FinalTotal != 2080 {
		t.Fatalf("header totals drifted from the saved summary: %+v", est)
	}
	if est.PatientName != "Jane" || est.PatientUHID != "UH-42" || est.LengthOfStay != 3 {
		t.Fatalf("patient fields drifted: %+v", est)
	}

	if len(lines) != len(in.Estimate.Lines) {
		t.Fatalf("expected %d line snapshots, got %d", len(in.Estimate.Lines), len(lines))
	}
	for i, l := range lines {
		want := in.Estimate.Lines[i]
		if l.SavedEstimateID != est.ID {
			t.Fatalf("line %d not tied to the saved estimate: %+v", i, l)
		}
		if l.ServiceID != want.ServiceID || l.ServiceName != want.ServiceName || l.Quantity != want.Quantity {
			t.Fatalf("line %d identity drifted: got %+v want %+v", i, l, want)
		}
		if l.UnitPrice != want.UnitPrice || l.LineTotal != want.LineTotal || l.DiscountAmount != want.DiscountAmount || l.FinalAmount != want.FinalAmount {
			t.Fatalf("line %d amounts drifted: got %+v want %+v", i, l, want)
		}
	}

	// The serialized payload must redisplay the exact estimate that was saved.
	var stored entities.Estimate
	if err := json.Unmarshal(est.EstimateData, &stored); err != nil {
		t.Fatalf("stored payload does not decode: %v", err)
	}
	if stored.Summary != in.Estimate.Summary {
		t.Fatalf("stored summary differs: got %+v want %+v", stored.Summary, in.Estimate.Summary)
	}
	if len(stored.Lines) != len(in.Estimate.Lines) {
		t.Fatalf("stored payload lost lines: %d vs %d", len(stored.Lines), len(in.Estimate.Lines))
	}
	for i := range stored.Lines {
		if stored.Lines[i] != in.Estimate.Lines[i] {
			t.Fatalf("stored line %d differs: got %+v want %+v", i, stored.Lines[i], in.Estimate.Lines[i])
		}
	}
}

func TestEstimateUseCase_SaveEstimate_ConcurrentNumbering(t *testing.T) {
	store := &fakeEstimateStore{}
	uc := NewEstimateUseCase(nil, nil, store)

	const savers = 8
	var wg sync.WaitGroup
	errs := make([]error, savers)
	for i := 0; i < savers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.SaveEstimate(context.Background(), validSaveInput(), testActor)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		// Losing every retry is a legal outcome under contention; anything
		// else is a real failure.
		if err != nil && !errors.Is(err, ErrEstimateNumberConflict) {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Winners must hold exactly EST001..ESTn with no duplicates and no gaps.
	numbers := make([]string, 0, len(store.saved))
	for _, est := range store.saved {
		numbers = append(numbers, est.EstimateNumber)
	}
	sort.Strings(numbers)
	for i, n := range numbers {
		want := fmt.Sprintf("EST%03d", i+1)
		if n != want {
			t.Fatalf("expected %s at position %d, got %s (all: %v)", want, i, n, numbers)
		}
	}
	if store.lastOrdinal != len(store.saved) {
		t.Fatalf("counter %d does not match %d saved estimates", store.lastOrdinal, len(store.saved))
	}
}

func TestEstimateUseCase_ListEstimates(t *testing.T) {
	older := entities.SavedEstimate{ID: "e-1", EstimateNumber: "EST001", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := entities.SavedEstimate{ID: "e-2", EstimateNumber: "EST002", CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("admin with view all sees everything newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.SavedEstimate{older, newer}, nil)

		admin := entities.Actor{UserID: "a-1", Role: entities.RoleAdmin, Approved: true}
		ests, err := uc.ListEstimates(context.Background(), admin, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ests) != 2 || ests[0].ID != "e-2" || ests[1].ID != "e-1" {
			t.Fatalf("unexpected order: %+v", ests)
		}
	})

	t.Run("non admin view all is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.SavedEstimate{older}, nil)

		ests, err := uc.ListEstimates(context.Background(), testActor, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ests) != 1 || ests[0].ID != "e-1" {
			t.Fatalf("unexpected estimates: %+v", ests)
		}
	})

	t.Run("admin without view all sees own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		admin := entities.Actor{UserID: "a-1", Role: entities.RoleAdmin, Approved: true}
		repo.EXPECT().ListByUserID(gomock.Any(), "a-1").Return(nil, nil)

		if _, err := uc.ListEstimates(context.Background(), admin, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_GetEstimate(t *testing.T) {
	saved := entities.SavedEstimate{ID: "e-1", EstimateNumber: "EST001", GeneratedByUserID: "owner-1"}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.SavedEstimate{}, nil)

		_, _, err := uc.GetEstimate(context.Background(), "missing", testActor)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("other users estimate is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(saved, nil)

		_, _, err := uc.GetEstimate(context.Background(), "e-1", testActor)
		if !errors.Is(err, ErrEstimateAccessDenied) {
			t.Fatalf("expected ErrEstimateAccessDenied, got %v", err)
		}
	})

	t.Run("manager may open any estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(saved, nil)
		repo.EXPECT().ListServicesByEstimateID(gomock.Any(), "e-1").Return([]entities.SavedEstimateService{{ID: "l-1"}}, nil)

		manager := entities.Actor{UserID: "m-1", Role: entities.RoleManager, Approved: true}
		est, lines, err := uc.GetEstimate(context.Background(), "e-1", manager)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.ID != "e-1" || len(lines) != 1 {
			t.Fatalf("unexpected result %+v %+v", est, lines)
		}
	})

	t.Run("owner may open their estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISavedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(nil, nil, repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(saved, nil)
		repo.EXPECT().ListServicesByEstimateID(gomock.Any(), "e-1").Return(nil, nil)

		owner := entities.Actor{UserID: "owner-1", Role: entities.RoleUser, Approved: true}
		if _, _, err := uc.GetEstimate(context.Background(), "e-1", owner); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
