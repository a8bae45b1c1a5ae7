package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPatientName     = errors.New("patient name is required")
	ErrInvalidPatientCategory = errors.New("invalid patient category")
	ErrInvalidLengthOfStay    = errors.New("length of stay must be at least 1 day")
	ErrNoValidServices        = errors.New("no valid services selected")
	ErrMissingEstimatePayload = errors.New("missing estimate payload")
	ErrInvalidEstimateID      = errors.New("invalid estimate id")
	ErrEstimateNotFound       = errors.New("estimate not found")
	ErrEstimateAccessDenied   = errors.New("estimate access denied")
	ErrEstimateNumberConflict = errors.New("estimate numbering conflict")
)

// DefaultEstimateLocation is the fixed UTC+05:30 offset generation
// timestamps are stamped in. Deployments that need another zone pass a
// location through WithLocation.
var DefaultEstimateLocation = time.FixedZone("UTC+05:30", 5*3600+30*60)

// saveMaxAttempts bounds the numbering-conflict retry loop in SaveEstimate.
const saveMaxAttempts = 3

// ComputeEstimateInput is the validated command for one estimate
// computation. ServiceIDs that resolve to nothing are dropped; an empty
// resolved set fails the call.
type ComputeEstimateInput struct {
	PatientName     string
	PatientUHID     string
	PatientCategory string
	LengthOfStay    int
	ServiceIDs      []string
}

// SaveEstimateInput carries the patient fields plus a previously computed
// estimate payload.
type SaveEstimateInput struct {
	PatientName     string
	PatientUHID     string
	PatientCategory string
	LengthOfStay    int
	Estimate        entities.Estimate
}

type SaveEstimateResult struct {
	EstimateID     string
	EstimateNumber string
}

// IEstimateUseCase exposes the estimate engine and the saved-estimate
// operations.
//
//   - ComputeEstimate is pure: identical inputs against identical catalog
//     state produce identical output.
//   - SaveEstimate assigns the next document number and persists the header
//     plus per-line snapshots atomically.
//   - ListEstimates / GetEstimate apply the visibility rules (admins may
//     request everything, managers may open any single estimate, everyone
//     else sees only their own).

type IEstimateUseCase interface {
	ComputeEstimate(ctx context.Context, in ComputeEstimateInput, actor entities.Actor) (entities.Estimate, error)
	SaveEstimate(ctx context.Context, in SaveEstimateInput, actor entities.Actor) (SaveEstimateResult, error)
	ListEstimates(ctx context.Context, actor entities.Actor, viewAll bool) ([]entities.SavedEstimate, error)
	GetEstimate(ctx context.Context, id string, actor entities.Actor) (entities.SavedEstimate, []entities.SavedEstimateService, error)
}

type EstimateUseCase struct {
	catalog   interfaces.ICatalogRepository
	discounts interfaces.IDiscountRepository
	estimates interfaces.ISavedEstimateRepository

	loc *time.Location
	now func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(catalog interfaces.ICatalogRepository, discounts interfaces.IDiscountRepository, estimates interfaces.ISavedEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{
		catalog:   catalog,
		discounts: discounts,
		estimates: estimates,
		loc:       DefaultEstimateLocation,
		now:       time.Now,
	}
}

// WithLocation overrides the generation-timestamp zone.
func (u *EstimateUseCase) WithLocation(loc *time.Location) *EstimateUseCase {
	if loc != nil {
		u.loc = loc
	}
	return u
}

// WithClock overrides the time source. Tests use it to pin GeneratedAt.
func (u *EstimateUseCase) WithClock(now func() time.Time) *EstimateUseCase {
	if now != nil {
		u.now = now
	}
	return u
}

func (u *EstimateUseCase) ComputeEstimate(ctx context.Context, in ComputeEstimateInput, actor entities.Actor) (entities.Estimate, error) {
	patientName := strings.TrimSpace(in.PatientName)
	if patientName == "" {
		return entities.Estimate{}, ErrInvalidPatientName
	}
	if in.LengthOfStay < 1 {
		return entities.Estimate{}, ErrInvalidLengthOfStay
	}

	patientCat, err := u.catalog.GetPatientCategoryByName(ctx, strings.TrimSpace(in.PatientCategory))
	if err != nil {
		return entities.Estimate{}, err
	}
	if patientCat.ID == "" {
		return entities.Estimate{}, ErrInvalidPatientCategory
	}

	services, err := u.catalog.GetServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(services) == 0 {
		return entities.Estimate{}, ErrNoValidServices
	}

	uhid := strings.TrimSpace(in.PatientUHID)
	if uhid == "" {
		uhid = "Not provided"
	}

	lines := make([]entities.EstimateLine, 0, len(services))
	subtotal := 0.0
	totalDiscount := 0.0

	for _, svc := range services {
		var quantity int
		var unitDescription string
		if svc.IsDailyCharge {
			quantity = in.LengthOfStay * svc.VisitsPerDay
			unitDescription = fmt.Sprintf("%d visits/day × %d days", svc.VisitsPerDay, in.LengthOfStay)
		} else {
			quantity = 1
			unitDescription = "One-time charge"
		}

		lineTotal := svc.MRP * float64(quantity)

		discount, err := u.discounts.GetByPair(ctx, patientCat.ID, svc.CategoryID)
		if err != nil {
			return entities.Estimate{}, err
		}

		discountAmount := 0.0
		discountPercentage := 0.0
		if discount.ID != "" {
			switch discount.Kind {
			case entities.DiscountKindPercentage:
				discountPercentage = discount.Value
				discountAmount = lineTotal * (discountPercentage / 100)
			default:
				// Flat discounts apply per unit of quantity.
				discountAmount = discount.Value * float64(quantity)
				if lineTotal > 0 {
					discountPercentage = discountAmount / lineTotal * 100
				}
			}
		}

		// A discount larger than the line total yields a negative final
		// amount; that is the established billing behavior, not clamped.
		finalAmount := lineTotal - discountAmount

		lines = append(lines, entities.EstimateLine{
			ServiceID:          svc.ID,
			ServiceName:        svc.Name,
			Category:           svc.CategoryDisplayName,
			UnitPrice:          svc.MRP,
			Quantity:           quantity,
			UnitDescription:    unitDescription,
			LineTotal:          lineTotal,
			DiscountPercentage: round2(discountPercentage),
			DiscountAmount:     round2(discountAmount),
			FinalAmount:        round2(finalAmount),
		})

		subtotal += lineTotal
		totalDiscount += discountAmount
	}

	overallPct := 0.0
	if subtotal > 0 {
		overallPct = totalDiscount / subtotal * 100
	}

	return entities.Estimate{
		PatientDetails: entities.PatientDetails{
			Name:         patientName,
			UHID:         uhid,
			Category:     patientCat.DisplayName,
			LengthOfStay: in.LengthOfStay,
		},
		Lines: lines,
		Summary: entities.EstimateSummary{
			Subtotal:           round2(subtotal),
			TotalDiscount:      round2(totalDiscount),
			FinalTotal:         round2(subtotal - totalDiscount),
			DiscountPercentage: round2(overallPct),
		},
		GeneratedAt: u.now().In(u.loc),
		GeneratedBy: capitalizeRole(actor.Role),
	}, nil
}

func (u *EstimateUseCase) SaveEstimate(ctx context.Context, in SaveEstimateInput, actor entities.Actor) (SaveEstimateResult, error) {
	patientName := strings.TrimSpace(in.PatientName)
	if patientName == "" {
		return SaveEstimateResult{}, ErrInvalidPatientName
	}
	if strings.TrimSpace(in.PatientCategory) == "" {
		return SaveEstimateResult{}, ErrInvalidPatientCategory
	}
	if in.LengthOfStay < 1 {
		return SaveEstimateResult{}, ErrInvalidLengthOfStay
	}
	if len(in.Estimate.Lines) == 0 {
		return SaveEstimateResult{}, ErrMissingEstimatePayload
	}

	payload, err := json.Marshal(in.Estimate)
	if err != nil {
		return SaveEstimateResult{}, err
	}

	header := entities.SavedEstimate{
		ID:                  uuid.NewString(),
		PatientName:         patientName,
		PatientUHID:         strings.TrimSpace(in.PatientUHID),
		PatientCategory:     strings.TrimSpace(in.PatientCategory),
		LengthOfStay:        in.LengthOfStay,
		Subtotal:            in.Estimate.Summary.Subtotal,
		TotalDiscount:       in.Estimate.Summary.TotalDiscount,
		FinalTotal:          in.Estimate.Summary.FinalTotal,
		GeneratedByRole:     string(actor.Role),
		GeneratedByUserID:   actor.UserID,
		GeneratedByUsername: actor.Username,
		EstimateData:        payload,
		CreatedAt:           u.now().UTC(),
	}

	lines := make([]entities.SavedEstimateService, 0, len(in.Estimate.Lines))
	for _, l := range in.Estimate.Lines {
		lines = append(lines, entities.SavedEstimateService{
			ID:              uuid.NewString(),
			SavedEstimateID: header.ID,
			ServiceID:       l.ServiceID,
			ServiceName:     l.ServiceName,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			LineTotal:       l.LineTotal,
			DiscountAmount:  l.DiscountAmount,
			FinalAmount:     l.FinalAmount,
		})
	}

	for attempt := 1; attempt <= saveMaxAttempts; attempt++ {
		prev, err := u.estimates.LastAssignedOrdinal(ctx)
		if err != nil {
			return SaveEstimateResult{}, err
		}
		header.EstimateNumber = entities.FormatEstimateNumber(prev + 1)

		saved, err := u.estimates.Save(ctx, header, lines, prev)
		if errors.Is(err, interfaces.ErrEstimateNumberConflict) {
			log.Printf("[estimate][usecase] number %s taken by concurrent save, retrying (attempt %d/%d)", header.EstimateNumber, attempt, saveMaxAttempts)
			continue
		}
		if err != nil {
			return SaveEstimateResult{}, err
		}
		return SaveEstimateResult{EstimateID: saved.ID, EstimateNumber: saved.EstimateNumber}, nil
	}
	return SaveEstimateResult{}, ErrEstimateNumberConflict
}

func (u *EstimateUseCase) ListEstimates(ctx context.Context, actor entities.Actor, viewAll bool) ([]entities.SavedEstimate, error) {
	var (
		ests []entities.SavedEstimate
		err  error
	)
	// Only admins may widen the scope; everyone else always gets their own.
	if actor.IsAdmin() && viewAll {
		ests, err = u.estimates.ListAll(ctx)
	} else {
		ests, err = u.estimates.ListByUserID(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(ests, func(i, j int) bool {
		return ests[i].CreatedAt.After(ests[j].CreatedAt)
	})
	return ests, nil
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, id string, actor entities.Actor) (entities.SavedEstimate, []entities.SavedEstimateService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SavedEstimate{}, nil, ErrInvalidEstimateID
	}

	est, err := u.estimates.GetByID(ctx, id)
	if err != nil {
		return entities.SavedEstimate{}, nil, err
	}
	if est.ID == "" {
		return entities.SavedEstimate{}, nil, ErrEstimateNotFound
	}

	if !actor.IsAdmin() && !actor.IsManager() && est.GeneratedByUserID != actor.UserID {
		return entities.SavedEstimate{}, nil, ErrEstimateAccessDenied
	}

	lines, err := u.estimates.ListServicesByEstimateID(ctx, est.ID)
	if err != nil {
		return entities.SavedEstimate{}, nil, err
	}
	return est, lines, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func capitalizeRole(r entities.Role) string {
	s := string(r)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
