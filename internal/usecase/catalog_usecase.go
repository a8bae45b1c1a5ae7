package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceInput     = errors.New("invalid service input")
	ErrServiceNotFound         = errors.New("service not found")
	ErrServiceCategoryNotFound = errors.New("service category not found")
	ErrPatientCategoryNotFound = errors.New("patient category not found")
	ErrInvalidDiscountInput    = errors.New("invalid discount input")
	ErrDiscountNotFound        = errors.New("discount not found")
)

type CreateServiceInput struct {
	Name          string
	CategoryName  string
	CostPrice     float64
	MRP           float64
	IsDailyCharge bool
	VisitsPerDay  int
}

// UpdateServiceInput applies only the fields the caller supplied.
type UpdateServiceInput struct {
	Name          *string
	CategoryName  *string
	CostPrice     *float64
	MRP           *float64
	IsDailyCharge *bool
	VisitsPerDay  *int
}

// DiscountInput addresses the rule by category internal names; the pair is
// the identity, so a second submit for the same pair updates it in place.
type DiscountInput struct {
	PatientCategory string
	ServiceCategory string
	Kind            string
	Value           float64
}

// ImportResult reports a bulk CSV import: rows that applied and per-row
// messages for the ones that did not.
type ImportResult struct {
	SuccessCount int      `json:"success_count"`
	Errors       []string `json:"errors"`
}

// ICatalogUseCase exposes catalog administration: services CRUD, category
// listings, discount rules and bulk CSV import.

type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	CreateService(ctx context.Context, in CreateServiceInput) (entities.Service, error)
	UpdateService(ctx context.Context, id string, in UpdateServiceInput) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListServiceCategories(ctx context.Context) ([]entities.ServiceCategory, error)
	ListPatientCategories(ctx context.Context) ([]entities.PatientCategory, error)

	ListDiscounts(ctx context.Context) ([]entities.Discount, error)
	UpsertDiscount(ctx context.Context, in DiscountInput) (entities.Discount, error)
	UpdateDiscount(ctx context.Context, id string, in DiscountInput) (entities.Discount, error)
	DeleteDiscount(ctx context.Context, id string) error

	ImportServicesCSV(ctx context.Context, r io.Reader) (ImportResult, error)
	ImportDiscountsCSV(ctx context.Context, r io.Reader) (ImportResult, error)
	ServicesCSVTemplate() string
	DiscountsCSVTemplate(ctx context.Context) (string, error)
}

type CatalogUseCase struct {
	catalog   interfaces.ICatalogRepository
	discounts interfaces.IDiscountRepository
	now       func() time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogRepository, discounts interfaces.IDiscountRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, discounts: discounts, now: time.Now}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.catalog.ListServices(ctx)
}

func (u *CatalogUseCase) CreateService(ctx context.Context, in CreateServiceInput) (entities.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.MRP < 0 || in.CostPrice < 0 {
		return entities.Service{}, ErrInvalidServiceInput
	}

	cat, err := u.catalog.GetServiceCategoryByName(ctx, strings.TrimSpace(in.CategoryName))
	if err != nil {
		return entities.Service{}, err
	}
	if cat.ID == "" {
		return entities.Service{}, ErrServiceCategoryNotFound
	}

	visits := in.VisitsPerDay
	if visits < 1 {
		visits = 1
	}

	return u.catalog.CreateService(ctx, entities.Service{
		ID:                  uuid.NewString(),
		Name:                name,
		CategoryID:          cat.ID,
		CategoryName:        cat.Name,
		CategoryDisplayName: cat.DisplayName,
		CostPrice:           in.CostPrice,
		MRP:                 in.MRP,
		IsDailyCharge:       in.IsDailyCharge,
		VisitsPerDay:        visits,
		CreatedAt:           u.now().UTC(),
	})
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, id string, in UpdateServiceInput) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceInput
	}

	svc, err := u.catalog.GetServiceByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return entities.Service{}, ErrInvalidServiceInput
		}
		svc.Name = strings.TrimSpace(*in.Name)
	}
	if in.CategoryName != nil {
		cat, err := u.catalog.GetServiceCategoryByName(ctx, strings.TrimSpace(*in.CategoryName))
		if err != nil {
			return entities.Service{}, err
		}
		if cat.ID == "" {
			return entities.Service{}, ErrServiceCategoryNotFound
		}
		svc.CategoryID = cat.ID
		svc.CategoryName = cat.Name
		svc.CategoryDisplayName = cat.DisplayName
	}
	if in.CostPrice != nil {
		svc.CostPrice = *in.CostPrice
	}
	if in.MRP != nil {
		svc.MRP = *in.MRP
	}
	if in.IsDailyCharge != nil {
		svc.IsDailyCharge = *in.IsDailyCharge
	}
	if in.VisitsPerDay != nil {
		if *in.VisitsPerDay < 1 {
			return entities.Service{}, ErrInvalidServiceInput
		}
		svc.VisitsPerDay = *in.VisitsPerDay
	}

	return u.catalog.UpdateService(ctx, svc)
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceInput
	}
	svc, err := u.catalog.GetServiceByID(ctx, id)
	if err != nil {
		return err
	}
	if svc.ID == "" {
		return ErrServiceNotFound
	}
	return u.catalog.DeleteService(ctx, id)
}

func (u *CatalogUseCase) ListServiceCategories(ctx context.Context) ([]entities.ServiceCategory, error) {
	return u.catalog.ListServiceCategories(ctx)
}

func (u *CatalogUseCase) ListPatientCategories(ctx context.Context) ([]entities.PatientCategory, error) {
	return u.catalog.ListPatientCategories(ctx)
}

func (u *CatalogUseCase) ListDiscounts(ctx context.Context) ([]entities.Discount, error) {
	return u.discounts.List(ctx)
}

func (u *CatalogUseCase) UpsertDiscount(ctx context.Context, in DiscountInput) (entities.Discount, error) {
	kind, ok := normalizeDiscountKind(in.Kind)
	if !ok || in.Value < 0 {
		return entities.Discount{}, ErrInvalidDiscountInput
	}

	patientCat, err := u.catalog.GetPatientCategoryByName(ctx, strings.TrimSpace(in.PatientCategory))
	if err != nil {
		return entities.Discount{}, err
	}
	if patientCat.ID == "" {
		return entities.Discount{}, ErrPatientCategoryNotFound
	}
	serviceCat, err := u.catalog.GetServiceCategoryByName(ctx, strings.TrimSpace(in.ServiceCategory))
	if err != nil {
		return entities.Discount{}, err
	}
	if serviceCat.ID == "" {
		return entities.Discount{}, ErrServiceCategoryNotFound
	}

	d := entities.Discount{
		ID:                uuid.NewString(),
		PatientCategoryID: patientCat.ID,
		ServiceCategoryID: serviceCat.ID,
		Kind:              kind,
		Value:             in.Value,
		CreatedAt:         u.now().UTC(),
	}

	// One rule per pair: keep the original identity when the pair already
	// has a rule so the upsert reads as an update to callers.
	existing, err := u.discounts.GetByPair(ctx, patientCat.ID, serviceCat.ID)
	if err != nil {
		return entities.Discount{}, err
	}
	if existing.ID != "" {
		d.ID = existing.ID
		d.CreatedAt = existing.CreatedAt
	}

	return u.discounts.Upsert(ctx, d)
}

func (u *CatalogUseCase) UpdateDiscount(ctx context.Context, id string, in DiscountInput) (entities.Discount, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Discount{}, ErrInvalidDiscountInput
	}

	existing, err := u.discounts.GetByID(ctx, id)
	if err != nil {
		return entities.Discount{}, err
	}
	if existing.ID == "" {
		return entities.Discount{}, ErrDiscountNotFound
	}

	updated, err := u.UpsertDiscount(ctx, in)
	if err != nil {
		return entities.Discount{}, err
	}

	// Re-targeting the rule at a different pair leaves the old key behind;
	// remove it so the one-rule-per-pair invariant keeps holding per pair.
	oldKey := entities.DiscountKey(existing.PatientCategoryID, existing.ServiceCategoryID)
	newKey := entities.DiscountKey(updated.PatientCategoryID, updated.ServiceCategoryID)
	if oldKey != newKey {
		if err := u.discounts.Delete(ctx, existing.ID); err != nil {
			return entities.Discount{}, err
		}
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteDiscount(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDiscountInput
	}
	existing, err := u.discounts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrDiscountNotFound
	}
	return u.discounts.Delete(ctx, id)
}

func (u *CatalogUseCase) ImportServicesCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	rows, err := readCSVRows(r, []string{"name", "category_name", "cost_price", "mrp", "is_daily_charge"})
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Errors: []string{}}
	for i, row := range rows {
		rowNum := i + 2 // header is row 1

		costPrice, err1 := strconv.ParseFloat(strings.TrimSpace(row["cost_price"]), 64)
		mrp, err2 := strconv.ParseFloat(strings.TrimSpace(row["mrp"]), 64)
		if err1 != nil || err2 != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid cost_price or mrp", rowNum))
			continue
		}

		visits := 1
		if v := strings.TrimSpace(row["visits_per_day"]); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f < 1 {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid visits_per_day", rowNum))
				continue
			}
			visits = int(f)
		}

		_, err = u.CreateService(ctx, CreateServiceInput{
			Name:          row["name"],
			CategoryName:  row["category_name"],
			CostPrice:     costPrice,
			MRP:           mrp,
			IsDailyCharge: parseCSVBool(row["is_daily_charge"]),
			VisitsPerDay:  visits,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

func (u *CatalogUseCase) ImportDiscountsCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	rows, err := readCSVRows(r, []string{"patient_category", "service_category", "discount_type", "discount_value"})
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Errors: []string{}}
	for i, row := range rows {
		rowNum := i + 2

		value, err := strconv.ParseFloat(strings.TrimSpace(row["discount_value"]), 64)
		if err != nil || value < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid discount value", rowNum))
			continue
		}

		_, err = u.UpsertDiscount(ctx, DiscountInput{
			PatientCategory: row["patient_category"],
			ServiceCategory: row["service_category"],
			Kind:            row["discount_type"],
			Value:           value,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

func (u *CatalogUseCase) ServicesCSVTemplate() string {
	return "name,category_name,cost_price,mrp,is_daily_charge,visits_per_day\n" +
		"Complete Blood Count,laboratory,200.00,300.00,false,1\n" +
		"General Nursing Care,nursing,500.00,800.00,true,3\n"
}

func (u *CatalogUseCase) DiscountsCSVTemplate(ctx context.Context) (string, error) {
	patientCats, err := u.catalog.ListPatientCategories(ctx)
	if err != nil {
		return "", err
	}
	serviceCats, err := u.catalog.ListServiceCategories(ctx)
	if err != nil {
		return "", err
	}

	template := "patient_category,service_category,discount_type,discount_value\n"
	if len(patientCats) > 0 && len(serviceCats) > 0 {
		template += fmt.Sprintf("%s,%s,percentage,10\n", patientCats[0].Name, serviceCats[0].Name)
		if len(patientCats) > 1 && len(serviceCats) > 1 {
			template += fmt.Sprintf("%s,%s,flat,50\n", patientCats[1].Name, serviceCats[1].Name)
		}
	} else {
		template += "charity,laboratory,percentage,10\n"
		template += "general,nursing,flat,50\n"
	}
	return template, nil
}

// normalizeDiscountKind accepts the legacy "fixed" spelling as flat.
func normalizeDiscountKind(kind string) (entities.DiscountKind, bool) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "percentage":
		return entities.DiscountKindPercentage, true
	case "flat", "fixed":
		return entities.DiscountKindFlat, true
	default:
		return "", false
	}
}

func parseCSVBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "1.0":
		return true
	default:
		return false
	}
}

// readCSVRows parses a CSV with a header row into name→value maps and checks
// the required columns are present.
func readCSVRows(r io.Reader, requiredColumns []string) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("file is empty or has no data rows")
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var missing []string
	for _, col := range requiredColumns {
		found := false
		for _, h := range header {
			if h == col {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
