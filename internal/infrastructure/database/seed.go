package database

import (
	"context"
	"log"
	"time"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var defaultServiceCategories = []entities.ServiceCategory{
	{Name: "nursing", DisplayName: "Nursing Care"},
	{Name: "room", DisplayName: "Room Charges"},
	{Name: "doctor", DisplayName: "Doctor Visits"},
	{Name: "laboratory", DisplayName: "Laboratory"},
	{Name: "radiology", DisplayName: "Radiology"},
	{Name: "pharmacy", DisplayName: "Pharmacy"},
	{Name: "equipment", DisplayName: "Equipment"},
	{Name: "procedures", DisplayName: "Procedures"},
	{Name: "surgery", DisplayName: "Surgery"},
}

var defaultPatientCategories = []entities.PatientCategory{
	{Name: "charity", DisplayName: "Charity"},
	{Name: "general_nc_a", DisplayName: "General NC-A"},
	{Name: "general_nc_b", DisplayName: "General NC-B"},
	{Name: "general", DisplayName: "General"},
	{Name: "deluxe", DisplayName: "Deluxe"},
	{Name: "super_deluxe", DisplayName: "Super Deluxe"},
}

// SeedDefaultCategories creates the built-in service and patient categories
// when they are missing. Existing rows are left untouched, so it is safe to
// run on every startup.
func SeedDefaultCategories(ctx context.Context, catalog interfaces.ICatalogRepository) error {
	now := time.Now().UTC()

	for _, c := range defaultServiceCategories {
		existing, err := catalog.GetServiceCategoryByName(ctx, c.Name)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			continue
		}
		c.ID = uuid.NewString()
		c.CreatedAt = now
		if _, err := catalog.CreateServiceCategory(ctx, c); err != nil {
			return err
		}
		log.Printf("[seed][database] created service category %s", c.Name)
	}

	for _, c := range defaultPatientCategories {
		existing, err := catalog.GetPatientCategoryByName(ctx, c.Name)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			continue
		}
		c.ID = uuid.NewString()
		c.CreatedAt = now
		if _, err := catalog.CreatePatientCategory(ctx, c); err != nil {
			return err
		}
		log.Printf("[seed][database] created patient category %s", c.Name)
	}

	return nil
}
