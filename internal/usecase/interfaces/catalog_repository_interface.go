package interfaces

import (
	"context"

	"hospital_billing/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for the service catalog
// and the two category tables. Lookups return zero-value entities when
// nothing matches; errors are reserved for storage failures.

type ICatalogRepository interface {
	ListServiceCategories(ctx context.Context) ([]entities.ServiceCategory, error)
	GetServiceCategoryByName(ctx context.Context, name string) (entities.ServiceCategory, error)
	CreateServiceCategory(ctx context.Context, c entities.ServiceCategory) (entities.ServiceCategory, error)

	ListPatientCategories(ctx context.Context) ([]entities.PatientCategory, error)
	GetPatientCategoryByName(ctx context.Context, name string) (entities.PatientCategory, error)
	CreatePatientCategory(ctx context.Context, c entities.PatientCategory) (entities.PatientCategory, error)

	CreateService(ctx context.Context, s entities.Service) (entities.Service, error)
	GetServiceByID(ctx context.Context, id string) (entities.Service, error)
	GetServicesByIDs(ctx context.Context, ids []string) ([]entities.Service, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	UpdateService(ctx context.Context, s entities.Service) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error
}
