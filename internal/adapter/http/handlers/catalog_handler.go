package handlers

import (
	"errors"
	"net/http"

	request "hospital_billing/internal/adapter/http/dto/request"
	response "hospital_billing/internal/adapter/http/dto/response"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase"
	"hospital_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
	errMissingCSVFile        = pkg.NewDomainErrorSimple("MISSING_CSV_FILE", "A csv file upload is required", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for catalog administration: services,
// categories, discount rules and bulk CSV import.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.CreateService(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(svc))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	svc, err := h.usecase.UpdateService(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListServiceCategories(c *gin.Context) {
	cats, err := h.usecase.ListServiceCategories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceCategories(cats))
}

func (h *CatalogHandler) ListPatientCategories(c *gin.Context) {
	cats, err := h.usecase.ListPatientCategories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPatientCategories(cats))
}

func (h *CatalogHandler) ListDiscounts(c *gin.Context) {
	discounts, err := h.usecase.ListDiscounts(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	patientCats, err := h.usecase.ListPatientCategories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	serviceCats, err := h.usecase.ListServiceCategories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDiscounts(discounts, patientCats, serviceCats))
}

func (h *CatalogHandler) CreateDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.UpsertDiscount(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respondWithDiscount(c, http.StatusCreated, d)
}

func (h *CatalogHandler) UpdateDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.UpdateDiscount(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respondWithDiscount(c, http.StatusOK, d)
}

func (h *CatalogHandler) respondWithDiscount(c *gin.Context, status int, d entities.Discount) {
	patientCats, err := h.usecase.ListPatientCategories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	serviceCats, err := h.usecase.ListServiceCategories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromDiscount(d, patientCats, serviceCats))
}

func (h *CatalogHandler) DeleteDiscount(c *gin.Context) {
	if err := h.usecase.DeleteDiscount(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportServicesCSV bulk-creates services from a multipart csv upload. Row
// failures are reported per row, they do not abort the rest of the file.
func (h *CatalogHandler) ImportServicesCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(errMissingCSVFile.HTTPStatus, errMissingCSVFile.ToHTTPError())
		return
	}
	defer file.Close()

	result, err := h.usecase.ImportServicesCSV(c.Request.Context(), file)
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_CSV", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) ImportDiscountsCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(errMissingCSVFile.HTTPStatus, errMissingCSVFile.ToHTTPError())
		return
	}
	defer file.Close()

	result, err := h.usecase.ImportDiscountsCSV(c.Request.Context(), file)
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_CSV", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) ServicesCSVTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="services_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(h.usecase.ServicesCSVTemplate()))
}

func (h *CatalogHandler) DiscountsCSVTemplate(c *gin.Context) {
	template, err := h.usecase.DiscountsCSVTemplate(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="discounts_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(template))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceInput), errors.Is(err, usecase.ErrInvalidDiscountInput):
		return pkg.NewDomainError("INVALID_CATALOG_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceCategoryNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_CATEGORY_NOT_FOUND", "Service category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPatientCategoryNotFound):
		return pkg.NewDomainErrorSimple("PATIENT_CATEGORY_NOT_FOUND", "Patient category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDiscountNotFound):
		return pkg.NewDomainErrorSimple("DISCOUNT_NOT_FOUND", "Discount not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
