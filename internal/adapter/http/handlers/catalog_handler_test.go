package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital_billing/internal/adapter/http/handlers/mocks"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown category maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrServiceCategoryNotFound)

		body := `{"name":"CBC","category_name":"nope","cost_price":200,"mrp":300}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(entities.Service{ID: "svc-1", Name: "CBC", CategoryName: "laboratory", MRP: 300, VisitsPerDay: 1}, nil)

		body := `{"name":"CBC","category_name":"laboratory","cost_price":200,"mrp":300}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "svc-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_DeleteService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/services/:id", h.DeleteService)

		uc.EXPECT().DeleteService(gomock.Any(), "missing").Return(usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/services/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/services/:id", h.DeleteService)

		uc.EXPECT().DeleteService(gomock.Any(), "svc-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/services/svc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_CreateDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.POST("/v1/discounts", h.CreateDiscount)

	d := entities.Discount{ID: "d-1", PatientCategoryID: "pc-charity", ServiceCategoryID: "sc-lab", Kind: entities.DiscountKindPercentage, Value: 15}
	uc.EXPECT().UpsertDiscount(gomock.Any(), gomock.Any()).Return(d, nil)
	uc.EXPECT().ListPatientCategories(gomock.Any()).Return([]entities.PatientCategory{{ID: "pc-charity", Name: "charity", DisplayName: "Charity"}}, nil)
	uc.EXPECT().ListServiceCategories(gomock.Any()).Return([]entities.ServiceCategory{{ID: "sc-lab", Name: "laboratory", DisplayName: "Laboratory"}}, nil)

	body := `{"patient_category":"charity","service_category":"laboratory","discount_type":"percentage","discount_value":15}`
	req := httptest.NewRequest(http.MethodPost, "/v1/discounts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["patient_category"] != "Charity" || resp["service_category"] != "Laboratory" {
		t.Fatalf("expected display names joined in, got: %s", w.Body.String())
	}
}

func TestCatalogHandler_ImportServicesCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services/import", h.ImportServicesCSV)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/import", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upload is forwarded and results returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services/import", h.ImportServicesCSV)

		uc.EXPECT().ImportServicesCSV(gomock.Any(), gomock.Any()).Return(usecase.ImportResult{SuccessCount: 2, Errors: []string{"Row 4: invalid cost_price or mrp"}}, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "services.csv")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		_, _ = part.Write([]byte("name,category_name,cost_price,mrp,is_daily_charge\n"))
		_ = mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/v1/services/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp usecase.ImportResult
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.SuccessCount != 2 || len(resp.Errors) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_ServicesCSVTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/services/import/template", h.ServicesCSVTemplate)

	uc.EXPECT().ServicesCSVTemplate().Return("name,category_name,cost_price,mrp,is_daily_charge,visits_per_day\n")

	req := httptest.NewRequest(http.MethodGet, "/v1/services/import/template", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "services_template.csv") {
		t.Fatalf("unexpected content disposition: %q", got)
	}
	if !strings.HasPrefix(w.Body.String(), "name,category_name") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
