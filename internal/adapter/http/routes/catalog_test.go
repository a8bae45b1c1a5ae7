package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital_billing/internal/adapter/http/handlers"
	"hospital_billing/internal/adapter/http/handlers/mocks"
	"hospital_billing/internal/domain/entities"
	mock_interfaces "hospital_billing/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func catalogTestRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *mocks.MockICatalogUseCase, *mock_interfaces.MockITokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := mocks.NewMockICatalogUseCase(ctrl)
	tokens := mock_interfaces.NewMockITokenService(ctrl)

	r := gin.New()
	addCatalogRoutes(r.Group("/v1"), handlers.NewCatalogHandler(uc), tokens)
	return r, uc, tokens
}

func TestCatalogRoutes_RoleGating(t *testing.T) {
	admin := entities.Actor{UserID: "u-a", Username: "boss", Role: entities.RoleAdmin, Approved: true}
	manager := entities.Actor{UserID: "u-m", Username: "alice", Role: entities.RoleManager, Approved: true}
	regular := entities.Actor{UserID: "u-u", Username: "bob", Role: entities.RoleUser, Approved: true}

	serviceBody := `{"name":"CBC","category_name":"laboratory","cost_price":200,"mrp":300}`

	t.Run("manager can create services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, uc, tokens := catalogTestRouter(t, ctrl)

		tokens.EXPECT().Validate("manager-token").Return(manager, nil)
		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(entities.Service{ID: "svc-1", Name: "CBC"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(serviceBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer manager-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("manager can list discounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, uc, tokens := catalogTestRouter(t, ctrl)

		tokens.EXPECT().Validate("manager-token").Return(manager, nil)
		uc.EXPECT().ListDiscounts(gomock.Any()).Return([]entities.Discount{}, nil)
		uc.EXPECT().ListPatientCategories(gomock.Any()).Return([]entities.PatientCategory{}, nil)
		uc.EXPECT().ListServiceCategories(gomock.Any()).Return([]entities.ServiceCategory{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/discounts", nil)
		req.Header.Set("Authorization", "Bearer manager-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("admin can create services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, uc, tokens := catalogTestRouter(t, ctrl)

		tokens.EXPECT().Validate("admin-token").Return(admin, nil)
		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(entities.Service{ID: "svc-1", Name: "CBC"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(serviceBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer admin-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("regular user cannot create services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _, tokens := catalogTestRouter(t, ctrl)

		tokens.EXPECT().Validate("user-token").Return(regular, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(serviceBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer user-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("regular user can still read the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, uc, tokens := catalogTestRouter(t, ctrl)

		tokens.EXPECT().Validate("user-token").Return(regular, nil)
		uc.EXPECT().ListServices(gomock.Any()).Return([]entities.Service{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		req.Header.Set("Authorization", "Bearer user-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
