package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"minvest/internal/apperrors"
	service_mocks "minvest/internal/mocks/service_mocks"
	"minvest/internal/models"
	"github.com/golang/mock/gomock"
)

func TestHandler_CreateServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := service_mocks.NewMockCatalogService(ctrl)
	h := &Handler{catalogService: mockCatalog}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success defaults to active",
			body: `{"name":"antminer-s19","hashRate":110,"power":3250}`,
			mockSetup: func() {
				mockCatalog.EXPECT().CreateServer(gomock.Any(), gomock.AssignableToTypeOf(&models.MiningServer{})).DoAndReturn(
					func(_ interface{}, server *models.MiningServer) error {
						if !server.Active {
							t.Error("expected server to default to active")
						}
						return nil
					})
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "duplicate name conflicts",
			body: `{"name":"antminer-s19","hashRate":110,"power":3250}`,
			mockSetup: func() {
				mockCatalog.EXPECT().CreateServer(gomock.Any(), gomock.Any()).Return(apperrors.ErrServerExists)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "invalid json",
			body:           `{`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodPost, "/api/admin/servers", tt.body, 99, models.RoleAdmin)
			w := httptest.NewRecorder()
			h.CreateServer(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
			if err := resp.Body.Close(); err != nil {
				t.Errorf("failed to close body: %v", err)
			}
		})
	}
}

func TestHandler_UpdateServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := service_mocks.NewMockCatalogService(ctrl)
	h := &Handler{catalogService: mockCatalog}

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		mockCatalog.EXPECT().GetServer(gomock.Any(), int64(3)).
			Return(&models.MiningServer{ID: 3, Name: "antminer-s19", HashRate: 110, Power: 3250, Active: true}, nil)
		mockCatalog.EXPECT().UpdateServer(gomock.Any(), gomock.AssignableToTypeOf(&models.MiningServer{})).DoAndReturn(
			func(_ interface{}, server *models.MiningServer) error {
				if server.Name != "antminer-s19" {
					t.Errorf("name should be unchanged, got %s", server.Name)
				}
				if server.Active {
					t.Error("active flag should have been cleared")
				}
				return nil
			})

		req := authedRequest(http.MethodPatch, "/api/admin/servers/3", `{"active":false}`, 99, models.RoleAdmin)
		req = withURLID(req, "3")
		w := httptest.NewRecorder()
		h.UpdateServer(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
		}
	})

	t.Run("missing server", func(t *testing.T) {
		mockCatalog.EXPECT().GetServer(gomock.Any(), int64(9)).Return(nil, apperrors.ErrServerNotFound)

		req := authedRequest(http.MethodPatch, "/api/admin/servers/9", `{"active":false}`, 99, models.RoleAdmin)
		req = withURLID(req, "9")
		w := httptest.NewRecorder()
		h.UpdateServer(w, req)

		if w.Result().StatusCode != http.StatusNotFound {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusNotFound)
		}
	})
}

func TestHandler_ListServers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := service_mocks.NewMockCatalogService(ctrl)
	h := &Handler{catalogService: mockCatalog}

	tests := []struct {
		name           string
		role           string
		wantActiveOnly bool
	}{
		{name: "miners see only active servers", role: models.RoleMiner, wantActiveOnly: true},
		{name: "admins see everything", role: models.RoleAdmin, wantActiveOnly: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCatalog.EXPECT().ListServers(gomock.Any(), tt.wantActiveOnly).Return([]models.MiningServer{}, nil)

			req := authedRequest(http.MethodGet, "/api/servers", "", 1, tt.role)
			w := httptest.NewRecorder()
			h.ListServers(w, req)

			if w.Result().StatusCode != http.StatusOK {
				t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusOK)
			}
		})
	}
}

func TestHandler_CreateContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := service_mocks.NewMockCatalogService(ctrl)
	h := &Handler{catalogService: mockCatalog}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"serverId":1,"periodReturn":3,"period":"weekly"}`,
			mockSetup: func() {
				mockCatalog.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "zero return is a valid explicit value",
			body: `{"serverId":1,"periodReturn":0,"period":"daily"}`,
			mockSetup: func() {
				mockCatalog.EXPECT().CreateContract(gomock.Any(), gomock.AssignableToTypeOf(&models.MiningContract{})).DoAndReturn(
					func(_ interface{}, contract *models.MiningContract) error {
						if contract.PeriodReturn != 0 {
							t.Errorf("expected zero return, got %f", contract.PeriodReturn)
						}
						return nil
					})
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing return rejected",
			body:           `{"serverId":1,"period":"weekly"}`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown period rejected",
			body: `{"serverId":1,"periodReturn":3,"period":"yearly"}`,
			mockSetup: func() {
				mockCatalog.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(apperrors.ErrInvalidPeriod)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodPost, "/api/admin/contracts", tt.body, 99, models.RoleAdmin)
			w := httptest.NewRecorder()
			h.CreateContract(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
			if err := resp.Body.Close(); err != nil {
				t.Errorf("failed to close body: %v", err)
			}
		})
	}
}
