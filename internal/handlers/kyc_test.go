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

func TestHandler_SubmitKYC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKYC := service_mocks.NewMockKYCService(ctrl)
	h := &Handler{kycService: mockKYC}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"documentType":"passport","documentRef":"AB1234567"}`,
			mockSetup: func() {
				mockKYC.EXPECT().Submit(gomock.Any(), int64(1), "passport", "AB1234567").
					Return(&models.KYCRecord{ID: 1, Status: models.KYCPending}, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "already submitted",
			body: `{"documentType":"passport","documentRef":"AB1234567"}`,
			mockSetup: func() {
				mockKYC.EXPECT().Submit(gomock.Any(), int64(1), "passport", "AB1234567").
					Return(nil, apperrors.ErrKYCAlreadySubmitted)
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
			req := authedRequest(http.MethodPost, "/api/kyc", tt.body, 1, models.RoleMiner)
			w := httptest.NewRecorder()
			h.SubmitKYC(w, req)
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

func TestHandler_ReviewKYC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKYC := service_mocks.NewMockKYCService(ctrl)
	h := &Handler{kycService: mockKYC}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "approve",
			body: `{"approve":true}`,
			mockSetup: func() {
				mockKYC.EXPECT().Review(gomock.Any(), int64(2), true).
					Return(&models.KYCRecord{ID: 2, Status: models.KYCApproved}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "record already resolved",
			body: `{"approve":false}`,
			mockSetup: func() {
				mockKYC.EXPECT().Review(gomock.Any(), int64(2), false).
					Return(nil, apperrors.ErrInvalidStatus)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "missing record",
			body: `{"approve":true}`,
			mockSetup: func() {
				mockKYC.EXPECT().Review(gomock.Any(), int64(2), true).
					Return(nil, apperrors.ErrKYCNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodPatch, "/api/admin/kyc/2", tt.body, 99, models.RoleAdmin)
			req = withURLID(req, "2")
			w := httptest.NewRecorder()
			h.ReviewKYC(w, req)
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

func TestHandler_GetKYC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKYC := service_mocks.NewMockKYCService(ctrl)
	h := &Handler{kycService: mockKYC}

	mockKYC.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, apperrors.ErrKYCNotFound)

	req := authedRequest(http.MethodGet, "/api/kyc", "", 1, models.RoleMiner)
	w := httptest.NewRecorder()
	h.GetKYC(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}
