package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"minvest/internal/apperrors"
	service_mocks "minvest/internal/mocks/service_mocks"
	"minvest/internal/models"
	"github.com/golang/mock/gomock"
)

func TestHandler_RequestWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := service_mocks.NewMockLedgerService(ctrl)
	h := &Handler{ledgerService: mockLedger}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"subscriptionId":5,"amount":40}`,
			mockSetup: func() {
				mockLedger.EXPECT().RequestWithdrawal(gomock.Any(), int64(1), models.WithdrawalRequest{SubscriptionID: 5, Amount: 40}).
					Return(&models.Withdrawal{ID: 9, MinerID: 1, SubscriptionID: 5, Amount: 40, Status: models.WithdrawalPending}, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "insufficient earnings",
			body: `{"subscriptionId":5,"amount":999}`,
			mockSetup: func() {
				mockLedger.EXPECT().RequestWithdrawal(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, apperrors.ErrInsufficientBalance)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "foreign subscription",
			body: `{"subscriptionId":5,"amount":10}`,
			mockSetup: func() {
				mockLedger.EXPECT().RequestWithdrawal(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, apperrors.ErrForbidden)
			},
			wantStatusCode: http.StatusForbidden,
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
			req := authedRequest(http.MethodPost, "/api/withdrawals", tt.body, 1, models.RoleMiner)
			w := httptest.NewRecorder()
			h.RequestWithdrawal(w, req)
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

func TestHandler_ListWithdrawals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWithdrawals := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawals}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockWithdrawals.EXPECT().ListForMiner(gomock.Any(), int64(1)).
					Return([]models.Withdrawal{{ID: 1, MinerID: 1, Amount: 40}}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "no withdrawals yields no content",
			mockSetup: func() {
				mockWithdrawals.EXPECT().ListForMiner(gomock.Any(), int64(1)).Return(nil, nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodGet, "/api/withdrawals", "", 1, models.RoleMiner)
			w := httptest.NewRecorder()
			h.ListWithdrawals(w, req)
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

func TestHandler_CancelWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWithdrawals := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawals}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockWithdrawals.EXPECT().Cancel(gomock.Any(), int64(1), int64(9)).
					Return(&models.Withdrawal{ID: 9, MinerID: 1, Status: models.WithdrawalCancelled}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "already resolved",
			mockSetup: func() {
				mockWithdrawals.EXPECT().Cancel(gomock.Any(), int64(1), int64(9)).
					Return(nil, apperrors.ErrInvalidStatus)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "not the owner",
			mockSetup: func() {
				mockWithdrawals.EXPECT().Cancel(gomock.Any(), int64(1), int64(9)).
					Return(nil, apperrors.ErrForbidden)
			},
			wantStatusCode: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodPost, "/api/withdrawals/9/cancel", "", 1, models.RoleMiner)
			req = withURLID(req, "9")
			w := httptest.NewRecorder()
			h.CancelWithdrawal(w, req)
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

func TestHandler_SetWithdrawalStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWithdrawals := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawals}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "approve",
			body: `{"status":"successful"}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SetStatus(gomock.Any(), int64(9), models.WithdrawalSuccessful).
					Return(&models.Withdrawal{ID: 9, Status: models.WithdrawalSuccessful}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "reject",
			body: `{"status":"failed"}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SetStatus(gomock.Any(), int64(9), models.WithdrawalFailed).
					Return(&models.Withdrawal{ID: 9, Status: models.WithdrawalFailed}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "invalid target status",
			body: `{"status":"pending"}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SetStatus(gomock.Any(), int64(9), models.WithdrawalPending).
					Return(nil, apperrors.ErrInvalidStatus)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "approval with short earnings conflicts",
			body: `{"status":"successful"}`,
			mockSetup: func() {
				mockWithdrawals.EXPECT().SetStatus(gomock.Any(), int64(9), models.WithdrawalSuccessful).
					Return(nil, apperrors.ErrInsufficientBalance)
			},
			wantStatusCode: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodPatch, "/api/withdrawals/admin/9/status", tt.body, 99, models.RoleAdmin)
			req = withURLID(req, "9")
			w := httptest.NewRecorder()
			h.SetWithdrawalStatus(w, req)
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

func TestHandler_ListAllWithdrawals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWithdrawals := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawals}

	mockWithdrawals.EXPECT().ListAll(gomock.Any(), 2, 4).
		Return([]models.Withdrawal{{ID: 5}, {ID: 6}}, 10, nil)

	req := authedRequest(http.MethodGet, "/api/admin/withdrawals?limit=2&offset=4", "", 99, models.RoleAdmin)
	w := httptest.NewRecorder()
	h.ListAllWithdrawals(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if env.Pagination == nil {
		t.Fatal("expected pagination block")
	}
	if env.Pagination.Total != 10 || env.Pagination.Limit != 2 || env.Pagination.Offset != 4 {
		t.Errorf("unexpected pagination: %+v", env.Pagination)
	}
	if err := resp.Body.Close(); err != nil {
		t.Errorf("failed to close body: %v", err)
	}
}
