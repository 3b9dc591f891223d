package service

import (
	"context"
	"errors"
	"testing"

	"minvest/internal/apperrors"
	"minvest/internal/mocks/repository_mocks"
	"minvest/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestCatalogService_CreateServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		server    *models.MiningServer
		mockSetup func(m *repository_mocks.MockServerRepository)
		wantErr   error
	}{
		{
			name:   "successful creation",
			server: &models.MiningServer{Name: "antminer-s19", HashRate: 110, Power: 3250, Active: true},
			mockSetup: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByName(ctx, "antminer-s19").Return(nil, apperrors.ErrServerNotFound).Times(1)
				m.EXPECT().CreateServer(ctx, gomock.AssignableToTypeOf(&models.MiningServer{})).Return(nil).Times(1)
			},
			wantErr: nil,
		},
		{
			name:   "name is trimmed before lookup",
			server: &models.MiningServer{Name: "  whatsminer-m30  ", HashRate: 88, Power: 3400, Active: true},
			mockSetup: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByName(ctx, "whatsminer-m30").Return(nil, apperrors.ErrServerNotFound).Times(1)
				m.EXPECT().CreateServer(ctx, gomock.Any()).Return(nil).Times(1)
			},
			wantErr: nil,
		},
		{
			name:      "blank name rejected",
			server:    &models.MiningServer{Name: "   "},
			mockSetup: func(m *repository_mocks.MockServerRepository) {},
			wantErr:   apperrors.ErrInvalidRequest,
		},
		{
			name:   "duplicate name conflicts",
			server: &models.MiningServer{Name: "antminer-s19"},
			mockSetup: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByName(ctx, "antminer-s19").Return(&models.MiningServer{ID: 1, Name: "antminer-s19"}, nil).Times(1)
			},
			wantErr: apperrors.ErrServerExists,
		},
		{
			name:   "lookup error is propagated",
			server: &models.MiningServer{Name: "antminer-s19"},
			mockSetup: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByName(ctx, "antminer-s19").Return(nil, errors.New("db error")).Times(1)
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serverRepo := repository_mocks.NewMockServerRepository(ctrl)
			tt.mockSetup(serverRepo)

			svc := NewCatalogService(serverRepo, repository_mocks.NewMockContractRepository(ctrl))
			err := svc.CreateServer(ctx, tt.server)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestCatalogService_UpdateServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		server    *models.MiningServer
		mockSetup func(m *repository_mocks.MockServerRepository)
		wantErr   error
	}{
		{
			name:   "rename to a free name",
			server: &models.MiningServer{ID: 1, Name: "antminer-s21"},
			mockSetup: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByName(ctx, "antminer-s21").Return(nil, apperrors.ErrServerNotFound).Times(1)
				m.EXPECT().UpdateServer(ctx, gomock.Any()).Return(nil).Times(1)
			},
			wantErr: nil,
		},
		{
			name:   "keeping own name is not a conflict",
			server: &models.MiningServer{ID: 1, Name: "antminer-s19"},
			mockSetup: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByName(ctx, "antminer-s19").Return(&models.MiningServer{ID: 1, Name: "antminer-s19"}, nil).Times(1)
				m.EXPECT().UpdateServer(ctx, gomock.Any()).Return(nil).Times(1)
			},
			wantErr: nil,
		},
		{
			name:   "taking another server's name conflicts",
			server: &models.MiningServer{ID: 2, Name: "antminer-s19"},
			mockSetup: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByName(ctx, "antminer-s19").Return(&models.MiningServer{ID: 1, Name: "antminer-s19"}, nil).Times(1)
			},
			wantErr: apperrors.ErrServerExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serverRepo := repository_mocks.NewMockServerRepository(ctrl)
			tt.mockSetup(serverRepo)

			svc := NewCatalogService(serverRepo, repository_mocks.NewMockContractRepository(ctrl))
			err := svc.UpdateServer(ctx, tt.server)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestCatalogService_CreateContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name       string
		contract   *models.MiningContract
		mockServer func(m *repository_mocks.MockServerRepository)
		mockCreate func(m *repository_mocks.MockContractRepository)
		wantErr    error
	}{
		{
			name:     "successful creation",
			contract: &models.MiningContract{ServerID: 1, PeriodReturn: 3, Period: models.PeriodWeekly, Active: true},
			mockServer: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByID(ctx, int64(1)).Return(&models.MiningServer{ID: 1, Active: true}, nil).Times(1)
			},
			mockCreate: func(m *repository_mocks.MockContractRepository) {
				m.EXPECT().CreateContract(ctx, gomock.Any()).Return(nil).Times(1)
			},
			wantErr: nil,
		},
		{
			name:       "negative return rejected",
			contract:   &models.MiningContract{ServerID: 1, PeriodReturn: -1, Period: models.PeriodWeekly},
			mockServer: func(m *repository_mocks.MockServerRepository) {},
			mockCreate: func(m *repository_mocks.MockContractRepository) {},
			wantErr:    apperrors.ErrInvalidPeriodReturn,
		},
		{
			name:       "unknown period rejected",
			contract:   &models.MiningContract{ServerID: 1, PeriodReturn: 3, Period: "yearly"},
			mockServer: func(m *repository_mocks.MockServerRepository) {},
			mockCreate: func(m *repository_mocks.MockContractRepository) {},
			wantErr:    apperrors.ErrInvalidPeriod,
		},
		{
			name:     "inactive server rejected",
			contract: &models.MiningContract{ServerID: 2, PeriodReturn: 3, Period: models.PeriodMonthly},
			mockServer: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByID(ctx, int64(2)).Return(&models.MiningServer{ID: 2, Active: false}, nil).Times(1)
			},
			mockCreate: func(m *repository_mocks.MockContractRepository) {},
			wantErr:    apperrors.ErrServerNotFound,
		},
		{
			name:     "missing server rejected",
			contract: &models.MiningContract{ServerID: 99, PeriodReturn: 3, Period: models.PeriodDaily},
			mockServer: func(m *repository_mocks.MockServerRepository) {
				m.EXPECT().GetServerByID(ctx, int64(99)).Return(nil, apperrors.ErrServerNotFound).Times(1)
			},
			mockCreate: func(m *repository_mocks.MockContractRepository) {},
			wantErr:    apperrors.ErrServerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serverRepo := repository_mocks.NewMockServerRepository(ctrl)
			contractRepo := repository_mocks.NewMockContractRepository(ctrl)
			tt.mockServer(serverRepo)
			tt.mockCreate(contractRepo)

			svc := NewCatalogService(serverRepo, contractRepo)
			err := svc.CreateContract(ctx, tt.contract)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestCatalogService_ListServers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverRepo := repository_mocks.NewMockServerRepository(ctrl)
	s := &catalogService{serverRepo: serverRepo}

	servers := []models.MiningServer{{ID: 1, Name: "antminer-s19", Active: true}}
	serverRepo.EXPECT().ListServers(gomock.Any(), true).Return(servers, nil)

	got, err := s.ListServers(context.Background(), true)
	assert.NoError(t, err)
	assert.Equal(t, servers, got)
}
