package service

import (
	"context"
	"testing"
	"time"

	"minvest/internal/apperrors"
	"minvest/internal/mocks/repository_mocks"
	"minvest/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestKYCService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		minerID   int64
		docType   string
		docRef    string
		mockSetup func(m *repository_mocks.MockKYCRepository)
		wantErr   error
	}{
		{
			name:    "first submission goes pending",
			minerID: 1,
			docType: "passport",
			docRef:  "AB1234567",
			mockSetup: func(m *repository_mocks.MockKYCRepository) {
				m.EXPECT().GetRecordByMiner(ctx, int64(1)).Return(nil, apperrors.ErrKYCNotFound).Times(1)
				m.EXPECT().CreateRecord(ctx, gomock.AssignableToTypeOf(&models.KYCRecord{})).DoAndReturn(
					func(_ context.Context, rec *models.KYCRecord) error {
						assert.Equal(t, models.KYCPending, rec.Status)
						assert.WithinDuration(t, time.Now(), rec.SubmittedAt, time.Second)
						return nil
					}).Times(1)
			},
			wantErr: nil,
		},
		{
			name:      "empty document rejected",
			minerID:   1,
			docType:   "passport",
			docRef:    "",
			mockSetup: func(m *repository_mocks.MockKYCRepository) {},
			wantErr:   apperrors.ErrInvalidRequest,
		},
		{
			name:    "pending submission blocks a second one",
			minerID: 2,
			docType: "passport",
			docRef:  "AB1234567",
			mockSetup: func(m *repository_mocks.MockKYCRepository) {
				m.EXPECT().GetRecordByMiner(ctx, int64(2)).Return(&models.KYCRecord{ID: 1, Status: models.KYCPending}, nil).Times(1)
			},
			wantErr: apperrors.ErrKYCAlreadySubmitted,
		},
		{
			name:    "approved record blocks resubmission",
			minerID: 3,
			docType: "passport",
			docRef:  "AB1234567",
			mockSetup: func(m *repository_mocks.MockKYCRepository) {
				m.EXPECT().GetRecordByMiner(ctx, int64(3)).Return(&models.KYCRecord{ID: 2, Status: models.KYCApproved}, nil).Times(1)
			},
			wantErr: apperrors.ErrKYCAlreadySubmitted,
		},
		{
			name:    "rejected record allows a retry",
			minerID: 4,
			docType: "drivers_license",
			docRef:  "DL-99",
			mockSetup: func(m *repository_mocks.MockKYCRepository) {
				m.EXPECT().GetRecordByMiner(ctx, int64(4)).Return(&models.KYCRecord{ID: 3, Status: models.KYCRejected}, nil).Times(1)
				m.EXPECT().CreateRecord(ctx, gomock.Any()).Return(nil).Times(1)
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository_mocks.NewMockKYCRepository(ctrl)
			tt.mockSetup(repo)

			svc := NewKYCService(repo)
			_, err := svc.Submit(ctx, tt.minerID, tt.docType, tt.docRef)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestKYCService_Review(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		approve   bool
		mockSetup func(m *repository_mocks.MockKYCRepository)
		want      string
		wantErr   error
	}{
		{
			name:    "approval",
			approve: true,
			mockSetup: func(m *repository_mocks.MockKYCRepository) {
				m.EXPECT().GetRecordByID(ctx, int64(1)).Return(&models.KYCRecord{ID: 1, Status: models.KYCPending}, nil).Times(1)
				m.EXPECT().SetStatus(ctx, int64(1), models.KYCApproved, gomock.Any()).Return(nil).Times(1)
				m.EXPECT().GetRecordByID(ctx, int64(1)).Return(&models.KYCRecord{ID: 1, Status: models.KYCApproved}, nil).Times(1)
			},
			want:    models.KYCApproved,
			wantErr: nil,
		},
		{
			name:    "rejection",
			approve: false,
			mockSetup: func(m *repository_mocks.MockKYCRepository) {
				m.EXPECT().GetRecordByID(ctx, int64(1)).Return(&models.KYCRecord{ID: 1, Status: models.KYCPending}, nil).Times(1)
				m.EXPECT().SetStatus(ctx, int64(1), models.KYCRejected, gomock.Any()).Return(nil).Times(1)
				m.EXPECT().GetRecordByID(ctx, int64(1)).Return(&models.KYCRecord{ID: 1, Status: models.KYCRejected}, nil).Times(1)
			},
			want:    models.KYCRejected,
			wantErr: nil,
		},
		{
			name:    "reviewing a resolved record fails",
			approve: true,
			mockSetup: func(m *repository_mocks.MockKYCRepository) {
				m.EXPECT().GetRecordByID(ctx, int64(1)).Return(&models.KYCRecord{ID: 1, Status: models.KYCApproved}, nil).Times(1)
			},
			wantErr: apperrors.ErrInvalidStatus,
		},
		{
			name:    "missing record",
			approve: true,
			mockSetup: func(m *repository_mocks.MockKYCRepository) {
				m.EXPECT().GetRecordByID(ctx, int64(1)).Return(nil, apperrors.ErrKYCNotFound).Times(1)
			},
			wantErr: apperrors.ErrKYCNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository_mocks.NewMockKYCRepository(ctrl)
			tt.mockSetup(repo)

			svc := NewKYCService(repo)
			got, err := svc.Review(ctx, 1, tt.approve)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got.Status)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestKYCService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockKYCRepository(ctrl)
	repo.EXPECT().GetRecordByMiner(gomock.Any(), int64(1)).Return(&models.KYCRecord{ID: 1, MinerID: 1}, nil)

	svc := NewKYCService(repo)
	rec, err := svc.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
}
