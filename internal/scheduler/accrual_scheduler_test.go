package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"minvest/internal/mocks/repository_mocks"
	service_mocks "minvest/internal/mocks/service_mocks"
	"minvest/internal/models"
	"github.com/golang/mock/gomock"
)

func TestAccrualScheduler_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	ctx := context.Background()

	t.Run("due subscription accrues one full period and advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		subRepo := repository_mocks.NewMockSubscriptionRepository(ctrl)
		contractRepo := repository_mocks.NewMockContractRepository(ctrl)
		ledger := service_mocks.NewMockLedgerService(ctrl)

		dueAt := now.Add(-time.Hour)
		subRepo.EXPECT().ListDue(ctx, now).Return([]models.MiningSubscription{
			{ID: 1, ContractID: 10, AmountDeposited: 1000, Status: models.SubscriptionActive, NextAccrualAt: dueAt},
		}, nil)
		contractRepo.EXPECT().GetContractByID(ctx, int64(10)).Return(&models.MiningContract{
			ID:           10,
			PeriodReturn: 3,
			Period:       models.PeriodWeekly,
			Active:       true,
		}, nil)
		ledger.EXPECT().AccrueEarnings(ctx, int64(1), 7).Return(&models.MiningSubscription{ID: 1, Earnings: 30}, nil)
		subRepo.EXPECT().AdvanceAccrual(ctx, int64(1), dueAt.AddDate(0, 0, 7)).Return(nil)

		s := NewAccrualScheduler(ledger, subRepo, contractRepo, "@hourly")
		s.Sweep(ctx)
	})

	t.Run("missing contract skips the subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		subRepo := repository_mocks.NewMockSubscriptionRepository(ctrl)
		contractRepo := repository_mocks.NewMockContractRepository(ctrl)
		ledger := service_mocks.NewMockLedgerService(ctrl)

		subRepo.EXPECT().ListDue(ctx, now).Return([]models.MiningSubscription{
			{ID: 1, ContractID: 10},
			{ID: 2, ContractID: 11, NextAccrualAt: now.Add(-time.Hour)},
		}, nil)
		contractRepo.EXPECT().GetContractByID(ctx, int64(10)).Return(nil, errors.New("missing"))
		contractRepo.EXPECT().GetContractByID(ctx, int64(11)).Return(&models.MiningContract{
			ID:           11,
			PeriodReturn: 1,
			Period:       models.PeriodDaily,
			Active:       true,
		}, nil)
		ledger.EXPECT().AccrueEarnings(ctx, int64(2), 1).Return(&models.MiningSubscription{ID: 2}, nil)
		subRepo.EXPECT().AdvanceAccrual(ctx, int64(2), gomock.Any()).Return(nil)

		s := NewAccrualScheduler(ledger, subRepo, contractRepo, "@hourly")
		s.Sweep(ctx)
	})

	t.Run("accrual error does not advance the timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		subRepo := repository_mocks.NewMockSubscriptionRepository(ctrl)
		contractRepo := repository_mocks.NewMockContractRepository(ctrl)
		ledger := service_mocks.NewMockLedgerService(ctrl)

		subRepo.EXPECT().ListDue(ctx, now).Return([]models.MiningSubscription{
			{ID: 3, ContractID: 12},
		}, nil)
		contractRepo.EXPECT().GetContractByID(ctx, int64(12)).Return(&models.MiningContract{
			ID:           12,
			PeriodReturn: 2,
			Period:       models.PeriodMonthly,
			Active:       true,
		}, nil)
		ledger.EXPECT().AccrueEarnings(ctx, int64(3), 30).Return(nil, errors.New("db error"))

		s := NewAccrualScheduler(ledger, subRepo, contractRepo, "@hourly")
		s.Sweep(ctx)
	})

	t.Run("list error aborts the sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		subRepo := repository_mocks.NewMockSubscriptionRepository(ctrl)
		contractRepo := repository_mocks.NewMockContractRepository(ctrl)
		ledger := service_mocks.NewMockLedgerService(ctrl)

		subRepo.EXPECT().ListDue(ctx, now).Return(nil, errors.New("db error"))

		s := NewAccrualScheduler(ledger, subRepo, contractRepo, "@hourly")
		s.Sweep(ctx)
	})
}

func TestAccrualScheduler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subRepo := repository_mocks.NewMockSubscriptionRepository(ctrl)
	contractRepo := repository_mocks.NewMockContractRepository(ctrl)
	ledger := service_mocks.NewMockLedgerService(ctrl)

	s := NewAccrualScheduler(ledger, subRepo, contractRepo, "@hourly")
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	s.Stop()
}

func TestAccrualScheduler_StartRejectsBadSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewAccrualScheduler(
		service_mocks.NewMockLedgerService(ctrl),
		repository_mocks.NewMockSubscriptionRepository(ctrl),
		repository_mocks.NewMockContractRepository(ctrl),
		"not a schedule",
	)
	if err := s.Start(context.Background()); err == nil {
		t.Fatal("expected an error for an invalid schedule")
	}
}
