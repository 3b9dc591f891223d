package scheduler

import (
	"context"

	"minvest/internal/logger"
	"minvest/internal/rate"
	"minvest/internal/repository"
	"minvest/internal/service"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AccrualScheduler sweeps subscriptions whose accrual period has elapsed
// and applies one full period of earnings to each. Advancing
// next_accrual_at in the same sweep is what keeps a subscription from
// being credited twice for the same period.
type AccrualScheduler struct {
	ledger       service.LedgerService
	subRepo      repository.SubscriptionRepository
	contractRepo repository.ContractRepository
	cron         *cron.Cron
	schedule     string
}

func NewAccrualScheduler(ledger service.LedgerService, subRepo repository.SubscriptionRepository, contractRepo repository.ContractRepository, schedule string) *AccrualScheduler {
	return &AccrualScheduler{
		ledger:       ledger,
		subRepo:      subRepo,
		contractRepo: contractRepo,
		cron:         cron.New(),
		schedule:     schedule,
	}
}

func (s *AccrualScheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Log.Info("accrual scheduler started", zap.String("schedule", s.schedule))
	return nil
}

func (s *AccrualScheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.Log.Info("accrual scheduler stopped")
}

func (s *AccrualScheduler) Sweep(ctx context.Context) {
	now := timeNow()

	due, err := s.subRepo.ListDue(ctx, now)
	if err != nil {
		logger.Log.Error("failed to list due subscriptions", zap.Error(err))
		return
	}

	for _, sub := range due {
		contract, err := s.contractRepo.GetContractByID(ctx, sub.ContractID)
		if err != nil {
			logger.Log.Warn("skipping subscription with missing contract",
				zap.Int64("subscription", sub.ID), zap.Error(err))
			continue
		}

		days := rate.PeriodDays(contract.Period)
		if _, err := s.ledger.AccrueEarnings(ctx, sub.ID, days); err != nil {
			logger.Log.Error("failed to accrue earnings",
				zap.Int64("subscription", sub.ID), zap.Error(err))
			continue
		}

		next := rate.NextAccrual(sub.NextAccrualAt, contract.Period)
		if err := s.subRepo.AdvanceAccrual(ctx, sub.ID, next); err != nil {
			logger.Log.Error("failed to advance accrual timestamp",
				zap.Int64("subscription", sub.ID), zap.Error(err))
		}
	}
}
