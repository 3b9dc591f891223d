package service

import (
	"context"
	"time"

	"minvest/internal/apperrors"
	"minvest/internal/logger"
	"minvest/internal/models"
	"minvest/internal/rate"
	"minvest/internal/repository"
	"go.uber.org/zap"
)

// LedgerService owns every mutation of a subscription's two balances:
// the deposited principal and the accrued earnings.
type LedgerService interface {
	Subscribe(ctx context.Context, minerID, contractID int64, amount float64) (*models.MiningSubscription, error)
	GetSubscription(ctx context.Context, callerID int64, callerRole string, subID int64) (*models.MiningSubscription, error)
	ListSubscriptions(ctx context.Context, minerID int64) ([]models.MiningSubscription, error)
	RecordDeposit(ctx context.Context, subID int64, amount float64) (*models.MiningSubscription, error)
	AccrueEarnings(ctx context.Context, subID int64, days int) (*models.MiningSubscription, error)
	MutateBalance(ctx context.Context, subID int64, field models.BalanceField, mode models.MutationMode, amount float64) (*models.MiningSubscription, error)
	RequestWithdrawal(ctx context.Context, minerID int64, req models.WithdrawalRequest) (*models.Withdrawal, error)
	CancelSubscription(ctx context.Context, callerID int64, callerRole string, subID int64) error
}

type ledgerService struct {
	subRepo        repository.SubscriptionRepository
	contractRepo   repository.ContractRepository
	withdrawalRepo repository.WithdrawalRepository
}

func NewLedgerService(subRepo repository.SubscriptionRepository, contractRepo repository.ContractRepository, withdrawalRepo repository.WithdrawalRepository) LedgerService {
	return &ledgerService{
		subRepo:        subRepo,
		contractRepo:   contractRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

func (s *ledgerService) Subscribe(ctx context.Context, minerID, contractID int64, amount float64) (*models.MiningSubscription, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	contract, err := s.contractRepo.GetContractByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !contract.Active {
		return nil, apperrors.ErrContractNotFound
	}

	sub := &models.MiningSubscription{
		MinerID:         minerID,
		ContractID:      contractID,
		AmountDeposited: amount,
		Status:          models.SubscriptionActive,
		NextAccrualAt:   rate.NextAccrual(time.Now(), contract.Period),
	}

	if err := s.subRepo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *ledgerService) GetSubscription(ctx context.Context, callerID int64, callerRole string, subID int64) (*models.MiningSubscription, error) {
	sub, err := s.subRepo.GetSubscriptionByID(ctx, subID)
	if err != nil {
		return nil, err
	}
	if sub.MinerID != callerID && callerRole != models.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	return sub, nil
}

func (s *ledgerService) ListSubscriptions(ctx context.Context, minerID int64) ([]models.MiningSubscription, error) {
	return s.subRepo.ListByMiner(ctx, minerID)
}

func (s *ledgerService) RecordDeposit(ctx context.Context, subID int64, amount float64) (*models.MiningSubscription, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	return s.subRepo.MutateBalance(ctx, subID, models.FieldDeposit, models.ModeIncrease, amount)
}

// AccrueEarnings applies one accrual tick for the given number of days.
// It performs no deduplication; the caller is responsible for invoking it
// at most once per elapsed period.
func (s *ledgerService) AccrueEarnings(ctx context.Context, subID int64, days int) (*models.MiningSubscription, error) {
	if days <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	sub, err := s.subRepo.GetSubscriptionByID(ctx, subID)
	if err != nil {
		return nil, err
	}
	if sub.Status != models.SubscriptionActive {
		return nil, apperrors.ErrSubscriptionNotFound
	}

	contract, err := s.contractRepo.GetContractByID(ctx, sub.ContractID)
	if err != nil {
		return nil, err
	}

	delta := rate.Project(contract.PeriodReturn, contract.Period, sub.AmountDeposited, days)
	if delta == 0 {
		return sub, nil
	}

	updated, err := s.subRepo.MutateBalance(ctx, subID, models.FieldEarnings, models.ModeIncrease, delta)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("accrued earnings",
		zap.Int64("subscription", subID),
		zap.Int("days", days),
		zap.Float64("delta", delta))
	return updated, nil
}

// MutateBalance is the single parametrized ledger mutation. A decrease
// that would drive the balance below zero is rejected, never clamped.
func (s *ledgerService) MutateBalance(ctx context.Context, subID int64, field models.BalanceField, mode models.MutationMode, amount float64) (*models.MiningSubscription, error) {
	switch field {
	case models.FieldEarnings, models.FieldDeposit:
	default:
		return nil, apperrors.ErrInvalidRequest
	}

	switch mode {
	case models.ModeSet:
		if amount < 0 {
			return nil, apperrors.ErrInvalidAmount
		}
	case models.ModeIncrease, models.ModeDecrease:
		if amount <= 0 {
			return nil, apperrors.ErrInvalidAmount
		}
	default:
		return nil, apperrors.ErrInvalidRequest
	}

	return s.subRepo.MutateBalance(ctx, subID, field, mode, amount)
}

// RequestWithdrawal creates a pending withdrawal; earnings are debited
// only when an admin approves it.
func (s *ledgerService) RequestWithdrawal(ctx context.Context, minerID int64, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	sub, err := s.subRepo.GetSubscriptionByID(ctx, req.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.MinerID != minerID {
		return nil, apperrors.ErrForbidden
	}
	if req.Amount > sub.Earnings {
		return nil, apperrors.ErrInsufficientBalance
	}

	withdrawal := &models.Withdrawal{
		MinerID:        minerID,
		SubscriptionID: req.SubscriptionID,
		Amount:         req.Amount,
		Status:         models.WithdrawalPending,
		BankID:         req.BankID,
		WalletID:       req.WalletID,
		RequestedAt:    time.Now(),
	}

	if err := s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal); err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func (s *ledgerService) CancelSubscription(ctx context.Context, callerID int64, callerRole string, subID int64) error {
	sub, err := s.subRepo.GetSubscriptionByID(ctx, subID)
	if err != nil {
		return err
	}
	if sub.MinerID != callerID && callerRole != models.RoleAdmin {
		return apperrors.ErrForbidden
	}
	return s.subRepo.SetStatus(ctx, subID, models.SubscriptionCancelled)
}
