package service

import (
	"context"
	"time"

	"minvest/internal/apperrors"
	"minvest/internal/logger"
	"minvest/internal/models"
	"minvest/internal/repository"
	"go.uber.org/zap"
)

// WithdrawalService drives the withdrawal lifecycle after a request has
// been created: admin resolution and miner cancellation. Transitions are
// one-directional; nothing leaves a terminal state.
type WithdrawalService interface {
	SetStatus(ctx context.Context, withdrawalID int64, status string) (*models.Withdrawal, error)
	Cancel(ctx context.Context, minerID, withdrawalID int64) (*models.Withdrawal, error)
	ListForMiner(ctx context.Context, minerID int64) ([]models.Withdrawal, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.Withdrawal, int, error)
}

type withdrawalService struct {
	repo repository.WithdrawalRepository
}

func NewWithdrawalService(repo repository.WithdrawalRepository) WithdrawalService {
	return &withdrawalService{repo: repo}
}

func (s *withdrawalService) SetStatus(ctx context.Context, withdrawalID int64, status string) (*models.Withdrawal, error) {
	if status != models.WithdrawalSuccessful && status != models.WithdrawalFailed {
		return nil, apperrors.ErrInvalidStatus
	}

	w, err := s.repo.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if w.Status != models.WithdrawalPending {
		return nil, apperrors.ErrInvalidStatus
	}

	if status == models.WithdrawalSuccessful {
		// Approval debits the subscription's earnings atomically with
		// the status change.
		if err := s.repo.ApproveAndDebit(ctx, w); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.SetStatus(ctx, withdrawalID, status, time.Now()); err != nil {
			return nil, err
		}
	}

	logger.Log.Info("withdrawal resolved",
		zap.Int64("withdrawal", withdrawalID),
		zap.String("status", status))

	return s.repo.GetWithdrawalByID(ctx, withdrawalID)
}

func (s *withdrawalService) Cancel(ctx context.Context, minerID, withdrawalID int64) (*models.Withdrawal, error) {
	w, err := s.repo.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if w.MinerID != minerID {
		return nil, apperrors.ErrForbidden
	}
	if w.Status != models.WithdrawalPending {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.repo.SetStatus(ctx, withdrawalID, models.WithdrawalCancelled, time.Now()); err != nil {
		return nil, err
	}
	return s.repo.GetWithdrawalByID(ctx, withdrawalID)
}

func (s *withdrawalService) ListForMiner(ctx context.Context, minerID int64) ([]models.Withdrawal, error) {
	return s.repo.ListByMiner(ctx, minerID)
}

func (s *withdrawalService) ListAll(ctx context.Context, limit, offset int) ([]models.Withdrawal, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListAll(ctx, limit, offset)
}
