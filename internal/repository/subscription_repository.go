package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"minvest/internal/apperrors"
	"minvest/internal/logger"
	"minvest/internal/models"
	"go.uber.org/zap"
)

type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, sub *models.MiningSubscription) error
	GetSubscriptionByID(ctx context.Context, id int64) (*models.MiningSubscription, error)
	ListByMiner(ctx context.Context, minerID int64) ([]models.MiningSubscription, error)
	ListDue(ctx context.Context, now time.Time) ([]models.MiningSubscription, error)
	MutateBalance(ctx context.Context, id int64, field models.BalanceField, mode models.MutationMode, amount float64) (*models.MiningSubscription, error)
	AdvanceAccrual(ctx context.Context, id int64, next time.Time) error
	SetStatus(ctx context.Context, id int64, status string) error
}

type subscriptionRepo struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

const subscriptionColumns = `id, miner_id, contract_id, amount_deposited, earnings, status, next_accrual_at, created_at, updated_at`

func (r *subscriptionRepo) CreateSubscription(ctx context.Context, sub *models.MiningSubscription) error {
	query := `INSERT INTO mining_subscriptions (miner_id, contract_id, amount_deposited, earnings, status, next_accrual_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		sub.MinerID, sub.ContractID, sub.AmountDeposited, sub.Earnings, sub.Status, sub.NextAccrualAt,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

func (r *subscriptionRepo) GetSubscriptionByID(ctx context.Context, id int64) (*models.MiningSubscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM mining_subscriptions WHERE id=$1`

	var s models.MiningSubscription
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.MinerID, &s.ContractID, &s.AmountDeposited, &s.Earnings,
		&s.Status, &s.NextAccrualAt, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// MutateBalance applies one balance change as a single guarded UPDATE, so
// concurrent mutations of the same row cannot produce a lost update or a
// negative balance. The returned snapshot is the row as written.
func (r *subscriptionRepo) MutateBalance(ctx context.Context, id int64, field models.BalanceField, mode models.MutationMode, amount float64) (*models.MiningSubscription, error) {
	var column string
	switch field {
	case models.FieldEarnings:
		column = "earnings"
	case models.FieldDeposit:
		column = "amount_deposited"
	default:
		return nil, fmt.Errorf("unknown balance field %q", field)
	}

	var query string
	switch mode {
	case models.ModeSet:
		query = fmt.Sprintf(`UPDATE mining_subscriptions
			SET %[1]s = $1, updated_at = now()
			WHERE id = $2
			RETURNING `+subscriptionColumns, column)
	case models.ModeIncrease:
		query = fmt.Sprintf(`UPDATE mining_subscriptions
			SET %[1]s = %[1]s + $1, updated_at = now()
			WHERE id = $2
			RETURNING `+subscriptionColumns, column)
	case models.ModeDecrease:
		query = fmt.Sprintf(`UPDATE mining_subscriptions
			SET %[1]s = %[1]s - $1, updated_at = now()
			WHERE id = $2 AND %[1]s >= $1
			RETURNING `+subscriptionColumns, column)
	default:
		return nil, fmt.Errorf("unknown mutation mode %q", mode)
	}

	var s models.MiningSubscription
	err := r.db.QueryRowContext(ctx, query, amount, id).Scan(
		&s.ID, &s.MinerID, &s.ContractID, &s.AmountDeposited, &s.Earnings,
		&s.Status, &s.NextAccrualAt, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		if mode == models.ModeDecrease {
			if _, getErr := r.GetSubscriptionByID(ctx, id); getErr == nil {
				return nil, apperrors.ErrInsufficientBalance
			}
		}
		return nil, apperrors.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subscriptionRepo) AdvanceAccrual(ctx context.Context, id int64, next time.Time) error {
	query := `UPDATE mining_subscriptions SET next_accrual_at=$1, updated_at=now() WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, next, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}

func (r *subscriptionRepo) SetStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE mining_subscriptions SET status=$1, updated_at=now() WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}

func (r *subscriptionRepo) ListByMiner(ctx context.Context, minerID int64) ([]models.MiningSubscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM mining_subscriptions WHERE miner_id=$1 ORDER BY created_at DESC`
	return r.querySubscriptions(ctx, query, minerID)
}

func (r *subscriptionRepo) ListDue(ctx context.Context, now time.Time) ([]models.MiningSubscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM mining_subscriptions
			  WHERE status = 'active' AND next_accrual_at <= $1 ORDER BY next_accrual_at`
	return r.querySubscriptions(ctx, query, now)
}

func (r *subscriptionRepo) querySubscriptions(ctx context.Context, query string, args ...any) ([]models.MiningSubscription, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query subscriptions", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var subs []models.MiningSubscription
	for rows.Next() {
		var s models.MiningSubscription
		if err := rows.Scan(
			&s.ID, &s.MinerID, &s.ContractID, &s.AmountDeposited, &s.Earnings,
			&s.Status, &s.NextAccrualAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
