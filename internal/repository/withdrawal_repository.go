package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"minvest/internal/apperrors"
	"minvest/internal/logger"
	"minvest/internal/models"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error
	GetWithdrawalByID(ctx context.Context, id int64) (*models.Withdrawal, error)
	ListByMiner(ctx context.Context, minerID int64) ([]models.Withdrawal, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.Withdrawal, int, error)
	SetStatus(ctx context.Context, id int64, status string, resolvedAt time.Time) error
	ApproveAndDebit(ctx context.Context, w *models.Withdrawal) error
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, miner_id, subscription_id, amount, status, bank_id, wallet_id, requested_at, resolved_at`

func (r *withdrawalRepo) CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error {
	query := `INSERT INTO withdrawals (miner_id, subscription_id, amount, status, bank_id, wallet_id, requested_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		w.MinerID, w.SubscriptionID, w.Amount, w.Status, w.BankID, w.WalletID, w.RequestedAt,
	).Scan(&w.ID)
}

func (r *withdrawalRepo) GetWithdrawalByID(ctx context.Context, id int64) (*models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id=$1`

	var w models.Withdrawal
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.MinerID, &w.SubscriptionID, &w.Amount, &w.Status,
		&w.BankID, &w.WalletID, &w.RequestedAt, &w.ResolvedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepo) SetStatus(ctx context.Context, id int64, status string, resolvedAt time.Time) error {
	query := `UPDATE withdrawals SET status=$1, resolved_at=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, resolvedAt, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrWithdrawalNotFound
	}
	return nil
}

// ApproveAndDebit marks the withdrawal successful and debits the
// subscription's earnings in one transaction. The balance guard on the
// UPDATE keeps earnings non-negative even if they shrank since the
// withdrawal was requested.
func (r *withdrawalRepo) ApproveAndDebit(ctx context.Context, w *models.Withdrawal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE mining_subscriptions
		SET earnings = earnings - $1,
		    updated_at = now()
		WHERE id = $2 AND earnings >= $1
	`, w.Amount, w.SubscriptionID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = apperrors.ErrInsufficientBalance
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE withdrawals SET status=$1, resolved_at=now() WHERE id=$2
	`, models.WithdrawalSuccessful, w.ID)
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

func (r *withdrawalRepo) ListByMiner(ctx context.Context, minerID int64) ([]models.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE miner_id=$1 ORDER BY requested_at DESC`

	rows, err := r.db.QueryContext(ctx, query, minerID)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	return scanWithdrawals(rows)
}

func (r *withdrawalRepo) ListAll(ctx context.Context, limit, offset int) ([]models.Withdrawal, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM withdrawals`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY requested_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, 0, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	withdrawals, err := scanWithdrawals(rows)
	return withdrawals, total, err
}

func scanWithdrawals(rows *sql.Rows) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	for rows.Next() {
		var w models.Withdrawal
		if err := rows.Scan(
			&w.ID, &w.MinerID, &w.SubscriptionID, &w.Amount, &w.Status,
			&w.BankID, &w.WalletID, &w.RequestedAt, &w.ResolvedAt); err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}
