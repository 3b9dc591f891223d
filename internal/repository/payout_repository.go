package repository

import (
	"context"
	"database/sql"
	"errors"

	"minvest/internal/apperrors"
	"minvest/internal/logger"
	"minvest/internal/models"
	"go.uber.org/zap"
)

type PayoutRepository interface {
	CreateBank(ctx context.Context, bank *models.Bank) error
	GetBankByID(ctx context.Context, id int64) (*models.Bank, error)
	GetBankByAccountNumber(ctx context.Context, accountNumber string) (*models.Bank, error)
	ListBanksByMiner(ctx context.Context, minerID int64) ([]models.Bank, error)
	SetBankActive(ctx context.Context, id int64, active bool) error

	CreateWallet(ctx context.Context, wallet *models.AdminWallet) error
	GetWalletByID(ctx context.Context, id int64) (*models.AdminWallet, error)
	GetWalletByAddress(ctx context.Context, address string) (*models.AdminWallet, error)
	ListWallets(ctx context.Context) ([]models.AdminWallet, error)
	SetWalletActive(ctx context.Context, id int64, active bool) error
}

type payoutRepo struct {
	db *sql.DB
}

func NewPayoutRepository(db *sql.DB) PayoutRepository {
	return &payoutRepo{db: db}
}

func (r *payoutRepo) CreateBank(ctx context.Context, bank *models.Bank) error {
	query := `INSERT INTO banks (miner_id, bank_name, account_number, account_name, active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		bank.MinerID, bank.BankName, bank.AccountNumber, bank.AccountName, bank.Active,
	).Scan(&bank.ID, &bank.CreatedAt)
	if isUniqueViolation(err) {
		return apperrors.ErrBankExists
	}
	return err
}

func (r *payoutRepo) GetBankByID(ctx context.Context, id int64) (*models.Bank, error) {
	query := `SELECT id, miner_id, bank_name, account_number, account_name, active, created_at
			  FROM banks WHERE id=$1`
	return r.scanBank(r.db.QueryRowContext(ctx, query, id))
}

func (r *payoutRepo) GetBankByAccountNumber(ctx context.Context, accountNumber string) (*models.Bank, error) {
	query := `SELECT id, miner_id, bank_name, account_number, account_name, active, created_at
			  FROM banks WHERE account_number=$1`
	return r.scanBank(r.db.QueryRowContext(ctx, query, accountNumber))
}

func (r *payoutRepo) scanBank(row *sql.Row) (*models.Bank, error) {
	var b models.Bank
	err := row.Scan(&b.ID, &b.MinerID, &b.BankName, &b.AccountNumber, &b.AccountName, &b.Active, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrBankNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *payoutRepo) ListBanksByMiner(ctx context.Context, minerID int64) ([]models.Bank, error) {
	query := `SELECT id, miner_id, bank_name, account_number, account_name, active, created_at
			  FROM banks WHERE miner_id=$1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, minerID)
	if err != nil {
		logger.Log.Error("failed to query banks", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var banks []models.Bank
	for rows.Next() {
		var b models.Bank
		if err := rows.Scan(&b.ID, &b.MinerID, &b.BankName, &b.AccountNumber, &b.AccountName, &b.Active, &b.CreatedAt); err != nil {
			return nil, err
		}
		banks = append(banks, b)
	}
	return banks, rows.Err()
}

func (r *payoutRepo) SetBankActive(ctx context.Context, id int64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE banks SET active=$1 WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrBankNotFound
	}
	return nil
}

func (r *payoutRepo) CreateWallet(ctx context.Context, wallet *models.AdminWallet) error {
	query := `INSERT INTO admin_wallets (address, currency, active)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		wallet.Address, wallet.Currency, wallet.Active,
	).Scan(&wallet.ID, &wallet.CreatedAt)
	if isUniqueViolation(err) {
		return apperrors.ErrWalletExists
	}
	return err
}

func (r *payoutRepo) GetWalletByID(ctx context.Context, id int64) (*models.AdminWallet, error) {
	query := `SELECT id, address, currency, active, created_at FROM admin_wallets WHERE id=$1`
	return r.scanWallet(r.db.QueryRowContext(ctx, query, id))
}

func (r *payoutRepo) GetWalletByAddress(ctx context.Context, address string) (*models.AdminWallet, error) {
	query := `SELECT id, address, currency, active, created_at FROM admin_wallets WHERE address=$1`
	return r.scanWallet(r.db.QueryRowContext(ctx, query, address))
}

func (r *payoutRepo) scanWallet(row *sql.Row) (*models.AdminWallet, error) {
	var w models.AdminWallet
	err := row.Scan(&w.ID, &w.Address, &w.Currency, &w.Active, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWalletNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *payoutRepo) ListWallets(ctx context.Context) ([]models.AdminWallet, error) {
	query := `SELECT id, address, currency, active, created_at FROM admin_wallets ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Log.Error("failed to query wallets", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var wallets []models.AdminWallet
	for rows.Next() {
		var w models.AdminWallet
		if err := rows.Scan(&w.ID, &w.Address, &w.Currency, &w.Active, &w.CreatedAt); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}

func (r *payoutRepo) SetWalletActive(ctx context.Context, id int64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE admin_wallets SET active=$1 WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrWalletNotFound
	}
	return nil
}
