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

type ContractRepository interface {
	CreateContract(ctx context.Context, contract *models.MiningContract) error
	GetContractByID(ctx context.Context, id int64) (*models.MiningContract, error)
	UpdateContract(ctx context.Context, contract *models.MiningContract) error
	ListContracts(ctx context.Context, activeOnly bool) ([]models.MiningContract, error)
}

type contractRepo struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) ContractRepository {
	return &contractRepo{db: db}
}

func (r *contractRepo) CreateContract(ctx context.Context, contract *models.MiningContract) error {
	query := `INSERT INTO mining_contracts (server_id, period_return, period, active)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		contract.ServerID, contract.PeriodReturn, contract.Period, contract.Active,
	).Scan(&contract.ID, &contract.CreatedAt)
}

func (r *contractRepo) GetContractByID(ctx context.Context, id int64) (*models.MiningContract, error) {
	query := `SELECT id, server_id, period_return, period, active, created_at
			  FROM mining_contracts WHERE id=$1`

	var c models.MiningContract
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.ServerID, &c.PeriodReturn, &c.Period, &c.Active, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contractRepo) UpdateContract(ctx context.Context, contract *models.MiningContract) error {
	query := `UPDATE mining_contracts SET server_id=$1, period_return=$2, period=$3, active=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query,
		contract.ServerID, contract.PeriodReturn, contract.Period, contract.Active, contract.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrContractNotFound
	}
	return nil
}

func (r *contractRepo) ListContracts(ctx context.Context, activeOnly bool) ([]models.MiningContract, error) {
	query := `SELECT id, server_id, period_return, period, active, created_at FROM mining_contracts`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Log.Error("failed to query contracts", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var contracts []models.MiningContract
	for rows.Next() {
		var c models.MiningContract
		if err := rows.Scan(&c.ID, &c.ServerID, &c.PeriodReturn, &c.Period, &c.Active, &c.CreatedAt); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
