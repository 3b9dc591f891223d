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

type ServerRepository interface {
	CreateServer(ctx context.Context, server *models.MiningServer) error
	GetServerByID(ctx context.Context, id int64) (*models.MiningServer, error)
	GetServerByName(ctx context.Context, name string) (*models.MiningServer, error)
	UpdateServer(ctx context.Context, server *models.MiningServer) error
	ListServers(ctx context.Context, activeOnly bool) ([]models.MiningServer, error)
}

type serverRepo struct {
	db *sql.DB
}

func NewServerRepository(db *sql.DB) ServerRepository {
	return &serverRepo{db: db}
}

func (r *serverRepo) CreateServer(ctx context.Context, server *models.MiningServer) error {
	query := `INSERT INTO mining_servers (name, hash_rate, power, active)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		server.Name, server.HashRate, server.Power, server.Active,
	).Scan(&server.ID, &server.CreatedAt)
	if isUniqueViolation(err) {
		return apperrors.ErrServerExists
	}
	return err
}

func (r *serverRepo) GetServerByID(ctx context.Context, id int64) (*models.MiningServer, error) {
	query := `SELECT id, name, hash_rate, power, active, created_at FROM mining_servers WHERE id=$1`
	return r.scanServer(r.db.QueryRowContext(ctx, query, id))
}

func (r *serverRepo) GetServerByName(ctx context.Context, name string) (*models.MiningServer, error) {
	query := `SELECT id, name, hash_rate, power, active, created_at FROM mining_servers WHERE name=$1`
	return r.scanServer(r.db.QueryRowContext(ctx, query, name))
}

func (r *serverRepo) scanServer(row *sql.Row) (*models.MiningServer, error) {
	var s models.MiningServer
	err := row.Scan(&s.ID, &s.Name, &s.HashRate, &s.Power, &s.Active, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrServerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serverRepo) UpdateServer(ctx context.Context, server *models.MiningServer) error {
	query := `UPDATE mining_servers SET name=$1, hash_rate=$2, power=$3, active=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query,
		server.Name, server.HashRate, server.Power, server.Active, server.ID)
	if isUniqueViolation(err) {
		return apperrors.ErrServerExists
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrServerNotFound
	}
	return nil
}

func (r *serverRepo) ListServers(ctx context.Context, activeOnly bool) ([]models.MiningServer, error) {
	query := `SELECT id, name, hash_rate, power, active, created_at FROM mining_servers`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Log.Error("failed to query servers", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var servers []models.MiningServer
	for rows.Next() {
		var s models.MiningServer
		if err := rows.Scan(&s.ID, &s.Name, &s.HashRate, &s.Power, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		servers = append(servers, s)
	}
	return servers, rows.Err()
}
