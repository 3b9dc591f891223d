package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"minvest/internal/apperrors"
	"minvest/internal/models"
)

type KYCRepository interface {
	CreateRecord(ctx context.Context, rec *models.KYCRecord) error
	GetRecordByID(ctx context.Context, id int64) (*models.KYCRecord, error)
	GetRecordByMiner(ctx context.Context, minerID int64) (*models.KYCRecord, error)
	SetStatus(ctx context.Context, id int64, status string, reviewedAt time.Time) error
}

type kycRepo struct {
	db *sql.DB
}

func NewKYCRepository(db *sql.DB) KYCRepository {
	return &kycRepo{db: db}
}

func (r *kycRepo) CreateRecord(ctx context.Context, rec *models.KYCRecord) error {
	query := `INSERT INTO kyc_records (miner_id, document_type, document_ref, status, submitted_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rec.MinerID, rec.DocumentType, rec.DocumentRef, rec.Status, rec.SubmittedAt,
	).Scan(&rec.ID)
}

func (r *kycRepo) GetRecordByID(ctx context.Context, id int64) (*models.KYCRecord, error) {
	query := `SELECT id, miner_id, document_type, document_ref, status, submitted_at, reviewed_at
			  FROM kyc_records WHERE id=$1`
	return r.scanRecord(r.db.QueryRowContext(ctx, query, id))
}

func (r *kycRepo) GetRecordByMiner(ctx context.Context, minerID int64) (*models.KYCRecord, error) {
	query := `SELECT id, miner_id, document_type, document_ref, status, submitted_at, reviewed_at
			  FROM kyc_records WHERE miner_id=$1 ORDER BY submitted_at DESC LIMIT 1`
	return r.scanRecord(r.db.QueryRowContext(ctx, query, minerID))
}

func (r *kycRepo) scanRecord(row *sql.Row) (*models.KYCRecord, error) {
	var rec models.KYCRecord
	err := row.Scan(&rec.ID, &rec.MinerID, &rec.DocumentType, &rec.DocumentRef, &rec.Status, &rec.SubmittedAt, &rec.ReviewedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrKYCNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *kycRepo) SetStatus(ctx context.Context, id int64, status string, reviewedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE kyc_records SET status=$1, reviewed_at=$2 WHERE id=$3`, status, reviewedAt, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrKYCNotFound
	}
	return nil
}
