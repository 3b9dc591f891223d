package service

import (
	"context"
	"errors"
	"time"

	"minvest/internal/apperrors"
	"minvest/internal/models"
	"minvest/internal/repository"
)

type KYCService interface {
	Submit(ctx context.Context, minerID int64, documentType, documentRef string) (*models.KYCRecord, error)
	Review(ctx context.Context, recordID int64, approve bool) (*models.KYCRecord, error)
	Get(ctx context.Context, minerID int64) (*models.KYCRecord, error)
}

type kycService struct {
	repo repository.KYCRepository
}

func NewKYCService(repo repository.KYCRepository) KYCService {
	return &kycService{repo: repo}
}

func (s *kycService) Submit(ctx context.Context, minerID int64, documentType, documentRef string) (*models.KYCRecord, error) {
	if documentType == "" || documentRef == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	existing, err := s.repo.GetRecordByMiner(ctx, minerID)
	if err != nil && !errors.Is(err, apperrors.ErrKYCNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status != models.KYCRejected {
		return nil, apperrors.ErrKYCAlreadySubmitted
	}

	rec := &models.KYCRecord{
		MinerID:      minerID,
		DocumentType: documentType,
		DocumentRef:  documentRef,
		Status:       models.KYCPending,
		SubmittedAt:  time.Now(),
	}

	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *kycService) Review(ctx context.Context, recordID int64, approve bool) (*models.KYCRecord, error) {
	rec, err := s.repo.GetRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if rec.Status != models.KYCPending {
		return nil, apperrors.ErrInvalidStatus
	}

	status := models.KYCRejected
	if approve {
		status = models.KYCApproved
	}

	if err := s.repo.SetStatus(ctx, recordID, status, time.Now()); err != nil {
		return nil, err
	}
	return s.repo.GetRecordByID(ctx, recordID)
}

func (s *kycService) Get(ctx context.Context, minerID int64) (*models.KYCRecord, error) {
	return s.repo.GetRecordByMiner(ctx, minerID)
}
