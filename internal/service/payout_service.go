package service

import (
	"context"
	"errors"
	"strings"

	"minvest/internal/apperrors"
	"minvest/internal/models"
	"minvest/internal/repository"
)

type PayoutService interface {
	CreateBank(ctx context.Context, bank *models.Bank) error
	ListBanks(ctx context.Context, minerID int64) ([]models.Bank, error)
	SetBankActive(ctx context.Context, id int64, active bool) error

	CreateWallet(ctx context.Context, wallet *models.AdminWallet) error
	ListWallets(ctx context.Context) ([]models.AdminWallet, error)
	SetWalletActive(ctx context.Context, id int64, active bool) error
}

type payoutService struct {
	repo repository.PayoutRepository
}

func NewPayoutService(repo repository.PayoutRepository) PayoutService {
	return &payoutService{repo: repo}
}

func (s *payoutService) CreateBank(ctx context.Context, bank *models.Bank) error {
	bank.AccountNumber = strings.TrimSpace(bank.AccountNumber)
	if bank.AccountNumber == "" || bank.AccountName == "" || bank.BankName == "" {
		return apperrors.ErrInvalidRequest
	}

	existing, err := s.repo.GetBankByAccountNumber(ctx, bank.AccountNumber)
	if err != nil && !errors.Is(err, apperrors.ErrBankNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrBankExists
	}

	return s.repo.CreateBank(ctx, bank)
}

func (s *payoutService) ListBanks(ctx context.Context, minerID int64) ([]models.Bank, error) {
	return s.repo.ListBanksByMiner(ctx, minerID)
}

func (s *payoutService) SetBankActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetBankActive(ctx, id, active)
}

func (s *payoutService) CreateWallet(ctx context.Context, wallet *models.AdminWallet) error {
	wallet.Address = strings.TrimSpace(wallet.Address)
	if wallet.Address == "" || wallet.Currency == "" {
		return apperrors.ErrInvalidRequest
	}

	existing, err := s.repo.GetWalletByAddress(ctx, wallet.Address)
	if err != nil && !errors.Is(err, apperrors.ErrWalletNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrWalletExists
	}

	return s.repo.CreateWallet(ctx, wallet)
}

func (s *payoutService) ListWallets(ctx context.Context) ([]models.AdminWallet, error) {
	return s.repo.ListWallets(ctx)
}

func (s *payoutService) SetWalletActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetWalletActive(ctx, id, active)
}
