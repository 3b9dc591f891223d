package service

import (
	"context"
	"errors"
	"strings"

	"minvest/internal/apperrors"
	"minvest/internal/models"
	"minvest/internal/repository"
)

// CatalogService manages the admin-owned catalog of mining servers and
// contracts.
type CatalogService interface {
	CreateServer(ctx context.Context, server *models.MiningServer) error
	UpdateServer(ctx context.Context, server *models.MiningServer) error
	GetServer(ctx context.Context, id int64) (*models.MiningServer, error)
	ListServers(ctx context.Context, activeOnly bool) ([]models.MiningServer, error)

	CreateContract(ctx context.Context, contract *models.MiningContract) error
	UpdateContract(ctx context.Context, contract *models.MiningContract) error
	GetContract(ctx context.Context, id int64) (*models.MiningContract, error)
	ListContracts(ctx context.Context, activeOnly bool) ([]models.MiningContract, error)
}

type catalogService struct {
	serverRepo   repository.ServerRepository
	contractRepo repository.ContractRepository
}

func NewCatalogService(serverRepo repository.ServerRepository, contractRepo repository.ContractRepository) CatalogService {
	return &catalogService{
		serverRepo:   serverRepo,
		contractRepo: contractRepo,
	}
}

func (s *catalogService) CreateServer(ctx context.Context, server *models.MiningServer) error {
	server.Name = strings.TrimSpace(server.Name)
	if server.Name == "" {
		return apperrors.ErrInvalidRequest
	}

	// Pre-check gives a clean conflict instead of a raw constraint error;
	// the unique index on name remains the authoritative guard.
	existing, err := s.serverRepo.GetServerByName(ctx, server.Name)
	if err != nil && !errors.Is(err, apperrors.ErrServerNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrServerExists
	}

	return s.serverRepo.CreateServer(ctx, server)
}

func (s *catalogService) UpdateServer(ctx context.Context, server *models.MiningServer) error {
	server.Name = strings.TrimSpace(server.Name)
	if server.Name == "" {
		return apperrors.ErrInvalidRequest
	}

	existing, err := s.serverRepo.GetServerByName(ctx, server.Name)
	if err != nil && !errors.Is(err, apperrors.ErrServerNotFound) {
		return err
	}
	if existing != nil && existing.ID != server.ID {
		return apperrors.ErrServerExists
	}

	return s.serverRepo.UpdateServer(ctx, server)
}

func (s *catalogService) GetServer(ctx context.Context, id int64) (*models.MiningServer, error) {
	return s.serverRepo.GetServerByID(ctx, id)
}

func (s *catalogService) ListServers(ctx context.Context, activeOnly bool) ([]models.MiningServer, error) {
	return s.serverRepo.ListServers(ctx, activeOnly)
}

func (s *catalogService) CreateContract(ctx context.Context, contract *models.MiningContract) error {
	if err := s.validateContract(ctx, contract); err != nil {
		return err
	}
	return s.contractRepo.CreateContract(ctx, contract)
}

func (s *catalogService) UpdateContract(ctx context.Context, contract *models.MiningContract) error {
	if err := s.validateContract(ctx, contract); err != nil {
		return err
	}
	return s.contractRepo.UpdateContract(ctx, contract)
}

func (s *catalogService) validateContract(ctx context.Context, contract *models.MiningContract) error {
	if contract.PeriodReturn < 0 {
		return apperrors.ErrInvalidPeriodReturn
	}
	if !models.ValidPeriod(contract.Period) {
		return apperrors.ErrInvalidPeriod
	}

	server, err := s.serverRepo.GetServerByID(ctx, contract.ServerID)
	if err != nil {
		return err
	}
	if !server.Active {
		return apperrors.ErrServerNotFound
	}
	return nil
}

func (s *catalogService) GetContract(ctx context.Context, id int64) (*models.MiningContract, error) {
	return s.contractRepo.GetContractByID(ctx, id)
}

func (s *catalogService) ListContracts(ctx context.Context, activeOnly bool) ([]models.MiningContract, error) {
	return s.contractRepo.ListContracts(ctx, activeOnly)
}
