package handlers

import (
	"minvest/internal/service"
)

type Handler struct {
	userService       service.UserService
	catalogService    service.CatalogService
	ledgerService     service.LedgerService
	withdrawalService service.WithdrawalService
	payoutService     service.PayoutService
	kycService        service.KYCService
	secretKey         string
	production        bool
}

func NewHandler(
	userService service.UserService,
	catalogService service.CatalogService,
	ledgerService service.LedgerService,
	withdrawalService service.WithdrawalService,
	payoutService service.PayoutService,
	kycService service.KYCService,
	secretKey string,
	production bool,
) *Handler {
	return &Handler{
		userService:       userService,
		catalogService:    catalogService,
		ledgerService:     ledgerService,
		withdrawalService: withdrawalService,
		payoutService:     payoutService,
		kycService:        kycService,
		secretKey:         secretKey,
		production:        production,
	}
}
