package models

import "time"

const (
	WithdrawalPending    = "pending"
	WithdrawalSuccessful = "successful"
	WithdrawalFailed     = "failed"
	WithdrawalCancelled  = "cancelled"
)

type Withdrawal struct {
	ID             int64     `json:"id" db:"id"`
	MinerID        int64     `json:"-" db:"miner_id"`
	SubscriptionID int64     `json:"subscriptionId" db:"subscription_id"`
	Amount         float64   `json:"amount" db:"amount"`
	Status         string    `json:"status" db:"status"`
	BankID         *int64    `json:"bankId,omitempty" db:"bank_id"`
	WalletID       *int64    `json:"walletId,omitempty" db:"wallet_id"`
	RequestedAt    time.Time `json:"requestedAt" db:"requested_at"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty" db:"resolved_at"`
}

type WithdrawalRequest struct {
	SubscriptionID int64   `json:"subscriptionId"`
	Amount         float64 `json:"amount"`
	BankID         *int64  `json:"bankId,omitempty"`
	WalletID       *int64  `json:"walletId,omitempty"`
}
