package models

import "time"

const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
)

// BalanceField selects which subscription balance a ledger mutation targets.
type BalanceField string

const (
	FieldEarnings BalanceField = "earnings"
	FieldDeposit  BalanceField = "deposit"
)

// MutationMode is the unified vocabulary for balance mutations; the HTTP
// layer translates the legacy set/add/subtract and credit/debit action
// types onto it.
type MutationMode string

const (
	ModeSet      MutationMode = "set"
	ModeIncrease MutationMode = "increase"
	ModeDecrease MutationMode = "decrease"
)

type MiningSubscription struct {
	ID              int64     `json:"id" db:"id"`
	MinerID         int64     `json:"minerId" db:"miner_id"`
	ContractID      int64     `json:"contractId" db:"contract_id"`
	AmountDeposited float64   `json:"amountDeposited" db:"amount_deposited"`
	Earnings        float64   `json:"earnings" db:"earnings"`
	Status          string    `json:"status" db:"status"`
	NextAccrualAt   time.Time `json:"nextAccrualAt" db:"next_accrual_at"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
