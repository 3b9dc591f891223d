package models

import "time"

type Bank struct {
	ID            int64     `json:"id" db:"id"`
	MinerID       int64     `json:"-" db:"miner_id"`
	BankName      string    `json:"bankName" db:"bank_name"`
	AccountNumber string    `json:"accountNumber" db:"account_number"`
	AccountName   string    `json:"accountName" db:"account_name"`
	Active        bool      `json:"active" db:"active"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type AdminWallet struct {
	ID        int64     `json:"id" db:"id"`
	Address   string    `json:"address" db:"address"`
	Currency  string    `json:"currency" db:"currency"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
