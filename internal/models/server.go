package models

import "time"

type MiningServer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	HashRate  float64   `json:"hashRate" db:"hash_rate"`
	Power     float64   `json:"power" db:"power"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
