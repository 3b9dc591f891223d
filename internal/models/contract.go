package models

import "time"

const (
	PeriodDaily       = "daily"
	PeriodWeekly      = "weekly"
	PeriodFortnightly = "fortnightly"
	PeriodMonthly     = "monthly"
)

// ValidPeriod reports whether p is one of the supported payout cadences.
func ValidPeriod(p string) bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodFortnightly, PeriodMonthly:
		return true
	}
	return false
}

type MiningContract struct {
	ID           int64     `json:"id" db:"id"`
	ServerID     int64     `json:"serverId" db:"server_id"`
	PeriodReturn float64   `json:"periodReturn" db:"period_return"`
	Period       string    `json:"period" db:"period"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
