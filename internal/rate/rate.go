package rate

import (
	"math"
	"time"

	"minvest/internal/models"
)

// PeriodDays maps a payout period label to its length in days. Unknown
// labels fall back to a daily cadence; contract validation rejects them
// before they can reach this package, so the fallback only matters for
// rows written outside the API.
func PeriodDays(period string) int {
	switch period {
	case models.PeriodDaily:
		return 1
	case models.PeriodWeekly:
		return 7
	case models.PeriodFortnightly:
		return 14
	case models.PeriodMonthly:
		return 30
	default:
		return 1
	}
}

// Daily converts a period return percentage into a daily fractional rate,
// e.g. 1.5 with period "weekly" gives 1.5/7/100.
func Daily(periodReturn float64, period string) float64 {
	return periodReturn / float64(PeriodDays(period)) / 100
}

// Project returns the earnings accrued on principal over days at the
// contract's rate, rounded half-up on the cent.
func Project(periodReturn float64, period string, principal float64, days int) float64 {
	return Round2(principal * Daily(periodReturn, period) * float64(days))
}

// NextAccrual advances t by one full payout period.
func NextAccrual(t time.Time, period string) time.Time {
	return t.AddDate(0, 0, PeriodDays(period))
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
