package invoices

import (
	"fmt"
	"math"
)

// NumberPrefix is the human-readable invoice number prefix.
const NumberPrefix = "CGAR"

// round2 rounds a dollar amount to cents. Every monetary component is
// rounded before summation so totals never drift by a cent.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// DailySubtotal returns the daily-rate component, included only when both the
// rate and the day count are positive.
func DailySubtotal(dailyRate *float64, dailyRateDays *int) float64 {
	if dailyRate == nil || dailyRateDays == nil {
		return 0
	}
	if *dailyRate <= 0 || *dailyRateDays <= 0 {
		return 0
	}
	return round2(*dailyRate * float64(*dailyRateDays))
}

// InvoiceTotal computes a billing period's total from the monthly rate, the
// optional daily-rate component, and up to three optional additional charges.
// Absent optionals count as zero.
func InvoiceTotal(monthlyRate float64, line1, line2, line3 *float64, dailyRate *float64, dailyRateDays *int) float64 {
	total := round2(monthlyRate) +
		DailySubtotal(dailyRate, dailyRateDays) +
		round2(deref(line1)) +
		round2(deref(line2)) +
		round2(deref(line3))
	return round2(total)
}

// FormatInvoiceNumber renders a number as CGAR-YYYY-NNN, zero-padding the
// sequence to at least three digits.
func FormatInvoiceNumber(year int, sequence int64) string {
	return fmt.Sprintf("%s-%04d-%03d", NumberPrefix, year, sequence)
}
