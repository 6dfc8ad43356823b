package format

import (
	"fmt"
	"math"
	"time"
)

// Currency abbreviates a monetary amount with a unit suffix, one decimal:
// 644600000000 -> "GHS 644.6B". Zero renders as "GHS 0".
func Currency(symbol string, amount float64) string {
	if symbol == "" {
		symbol = "GHS"
	}
	abs := math.Abs(amount)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%s %.1fB", symbol, amount/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s %.1fM", symbol, amount/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s %.1fK", symbol, amount/1e3)
	case abs == 0:
		return fmt.Sprintf("%s 0", symbol)
	default:
		return fmt.Sprintf("%s %.2f", symbol, amount)
	}
}

// Percent formats a percentage value with the given number of decimals.
func Percent(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, value)
}

// SignedPercent formats a delta with an explicit sign: "+2.1%", "-0.4%".
func SignedPercent(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%+.*f%%", decimals, value)
}

// Trend buckets a delta for styling purposes.
func Trend(delta float64) string {
	switch {
	case delta > 0:
		return "positive"
	case delta < 0:
		return "negative"
	default:
		return "neutral"
	}
}

// MonthLabel renders a chart axis label like "Nov 2025".
func MonthLabel(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2006")
}

// QuarterLabel renders a chart axis label like "Q4 2025".
func QuarterLabel(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", quarter, t.Year())
}

// DayLabel renders a full date label like "01 Nov 2025".
func DayLabel(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}
