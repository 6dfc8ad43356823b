package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "GHS 644.6B", Currency("GHS", 644600000000))
	assert.Equal(t, "USD 360.0M", Currency("USD", 360000000))
	assert.Equal(t, "GHS 15.5K", Currency("GHS", 15500))
	assert.Equal(t, "GHS 15.80", Currency("GHS", 15.8))
	assert.Equal(t, "GHS 0", Currency("GHS", 0))
	assert.Equal(t, "GHS -1.2B", Currency("GHS", -1200000000))
	assert.Equal(t, "GHS 644.6B", Currency("", 644600000000), "empty symbol defaults")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "51.2%", Percent(51.23, 1))
	assert.Equal(t, "51%", Percent(51.23, 0))
	assert.Equal(t, "51%", Percent(51.23, -2), "negative decimals clamp to zero")
}

func TestSignedPercent(t *testing.T) {
	assert.Equal(t, "+2.1%", SignedPercent(2.1, 1))
	assert.Equal(t, "-0.6%", SignedPercent(-0.6, 1))
	assert.Equal(t, "+0.0%", SignedPercent(0, 1))
}

func TestTrend(t *testing.T) {
	assert.Equal(t, "positive", Trend(0.5))
	assert.Equal(t, "negative", Trend(-0.5))
	assert.Equal(t, "neutral", Trend(0))
}

func TestLabels(t *testing.T) {
	nov := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Nov 2025", MonthLabel(nov))
	assert.Equal(t, "Q4 2025", QuarterLabel(nov))
	assert.Equal(t, "01 Nov 2025", DayLabel(nov))

	feb := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Q1 2026", QuarterLabel(feb))

	assert.Equal(t, "-", MonthLabel(time.Time{}))
	assert.Equal(t, "-", QuarterLabel(time.Time{}))
	assert.Equal(t, "-", DayLabel(time.Time{}))
}
