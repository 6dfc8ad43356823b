package common

const (
	DashboardCacheKeyPrefix = "dashboard:chart:"
	DashboardCacheKeySet    = "dashboard:chart:keys"

	DefaultChartPeriods = 8
	MaxChartPeriods     = 48
)
