package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/indicator"
	"econgov-portal/internal/portal/dto"
	"econgov-portal/internal/portal/repository"
	"econgov-portal/pkg/common"
	"econgov-portal/pkg/format"
	"econgov-portal/pkg/logger"
	"econgov-portal/pkg/utils"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// DefaultPolicyRateSpread is added to headline inflation when an inflation
// row carries no explicit policy-rate metadata.
const DefaultPolicyRateSpread = 4.0

// DashboardService is the read side of the indicator store: it fetches
// bounded windows, reshapes metadata into chart-ready series, substitutes
// documented defaults for absent fields, and computes derived metrics.
type DashboardService interface {
	GetDebtOverview(ctx context.Context, periods int) (*dto.DebtOverview, error)
	GetInflationSeries(ctx context.Context, periods int) (*dto.InflationSeries, error)
	GetGDPSeries(ctx context.Context, periods int) (*dto.GDPSeries, error)
	GetExchangeRateSeries(ctx context.Context, periods int) (*dto.RateSeries, error)
	GetReservesSeries(ctx context.Context, periods int) (*dto.RateSeries, error)
	GetIMFDisbursements(ctx context.Context) (*dto.DisbursementSeries, error)
	GetCreditorBreakdown(ctx context.Context) (*dto.CreditorBreakdown, error)
	GetConditionalities(ctx context.Context) ([]dto.ConditionalityItem, error)
	GetMilestones(ctx context.Context) ([]dto.MilestoneItem, error)
	FlushCache(ctx context.Context)
}

// NewDashboardService creates a new dashboard service. The redis client is
// optional; when nil only the in-process cache is used.
func NewDashboardService(economicRepo repository.EconomicDataRepository, redisClient *redis.Client, log *logger.Logger, cacheTTL time.Duration) DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &dashboardService{
		economicRepo: economicRepo,
		redisClient:  redisClient,
		logger:       log,
		cacheTTL:     cacheTTL,
		memCache:     gocache.New(cacheTTL, 2*cacheTTL),
	}
}

type dashboardService struct {
	economicRepo repository.EconomicDataRepository
	redisClient  *redis.Client
	logger       *logger.Logger
	cacheTTL     time.Duration
	memCache     *gocache.Cache
}

// GetDebtOverview returns the total-debt series plus the derived external
// share of the latest observation. A zero total yields a zero share.
func (s *dashboardService) GetDebtOverview(ctx context.Context, periods int) (*dto.DebtOverview, error) {
	key := fmt.Sprintf("%sdebt:%d", common.DashboardCacheKeyPrefix, periods)
	var cachedOverview dto.DebtOverview
	if s.getCached(ctx, key, &cachedOverview) {
		return &cachedOverview, nil
	}

	rows, err := s.economicRepo.Series(ctx, indicator.TotalDebt, periods, true)
	if err != nil {
		return nil, err
	}

	overview := dto.DebtOverview{Points: []dto.DebtPoint{}}
	for _, row := range rows {
		meta := s.debtMetadata(row)
		point := dto.DebtPoint{
			Date:     row.Date.Format(utils.DayLayout),
			Label:    format.QuarterLabel(row.Date),
			Total:    row.Value,
			Domestic: meta.Domestic,
			External: meta.External,
		}
		// Rows without a split default to an all-domestic reading.
		if point.Domestic == 0 && point.External == 0 {
			point.Domestic = row.Value
		}
		overview.Points = append(overview.Points, point)
	}

	if len(rows) > 0 {
		last := rows[len(rows)-1]
		latestPoint := overview.Points[len(overview.Points)-1]
		overview.Latest = &latestPoint
		overview.ExternalShare = share(latestPoint.External, latestPoint.Total)
		overview.TotalFormatted = format.Currency("GHS", latestPoint.Total)
		overview.Source = last.Source
		overview.Unit = last.Unit
	}

	s.setCached(ctx, key, overview)
	return &overview, nil
}

// GetInflationSeries returns headline inflation with food/non-food sub-indices
// and the policy rate. Absent sub-indices default to the headline value;
// an absent policy rate defaults to headline plus DefaultPolicyRateSpread.
func (s *dashboardService) GetInflationSeries(ctx context.Context, periods int) (*dto.InflationSeries, error) {
	key := fmt.Sprintf("%sinflation:%d", common.DashboardCacheKeyPrefix, periods)
	var cachedSeries dto.InflationSeries
	if s.getCached(ctx, key, &cachedSeries) {
		return &cachedSeries, nil
	}

	rows, err := s.economicRepo.Series(ctx, indicator.InflationRate, periods, true)
	if err != nil {
		return nil, err
	}

	series := dto.InflationSeries{Points: []dto.InflationPoint{}, Trend: format.Trend(0)}
	for _, row := range rows {
		var meta indicator.InflationMetadata
		s.decodeMetadata(row, &meta)

		point := dto.InflationPoint{
			Date:       row.Date.Format(utils.DayLayout),
			Label:      format.MonthLabel(row.Date),
			Headline:   row.Value,
			Food:       valueOr(meta.Food, row.Value),
			NonFood:    valueOr(meta.NonFood, row.Value),
			PolicyRate: valueOr(meta.PolicyRate, row.Value+DefaultPolicyRateSpread),
		}
		series.Points = append(series.Points, point)
	}

	if n := len(series.Points); n > 0 {
		latest := series.Points[n-1]
		series.Latest = &latest
		if n > 1 {
			delta := latest.Headline - series.Points[n-2].Headline
			series.ChangeFormatted = format.SignedPercent(delta, 1)
			series.Trend = format.Trend(delta)
		}
	}

	s.setCached(ctx, key, series)
	return &series, nil
}

// GetGDPSeries returns quarterly GDP growth with the sector breakdown.
func (s *dashboardService) GetGDPSeries(ctx context.Context, periods int) (*dto.GDPSeries, error) {
	key := fmt.Sprintf("%sgdp:%d", common.DashboardCacheKeyPrefix, periods)
	var cachedSeries dto.GDPSeries
	if s.getCached(ctx, key, &cachedSeries) {
		return &cachedSeries, nil
	}

	rows, err := s.economicRepo.Series(ctx, indicator.GDPGrowth, periods, true)
	if err != nil {
		return nil, err
	}

	series := dto.GDPSeries{Points: []dto.GDPPoint{}, Trend: format.Trend(0)}
	for _, row := range rows {
		var meta indicator.GDPMetadata
		s.decodeMetadata(row, &meta)

		label := meta.Quarter
		if label == "" {
			label = format.QuarterLabel(row.Date)
		}
		series.Points = append(series.Points, dto.GDPPoint{
			Date:        row.Date.Format(utils.DayLayout),
			Label:       label,
			Growth:      row.Value,
			Agriculture: meta.Agriculture,
			Industry:    meta.Industry,
			Services:    meta.Services,
		})
	}

	if n := len(series.Points); n > 0 {
		latest := series.Points[n-1]
		series.Latest = &latest
		if n > 1 {
			series.Trend = format.Trend(latest.Growth - series.Points[n-2].Growth)
		}
	}

	s.setCached(ctx, key, series)
	return &series, nil
}

// GetExchangeRateSeries returns the GHS/USD reference rate series.
func (s *dashboardService) GetExchangeRateSeries(ctx context.Context, periods int) (*dto.RateSeries, error) {
	return s.rateSeries(ctx, indicator.ExchangeRate, "exchange-rate", periods, func(v float64) string {
		return fmt.Sprintf("GHS %.2f", v)
	})
}

// GetReservesSeries returns the gross international reserves series.
func (s *dashboardService) GetReservesSeries(ctx context.Context, periods int) (*dto.RateSeries, error) {
	return s.rateSeries(ctx, indicator.GrossReserves, "reserves", periods, func(v float64) string {
		return format.Currency("USD", v)
	})
}

func (s *dashboardService) rateSeries(ctx context.Context, ind, name string, periods int, formatLatest func(float64) string) (*dto.RateSeries, error) {
	key := fmt.Sprintf("%s%s:%d", common.DashboardCacheKeyPrefix, name, periods)
	var cachedSeries dto.RateSeries
	if s.getCached(ctx, key, &cachedSeries) {
		return &cachedSeries, nil
	}

	rows, err := s.economicRepo.Series(ctx, ind, periods, true)
	if err != nil {
		return nil, err
	}

	series := dto.RateSeries{Points: []dto.RatePoint{}}
	for _, row := range rows {
		series.Points = append(series.Points, dto.RatePoint{
			Date:  row.Date.Format(utils.DayLayout),
			Label: format.MonthLabel(row.Date),
			Value: row.Value,
		})
		series.Unit = row.Unit
	}
	if n := len(series.Points); n > 0 {
		latest := series.Points[n-1]
		series.Latest = &latest
		series.LatestFormatted = formatLatest(latest.Value)
	}

	s.setCached(ctx, key, series)
	return &series, nil
}

// GetIMFDisbursements returns all tranches in chronological order with the
// running total received.
func (s *dashboardService) GetIMFDisbursements(ctx context.Context) (*dto.DisbursementSeries, error) {
	key := common.DashboardCacheKeyPrefix + "imf-disbursements"
	var cachedSeries dto.DisbursementSeries
	if s.getCached(ctx, key, &cachedSeries) {
		return &cachedSeries, nil
	}

	rows, err := s.economicRepo.Series(ctx, indicator.IMFDisbursement, 0, true)
	if err != nil {
		return nil, err
	}

	series := dto.DisbursementSeries{Points: []dto.DisbursementPoint{}}
	var cumulative float64
	for _, row := range rows {
		var meta indicator.DisbursementMetadata
		s.decodeMetadata(row, &meta)

		cumulative += row.Value
		series.Points = append(series.Points, dto.DisbursementPoint{
			Date:       row.Date.Format(utils.DayLayout),
			Label:      format.MonthLabel(row.Date),
			Amount:     row.Value,
			Cumulative: cumulative,
			Tranche:    meta.Tranche,
			Milestone:  meta.Milestone,
			Status:     meta.Status,
		})
		series.Unit = row.Unit
	}
	series.TotalReceived = cumulative
	series.TotalFormatted = format.Currency("USD", cumulative)

	s.setCached(ctx, key, series)
	return &series, nil
}

// GetCreditorBreakdown returns the creditor composition at the most recent
// snapshot date. Every slice shares that date; shares sum to 100 unless the
// snapshot total is zero, in which case all shares are zero.
func (s *dashboardService) GetCreditorBreakdown(ctx context.Context) (*dto.CreditorBreakdown, error) {
	key := common.DashboardCacheKeyPrefix + "creditors"
	var cachedBreakdown dto.CreditorBreakdown
	if s.getCached(ctx, key, &cachedBreakdown) {
		return &cachedBreakdown, nil
	}

	rows, err := s.economicRepo.Snapshot(ctx, indicator.DebtByCreditor)
	if err != nil {
		return nil, err
	}

	breakdown := dto.CreditorBreakdown{Slices: []dto.CreditorSlice{}}
	var total float64
	for _, row := range rows {
		total += row.Value
	}
	for _, row := range rows {
		var meta indicator.CreditorMetadata
		s.decodeMetadata(row, &meta)

		creditor := meta.Creditor
		if creditor == "" {
			creditor = row.SeriesKey
		}
		breakdown.Slices = append(breakdown.Slices, dto.CreditorSlice{
			Creditor: creditor,
			Type:     meta.Type,
			Amount:   row.Value,
			Share:    share(row.Value, total),
		})
		breakdown.AsOf = row.Date.Format(utils.DayLayout)
		breakdown.Unit = row.Unit
	}
	breakdown.Total = total

	s.setCached(ctx, key, breakdown)
	return &breakdown, nil
}

// GetConditionalities lists all IMF program conditions. The row date is the
// deadline, not an observation time; co-dated conditions are distinguished by
// their series keys.
func (s *dashboardService) GetConditionalities(ctx context.Context) ([]dto.ConditionalityItem, error) {
	rows, err := s.economicRepo.Series(ctx, indicator.IMFConditionality, 0, true)
	if err != nil {
		return nil, err
	}

	items := []dto.ConditionalityItem{}
	for _, row := range rows {
		var meta indicator.ConditionalityMetadata
		s.decodeMetadata(row, &meta)

		item := dto.ConditionalityItem{
			Key:      row.SeriesKey,
			Title:    meta.Title,
			Category: meta.Category,
			Status:   meta.Status,
			Deadline: row.Date.Format(utils.DayLayout),
			Note:     meta.Note,
		}
		if item.Title == "" {
			item.Title = row.SeriesKey
		}
		if item.Status == "" {
			item.Status = "pending"
		}
		items = append(items, item)
	}
	return items, nil
}

// GetMilestones lists all IMF program milestones in chronological order.
func (s *dashboardService) GetMilestones(ctx context.Context) ([]dto.MilestoneItem, error) {
	rows, err := s.economicRepo.Series(ctx, indicator.IMFMilestone, 0, true)
	if err != nil {
		return nil, err
	}

	items := []dto.MilestoneItem{}
	for _, row := range rows {
		var meta indicator.MilestoneMetadata
		s.decodeMetadata(row, &meta)

		item := dto.MilestoneItem{
			Key:         row.SeriesKey,
			Title:       meta.Title,
			Status:      meta.Status,
			Date:        row.Date.Format(utils.DayLayout),
			Description: meta.Description,
		}
		if item.Title == "" {
			item.Title = row.SeriesKey
		}
		if item.Status == "" {
			item.Status = "pending"
		}
		items = append(items, item)
	}
	return items, nil
}

// FlushCache drops all cached chart payloads. Maintenance actions call this
// after mutating the store.
func (s *dashboardService) FlushCache(ctx context.Context) {
	s.memCache.Flush()
	if s.redisClient == nil {
		return
	}
	keys, err := s.redisClient.SMembers(ctx, common.DashboardCacheKeySet).Result()
	if err != nil {
		s.logger.Error("Failed to list cached dashboard keys", logger.ErrorField(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	keys = append(keys, common.DashboardCacheKeySet)
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("Failed to flush dashboard cache", logger.ErrorField(err))
	}
}

// decodeMetadata unpacks the metadata column into the typed variant. Absent
// or malformed metadata leaves the variant at its zero value so the caller's
// defaults apply; it never fails a read.
func (s *dashboardService) decodeMetadata(row entity.EconomicData, out interface{}) {
	if len(row.Metadata) == 0 {
		return
	}
	if err := json.Unmarshal(row.Metadata, out); err != nil {
		s.logger.Warn("Ignoring malformed indicator metadata",
			logger.StringField("indicator", row.Indicator),
			logger.StringField("series_key", row.SeriesKey),
			logger.ErrorField(err))
	}
}

func (s *dashboardService) debtMetadata(row entity.EconomicData) indicator.DebtMetadata {
	var meta indicator.DebtMetadata
	s.decodeMetadata(row, &meta)
	return meta
}

func (s *dashboardService) getCached(ctx context.Context, key string, out interface{}) bool {
	if raw, found := s.memCache.Get(key); found {
		if data, ok := raw.([]byte); ok && json.Unmarshal(data, out) == nil {
			return true
		}
	}
	if s.redisClient == nil {
		return false
	}
	data, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	s.memCache.Set(key, data, s.cacheTTL)
	return true
}

func (s *dashboardService) setCached(ctx context.Context, key string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	s.memCache.Set(key, data, s.cacheTTL)
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Error("Failed to cache dashboard payload", logger.StringField("key", key), logger.ErrorField(err))
		return
	}
	if err := s.redisClient.SAdd(ctx, common.DashboardCacheKeySet, key).Err(); err != nil {
		s.logger.Error("Failed to track dashboard cache key", logger.StringField("key", key), logger.ErrorField(err))
	}
}

// share computes a percentage share with an explicit zero-denominator guard.
func share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

func valueOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
