package service

import (
	"context"
	"testing"
	"time"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/indicator"
	"econgov-portal/internal/portal/repository"
	"econgov-portal/pkg/logger"
	"econgov-portal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.EconomicData{},
		&entity.Category{},
		&entity.Article{},
		&entity.Event{},
		&entity.Staff{},
		&entity.Program{},
		&entity.Resource{},
	))
	return db
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	return log
}

func newDashboardFixture(t *testing.T) (DashboardService, repository.EconomicDataRepository) {
	t.Helper()
	repo := repository.NewEconomicDataRepository(setupTestDB(t))
	svc := NewDashboardService(repo, nil, testLogger(t), time.Minute)
	return svc, repo
}

func mustUpsert(t *testing.T, repo repository.EconomicDataRepository, obs *entity.EconomicData) {
	t.Helper()
	require.NoError(t, repo.Upsert(context.Background(), obs))
}

func debtRow(date string, total, domestic, external float64) *entity.EconomicData {
	raw, _ := indicator.EncodeMetadata(&indicator.DebtMetadata{
		Domestic: domestic, External: external, Currency: "GHS",
	})
	return &entity.EconomicData{
		Indicator: indicator.TotalDebt,
		Date:      utils.MustDay(date),
		Source:    "Ministry of Finance",
		Value:     total,
		Unit:      "GHS",
		Metadata:  raw,
	}
}

func TestGetDebtOverviewExternalShare(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	mustUpsert(t, repo, debtRow("2025-08-01", 608500000000, 300100000000, 308400000000))
	mustUpsert(t, repo, debtRow("2025-11-01", 644600000000, 314400000000, 330200000000))

	overview, err := svc.GetDebtOverview(context.Background(), 8)
	require.NoError(t, err)
	require.NotNil(t, overview.Latest)

	assert.Equal(t, 644600000000.0, overview.Latest.Total)
	assert.Equal(t, 330200000000.0, overview.Latest.External)
	assert.InDelta(t, 330200000000.0/644600000000.0*100, overview.ExternalShare, 0.01)
	assert.Equal(t, "Ministry of Finance", overview.Source)
	assert.NotEmpty(t, overview.TotalFormatted)
}

func TestGetDebtOverviewZeroTotal(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	mustUpsert(t, repo, debtRow("2025-11-01", 0, 0, 0))

	overview, err := svc.GetDebtOverview(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, 0.0, overview.ExternalShare, "zero total must not divide")
}

func TestGetDebtOverviewMissingSplitDefaultsDomestic(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	mustUpsert(t, repo, &entity.EconomicData{
		Indicator: indicator.TotalDebt,
		Date:      utils.MustDay("2025-11-01"),
		Source:    "Ministry of Finance",
		Value:     500,
		Unit:      "GHS",
	})

	overview, err := svc.GetDebtOverview(context.Background(), 8)
	require.NoError(t, err)
	require.NotNil(t, overview.Latest)
	assert.Equal(t, 500.0, overview.Latest.Domestic)
	assert.Equal(t, 0.0, overview.Latest.External)
	assert.Equal(t, 0.0, overview.ExternalShare)
}

func TestGetDebtOverviewEmptyStore(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	overview, err := svc.GetDebtOverview(context.Background(), 8)
	require.NoError(t, err)
	assert.Empty(t, overview.Points)
	assert.Nil(t, overview.Latest)
}

func inflationRow(date string, headline float64, policyRate *float64) *entity.EconomicData {
	raw, _ := indicator.EncodeMetadata(&indicator.InflationMetadata{PolicyRate: policyRate})
	return &entity.EconomicData{
		Indicator: indicator.InflationRate,
		Date:      utils.MustDay(date),
		Source:    "Ghana Statistical Service",
		Value:     headline,
		Unit:      "%",
		Metadata:  raw,
	}
}

func TestGetInflationSeriesPolicyRateDefault(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	explicit := 27.0
	mustUpsert(t, repo, inflationRow("2025-10-01", 21.5, &explicit))
	mustUpsert(t, repo, inflationRow("2025-11-01", 20.9, nil))

	series, err := svc.GetInflationSeries(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, series.Points, 2)

	assert.Equal(t, 27.0, series.Points[0].PolicyRate, "explicit policy rate wins")
	assert.Equal(t, 20.9+DefaultPolicyRateSpread, series.Points[1].PolicyRate, "absent policy rate defaults to headline plus spread")
	// Absent sub-indices fall back to the headline value.
	assert.Equal(t, 20.9, series.Points[1].Food)
	assert.Equal(t, 20.9, series.Points[1].NonFood)

	require.NotNil(t, series.Latest)
	assert.Equal(t, "negative", series.Trend)
}

func TestGetInflationSeriesWindowsToRequestedPeriods(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	for _, d := range []string{"2025-07-01", "2025-08-01", "2025-09-01", "2025-10-01", "2025-11-01"} {
		mustUpsert(t, repo, inflationRow(d, 22, nil))
	}

	series, err := svc.GetInflationSeries(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, series.Points, 3)
	assert.Equal(t, "2025-09-01", series.Points[0].Date)
	assert.Equal(t, "2025-11-01", series.Points[2].Date)
}

func TestGetIMFDisbursementsCumulative(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	amounts := []float64{600000000, 600000000, 360000000}
	dates := []string{"2023-05-19", "2024-01-19", "2024-06-28"}
	for i := range amounts {
		raw, _ := indicator.EncodeMetadata(&indicator.DisbursementMetadata{Tranche: i + 1, Status: "received"})
		mustUpsert(t, repo, &entity.EconomicData{
			Indicator: indicator.IMFDisbursement,
			Date:      utils.MustDay(dates[i]),
			Source:    "IMF",
			Value:     amounts[i],
			Unit:      "USD",
			Metadata:  raw,
		})
	}

	series, err := svc.GetIMFDisbursements(context.Background())
	require.NoError(t, err)
	require.Len(t, series.Points, 3)
	assert.Equal(t, 600000000.0, series.Points[0].Cumulative)
	assert.Equal(t, 1200000000.0, series.Points[1].Cumulative)
	assert.Equal(t, 1560000000.0, series.Points[2].Cumulative)
	assert.Equal(t, 1560000000.0, series.TotalReceived)
	assert.Equal(t, 1, series.Points[0].Tranche)
}

func TestGetCreditorBreakdownShares(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	slices := []struct {
		creditor string
		ctype    string
		amount   float64
	}{
		{"Eurobond holders", "commercial", 13100000000},
		{"Multilateral", "multilateral", 8400000000},
		{"Bilateral", "bilateral", 5200000000},
	}
	for _, s := range slices {
		raw, _ := indicator.EncodeMetadata(&indicator.CreditorMetadata{Creditor: s.creditor, Type: s.ctype})
		obs := &entity.EconomicData{
			Indicator: indicator.DebtByCreditor,
			Date:      utils.MustDay("2025-09-30"),
			SeriesKey: s.creditor,
			Source:    "Ministry of Finance",
			Value:     s.amount,
			Unit:      "USD",
			Metadata:  raw,
		}
		mustUpsert(t, repo, obs)
	}

	breakdown, err := svc.GetCreditorBreakdown(context.Background())
	require.NoError(t, err)
	require.Len(t, breakdown.Slices, 3)
	assert.Equal(t, "2025-09-30", breakdown.AsOf)
	assert.Equal(t, 26700000000.0, breakdown.Total)

	var shareSum float64
	for _, s := range breakdown.Slices {
		shareSum += s.Share
	}
	assert.InDelta(t, 100.0, shareSum, 0.001)
	assert.Equal(t, "Eurobond holders", breakdown.Slices[0].Creditor, "largest slice first")
}

func TestGetConditionalitiesCoDatedRows(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	for _, key := range []string{"IMF-cond-1", "IMF-cond-2", "IMF-cond-3"} {
		raw, _ := indicator.EncodeMetadata(&indicator.ConditionalityMetadata{Title: "Condition " + key, Status: "met"})
		mustUpsert(t, repo, &entity.EconomicData{
			Indicator: indicator.IMFConditionality,
			Date:      utils.MustDay("2025-12-31"),
			SeriesKey: key,
			Source:    "IMF",
			Value:     0,
			Metadata:  raw,
		})
	}

	items, err := svc.GetConditionalities(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3, "co-dated conditions must all survive")
	for _, item := range items {
		assert.Equal(t, "2025-12-31", item.Deadline)
		assert.Equal(t, "met", item.Status)
	}
}

func TestGetMilestonesDefaults(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	mustUpsert(t, repo, &entity.EconomicData{
		Indicator: indicator.IMFMilestone,
		Date:      utils.MustDay("2026-03-31"),
		SeriesKey: "IMF-mile-1",
		Source:    "IMF",
		Value:     0,
	})

	items, err := svc.GetMilestones(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "IMF-mile-1", items[0].Title, "title falls back to the series key")
	assert.Equal(t, "pending", items[0].Status)
}

func TestDashboardCachesUntilFlushed(t *testing.T) {
	svc, repo := newDashboardFixture(t)
	ctx := context.Background()

	mustUpsert(t, repo, debtRow("2025-08-01", 100, 60, 40))
	first, err := svc.GetDebtOverview(ctx, 8)
	require.NoError(t, err)
	require.Len(t, first.Points, 1)

	mustUpsert(t, repo, debtRow("2025-11-01", 200, 120, 80))

	cached, err := svc.GetDebtOverview(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, cached.Points, 1, "served from cache")

	svc.FlushCache(ctx)

	fresh, err := svc.GetDebtOverview(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, fresh.Points, 2)
}

func TestShareZeroGuard(t *testing.T) {
	assert.Equal(t, 0.0, share(5, 0))
	assert.Equal(t, 50.0, share(1, 2))
}

func TestMalformedMetadataDoesNotFailReads(t *testing.T) {
	svc, repo := newDashboardFixture(t)

	mustUpsert(t, repo, &entity.EconomicData{
		Indicator: indicator.TotalDebt,
		Date:      utils.MustDay("2025-11-01"),
		Source:    "Ministry of Finance",
		Value:     100,
		Metadata:  datatypes.JSON(`{"domestic": "not-a-number"}`),
	})

	overview, err := svc.GetDebtOverview(context.Background(), 8)
	require.NoError(t, err)
	require.NotNil(t, overview.Latest)
	assert.Equal(t, 100.0, overview.Latest.Domestic, "malformed split defaults to all-domestic")
}
