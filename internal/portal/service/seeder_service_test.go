package service

import (
	"context"
	"encoding/json"
	"testing"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/indicator"
	"econgov-portal/internal/portal/dto"
	"econgov-portal/internal/portal/repository"
	"econgov-portal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type seederFixture struct {
	seeder       SeederService
	content      ContentService
	economicRepo repository.EconomicDataRepository
	articleRepo  repository.ArticleRepository
	db           *gorm.DB
}

func newSeederFixture(t *testing.T) *seederFixture {
	t.Helper()
	db := setupTestDB(t)
	log := testLogger(t)

	economicRepo := repository.NewEconomicDataRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	eventRepo := repository.NewEventRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	programRepo := repository.NewProgramRepository(db)
	resourceRepo := repository.NewResourceRepository(db)

	content := NewContentService(articleRepo, eventRepo, categoryRepo, staffRepo, programRepo, resourceRepo, log)
	seeder := NewSeederService(economicRepo, content, articleRepo, eventRepo, categoryRepo, staffRepo, programRepo, resourceRepo, log)
	return &seederFixture{
		seeder:       seeder,
		content:      content,
		economicRepo: economicRepo,
		articleRepo:  articleRepo,
		db:           db,
	}
}

func (f *seederFixture) countAll(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&entity.EconomicData{}).Count(&count).Error)
	return count
}

func (f *seederFixture) allIDs(t *testing.T) map[string]uint {
	t.Helper()
	var rows []entity.EconomicData
	require.NoError(t, f.db.Find(&rows).Error)
	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		ids[row.Indicator+"|"+row.Date.Format(utils.DayLayout)+"|"+row.SeriesKey] = row.ID
	}
	return ids
}

func TestSeedAllIsIdempotent(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	_, err := f.seeder.SeedAll(ctx)
	require.NoError(t, err)

	countBefore := f.countAll(t)
	idsBefore := f.allIDs(t)
	require.NotZero(t, countBefore)

	_, err = f.seeder.SeedAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, countBefore, f.countAll(t), "reseeding must not change row counts")
	assert.Equal(t, idsBefore, f.allIDs(t), "reseeding must not change row ids")
}

func TestSeedAllPopulatesEveryIndicatorFamily(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	_, err := f.seeder.SeedAll(ctx)
	require.NoError(t, err)

	for _, name := range indicator.Names() {
		count, err := f.economicRepo.CountByIndicator(ctx, name)
		require.NoError(t, err)
		assert.NotZero(t, count, "indicator %s must be seeded", name)
	}

	// Scenario checks on the literal dataset.
	latest, err := f.economicRepo.Latest(ctx, indicator.TotalDebt)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 644600000000.0, latest.Value)

	conds, err := f.economicRepo.Series(ctx, indicator.IMFConditionality, 0, true)
	require.NoError(t, err)
	deadlines := map[string]int{}
	maxPerDeadline := 0
	for _, c := range conds {
		day := c.Date.Format(utils.DayLayout)
		deadlines[day]++
		if deadlines[day] > maxPerDeadline {
			maxPerDeadline = deadlines[day]
		}
	}
	assert.Greater(t, maxPerDeadline, 1, "co-dated conditions must survive as distinct rows")
}

func TestSeedAllPopulatesContent(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	_, err := f.seeder.SeedAll(ctx)
	require.NoError(t, err)

	articles, err := f.content.ListArticles(ctx, dto.ContentFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, articles)

	categories, err := f.content.ListCategories(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, categories)

	staff, err := f.content.ListStaff(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, staff)
}

func TestRestoreAllRemovesStrayRows(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	_, err := f.seeder.SeedAll(ctx)
	require.NoError(t, err)

	stray := &entity.EconomicData{
		Indicator: indicator.TotalDebt,
		Date:      utils.MustDay("1999-01-01"),
		Source:    "legacy import",
		Value:     1,
	}
	require.NoError(t, f.economicRepo.Upsert(ctx, stray))
	strayArticle := &entity.Article{Slug: "stray", Title: "Stray"}
	require.NoError(t, f.articleRepo.UpsertBySlug(ctx, strayArticle))

	countWithStray := f.countAll(t)

	_, err = f.seeder.RestoreAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, countWithStray-1, f.countAll(t), "the stray observation is gone")

	_, err = f.articleRepo.FindBySlug(ctx, "stray")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	latest, err := f.economicRepo.Latest(ctx, indicator.TotalDebt)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 644600000000.0, latest.Value)
}

func TestSyncMergesWithoutDeleting(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	local := &entity.EconomicData{
		Indicator: indicator.ExchangeRate,
		Date:      utils.MustDay("2025-06-01"),
		Source:    "Bank of Ghana",
		Value:     14.9,
	}
	require.NoError(t, f.economicRepo.Upsert(ctx, local))

	export := &dto.ExportFile{
		Observations: []dto.ObservationRecord{
			{Indicator: indicator.ExchangeRate, Date: "2025-11-01", Source: "Bank of Ghana", Value: 15.8, Unit: "GHS/USD"},
		},
		Categories: []dto.UpsertCategoryRequest{
			{Slug: "analysis", Name: "Analysis"},
		},
	}
	output, err := f.seeder.Sync(ctx, export)
	require.NoError(t, err)
	assert.Contains(t, output[0], "1 upserted")

	count, err := f.economicRepo.CountByIndicator(ctx, indicator.ExchangeRate)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "local rows survive the merge")
}

func TestSyncSkipsInvalidRecords(t *testing.T) {
	f := newSeederFixture(t)
	ctx := context.Background()

	export := &dto.ExportFile{
		Observations: []dto.ObservationRecord{
			{Indicator: "BOGUS_INDICATOR", Date: "2025-11-01", Source: "x", Value: 1},
			{Indicator: indicator.InflationRate, Date: "not-a-date", Source: "GSS", Value: 20.9},
			{Indicator: indicator.InflationRate, Date: "2025-11-01", Source: "", Value: 20.9},
			{Indicator: indicator.InflationRate, Date: "2025-11-01", Source: "GSS", Value: 20.9, Metadata: json.RawMessage(`{"policy_rate": "high"}`)},
			{Indicator: indicator.InflationRate, Date: "2025-11-01", Source: "GSS", Value: 20.9},
		},
	}
	output, err := f.seeder.Sync(ctx, export)
	require.NoError(t, err)
	assert.Contains(t, output[0], "1 upserted, 4 skipped")

	count, err := f.economicRepo.CountByIndicator(ctx, indicator.InflationRate)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSyncNilExport(t *testing.T) {
	f := newSeederFixture(t)

	_, err := f.seeder.Sync(context.Background(), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestObservationFromRecordNormalizesSeriesKey(t *testing.T) {
	obs, err := observationFromRecord(dto.ObservationRecord{
		Indicator: indicator.TotalDebt,
		Date:      "2025-11-01",
		Source:    "Ministry of Finance",
		Value:     644600000000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ministry of Finance", obs.SeriesKey)
	assert.Equal(t, utils.MustDay("2025-11-01"), obs.Date)
}
