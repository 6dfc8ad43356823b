package repository

import (
	"context"
	"errors"
	"time"

	"econgov-portal/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EconomicDataRepository defines the interface for the indicator store.
type EconomicDataRepository interface {
	Upsert(ctx context.Context, obs *entity.EconomicData) error
	UpsertMany(ctx context.Context, rows []entity.EconomicData) error
	DeleteByIndicators(ctx context.Context, indicators []string) error
	Latest(ctx context.Context, indicator string) (*entity.EconomicData, error)
	Series(ctx context.Context, indicator string, limit int, ascending bool) ([]entity.EconomicData, error)
	Snapshot(ctx context.Context, indicator string) ([]entity.EconomicData, error)
	CountByIndicator(ctx context.Context, indicator string) (int64, error)
}

// NewEconomicDataRepository creates a new GORM-based indicator store.
func NewEconomicDataRepository(db *gorm.DB) EconomicDataRepository {
	return &economicDataRepository{db: db}
}

type economicDataRepository struct {
	db *gorm.DB
}

var seriesConflictColumns = []clause.Column{
	{Name: "indicator"}, {Name: "date"}, {Name: "series_key"},
}

// Upsert inserts the observation or, when a row with the same
// (indicator, date, series_key) exists, replaces its value, unit, source and
// metadata in place. The row id is preserved, so repeated calls with the same
// input leave the store byte-for-byte identical.
func (r *economicDataRepository) Upsert(ctx context.Context, obs *entity.EconomicData) error {
	if obs.SeriesKey == "" {
		obs.SeriesKey = obs.Source
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   seriesConflictColumns,
		DoUpdates: clause.AssignmentColumns([]string{"source", "value", "unit", "metadata", "updated_at"}),
	}).Create(obs).Error
}

// UpsertMany applies Upsert per row. Each row is independently atomic; there
// is deliberately no enclosing transaction, so a partial failure leaves a
// partially-updated but well-formed store and a rerun heals it.
func (r *economicDataRepository) UpsertMany(ctx context.Context, rows []entity.EconomicData) error {
	for i := range rows {
		if err := r.Upsert(ctx, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// DeleteByIndicators bulk-deletes every row of the given indicator families.
// This is the only row-delete path on the store; it backs the destructive
// full-restore maintenance action.
func (r *economicDataRepository) DeleteByIndicators(ctx context.Context, indicators []string) error {
	if len(indicators) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("indicator IN ?", indicators).Delete(&entity.EconomicData{}).Error
}

// Latest returns the row with the maximum date for the indicator, or nil when
// the indicator has no rows. Ties on date resolve to the most recently
// inserted row (highest id).
func (r *economicDataRepository) Latest(ctx context.Context, indicator string) (*entity.EconomicData, error) {
	var obs entity.EconomicData
	err := r.db.WithContext(ctx).
		Where("indicator = ?", indicator).
		Order("date DESC").Order("id DESC").
		First(&obs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &obs, nil
}

// Series returns up to limit rows: the N most recent by date, re-sorted
// ascending when requested so charts read left to right.
func (r *economicDataRepository) Series(ctx context.Context, indicator string, limit int, ascending bool) ([]entity.EconomicData, error) {
	var rows []entity.EconomicData
	q := r.db.WithContext(ctx).
		Where("indicator = ?", indicator).
		Order("date DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	if ascending {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows, nil
}

// Snapshot returns all rows of the indicator whose date falls on the same day
// as the most recent row, treated as one coherent as-of breakdown. Ingestion
// upholds the invariant that all rows of a snapshot share the same date.
func (r *economicDataRepository) Snapshot(ctx context.Context, indicator string) ([]entity.EconomicData, error) {
	latest, err := r.Latest(ctx, indicator)
	if err != nil || latest == nil {
		return nil, err
	}

	start := time.Date(latest.Date.Year(), latest.Date.Month(), latest.Date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var rows []entity.EconomicData
	err = r.db.WithContext(ctx).
		Where("indicator = ? AND date >= ? AND date < ?", indicator, start, end).
		Order("value DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByIndicator returns the number of stored rows for the indicator.
func (r *economicDataRepository) CountByIndicator(ctx context.Context, indicator string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.EconomicData{}).
		Where("indicator = ?", indicator).
		Count(&count).Error
	return count, err
}
