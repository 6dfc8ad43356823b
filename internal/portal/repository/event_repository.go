package repository

import (
	"context"
	"strings"
	"time"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/portal/dto"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepository defines the interface for event data operations.
type EventRepository interface {
	UpsertBySlug(ctx context.Context, event *entity.Event) error
	FindBySlug(ctx context.Context, slug string) (*entity.Event, error)
	FindAll(ctx context.Context, filter dto.ContentFilter) ([]entity.Event, error)
	FindUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.Event, error)
	DeleteBySlug(ctx context.Context, slug string) error
	DeleteAll(ctx context.Context) error
}

// NewEventRepository creates a new GORM-based event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

type eventRepository struct {
	db *gorm.DB
}

// UpsertBySlug inserts the event or updates the existing row in place.
func (r *eventRepository) UpsertBySlug(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "location", "start_date", "end_date", "featured", "updated_at",
		}),
	}).Create(event).Error
}

// FindBySlug retrieves an event by its slug.
func (r *eventRepository) FindBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	var event entity.Event
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindAll retrieves events matching the filter, most recent first.
func (r *eventRepository) FindAll(ctx context.Context, filter dto.ContentFilter) ([]entity.Event, error) {
	q := r.db.WithContext(ctx).Model(&entity.Event{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var events []entity.Event
	if err := q.Order("start_date DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindUpcoming retrieves events starting at or after the given time.
func (r *eventRepository) FindUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.Event, error) {
	q := r.db.WithContext(ctx).Where("start_date >= ?", from).Order("start_date ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var events []entity.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteBySlug removes an event by its slug.
func (r *eventRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&entity.Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll wipes the events table for a full restore.
func (r *eventRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Event{}).Error
}
