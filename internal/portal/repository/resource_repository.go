package repository

import (
	"context"
	"strings"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/portal/dto"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResourceRepository defines the interface for resource data operations.
type ResourceRepository interface {
	UpsertByFileURL(ctx context.Context, resource *entity.Resource) error
	FindByID(ctx context.Context, id uint) (*entity.Resource, error)
	FindAll(ctx context.Context, filter dto.ContentFilter) ([]entity.Resource, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

// NewResourceRepository creates a new GORM-based resource repository.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

type resourceRepository struct {
	db *gorm.DB
}

// UpsertByFileURL inserts the resource or updates the existing row in place.
func (r *resourceRepository) UpsertByFileURL(ctx context.Context, resource *entity.Resource) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "file_url"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "category", "tags", "file_name", "file_type", "file_size",
			"published_at", "featured", "updated_at",
		}),
	}).Create(resource).Error
}

// FindByID retrieves a resource by id.
func (r *resourceRepository) FindByID(ctx context.Context, id uint) (*entity.Resource, error) {
	var resource entity.Resource
	if err := r.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// FindAll retrieves resources matching the filter, most recent first.
func (r *resourceRepository) FindAll(ctx context.Context, filter dto.ContentFilter) ([]entity.Resource, error) {
	q := r.db.WithContext(ctx).Model(&entity.Resource{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(file_name) LIKE ?", pattern, pattern)
	}
	if filter.Tag != "" {
		q = q.Where(tagContains(r.db, "tags", filter.Tag))
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var resources []entity.Resource
	if err := q.Order("published_at DESC").Order("id DESC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// Delete removes a resource by id.
func (r *resourceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Resource{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll wipes the resources table for a full restore.
func (r *resourceRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Resource{}).Error
}
