package repository

import (
	"context"

	"econgov-portal/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgramRepository defines the interface for program data operations.
type ProgramRepository interface {
	UpsertBySlug(ctx context.Context, program *entity.Program) error
	FindBySlug(ctx context.Context, slug string) (*entity.Program, error)
	FindAll(ctx context.Context) ([]entity.Program, error)
	DeleteBySlug(ctx context.Context, slug string) error
	DeleteAll(ctx context.Context) error
}

// NewProgramRepository creates a new GORM-based program repository.
func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

type programRepository struct {
	db *gorm.DB
}

// UpsertBySlug inserts the program or updates the existing row in place.
func (r *programRepository) UpsertBySlug(ctx context.Context, program *entity.Program) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "focus_area", "updated_at"}),
	}).Create(program).Error
}

// FindBySlug retrieves a program by its slug.
func (r *programRepository) FindBySlug(ctx context.Context, slug string) (*entity.Program, error) {
	var program entity.Program
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

// FindAll retrieves all programs ordered by title.
func (r *programRepository) FindAll(ctx context.Context) ([]entity.Program, error) {
	var programs []entity.Program
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// DeleteBySlug removes a program by its slug.
func (r *programRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&entity.Program{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll wipes the programs table for a full restore.
func (r *programRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Program{}).Error
}
