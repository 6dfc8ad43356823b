package repository

import (
	"context"

	"econgov-portal/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StaffRepository defines the interface for staff data operations.
type StaffRepository interface {
	UpsertByName(ctx context.Context, staff *entity.Staff) error
	FindByID(ctx context.Context, id uint) (*entity.Staff, error)
	FindAll(ctx context.Context) ([]entity.Staff, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

// NewStaffRepository creates a new GORM-based staff repository.
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

type staffRepository struct {
	db *gorm.DB
}

// UpsertByName inserts the staff member or updates the existing row in place.
func (r *staffRepository) UpsertByName(ctx context.Context, staff *entity.Staff) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "bio", "display_order", "updated_at"}),
	}).Create(staff).Error
}

// FindByID retrieves a staff member by id.
func (r *staffRepository) FindByID(ctx context.Context, id uint) (*entity.Staff, error) {
	var staff entity.Staff
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// FindAll retrieves all staff members in display order.
func (r *staffRepository) FindAll(ctx context.Context) ([]entity.Staff, error) {
	var staff []entity.Staff
	if err := r.db.WithContext(ctx).Order("display_order ASC").Order("name ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// Delete removes a staff member by id.
func (r *staffRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Staff{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll wipes the staff table for a full restore.
func (r *staffRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Staff{}).Error
}
