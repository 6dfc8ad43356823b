package entity

import (
	"time"
)

// Staff is a team member shown on the about page. DisplayOrder controls
// listing position; name is the natural key for seeding.
type Staff struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"unique;not null" json:"name"`
	Position     string    `gorm:"not null" json:"position"`
	Bio          string    `json:"bio"`
	DisplayOrder int       `gorm:"column:display_order;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Staff model.
func (Staff) TableName() string {
	return "staff"
}
