package entity

import (
	"time"
)

// Program is a long-running advocacy workstream (debt transparency, IMF
// program tracking, fiscal accountability).
type Program struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	FocusArea   string    `json:"focus_area"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Program model.
func (Program) TableName() string {
	return "programs"
}
