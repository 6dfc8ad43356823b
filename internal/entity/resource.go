package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Resource is a downloadable file (report, policy brief, dataset). FileURL is
// the natural key for seeding; storage of the file itself is external.
type Resource struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"not null" json:"title"`
	Category    string                      `json:"category"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	FileURL     string                      `gorm:"unique;not null" json:"file_url"`
	FileName    string                      `json:"file_name"`
	FileType    string                      `json:"file_type"`
	FileSize    int64                       `json:"file_size"`
	PublishedAt *time.Time                  `json:"published_at,omitempty"`
	Featured    bool                        `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Resource model.
func (Resource) TableName() string {
	return "resources"
}
