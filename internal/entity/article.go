package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Category groups articles by theme.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string {
	return "categories"
}

// Article is a published piece of content. Slug is the natural key used by
// both the admin forms and the seed procedures.
type Article struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Slug        string                      `gorm:"unique;not null" json:"slug"`
	Title       string                      `gorm:"not null" json:"title"`
	Content     string                      `json:"content"`
	Excerpt     string                      `json:"excerpt"`
	CategoryID  *uint                       `json:"category_id,omitempty"`
	Category    *Category                   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author      string                      `json:"author"`
	PublishedAt *time.Time                  `json:"published_at,omitempty"`
	Featured    bool                        `gorm:"default:false" json:"featured"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Article model.
func (Article) TableName() string {
	return "articles"
}
