package entity

import (
	"time"
)

// Event is a public event (forum, launch, town hall) listed on the site.
type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Slug        string     `gorm:"unique;not null" json:"slug"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Featured    bool       `gorm:"default:false" json:"featured"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Event model.
func (Event) TableName() string {
	return "events"
}
