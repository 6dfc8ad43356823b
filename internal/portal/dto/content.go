package dto

import (
	"encoding/json"
	"time"
)

// ContentFilter carries the optional list filters shared by the content
// endpoints: category slug, free-text search, tag containment, featured flag.
type ContentFilter struct {
	Category string
	Search   string
	Tag      string
	Featured *bool
	Limit    int
}

// UpsertArticleRequest is the write payload for articles, from admin forms or
// seed procedures. Slug is the natural key.
type UpsertArticleRequest struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	Category    string     `json:"category,omitempty"` // category slug
	Author      string     `json:"author"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Featured    bool       `json:"featured"`
	Tags        []string   `json:"tags"`
}

// UpsertEventRequest is the write payload for events.
type UpsertEventRequest struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Featured    bool       `json:"featured"`
}

// UpsertCategoryRequest is the write payload for categories.
type UpsertCategoryRequest struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpsertStaffRequest is the write payload for staff members.
type UpsertStaffRequest struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
	DisplayOrder int    `json:"display_order"`
}

// UpsertProgramRequest is the write payload for programs.
type UpsertProgramRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FocusArea   string `json:"focus_area"`
}

// UpsertResourceRequest is the write payload for downloadable resources.
type UpsertResourceRequest struct {
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	FileURL     string     `json:"file_url"`
	FileName    string     `json:"file_name"`
	FileType    string     `json:"file_type"`
	FileSize    int64      `json:"file_size"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Featured    bool       `json:"featured"`
}

// ObservationRecord is the wire form of one economic observation, used by the
// sync export file and the admin upsert endpoint. Date is YYYY-MM-DD.
type ObservationRecord struct {
	Indicator string          `json:"indicator"`
	Date      string          `json:"date"`
	SeriesKey string          `json:"series_key,omitempty"`
	Source    string          `json:"source"`
	Value     float64         `json:"value"`
	Unit      string          `json:"unit"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}
