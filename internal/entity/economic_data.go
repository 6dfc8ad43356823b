package entity

import (
	"time"

	"gorm.io/datatypes"
)

// EconomicData is one economic observation: a value for a named indicator at a
// reference date, attributed to a source. The (indicator, date, series_key)
// triple is unique and is the only integrity constraint on the table; all
// ingestion is expressed as an upsert against it.
//
// SeriesKey distinguishes co-dated rows of the same indicator family (creditor
// names, conditionality ids). Rows ingested without an explicit series key take
// SeriesKey = Source, which reproduces the legacy behavior where provenance
// doubled as the discriminator.
type EconomicData struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Indicator string         `gorm:"not null;uniqueIndex:idx_economic_data_series,priority:1" json:"indicator"`
	Date      time.Time      `gorm:"not null;uniqueIndex:idx_economic_data_series,priority:2" json:"date"`
	SeriesKey string         `gorm:"not null;uniqueIndex:idx_economic_data_series,priority:3" json:"series_key"`
	Source    string         `gorm:"not null" json:"source"`
	Value     float64        `gorm:"not null" json:"value"`
	Unit      string         `json:"unit"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the EconomicData model.
func (EconomicData) TableName() string {
	return "economic_data"
}
