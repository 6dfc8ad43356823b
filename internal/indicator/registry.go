package indicator

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// Indicator names. The vocabulary is fixed but extensible: adding a family
// means adding a name, a metadata type, and a registry entry.
const (
	TotalDebt         = "TOTAL_DEBT"
	GDPGrowth         = "GDP_GROWTH"
	InflationRate     = "INFLATION_RATE"
	ExchangeRate      = "EXCHANGE_RATE"
	GrossReserves     = "GROSS_RESERVES"
	IMFDisbursement   = "IMF_DISBURSEMENT"
	IMFConditionality = "IMF_CONDITIONALITY"
	IMFMilestone      = "IMF_MILESTONE"
	DebtByCreditor    = "DEBT_BY_CREDITOR"
)

// DebtMetadata carries the domestic/external split behind a total-debt row.
type DebtMetadata struct {
	Domestic float64 `json:"domestic"`
	External float64 `json:"external"`
	Currency string  `json:"currency,omitempty"`
}

// GDPMetadata carries the quarter label and optional sector breakdown.
type GDPMetadata struct {
	Quarter     string  `json:"quarter,omitempty"`
	Agriculture float64 `json:"agriculture,omitempty"`
	Industry    float64 `json:"industry,omitempty"`
	Services    float64 `json:"services,omitempty"`
}

// InflationMetadata carries the sub-indices and the central bank policy rate.
// PolicyRate is optional; the query layer substitutes a documented default
// when it is absent.
type InflationMetadata struct {
	Food       *float64 `json:"food,omitempty"`
	NonFood    *float64 `json:"non_food,omitempty"`
	PolicyRate *float64 `json:"policy_rate,omitempty"`
}

// ExchangeRateMetadata carries the currency pair and bank buying/selling rates.
type ExchangeRateMetadata struct {
	Pair    string  `json:"pair,omitempty"`
	Buying  float64 `json:"buying,omitempty"`
	Selling float64 `json:"selling,omitempty"`
}

// ReservesMetadata carries the import-cover reading behind a reserves row.
type ReservesMetadata struct {
	MonthsOfImportCover float64 `json:"months_of_import_cover,omitempty"`
}

// DisbursementMetadata describes one IMF tranche.
type DisbursementMetadata struct {
	Tranche   int    `json:"tranche,omitempty"`
	Milestone string `json:"milestone,omitempty"`
	Status    string `json:"status,omitempty"`
}

// ConditionalityMetadata describes one IMF program condition. Date on the row
// is the deadline, not an observation time.
type ConditionalityMetadata struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
	Note     string `json:"note,omitempty"`
}

// MilestoneMetadata describes one IMF program milestone.
type MilestoneMetadata struct {
	Title       string `json:"title"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreditorMetadata describes one slice of a creditor-composition snapshot.
// All rows of one snapshot share the same date.
type CreditorMetadata struct {
	Creditor string `json:"creditor"`
	Type     string `json:"type,omitempty"` // "multilateral", "bilateral", "commercial", "domestic"
}

var registry = map[string]func() interface{}{
	TotalDebt:         func() interface{} { return &DebtMetadata{} },
	GDPGrowth:         func() interface{} { return &GDPMetadata{} },
	InflationRate:     func() interface{} { return &InflationMetadata{} },
	ExchangeRate:      func() interface{} { return &ExchangeRateMetadata{} },
	GrossReserves:     func() interface{} { return &ReservesMetadata{} },
	IMFDisbursement:   func() interface{} { return &DisbursementMetadata{} },
	IMFConditionality: func() interface{} { return &ConditionalityMetadata{} },
	IMFMilestone:      func() interface{} { return &MilestoneMetadata{} },
	DebtByCreditor:    func() interface{} { return &CreditorMetadata{} },
}

// Known reports whether the indicator name belongs to the vocabulary.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the full indicator vocabulary.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// DecodeMetadata decodes the raw metadata column into the typed variant for
// the given indicator. Unknown indicator names are rejected; empty metadata
// yields the variant's zero value so absent fields fall back to defaults
// downstream instead of failing.
func DecodeMetadata(name string, raw datatypes.JSON) (interface{}, error) {
	newMeta, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown indicator %q", name)
	}
	meta := newMeta()
	if len(raw) == 0 {
		return meta, nil
	}
	if err := json.Unmarshal(raw, meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", name, err)
	}
	return meta, nil
}

// EncodeMetadata marshals a typed variant back into the storage column.
func EncodeMetadata(meta interface{}) (datatypes.JSON, error) {
	if meta == nil {
		return nil, nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
