package dto

// DebtPoint is one charted total-debt observation.
type DebtPoint struct {
	Date     string  `json:"date"`
	Label    string  `json:"label"`
	Total    float64 `json:"total"`
	Domestic float64 `json:"domestic"`
	External float64 `json:"external"`
}

// DebtOverview is the payload behind the debt dashboard.
type DebtOverview struct {
	Points         []DebtPoint `json:"points"`
	Latest         *DebtPoint  `json:"latest,omitempty"`
	ExternalShare  float64     `json:"external_share"`
	TotalFormatted string      `json:"total_formatted"`
	Source         string      `json:"source,omitempty"`
	Unit           string      `json:"unit,omitempty"`
}

// InflationPoint is one charted inflation observation. Food, non-food and
// policy rate are filled with documented defaults when metadata omits them.
type InflationPoint struct {
	Date       string  `json:"date"`
	Label      string  `json:"label"`
	Headline   float64 `json:"headline"`
	Food       float64 `json:"food"`
	NonFood    float64 `json:"non_food"`
	PolicyRate float64 `json:"policy_rate"`
}

// InflationSeries is the payload behind the inflation dashboard.
type InflationSeries struct {
	Points          []InflationPoint `json:"points"`
	Latest          *InflationPoint  `json:"latest,omitempty"`
	ChangeFormatted string           `json:"change_formatted"`
	Trend           string           `json:"trend"`
}

// GDPPoint is one charted GDP growth observation.
type GDPPoint struct {
	Date        string  `json:"date"`
	Label       string  `json:"label"`
	Growth      float64 `json:"growth"`
	Agriculture float64 `json:"agriculture"`
	Industry    float64 `json:"industry"`
	Services    float64 `json:"services"`
}

// GDPSeries is the payload behind the GDP dashboard.
type GDPSeries struct {
	Points []GDPPoint `json:"points"`
	Latest *GDPPoint  `json:"latest,omitempty"`
	Trend  string     `json:"trend"`
}

// RatePoint is one charted exchange-rate or reserves observation.
type RatePoint struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// RateSeries is a generic single-line chart payload.
type RateSeries struct {
	Points          []RatePoint `json:"points"`
	Latest          *RatePoint  `json:"latest,omitempty"`
	Unit            string      `json:"unit,omitempty"`
	LatestFormatted string      `json:"latest_formatted,omitempty"`
}

// DisbursementPoint is one IMF tranche with the running total received.
type DisbursementPoint struct {
	Date       string  `json:"date"`
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Cumulative float64 `json:"cumulative"`
	Tranche    int     `json:"tranche,omitempty"`
	Milestone  string  `json:"milestone,omitempty"`
	Status     string  `json:"status,omitempty"`
}

// DisbursementSeries is the payload behind the IMF disbursement dashboard.
type DisbursementSeries struct {
	Points         []DisbursementPoint `json:"points"`
	TotalReceived  float64             `json:"total_received"`
	TotalFormatted string              `json:"total_formatted"`
	Unit           string              `json:"unit,omitempty"`
}

// CreditorSlice is one slice of the creditor-composition snapshot.
type CreditorSlice struct {
	Creditor string  `json:"creditor"`
	Type     string  `json:"type,omitempty"`
	Amount   float64 `json:"amount"`
	Share    float64 `json:"share"`
}

// CreditorBreakdown is the payload behind the creditor dashboard. All slices
// belong to the single most recent snapshot date.
type CreditorBreakdown struct {
	AsOf   string          `json:"as_of"`
	Total  float64         `json:"total"`
	Slices []CreditorSlice `json:"slices"`
	Unit   string          `json:"unit,omitempty"`
}

// ConditionalityItem is one IMF program condition in the tracker listing.
type ConditionalityItem struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status"`
	Deadline string `json:"deadline"`
	Note     string `json:"note,omitempty"`
}

// MilestoneItem is one IMF program milestone in the tracker listing.
type MilestoneItem struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}
