package service

import (
	"encoding/json"
	"time"

	"econgov-portal/internal/entity"
	"econgov-portal/internal/indicator"
	"econgov-portal/internal/portal/dto"
	"econgov-portal/pkg/utils"

	"gorm.io/datatypes"
)

// Literal seed datasets. Sources: Ministry of Finance quarterly debt
// bulletins, Ghana Statistical Service CPI and GDP releases, Bank of Ghana
// summaries, and the IMF ECF program documents.

func mustMeta(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(raw)
}

func floatPtr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func seedObservations() []entity.EconomicData {
	var rows []entity.EconomicData

	debt := []struct {
		date     string
		total    float64
		domestic float64
		external float64
	}{
		{"2024-08-01", 742000000000, 371300000000, 370700000000},
		{"2024-11-01", 755800000000, 375100000000, 380700000000},
		{"2025-02-01", 726700000000, 328500000000, 398200000000},
		{"2025-05-01", 613000000000, 289200000000, 323800000000},
		{"2025-08-01", 629100000000, 301700000000, 327400000000},
		{"2025-11-01", 644600000000, 314400000000, 330200000000},
	}
	for _, d := range debt {
		rows = append(rows, entity.EconomicData{
			Indicator: indicator.TotalDebt,
			Date:      utils.MustDay(d.date),
			Source:    "Ministry of Finance",
			Value:     d.total,
			Unit:      "GHS",
			Metadata:  mustMeta(indicator.DebtMetadata{Domestic: d.domestic, External: d.external, Currency: "GHS"}),
		})
	}

	inflation := []struct {
		date       string
		headline   float64
		food       float64
		nonFood    float64
		policyRate *float64
	}{
		{"2025-04-30", 21.2, 25.0, 18.2, floatPtr(28.0)},
		{"2025-05-31", 18.4, 22.8, 14.9, floatPtr(28.0)},
		{"2025-06-30", 13.7, 16.3, 11.4, nil},
		{"2025-07-31", 12.1, 15.1, 9.5, floatPtr(25.0)},
		{"2025-08-31", 11.5, 14.2, 9.1, nil},
		{"2025-09-30", 9.4, 11.1, 8.2, floatPtr(21.5)},
		{"2025-10-31", 8.0, 9.5, 6.9, floatPtr(21.5)},
	}
	for _, in := range inflation {
		rows = append(rows, entity.EconomicData{
			Indicator: indicator.InflationRate,
			Date:      utils.MustDay(in.date),
			Source:    "GSS",
			Value:     in.headline,
			Unit:      "%",
			Metadata: mustMeta(indicator.InflationMetadata{
				Food:       floatPtr(in.food),
				NonFood:    floatPtr(in.nonFood),
				PolicyRate: in.policyRate,
			}),
		})
	}

	gdp := []struct {
		date                            string
		growth                          float64
		quarter                         string
		agriculture, industry, services float64
	}{
		{"2024-09-30", 7.2, "Q3 2024", 3.2, 10.4, 6.4},
		{"2024-12-31", 3.6, "Q4 2024", 2.8, 3.1, 4.2},
		{"2025-03-31", 5.3, "Q1 2025", 6.6, 4.0, 5.1},
		{"2025-06-30", 6.3, "Q2 2025", 5.2, 7.1, 6.2},
	}
	for _, g := range gdp {
		rows = append(rows, entity.EconomicData{
			Indicator: indicator.GDPGrowth,
			Date:      utils.MustDay(g.date),
			Source:    "GSS",
			Value:     g.growth,
			Unit:      "%",
			Metadata: mustMeta(indicator.GDPMetadata{
				Quarter:     g.quarter,
				Agriculture: g.agriculture,
				Industry:    g.industry,
				Services:    g.services,
			}),
		})
	}

	fx := []struct {
		date string
		rate float64
	}{
		{"2025-05-31", 12.85},
		{"2025-06-30", 10.31},
		{"2025-07-31", 10.48},
		{"2025-08-31", 11.02},
		{"2025-09-30", 12.15},
		{"2025-10-31", 11.72},
	}
	for _, f := range fx {
		rows = append(rows, entity.EconomicData{
			Indicator: indicator.ExchangeRate,
			Date:      utils.MustDay(f.date),
			Source:    "Bank of Ghana",
			Value:     f.rate,
			Unit:      "GHS",
			Metadata:  mustMeta(indicator.ExchangeRateMetadata{Pair: "USD/GHS", Buying: f.rate - 0.02, Selling: f.rate + 0.02}),
		})
	}

	reserves := []struct {
		date   string
		amount float64
		cover  float64
	}{
		{"2025-03-31", 9400000000, 4.0},
		{"2025-06-30", 11100000000, 4.8},
		{"2025-09-30", 10700000000, 4.6},
	}
	for _, r := range reserves {
		rows = append(rows, entity.EconomicData{
			Indicator: indicator.GrossReserves,
			Date:      utils.MustDay(r.date),
			Source:    "Bank of Ghana",
			Value:     r.amount,
			Unit:      "USD",
			Metadata:  mustMeta(indicator.ReservesMetadata{MonthsOfImportCover: r.cover}),
		})
	}

	disbursements := []struct {
		date      string
		amount    float64
		tranche   int
		milestone string
	}{
		{"2023-05-19", 600000000, 1, "Program approval"},
		{"2024-01-19", 600000000, 2, "First review"},
		{"2024-06-28", 360000000, 3, "Second review"},
		{"2024-12-02", 360000000, 4, "Third review"},
		{"2025-07-07", 367000000, 5, "Fourth review"},
	}
	for _, d := range disbursements {
		rows = append(rows, entity.EconomicData{
			Indicator: indicator.IMFDisbursement,
			Date:      utils.MustDay(d.date),
			Source:    "IMF",
			Value:     d.amount,
			Unit:      "USD",
			Metadata:  mustMeta(indicator.DisbursementMetadata{Tranche: d.tranche, Milestone: d.milestone, Status: "disbursed"}),
		})
	}

	// The row date is the condition's deadline; several conditions share a
	// deadline and are distinguished by their series keys.
	conditionalities := []struct {
		key      string
		deadline string
		title    string
		category string
		status   string
	}{
		{"IMF-cond-1", "2025-12-31", "Primary balance surplus of 0.5% of GDP", "fiscal", "on-track"},
		{"IMF-cond-2", "2025-12-31", "Zero central bank financing of the budget", "monetary", "met"},
		{"IMF-cond-3", "2026-03-31", "Publish quarterly arrears clearance report", "transparency", "pending"},
		{"IMF-cond-4", "2026-03-31", "Energy sector tariff adjustment", "structural", "delayed"},
		{"IMF-cond-5", "2026-06-30", "Complete external debt restructuring MoU", "debt", "pending"},
	}
	for _, c := range conditionalities {
		rows = append(rows, entity.EconomicData{
			Indicator: indicator.IMFConditionality,
			Date:      utils.MustDay(c.deadline),
			SeriesKey: c.key,
			Source:    "IMF",
			Value:     0,
			Unit:      "Status",
			Metadata:  mustMeta(indicator.ConditionalityMetadata{Title: c.title, Category: c.category, Status: c.status}),
		})
	}

	milestones := []struct {
		key    string
		date   string
		title  string
		status string
	}{
		{"IMF-mile-1", "2023-05-17", "ECF arrangement approved (USD 3bn)", "completed"},
		{"IMF-mile-2", "2024-06-11", "Domestic debt exchange concluded", "completed"},
		{"IMF-mile-3", "2025-01-13", "Official creditor committee MoU signed", "completed"},
		{"IMF-mile-4", "2025-10-06", "Fifth program review mission", "in-progress"},
	}
	for _, m := range milestones {
		rows = append(rows, entity.EconomicData{
			Indicator: indicator.IMFMilestone,
			Date:      utils.MustDay(m.date),
			SeriesKey: m.key,
			Source:    "IMF",
			Value:     0,
			Unit:      "Event",
			Metadata:  mustMeta(indicator.MilestoneMetadata{Title: m.title, Status: m.status}),
		})
	}

	// Creditor composition snapshot: every row carries the same as-of date.
	creditors := []struct {
		name   string
		ctype  string
		amount float64
	}{
		{"Multilateral (World Bank, AfDB)", "multilateral", 112500000000},
		{"IMF", "multilateral", 41300000000},
		{"Bilateral (Paris Club)", "bilateral", 63400000000},
		{"Bilateral (non-Paris Club)", "bilateral", 48600000000},
		{"Eurobond holders", "commercial", 64400000000},
		{"Domestic bondholders", "domestic", 314400000000},
	}
	for _, c := range creditors {
		rows = append(rows, entity.EconomicData{
			Indicator: indicator.DebtByCreditor,
			Date:      utils.MustDay("2025-09-30"),
			SeriesKey: c.name,
			Source:    "Ministry of Finance",
			Value:     c.amount,
			Unit:      "GHS",
			Metadata:  mustMeta(indicator.CreditorMetadata{Creditor: c.name, Type: c.ctype}),
		})
	}

	return rows
}

func seedCategories() []dto.UpsertCategoryRequest {
	return []dto.UpsertCategoryRequest{
		{Slug: "debt-watch", Name: "Debt Watch", Description: "Analysis of Ghana's public debt position"},
		{Slug: "imf-program", Name: "IMF Program", Description: "Tracking the ECF arrangement and its conditions"},
		{Slug: "fiscal-policy", Name: "Fiscal Policy", Description: "Budget, revenue and expenditure analysis"},
		{Slug: "press-releases", Name: "Press Releases", Description: "Official statements"},
	}
}

func seedArticles() []dto.UpsertArticleRequest {
	return []dto.UpsertArticleRequest{
		{
			Slug:        "debt-stock-falls-below-debt-exchange-peak",
			Title:       "Public debt stock falls below the debt-exchange peak",
			Excerpt:     "The latest bulletin puts total public debt at GHS 644.6 billion, with the external share back above half.",
			Content:     "The Ministry of Finance quarterly bulletin shows total public debt of GHS 644.6 billion as of September 2025. The domestic component stands at GHS 314.4 billion following the cedi appreciation earlier in the year, while external obligations total GHS 330.2 billion.",
			Category:    "debt-watch",
			Author:      "Research Desk",
			PublishedAt: timePtr(utils.MustDay("2025-11-12")),
			Featured:    true,
			Tags:        []string{"debt", "bulletin"},
		},
		{
			Slug:        "fourth-review-disbursement-arrives",
			Title:       "Fourth review disbursement brings IMF support past USD 2.2bn",
			Excerpt:     "The fifth tranche of USD 367 million has been received following the fourth program review.",
			Content:     "With the executive board's completion of the fourth review, cumulative disbursements under the ECF arrangement now exceed USD 2.2 billion. Attention turns to the structural benchmarks due in the first quarter.",
			Category:    "imf-program",
			Author:      "Research Desk",
			PublishedAt: timePtr(utils.MustDay("2025-07-10")),
			Tags:        []string{"imf", "disbursement"},
		},
		{
			Slug:        "inflation-single-digits",
			Title:       "Inflation reaches single digits for the first time in four years",
			Excerpt:     "Headline inflation of 9.4% in September marks a return to the central bank's comfort zone.",
			Content:     "Disinflation has been faster than programmed, driven by food prices and the stronger cedi. The monetary policy committee responded with a 350 basis point cut.",
			Category:    "fiscal-policy",
			Author:      "Policy Team",
			PublishedAt: timePtr(utils.MustDay("2025-10-15")),
			Tags:        []string{"inflation", "monetary-policy"},
		},
	}
}

func seedEvents() []dto.UpsertEventRequest {
	return []dto.UpsertEventRequest{
		{
			Slug:        "annual-debt-conference-2025",
			Title:       "Annual Debt Management Conference",
			Description: "A public forum on debt transparency and the post-restructuring outlook.",
			Location:    "Accra International Conference Centre",
			StartDate:   utils.MustDay("2025-11-20"),
			EndDate:     timePtr(utils.MustDay("2025-11-21")),
			Featured:    true,
		},
		{
			Slug:        "imf-tracker-briefing-q4",
			Title:       "IMF Program Tracker Briefing",
			Description: "Quarterly briefing on conditionality status ahead of the fifth review.",
			Location:    "Online",
			StartDate:   utils.MustDay("2025-12-09"),
		},
	}
}

func seedStaff() []dto.UpsertStaffRequest {
	return []dto.UpsertStaffRequest{
		{Name: "Abena Osei", Position: "Executive Director", Bio: "Economist focused on fiscal governance.", DisplayOrder: 1},
		{Name: "Kwame Mensah", Position: "Head of Research", Bio: "Leads the debt and IMF tracking work.", DisplayOrder: 2},
		{Name: "Efua Boateng", Position: "Policy Analyst", Bio: "Covers monetary policy and inflation.", DisplayOrder: 3},
	}
}

func seedPrograms() []dto.UpsertProgramRequest {
	return []dto.UpsertProgramRequest{
		{Slug: "debt-transparency", Title: "Debt Transparency Initiative", Description: "Publishing creditor-level debt data in accessible form.", FocusArea: "debt"},
		{Slug: "imf-tracker", Title: "IMF Program Tracker", Description: "Independent monitoring of ECF conditionality.", FocusArea: "imf"},
		{Slug: "budget-credibility", Title: "Budget Credibility Project", Description: "Comparing budgeted against actual expenditure.", FocusArea: "fiscal"},
	}
}

func seedResources() []dto.UpsertResourceRequest {
	return []dto.UpsertResourceRequest{
		{
			Title:       "Debt Bulletin Explainer, Q3 2025",
			Category:    "reports",
			Tags:        []string{"debt", "explainer"},
			FileURL:     "/files/debt-bulletin-explainer-q3-2025.pdf",
			FileName:    "debt-bulletin-explainer-q3-2025.pdf",
			FileType:    "application/pdf",
			FileSize:    1844224,
			PublishedAt: timePtr(utils.MustDay("2025-11-14")),
			Featured:    true,
		},
		{
			Title:       "Conditionality Tracker Dataset",
			Category:    "datasets",
			Tags:        []string{"imf", "dataset"},
			FileURL:     "/files/conditionality-tracker.csv",
			FileName:    "conditionality-tracker.csv",
			FileType:    "text/csv",
			FileSize:    48230,
			PublishedAt: timePtr(utils.MustDay("2025-10-01")),
		},
	}
}
