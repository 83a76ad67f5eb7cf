package domain

import "time"

type SalesReport struct {
	Title            string             `json:"title"`
	GeneratedAt      time.Time          `json:"generated_at"`
	ExecutiveSummary ExecutiveSummary   `json:"executive_summary"`
	Yearly           []YearlyComparison `json:"yearly"`
	Quarters         []QuarterlySummary `json:"quarters"` // Apenas os últimos trimestres
	Brands           []BrandShare       `json:"brands"`
}

type ExecutiveSummary struct {
	TotalUnits       int     `json:"total_units"`
	TotalRevenue     float64 `json:"total_revenue"`
	LatestYear       int     `json:"latest_year"`
	LatestYearGrowth float64 `json:"latest_year_growth"`
}

// BrandShare é a performance da marca acrescida da participação no total de unidades
type BrandShare struct {
	BrandPerformance
	MarketShare float64 `json:"market_share"`
}
