package domain

import "time"

type QuarterlySummary struct {
	Year         int     `json:"year"`
	Quarter      int     `json:"quarter"`
	TotalUnits   int     `json:"total_units"`
	TotalRevenue float64 `json:"total_revenue"`
	TopBrand     string  `json:"top_brand"`
}

type YearlyComparison struct {
	Year         int     `json:"year"`
	TotalUnits   int     `json:"total_units"`
	TotalRevenue float64 `json:"total_revenue"`
	GrowthRate   float64 `json:"growth_rate"` // Percentual em relação ao ano anterior
}

type BrandPerformance struct {
	Brand   string  `json:"brand"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

type CategoryBreakdown struct {
	Category VehicleCategory `json:"category"`
	Units    int             `json:"units"`
}

// DashboardSummary agrupa os indicadores exibidos no painel de vendas
type DashboardSummary struct {
	TotalUnits        int                 `json:"total_units"`
	TotalRevenue      float64             `json:"total_revenue"`
	AverageRevenue    float64             `json:"average_revenue"` // Receita média por unidade vendida
	LatestYear        int                 `json:"latest_year"`
	LatestYearGrowth  float64             `json:"latest_year_growth"`
	QuarterlyGrowth   float64             `json:"quarterly_growth"`
	CurrentQuarter    *QuarterlySummary   `json:"current_quarter"`
	QuarterlySummary  []QuarterlySummary  `json:"quarterly_summary"`
	YearlyComparison  []YearlyComparison  `json:"yearly_comparison"`
	BrandPerformance  []BrandPerformance  `json:"brand_performance"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	GeneratedAt       time.Time           `json:"generated_at"`
}
