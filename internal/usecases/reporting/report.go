package reporting

import (
	"time"

	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/aggregating"
	"github.com/vfg2006/vehicle-sales-api/pkg/utils"
)

const (
	ReportTitle = "Vehicle Sales Dashboard Report"

	// ReportQuarters é quantos trimestres (os mais recentes) entram no relatório
	ReportQuarters = 8
)

func buildDashboard(records []domain.SalesRecord, now time.Time) *domain.DashboardSummary {
	quarterly := aggregating.QuarterlySummary(records)
	yearly := aggregating.YearlyComparison(records)
	totalUnits := aggregating.TotalUnits(records)
	totalRevenue := aggregating.TotalRevenue(records)

	summary := &domain.DashboardSummary{
		TotalUnits:        totalUnits,
		TotalRevenue:      utils.RoundWithTwoDecimalPlace(totalRevenue),
		QuarterlySummary:  quarterly,
		YearlyComparison:  yearly,
		BrandPerformance:  aggregating.BrandPerformance(records),
		CategoryBreakdown: aggregating.CategoryBreakdown(records),
		GeneratedAt:       now,
	}

	if totalUnits > 0 {
		summary.AverageRevenue = utils.RoundWithTwoDecimalPlace(totalRevenue / float64(totalUnits))
	}

	if len(yearly) > 0 {
		latest := yearly[len(yearly)-1]
		summary.LatestYear = latest.Year
		summary.LatestYearGrowth = latest.GrowthRate
	}

	if len(quarterly) > 0 {
		current := quarterly[len(quarterly)-1]
		summary.CurrentQuarter = &current

		if len(quarterly) > 1 {
			previous := quarterly[len(quarterly)-2]
			summary.QuarterlyGrowth = utils.PercentChange(float64(current.TotalUnits), float64(previous.TotalUnits))
		}
	}

	return summary
}

func buildReport(records []domain.SalesRecord, now time.Time) *domain.SalesReport {
	quarterly := aggregating.QuarterlySummary(records)
	yearly := aggregating.YearlyComparison(records)
	totalUnits := aggregating.TotalUnits(records)

	report := &domain.SalesReport{
		Title:       ReportTitle,
		GeneratedAt: now,
		ExecutiveSummary: domain.ExecutiveSummary{
			TotalUnits:   totalUnits,
			TotalRevenue: utils.RoundWithTwoDecimalPlace(aggregating.TotalRevenue(records)),
		},
		Yearly:   yearly,
		Quarters: lastQuarters(quarterly, ReportQuarters),
		Brands:   make([]domain.BrandShare, 0, aggregating.TopBrandsLimit),
	}

	if len(yearly) > 0 {
		latest := yearly[len(yearly)-1]
		report.ExecutiveSummary.LatestYear = latest.Year
		report.ExecutiveSummary.LatestYearGrowth = latest.GrowthRate
	}

	for _, brand := range aggregating.BrandPerformance(records) {
		report.Brands = append(report.Brands, domain.BrandShare{
			BrandPerformance: brand,
			MarketShare:      utils.Share(float64(brand.Units), float64(totalUnits)),
		})
	}

	return report
}

func lastQuarters(quarterly []domain.QuarterlySummary, n int) []domain.QuarterlySummary {
	if len(quarterly) <= n {
		return quarterly
	}
	return quarterly[len(quarterly)-n:]
}
