// Package aggregating contém as funções puras que transformam registros de venda
// nos resumos exibidos pelo painel (trimestral, anual, por marca e por categoria).
//
// Nenhuma função retém estado entre chamadas nem altera a entrada, então podem ser
// chamadas de qualquer goroutine sem coordenação.
package aggregating

import (
	"sort"

	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	"github.com/vfg2006/vehicle-sales-api/pkg/utils"
)

// TopBrandsLimit é o tamanho máximo do ranking de marcas
const TopBrandsLimit = 10

type quarterKey struct {
	year    int
	quarter int
}

type totals struct {
	units   int
	revenue float64
}

func (t totals) add(record domain.SalesRecord) totals {
	return totals{
		units:   t.units + record.UnitsSold,
		revenue: t.revenue + record.Revenue,
	}
}

type brandInQuarter struct {
	quarter quarterKey
	brand   string
}

// QuarterlySummary agrupa as vendas por (ano, trimestre), ordenado de forma crescente.
// A marca líder de cada trimestre é a de maior soma de unidades; em caso de empate
// vence a que apareceu primeiro na entrada.
func QuarterlySummary(records []domain.SalesRecord) []domain.QuarterlySummary {
	quarters := newPartition[quarterKey, totals]()
	brands := newPartition[brandInQuarter, int]()

	for _, record := range records {
		key := quarterKey{year: record.Year, quarter: record.Quarter}
		quarters.fold(key, func(acc totals) totals { return acc.add(record) })
		brands.fold(brandInQuarter{quarter: key, brand: record.Brand}, func(units int) int {
			return units + record.UnitsSold
		})
	}

	// A ordem global de primeiro encontro de (trimestre, marca) é a mesma ordem
	// de encontro dentro de cada trimestre, então basta uma passada.
	type leader struct {
		brand string
		units int
	}
	leaders := make(map[quarterKey]leader, quarters.len())
	brands.each(func(key brandInQuarter, units int) {
		if units > leaders[key.quarter].units {
			leaders[key.quarter] = leader{brand: key.brand, units: units}
		}
	})

	summaries := make([]domain.QuarterlySummary, 0, quarters.len())
	quarters.each(func(key quarterKey, acc totals) {
		summaries = append(summaries, domain.QuarterlySummary{
			Year:         key.year,
			Quarter:      key.quarter,
			TotalUnits:   acc.units,
			TotalRevenue: acc.revenue,
			TopBrand:     leaders[key].brand,
		})
	})

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Year != summaries[j].Year {
			return summaries[i].Year < summaries[j].Year
		}
		return summaries[i].Quarter < summaries[j].Quarter
	})

	return summaries
}

// YearlyComparison agrupa as vendas por ano, em ordem crescente, com a taxa de
// crescimento de unidades em relação ao ano anterior. O primeiro ano e anos cujo
// anterior não vendeu nada ficam com crescimento 0.
func YearlyComparison(records []domain.SalesRecord) []domain.YearlyComparison {
	years := newPartition[int, totals]()
	for _, record := range records {
		years.fold(record.Year, func(acc totals) totals { return acc.add(record) })
	}

	comparison := make([]domain.YearlyComparison, 0, years.len())
	years.each(func(year int, acc totals) {
		comparison = append(comparison, domain.YearlyComparison{
			Year:         year,
			TotalUnits:   acc.units,
			TotalRevenue: acc.revenue,
		})
	})

	sort.Slice(comparison, func(i, j int) bool {
		return comparison[i].Year < comparison[j].Year
	})

	for i := 1; i < len(comparison); i++ {
		comparison[i].GrowthRate = utils.PercentChange(
			float64(comparison[i].TotalUnits),
			float64(comparison[i-1].TotalUnits),
		)
	}

	return comparison
}

// BrandPerformance retorna as TopBrandsLimit marcas com mais unidades vendidas.
// Empates mantêm a ordem de primeiro encontro.
func BrandPerformance(records []domain.SalesRecord) []domain.BrandPerformance {
	brands := newPartition[string, totals]()
	for _, record := range records {
		brands.fold(record.Brand, func(acc totals) totals { return acc.add(record) })
	}

	performance := make([]domain.BrandPerformance, 0, brands.len())
	brands.each(func(brand string, acc totals) {
		performance = append(performance, domain.BrandPerformance{
			Brand:   brand,
			Units:   acc.units,
			Revenue: acc.revenue,
		})
	})

	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].Units > performance[j].Units
	})

	if len(performance) > TopBrandsLimit {
		performance = performance[:TopBrandsLimit]
	}

	return performance
}

// CategoryBreakdown soma as unidades por categoria na ordem em que cada categoria
// aparece pela primeira vez (sem ordenação).
func CategoryBreakdown(records []domain.SalesRecord) []domain.CategoryBreakdown {
	categories := newPartition[domain.VehicleCategory, int]()
	for _, record := range records {
		categories.fold(record.Category, func(units int) int { return units + record.UnitsSold })
	}

	breakdown := make([]domain.CategoryBreakdown, 0, categories.len())
	categories.each(func(category domain.VehicleCategory, units int) {
		breakdown = append(breakdown, domain.CategoryBreakdown{
			Category: category,
			Units:    units,
		})
	})

	return breakdown
}

func TotalUnits(records []domain.SalesRecord) int {
	total := 0
	for _, record := range records {
		total += record.UnitsSold
	}
	return total
}

func TotalRevenue(records []domain.SalesRecord) float64 {
	total := 0.0
	for _, record := range records {
		total += record.Revenue
	}
	return total
}
