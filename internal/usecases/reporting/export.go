package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const reportDateLayout = "2006-01-02"

var printer = message.NewPrinter(language.English)

func formatUnits(units int) string {
	return printer.Sprintf("%d", units)
}

// formatMillions mostra receita em milhões com uma casa (ex: 1.7)
func formatMillions(revenue float64) string {
	return fmt.Sprintf("%.1f", revenue/1_000_000)
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.1f", value)
}

func yearRange(report *domain.SalesReport) string {
	if len(report.Yearly) == 0 {
		return "-"
	}
	return fmt.Sprintf("%d-%d", report.Yearly[0].Year, report.Yearly[len(report.Yearly)-1].Year)
}

// WriteReportCSV escreve as mesmas seções do relatório impresso, uma tabela após a outra
func WriteReportCSV(w io.Writer, report *domain.SalesReport) error {
	summary := report.ExecutiveSummary

	rows := [][]string{
		{report.Title},
		{"Generated on", report.GeneratedAt.Format(reportDateLayout)},
		{"Executive Summary"},
		{"Total Units Sold", formatUnits(summary.TotalUnits)},
		{"Total Revenue ($M)", formatMillions(summary.TotalRevenue)},
		{fmt.Sprintf("Growth Rate (%d)", summary.LatestYear), formatPercent(summary.LatestYearGrowth) + "%"},
		{"Yearly Performance Comparison"},
		{"Year", "Units Sold", "Revenue ($M)", "Growth Rate (%)"},
	}

	for _, year := range report.Yearly {
		rows = append(rows, []string{
			fmt.Sprint(year.Year),
			formatUnits(year.TotalUnits),
			formatMillions(year.TotalRevenue),
			formatPercent(year.GrowthRate),
		})
	}

	rows = append(rows,
		[]string{"Quarterly Performance Summary"},
		[]string{"Quarter", "Units Sold", "Revenue ($M)", "Top Brand"},
	)
	for _, quarter := range report.Quarters {
		rows = append(rows, []string{
			fmt.Sprintf("%d Q%d", quarter.Year, quarter.Quarter),
			formatUnits(quarter.TotalUnits),
			formatMillions(quarter.TotalRevenue),
			quarter.TopBrand,
		})
	}

	rows = append(rows,
		[]string{"Top 10 Brand Performance"},
		[]string{"Brand", "Units Sold", "Revenue ($M)", "Market Share (%)"},
	)
	for _, brand := range report.Brands {
		rows = append(rows, []string{
			brand.Brand,
			formatUnits(brand.Units),
			formatMillions(brand.Revenue),
			formatPercent(brand.MarketShare),
		})
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("%w: %v", ErrExportReport, err)
	}

	return nil
}

// WriteReportText escreve o relatório para leitura no terminal
func WriteReportText(w io.Writer, report *domain.SalesReport) error {
	summary := report.ExecutiveSummary
	period := yearRange(report)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n", report.Title)
	fmt.Fprintf(tw, "Generated on: %s\n\n", report.GeneratedAt.Format(reportDateLayout))

	fmt.Fprintln(tw, "Executive Summary")
	fmt.Fprintf(tw, "Total Units Sold (%s): %s\n", period, formatUnits(summary.TotalUnits))
	fmt.Fprintf(tw, "Total Revenue (%s): $%sM\n", period, formatMillions(summary.TotalRevenue))
	fmt.Fprintf(tw, "Growth Rate (%d): %s%%\n\n", summary.LatestYear, formatPercent(summary.LatestYearGrowth))

	fmt.Fprintln(tw, "Yearly Performance Comparison")
	fmt.Fprintln(tw, "Year\tUnits Sold\tRevenue ($M)\tGrowth Rate (%)")
	for _, year := range report.Yearly {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", year.Year, formatUnits(year.TotalUnits), formatMillions(year.TotalRevenue), formatPercent(year.GrowthRate))
	}

	fmt.Fprintln(tw, "\nQuarterly Performance Summary")
	fmt.Fprintln(tw, "Quarter\tUnits Sold\tRevenue ($M)\tTop Brand")
	for _, quarter := range report.Quarters {
		fmt.Fprintf(tw, "%d Q%d\t%s\t%s\t%s\n", quarter.Year, quarter.Quarter, formatUnits(quarter.TotalUnits), formatMillions(quarter.TotalRevenue), quarter.TopBrand)
	}

	fmt.Fprintln(tw, "\nTop 10 Brand Performance")
	fmt.Fprintln(tw, "Brand\tUnits Sold\tRevenue ($M)\tMarket Share (%)")
	for _, brand := range report.Brands {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", brand.Brand, formatUnits(brand.Units), formatMillions(brand.Revenue), formatPercent(brand.MarketShare))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrExportReport, err)
	}

	return nil
}
