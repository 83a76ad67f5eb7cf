package cli

import (
	"fmt"
	"io"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/vehicle-sales-api/internal/app"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ValidFormats são os formatos aceitos por report --format
var ValidFormats = []string{"text", "json", "csv"}

func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o relatório de vendas",
		Long: `Gera o relatório de vendas com resumo executivo, comparação anual,
os últimos trimestres e as dez marcas que mais venderam.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, format) {
				return fmt.Errorf("formato inválido %q: use um de %v", format, ValidFormats)
			}

			cfg, err := rootOpts.config(cmd)
			if err != nil {
				return err
			}

			sources, err := app.NewDataSources(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer sources.Close()

			service := reporting.NewService(sources.Sales, nil)
			if err := service.LoadSales(cmd.Context()); err != nil {
				return err
			}

			report, err := service.GetReport(cmd.Context())
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "formato de saída (text|json|csv)")

	return cmd
}

func writeReport(w io.Writer, format string, report *domain.SalesReport) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "csv":
		return reporting.WriteReportCSV(w, report)
	default:
		return reporting.WriteReportText(w, report)
	}
}
