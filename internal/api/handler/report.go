package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/reporting"
)

func GetSalesReport(service reporting.Reporter) http.HandlerFunc {
	return aggregateHandler(service.GetReport, "Erro ao gerar o relatório de vendas")
}

// ExportSalesReportCSV gera o relatório inteiro em memória antes de responder,
// assim uma falha no meio ainda vira uma resposta de erro.
func ExportSalesReportCSV(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := service.ExportReportCSV(r.Context(), &buf); err != nil {
			writeReportingError(w, err, "Erro ao exportar o relatório de vendas")
			return
		}

		filename := fmt.Sprintf("vehicle-sales-report-%s.csv", time.Now().Format(time.DateOnly))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar o relatório CSV")
		}
	}
}
