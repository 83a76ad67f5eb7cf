package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/vehicle-sales-api/pkg/apiErrors"
)

// writeReportingError traduz os erros do serviço de relatórios para a resposta da API
func writeReportingError(w http.ResponseWriter, err error, message string) {
	logrus.WithError(err).Error(message)

	if errors.Is(err, reporting.ErrSalesNotLoaded) {
		apiErrors.WriteError(w, apiErrors.ErrDataNotLoaded, "Dados de vendas ainda não carregados", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

// aggregateHandler responde com o resultado de uma das agregações do serviço de relatórios
func aggregateHandler[T any](fetch func(ctx context.Context) (T, error), message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := fetch(r.Context())
		if err != nil {
			writeReportingError(w, err, message)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return aggregateHandler(service.GetDashboard, "Erro ao montar o painel de vendas")
}

func GetQuarterlySummary(service reporting.Reporter) http.HandlerFunc {
	return aggregateHandler(service.GetQuarterlySummary, "Erro ao calcular o resumo trimestral")
}

func GetYearlyComparison(service reporting.Reporter) http.HandlerFunc {
	return aggregateHandler(service.GetYearlyComparison, "Erro ao calcular a comparação anual")
}

func GetBrandPerformance(service reporting.Reporter) http.HandlerFunc {
	return aggregateHandler(service.GetBrandPerformance, "Erro ao calcular o ranking de marcas")
}

func GetCategoryBreakdown(service reporting.Reporter) http.HandlerFunc {
	return aggregateHandler(service.GetCategoryBreakdown, "Erro ao calcular as vendas por categoria")
}
