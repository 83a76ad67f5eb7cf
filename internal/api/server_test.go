package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vehicle-sales-api/internal/api/handler"
	"github.com/vfg2006/vehicle-sales-api/internal/config"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	inventorymocks "github.com/vfg2006/vehicle-sales-api/internal/usecases/inventory/mocks"
	reportingmocks "github.com/vfg2006/vehicle-sales-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/vehicle-sales-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:5173"}},
	}
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := New(testConfig(), nil, nil, nil)
	assert.Error(t, err)

	srv, err := New(testConfig(), reportingmocks.NewMockReporter(ctrl), inventorymocks.NewMockManager(ctrl), nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.httpServer.Addr)
}

func TestHandlerChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	h := newHandler(testConfig(), reporter, inventorymocks.NewMockManager(ctrl), handler.CronJobServices{})

	t.Run("Resposta com correlation id e CORS", func(t *testing.T) {
		reporter.EXPECT().GetDashboard(gomock.Any()).Return(&domain.DashboardSummary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight não chega no router", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/vehicles/v1", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	})

	t.Run("Panic vira SRV_001", func(t *testing.T) {
		reporter.EXPECT().GetYearlyComparison(gomock.Any()).DoAndReturn(func(any) ([]domain.YearlyComparison, error) {
			panic("falha inesperada")
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales/yearly", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)
	})
}
