package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vehicle-sales-api/internal/api/handler/router"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/inventory"
	inventorymocks "github.com/vfg2006/vehicle-sales-api/internal/usecases/inventory/mocks"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/vehicle-sales-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/vehicle-sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeCronJob struct {
	triggered int
	running   bool
}

func (f *fakeCronJob) TriggerManualSync() bool {
	if f.running {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.running}
}

// newTestRouter monta todas as rotas; serviços nil viram mocks sem expectativas
func newTestRouter(t *testing.T, reporter reporting.Reporter, manager inventory.Manager, cron CronJobServices) router.Router {
	t.Helper()

	if reporter == nil {
		reporter = reportingmocks.NewMockReporter(gomock.NewController(t))
	}
	if manager == nil {
		manager = inventorymocks.NewMockManager(gomock.NewController(t))
	}

	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Dashboard(reporter)...),
		router.WithRoutes(Reports(reporter)...),
		router.WithRoutes(Vehicles(manager)...),
		router.WithRoutes(CronJobs(cron)...),
	)
}

func serve(rt http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthcheck(t *testing.T) {
	rt := newTestRouter(t, nil, nil, CronJobServices{})

	rec := serve(rt, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestDashboardRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	rt := newTestRouter(t, reporter, nil, CronJobServices{})

	tests := []struct {
		name       string
		path       string
		setup      func()
		wantStatus int
		wantBody   string
	}{
		{
			name: "Painel",
			path: "/v1/dashboard",
			setup: func() {
				reporter.EXPECT().GetDashboard(gomock.Any()).Return(&domain.DashboardSummary{TotalUnits: 42}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_units":42`,
		},
		{
			name: "Resumo trimestral",
			path: "/v1/sales/quarterly",
			setup: func() {
				reporter.EXPECT().GetQuarterlySummary(gomock.Any()).Return([]domain.QuarterlySummary{
					{Year: 2023, Quarter: 1, TotalUnits: 15, TotalRevenue: 450000, TopBrand: "Toyota"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"top_brand":"Toyota"`,
		},
		{
			name: "Comparação anual",
			path: "/v1/sales/yearly",
			setup: func() {
				reporter.EXPECT().GetYearlyComparison(gomock.Any()).Return([]domain.YearlyComparison{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "Ranking de marcas",
			path: "/v1/sales/brands",
			setup: func() {
				reporter.EXPECT().GetBrandPerformance(gomock.Any()).Return([]domain.BrandPerformance{{Brand: "Ford", Units: 3}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"brand":"Ford"`,
		},
		{
			name: "Vendas ainda não carregadas",
			path: "/v1/sales/categories",
			setup: func() {
				reporter.EXPECT().GetCategoryBreakdown(gomock.Any()).Return(nil, reporting.ErrSalesNotLoaded)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"code":"SRV_005"`,
		},
		{
			name: "Erro inesperado",
			path: "/v1/reports/sales",
			setup: func() {
				reporter.EXPECT().GetReport(gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"SRV_001"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(rt, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestExportSalesReportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	rt := newTestRouter(t, reporter, nil, CronJobServices{})

	t.Run("Anexo CSV", func(t *testing.T) {
		reporter.EXPECT().ExportReportCSV(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "Vehicle Sales Dashboard Report\n")
				return err
			})

		rec := serve(rt, http.MethodGet, "/v1/reports/sales.csv", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Regexp(t, `^attachment; filename="vehicle-sales-report-\d{4}-\d{2}-\d{2}\.csv"$`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "Vehicle Sales Dashboard Report\n", rec.Body.String())
	})

	t.Run("Falha no meio da exportação vira erro", func(t *testing.T) {
		reporter.EXPECT().ExportReportCSV(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w io.Writer) error {
				_, _ = io.WriteString(w, "parcial")
				return reporting.ErrExportReport
			})

		rec := serve(rt, http.MethodGet, "/v1/reports/sales.csv", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Disposition"))
		assert.NotContains(t, rec.Body.String(), "parcial")
	})
}

func TestVehicleRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := inventorymocks.NewMockManager(ctrl)
	rt := newTestRouter(t, nil, manager, CronJobServices{})

	vehicle := &domain.Vehicle{ID: "v1", Registration: "ABC-1234", Brand: "Audi", Status: domain.VehicleStatusAvailable}

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func()
		wantStatus int
		wantBody   string
		wantCode   string
	}{
		{
			name:   "Lista com filtros e paginação",
			method: http.MethodGet,
			path:   "/v1/vehicles?search=aud&status=Available&brand=all&page=2&per_page=5",
			setup: func() {
				manager.EXPECT().ListVehicles(gomock.Any(), domain.VehicleFilters{
					Search: "aud", Status: "Available", Brand: "all", Page: 2, PerPage: 5,
				}).Return(&domain.VehiclePage{Items: []domain.Vehicle{*vehicle}, Page: 2, PerPage: 5, TotalItems: 6}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_items":6`,
		},
		{
			name:       "Paginação inválida",
			method:     http.MethodGet,
			path:       "/v1/vehicles?page=dois",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "Marcas do estoque",
			method: http.MethodGet,
			path:   "/v1/inventory/brands",
			setup: func() {
				manager.EXPECT().ListBrands(gomock.Any()).Return([]string{"Audi", "BMW"})
			},
			wantStatus: http.StatusOK,
			wantBody:   `["Audi","BMW"]`,
		},
		{
			name:   "Busca por id",
			method: http.MethodGet,
			path:   "/v1/vehicles/v1",
			setup: func() {
				manager.EXPECT().GetVehicle(gomock.Any(), "v1").Return(vehicle, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"registration":"ABC-1234"`,
		},
		{
			name:   "Veículo inexistente",
			method: http.MethodGet,
			path:   "/v1/vehicles/nope",
			setup: func() {
				manager.EXPECT().GetVehicle(gomock.Any(), "nope").
					Return(nil, inventory.NewInventoryErrorWithID(inventory.ErrVehicleNotFound, apiErrors.ErrVehicleNotFound, "nope", ""))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrVehicleNotFound,
		},
		{
			name:   "Criação",
			method: http.MethodPost,
			path:   "/v1/vehicles",
			body:   `{"brand":"Audi","model":"Audi A4","value":40000,"category":"Sedan"}`,
			setup: func() {
				manager.EXPECT().CreateVehicle(gomock.Any(), domain.CreateVehicleRequest{
					Brand: "Audi", Model: "Audi A4", Value: 40000, Category: domain.CategorySedan,
				}).Return(vehicle, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"v1"`,
		},
		{
			name:       "Criação com JSON inválido",
			method:     http.MethodPost,
			path:       "/v1/vehicles",
			body:       `{"brand":`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "Atualização com status desconhecido",
			method: http.MethodPut,
			path:   "/v1/vehicles/v1",
			body:   `{"status":"Leased"}`,
			setup: func() {
				manager.EXPECT().UpdateVehicle(gomock.Any(), "v1", gomock.Any()).
					Return(nil, inventory.NewInventoryErrorWithID(inventory.ErrInvalidVehicleData, apiErrors.ErrInvalidVehicleData, "v1", "status desconhecido"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidVehicleData,
		},
		{
			name:   "Atualização parcial",
			method: http.MethodPut,
			path:   "/v1/vehicles/v1",
			body:   `{"mileage":21000}`,
			setup: func() {
				manager.EXPECT().UpdateVehicle(gomock.Any(), "v1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, req domain.UpdateVehicleRequest) (*domain.Vehicle, error) {
						require.NotNil(t, req.Mileage)
						assert.Equal(t, 21000, *req.Mileage)
						assert.Nil(t, req.Status)
						return vehicle, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Remoção",
			method: http.MethodDelete,
			path:   "/v1/vehicles/v1",
			setup: func() {
				manager.EXPECT().DeleteVehicle(gomock.Any(), "v1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "Erro desconhecido do estoque",
			method: http.MethodDelete,
			path:   "/v1/vehicles/v1",
			setup: func() {
				manager.EXPECT().DeleteVehicle(gomock.Any(), "v1").Return(errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(rt, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestVehicleRoutes_RequireJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := newTestRouter(t, nil, inventorymocks.NewMockManager(ctrl), CronJobServices{})

	req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", strings.NewReader("brand=Audi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestCronJobRoutes(t *testing.T) {
	t.Run("Dispara o aquecimento do painel", func(t *testing.T) {
		job := &fakeCronJob{}
		rt := newTestRouter(t, nil, nil, CronJobServices{DashboardWarmupService: job})

		rec := serve(rt, http.MethodPost, "/v1/cron/dashboard-warmup/run", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, job.triggered)
		assert.Contains(t, rec.Body.String(), "iniciada com sucesso")
	})

	t.Run("Execução já em andamento", func(t *testing.T) {
		job := &fakeCronJob{running: true}
		rt := newTestRouter(t, nil, nil, CronJobServices{DashboardWarmupService: job})

		rec := serve(rt, http.MethodPost, "/v1/cron/dashboard-warmup/run", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 0, job.triggered)
		assert.Contains(t, rec.Body.String(), "já está em execução")
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rt := newTestRouter(t, nil, nil, CronJobServices{DashboardWarmupService: &fakeCronJob{}})

		rec := serve(rt, http.MethodPost, "/v1/cron/meta/run", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Serviço não configurado", func(t *testing.T) {
		rt := newTestRouter(t, nil, nil, CronJobServices{})

		rec := serve(rt, http.MethodPost, "/v1/cron/dashboard-warmup/run", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Status", func(t *testing.T) {
		rt := newTestRouter(t, nil, nil, CronJobServices{DashboardWarmupService: &fakeCronJob{running: true}})

		rec := serve(rt, http.MethodGet, "/v1/cron/status", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"dashboard-warmup":{"sync_running":true}}`, rec.Body.String())
	})
}
