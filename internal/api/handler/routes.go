package handler

import (
	"net/http"

	"github.com/vfg2006/vehicle-sales-api/internal/api/handler/router"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/inventory"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/vehicle-sales-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/sales/quarterly",
			Method:  http.MethodGet,
			Handler: GetQuarterlySummary(service),
		},
		{
			Path:    "/v1/sales/yearly",
			Method:  http.MethodGet,
			Handler: GetYearlyComparison(service),
		},
		{
			Path:    "/v1/sales/brands",
			Method:  http.MethodGet,
			Handler: GetBrandPerformance(service),
		},
		{
			Path:    "/v1/sales/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryBreakdown(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/sales",
			Method:  http.MethodGet,
			Handler: GetSalesReport(service),
		},
		{
			Path:    "/v1/reports/sales.csv",
			Method:  http.MethodGet,
			Handler: ExportSalesReportCSV(service),
		},
	}
}

func Vehicles(service inventory.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/vehicles",
			Method:  http.MethodGet,
			Handler: ListVehicles(service),
		},
		{
			Path:        "/v1/vehicles",
			Method:      http.MethodPost,
			Handler:     CreateVehicle(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireJSON()},
		},
		{
			Path:    "/v1/vehicles/:id",
			Method:  http.MethodGet,
			Handler: GetVehicle(service),
		},
		{
			Path:        "/v1/vehicles/:id",
			Method:      http.MethodPut,
			Handler:     UpdateVehicle(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireJSON()},
		},
		{
			Path:    "/v1/vehicles/:id",
			Method:  http.MethodDelete,
			Handler: DeleteVehicle(service),
		},
		{
			Path:    "/v1/inventory/brands",
			Method:  http.MethodGet,
			Handler: ListVehicleBrands(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
