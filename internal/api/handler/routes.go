package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/renderer"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
)

func Healthcheck(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Products(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
	}
}

func Sessions(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(service),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetSession(service),
		},
		{
			Path:    "/v1/sessions/:id/product",
			Method:  http.MethodPut,
			Handler: SelectProduct(service),
		},
	}
}

// Charts retorna as rotas do gráfico de vendas e seus gestos de pan/zoom
func Charts(service dashboard.Dashboarder, imageRenderer renderer.ChartImageRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions/:id/chart",
			Method:  http.MethodGet,
			Handler: GetChart(service),
		},
		{
			Path:    "/v1/sessions/:id/chart/image",
			Method:  http.MethodGet,
			Handler: GetChartImage(service, imageRenderer),
		},
		{
			Path:    "/v1/sessions/:id/chart/pan",
			Method:  http.MethodPost,
			Handler: PanChart(service),
		},
		{
			Path:    "/v1/sessions/:id/chart/zoom",
			Method:  http.MethodPost,
			Handler: ZoomChart(service),
		},
		{
			Path:    "/v1/sessions/:id/chart/reset",
			Method:  http.MethodPost,
			Handler: ResetChartZoom(service),
		},
	}
}

func Tables(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions/:id/table",
			Method:  http.MethodGet,
			Handler: GetTable(service),
		},
		{
			Path:    "/v1/sessions/:id/table/sort",
			Method:  http.MethodPost,
			Handler: SortTable(service),
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
