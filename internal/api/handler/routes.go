package handler

import (
	"net/http"

	"github.com/gpaizante/gestao-caixa-api/internal/api/handler/router"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/forecasting"
	"github.com/gpaizante/gestao-caixa-api/internal/usecases/ledgering"
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

func Purchases(service ledgering.LedgerService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/purchases",
			Method:  http.MethodGet,
			Handler: ListPurchases(service),
		},
		{
			Path:    "/v1/purchases",
			Method:  http.MethodPost,
			Handler: CreatePurchase(service),
		},
		{
			Path:    "/v1/purchases/:id",
			Method:  http.MethodDelete,
			Handler: DeletePurchase(service),
		},
	}
}

func Sales(service ledgering.LedgerService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

func Indicators(service forecasting.ForecastService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/indicators",
			Method:  http.MethodGet,
			Handler: GetIndicators(service),
		},
		{
			Path:    "/v1/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(service),
		},
		{
			Path:    "/v1/forecast",
			Method:  http.MethodPost,
			Handler: SetForecast(service),
		},
	}
}

func History(service forecasting.ForecastService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/history",
			Method:  http.MethodGet,
			Handler: ListHistory(service),
		},
		{
			Path:    "/v1/history/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSnapshot(service),
		},
	}
}

func Planning() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/planning/eoq",
			Method:  http.MethodPost,
			Handler: ComputeEOQ(),
		},
		{
			Path:    "/v1/planning/cash-turnover",
			Method:  http.MethodPost,
			Handler: ComputeCashTurnover(),
		},
		{
			Path:    "/v1/planning/productivity",
			Method:  http.MethodPost,
			Handler: ComputeProductivity(),
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
