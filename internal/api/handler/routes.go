package handler

import (
	"net/http"

	"github.com/vfg2006/annual-summary-api/internal/api/handler/router"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authorizing"
	"github.com/vfg2006/annual-summary-api/internal/usecases/summarizing"
	"github.com/vfg2006/annual-summary-api/pkg/middleware"
)

// RPCAnnualSummaryPath é o caminho do método whitelisted no ERP
const RPCAnnualSummaryPath = "/api/method/management_dashboard.api.annual_summary.get_annual_summary"

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// AnnualSummary registra o relatório anual e o contexto inicial do dashboard.
// O papel e a empresa são conferidos pelo AccessGuard dentro do caso de uso.
func AnnualSummary(service summarizing.Summarizer, guard authorizing.AccessGuard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/annual-summary",
			Method:  http.MethodGet,
			Handler: GetAnnualSummary(service),
		},
		{
			Path:    "/v1/annual-summary/context",
			Method:  http.MethodGet,
			Handler: GetDashboardContext(guard),
		},
		{
			Path:    RPCAnnualSummaryPath,
			Method:  http.MethodGet,
			Handler: GetAnnualSummaryRPC(service),
		},
		{
			Path:    RPCAnnualSummaryPath,
			Method:  http.MethodPost,
			Handler: GetAnnualSummaryRPC(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.SystemManagerOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.SystemManagerOnly()},
		},
	}
}
