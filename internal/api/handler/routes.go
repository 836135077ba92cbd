package handler

import (
	"net/http"

	"github.com/vfg2006/portal-comercial-api/internal/api/handler/router"
	"github.com/vfg2006/portal-comercial-api/internal/usecases/importing"
	"github.com/vfg2006/portal-comercial-api/pkg/middleware"
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

func Imports(importer importing.Importer, base importing.Options, runs RunQuerier) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/imports",
			Method:      http.MethodPost,
			Handler:     ImportFile(importer, base),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/imports",
			Method:      http.MethodGet,
			Handler:     ListImports(runs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
		{
			Path:        "/v1/imports/:id",
			Method:      http.MethodGet,
			Handler:     GetImport(runs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}

func Salespeople(names NameLookup, finder importing.SalespersonFinder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/salespeople/:code",
			Method:      http.MethodGet,
			Handler:     GetSalespersonName(names, finder),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGestor()},
		},
	}
}
