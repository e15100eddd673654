package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-advisor-api/infrastructure/repository"
	"github.com/vfg2006/campaign-advisor-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-advisor-api/internal/usecases/recommending"
	"github.com/vfg2006/campaign-advisor-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/auth/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Predictions(service recommending.Recommender, cycles CycleCounter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/predictions/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyPredictions(service, cycles),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/predictions/range",
			Method:      http.MethodGet,
			Handler:     GetRangePredictions(service, cycles),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/predictions/range/adsets",
			Method:      http.MethodGet,
			Handler:     GetAdsetRangePredictions(service, cycles),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/predictions/evaluate",
			Method:      http.MethodPost,
			Handler:     EvaluatePredictions(service, cycles),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func DecisionHistory(repo repository.DecisionRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/predictions/runs/:run_id",
			Method:      http.MethodGet,
			Handler:     GetRunDecisions(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func AdsetStatus(service recommending.Recommender) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/adsets/status",
			Method:      http.MethodPost,
			Handler:     UpdateAdsetStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
