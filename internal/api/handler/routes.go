package handler

import (
	"net/http"

	"github.com/dashmeta/intraday-metrics-api/internal/api/handler/router"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/insighting"
	"github.com/dashmeta/intraday-metrics-api/internal/usecases/snapshotting"
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

func Collection(service snapshotting.Collector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/collect",
			Method:  http.MethodPost,
			Handler: Collect(service),
		},
	}
}

func Intraday(service insighting.IntradayInsighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/intraday/:level",
			Method:  http.MethodGet,
			Handler: GetIntradayByLevel(service),
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
