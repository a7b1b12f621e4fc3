// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"marketwatch/internal/platform/config"
	"marketwatch/internal/platform/logger"
	"marketwatch/internal/platform/metrics"
	phttp "marketwatch/internal/platform/net/http"
	"marketwatch/internal/platform/store"

	"marketwatch/internal/modkit"
	"marketwatch/internal/modkit/httpkit"
	"marketwatch/internal/modkit/module"
	"marketwatch/internal/modkit/swaggerkit"

	kpimod "marketwatch/internal/services/api/kpi/module"
	metamod "marketwatch/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Registry backs /metrics, nil disables the endpoint and the request counter
	Registry *prometheus.Registry
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.CH = opt.Store.CH
	}
	if opt.Registry != nil {
		deps.Metrics = opt.Registry
	}

	// health checks under /meta stay unthrottled
	cfg := opt.Config.Prefix("CORE_API_")
	throttle := httpkit.Throttled(cfg.MayFloat64("RATE_RPS", 0), cfg.MayInt("RATE_BURST", 20))

	mods := []modkit.Module{
		metamod.New(deps),
		kpimod.New(deps, modkit.WithSwagger(opt.EnableSwagger), modkit.WithMiddlewares(throttle)),
	}

	r.Use(httpkit.Heartbeat("/ping"))

	mws := httpkit.CommonStack(httpkit.StackOptions{
		Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		Origins:     strings.Fields(strings.ReplaceAll(cfg.MayString("CORS_ORIGINS", ""), ",", " ")),
	})
	if opt.Registry != nil {
		mws = append(mws, metrics.NewHTTP(opt.Registry).Middleware)
		r.Handle("/metrics", metrics.Handler(opt.Registry))
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountVersion(r, "v1", mws, func(api httpkit.Router) {
		for _, m := range mods {
			// ports are looked up by module name
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}

// Handler builds a chi backed router with the API mounted, used by tests and the cli
func Handler(opt Options) http.Handler {
	s := phttp.NewServer(opt.Config)
	Mount(s.Router(), opt)
	return s.Router().Mux()
}
