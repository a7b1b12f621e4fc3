// @title         Marketwatch API
// @version       1.0
// @description   KPI dashboard payloads for market surveillance

// Command marketwatch-api serves the KPI dashboard API
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"marketwatch/internal/core/version"
	"marketwatch/internal/modkit/repokit"
	"marketwatch/internal/platform/config"
	"marketwatch/internal/platform/logger"
	phttp "marketwatch/internal/platform/net/http"
	"marketwatch/internal/platform/store"
	"marketwatch/internal/services/api"
	kpirepo "marketwatch/internal/services/api/kpi/repo"
)

func main() {
	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = version.ServiceName
	}
	logger.Init(opt)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.New()); err != nil {
		logger.Get().Error().Err(err).Msg("marketwatch-api stopped")
		stop()
		os.Exit(1)
	}
	logger.Get().Info().Msg("bye")
}

func run(ctx context.Context, root config.Conf) error {
	log := logger.Get()
	apiCfg := root.Prefix("CORE_API_")

	// both stores are optional, a missing DBURL disables saved views or view events
	st, err := store.Open(ctx, store.ConfigFrom(root, version.ServiceName), store.WithLogger(*log))
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("store close")
		}
	}()

	if p, ok := st.PG.(store.Pinger); ok {
		repokit.MustPing(ctx, "pg", p)
		if root.Prefix("SERVICE_PGSQL_").MayBool("BOOTSTRAP", true) {
			if err := kpirepo.EnsureViewsSchema(ctx, st.PG); err != nil {
				return err
			}
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// CORE_API_API_PORT, CORE_API_SHUTDOWN_GRACE
	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Store:          st,
		Logger:         log,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		Registry:       reg,
	})
	return srv.Run(ctx)
}
