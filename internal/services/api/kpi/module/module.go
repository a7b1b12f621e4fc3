// Package module wires the kpi workspace into the API using modkit
package module

import (
	"time"

	"marketwatch/internal/core/kpisynth"
	modkit "marketwatch/internal/modkit"
	"marketwatch/internal/modkit/httpkit"
	"marketwatch/internal/modkit/repokit"
	"marketwatch/internal/modkit/swaggerkit"
	"marketwatch/internal/platform/metrics"
	kpihttp "marketwatch/internal/services/api/kpi/http"
	kpirepo "marketwatch/internal/services/api/kpi/repo"
	kpisvc "marketwatch/internal/services/api/kpi/service"
)

// Module implements the kpi module
type Module struct {
	modkit.Base

	svc   kpisvc.Service
	ports Ports
}

// New constructs the kpi module
// KPI_ settings come from deps.Cfg, postgres and clickhouse are used when present
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	svc := kpisvc.New(ServiceConfig(deps), serviceOptions(deps)...)
	m := &Module{
		Base:  modkit.NewBase("kpi", "/kpi", opts...),
		svc:   svc,
		ports: Ports{KPI: adaptKPIPort{svc: svc}},
	}

	if m.SwaggerOn() {
		ids := tabIDs()
		swaggerkit.Register(swaggerkit.Enum("domain.TabQuery", "tab", ids))
		swaggerkit.Register(swaggerkit.Enum("domain.SaveViewInput", "tab", ids))
	}
	return m
}

// ServiceConfig reads the KPI_ settings
func ServiceConfig(deps modkit.Deps) kpisvc.Config {
	c := deps.Cfg.Prefix("KPI_")
	return kpisvc.Config{
		DefaultMode: kpisynth.Mode(c.MayEnum("DEFAULT_MODE", string(kpisynth.ModeAbsolute),
			string(kpisynth.ModeAbsolute), string(kpisynth.ModeNormalized))),
		DefaultRange: kpisynth.TimeRange(c.MayEnum("DEFAULT_RANGE", string(kpisynth.Range30d),
			string(kpisynth.Range7d), string(kpisynth.Range30d), string(kpisynth.Range90d))),
		RecordViews:   c.MayBool("RECORD_VIEWS", true),
		EventTimeout:  c.MayDuration("EVENT_TIMEOUT", 2*time.Second),
		EventInFlight: c.MayInt("EVENT_INFLIGHT", 64),
	}
}

func serviceOptions(deps modkit.Deps) []kpisvc.Option {
	opts := []kpisvc.Option{kpisvc.WithMetrics(metrics.NewKPI(deps.Metrics))}
	if deps.PG != nil {
		statementTimeout := deps.Cfg.Prefix("KPI_").MayDuration("STATEMENT_TIMEOUT", 3*time.Second)
		db := repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(statementTimeout))
		opts = append(opts, kpisvc.WithViews(db, kpirepo.NewPG()))
	}
	if deps.CH != nil {
		opts = append(opts, kpisvc.WithEvents(kpirepo.NewCH(deps.CH)))
	}
	return opts
}

func tabIDs() []string {
	tabs := kpisynth.Tabs()
	out := make([]string, len(tabs))
	for i, t := range tabs {
		out[i] = string(t)
	}
	return out
}

// MountRoutes mounts the kpi endpoints under /kpi
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { kpihttp.Register(rr, m.svc) })
}
