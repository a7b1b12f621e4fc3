package module

import (
	"context"

	"marketwatch/internal/services/api/kpi/domain"
	kpisvc "marketwatch/internal/services/api/kpi/service"
)

// Reader is the read side other modules may consume
type Reader interface {
	Tab(ctx context.Context, in domain.TabQuery) (domain.Payload, error)
	Overview(ctx context.Context, in domain.OverviewQuery) (domain.OverviewResp, error)
	Tabs(ctx context.Context) []domain.TabInfo
}

// Ports exposes the kpi read side for cross module lookups
type Ports struct {
	KPI Reader
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptKPIPort narrows the service to Reader
type adaptKPIPort struct{ svc kpisvc.Service }

func (a adaptKPIPort) Tab(ctx context.Context, in domain.TabQuery) (domain.Payload, error) {
	return a.svc.Tab(ctx, in)
}

func (a adaptKPIPort) Overview(ctx context.Context, in domain.OverviewQuery) (domain.OverviewResp, error) {
	return a.svc.Overview(ctx, in)
}

func (a adaptKPIPort) Tabs(ctx context.Context) []domain.TabInfo { return a.svc.Tabs(ctx) }
