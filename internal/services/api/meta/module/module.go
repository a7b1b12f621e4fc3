// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"marketwatch/internal/core/version"
	modkit "marketwatch/internal/modkit"
	"marketwatch/internal/modkit/httpkit"

	metahttp "marketwatch/internal/services/api/meta/http"
)

// Module serves /meta, it has no ports
type Module struct {
	modkit.Base

	deps      modkit.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		Base:      modkit.NewBase("meta", "/meta", opts...),
		deps:      deps,
		startedAt: time.Now(),
	}
}

// MountRoutes mounts health, readiness and build info under /meta
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.ServiceName,
			StartedAt:   m.startedAt,
			PG:          m.deps.PG,
			CH:          m.deps.CH,
		})
	})
}

// Ports returns nil
func (m *Module) Ports() any { return nil }
