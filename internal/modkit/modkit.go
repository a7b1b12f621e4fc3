// Package modkit provides module wiring and core deps
package modkit

import (
	phttp "marketwatch/internal/platform/net/http"
)

// Module is the surface the api mounts, one per route prefix
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module port set for cross wiring, nil when it has none
	Ports() any

	Name() string
}
