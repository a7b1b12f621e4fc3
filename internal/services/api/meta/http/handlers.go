// Package http serves the /meta health checks and engine description
package http

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"marketwatch/internal/core/kpisynth"
	"marketwatch/internal/core/version"
	"marketwatch/internal/modkit/httpkit"
)

// Pinger is what a store seam needs for /ready to check it
type Pinger interface {
	Ping(context.Context) error
}

// Deps feeds the meta handlers, PG and CH may be nil when the store is disabled
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
}

// readyTimeout bounds the whole /ready call, checks run concurrently
const readyTimeout = 2 * time.Second

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	httpkit.Get(r, "/health", d.health)
	httpkit.Get(r, "/ready", d.ready)
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/service", d.service)
	httpkit.Get(r, "/engine", engine)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"marketwatch-api"`
	Started string `json:"started" example:"2025-09-18T08:00:00Z"`
	Now     string `json:"now"     example:"2025-09-18T08:05:00Z"`
}

// ReadyCheck is one store ping, status is ok, fail, skipped or unknown
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
	TookMs int64  `json:"took_ms"         example:"3"`
}

// ReadyResponse is ok when every store answers, fail when one errors and degraded otherwise
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-18T08:05:00Z"`
}

// ServiceResponse carries uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"marketwatch-api"`
	Started string `json:"started" example:"2025-09-18T08:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// EngineResponse describes the synthesis engine this build serves
type EngineResponse struct {
	Tabs     []string          `json:"tabs"      example:"command"`
	TrendLen int               `json:"trend_len" example:"7"`
	Units    []string          `json:"units"     example:"điểm"`
	Build    version.BuildInfo `json:"build"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (d Deps) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: d.ServiceName, Started: stamp(d.StartedAt), Now: stamp(time.Now())}, nil
}

// @Summary Readiness check with dependency pings
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (d Deps) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	targets := []struct {
		name string
		seam any
	}{{"pg", d.PG}, {"ch", d.CH}}
	checks := make([]ReadyCheck, len(targets))

	var g errgroup.Group
	for i, tg := range targets {
		g.Go(func() error {
			checks[i] = pingSeam(ctx, tg.name, tg.seam)
			return nil
		})
	}
	_ = g.Wait()

	status := "ok"
	for _, c := range checks {
		switch {
		case c.Status == "fail":
			status = "fail"
		case c.Status != "ok" && status == "ok":
			status = "degraded"
		}
	}
	return ReadyResponse{Status: status, Checks: checks, Now: stamp(time.Now())}, nil
}

func pingSeam(ctx context.Context, name string, seam any) ReadyCheck {
	if seam == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := seam.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	start := time.Now()
	err := p.Ping(ctx)
	c := ReadyCheck{Name: name, Status: "ok", TookMs: time.Since(start).Milliseconds()}
	if err != nil {
		c.Status, c.Error = "fail", err.Error()
	}
	return c
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (d Deps) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    d.ServiceName,
		Started: stamp(d.StartedAt),
		Uptime:  int64(time.Since(d.StartedAt) / time.Second),
	}, nil
}

// @Summary Synthesis engine tabs and build
// @Tags Meta
// @Produce json
// @Success 200 {object} EngineResponse
// @Router /meta/engine [get]
func engine(*http.Request) (any, error) {
	tabs := kpisynth.Tabs()
	ids := make([]string, 0, len(tabs))
	for _, t := range tabs {
		ids = append(ids, string(t))
	}
	return EngineResponse{
		Tabs:     ids,
		TrendLen: kpisynth.TrendLen,
		Units:    []string{kpisynth.PointsUnit},
		Build:    version.Info(),
	}, nil
}
