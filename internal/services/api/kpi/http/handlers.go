// Package http provides http transport for the KPI workspace
package http

import (
	stdhttp "net/http"
	"strconv"

	"marketwatch/internal/modkit/httpkit"
	perr "marketwatch/internal/platform/errors"
	"marketwatch/internal/services/api/kpi/domain"
)

// Register mounts kpi endpoints on the given router
// filter tuples travel as POST bodies, saved views are plain resources
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.TabQuery](r, "/tab", h.tab)
	httpkit.PostJSON[domain.OverviewQuery](r, "/overview", h.overview)
	httpkit.PostJSON[domain.TabQuery](r, "/explain", h.explain)
	httpkit.Get(r, "/tabs", h.tabs)

	httpkit.PostJSON[domain.SaveViewInput](r, "/views", h.saveView)
	httpkit.Get(r, "/views", h.listViews)
	httpkit.Get(r, "/views/{id}/payload", h.viewPayload)
	httpkit.Delete(r, "/views/{id}", h.deleteView)

	httpkit.Get(r, "/usage", h.usage)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /kpi/tab KPI kpiTab
// @Summary Build one tab
// @Description Cards, trend and breakdown for a tab, a pure function of the filters and refresh key
// @Tags KPI
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Caller identity"
// @Param payload body domain.TabQuery true "Filters and tab"
// @Success 200 {object} domain.Payload "ok"
// @Failure 400 {object} map[string]any "invalid body"
// @Failure 422 {object} map[string]any "unknown tab"
// @Router /kpi/tab [post]
func (h *handlers) tab(r *stdhttp.Request, in domain.TabQuery) (any, error) {
	return h.svc.Tab(r.Context(), in)
}

// swagger:route POST /kpi/overview KPI kpiOverview
// @Summary Build every tab
// @Tags KPI
// @Accept json
// @Produce json
// @Param payload body domain.OverviewQuery true "Filters"
// @Success 200 {object} domain.OverviewResp "ok"
// @Router /kpi/overview [post]
func (h *handlers) overview(r *stdhttp.Request, in domain.OverviewQuery) (any, error) {
	return h.svc.Overview(r.Context(), in)
}

// swagger:route POST /kpi/explain KPI kpiExplain
// @Summary Seed and scaling factors behind a tab
// @Tags KPI
// @Accept json
// @Produce json
// @Param payload body domain.TabQuery true "Filters and tab"
// @Success 200 {object} domain.Trace "ok"
// @Router /kpi/explain [post]
func (h *handlers) explain(r *stdhttp.Request, in domain.TabQuery) (any, error) {
	return h.svc.Explain(r.Context(), in)
}

// swagger:route GET /kpi/tabs KPI kpiTabs
// @Summary List tabs
// @Tags KPI
// @Produce json
// @Success 200 {array} domain.TabInfo "ok"
// @Router /kpi/tabs [get]
func (h *handlers) tabs(r *stdhttp.Request) (any, error) {
	return h.svc.Tabs(r.Context()), nil
}

// swagger:route POST /kpi/views KPI kpiSaveView
// @Summary Save the current filters as a named view
// @Tags KPI
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Caller identity"
// @Param payload body domain.SaveViewInput true "View"
// @Success 201 {object} domain.SavedView "created"
// @Failure 409 {object} map[string]any "name taken"
// @Failure 503 {object} map[string]any "postgres not configured"
// @Router /kpi/views [post]
func (h *handlers) saveView(r *stdhttp.Request, in domain.SaveViewInput) (any, error) {
	v, err := h.svc.SaveView(r.Context(), httpkit.Owner(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(v), nil
}

// swagger:route GET /kpi/views KPI kpiListViews
// @Summary List saved views
// @Tags KPI
// @Produce json
// @Param X-User-ID header string false "Caller identity"
// @Success 200 {array} domain.SavedView "ok"
// @Router /kpi/views [get]
func (h *handlers) listViews(r *stdhttp.Request) (any, error) {
	return h.svc.ListViews(r.Context(), httpkit.Owner(r))
}

// swagger:route GET /kpi/views/{id}/payload KPI kpiViewPayload
// @Summary Build a saved view
// @Tags KPI
// @Produce json
// @Param X-User-ID header string false "Caller identity"
// @Param id path string true "View id"
// @Param refresh_key query int false "Refresh key"
// @Success 200 {object} domain.Payload "ok"
// @Failure 404 {object} map[string]any "not found"
// @Router /kpi/views/{id}/payload [get]
func (h *handlers) viewPayload(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathParam(r, "id")
	if err != nil {
		return nil, err
	}
	key, err := queryInt(r, "refresh_key", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.ViewPayload(r.Context(), httpkit.Owner(r), id, key)
}

// swagger:route DELETE /kpi/views/{id} KPI kpiDeleteView
// @Summary Delete a saved view
// @Tags KPI
// @Param X-User-ID header string false "Caller identity"
// @Param id path string true "View id"
// @Success 204 "deleted"
// @Failure 404 {object} map[string]any "not found"
// @Router /kpi/views/{id} [delete]
func (h *handlers) deleteView(r *stdhttp.Request) (any, error) {
	id, err := httpkit.PathParam(r, "id")
	if err != nil {
		return nil, err
	}
	if err := h.svc.DeleteView(r.Context(), httpkit.Owner(r), id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route GET /kpi/usage KPI kpiUsage
// @Summary Recorded tab builds per tab and mode
// @Tags KPI
// @Produce json
// @Param days query int false "Window in days" minimum(1) maximum(365)
// @Success 200 {array} domain.UsageRow "ok"
// @Failure 503 {object} map[string]any "clickhouse not configured"
// @Router /kpi/usage [get]
func (h *handlers) usage(r *stdhttp.Request) (any, error) {
	days, err := queryInt(r, "days", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.Usage(r.Context(), int(days))
}

func queryInt(r *stdhttp.Request, name string, def int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, perr.WithField(perr.InvalidArgf("%s must be an integer", name), name)
	}
	return v, nil
}
