package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"marketwatch/internal/core/kpisynth"
	perr "marketwatch/internal/platform/errors"
	pnet "marketwatch/internal/platform/net"
	phttp "marketwatch/internal/platform/net/http"
	"marketwatch/internal/platform/net/middleware"
	"marketwatch/internal/services/api/kpi/domain"
)

type fakePort struct {
	lastTab   domain.TabQuery
	lastOwner string
	lastID    string
	lastKey   int64
	lastDays  int

	tabErr    error
	saveErr   error
	deleteErr error
}

func (f *fakePort) Tab(_ context.Context, in domain.TabQuery) (domain.Payload, error) {
	f.lastTab = in
	if f.tabErr != nil {
		return domain.Payload{}, f.tabErr
	}
	return kpisynth.MustBuild(kpisynth.Params{Tab: kpisynth.Tab(in.Tab)}), nil
}

func (f *fakePort) Overview(_ context.Context, _ domain.OverviewQuery) (domain.OverviewResp, error) {
	return domain.OverviewResp{Tabs: map[string]domain.Payload{"command": {}}}, nil
}

func (f *fakePort) Explain(_ context.Context, in domain.TabQuery) (domain.Trace, error) {
	return kpisynth.Explain(kpisynth.Params{Tab: kpisynth.Tab(in.Tab)})
}

func (f *fakePort) Tabs(_ context.Context) []domain.TabInfo {
	return []domain.TabInfo{{ID: "command", Title: "x", Cards: []string{"a"}}}
}

func (f *fakePort) SaveView(_ context.Context, owner string, in domain.SaveViewInput) (domain.SavedView, error) {
	f.lastOwner = owner
	if f.saveErr != nil {
		return domain.SavedView{}, f.saveErr
	}
	return domain.SavedView{ID: "v1", Owner: owner, Name: in.Name, Params: domain.ViewParams{Tab: in.Tab}}, nil
}

func (f *fakePort) ListViews(_ context.Context, owner string) ([]domain.SavedView, error) {
	f.lastOwner = owner
	return []domain.SavedView{{ID: "v1", Owner: owner}}, nil
}

func (f *fakePort) ViewPayload(_ context.Context, owner, id string, key int64) (domain.Payload, error) {
	f.lastOwner, f.lastID, f.lastKey = owner, id, key
	return domain.Payload{}, nil
}

func (f *fakePort) DeleteView(_ context.Context, owner, id string) error {
	f.lastOwner, f.lastID = owner, id
	return f.deleteErr
}

func (f *fakePort) Usage(_ context.Context, days int) ([]domain.UsageRow, error) {
	f.lastDays = days
	return []domain.UsageRow{{Tab: "command", Mode: "absolute", Views: 3}}, nil
}

func newRouter(p domain.ServicePort) *chi.Mux {
	m := chi.NewRouter()
	m.Use(middleware.Identity)
	Register(phttp.AdaptChi(m), p)
	return m
}

func do(t *testing.T, h stdhttp.Handler, method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}

func TestTab_OK(t *testing.T) {
	p := &fakePort{}
	rr := do(t, newRouter(p), stdhttp.MethodPost, "/tab", `{"tab":"command","geo_units":["HN","DN"],"refresh_key":2}`, nil)
	require.Equal(t, stdhttp.StatusOK, rr.Code, rr.Body.String())

	var got domain.Payload
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &got))
	require.Len(t, got.Cards, 4)
	require.Len(t, got.Trend, kpisynth.TrendLen)

	require.Equal(t, []string{"HN", "DN"}, p.lastTab.GeoUnits)
	require.EqualValues(t, 2, p.lastTab.RefreshKey)
}

func TestTab_ValidationFailures(t *testing.T) {
	cases := map[string]string{
		"missing tab":  `{}`,
		"unknown tab":  `{"tab":"weather"}`,
		"bad org":      `{"tab":"ops","org_unit":"galaxy"}`,
		"bad range":    `{"tab":"ops","time_range":"1y"}`,
		"huge days":    `{"tab":"ops","range_days":-3651}`,
		"bad mode":     `{"tab":"ops","mode":"percent"}`,
		"empty geo":    `{"tab":"ops","geo_units":[""]}`,
		"not json":     `{"tab":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := &fakePort{}
			rr := do(t, newRouter(p), stdhttp.MethodPost, "/tab", body, nil)
			require.Equal(t, stdhttp.StatusBadRequest, rr.Code, rr.Body.String())
			require.Empty(t, p.lastTab.Tab, "service must not be reached")
		})
	}
}

func TestTab_NegativeInputsAccepted(t *testing.T) {
	p := &fakePort{}
	body := `{"tab":"ops","range_days":-5,"refresh_key":-7}`
	rr := do(t, newRouter(p), stdhttp.MethodPost, "/tab", body, nil)
	require.Equal(t, stdhttp.StatusOK, rr.Code, rr.Body.String())
	require.Equal(t, -5, p.lastTab.RangeDays)
	require.EqualValues(t, -7, p.lastTab.RefreshKey)

	rr = do(t, newRouter(p), stdhttp.MethodGet, "/views/abc/payload?refresh_key=-3", "", nil)
	require.Equal(t, stdhttp.StatusOK, rr.Code, rr.Body.String())
	require.EqualValues(t, -3, p.lastKey)
}

func TestTab_ServiceErrorMapsStatus(t *testing.T) {
	p := &fakePort{tabErr: perr.WithField(perr.InvalidArgf("unknown tab"), "tab")}
	rr := do(t, newRouter(p), stdhttp.MethodPost, "/tab", `{"tab":"risk"}`, nil)
	require.Equal(t, stdhttp.StatusUnprocessableEntity, rr.Code)
	require.Contains(t, decode(t, rr).Error, "unknown tab")
}

func TestOverviewExplainTabs(t *testing.T) {
	h := newRouter(&fakePort{})

	rr := do(t, h, stdhttp.MethodPost, "/overview", `{"mode":"normalized"}`, nil)
	require.Equal(t, stdhttp.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, h, stdhttp.MethodPost, "/explain", `{"tab":"command"}`, nil)
	require.Equal(t, stdhttp.StatusOK, rr.Code, rr.Body.String())
	var tr domain.Trace
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &tr))
	require.EqualValues(t, 17, tr.Seed)

	rr = do(t, h, stdhttp.MethodGet, "/tabs", "", nil)
	require.Equal(t, stdhttp.StatusOK, rr.Code)
	var tabs []domain.TabInfo
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &tabs))
	require.Len(t, tabs, 1)
}

func TestSaveView_CreatedWithOwner(t *testing.T) {
	p := &fakePort{}
	rr := do(t, newRouter(p), stdhttp.MethodPost, "/views",
		`{"name":"Hà Nội tuần này","tab":"market","time_range":"7d"}`,
		map[string]string{middleware.UserHeader: "inspector-7"})
	require.Equal(t, stdhttp.StatusCreated, rr.Code, rr.Body.String())
	require.Equal(t, "inspector-7", p.lastOwner)

	var v domain.SavedView
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &v))
	require.Equal(t, "v1", v.ID)
	require.Equal(t, "market", v.Params.Tab)
}

func TestSaveView_AnonymousAndConflict(t *testing.T) {
	p := &fakePort{saveErr: perr.New(perr.ErrorCodeDuplicateKey, "view name taken")}
	rr := do(t, newRouter(p), stdhttp.MethodPost, "/views", `{"name":"a","tab":"ops"}`, nil)
	require.Equal(t, stdhttp.StatusConflict, rr.Code, rr.Body.String())
	require.Equal(t, pnet.AnonymousUser, p.lastOwner)
}

func TestSaveView_MissingName(t *testing.T) {
	rr := do(t, newRouter(&fakePort{}), stdhttp.MethodPost, "/views", `{"tab":"ops"}`, nil)
	require.Equal(t, stdhttp.StatusBadRequest, rr.Code)
}

func TestViews_ListPayloadDelete(t *testing.T) {
	p := &fakePort{}
	h := newRouter(p)
	who := map[string]string{middleware.UserHeader: "u1"}

	rr := do(t, h, stdhttp.MethodGet, "/views", "", who)
	require.Equal(t, stdhttp.StatusOK, rr.Code)
	require.Equal(t, "u1", p.lastOwner)

	rr = do(t, h, stdhttp.MethodGet, "/views/abc/payload?refresh_key=9", "", who)
	require.Equal(t, stdhttp.StatusOK, rr.Code, rr.Body.String())
	require.Equal(t, "abc", p.lastID)
	require.EqualValues(t, 9, p.lastKey)

	rr = do(t, h, stdhttp.MethodDelete, "/views/abc", "", who)
	require.Equal(t, stdhttp.StatusNoContent, rr.Code)
	require.Empty(t, rr.Body.String())
	require.Equal(t, "abc", p.lastID)
}

func TestViews_DeleteNotFound(t *testing.T) {
	p := &fakePort{deleteErr: perr.WithField(perr.NotFoundf("view not found"), "id")}
	rr := do(t, newRouter(p), stdhttp.MethodDelete, "/views/abc", "", nil)
	require.Equal(t, stdhttp.StatusNotFound, rr.Code)
}

func TestQueryIntRejectsGarbage(t *testing.T) {
	h := newRouter(&fakePort{})

	rr := do(t, h, stdhttp.MethodGet, "/views/abc/payload?refresh_key=soon", "", nil)
	require.Equal(t, stdhttp.StatusUnprocessableEntity, rr.Code)
	require.Contains(t, decode(t, rr).Error, "refresh_key must be an integer")

	rr = do(t, h, stdhttp.MethodGet, "/usage?days=x", "", nil)
	require.Equal(t, stdhttp.StatusUnprocessableEntity, rr.Code)
}

func TestUsage_PassesDays(t *testing.T) {
	p := &fakePort{}
	rr := do(t, newRouter(p), stdhttp.MethodGet, "/usage?days=30", "", nil)
	require.Equal(t, stdhttp.StatusOK, rr.Code)
	require.Equal(t, 30, p.lastDays)

	do(t, newRouter(p), stdhttp.MethodGet, "/usage", "", nil)
	require.Equal(t, 0, p.lastDays)
}
