package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "marketwatch/internal/platform/net/http"
	"marketwatch/internal/platform/net/middleware"
)

func mounted(mws []Middleware, register func(Router)) http.Handler {
	m := chi.NewRouter()
	m.Use(Heartbeat("/ping"))
	MountVersion(phttp.AdaptChi(m), "/v1/", mws, register)
	return m
}

func TestMountVersion_PrefixAndStack(t *testing.T) {
	var owner string
	h := mounted(CommonStack(StackOptions{}), func(api Router) {
		api.Get("/kpi/tabs", func(w http.ResponseWriter, r *http.Request) {
			owner = Owner(r)
			w.WriteHeader(http.StatusNoContent)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/kpi/tabs/", nil)
	req.Header.Set(middleware.UserHeader, "inspector-7")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent || owner != "inspector-7" {
		t.Fatalf("status %d owner %q", rr.Code, owner)
	}
	if cc := rr.Header().Get("Cache-Control"); !strings.Contains(cc, "no-cache") {
		t.Fatalf("cache-control %q", cc)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("heartbeat status %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/kpi/tabs", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unversioned route served: %d", rr.Code)
	}
}

func TestCommonStack_RecoversPanics(t *testing.T) {
	h := mounted(CommonStack(StackOptions{}), func(api Router) {
		api.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	if rr.Code != http.StatusInternalServerError || !strings.Contains(rr.Body.String(), "panic recovered") {
		t.Fatalf("status %d body %s", rr.Code, rr.Body.String())
	}
}

func TestThrottled(t *testing.T) {
	noContent := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	send := func(h http.Handler) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.9:4242"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	limited := Throttled(0.001, 1)(noContent)
	if first, second := send(limited), send(limited); first != 204 || second != 429 {
		t.Fatalf("limited got %d then %d", first, second)
	}

	open := Throttled(0, 0)(noContent)
	for i := range 5 {
		if code := send(open); code != http.StatusNoContent {
			t.Fatalf("request %d throttled: %d", i, code)
		}
	}
}
