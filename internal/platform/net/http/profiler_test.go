package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketwatch/internal/platform/config"
	phttp "marketwatch/internal/platform/net/http"
)

func TestMountProfiler(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		r := phttp.NewServer(config.New()).Router()
		phttp.MountProfiler(r, "/debug", enabled)

		want := http.StatusNotFound
		if enabled {
			want = http.StatusOK
		}
		for _, p := range []string{"/debug/pprof/", "/debug/pprof/cmdline"} {
			rec := httptest.NewRecorder()
			r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
			if rec.Code != want {
				t.Fatalf("enabled=%v %s: status %d want %d", enabled, p, rec.Code, want)
			}
		}
	}
}
