package modkit

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/go-chi/chi/v5"

	"marketwatch/internal/modkit/httpkit"
	phttp "marketwatch/internal/platform/net/http"
	"marketwatch/internal/platform/testkit"
)

func tag(v string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", v)
			next.ServeHTTP(w, r)
		})
	}
}

func TestNewBase_OptionsOverrideDefaults(t *testing.T) {
	b := NewBase("kpi", "/kpi", WithName("kpi-v2"), WithSwagger(true), WithMiddlewares(tag("a")), WithMiddlewares(tag("b")))
	if b.Name() != "kpi-v2" || b.Prefix() != "/kpi" || !b.SwaggerOn() {
		t.Fatalf("base %q %q swagger=%v", b.Name(), b.Prefix(), b.SwaggerOn())
	}
	if n := len(b.Middlewares()); n != 2 {
		t.Fatalf("want 2 middlewares, got %d", n)
	}

	// the returned slice is a copy
	mws := b.Middlewares()
	mws[0] = nil
	if b.Middlewares()[0] == nil {
		t.Fatal("middleware slice shared with caller")
	}
}

func TestBase_PrefixNormalized(t *testing.T) {
	if got := NewBase("meta", "meta/").Prefix(); got != "/meta" {
		t.Fatalf("prefix %q", got)
	}
	testkit.MustPanic(t, func() { NewBase("x", "/").Prefix() })
	testkit.MustPanic(t, func() { NewBase("", "/x").Name() })
}

func TestBase_MountAppliesMiddlewareInOrder(t *testing.T) {
	b := NewBase("kpi", "/kpi", WithMiddlewares(tag("a"), tag("b")))
	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		r.Get("/tabs", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/kpi/tabs", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status %d", rr.Code)
	}
	if got := rr.Header().Values("X-Order"); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("middleware order %v", got)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tabs", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unprefixed route served: %d", rr.Code)
	}
}
