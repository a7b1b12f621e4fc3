package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "marketwatch/internal/platform/errors"
	pnet "marketwatch/internal/platform/net"
)

func TestRecoverJSON_Envelope(t *testing.T) {
	buf := captureLog(t)
	h := RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("trend length mismatch")
	}))

	req := httptest.NewRequest(http.MethodPost, "/kpi/tab", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-panic"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d want 500", rr.Code)
	}
	var env pnet.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.Error != "panic recovered" || env.RequestID != "rid-panic" {
		t.Fatalf("envelope mismatch: %+v", env)
	}

	out := buf.String()
	if !strings.Contains(out, "trend length mismatch") || !strings.Contains(out, `"request_id":"rid-panic"`) {
		t.Fatalf("panic log missing context: %s", out)
	}
}

func TestRecoverJSON_AbortHandlerPropagates(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Fatalf("recovered %v want http.ErrAbortHandler", v)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := RecoverJSON(okHandler())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d want 200", rr.Code)
	}
}
