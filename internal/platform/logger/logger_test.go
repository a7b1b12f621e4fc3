package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	pnet "marketwatch/internal/platform/net"
)

// swapRoot points the root at a json logger over a buffer for the test
func swapRoot(t *testing.T) *bytes.Buffer {
	t.Helper()
	Get()
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	prev := root.Load()
	root.Store(&l)
	t.Cleanup(func() { root.Store(prev) })
	return &buf
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":     zerolog.TraceLevel,
		"INFO":      zerolog.InfoLevel,
		" warning ": zerolog.WarnLevel,
		"error":     zerolog.ErrorLevel,
		"panic":     zerolog.PanicLevel,
		"":          zerolog.DebugLevel,
		"loud":      zerolog.DebugLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBuild_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Build(Options{Level: "info", Format: "json", Service: "marketwatch-api", Component: "kpi", Writer: &buf})

	l.Debug().Msg("hidden")
	l.Info().Str("tab", "command").Msg("payload built")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info: %s", out)
	}
	for _, want := range []string{`"service":"marketwatch-api"`, `"component":"kpi"`, `"tab":"command"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %s", want, out)
		}
	}
}

func TestBuild_Console(t *testing.T) {
	var buf bytes.Buffer
	l := Build(Options{Level: "debug", Format: "console", Writer: &buf, Caller: true})
	l.Info().Msg("điểm")
	out := buf.String()
	if !strings.Contains(out, "điểm") || strings.Contains(out, `{"level"`) {
		t.Fatalf("console output %q", out)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "marketwatch-kpi")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	want := Options{
		Level:       "warn",
		Format:      "json",
		Service:     "marketwatch-kpi",
		Caller:      true,
		SampleEvery: 5,
	}
	if got := FromEnv(); got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestNamed(t *testing.T) {
	buf := swapRoot(t)
	Named("pg").Info().Msg("pool ready")
	if !strings.Contains(buf.String(), `"component":"pg"`) {
		t.Fatalf("missing component: %s", buf.String())
	}

	if Named("") != root.Load() {
		t.Fatal("empty name should return the root logger")
	}
}

func TestC_RequestScope(t *testing.T) {
	buf := swapRoot(t)
	ctx := pnet.WithUser(pnet.WithRequest(context.Background(), "req-http"), "hn-team")
	C(ctx).Info().Msg("from-http")
	for _, want := range []string{`"request_id":"req-http"`, `"user_id":"hn-team"`} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("missing %s in %s", want, buf.String())
		}
	}

	buf.Reset()
	C(context.Background()).Info().Msg("bare")
	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("bare context carried request id: %s", buf.String())
	}
}
