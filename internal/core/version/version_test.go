package version

import (
	"runtime/debug"
	"testing"
)

func TestResolve_Stamped(t *testing.T) {
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{GoVersion: "go1.25.0", Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "ffffffffffffffffffff"},
			{Key: "vcs.time", Value: "2020-01-01T00:00:00Z"},
		}}, true
	}
	got := resolve("v1.2.0", "4f1c2ab", "2025-09-18", read)
	want := BuildInfo{
		Service: ServiceName, Version: "v1.2.0", Commit: "4f1c2ab", Date: "2025-09-18", Go: "go1.25.0",
	}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestResolve_VCSFallback(t *testing.T) {
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2025-09-18T08:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		}}, true
	}
	got := resolve("dev", "", "", read)
	if got.Commit != "0123456789ab" || got.Date != "2025-09-18T08:00:00Z" {
		t.Fatalf("vcs fallback %+v", got)
	}
}

func TestResolve_NoBuildInfo(t *testing.T) {
	got := resolve("dev", "", "", func() (*debug.BuildInfo, bool) { return nil, false })
	if want := (BuildInfo{Service: ServiceName, Version: "dev"}); got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestInfo_Stable(t *testing.T) {
	if Info() != Info() {
		t.Fatal("info changed between calls")
	}
	if Info().Service != ServiceName {
		t.Fatalf("service %q", Info().Service)
	}
}
