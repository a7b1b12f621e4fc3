// Package version reports what build is running
package version

import (
	"runtime/debug"
	"sync"
)

// ServiceName names the api process in logs, pg application_name and meta payloads
const ServiceName = "marketwatch-api"

// stamped with -ldflags "-X marketwatch/internal/core/version.version=v1.2.0 ..."
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// BuildInfo is the /meta/version payload
type BuildInfo struct {
	Service string `json:"service" example:"marketwatch-api"`
	Version string `json:"version" example:"v1.2.0"`
	Commit  string `json:"commit"  example:"4f1c2ab"`
	Date    string `json:"date"    example:"2025-09-18T08:00:00Z"`
	Go      string `json:"go"      example:"go1.25.0"`
}

var (
	infoOnce sync.Once
	info     BuildInfo
)

// Info returns the ldflags stamp, falling back to the vcs settings go build records
func Info() BuildInfo {
	infoOnce.Do(func() { info = resolve(version, commit, date, debug.ReadBuildInfo) })
	return info
}

func resolve(ver, rev, at string, read func() (*debug.BuildInfo, bool)) BuildInfo {
	out := BuildInfo{Service: ServiceName, Version: ver, Commit: rev, Date: at}
	bi, ok := read()
	if !ok {
		return out
	}
	out.Go = bi.GoVersion
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && out.Commit == "":
			out.Commit = s.Value
		case s.Key == "vcs.time" && out.Date == "":
			out.Date = s.Value
		}
	}
	if len(out.Commit) > 12 {
		out.Commit = out.Commit[:12]
	}
	return out
}
