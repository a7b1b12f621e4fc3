package store

import (
	"testing"
	"time"

	"marketwatch/internal/platform/config"
)

func TestConfigFrom_Defaults(t *testing.T) {
	got := ConfigFrom(config.New(), "marketwatch-api")
	if got.AppName != "marketwatch-api" {
		t.Fatalf("app name %q", got.AppName)
	}
	if got.PG.Enabled || got.CH.Enabled {
		t.Fatalf("backends enabled without urls: %+v", got)
	}
	if got.PG.MaxConns != 4 || got.PG.ConnectRetries != defaultConnectRetries || got.PG.PingTimeout != defaultPingTimeout {
		t.Fatalf("pg defaults %+v", got.PG)
	}
	if got.CH.ClientTag != "api" {
		t.Fatalf("client tag %q", got.CH.ClientTag)
	}
}

func TestConfigFrom_Env(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://u:p@db:5432/marketwatch")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "12")
	t.Setenv("SERVICE_PGSQL_LOG_SQL", "true")
	t.Setenv("SERVICE_PGSQL_PING_TIMEOUT", "750ms")
	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "clickhouse://ch:9000/marketwatch")
	t.Setenv("SERVICE_CLICKHOUSE_CLIENT_TAG", "kpi-cli")

	got := ConfigFrom(config.New(), "marketwatch-kpi")
	if !got.PG.Enabled || got.PG.MaxConns != 12 || !got.PG.LogSQL || got.PG.PingTimeout != 750*time.Millisecond {
		t.Fatalf("pg from env %+v", got.PG)
	}
	if !got.CH.Enabled || got.CH.ClientTag != "kpi-cli" {
		t.Fatalf("ch from env %+v", got.CH)
	}
}
