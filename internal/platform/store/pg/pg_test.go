package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"marketwatch/internal/platform/testkit"
)

func TestOpen_BadURL(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://nope"}, nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOpen_AppliesConfigToPool(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	fake := &pgxpool.Pool{}
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return fake, nil
	})

	p, err := Open(context.Background(), Config{
		URL:      "postgres://kpi:kpi@db:5432/marketwatch?sslmode=disable",
		AppName:  "marketwatch-api",
		MaxConns: 6,
		SlowMs:   250,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Pool != fake || p.SlowMs != 250 {
		t.Fatalf("pg got %+v", p)
	}
	if seen.MaxConns != 6 {
		t.Fatalf("max conns got %d", seen.MaxConns)
	}
	if got := seen.ConnConfig.RuntimeParams["application_name"]; got != "marketwatch-api" {
		t.Fatalf("application_name got %q", got)
	}
}

func TestOpen_PoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("dial refused")
	})
	if _, err := Open(context.Background(), Config{URL: "postgres://db/marketwatch"}, nil); err == nil {
		t.Fatal("expected pool error")
	}
}

func TestClose_NilSafe(t *testing.T) {
	var p *PG
	p.Close()
	(&PG{}).Close()
}
