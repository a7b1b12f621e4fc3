package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	chx "marketwatch/internal/platform/store/ch"
	kit "marketwatch/internal/platform/testkit"
)

// pingTx is a TxRunner that optionally answers Ping
type pingTx struct {
	fakeQ
	err    error
	closed bool
}

func (p *pingTx) Tx(ctx context.Context, fn func(RowQuerier) error) error { return fn(p) }
func (p *pingTx) Ping(context.Context) error                              { return p.err }
func (p *pingTx) Close() error                                            { p.closed = true; return nil }

// plainTx has no Ping
type plainTx struct{ fakeQ }

func (p *plainTx) Tx(ctx context.Context, fn func(RowQuerier) error) error { return fn(p) }

func TestOpen_NothingEnabled(t *testing.T) {
	var buf bytes.Buffer
	s, err := Open(context.Background(), Config{AppName: "marketwatch-api"}, WithLogger(zerolog.New(&buf)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("seams opened without config: %+v", s)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("guard: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpen_WithLoggerUsedByClickhouse(t *testing.T) {
	kit.Serial(t)
	fake := &fakeCH{}
	kit.Swap(t, &dialCH, func(context.Context, chx.Config) (chClient, error) { return fake, nil })

	var buf bytes.Buffer
	s, err := Open(context.Background(), Config{CH: CHConfig{Enabled: true, URL: "clickhouse://ch:9000/marketwatch", ClientTag: "api"}},
		WithLogger(zerolog.New(&buf)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.CH == nil || s.PG != nil {
		t.Fatalf("want only clickhouse, got %+v", s)
	}
	for _, want := range []string{"clickhouse connected", `"component":"store"`} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("log missing %s: %s", want, buf.String())
		}
	}

	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !fake.closed {
		t.Fatal("clickhouse client not closed")
	}
}

func TestOpen_FailingOptionAborts(t *testing.T) {
	bad := func(*Store) error { return errors.New("bad option") }
	s, err := Open(context.Background(), Config{}, bad)
	if err == nil || err.Error() != "bad option" {
		t.Fatalf("want bad option, got %v", err)
	}
	if s != nil {
		t.Fatalf("store returned on failure: %+v", s)
	}
}

func TestOpen_PGFailureSkipsClickhouse(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &dialCH, func(context.Context, chx.Config) (chClient, error) {
		t.Fatal("clickhouse dialed after postgres failed")
		return nil, nil
	})

	s, err := Open(context.Background(), Config{
		PG: PGConfig{Enabled: true, URL: "://bad"},
		CH: CHConfig{Enabled: true, URL: "clickhouse://ch:9000/marketwatch"},
	})
	if err == nil || s != nil {
		t.Fatalf("want failure, got store=%v err=%v", s, err)
	}
}

func TestGuard(t *testing.T) {
	ctx := context.Background()

	var nilStore *Store
	if nilStore.Guard(ctx) == nil {
		t.Fatal("nil store passed guard")
	}

	// seams without Ping are skipped
	if err := (&Store{PG: &plainTx{}}).Guard(ctx); err != nil {
		t.Fatalf("plain seam: %v", err)
	}
	if err := (&Store{PG: &pingTx{}, CH: newCHAdapter(&fakeCH{})}).Guard(ctx); err != nil {
		t.Fatalf("healthy seams: %v", err)
	}

	err := (&Store{
		PG: &pingTx{err: errors.New("pg down")},
		CH: newCHAdapter(&fakeCH{pingErr: errors.New("ch down")}),
	}).Guard(ctx)
	if err == nil {
		t.Fatal("want joined error")
	}
	for _, want := range []string{"pg: pg down", "ch: ch down"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}

func TestClose_ClosesPG(t *testing.T) {
	p := &pingTx{}
	if err := (&Store{PG: p}).Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !p.closed {
		t.Fatal("pg not closed")
	}
}
