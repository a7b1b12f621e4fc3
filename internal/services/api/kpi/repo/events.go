package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marketwatch/internal/modkit/repokit"
)

// EventsTable receives one row per recorded tab build
// columns: id UUID, at DateTime64(3), tab, mode, geo_count UInt16, org_unit, time_range, seed UInt32, base_factor Float64
const EventsTable = "kpi_view_events"

// Events is the clickhouse surface for view events
type Events interface {
	Record(ctx context.Context, e ViewEvent) error
	Usage(ctx context.Context, since time.Time) ([]UsageRow, error)
}

// ViewEvent is one kpi_view_events row
type ViewEvent struct {
	ID         uuid.UUID
	At         time.Time
	Tab        string
	Mode       string
	GeoCount   uint16
	OrgUnit    string
	TimeRange  string
	Seed       uint32
	BaseFactor float64
}

// UsageRow counts events for one tab and mode
type UsageRow struct {
	Tab   string
	Mode  string
	Views uint64
}

type chEvents struct{ ch repokit.Clickhouse }

// NewCH returns the events repo over a clickhouse seam
func NewCH(ch repokit.Clickhouse) Events { return &chEvents{ch: ch} }

func (r *chEvents) Record(ctx context.Context, e ViewEvent) error {
	return r.ch.Insert(ctx, EventsTable, [][]any{{
		e.ID, e.At, e.Tab, e.Mode, e.GeoCount, e.OrgUnit, e.TimeRange, e.Seed, e.BaseFactor,
	}})
}

func (r *chEvents) Usage(ctx context.Context, since time.Time) ([]UsageRow, error) {
	const sql = `
		SELECT tab, mode, count() AS views
		FROM kpi_view_events
		WHERE at >= ?
		GROUP BY tab, mode
		ORDER BY views DESC, tab ASC, mode ASC
	`
	rs, err := r.ch.Query(ctx, sql, since)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []UsageRow
	for rs.Next() {
		var u UsageRow
		if err := rs.Scan(&u.Tab, &u.Mode, &u.Views); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rs.Err()
}
