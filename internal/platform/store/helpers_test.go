package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	perr "marketwatch/internal/platform/errors"
)

// sliceRows yields (name, views) pairs
type sliceRows struct {
	data   [][2]any
	i      int
	err    error
	closed bool
}

func (r *sliceRows) Next() bool        { r.i++; return r.i <= len(r.data) }
func (r *sliceRows) Err() error        { return r.err }
func (r *sliceRows) Close()            { r.closed = true }
func (r *sliceRows) Columns() []string { return []string{"name", "views"} }
func (r *sliceRows) Scan(dst ...any) error {
	cur := r.data[r.i-1]
	*(dst[0].(*string)) = cur[0].(string)
	*(dst[1].(*int)) = cur[1].(int)
	return nil
}

type tagStr string

func (t tagStr) String() string      { return string(t) }
func (t tagStr) RowsAffected() int64 { return 1 }

type fakeQ struct {
	rows     *sliceRows
	queryErr error
	lastSQL  string
	lastArgs []any
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return tagStr("DELETE 1"), nil
}

func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeQ) QueryRow(context.Context, string, ...any) Row { return nil }

type viewCount struct {
	Name  string
	Views int
}

func scanViewCount(r Row) (viewCount, error) {
	var v viewCount
	err := r.Scan(&v.Name, &v.Views)
	return v, err
}

func TestExec_PassesThrough(t *testing.T) {
	q := &fakeQ{}
	tag, err := Exec(context.Background(), q, "delete from kpi_saved_views where id = $1", "v1")
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	if tag.RowsAffected() != 1 || !reflect.DeepEqual(q.lastArgs, []any{"v1"}) {
		t.Fatalf("tag %v args %v", tag, q.lastArgs)
	}
}

func TestOne(t *testing.T) {
	ctx := context.Background()

	q := &fakeQ{rows: &sliceRows{data: [][2]any{{"Hà Nội", 3}}}}
	got, err := One(ctx, q, scanViewCount, "select")
	if err != nil {
		t.Fatalf("one: %v", err)
	}
	if got != (viewCount{"Hà Nội", 3}) || !q.rows.closed {
		t.Fatalf("got %+v closed=%v", got, q.rows.closed)
	}

	q = &fakeQ{rows: &sliceRows{}}
	if _, err = One(ctx, q, scanViewCount, "select"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("no rows got %v", err)
	}

	q = &fakeQ{rows: &sliceRows{data: [][2]any{{"a", 1}, {"b", 2}, {"c", 3}}}}
	if _, err = One(ctx, q, scanViewCount, "select"); !errors.Is(err, ErrTooManyRows) {
		t.Fatalf("many rows got %v", err)
	}
	if q.rows.i != 2 {
		t.Fatalf("should stop after the second row, read %d", q.rows.i)
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()

	q := &fakeQ{rows: &sliceRows{data: [][2]any{{"risk", 5}, {"market", 2}}}}
	got, err := Many(ctx, q, scanViewCount, "select", "inspector-7")
	if err != nil {
		t.Fatalf("many: %v", err)
	}
	if want := []viewCount{{"risk", 5}, {"market", 2}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}

	got, err = Many(ctx, &fakeQ{rows: &sliceRows{}}, scanViewCount, "select")
	if err != nil || got != nil {
		t.Fatalf("empty got %v err %v", got, err)
	}

	boom := errors.New("conn reset")
	if _, err = Many(ctx, &fakeQ{queryErr: boom}, scanViewCount, "select"); !errors.Is(err, boom) {
		t.Fatalf("query error got %v", err)
	}

	_, err = Many(ctx, &fakeQ{rows: &sliceRows{data: [][2]any{{"x", 1}}, err: boom}}, scanViewCount, "select")
	if !errors.Is(err, boom) {
		t.Fatalf("rows error got %v", err)
	}
}
