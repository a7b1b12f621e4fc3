// Package repo provides storage access for the KPI workspace
package repo

import (
	"context"
	"time"

	"marketwatch/internal/modkit/repokit"
	"marketwatch/internal/platform/store"
)

// ViewsSchema creates the saved view table when missing
const ViewsSchema = `
create table if not exists kpi_saved_views (
	id         uuid primary key,
	owner      text not null,
	name       text not null,
	params     jsonb not null,
	created_at timestamptz not null default now(),
	unique (owner, name)
)`

// Views is the postgres surface for saved filter presets
type Views interface {
	Insert(ctx context.Context, v ViewRow) error
	List(ctx context.Context, owner string) ([]ViewRow, error)
	Get(ctx context.Context, owner, id string) (ViewRow, error)
	Delete(ctx context.Context, owner, id string) (int64, error)
}

// ViewRow is a kpi_saved_views row, params stay raw json
type ViewRow struct {
	ID        string
	Owner     string
	Name      string
	Params    []byte
	CreatedAt time.Time
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Views interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Views] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Views { return &queries{q: q} }

// EnsureViewsSchema applies ViewsSchema
func EnsureViewsSchema(ctx context.Context, q repokit.Queryer) error {
	_, err := store.Exec(ctx, q, ViewsSchema)
	return err
}

func scanView(r store.Row) (ViewRow, error) {
	var v ViewRow
	err := r.Scan(&v.ID, &v.Owner, &v.Name, &v.Params, &v.CreatedAt)
	return v, err
}

func (r *queries) Insert(ctx context.Context, v ViewRow) error {
	const sql = `
insert into kpi_saved_views (id, owner, name, params, created_at)
values ($1::uuid, $2, $3, $4::jsonb, $5)
`
	_, err := store.Exec(ctx, r.q, sql, v.ID, v.Owner, v.Name, v.Params, v.CreatedAt)
	return err
}

func (r *queries) List(ctx context.Context, owner string) ([]ViewRow, error) {
	const sql = `
select id::text, owner, name, params, created_at
from kpi_saved_views
where owner = $1
order by created_at desc, name asc
limit 200
`
	return store.Many(ctx, r.q, scanView, sql, owner)
}

func (r *queries) Get(ctx context.Context, owner, id string) (ViewRow, error) {
	const sql = `
select id::text, owner, name, params, created_at
from kpi_saved_views
where owner = $1 and id = $2::uuid
`
	return store.One(ctx, r.q, scanView, sql, owner, id)
}

func (r *queries) Delete(ctx context.Context, owner, id string) (int64, error) {
	const sql = `delete from kpi_saved_views where owner = $1 and id = $2::uuid`
	tag, err := store.Exec(ctx, r.q, sql, owner, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
