// Package repokit is what module repos build on: store aliases, binders and tx hooks
package repokit

import (
	"context"
	"fmt"
	"time"

	"marketwatch/internal/platform/store"
)

type (
	// Queryer is the sql surface a repo binds to, a pool or an open tx
	Queryer = store.RowQuerier

	// TxRunner is a Queryer that can open a transaction
	TxRunner = store.TxRunner

	// Clickhouse is the columnar seam event repos write through
	Clickhouse = store.Clickhouse

	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// Binder binds a repo to a Queryer so the same repo runs inside or outside a tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// MustPing panics when p is nil or does not answer in time
// ctx without a deadline gets five seconds
func MustPing(ctx context.Context, name string, p interface{ Ping(context.Context) error }) {
	if p == nil {
		panic(fmt.Sprintf("%s: nil dependency", name))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		panic(fmt.Sprintf("%s ping failed: %v", name, err))
	}
}
