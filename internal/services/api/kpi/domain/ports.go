package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Tab(ctx context.Context, in TabQuery) (Payload, error)
	Overview(ctx context.Context, in OverviewQuery) (OverviewResp, error)
	Explain(ctx context.Context, in TabQuery) (Trace, error)
	Tabs(ctx context.Context) []TabInfo

	SaveView(ctx context.Context, owner string, in SaveViewInput) (SavedView, error)
	ListViews(ctx context.Context, owner string) ([]SavedView, error)
	ViewPayload(ctx context.Context, owner, id string, refreshKey int64) (Payload, error)
	DeleteView(ctx context.Context, owner, id string) error

	Usage(ctx context.Context, days int) ([]UsageRow, error)
}
