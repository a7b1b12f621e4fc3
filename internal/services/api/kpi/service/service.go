// Package service contains KPI workspace workflows
package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"marketwatch/internal/core/kpisynth"
	"marketwatch/internal/modkit/repokit"
	perr "marketwatch/internal/platform/errors"
	"marketwatch/internal/platform/logger"
	"marketwatch/internal/platform/metrics"
	"marketwatch/internal/services/api/kpi/domain"
	"marketwatch/internal/services/api/kpi/repo"
)

// Usage window bounds in days
const (
	DefaultUsageDays = 7
	MaxUsageDays     = 365
)

// Service defines the kpi service contract
type Service interface {
	domain.ServicePort
}

// Config holds request defaults and event recording switches
type Config struct {
	DefaultMode  kpisynth.Mode
	DefaultRange kpisynth.TimeRange
	RecordViews  bool

	// EventTimeout bounds one view event insert, zero means 2s
	EventTimeout time.Duration

	// EventInFlight caps concurrent view event writes, zero means 64
	// events past the cap are dropped
	EventInFlight int
}

// Svc implements the kpi service
// saved views need postgres and usage needs clickhouse, both are optional
type Svc struct {
	cfg Config

	db     repokit.TxRunner
	views  repokit.Binder[repo.Views]
	events repo.Events

	// view event writers run off the request path
	writers *semaphore.Weighted
	pending sync.WaitGroup

	metrics *metrics.KPI
	usage   singleflight.Group
	now     func() time.Time
}

// Option configures Svc
type Option func(*Svc)

// WithViews enables saved views over postgres
func WithViews(db repokit.TxRunner, binder repokit.Binder[repo.Views]) Option {
	return func(s *Svc) {
		s.db = db
		s.views = binder
	}
}

// WithEvents enables view event recording and usage queries
func WithEvents(e repo.Events) Option { return func(s *Svc) { s.events = e } }

// WithMetrics sets the build collectors
func WithMetrics(m *metrics.KPI) Option { return func(s *Svc) { s.metrics = m } }

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option { return func(s *Svc) { s.now = now } }

// New constructs a kpi service
func New(cfg Config, opts ...Option) *Svc {
	if cfg.EventTimeout <= 0 {
		cfg.EventTimeout = 2 * time.Second
	}
	if cfg.EventInFlight <= 0 {
		cfg.EventInFlight = 64
	}
	s := &Svc{cfg: cfg, now: time.Now, writers: semaphore.NewWeighted(int64(cfg.EventInFlight))}
	for _, o := range opts {
		o(s)
	}
	if s.db != nil && s.views == nil {
		panic("kpi.Service requires a non nil views binder with a TxRunner")
	}
	return s
}

var (
	errViewsDisabled = perr.Unavailablef("saved views are disabled (postgres not configured)")
	errUsageDisabled = perr.Unavailablef("usage is disabled (clickhouse not configured)")
)

// Tab builds one tab and records a view event
func (s *Svc) Tab(ctx context.Context, in domain.TabQuery) (domain.Payload, error) {
	p := s.params(in.Filters, in.Tab)
	out, tr, err := s.build(ctx, p)
	if err != nil {
		return domain.Payload{}, err
	}
	s.record(ctx, p, tr)
	return out, nil
}

// Overview builds every tab concurrently with the same filters
func (s *Svc) Overview(ctx context.Context, in domain.OverviewQuery) (domain.OverviewResp, error) {
	tabs := kpisynth.Tabs()
	res := make([]domain.Payload, len(tabs))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tabs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, _, err := s.build(gctx, s.params(in.Filters, string(t)))
			res[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return domain.OverviewResp{}, err
	}

	out := domain.OverviewResp{Tabs: make(map[string]domain.Payload, len(tabs))}
	for i, t := range tabs {
		out.Tabs[string(t)] = res[i]
	}
	return out, nil
}

// Explain returns the seed and factors for a tab query
func (s *Svc) Explain(_ context.Context, in domain.TabQuery) (domain.Trace, error) {
	tr, err := kpisynth.Explain(s.params(in.Filters, in.Tab))
	if err != nil {
		return domain.Trace{}, tabErr(err)
	}
	return tr, nil
}

// Tabs lists the registry in display order
func (s *Svc) Tabs(_ context.Context) []domain.TabInfo {
	out := make([]domain.TabInfo, 0, len(kpisynth.Tabs()))
	for _, t := range kpisynth.Tabs() {
		def, err := kpisynth.Definition(t)
		if err != nil {
			continue
		}
		keys := make([]string, 0, len(def.Cards))
		for _, c := range def.Cards {
			keys = append(keys, c.Key)
		}
		out = append(out, domain.TabInfo{ID: string(t), Title: def.Title, Cards: keys})
	}
	return out
}

// SaveView stores the filter tuple under a name unique per owner
func (s *Svc) SaveView(ctx context.Context, owner string, in domain.SaveViewInput) (domain.SavedView, error) {
	if s.db == nil {
		return domain.SavedView{}, errViewsDisabled
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.SavedView{}, perr.WithField(perr.InvalidArgf("name is required"), "name")
	}
	if !kpisynth.Tab(in.Tab).Valid() {
		return domain.SavedView{}, tabErr(kpisynth.ErrUnknownTab)
	}

	raw, err := json.Marshal(domain.ViewParams{
		GeoUnits:  in.GeoUnits,
		OrgUnit:   in.OrgUnit,
		TimeRange: in.TimeRange,
		RangeDays: in.RangeDays,
		Mode:      in.Mode,
		Tab:       in.Tab,
	})
	if err != nil {
		return domain.SavedView{}, err
	}

	row := repo.ViewRow{
		ID:        uuid.NewString(),
		Owner:     owner,
		Name:      name,
		Params:    raw,
		CreatedAt: s.now().UTC(),
	}
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.views.Bind(q).Insert(ctx, row)
	})
	if err != nil {
		err = perr.FromPostgres(err, "save view")
		if perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			err = perr.WithField(err, "name")
		}
		return domain.SavedView{}, err
	}

	logger.C(ctx).Info().Str("view_id", row.ID).Str("name", name).Msg("kpi view saved")
	return toView(row)
}

// ListViews returns the owner's views, newest first
func (s *Svc) ListViews(ctx context.Context, owner string) ([]domain.SavedView, error) {
	if s.db == nil {
		return nil, errViewsDisabled
	}
	rows, err := s.views.Bind(s.db).List(ctx, owner)
	if err != nil {
		return nil, perr.FromPostgres(err, "list views")
	}
	out := make([]domain.SavedView, 0, len(rows))
	for _, r := range rows {
		v, err := toView(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ViewPayload rebuilds a saved view with the supplied refresh key
func (s *Svc) ViewPayload(ctx context.Context, owner, id string, refreshKey int64) (domain.Payload, error) {
	if s.db == nil {
		return domain.Payload{}, errViewsDisabled
	}
	if err := checkID(id); err != nil {
		return domain.Payload{}, err
	}

	row, err := s.views.Bind(s.db).Get(ctx, owner, id)
	if err != nil {
		return domain.Payload{}, viewErr(err, id)
	}
	v, err := toView(row)
	if err != nil {
		return domain.Payload{}, err
	}

	p := s.params(domain.Filters{
		GeoUnits:   v.Params.GeoUnits,
		OrgUnit:    v.Params.OrgUnit,
		TimeRange:  v.Params.TimeRange,
		RangeDays:  v.Params.RangeDays,
		Mode:       v.Params.Mode,
		RefreshKey: refreshKey,
	}, v.Params.Tab)
	out, tr, err := s.build(ctx, p)
	if err != nil {
		return domain.Payload{}, err
	}
	s.record(ctx, p, tr)
	return out, nil
}

// DeleteView removes one of the owner's views
func (s *Svc) DeleteView(ctx context.Context, owner, id string) error {
	if s.db == nil {
		return errViewsDisabled
	}
	if err := checkID(id); err != nil {
		return err
	}
	var n int64
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var e error
		n, e = s.views.Bind(q).Delete(ctx, owner, id)
		return e
	})
	if err != nil {
		return perr.FromPostgres(err, "delete view")
	}
	if n == 0 {
		return perr.WithField(perr.NotFoundf("view %s not found", id), "id")
	}
	return nil
}

// Usage counts recorded builds per tab and mode over the last days
// concurrent calls for the same window share one query
func (s *Svc) Usage(ctx context.Context, days int) ([]domain.UsageRow, error) {
	if s.events == nil {
		return nil, errUsageDisabled
	}
	if days == 0 {
		days = DefaultUsageDays
	}
	if days < 1 || days > MaxUsageDays {
		return nil, perr.WithField(perr.InvalidArgf("days must be between 1 and %d", MaxUsageDays), "days")
	}

	v, err, _ := s.usage.Do(strconv.Itoa(days), func() (any, error) {
		since := s.now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
		rows, err := s.events.Usage(ctx, since)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "query usage")
		}
		out := make([]domain.UsageRow, 0, len(rows))
		for _, r := range rows {
			out = append(out, domain.UsageRow{Tab: r.Tab, Mode: r.Mode, Views: r.Views})
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.UsageRow), nil
}

// params maps filters to the engine tuple with configured defaults
func (s *Svc) params(f domain.Filters, tab string) kpisynth.Params {
	p := kpisynth.Params{
		GeoUnits:   f.GeoUnits,
		OrgUnit:    kpisynth.OrgUnit(f.OrgUnit),
		TimeRange:  kpisynth.TimeRange(f.TimeRange),
		RangeDays:  f.RangeDays,
		Mode:       kpisynth.Mode(f.Mode),
		Tab:        kpisynth.Tab(tab),
		RefreshKey: f.RefreshKey,
	}
	if p.Mode == "" {
		p.Mode = s.cfg.DefaultMode
	}
	if p.TimeRange == "" {
		p.TimeRange = s.cfg.DefaultRange
	}
	return p
}

func (s *Svc) build(ctx context.Context, p kpisynth.Params) (domain.Payload, domain.Trace, error) {
	start := time.Now()
	out, err := kpisynth.Build(p)
	if err != nil {
		logger.C(ctx).Warn().Str("tab", string(p.Tab)).Msg("kpi build rejected")
		return domain.Payload{}, domain.Trace{}, tabErr(err)
	}
	s.metrics.Observe(string(p.Tab), modeLabel(p.Mode), time.Since(start))

	tr, _ := kpisynth.Explain(p)
	logger.C(ctx).Debug().
		Str("tab", string(p.Tab)).
		Str("mode", modeLabel(p.Mode)).
		Uint32("seed", tr.Seed).
		Float64("base_factor", tr.BaseFactor).
		Msg("kpi built")
	return out, tr, nil
}

// record hands a view event to a background writer and returns at once
// a full writer pool drops the event, write failures are logged and counted only
func (s *Svc) record(ctx context.Context, p kpisynth.Params, tr domain.Trace) {
	if !s.cfg.RecordViews || s.events == nil {
		return
	}

	org := p.OrgUnit
	if org == "" {
		org = kpisynth.OrgAll
	}
	rng := p.TimeRange
	if rng == "" {
		rng = kpisynth.Range30d
	}
	ev := repo.ViewEvent{
		ID:         uuid.New(),
		At:         s.now().UTC(),
		Tab:        string(p.Tab),
		Mode:       modeLabel(p.Mode),
		GeoCount:   uint16(min(len(p.GeoUnits), math.MaxUint16)),
		OrgUnit:    string(org),
		TimeRange:  string(rng),
		Seed:       tr.Seed,
		BaseFactor: tr.BaseFactor,
	}

	if !s.writers.TryAcquire(1) {
		logger.C(ctx).Debug().Str("tab", ev.Tab).Msg("view event dropped, writers busy")
		s.metrics.ViewEvent("dropped")
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer s.writers.Release(1)

		ectx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.EventTimeout)
		defer cancel()
		if err := s.events.Record(ectx, ev); err != nil {
			logger.C(ctx).Warn().Err(err).Str("tab", ev.Tab).Msg("view event not recorded")
			s.metrics.ViewEvent("fail")
			return
		}
		s.metrics.ViewEvent("ok")
	}()
}

// Drain waits for in flight view event writes or ctx, whichever ends first
func (s *Svc) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func modeLabel(m kpisynth.Mode) string {
	if m == kpisynth.ModeNormalized {
		return string(kpisynth.ModeNormalized)
	}
	return string(kpisynth.ModeAbsolute)
}

// tabErr surfaces an unknown tab as a 422 on the tab field
func tabErr(err error) error {
	if errors.Is(err, kpisynth.ErrUnknownTab) {
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, "unknown tab"), "tab")
	}
	return err
}

func viewErr(err error, id string) error {
	if errors.Is(err, perr.ErrNotFound) {
		return perr.WithField(perr.NotFoundf("view %s not found", id), "id")
	}
	return perr.FromPostgres(err, "load view")
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return perr.WithField(perr.InvalidArgf("id must be a uuid"), "id")
	}
	return nil
}

func toView(r repo.ViewRow) (domain.SavedView, error) {
	v := domain.SavedView{ID: r.ID, Owner: r.Owner, Name: r.Name, CreatedAt: r.CreatedAt}
	if err := json.Unmarshal(r.Params, &v.Params); err != nil {
		return domain.SavedView{}, perr.Wrapf(err, perr.ErrorCodeDB, "decode view %s", r.ID)
	}
	return v, nil
}
