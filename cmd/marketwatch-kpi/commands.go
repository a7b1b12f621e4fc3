package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"marketwatch/internal/core/kpisynth"
	"marketwatch/internal/platform/net/http/bind"
	"marketwatch/internal/services/api/kpi/domain"
	kpisvc "marketwatch/internal/services/api/kpi/service"
)

// output formats
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

type rootOpts struct {
	format string
}

func newRootCmd() *cobra.Command {
	o := &rootOpts{}
	root := &cobra.Command{
		Use:          "marketwatch-kpi",
		Short:        "Synthesize KPI dashboard payloads from a filter tuple",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch o.format {
			case formatJSON, formatYAML, formatText:
				return nil
			}
			return fmt.Errorf("unknown format %q (json, yaml, text)", o.format)
		},
	}
	root.PersistentFlags().StringVarP(&o.format, "format", "o", formatJSON, "output format: json, yaml or text")

	svc := kpisvc.New(kpisvc.Config{
		DefaultMode:  kpisynth.ModeAbsolute,
		DefaultRange: kpisynth.Range30d,
	})

	root.AddCommand(newSynthCmd(o, svc), newExplainCmd(o, svc), newTabsCmd(o, svc))
	return root
}

// filterFlags binds the filter bar tuple to flags
type filterFlags struct {
	geo        []string
	org        string
	timeRange  string
	days       int
	mode       string
	tab        string
	refreshKey int64
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringSliceVar(&f.geo, "geo", nil, "geographic unit codes, repeatable or comma separated")
	fl.StringVar(&f.org, "org", "", "org unit: all, top, mid, field, cross")
	fl.StringVar(&f.timeRange, "range", "", "time range preset: 7d, 30d, 90d")
	fl.IntVar(&f.days, "days", 0, "explicit range in days, overrides --range")
	fl.StringVar(&f.mode, "mode", "", "absolute or normalized")
	fl.StringVar(&f.tab, "tab", string(kpisynth.TabCommand), "tab id")
	fl.Int64Var(&f.refreshKey, "refresh-key", 0, "refresh key, bump to reseed")
}

func (f *filterFlags) query() (domain.TabQuery, error) {
	q := domain.TabQuery{
		Filters: domain.Filters{
			GeoUnits:   f.geo,
			OrgUnit:    strings.ToLower(f.org),
			TimeRange:  strings.ToLower(f.timeRange),
			RangeDays:  f.days,
			Mode:       strings.ToLower(f.mode),
			RefreshKey: f.refreshKey,
		},
		Tab: strings.ToLower(f.tab),
	}
	if err := bind.Get().Struct(q); err != nil {
		return q, fmt.Errorf("invalid filters: %w", err)
	}
	return q, nil
}

func newSynthCmd(o *rootOpts, svc kpisvc.Service) *cobra.Command {
	f := &filterFlags{}
	var all bool
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Build the payload for one tab, or every tab with --all",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := f.query()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if all {
				res, err := svc.Overview(ctx, domain.OverviewQuery{Filters: q.Filters})
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), o.format, res)
			}
			p, err := svc.Tab(ctx, q)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), o.format, p)
		},
	}
	f.bind(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "build every tab with the same filters")
	return cmd
}

func newExplainCmd(o *rootOpts, svc kpisvc.Service) *cobra.Command {
	f := &filterFlags{}
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Print the canonical tuple, seed and factors behind a tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := f.query()
			if err != nil {
				return err
			}
			tr, err := svc.Explain(cmd.Context(), q)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), o.format, tr)
		},
	}
	f.bind(cmd)
	return cmd
}

func newTabsCmd(o *rootOpts, svc kpisvc.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List tabs and their card keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd.OutOrStdout(), o.format, svc.Tabs(cmd.Context()))
		},
	}
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		return renderText(w, v)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}
}

var upper = cases.Upper(language.Vietnamese)

// renderText prints payloads as aligned lines, other values fall back to yaml
func renderText(w io.Writer, v any) error {
	switch x := v.(type) {
	case domain.Payload:
		return writePayload(w, x)
	case domain.OverviewResp:
		for _, t := range kpisynth.Tabs() {
			if _, err := fmt.Fprintf(w, "== %s\n", upper.String(string(t))); err != nil {
				return err
			}
			if err := writePayload(w, x.Tabs[string(t)]); err != nil {
				return err
			}
		}
		return nil
	case []domain.TabInfo:
		for _, t := range x {
			if _, err := fmt.Fprintf(w, "%-9s %s (%s)\n", t.ID, upper.String(t.Title), strings.Join(t.Cards, ", ")); err != nil {
				return err
			}
		}
		return nil
	default:
		return render(w, formatYAML, v)
	}
}

func writePayload(w io.Writer, p domain.Payload) error {
	var b strings.Builder
	for _, c := range p.Cards {
		fmt.Fprintf(&b, "%-24s %10g %-8s %+5.1f %s\n", c.Key, c.Value, c.Unit, c.Trend, c.Direction)
	}
	pts := make([]string, len(p.Trend))
	for i, t := range p.Trend {
		pts[i] = fmt.Sprintf("%s=%g", t.Label, t.Value)
	}
	fmt.Fprintf(&b, "trend     %s\n", strings.Join(pts, " "))
	for _, s := range p.Breakdown {
		fmt.Fprintf(&b, "  %-22s %g\n", s.Label, s.Value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
