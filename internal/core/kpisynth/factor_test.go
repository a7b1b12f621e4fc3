package kpisynth

import (
	"errors"
	"testing"
)

func TestGeoFactor(t *testing.T) {
	cases := map[int]float64{
		-1: 1.0, 0: 1.0, 1: 1.05, 2: 1.12, 3: 1.12,
		4: 1.20, 6: 1.20, 7: 1.28, 63: 1.28,
	}
	for n, want := range cases {
		if got := GeoFactor(n); got != want {
			t.Fatalf("GeoFactor(%d) got %v want %v", n, got, want)
		}
	}
}

func TestOrgFactor(t *testing.T) {
	cases := map[OrgUnit]float64{
		OrgAll: 1.0, OrgTop: 1.12, OrgMid: 1.05, OrgField: 0.96, OrgCross: 1.08,
		"": 1.0, "regional": 1.0,
	}
	for o, want := range cases {
		if got := OrgFactor(o); got != want {
			t.Fatalf("OrgFactor(%q) got %v want %v", o, got, want)
		}
	}
}

func TestRangeFactor(t *testing.T) {
	cases := []struct {
		tr   TimeRange
		days int
		want float64
	}{
		{Range7d, 0, 0.92},
		{Range30d, 0, 1.0},
		{Range90d, 0, 1.08},
		{"", 0, 1.0},
		{Range7d, 30, 1.0},
		{Range30d, 15, 0.75},
		{Range30d, 1, 0.75},
		{Range30d, 36, 1.2},
		{Range30d, 365, 1.35},
		{Range30d, -5, 0.75},
	}
	for _, tc := range cases {
		if got := RangeFactor(tc.tr, tc.days); got != tc.want {
			t.Fatalf("RangeFactor(%q,%d) got %v want %v", tc.tr, tc.days, got, tc.want)
		}
	}
}

func TestBaseFactor_Bounded(t *testing.T) {
	geos := [][]string{nil, {"a"}, {"a", "b", "c"}, {"a", "b", "c", "d", "e"}, {"a", "b", "c", "d", "e", "f", "g", "h"}}
	orgs := []OrgUnit{OrgAll, OrgTop, OrgMid, OrgField, OrgCross}
	ranges := []TimeRange{Range7d, Range30d, Range90d}
	days := []int{0, 1, 7, 45, 400}
	jitters := []float64{-0.5, -0.1, 0, 0.25, 0.499}

	for _, g := range geos {
		for _, o := range orgs {
			for _, r := range ranges {
				for _, d := range days {
					for _, j := range jitters {
						p := Params{GeoUnits: g, OrgUnit: o, TimeRange: r, RangeDays: d}
						f := BaseFactor(p, j)
						if f < MinBaseFactor || f > MaxBaseFactor {
							t.Fatalf("BaseFactor out of bounds: %v for %+v jitter=%v", f, p, j)
						}
					}
				}
			}
		}
	}
}

func TestBaseFactor_ClampsExtremes(t *testing.T) {
	big := Params{
		GeoUnits:  []string{"1", "2", "3", "4", "5", "6", "7"},
		OrgUnit:   OrgTop,
		RangeDays: 400,
	}
	if got := BaseFactor(big, 0.49); got != MaxBaseFactor {
		t.Fatalf("want upper clamp, got %v", got)
	}

	small := Params{OrgUnit: OrgField, RangeDays: 1}
	if got := BaseFactor(small, -0.5); got != MinBaseFactor {
		t.Fatalf("want lower clamp, got %v", got)
	}
}

func TestExplain(t *testing.T) {
	tr, err := Explain(Params{Tab: TabCommand})
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if tr.Canonical != "|all|30d||command|0" {
		t.Fatalf("canonical got %q", tr.Canonical)
	}
	if tr.Seed != 17 || tr.Jitter != -0.483 {
		t.Fatalf("seed/jitter got %d/%v", tr.Seed, tr.Jitter)
	}
	if tr.GeoFactor != 1 || tr.OrgFactor != 1 || tr.RangeFactor != 1 {
		t.Fatalf("sub factors got %+v", tr)
	}
	if tr.BaseFactor != BaseFactor(Params{Tab: TabCommand}, tr.Jitter) {
		t.Fatalf("base factor disagrees with BaseFactor: %v", tr.BaseFactor)
	}

	if _, err := Explain(Params{Tab: "nope"}); !errors.Is(err, ErrUnknownTab) {
		t.Fatalf("want ErrUnknownTab, got %v", err)
	}
}
