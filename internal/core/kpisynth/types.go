// Package kpisynth synthesizes deterministic KPI workspace payloads
//
// Every payload is a pure function of Params: the same filters and refresh key
// always produce the same cards, trend and breakdown. Nothing here touches a
// data store, spawns goroutines or keeps state between calls.
package kpisynth

// Tab identifies one of the fixed dashboard views
type Tab string

// Dashboard tabs
const (
	TabCommand  Tab = "command"
	TabOps      Tab = "ops"
	TabFeedback Tab = "feedback"
	TabRisk     Tab = "risk"
	TabMarket   Tab = "market"
)

var tabOrder = [...]Tab{TabCommand, TabOps, TabFeedback, TabRisk, TabMarket}

// Tabs returns every tab in display order
func Tabs() []Tab {
	out := make([]Tab, len(tabOrder))
	copy(out, tabOrder[:])
	return out
}

// Valid reports whether t is one of the fixed tabs
func (t Tab) Valid() bool {
	for _, x := range tabOrder {
		if x == t {
			return true
		}
	}
	return false
}

// OrgUnit is the organizational unit category filter
type OrgUnit string

// Org unit categories, the zero value means all units
const (
	OrgAll   OrgUnit = "all"
	OrgTop   OrgUnit = "top"
	OrgMid   OrgUnit = "mid"
	OrgField OrgUnit = "field"
	OrgCross OrgUnit = "cross"
)

// TimeRange is the preset reporting window
type TimeRange string

// Reporting windows, the zero value means 30 days
const (
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	Range90d TimeRange = "90d"
)

// Mode selects absolute values or 0..100 scores
type Mode string

// Output modes, the zero value means absolute
const (
	ModeAbsolute   Mode = "absolute"
	ModeNormalized Mode = "normalized"
)

// Kind is the measurement category inferred from a display unit
type Kind uint8

// Measurement kinds
const (
	KindCount Kind = iota
	KindRate
	KindDuration
	KindAmount
)

func (k Kind) String() string {
	switch k {
	case KindRate:
		return "rate"
	case KindDuration:
		return "duration"
	case KindAmount:
		return "amount"
	default:
		return "count"
	}
}

// Direction is the sign of a card trend
type Direction string

// Trend directions
const (
	DirUp   Direction = "up"
	DirDown Direction = "down"
	DirFlat Direction = "flat"
)

// PointsUnit replaces card units in normalized mode
const PointsUnit = "điểm"

// TrendLen is the fixed number of points in every trend series
const TrendLen = 7

// Params is the query tuple produced by the filter bar
// RangeDays of 0 means no explicit override
type Params struct {
	GeoUnits   []string
	OrgUnit    OrgUnit
	TimeRange  TimeRange
	RangeDays  int
	Mode       Mode
	Tab        Tab
	RefreshKey int64
}

// Card is one headline metric
type Card struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Trend     float64   `json:"trend"`
	Direction Direction `json:"direction"`
	Max       float64   `json:"max"`
}

// BreakdownEntry is one slice of a tab's category breakdown
type BreakdownEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// TrendPoint is one point of the headline trend series
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Payload is everything one tab renders
type Payload struct {
	Cards     []Card           `json:"cards"`
	Trend     []TrendPoint     `json:"trend"`
	Breakdown []BreakdownEntry `json:"breakdown"`
	Insights  []string         `json:"insights"`
}
