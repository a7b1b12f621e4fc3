// Package domain holds DTOs for the KPI workspace http and service contracts
package domain

import (
	"time"

	"marketwatch/internal/core/kpisynth"
)

type (
	// Payload is everything one tab renders
	Payload = kpisynth.Payload
	// Trace is the seed and factor breakdown behind a payload
	Trace = kpisynth.Trace
)

// Filters is the shared filter bar state
// Embed this in endpoint specific inputs to keep shapes consistent
type Filters struct {
	// Geographic units accept one or many codes
	// Swagger prefers single element examples for slices
	GeoUnits  []string `json:"geo_units,omitempty"  validate:"omitempty,max=64,dive,printascii,min=1,max=32" example:"HN"`
	OrgUnit   string   `json:"org_unit,omitempty"   validate:"omitempty,oneof=all top mid field cross" example:"all"`
	TimeRange string   `json:"time_range,omitempty" validate:"omitempty,oneof=7d 30d 90d" example:"30d"`
	// RangeDays overrides time_range when non zero, out of range values clamp
	RangeDays  int    `json:"range_days,omitempty"  validate:"min=-3650,max=3650" example:"0"`
	Mode       string `json:"mode,omitempty"        validate:"omitempty,oneof=absolute normalized" example:"absolute"`
	RefreshKey int64  `json:"refresh_key,omitempty" example:"0"`
}

// TabQuery asks for one tab
type TabQuery struct {
	Filters
	Tab string `json:"tab" validate:"required,oneof=command ops feedback risk market" example:"command"`
}

// OverviewQuery asks for every tab with the same filters
type OverviewQuery struct {
	Filters
}

// OverviewResp maps tab ids to payloads
type OverviewResp struct {
	Tabs map[string]Payload `json:"tabs"`
}

// TabInfo describes one registry entry
type TabInfo struct {
	ID    string   `json:"id"    example:"command"`
	Title string   `json:"title" example:"Chỉ huy điều hành"`
	Cards []string `json:"cards" example:"cases_handled"`
}

// SaveViewInput stores the current filter bar under a name
type SaveViewInput struct {
	Name string `json:"name" validate:"required,min=1,max=80" example:"Hà Nội tuần này"`
	TabQuery
}

// ViewParams is the persisted filter tuple of a saved view
// refresh_key is not persisted, callers supply it when building
type ViewParams struct {
	GeoUnits  []string `json:"geo_units,omitempty"`
	OrgUnit   string   `json:"org_unit,omitempty"`
	TimeRange string   `json:"time_range,omitempty"`
	RangeDays int      `json:"range_days,omitempty"`
	Mode      string   `json:"mode,omitempty"`
	Tab       string   `json:"tab"`
}

// SavedView is a named preset owned by one user
type SavedView struct {
	ID        string     `json:"id"         example:"0b7a1d0e-5f3c-4c55-9d8e-2f5c0a6b1e11"`
	Owner     string     `json:"owner"      example:"inspector-7"`
	Name      string     `json:"name"       example:"Hà Nội tuần này"`
	Params    ViewParams `json:"params"`
	CreatedAt time.Time  `json:"created_at" example:"2025-09-18T08:00:00Z"`
}

// UsageRow counts recorded tab builds for one tab and mode
type UsageRow struct {
	Tab   string `json:"tab"   example:"command"`
	Mode  string `json:"mode"  example:"absolute"`
	Views uint64 `json:"views" example:"42"`
}
