package kpisynth

// Base factor bounds
const (
	MinBaseFactor = 0.8
	MaxBaseFactor = 1.4
)

// GeoFactor grows with the number of selected geographic units
func GeoFactor(n int) float64 {
	switch {
	case n <= 0:
		return 1.0
	case n <= 1:
		return 1.05
	case n <= 3:
		return 1.12
	case n <= 6:
		return 1.20
	default:
		return 1.28
	}
}

// OrgFactor is a fixed lookup by org unit category
func OrgFactor(o OrgUnit) float64 {
	switch o {
	case OrgTop:
		return 1.12
	case OrgMid:
		return 1.05
	case OrgField:
		return 0.96
	case OrgCross:
		return 1.08
	default:
		return 1.0
	}
}

// RangeFactor scales by window length
// an explicit rangeDays wins over the preset and is clamped to [0.75, 1.35]
func RangeFactor(tr TimeRange, rangeDays int) float64 {
	if rangeDays != 0 {
		return clamp(float64(rangeDays)/30, 0.75, 1.35)
	}
	switch tr {
	case Range7d:
		return 0.92
	case Range90d:
		return 1.08
	default:
		return 1.0
	}
}

// BaseFactor combines the sub factors with a small jitter and bounds the result
func BaseFactor(p Params, jitter float64) float64 {
	f := GeoFactor(len(p.GeoUnits)) *
		OrgFactor(p.OrgUnit) *
		RangeFactor(p.TimeRange, p.RangeDays) *
		(1 + jitter*0.05)
	return clamp(f, MinBaseFactor, MaxBaseFactor)
}

// Trace exposes the intermediate values behind a payload
type Trace struct {
	Canonical   string  `json:"canonical"    yaml:"canonical"`
	Seed        uint32  `json:"seed"         yaml:"seed"`
	Jitter      float64 `json:"jitter"       yaml:"jitter"`
	GeoFactor   float64 `json:"geo_factor"   yaml:"geo_factor"`
	OrgFactor   float64 `json:"org_factor"   yaml:"org_factor"`
	RangeFactor float64 `json:"range_factor" yaml:"range_factor"`
	BaseFactor  float64 `json:"base_factor"  yaml:"base_factor"`
}

// Explain returns the seed and factors Build would use for p
func Explain(p Params) (Trace, error) {
	if !p.Tab.Valid() {
		return Trace{}, unknownTab(p.Tab)
	}
	seed, jitter := DeriveSeed(p)
	return Trace{
		Canonical:   Canonical(p),
		Seed:        seed,
		Jitter:      jitter,
		GeoFactor:   GeoFactor(len(p.GeoUnits)),
		OrgFactor:   OrgFactor(p.OrgUnit),
		RangeFactor: RangeFactor(p.TimeRange, p.RangeDays),
		BaseFactor:  BaseFactor(p, jitter),
	}, nil
}
