package kpisynth

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// durationTokens are units that only count as durations on an exact match
// substring matching would catch "phản ánh" for "h"
var durationTokens = map[string]struct{}{
	"h": {}, "hr": {}, "hrs": {}, "hour": {}, "hours": {},
	"d": {}, "day": {}, "days": {},
}

// GuessKind infers the measurement kind from a display unit
func GuessKind(unit string) Kind {
	u := strings.ToLower(strings.TrimSpace(norm.NFC.String(unit)))
	switch {
	case strings.Contains(u, "%"):
		return KindRate
	case strings.Contains(u, "giờ"), strings.Contains(u, "ngày"):
		return KindDuration
	case strings.Contains(u, "tỷ"):
		return KindAmount
	}
	if _, ok := durationTokens[u]; ok {
		return KindDuration
	}
	return KindCount
}

// ApplyValue scales a baseline by factor and jitter according to kind
//
//   - count scales multiplicatively and never goes negative
//   - rate moves additively and stays within [0, 100]
//   - duration moves against the factor and stays within [0.3, 30]
//   - amount scales multiplicatively with one decimal
func ApplyValue(baseline, factor, jitter float64, kind Kind) float64 {
	switch kind {
	case KindRate:
		return clamp(round1(baseline+(factor-1)*12+jitter*6), 0, 100)
	case KindDuration:
		bias := 1.02
		if factor >= 1 {
			bias = 0.98
		}
		return clamp(round1(baseline*(1+jitter*0.08)*bias), 0.3, 30)
	case KindAmount:
		return math.Max(round1(baseline*factor*(0.95+jitter*0.08)), 0)
	default:
		return math.Max(roundHalfUp(baseline*factor*(1+jitter*0.06)), 0)
	}
}

// roundHalfUp rounds .5 toward positive infinity like the dashboard client
func roundHalfUp(x float64) float64 { return math.Floor(x + 0.5) }

func round1(x float64) float64 { return math.Floor(x*10+0.5) / 10 }

// clamp also maps NaN to lo
func clamp(x, lo, hi float64) float64 {
	switch {
	case math.IsNaN(x), x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}
