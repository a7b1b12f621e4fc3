package kpisynth

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
)

// seedSep joins canonical tuple fields
const seedSep = "|"

// Canonical renders the tuple fields that drive the seed
// geo units are sorted on a copy so selection order never matters
// mode is not part of the tuple, normalized output rescales the absolute one
func Canonical(p Params) string {
	geo := slices.Clone(p.GeoUnits)
	slices.Sort(geo)

	days := ""
	if p.RangeDays != 0 {
		days = strconv.Itoa(p.RangeDays)
	}

	return strings.Join([]string{
		strings.Join(geo, ","),
		string(orgOrDefault(p.OrgUnit)),
		string(rangeOrDefault(p.TimeRange)),
		days,
		string(p.Tab),
		strconv.FormatInt(p.RefreshKey, 10),
	}, seedSep)
}

// hash32 folds s as UTF-16 code units into a wrapping int32 (h*31 + c)
func hash32(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return h
}

// DeriveSeed returns a 0..999 seed and a jitter in [-0.5, 0.5)
func DeriveSeed(p Params) (uint32, float64) {
	h := int64(hash32(Canonical(p)))
	if h < 0 {
		h = -h
	}
	seed := uint32(h % 1000)
	return seed, float64(seed)/1000 - 0.5
}

func orgOrDefault(o OrgUnit) OrgUnit {
	if o == "" {
		return OrgAll
	}
	return o
}

func rangeOrDefault(r TimeRange) TimeRange {
	if r == "" {
		return Range30d
	}
	return r
}
