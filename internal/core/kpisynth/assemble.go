package kpisynth

// Build synthesizes the payload for p.Tab
// the only failure is a tab outside the fixed set
func Build(p Params) (Payload, error) {
	def, err := Definition(p.Tab)
	if err != nil {
		return Payload{}, err
	}

	_, jitter := DeriveSeed(p)
	factor := BaseFactor(p, jitter)

	out := Payload{
		Cards:     make([]Card, 0, len(def.Cards)),
		Breakdown: make([]BreakdownEntry, 0, len(def.Breakdown)),
		Insights:  def.Insights,
	}

	for _, c := range def.Cards {
		trend := round1(c.Trend + jitter*4)
		out.Cards = append(out.Cards, Card{
			Key:       c.Key,
			Title:     c.Title,
			Value:     ApplyValue(c.Base, factor, jitter, GuessKind(c.Unit)),
			Unit:      c.Unit,
			Trend:     trend,
			Direction: direction(trend),
			Max:       c.Max,
		})
	}

	for _, s := range def.Breakdown {
		out.Breakdown = append(out.Breakdown, BreakdownEntry{
			Label: s.Label,
			Value: ApplyValue(s.Base, factor, jitter, KindCount),
			Color: s.Color,
		})
	}

	// the first card is the tab's headline metric and drives the series
	out.Trend = trendSeries(def.Cards[0], p, factor, jitter)

	if p.Mode == ModeNormalized {
		normalize(&out)
	}
	return out, nil
}

// MustBuild is Build for callers that already validated the tab
func MustBuild(p Params) Payload {
	out, err := Build(p)
	if err != nil {
		panic(err)
	}
	return out
}

func direction(trend float64) Direction {
	switch {
	case trend > 0:
		return DirUp
	case trend < 0:
		return DirDown
	default:
		return DirFlat
	}
}

// dailyLabels reports whether the window is short enough for per day labels
func dailyLabels(p Params) bool {
	if p.RangeDays != 0 {
		return p.RangeDays > 0 && p.RangeDays <= 7
	}
	return p.TimeRange == Range7d
}

func trendSeries(head CardDef, p Params, factor, jitter float64) []TrendPoint {
	prefix := "T"
	if dailyLabels(p) {
		prefix = "D"
	}
	kind := GuessKind(head.Unit)

	pts := make([]TrendPoint, TrendLen)
	for i := range pts {
		ratio := 0.9 + 0.03*float64(i) + jitter*0.02
		pts[i] = TrendPoint{
			Label: prefix + string(rune('1'+i)),
			Value: ApplyValue(head.Base*ratio, factor, jitter, kind),
		}
	}
	return pts
}

// normalize rescales cards by their domain max, the breakdown to shares of
// its own total and the trend against its own peak
func normalize(p *Payload) {
	for i := range p.Cards {
		c := &p.Cards[i]
		c.Value = percentOf(c.Value, c.Max)
		c.Unit = PointsUnit
	}

	var total float64
	for _, b := range p.Breakdown {
		total += b.Value
	}
	for i := range p.Breakdown {
		p.Breakdown[i].Value = percentOf(p.Breakdown[i].Value, total)
	}

	var peak float64
	for _, t := range p.Trend {
		if t.Value > peak {
			peak = t.Value
		}
	}
	for i := range p.Trend {
		p.Trend[i].Value = percentOf(p.Trend[i].Value, peak)
	}
}

// percentOf maps v onto 0..100 of whole, a non positive whole counts as 1
func percentOf(v, whole float64) float64 {
	if whole <= 0 {
		whole = 1
	}
	return clamp(roundHalfUp(v/whole*100), 0, 100)
}
