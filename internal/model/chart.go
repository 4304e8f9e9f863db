package model

import (
	"encoding/json"
	"time"
)

// ChartPoint is the valuation of every asset on one calendar day.
// It marshals to the wide format consumed by the chart: the date label plus one
// numeric field per asset name.
type ChartPoint struct {
	Date   time.Time
	Label  string
	Values map[string]float64
}

// MarshalJSON renders the point as {"date": label, "<asset name>": value, ...}.
func (p ChartPoint) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Values)+1)
	for name, v := range p.Values {
		out[name] = v
	}
	out["date"] = p.Label
	return json.Marshal(out)
}
