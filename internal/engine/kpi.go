package engine

import (
	"strconv"
	"strings"

	"admindash/internal/orders"
)

const (
	TrendUp   = "UP"
	TrendDown = "DOWN"
	TrendFlat = "FLAT"
)

// KPIResult is a KPI card with its change parsed and classified.
type KPIResult struct {
	Name      string
	Value     string
	Change    string
	ChangePct float64
	Trend     string
	Page      string
}

// parseChange reads a signed percentage such as "+11.01%" or "-0.03%".
func parseChange(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getTrend(pct float64) string {
	if pct > 0 {
		return TrendUp
	}
	if pct < 0 {
		return TrendDown
	}
	return TrendFlat
}

// Evaluate classifies every KPI. A change that cannot be parsed is flat.
func Evaluate(kpis []orders.KPI) []KPIResult {
	result := make([]KPIResult, 0, len(kpis))
	for _, k := range kpis {
		pct, ok := parseChange(k.Change)
		trend := TrendFlat
		if ok {
			trend = getTrend(pct)
		}
		result = append(result, KPIResult{
			Name:      k.Name,
			Value:     k.Value,
			Change:    k.Change,
			ChangePct: pct,
			Trend:     trend,
			Page:      k.Page,
		})
	}
	return result
}
