package planner

import "github.com/shopspring/decimal"

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func truncateToInt(v float64) float64 {
	return decimal.NewFromFloat(v).Truncate(0).InexactFloat64()
}

// ClampQty floors negative quantities at zero.
func ClampQty(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
