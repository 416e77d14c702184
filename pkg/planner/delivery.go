package planner

var calendarWeight = map[CalendarType]float64{
	CalendarWeekday: 1.0,
	CalendarHoliday: 1.3,
	CalendarRestday: 0.2,
}

var weatherWeight = map[WeatherLabel]float64{
	WeatherSunny:   1.0,
	WeatherCloudy:  0.95,
	WeatherRain:    0.8,
	WeatherStorm:   0.6,
	WeatherTyphoon: 0.4,
}

func lookupWeight[K comparable](table map[K]float64, key K) float64 {
	if w, ok := table[key]; ok {
		return w
	}
	return 1.0
}

// ComputeBaseline returns the per-item delivery quantity for every catalog
// item: average × calendar weight × weather weight × safety, rounded to
// two decimals.
func ComputeBaseline(calendarType CalendarType, weather WeatherLabel, safetyFactor float64) map[string]float64 {
	dw := lookupWeight(calendarWeight, calendarType)
	ww := lookupWeight(weatherWeight, weather)

	plan := make(map[string]float64, len(catalog))
	for _, entry := range catalog {
		plan[entry.Item] = roundTo(entry.AverageDelivery*dw*ww*safetyFactor, 2)
	}
	return plan
}

// ApplyLeftoverDeduction subtracts known leftovers from the plan. Items
// never go below zero.
func ApplyLeftoverDeduction(plan, leftovers map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(plan))
	for item, qty := range plan {
		out[item] = ClampQty(roundTo(qty-leftovers[item], 2))
	}
	return out
}
