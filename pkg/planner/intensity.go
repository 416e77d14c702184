package planner

const (
	DefaultIntensityK     = 5.0
	DefaultIntensityFloor = 0.1
)

// Cloudy and storm carry no intensity adjustment.
var intensityWeatherCoeff = map[WeatherLabel]float64{
	WeatherSunny:   1.0,
	WeatherRain:    0.9,
	WeatherTyphoon: 0.7,
}

var intensityCalendarCoeff = map[CalendarType]float64{
	CalendarWeekday: 1.0,
	CalendarHoliday: 1.2,
	CalendarRestday: 0.8,
}

var itemCoeff = map[string]float64{
	ItemFishBelly:      1.2,
	ItemFishSkin:       1.1,
	ItemFishMeat:       1.0,
	ItemSteamedPowder:  1.0,
	ItemSausage:        0.9,
	ItemCrispyBall:     1.3,
	ItemShrimpMeatBall: 1.1,
	ItemMeatSauce:      1.0,
}

type IntensityInput struct {
	NextDayQty   float64
	LeftoverQty  float64
	Weather      WeatherLabel
	CalendarType CalendarType
	Item         string
	// K divides the demand ratio; nil or a non-positive value uses DefaultIntensityK.
	K *float64
	// Floor is the lower bound of the basic score; nil uses DefaultIntensityFloor.
	// An explicit zero disables the floor.
	Floor *float64
}

// ComputeIntensity turns the next-day need against today's leftovers into
// an urgency score in [0, 1], adjusted by weather, calendar and item.
// The floor applies before the coefficients, so the result can end up
// below it.
func ComputeIntensity(in IntensityInput) float64 {
	k := DefaultIntensityK
	if in.K != nil && *in.K > 0 {
		k = *in.K
	}
	floor := DefaultIntensityFloor
	if in.Floor != nil {
		floor = max(*in.Floor, 0)
	}

	ratio := in.NextDayQty / max(in.LeftoverQty+1.0, 1.0)
	basic := min(max(ratio/k, floor), 1.0)

	v := basic *
		lookupWeight(intensityWeatherCoeff, in.Weather) *
		lookupWeight(intensityCalendarCoeff, in.CalendarType) *
		lookupWeight(itemCoeff, in.Item)
	return min(v, 1.0)
}
