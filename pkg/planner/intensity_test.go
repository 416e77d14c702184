package planner_test

import (
	"testing"

	"prep-scheduler/pkg/planner"

	"github.com/stretchr/testify/assert"
)

func TestComputeIntensity(t *testing.T) {
	tests := []struct {
		name string
		in   planner.IntensityInput
		want float64
	}{
		{
			name: "fish belly sunny weekday",
			in:   planner.IntensityInput{NextDayQty: 3, Weather: planner.WeatherSunny, CalendarType: planner.CalendarWeekday, Item: planner.ItemFishBelly},
			want: 0.72,
		},
		{
			name: "leftovers damp the ratio",
			in:   planner.IntensityInput{NextDayQty: 3, LeftoverQty: 2, Weather: planner.WeatherSunny, CalendarType: planner.CalendarWeekday, Item: planner.ItemFishMeat},
			want: 0.2,
		},
		{
			name: "floor applies before coefficients",
			in:   planner.IntensityInput{NextDayQty: 0, Weather: planner.WeatherSunny, CalendarType: planner.CalendarRestday, Item: planner.ItemSteamedPowder},
			want: 0.08,
		},
		{
			name: "rain",
			in:   planner.IntensityInput{NextDayQty: 2.5, Weather: planner.WeatherRain, CalendarType: planner.CalendarWeekday, Item: planner.ItemMeatSauce},
			want: 0.45,
		},
		{
			name: "capped at one",
			in:   planner.IntensityInput{NextDayQty: 100, Weather: planner.WeatherSunny, CalendarType: planner.CalendarHoliday, Item: planner.ItemCrispyBall},
			want: 1.0,
		},
		{
			name: "unknown item and cloudy weather are neutral",
			in:   planner.IntensityInput{NextDayQty: 2, Weather: planner.WeatherCloudy, CalendarType: planner.CalendarWeekday, Item: "mystery"},
			want: 0.4,
		},
		{
			name: "custom K",
			in:   planner.IntensityInput{NextDayQty: 2, Weather: planner.WeatherSunny, CalendarType: planner.CalendarWeekday, Item: planner.ItemFishMeat, K: ptr(4.0)},
			want: 0.5,
		},
		{
			name: "non-positive K uses the default",
			in:   planner.IntensityInput{NextDayQty: 2, Weather: planner.WeatherSunny, CalendarType: planner.CalendarWeekday, Item: planner.ItemFishMeat, K: ptr(0.0)},
			want: 0.4,
		},
		{
			name: "explicit zero floor",
			in:   planner.IntensityInput{NextDayQty: 0, Weather: planner.WeatherSunny, CalendarType: planner.CalendarWeekday, Item: planner.ItemFishMeat, Floor: ptr(0.0)},
			want: 0,
		},
		{
			name: "custom floor",
			in:   planner.IntensityInput{NextDayQty: 0, Weather: planner.WeatherSunny, CalendarType: planner.CalendarWeekday, Item: planner.ItemFishMeat, Floor: ptr(0.3)},
			want: 0.3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, planner.ComputeIntensity(tt.in), 1e-9)
		})
	}
}

func ptr(v float64) *float64 { return &v }

func TestComputeIntensityStaysInUnitInterval(t *testing.T) {
	items := append(planner.CatalogItems(), planner.ItemSausage, planner.ItemShrimpMeatBall, "unknown")
	weathers := []planner.WeatherLabel{planner.WeatherSunny, planner.WeatherCloudy, planner.WeatherRain, planner.WeatherStorm, planner.WeatherTyphoon}
	calendars := []planner.CalendarType{planner.CalendarWeekday, planner.CalendarHoliday, planner.CalendarRestday}

	for _, item := range items {
		for _, w := range weathers {
			for _, dt := range calendars {
				for next := 0.0; next <= 20; next += 1.7 {
					for left := 0.0; left <= 10; left += 1.3 {
						v := planner.ComputeIntensity(planner.IntensityInput{
							NextDayQty: next, LeftoverQty: left, Weather: w, CalendarType: dt, Item: item,
						})
						assert.GreaterOrEqual(t, v, 0.0)
						assert.LessOrEqual(t, v, 1.0)
					}
				}
			}
		}
	}
}
