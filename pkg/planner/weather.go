package planner

type WeatherLabel string

const (
	WeatherSunny  WeatherLabel = "sunny"
	WeatherCloudy WeatherLabel = "cloudy"
	WeatherRain   WeatherLabel = "rain"
	WeatherStorm  WeatherLabel = "storm"
	// WeatherTyphoon carries a delivery weight but no provider code maps to it.
	WeatherTyphoon WeatherLabel = "typhoon"
)

// FallbackWeather is used by unattended schedule generation when the
// provider cannot be reached.
const FallbackWeather = WeatherSunny

// ClassifyWeatherCode maps an Open-Meteo weather code to a coarse label.
// Unmapped codes are treated as cloudy.
func ClassifyWeatherCode(code int) WeatherLabel {
	switch code {
	case 0, 1:
		return WeatherSunny
	case 2, 3:
		return WeatherCloudy
	case 51, 53, 55, 61, 63, 65, 80, 81, 82:
		return WeatherRain
	case 95, 96, 99:
		return WeatherStorm
	default:
		return WeatherCloudy
	}
}
