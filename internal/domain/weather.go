package domain

import (
	"context"
	"fmt"
	"slices"
)

// TemperatureUnit is the unit used for temperature values.
type TemperatureUnit string

const (
	TemperatureUnit_Celsius    TemperatureUnit = "celsius"
	TemperatureUnit_Fahrenheit TemperatureUnit = "fahrenheit"
)

// WindSpeedUnit is the unit used for wind speed values.
type WindSpeedUnit string

const (
	WindSpeedUnit_Kmh   WindSpeedUnit = "kmh"
	WindSpeedUnit_Ms    WindSpeedUnit = "ms"
	WindSpeedUnit_Mph   WindSpeedUnit = "mph"
	WindSpeedUnit_Knots WindSpeedUnit = "kn"
)

// PrecipitationUnit is the unit used for precipitation values.
type PrecipitationUnit string

const (
	PrecipitationUnit_Mm   PrecipitationUnit = "mm"
	PrecipitationUnit_Inch PrecipitationUnit = "inch"
)

// TimeFormat is the format used for timestamps in weather readings.
type TimeFormat string

const (
	TimeFormat_ISO8601  TimeFormat = "iso8601"
	TimeFormat_UnixTime TimeFormat = "unixtime"
)

// WeatherUnits holds the unit system applied to every weather request.
type WeatherUnits struct {
	Temperature   TemperatureUnit
	WindSpeed     WindSpeedUnit
	Precipitation PrecipitationUnit
	TimeFormat    TimeFormat
}

// DefaultWeatherUnits returns celsius, km/h, millimeters and ISO 8601 timestamps.
func DefaultWeatherUnits() WeatherUnits {
	return WeatherUnits{
		Temperature:   TemperatureUnit_Celsius,
		WindSpeed:     WindSpeedUnit_Kmh,
		Precipitation: PrecipitationUnit_Mm,
		TimeFormat:    TimeFormat_ISO8601,
	}
}

// Validate checks that every unit is a recognized value.
func (u WeatherUnits) Validate() error {
	if !slices.Contains([]TemperatureUnit{TemperatureUnit_Celsius, TemperatureUnit_Fahrenheit}, u.Temperature) {
		return NewValidationErr(fmt.Sprintf("invalid temperature unit %q", u.Temperature))
	}
	if !slices.Contains([]WindSpeedUnit{WindSpeedUnit_Kmh, WindSpeedUnit_Ms, WindSpeedUnit_Mph, WindSpeedUnit_Knots}, u.WindSpeed) {
		return NewValidationErr(fmt.Sprintf("invalid wind speed unit %q", u.WindSpeed))
	}
	if !slices.Contains([]PrecipitationUnit{PrecipitationUnit_Mm, PrecipitationUnit_Inch}, u.Precipitation) {
		return NewValidationErr(fmt.Sprintf("invalid precipitation unit %q", u.Precipitation))
	}
	if !slices.Contains([]TimeFormat{TimeFormat_ISO8601, TimeFormat_UnixTime}, u.TimeFormat) {
		return NewValidationErr(fmt.Sprintf("invalid time format %q", u.TimeFormat))
	}
	return nil
}

// Coordinates is a geographic position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CurrentWeatherFields lists the instantaneous fields requested for every reading, in request order.
var CurrentWeatherFields = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"apparent_temperature",
	"is_day",
	"precipitation",
	"rain",
	"showers",
	"snowfall",
	"weather_code",
	"cloud_cover",
	"pressure_msl",
	"surface_pressure",
	"wind_speed_10m",
	"wind_direction_10m",
	"wind_gusts_10m",
}

// CurrentConditions holds the instantaneous weather values at a location.
// Time is either an ISO 8601 string or a unix timestamp, depending on the configured TimeFormat.
type CurrentConditions struct {
	Time                any     `json:"time" toon:"time"`
	Interval            int     `json:"interval" toon:"interval"`
	Temperature         float64 `json:"temperature_2m" toon:"temperature_2m"`
	RelativeHumidity    float64 `json:"relative_humidity_2m" toon:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature" toon:"apparent_temperature"`
	IsDay               int     `json:"is_day" toon:"is_day"`
	Precipitation       float64 `json:"precipitation" toon:"precipitation"`
	Rain                float64 `json:"rain" toon:"rain"`
	Showers             float64 `json:"showers" toon:"showers"`
	Snowfall            float64 `json:"snowfall" toon:"snowfall"`
	WeatherCode         int     `json:"weather_code" toon:"weather_code"`
	CloudCover          float64 `json:"cloud_cover" toon:"cloud_cover"`
	PressureMSL         float64 `json:"pressure_msl" toon:"pressure_msl"`
	SurfacePressure     float64 `json:"surface_pressure" toon:"surface_pressure"`
	WindSpeed           float64 `json:"wind_speed_10m" toon:"wind_speed_10m"`
	WindDirection       float64 `json:"wind_direction_10m" toon:"wind_direction_10m"`
	WindGusts           float64 `json:"wind_gusts_10m" toon:"wind_gusts_10m"`
}

// WeatherReading is the current weather at a location, along with the units of each value.
type WeatherReading struct {
	Latitude     float64           `json:"latitude" toon:"latitude"`
	Longitude    float64           `json:"longitude" toon:"longitude"`
	Timezone     string            `json:"timezone" toon:"timezone"`
	Elevation    float64           `json:"elevation" toon:"elevation"`
	CurrentUnits map[string]string `json:"current_units" toon:"current_units"`
	Current      CurrentConditions `json:"current" toon:"current"`
}

// WeatherProvider resolves places and fetches current weather conditions.
type WeatherProvider interface {
	// ResolveCoordinates returns the coordinates of the best match for the place name.
	// The boolean is false when no coordinates are available, which is not an error.
	ResolveCoordinates(ctx context.Context, placeName string) (Coordinates, bool)

	// CurrentConditions fetches the current weather at the given coordinates.
	// It fails with *WeatherFetchErr when the request does not succeed.
	CurrentConditions(ctx context.Context, latitude, longitude float64) (WeatherReading, error)
}
