// Package openmeteo implements domain.WeatherProvider on top of the public
// Open-Meteo geocoding and forecast APIs.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

	geocodingTimeout = 10 * time.Second
	forecastTimeout  = 30 * time.Second
)

// geocodingResponse is the subset of the geocoding search payload the client reads.
type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// Client fetches coordinates and current conditions from Open-Meteo.
type Client struct {
	http         *http.Client
	logger       zerolog.Logger
	units        domain.WeatherUnits
	forecastURL  string
	geocodingURL string
}

// NewClient creates a new Open-Meteo client. Units are validated once here and
// applied to every forecast request.
func NewClient(httpClient *http.Client, logger zerolog.Logger, units domain.WeatherUnits, forecastURL, geocodingURL string) (Client, error) {
	if err := units.Validate(); err != nil {
		return Client{}, err
	}
	return Client{
		http:         httpClient,
		logger:       logger.With().Str("component", "openmeteo").Logger(),
		units:        units,
		forecastURL:  forecastURL,
		geocodingURL: geocodingURL,
	}, nil
}

// ResolveCoordinates returns the coordinates of the first geocoding match for placeName.
// Every failure is logged and reported as not found.
func (c Client) ResolveCoordinates(ctx context.Context, placeName string) (domain.Coordinates, bool) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("place", placeName),
	))
	defer span.End()

	spanCtx, cancel := context.WithTimeout(spanCtx, geocodingTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("name", placeName)
	params.Set("count", "1")

	body, status, err := c.get(spanCtx, c.geocodingURL, params)
	if telemetry.RecordErrorAndStatus(span, err) {
		c.logger.Error().Err(err).Str("place", placeName).Msg("geocoding request failed")
		return domain.Coordinates{}, false
	}
	if status < 200 || status >= 300 {
		c.logger.Warn().
			Str("place", placeName).
			Int("status", status).
			Str("body", string(body)).
			Msg("geocoding request returned non-success status")
		return domain.Coordinates{}, false
	}

	var out geocodingResponse
	if err := json.Unmarshal(body, &out); telemetry.RecordErrorAndStatus(span, err) {
		c.logger.Error().Err(err).Str("place", placeName).Str("body", string(body)).Msg("failed to decode geocoding response")
		return domain.Coordinates{}, false
	}
	if len(out.Results) == 0 {
		c.logger.Info().Str("place", placeName).Msg("no geocoding results")
		return domain.Coordinates{}, false
	}

	coords := domain.Coordinates{
		Latitude:  out.Results[0].Latitude,
		Longitude: out.Results[0].Longitude,
	}
	span.SetAttributes(
		attribute.Float64("latitude", coords.Latitude),
		attribute.Float64("longitude", coords.Longitude),
	)
	c.logger.Debug().
		Str("place", placeName).
		Str("match", out.Results[0].Name).
		Str("country", out.Results[0].Country).
		Float64("latitude", coords.Latitude).
		Float64("longitude", coords.Longitude).
		Msg("resolved coordinates")
	return coords, true
}

// CurrentConditions fetches the current weather at the given coordinates in the configured units.
func (c Client) CurrentConditions(ctx context.Context, latitude, longitude float64) (domain.WeatherReading, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Float64("latitude", latitude),
		attribute.Float64("longitude", longitude),
	))
	defer span.End()

	spanCtx, cancel := context.WithTimeout(spanCtx, forecastTimeout)
	defer cancel()

	params := c.forecastParams(latitude, longitude)

	body, status, err := c.get(spanCtx, c.forecastURL, params)
	if err != nil {
		fetchErr := domain.NewWeatherFetchErr(0, err)
		telemetry.RecordErrorAndStatus(span, fetchErr)
		c.logger.Error().Err(err).Str("params", params.Encode()).Msg("forecast request failed")
		return domain.WeatherReading{}, fetchErr
	}
	if status < 200 || status >= 300 {
		fetchErr := domain.NewWeatherFetchErr(status, nil)
		telemetry.RecordErrorAndStatus(span, fetchErr)
		c.logger.Error().
			Int("status", status).
			Str("params", params.Encode()).
			Str("body", string(body)).
			Msg("forecast request returned non-success status")
		return domain.WeatherReading{}, fetchErr
	}

	var reading domain.WeatherReading
	if err := json.Unmarshal(body, &reading); err != nil {
		fetchErr := domain.NewWeatherFetchErr(0, fmt.Errorf("decode forecast response: %w", err))
		telemetry.RecordErrorAndStatus(span, fetchErr)
		c.logger.Error().Err(err).Str("params", params.Encode()).Msg("failed to decode forecast response")
		return domain.WeatherReading{}, fetchErr
	}

	return reading, nil
}

// forecastParams builds the forecast query for the coordinates and the client units.
func (c Client) forecastParams(latitude, longitude float64) url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current", strings.Join(domain.CurrentWeatherFields, ","))
	params.Set("temperature_unit", string(c.units.Temperature))
	params.Set("wind_speed_unit", string(c.units.WindSpeed))
	params.Set("precipitation_unit", string(c.units.Precipitation))
	params.Set("timeformat", string(c.units.TimeFormat))
	return params
}

// get issues a GET request and returns the response body and status code.
func (c Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, int, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid endpoint: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// InitWeatherClient is a Symbiont initializer for the Open-Meteo client.
type InitWeatherClient struct {
	HttpClient        *http.Client   `resolve:""`
	Logger            zerolog.Logger `resolve:""`
	TemperatureUnit   string         `config:"WEATHER_TEMPERATURE_UNIT" default:"celsius"`
	WindSpeedUnit     string         `config:"WEATHER_WIND_SPEED_UNIT" default:"kmh"`
	PrecipitationUnit string         `config:"WEATHER_PRECIPITATION_UNIT" default:"mm"`
	TimeFormat        string         `config:"WEATHER_TIME_FORMAT" default:"iso8601"`
	ForecastURL       string         `config:"OPEN_METEO_FORECAST_URL" default:"https://api.open-meteo.com/v1/forecast"`
	GeocodingURL      string         `config:"OPEN_METEO_GEOCODING_URL" default:"https://geocoding-api.open-meteo.com/v1/search"`
}

// Initialize registers the client as the domain.WeatherProvider.
func (i InitWeatherClient) Initialize(ctx context.Context) (context.Context, error) {
	units := domain.WeatherUnits{
		Temperature:   domain.TemperatureUnit(strings.ToLower(i.TemperatureUnit)),
		WindSpeed:     domain.WindSpeedUnit(strings.ToLower(i.WindSpeedUnit)),
		Precipitation: domain.PrecipitationUnit(strings.ToLower(i.PrecipitationUnit)),
		TimeFormat:    domain.TimeFormat(strings.ToLower(i.TimeFormat)),
	}
	client, err := NewClient(i.HttpClient, i.Logger, units, i.ForecastURL, i.GeocodingURL)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize weather client: %w", err)
	}
	depend.Register[domain.WeatherProvider](client)
	return ctx, nil
}
