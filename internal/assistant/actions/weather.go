package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/telemetry"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const WeatherActionName = "weather"

type weatherInput struct {
	City string `json:"city" jsonschema:"The city to get weather for"`
}

// weatherPayload is the tool result handed back to the model.
type weatherPayload struct {
	City      string                   `toon:"city"`
	Latitude  float64                  `toon:"latitude"`
	Longitude float64                  `toon:"longitude"`
	Timezone  string                   `toon:"timezone"`
	Elevation float64                  `toon:"elevation"`
	Units     map[string]string        `toon:"units"`
	Current   domain.CurrentConditions `toon:"current"`
}

// WeatherAction is an assistant action that looks up the current weather of a city.
type WeatherAction struct {
	provider domain.WeatherProvider
	input    domain.AssistantActionInput
}

// NewWeatherAction creates a new WeatherAction.
func NewWeatherAction(provider domain.WeatherProvider) (WeatherAction, error) {
	input, err := actionInputFor[weatherInput]()
	if err != nil {
		return WeatherAction{}, err
	}
	return WeatherAction{provider: provider, input: input}, nil
}

// StatusMessage returns a status message about the action execution.
func (a WeatherAction) StatusMessage() string {
	return "🌦️ Checking the weather..."
}

// Definition returns the assistant action definition for WeatherAction.
func (a WeatherAction) Definition() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        WeatherActionName,
		Description: "Get current weather conditions for a city",
		Input:       a.input,
	}
}

// Execute resolves the city and returns its current conditions TOON-encoded.
// An unknown city is reported to the model; a failed forecast request aborts the turn.
func (a WeatherAction) Execute(ctx context.Context, call domain.AssistantActionCall, _ []domain.AssistantMessage) (domain.AssistantMessage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var params weatherInput
	if err := unmarshalActionInput(call.Input, &params); err != nil {
		return newActionError(call, "invalid_arguments", err.Error()), nil
	}
	city := strings.TrimSpace(params.City)
	if city == "" {
		return newActionError(call, "invalid_arguments", "city is required"), nil
	}
	span.SetAttributes(attribute.String("city", city))

	coords, found := a.provider.ResolveCoordinates(spanCtx, city)
	if !found {
		span.AddEvent("city not found", trace.WithAttributes(attribute.String("city", city)))
		return domain.AssistantMessage{
			Role:         domain.ChatRole_Tool,
			ActionCallID: &call.ID,
			Content:      fmt.Sprintf("Could not find coordinates for city: %s", city),
		}, nil
	}

	reading, err := a.provider.CurrentConditions(spanCtx, coords.Latitude, coords.Longitude)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantMessage{}, err
	}

	content, err := toon.MarshalString(weatherPayload{
		City:      city,
		Latitude:  reading.Latitude,
		Longitude: reading.Longitude,
		Timezone:  reading.Timezone,
		Elevation: reading.Elevation,
		Units:     reading.CurrentUnits,
		Current:   reading.Current,
	}, toon.WithLengthMarkers(true))
	if telemetry.RecordErrorAndStatus(span, err) {
		return newActionError(call, "encoding_failed", err.Error()), nil
	}

	return domain.AssistantMessage{
		Role:         domain.ChatRole_Tool,
		ActionCallID: &call.ID,
		Content:      content,
	}, nil
}
