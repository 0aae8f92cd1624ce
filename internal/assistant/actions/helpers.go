package actions

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/google/jsonschema-go/jsonschema"
)

// unmarshalActionInput unmarshals the action input from a JSON string into
// the target struct, ensuring that only a single JSON object is present and that there are no unknown fields.
func unmarshalActionInput(arguments string, target any) error {
	decoder := json.NewDecoder(strings.NewReader(arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	// Reject trailing JSON values after the first object.
	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("action arguments must contain a single JSON object")
}

// newActionError builds a tool message reporting a recoverable failure to the model.
func newActionError(call domain.AssistantActionCall, code, details string) domain.AssistantMessage {
	payload, _ := json.Marshal(map[string]string{
		"error":   code,
		"details": details,
	})
	return domain.AssistantMessage{
		Role:         domain.ChatRole_Tool,
		ActionCallID: &call.ID,
		Content:      string(payload),
	}
}

// actionInputFor derives the action input description from the JSON schema of T.
// Field descriptions come from the `jsonschema` struct tags.
func actionInputFor[T any]() (domain.AssistantActionInput, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return domain.AssistantActionInput{}, fmt.Errorf("failed to infer input schema: %w", err)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	input := domain.AssistantActionInput{
		Type:   schema.Type,
		Fields: make(map[string]domain.AssistantActionField, len(schema.Properties)),
	}
	for name, prop := range schema.Properties {
		input.Fields[name] = domain.AssistantActionField{
			Type:        prop.Type,
			Description: prop.Description,
			Required:    required[name],
		}
	}
	return input, nil
}
