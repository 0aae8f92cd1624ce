// Package assistant holds the actions the language model may invoke during a turn.
package assistant

import (
	"context"
	"fmt"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/assistant/actions"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

const defaultStatusMessage = "⏳ Processing request..."

// ActionRegistry resolves assistant actions by name.
type ActionRegistry struct {
	actions map[string]domain.AssistantAction
}

// NewActionRegistry creates an assistant action registry.
func NewActionRegistry(actions ...domain.AssistantAction) ActionRegistry {
	actionMap := make(map[string]domain.AssistantAction, len(actions))
	for _, action := range actions {
		actionMap[action.Definition().Name] = action
	}
	return ActionRegistry{actions: actionMap}
}

// Execute invokes the action named by the call. An unknown action is reported
// back to the model as a tool result instead of failing the turn.
func (r ActionRegistry) Execute(ctx context.Context, call domain.AssistantActionCall, history []domain.AssistantMessage) (domain.AssistantMessage, error) {
	action, exists := r.actions[call.Name]
	if !exists {
		return domain.AssistantMessage{
			Role:         domain.ChatRole_Tool,
			ActionCallID: &call.ID,
			Content:      fmt.Sprintf(`{"error":"unknown_action","details":"Action '%s' is not registered."}`, call.Name),
		}, nil
	}
	return action.Execute(ctx, call, history)
}

// StatusMessage returns a status message about the action execution.
func (r ActionRegistry) StatusMessage(actionName string) string {
	if action, ok := r.actions[actionName]; ok {
		if msg := action.StatusMessage(); msg != "" {
			return msg
		}
	}
	return defaultStatusMessage
}

// List returns all available assistant action definitions sorted by name.
func (r ActionRegistry) List() []domain.AssistantActionDefinition {
	res := make([]domain.AssistantActionDefinition, 0, len(r.actions))
	for _, action := range r.actions {
		res = append(res, action.Definition())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

// InitAssistantActionRegistry registers the weather action registry.
type InitAssistantActionRegistry struct {
	WeatherProvider domain.WeatherProvider `resolve:""`
}

// Initialize builds the actions and registers the domain.AssistantActionRegistry.
func (i InitAssistantActionRegistry) Initialize(ctx context.Context) (context.Context, error) {
	weather, err := actions.NewWeatherAction(i.WeatherProvider)
	if err != nil {
		return ctx, fmt.Errorf("failed to build weather action: %w", err)
	}
	depend.Register[domain.AssistantActionRegistry](NewActionRegistry(weather))
	return ctx, nil
}
