package domain

import (
	"context"
)

// AssistantUsage contains token usage for one assistant turn.
type AssistantUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates the usage of another completion.
func (u AssistantUsage) Add(other AssistantUsage) AssistantUsage {
	return AssistantUsage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// AssistantActionCall contains one action invocation requested by the assistant.
type AssistantActionCall struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Input string `json:"input"`
}

// AssistantMessage represents a message exchanged during assistant turns.
type AssistantMessage struct {
	Role         ChatRole
	Content      string
	ActionCallID *string
	ActionCalls  []AssistantActionCall
}

// AssistantActionDefinition describes one action that can be used by the assistant.
type AssistantActionDefinition struct {
	Name        string
	Description string
	Input       AssistantActionInput
}

// AssistantActionField represents one action input field.
type AssistantActionField struct {
	Type        string
	Description string
	Required    bool
}

// AssistantActionInput describes the action input shape.
type AssistantActionInput struct {
	Type   string
	Fields map[string]AssistantActionField
}

// AssistantActionChoice controls whether the model may request actions.
type AssistantActionChoice string

const (
	AssistantActionChoice_Auto AssistantActionChoice = "auto"
	AssistantActionChoice_None AssistantActionChoice = "none"
)

// AssistantTurnRequest is the domain request for one assistant completion.
type AssistantTurnRequest struct {
	Model            string
	Messages         []AssistantMessage
	AvailableActions []AssistantActionDefinition
	ActionChoice     AssistantActionChoice
	// Optional generation settings.
	Temperature *float64
	MaxTokens   *int
}

// AssistantTurnResponse contains the assistant reply for one completion.
// ActionCalls is non-empty when the model asks for actions instead of answering.
type AssistantTurnResponse struct {
	Content     string
	ActionCalls []AssistantActionCall
	Usage       AssistantUsage
}

// Assistant defines assistant interaction in domain terms.
type Assistant interface {
	// RunTurnSync executes one completion and returns the model response.
	RunTurnSync(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResponse, error)
}

// AssistantAction represents one executable assistant action.
// Recoverable failures are reported to the model inside the returned message;
// a non-nil error aborts the whole turn.
type AssistantAction interface {
	Definition() AssistantActionDefinition
	StatusMessage() string
	Execute(context.Context, AssistantActionCall, []AssistantMessage) (AssistantMessage, error)
}

// AssistantActionRegistry resolves and executes assistant actions.
type AssistantActionRegistry interface {
	Execute(context.Context, AssistantActionCall, []AssistantMessage) (AssistantMessage, error)
	StatusMessage(actionName string) string
	List() []AssistantActionDefinition
}
