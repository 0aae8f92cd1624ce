package usecases

import (
	"context"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"
)

// FallbackAnswer is returned when the model produces no text.
const FallbackAnswer = "Sorry, I could not process your request. Please try again."

//go:embed prompts/weather.yml
var weatherPrompt embed.FS

// promptMessage is one entry of an embedded prompt file.
type promptMessage struct {
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
}

// AskWeatherParams holds the optional settings of one AskWeather call.
type AskWeatherParams struct {
	OnActionStatus func(statusMessage string)
}

// AskWeatherOption defines a functional option for configuring AskWeatherParams.
type AskWeatherOption func(*AskWeatherParams)

// WithActionStatus reports the status message of every action right before it runs.
func WithActionStatus(onStatus func(statusMessage string)) AskWeatherOption {
	return func(params *AskWeatherParams) {
		params.OnActionStatus = onStatus
	}
}

// AskWeather turns one user prompt into one assistant answer for a session.
type AskWeather interface {
	Execute(ctx context.Context, sessionID, prompt string, opts ...AskWeatherOption) (string, error)
}

// AskWeatherImpl implements the AskWeather use case.
type AskWeatherImpl struct {
	repo          domain.TurnRepository
	assistant     domain.Assistant
	actions       domain.AssistantActionRegistry
	model         string
	maxSteps      int
	timeout       time.Duration
	temperature   *float64
	maxTokens     *int
	promptHeaders []domain.AssistantMessage
}

// NewAskWeatherImpl creates a new AskWeatherImpl. temperature and maxTokens are
// optional; nil leaves the provider default in place. It fails when the embedded
// prompt cannot be loaded or a setting is out of range.
func NewAskWeatherImpl(
	repo domain.TurnRepository,
	assistant domain.Assistant,
	actions domain.AssistantActionRegistry,
	model string,
	maxSteps int,
	timeout time.Duration,
	temperature *float64,
	maxTokens *int,
) (AskWeatherImpl, error) {
	if maxSteps < 1 {
		return AskWeatherImpl{}, domain.NewValidationErr(fmt.Sprintf("max steps must be at least 1, got %d", maxSteps))
	}
	if temperature != nil && (*temperature < 0 || *temperature > 2) {
		return AskWeatherImpl{}, domain.NewValidationErr(fmt.Sprintf("temperature must be between 0 and 2, got %g", *temperature))
	}
	if maxTokens != nil && *maxTokens < 1 {
		return AskWeatherImpl{}, domain.NewValidationErr(fmt.Sprintf("max tokens must be at least 1, got %d", *maxTokens))
	}
	headers, err := loadPromptMessages()
	if err != nil {
		return AskWeatherImpl{}, err
	}
	return AskWeatherImpl{
		repo:          repo,
		assistant:     assistant,
		actions:       actions,
		model:         model,
		maxSteps:      maxSteps,
		timeout:       timeout,
		temperature:   temperature,
		maxTokens:     maxTokens,
		promptHeaders: headers,
	}, nil
}

// Execute answers the prompt using the stored conversation of the session.
// The user turn is persisted before the model is called and stays stored if anything fails afterwards.
func (uc AskWeatherImpl) Execute(ctx context.Context, sessionID, prompt string, opts ...AskWeatherOption) (string, error) {
	var params AskWeatherParams
	for _, opt := range opts {
		opt(&params)
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("model", uc.model),
	))
	defer span.End()

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		err := domain.NewValidationErr("prompt cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}
	if strings.TrimSpace(sessionID) == "" {
		err := domain.NewValidationErr("session id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	history, err := uc.repo.ListTurns(spanCtx, sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("failed to load conversation history: %w", err)
	}

	messages := uc.buildMessages(history, prompt)

	if _, err := uc.repo.AppendTurn(spanCtx, sessionID, domain.ChatRole_User, prompt, nil); telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("failed to store user turn: %w", err)
	}

	llmCtx, cancel := context.WithTimeout(spanCtx, uc.timeout)
	defer cancel()

	answer, usage, toolCalls, err := uc.runSteps(llmCtx, messages, params.OnActionStatus)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	if strings.TrimSpace(answer) == "" {
		answer = FallbackAnswer
	}

	metadata := map[string]any{
		"model":             uc.model,
		"prompt_tokens":     usage.PromptTokens,
		"completion_tokens": usage.CompletionTokens,
		"total_tokens":      usage.TotalTokens,
	}
	if len(toolCalls) > 0 {
		metadata["tool_calls"] = toolCalls
	}

	if _, err := uc.repo.AppendTurn(spanCtx, sessionID, domain.ChatRole_Assistant, answer, metadata); telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("failed to store assistant turn: %w", err)
	}

	span.SetAttributes(
		attribute.Int("history_turns", len(history)),
		attribute.Int("tool_calls", len(toolCalls)),
		attribute.Int("total_tokens", usage.TotalTokens),
	)
	return answer, nil
}

// runSteps drives the model for at most maxSteps completions. Every step but the
// last may request actions; the last step must answer in text.
func (uc AskWeatherImpl) runSteps(
	ctx context.Context,
	messages []domain.AssistantMessage,
	onActionStatus func(string),
) (string, domain.AssistantUsage, []map[string]string, error) {
	var (
		usage     domain.AssistantUsage
		toolCalls []map[string]string
	)
	available := uc.actions.List()

	for step := 1; step <= uc.maxSteps; step++ {
		choice := domain.AssistantActionChoice_Auto
		if step == uc.maxSteps {
			choice = domain.AssistantActionChoice_None
		}

		resp, err := uc.assistant.RunTurnSync(ctx, domain.AssistantTurnRequest{
			Model:            uc.model,
			Messages:         messages,
			AvailableActions: available,
			ActionChoice:     choice,
			Temperature:      uc.temperature,
			MaxTokens:        uc.maxTokens,
		})
		if err != nil {
			return "", usage, toolCalls, fmt.Errorf("assistant request failed: %w", err)
		}
		usage = usage.Add(resp.Usage)
		RecordLLMTokensUsed(ctx, uc.model, resp.Usage)

		if len(resp.ActionCalls) == 0 || step == uc.maxSteps {
			return resp.Content, usage, toolCalls, nil
		}

		messages = append(messages, domain.AssistantMessage{
			Role:        domain.ChatRole_Assistant,
			Content:     resp.Content,
			ActionCalls: resp.ActionCalls,
		})
		for _, call := range resp.ActionCalls {
			if onActionStatus != nil {
				onActionStatus(uc.actions.StatusMessage(call.Name))
			}
			result, err := uc.actions.Execute(ctx, call, messages)
			if err != nil {
				return "", usage, toolCalls, fmt.Errorf("%s action failed: %w", call.Name, err)
			}
			messages = append(messages, result)
			toolCalls = append(toolCalls, map[string]string{
				"name":      call.Name,
				"arguments": call.Input,
			})
		}
	}

	return "", usage, toolCalls, nil
}

// buildMessages prepends the system prompt to the stored turns and the new prompt.
func (uc AskWeatherImpl) buildMessages(history []domain.ConversationTurn, prompt string) []domain.AssistantMessage {
	messages := make([]domain.AssistantMessage, 0, len(uc.promptHeaders)+len(history)+1)
	messages = append(messages, uc.promptHeaders...)
	for _, turn := range history {
		if !turn.Role.IsStorable() {
			continue
		}
		messages = append(messages, domain.AssistantMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	return append(messages, domain.AssistantMessage{
		Role:    domain.ChatRole_User,
		Content: prompt,
	})
}

// loadPromptMessages decodes the embedded weather prompt.
func loadPromptMessages() ([]domain.AssistantMessage, error) {
	file, err := weatherPrompt.Open("prompts/weather.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open weather prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	var entries []promptMessage
	if err := yaml.NewDecoder(file).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode weather prompt: %w", err)
	}

	messages := make([]domain.AssistantMessage, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, domain.AssistantMessage{
			Role:    domain.ChatRole(e.Role),
			Content: e.Content,
		})
	}
	return messages, nil
}

// InitAskWeather is the initializer for the AskWeather use case.
// LLM_TEMPERATURE "-" and LLM_MAX_TOKENS 0 keep the provider defaults.
type InitAskWeather struct {
	Repo        domain.TurnRepository          `resolve:""`
	Assistant   domain.Assistant               `resolve:""`
	Actions     domain.AssistantActionRegistry `resolve:""`
	Model       string                         `config:"LLM_MODEL" default:"gpt-4o-mini"`
	MaxSteps    int                            `config:"LLM_MAX_STEPS" default:"2"`
	Timeout     time.Duration                  `config:"LLM_TIMEOUT" default:"60s"`
	Temperature string                         `config:"LLM_TEMPERATURE" default:"-"`
	MaxTokens   int                            `config:"LLM_MAX_TOKENS" default:"0"`
}

// Initialize registers the AskWeather use case in the dependency container.
func (i InitAskWeather) Initialize(ctx context.Context) (context.Context, error) {
	var temperature *float64
	if i.Temperature != "-" {
		value, err := strconv.ParseFloat(strings.TrimSpace(i.Temperature), 64)
		if err != nil {
			return ctx, fmt.Errorf("failed to initialize AskWeather: invalid LLM_TEMPERATURE %q: %w", i.Temperature, err)
		}
		temperature = &value
	}
	var maxTokens *int
	if i.MaxTokens != 0 {
		maxTokens = &i.MaxTokens
	}

	uc, err := NewAskWeatherImpl(i.Repo, i.Assistant, i.Actions, i.Model, i.MaxSteps, i.Timeout, temperature, maxTokens)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize AskWeather: %w", err)
	}
	depend.Register[AskWeather](uc)
	return ctx, nil
}
