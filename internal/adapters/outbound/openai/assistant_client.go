// Package openai adapts the OpenAI chat completions API to domain.Assistant.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	oai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AssistantClient implements domain.Assistant on top of the OpenAI SDK.
type AssistantClient struct {
	client oai.Client
}

// NewAssistantClient creates a new AssistantClient. An empty baseURL keeps the SDK default.
// Retries are left to the shared HTTP client.
func NewAssistantClient(httpClient *http.Client, apiKey, baseURL string) AssistantClient {
	opts := []option.RequestOption{
		option.WithHTTPClient(httpClient),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return AssistantClient{client: oai.NewClient(opts...)}
}

// RunTurnSync implements domain.Assistant.
func (a AssistantClient) RunTurnSync(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", req.Model),
		attribute.Int("messages", len(req.Messages)),
		attribute.String("action_choice", string(req.ActionChoice)),
	))
	defer span.End()

	params, err := toChatCompletionParams(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantTurnResponse{}, err
	}

	completion, err := a.client.Chat.Completions.New(spanCtx, params)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantTurnResponse{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	msg := completion.Choices[0].Message
	res := domain.AssistantTurnResponse{
		Content: msg.Content,
		Usage: domain.AssistantUsage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}
	for _, tc := range msg.ToolCalls {
		if tc.Type != "function" {
			continue
		}
		res.ActionCalls = append(res.ActionCalls, domain.AssistantActionCall{
			ID:    tc.ID,
			Name:  tc.Function.Name,
			Input: tc.Function.Arguments,
		})
	}

	span.SetAttributes(
		attribute.Int("action_calls", len(res.ActionCalls)),
		attribute.Int("total_tokens", res.Usage.TotalTokens),
	)
	return res, nil
}

func toChatCompletionParams(req domain.AssistantTurnRequest) (oai.ChatCompletionNewParams, error) {
	params := oai.ChatCompletionNewParams{
		Model:    oai.ChatModel(req.Model),
		Messages: make([]oai.ChatCompletionMessageParamUnion, 0, len(req.Messages)),
	}
	if req.Temperature != nil {
		params.Temperature = oai.Float(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxCompletionTokens = oai.Int(int64(*req.MaxTokens))
	}

	for _, msg := range req.Messages {
		m, err := toMessageParam(msg)
		if err != nil {
			return oai.ChatCompletionNewParams{}, err
		}
		params.Messages = append(params.Messages, m)
	}

	if len(req.AvailableActions) == 0 {
		return params, nil
	}

	for _, action := range req.AvailableActions {
		params.Tools = append(params.Tools, oai.ChatCompletionFunctionTool(oai.FunctionDefinitionParam{
			Name:        action.Name,
			Description: oai.String(action.Description),
			Parameters:  toFunctionParameters(action.Input),
		}))
	}

	choice := req.ActionChoice
	if choice == "" {
		choice = domain.AssistantActionChoice_Auto
	}
	params.ToolChoice = oai.ChatCompletionToolChoiceOptionUnionParam{
		OfAuto: oai.String(string(choice)),
	}
	return params, nil
}

func toMessageParam(msg domain.AssistantMessage) (oai.ChatCompletionMessageParamUnion, error) {
	switch msg.Role {
	case domain.ChatRole_System:
		return oai.SystemMessage(msg.Content), nil
	case domain.ChatRole_User:
		return oai.UserMessage(msg.Content), nil
	case domain.ChatRole_Tool:
		if msg.ActionCallID == nil {
			return oai.ChatCompletionMessageParamUnion{}, errors.New("tool message without action call id")
		}
		return oai.ToolMessage(msg.Content, *msg.ActionCallID), nil
	case domain.ChatRole_Assistant:
		if len(msg.ActionCalls) == 0 {
			return oai.AssistantMessage(msg.Content), nil
		}
		assistant := oai.ChatCompletionAssistantMessageParam{}
		if msg.Content != "" {
			assistant.Content.OfString = oai.String(msg.Content)
		}
		for _, call := range msg.ActionCalls {
			assistant.ToolCalls = append(assistant.ToolCalls, oai.ChatCompletionMessageToolCallUnionParam{
				OfFunction: &oai.ChatCompletionMessageFunctionToolCallParam{
					ID: call.ID,
					Function: oai.ChatCompletionMessageFunctionToolCallFunctionParam{
						Name:      call.Name,
						Arguments: call.Input,
					},
				},
			})
		}
		return oai.ChatCompletionMessageParamUnion{OfAssistant: &assistant}, nil
	}
	return oai.ChatCompletionMessageParamUnion{}, fmt.Errorf("unsupported message role %q", msg.Role)
}

// toFunctionParameters renders the action input as a JSON schema object.
func toFunctionParameters(input domain.AssistantActionInput) oai.FunctionParameters {
	properties := make(map[string]any, len(input.Fields))
	required := []string{}
	for name, field := range input.Fields {
		properties[name] = map[string]any{
			"type":        field.Type,
			"description": field.Description,
		}
		if field.Required {
			required = append(required, name)
		}
	}
	inputType := input.Type
	if inputType == "" {
		inputType = "object"
	}
	return oai.FunctionParameters{
		"type":       inputType,
		"properties": properties,
		"required":   required,
	}
}

// InitAssistantClient is a Symbiont initializer for the OpenAI assistant client.
type InitAssistantClient struct {
	HttpClient *http.Client `resolve:""`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
	BaseURL    string       `config:"LLM_BASE_URL" default:"-"`
}

// Initialize registers the client as the domain.Assistant.
// An API key is required unless a custom base URL points at a keyless endpoint.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey, baseURL := unset(i.APIKey), unset(i.BaseURL)
	if apiKey == "" && baseURL == "" {
		return ctx, domain.NewValidationErr("LLM_API_KEY is required when LLM_BASE_URL is not set")
	}
	depend.Register[domain.Assistant](NewAssistantClient(i.HttpClient, apiKey, baseURL))
	return ctx, nil
}

func unset(v string) string {
	if v == "-" {
		return ""
	}
	return v
}
