package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolCallCompletion = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1769256000,
	"model": "gpt-4o-mini",
	"choices": [{
		"index": 0,
		"finish_reason": "tool_calls",
		"message": {
			"role": "assistant",
			"content": null,
			"tool_calls": [{
				"id": "call_1",
				"type": "function",
				"function": {"name": "weather", "arguments": "{\"city\":\"Berlin\"}"}
			}]
		}
	}],
	"usage": {"prompt_tokens": 120, "completion_tokens": 15, "total_tokens": 135}
}`

const textCompletion = `{
	"id": "chatcmpl-2",
	"object": "chat.completion",
	"created": 1769256001,
	"model": "gpt-4o-mini",
	"choices": [{
		"index": 0,
		"finish_reason": "stop",
		"message": {"role": "assistant", "content": "It is 3.4°C and overcast in Berlin."}
	}],
	"usage": {"prompt_tokens": 200, "completion_tokens": 20, "total_tokens": 220}
}`

func weatherAction() domain.AssistantActionDefinition {
	return domain.AssistantActionDefinition{
		Name:        "weather",
		Description: "Get current weather conditions for a city",
		Input: domain.AssistantActionInput{
			Type: "object",
			Fields: map[string]domain.AssistantActionField{
				"city": {Type: "string", Description: "The city to get the weather for", Required: true},
			},
		},
	}
}

func TestAssistantClient_RunTurnSync(t *testing.T) {
	callID := "call_1"

	tests := map[string]struct {
		req          domain.AssistantTurnRequest
		status       int
		response     string
		wantResponse domain.AssistantTurnResponse
		wantErr      bool
		validateBody func(t *testing.T, body map[string]any)
	}{
		"tool-call-requested": {
			req: domain.AssistantTurnRequest{
				Model: "gpt-4o-mini",
				Messages: []domain.AssistantMessage{
					{Role: domain.ChatRole_System, Content: "You are a weather assistant."},
					{Role: domain.ChatRole_User, Content: "What's the weather in Berlin?"},
				},
				AvailableActions: []domain.AssistantActionDefinition{weatherAction()},
				ActionChoice:     domain.AssistantActionChoice_Auto,
			},
			status:   http.StatusOK,
			response: toolCallCompletion,
			wantResponse: domain.AssistantTurnResponse{
				ActionCalls: []domain.AssistantActionCall{
					{ID: "call_1", Name: "weather", Input: `{"city":"Berlin"}`},
				},
				Usage: domain.AssistantUsage{PromptTokens: 120, CompletionTokens: 15, TotalTokens: 135},
			},
			validateBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "gpt-4o-mini", body["model"])
				assert.Equal(t, "auto", body["tool_choice"])

				tools := body["tools"].([]any)
				require.Len(t, tools, 1)
				fn := tools[0].(map[string]any)["function"].(map[string]any)
				assert.Equal(t, "weather", fn["name"])
				assert.Equal(t, "Get current weather conditions for a city", fn["description"])
				params := fn["parameters"].(map[string]any)
				assert.Equal(t, []any{"city"}, params["required"])

				messages := body["messages"].([]any)
				require.Len(t, messages, 2)
				assert.Equal(t, "system", messages[0].(map[string]any)["role"])
				assert.Equal(t, "user", messages[1].(map[string]any)["role"])
			},
		},
		"final-step-with-tool-results": {
			req: domain.AssistantTurnRequest{
				Model: "gpt-4o-mini",
				Messages: []domain.AssistantMessage{
					{Role: domain.ChatRole_User, Content: "What's the weather in Berlin?"},
					{Role: domain.ChatRole_Assistant, ActionCalls: []domain.AssistantActionCall{{ID: callID, Name: "weather", Input: `{"city":"Berlin"}`}}},
					{Role: domain.ChatRole_Tool, ActionCallID: &callID, Content: "temperature_2m: 3.4"},
				},
				AvailableActions: []domain.AssistantActionDefinition{weatherAction()},
				ActionChoice:     domain.AssistantActionChoice_None,
			},
			status:   http.StatusOK,
			response: textCompletion,
			wantResponse: domain.AssistantTurnResponse{
				Content: "It is 3.4°C and overcast in Berlin.",
				Usage:   domain.AssistantUsage{PromptTokens: 200, CompletionTokens: 20, TotalTokens: 220},
			},
			validateBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "none", body["tool_choice"])

				messages := body["messages"].([]any)
				require.Len(t, messages, 3)

				assistant := messages[1].(map[string]any)
				assert.Equal(t, "assistant", assistant["role"])
				toolCalls := assistant["tool_calls"].([]any)
				require.Len(t, toolCalls, 1)
				assert.Equal(t, "call_1", toolCalls[0].(map[string]any)["id"])

				tool := messages[2].(map[string]any)
				assert.Equal(t, "tool", tool["role"])
				assert.Equal(t, "call_1", tool["tool_call_id"])
			},
		},
		"plain-conversation-without-actions": {
			req: domain.AssistantTurnRequest{
				Model: "gpt-4o-mini",
				Messages: []domain.AssistantMessage{
					{Role: domain.ChatRole_User, Content: "Hi"},
					{Role: domain.ChatRole_Assistant, Content: "Hello! Which city?"},
					{Role: domain.ChatRole_User, Content: "Berlin"},
				},
			},
			status:   http.StatusOK,
			response: textCompletion,
			wantResponse: domain.AssistantTurnResponse{
				Content: "It is 3.4°C and overcast in Berlin.",
				Usage:   domain.AssistantUsage{PromptTokens: 200, CompletionTokens: 20, TotalTokens: 220},
			},
			validateBody: func(t *testing.T, body map[string]any) {
				assert.NotContains(t, body, "tools")
				assert.NotContains(t, body, "tool_choice")
			},
		},
		"api-error": {
			req: domain.AssistantTurnRequest{
				Model:    "gpt-4o-mini",
				Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "Hi"}},
			},
			status:   http.StatusUnauthorized,
			response: `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`,
			wantErr:  true,
		},
		"no-choices": {
			req: domain.AssistantTurnRequest{
				Model:    "gpt-4o-mini",
				Messages: []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "Hi"}},
			},
			status:   http.StatusOK,
			response: `{"id":"chatcmpl-3","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`,
			wantErr:  true,
		},
		"tool-message-without-call-id": {
			req: domain.AssistantTurnRequest{
				Model:    "gpt-4o-mini",
				Messages: []domain.AssistantMessage{{Role: domain.ChatRole_Tool, Content: "orphan"}},
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var (
				called bool
				body   map[string]any
			)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

				raw, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.NoError(t, json.Unmarshal(raw, &body))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := NewAssistantClient(server.Client(), "sk-test", server.URL+"/v1/")
			got, err := client.RunTurnSync(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, called)
			assert.Equal(t, tt.wantResponse, got)
			if tt.validateBody != nil {
				tt.validateBody(t, body)
			}
		})
	}
}

func TestInitAssistantClient_Initialize(t *testing.T) {
	tests := map[string]struct {
		apiKey  string
		baseURL string
		wantErr string
	}{
		"api-key": {
			apiKey:  "sk-test",
			baseURL: "-",
		},
		"keyless-custom-endpoint": {
			apiKey:  "-",
			baseURL: "http://localhost:12434/engines/v1/",
		},
		"missing-configuration": {
			apiKey:  "-",
			baseURL: "-",
			wantErr: "LLM_API_KEY is required when LLM_BASE_URL is not set",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := InitAssistantClient{HttpClient: http.DefaultClient, APIKey: tt.apiKey, BaseURL: tt.baseURL}
			_, err := i.Initialize(context.Background())
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assistant, err := depend.Resolve[domain.Assistant]()
			assert.NoError(t, err)
			assert.NotNil(t, assistant)
		})
	}
}
