package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/inbound/cli"
	"github.com/cleitonmarx/symbiont/config"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeatherBotApp_Initializers(t *testing.T) {
	app := NewWeatherBotApp(&cli.Shell{})
	require.NotNil(t, app, "NewWeatherBotApp should not return nil")
}

func TestWeatherBotApp_AskMode(t *testing.T) {
	resetGlobalState(t)
	var (
		mu       sync.Mutex
		geocoded []string
	)
	weatherServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/search":
			mu.Lock()
			geocoded = append(geocoded, r.URL.Query().Get("name"))
			mu.Unlock()
			fmt.Fprint(w, `{"results":[{"name":"Berlin","latitude":52.52437,"longitude":13.41053}]}`)
		case "/v1/forecast":
			fmt.Fprint(w, `{"latitude":52.52,"longitude":13.42,"timezone":"GMT","current_units":{"temperature_2m":"°C"},"current":{"temperature_2m":3.4,"weather_code":3}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer weatherServer.Close()

	llmServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &req)

		message := `{"role":"assistant","content":null,"tool_calls":[{"id":"call_1","type":"function","function":{"name":"weather","arguments":"{\"city\":\"Berlin\"}"}}]}`
		if req.Messages[len(req.Messages)-1].Role == "tool" {
			message = `{"role":"assistant","content":"It is 3.4°C and overcast in Berlin."}`
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1769256000,"model":"gpt-4o-mini","choices":[{"index":0,"finish_reason":"stop","message":%s}],"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`, message)
	}))
	defer llmServer.Close()

	out := &syncBuffer{}
	weatherBot := NewWeatherBotApp(
		&cli.Shell{
			Command: cli.Command{Mode: cli.Mode_Ask, SessionID: "default", Prompt: "What's the weather in Berlin?"},
			In:      strings.NewReader(""),
			Out:     out,
		},
		&initEnvVars{
			envVars: map[string]string{
				"DB_DRIVER":                "sqlite",
				"DB_PATH":                  filepath.Join(t.TempDir(), "weatherbot.db"),
				"LOG_FILE":                 "-",
				"LLM_API_KEY":              "sk-test",
				"LLM_BASE_URL":             llmServer.URL + "/v1/",
				"OPEN_METEO_FORECAST_URL":  weatherServer.URL + "/v1/forecast",
				"OPEN_METEO_GEOCODING_URL": weatherServer.URL + "/v1/search",
			},
		},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := weatherBot.RunAsync(cancelCtx)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "It is 3.4°C and overcast in Berlin.")
	}, 30*time.Second, 50*time.Millisecond, "shell output: %s", out)
	assert.Contains(t, out.String(), "🌦️ Checking the weather...")
	mu.Lock()
	assert.Equal(t, []string{"Berlin"}, geocoded)
	mu.Unlock()

	cancel()
	waitForShutdown(t, shutdownCh)
}

func TestWeatherBotApp_HistoryMode(t *testing.T) {
	resetGlobalState(t)

	out := &syncBuffer{}
	weatherBot := NewWeatherBotApp(
		&cli.Shell{
			Command: cli.Command{Mode: cli.Mode_History, SessionID: "default"},
			In:      strings.NewReader(""),
			Out:     out,
		},
		&initEnvVars{
			envVars: map[string]string{
				"DB_DRIVER":   "sqlite",
				"DB_PATH":     filepath.Join(t.TempDir(), "weatherbot.db"),
				"LOG_FILE":    "-",
				"LLM_API_KEY": "sk-test",
			},
		},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := weatherBot.RunAsync(cancelCtx)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "No conversation history found for session: default")
	}, 30*time.Second, 50*time.Millisecond, "shell output: %s", out)

	cancel()
	waitForShutdown(t, shutdownCh)
}

// resetGlobalState clears the dependency container and the config cache after
// the test so the next app run resolves its own dependencies and defaults.
func resetGlobalState(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		depend.ClearContainer()
		config.ResetGlobalProvider()
	})
}

func waitForShutdown(t *testing.T, shutdownCh <-chan error) {
	t.Helper()
	select {
	case <-time.After(30 * time.Second):
		t.Fatalf("timeout waiting for WeatherBot app to shut down")
	case err := <-shutdownCh:
		if err != nil {
			t.Fatalf("WeatherBot app shutdown with error: %v", err)
		}
	}
}

// syncBuffer is a bytes.Buffer safe for the shell goroutine and the test to share.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}
