package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0), RetryMax: 3}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewHttpClient_RetryPolicy(t *testing.T) {
	tests := map[string]struct {
		statuses     []int
		wantStatus   int
		wantErr      string
		wantAttempts int32
	}{
		"success-first-attempt": {
			statuses:     []int{http.StatusOK},
			wantStatus:   http.StatusOK,
			wantAttempts: 1,
		},
		"internal-server-error-not-retried": {
			statuses:     []int{http.StatusInternalServerError, http.StatusOK},
			wantStatus:   http.StatusInternalServerError,
			wantAttempts: 1,
		},
		"service-unavailable-retried": {
			statuses:     []int{http.StatusServiceUnavailable, http.StatusOK},
			wantStatus:   http.StatusOK,
			wantAttempts: 2,
		},
		"last-response-returned-after-retries": {
			statuses:     []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable, http.StatusServiceUnavailable},
			wantStatus:   http.StatusServiceUnavailable,
			wantAttempts: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var attempts atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := attempts.Add(1)
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(tt.statuses[n-1])
			}))
			defer server.Close()

			client := NewHttpClient(log.New(&strings.Builder{}, "", 0), 2)
			resp, err := client.Get(server.URL)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Equal(t, tt.wantAttempts, attempts.Load())
				return
			}
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantAttempts, attempts.Load())
		})
	}
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	alwaysRetry := func(context.Context, *http.Response, error) (bool, error) { return true, nil }
	policy := dontRetry500StatusPolicy(alwaysRetry)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := map[string]struct {
		ctx       context.Context
		resp      *http.Response
		err       error
		wantRetry bool
		wantErr   error
	}{
		"canceled-context": {
			ctx:     canceled,
			resp:    &http.Response{StatusCode: http.StatusBadGateway},
			wantErr: context.Canceled,
		},
		"internal-server-error": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusInternalServerError},
		},
		"transport-error-without-response": {
			ctx:       context.Background(),
			err:       errors.New("connection reset"),
			wantRetry: true,
		},
		"bad-gateway": {
			ctx:       context.Background(),
			resp:      &http.Response{StatusCode: http.StatusBadGateway},
			wantRetry: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retry, err := policy(tt.ctx, tt.resp, tt.err)
			assert.Equal(t, tt.wantRetry, retry)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}
