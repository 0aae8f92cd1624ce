package log

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Initialize(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "weatherbot.log")
	init := &InitLogger{Level: "info", File: logFile, Format: "json"}

	_, err := init.Initialize(context.Background())
	require.NoError(t, err)
	defer init.Close()

	stdLogger, err := depend.Resolve[*log.Logger]()
	require.NoError(t, err)

	_, err = depend.Resolve[zerolog.Logger]()
	assert.NoError(t, err)

	stdLogger.Println("InitDB: migrations applied successfully")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "InitDB: migrations applied successfully")
	assert.Contains(t, string(content), `"service":"weatherbot"`)
}

func TestInitLogger_Initialize_InvalidLevel(t *testing.T) {
	init := &InitLogger{Level: "verbose", File: "-"}

	_, err := init.Initialize(context.Background())
	assert.ErrorContains(t, err, `invalid log level "verbose"`)
}

func TestNewLogger(t *testing.T) {
	tests := map[string]struct {
		level      string
		pretty     bool
		logDebug   bool
		wantOutput []string
		wantEmpty  bool
	}{
		"json-info": {
			level:      "info",
			wantOutput: []string{`"level":"info"`, `"city":"Berlin"`, `"message":"geocoding"`},
		},
		"debug-filtered-at-warn": {
			level:     "warn",
			logDebug:  true,
			wantEmpty: true,
		},
		"pretty-console": {
			level:      "debug",
			pretty:     true,
			wantOutput: []string{"INF", "geocoding", "city=Berlin"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger, err := NewLogger(buf, tt.level, tt.pretty)
			require.NoError(t, err)

			if tt.logDebug {
				logger.Debug().Str("city", "Berlin").Msg("geocoding")
			} else {
				logger.Info().Str("city", "Berlin").Msg("geocoding")
			}

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.wantOutput {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
