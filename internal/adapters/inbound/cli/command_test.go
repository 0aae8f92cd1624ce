package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandLine(t *testing.T) {
	tests := map[string]struct {
		args    []string
		want    Command
		wantErr string
	}{
		"default-interactive": {
			args: []string{},
			want: Command{Mode: Mode_Interactive, SessionID: "default"},
		},
		"interactive-with-session": {
			args: []string{"--session=trip"},
			want: Command{Mode: Mode_Interactive, SessionID: "trip"},
		},
		"history": {
			args: []string{"--history", "-s", "trip"},
			want: Command{Mode: Mode_History, SessionID: "trip"},
		},
		"clear": {
			args: []string{"--clear"},
			want: Command{Mode: Mode_Clear, SessionID: "default"},
		},
		"graph": {
			args: []string{"--graph"},
			want: Command{Mode: Mode_Graph, SessionID: "default"},
		},
		"ask-one-shot": {
			args: []string{"ask", "What's", "the", "weather", "in", "Berlin?", "--session", "berlin"},
			want: Command{Mode: Mode_Ask, SessionID: "berlin", Prompt: "What's the weather in Berlin?"},
		},
		"blank-session-falls-back-to-default": {
			args: []string{"--session", "  "},
			want: Command{Mode: Mode_Interactive, SessionID: "default"},
		},
		"history-and-clear-are-exclusive": {
			args:    []string{"--history", "--clear"},
			wantErr: "can't be used together",
		},
		"ask-cannot-combine-with-history": {
			args:    []string{"ask", "Weather?", "--history"},
			wantErr: "--history, --clear and --graph cannot be combined with ask",
		},
		"ask-blank-prompt": {
			args:    []string{"ask", "  "},
			wantErr: "ask requires a prompt",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCommandLine(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
