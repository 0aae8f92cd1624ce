package cli

import (
	"errors"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
)

// Mode selects what the shell does when it runs.
type Mode int

const (
	Mode_Interactive Mode = iota
	Mode_History
	Mode_Clear
	Mode_Ask
	Mode_Graph
)

// Command is the parsed command line handed to the shell.
type Command struct {
	Mode      Mode
	SessionID string
	Prompt    string
}

// CommandLine is the kong grammar of the weatherbot binary.
type CommandLine struct {
	Session string `name:"session" short:"s" default:"default" help:"Session ID for conversation continuity."`
	History bool   `name:"history" xor:"mode" help:"Show conversation history and exit."`
	Clear   bool   `name:"clear" xor:"mode" help:"Clear conversation history and exit."`
	Graph   bool   `name:"graph" xor:"mode" hidden:"" help:"Print the dependency graph in Mermaid syntax and exit."`

	Chat struct{} `cmd:"" default:"1" help:"Start the interactive weather chat (default)."`
	Ask  struct {
		Prompt []string `arg:"" help:"Question to ask."`
	} `cmd:"" help:"Ask a single weather question and exit."`
}

// ParseCommandLine parses the process arguments, without the program name.
func ParseCommandLine(args []string, options ...kong.Option) (Command, error) {
	var cl CommandLine
	parser, err := kong.New(&cl, append([]kong.Option{
		kong.Name("weatherbot"),
		kong.Description("Interactive weather chatbot with conversation memory (starts in chat mode by default)."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, options...)...)
	if err != nil {
		return Command{}, err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return Command{}, err
	}
	return cl.toCommand(kctx.Command())
}

func (cl CommandLine) toCommand(selected string) (Command, error) {
	sessionID := strings.TrimSpace(cl.Session)
	if sessionID == "" {
		sessionID = domain.DefaultSessionID
	}
	cmd := Command{Mode: Mode_Interactive, SessionID: sessionID}

	if strings.HasPrefix(selected, "ask") {
		if cl.History || cl.Clear || cl.Graph {
			return Command{}, errors.New("--history, --clear and --graph cannot be combined with ask")
		}
		cmd.Mode = Mode_Ask
		cmd.Prompt = strings.TrimSpace(strings.Join(cl.Ask.Prompt, " "))
		if cmd.Prompt == "" {
			return Command{}, errors.New("ask requires a prompt")
		}
		return cmd, nil
	}

	switch {
	case cl.History:
		cmd.Mode = Mode_History
	case cl.Clear:
		cmd.Mode = Mode_Clear
	case cl.Graph:
		cmd.Mode = Mode_Graph
	}
	return cmd, nil
}
