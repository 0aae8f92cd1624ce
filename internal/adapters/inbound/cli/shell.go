package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectionGraphName is the container name of the Mermaid dependency graph.
const IntrospectionGraphName = "introspection-graph-mermaid"

var exitWords = []string{"quit", "exit", "bye"}

// Shell is the interactive weather chat. It is hosted as a symbiont runnable and
// returns once the selected mode is finished.
type Shell struct {
	Command Command
	In      io.Reader
	Out     io.Writer

	Logger              *log.Logger           `resolve:""`
	AskWeatherUseCase   usecases.AskWeather   `resolve:""`
	ListHistoryUseCase  usecases.ListHistory  `resolve:""`
	ClearHistoryUseCase usecases.ClearHistory `resolve:""`
}

// Run executes the selected mode. Use case failures are reported to the user
// and never end the process with an error.
func (s Shell) Run(ctx context.Context) error {
	ui := newRenderer(s.Out)
	sessionID := s.Command.SessionID

	switch s.Command.Mode {
	case Mode_History:
		s.showHistory(ctx, ui, sessionID)
	case Mode_Clear:
		s.clearHistory(ctx, ui, newLineReader(ctx, s.In), sessionID)
	case Mode_Ask:
		s.sendMessage(ctx, ui, sessionID, s.Command.Prompt)
	case Mode_Graph:
		s.showGraph(ui)
	default:
		s.interactive(ctx, ui, newLineReader(ctx, s.In), sessionID)
	}
	return nil
}

func (s Shell) interactive(ctx context.Context, ui renderer, lines lineReader, sessionID string) {
	s.Logger.Printf("Shell: interactive session %q started", sessionID)

	ui.info("🤖 Weather Chatbot (Session: %s)", sessionID)
	ui.info("Type your weather questions. Type 'quit', 'exit', or 'bye' to end the conversation.")
	ui.info("Type 'history' to see conversation history, 'clear' to clear history.")
	ui.newLine()

	for {
		ui.prompt("You > ")
		line, ok := lines.next(ctx)
		if !ok {
			if ctx.Err() == nil {
				ui.newLine()
				ui.info("Goodbye! 👋")
			}
			return
		}

		prompt := strings.TrimSpace(line)
		if prompt == "" {
			continue
		}

		switch word := strings.ToLower(prompt); {
		case slices.Contains(exitWords, word):
			ui.info("Goodbye! 👋")
			return
		case word == "history":
			s.showHistory(ctx, ui, sessionID)
		case word == "clear":
			s.clearHistory(ctx, ui, lines, sessionID)
		default:
			s.sendMessage(ctx, ui, sessionID, prompt)
			ui.newLine()
		}
	}
}

func (s Shell) sendMessage(ctx context.Context, ui renderer, sessionID, prompt string) {
	ui.info("🤔 Thinking...")
	answer, err := s.AskWeatherUseCase.Execute(ctx, sessionID, prompt,
		usecases.WithActionStatus(func(statusMessage string) {
			ui.info("%s", statusMessage)
		}),
	)
	if err != nil {
		s.Logger.Printf("Shell: failed to answer prompt for session %q: %v", sessionID, err)
		ui.errorLine(err)
		return
	}
	ui.newLine()
	ui.answer(answer)
}

func (s Shell) showHistory(ctx context.Context, ui renderer, sessionID string) {
	turns, err := s.ListHistoryUseCase.Execute(ctx, sessionID)
	if err != nil {
		s.Logger.Printf("Shell: failed to list history for session %q: %v", sessionID, err)
		ui.errorLine(err)
		return
	}
	if len(turns) == 0 {
		ui.info("No conversation history found for session: %s", sessionID)
		return
	}

	ui.info("📜 Conversation History (Session: %s):", sessionID)
	ui.newLine()
	for _, t := range turns {
		ui.turn(t)
	}
}

func (s Shell) clearHistory(ctx context.Context, ui renderer, lines lineReader, sessionID string) {
	ui.prompt(fmt.Sprintf("Are you sure you want to clear conversation history for session '%s'? [y/N] ", sessionID))
	answer, _ := lines.next(ctx)
	if !isYes(answer) {
		ui.info("History clearing cancelled.")
		return
	}

	if err := s.ClearHistoryUseCase.Execute(ctx, sessionID); err != nil {
		s.Logger.Printf("Shell: failed to clear history for session %q: %v", sessionID, err)
		ui.errorLine(err)
		return
	}
	ui.info("🗑️ Conversation history cleared for session: %s", sessionID)
}

func (s Shell) showGraph(ui renderer) {
	graph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	if err != nil {
		ui.errorLine(fmt.Errorf("failed to resolve dependency graph: %w", err))
		return
	}
	fmt.Fprintln(ui.out, graph)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// lineReader delivers input lines until EOF or context cancellation.
type lineReader struct {
	lines <-chan string
}

func newLineReader(ctx context.Context, in io.Reader) lineReader {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case ch <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lineReader{lines: ch}
}

// next returns false on EOF or when ctx is done.
func (r lineReader) next(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-r.lines:
		return line, ok
	}
}
