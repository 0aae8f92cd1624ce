package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"golang.org/x/term"
)

const historyTimeLayout = "2006-01-02 15:04:05"

// renderer writes shell output. Colors follow the capabilities of out,
// and answers are rendered as markdown only when out is a terminal.
type renderer struct {
	out      io.Writer
	styles   *lipgloss.Renderer
	markdown *glamour.TermRenderer
}

func newRenderer(out io.Writer) renderer {
	r := renderer{out: out, styles: lipgloss.NewRenderer(out)}

	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return r
	}

	width := 80
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		width = w
	}
	stylePath := "light"
	if r.styles.HasDarkBackground() {
		stylePath = "dark"
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithStylePath(stylePath),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		r.markdown = md
	}
	return r
}

func (r renderer) roleStyle(role domain.ChatRole) lipgloss.Style {
	color := "7" // white
	switch role {
	case domain.ChatRole_User:
		color = "2" // green
	case domain.ChatRole_Assistant:
		color = "6" // cyan
	case domain.ChatRole_System:
		color = "3" // yellow
	}
	return r.styles.NewStyle().Foreground(lipgloss.Color(color))
}

func roleIcon(role domain.ChatRole) string {
	switch role {
	case domain.ChatRole_User:
		return "👤"
	case domain.ChatRole_Assistant:
		return "🤖"
	case domain.ChatRole_System:
		return "⚙️"
	}
	return "💬"
}

func (r renderer) newLine() {
	fmt.Fprintln(r.out)
}

func (r renderer) info(format string, args ...any) {
	fmt.Fprintln(r.out, r.styles.NewStyle().Foreground(lipgloss.Color("2")).Render(fmt.Sprintf(format, args...)))
}

func (r renderer) errorLine(err error) {
	fmt.Fprintln(r.out, r.styles.NewStyle().Foreground(lipgloss.Color("1")).Render("Error: "+err.Error()))
}

func (r renderer) prompt(label string) {
	fmt.Fprint(r.out, label)
}

func (r renderer) answer(text string) {
	if r.markdown != nil {
		if rendered, err := r.markdown.Render(text); err == nil {
			fmt.Fprint(r.out, "🤖"+rendered)
			return
		}
	}
	fmt.Fprintln(r.out, "🤖 "+r.roleStyle(domain.ChatRole_Assistant).Render(text))
}

func (r renderer) turn(t domain.ConversationTurn) {
	style := r.roleStyle(t.Role)
	header := fmt.Sprintf("%s %s [%s]:", roleIcon(t.Role), t.Role, t.CreatedAt.Format(historyTimeLayout))
	fmt.Fprintln(r.out, style.Render(header))
	for _, line := range strings.Split(t.Content, "\n") {
		fmt.Fprintln(r.out, style.Render(line))
	}
	r.newLine()
}
