package output

import (
	"github.com/charmbracelet/glamour"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// TerminalFormatter renders the Markdown report for an ANSI terminal.
type TerminalFormatter struct {
	// Style is a glamour standard style name; empty selects "dark".
	Style    string
	WordWrap int
}

func (t TerminalFormatter) Name() string { return "terminal" }

func (t TerminalFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(results)
	if err != nil {
		return nil, err
	}
	style := t.Style
	if style == "" {
		style = "dark"
	}
	wrap := t.WordWrap
	if wrap <= 0 {
		wrap = 120
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, err
	}
	out, err := r.RenderBytes(md)
	if err != nil {
		return nil, err
	}
	return out, nil
}
