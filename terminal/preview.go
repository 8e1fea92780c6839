package terminal

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/promptline/prompt"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const fallbackWidth = 80

// Preview renders runs with lipgloss, for showing a prompt outside the shell.
type Preview struct {
	renderer *lipgloss.Renderer
}

// NewPreview creates a preview drawing with renderer's color profile.
func NewPreview(renderer *lipgloss.Renderer) *Preview {
	return &Preview{renderer: renderer}
}

// Render replays the style changes of runs and renders each text with the
// style in effect at that point.
func (p *Preview) Render(runs []prompt.ColorRun) string {
	var (
		b      strings.Builder
		fg, bg prompt.Color
		bold   bool
	)
	for _, run := range runs {
		if run.Reset {
			fg, bg, bold = "", "", false
		}
		if run.Foreground != "" {
			fg = run.Foreground
		}
		if run.Background != "" {
			bg = run.Background
		}
		if run.Bold {
			bold = true
		}
		if run.Text == "" {
			continue
		}

		style := p.renderer.NewStyle().Bold(bold)
		if fg != "" {
			style = style.Foreground(lipgloss.Color(fg))
		}
		if bg != "" {
			style = style.Background(lipgloss.Color(bg))
		}
		b.WriteString(style.Render(run.Text))
	}
	return b.String()
}

// Line places left and right on one line of the given width, right-aligned
// the way a shell draws RPROMPT.
func (p *Preview) Line(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Width returns the column count of f, or 80 when f is not a terminal.
func Width(f *os.File) int {
	if !isatty.IsTerminal(f.Fd()) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
