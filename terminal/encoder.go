package terminal

import (
	"io"
	"strings"

	"github.com/grovetools/promptline/config"
	"github.com/grovetools/promptline/errors"
	"github.com/grovetools/promptline/prompt"
	"github.com/muesli/termenv"
)

// Wrapper marks escape sequences as zero-width for the hosting shell.
type Wrapper struct {
	Open  string
	Close string
}

var (
	// ZshWrapper is the %{ %} convention of zsh prompt expansion.
	ZshWrapper = Wrapper{Open: "%{", Close: "%}"}
	// BashWrapper is the \[ \] convention of bash PS1.
	BashWrapper = Wrapper{Open: `\[`, Close: `\]`}
	// NoWrapper emits bare escape sequences.
	NoWrapper = Wrapper{}
)

// WrapperFor returns the wrapper for a shell setting. Unknown shells get zsh.
func WrapperFor(shell string) Wrapper {
	switch shell {
	case config.ShellBash:
		return BashWrapper
	case config.ShellNone:
		return NoWrapper
	default:
		return ZshWrapper
	}
}

// ProfileFor maps a color_profile setting to a termenv profile.
func ProfileFor(name string) termenv.Profile {
	switch strings.ToLower(name) {
	case "ascii":
		return termenv.Ascii
	case "ansi":
		return termenv.ANSI
	case "truecolor":
		return termenv.TrueColor
	default:
		return termenv.ANSI256
	}
}

// Encoder turns color runs into escape sequences on a writer.
type Encoder struct {
	w       io.Writer
	wrap    Wrapper
	profile termenv.Profile
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer, wrap Wrapper, profile termenv.Profile) *Encoder {
	return &Encoder{w: w, wrap: wrap, profile: profile}
}

// Encode writes all runs in order with a single write, so a failed write
// leaves nothing half-drawn.
func (e *Encoder) Encode(runs []prompt.ColorRun) error {
	var b strings.Builder
	for _, run := range runs {
		if seq := e.sequence(run); seq != "" {
			b.WriteString(e.wrap.Open)
			b.WriteString(seq)
			b.WriteString(e.wrap.Close)
		}
		b.WriteString(run.Text)
	}

	if _, err := io.WriteString(e.w, b.String()); err != nil {
		return errors.OutputWrite(err)
	}
	return nil
}

func (e *Encoder) sequence(run prompt.ColorRun) string {
	var b strings.Builder
	if run.Reset {
		b.WriteString(sgr(termenv.ResetSeq))
	}
	b.WriteString(e.color(run.Foreground, false))
	b.WriteString(e.color(run.Background, true))
	if run.Bold {
		b.WriteString(sgr(termenv.BoldSeq))
	}
	return b.String()
}

func (e *Encoder) color(c prompt.Color, bg bool) string {
	if c == "" {
		return ""
	}
	col := e.profile.Color(string(c))
	if col == nil {
		return ""
	}
	seq := col.Sequence(bg)
	if seq == "" {
		return ""
	}
	return sgr(seq)
}

func sgr(seq string) string {
	return termenv.CSI + seq + "m"
}
