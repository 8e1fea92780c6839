package prompt

// Color is a termenv color spec: an ANSI index ("0" to "255") or "#rrggbb".
// The empty Color leaves the current color untouched.
type Color string

// ColorRun is one unit of prompt output: a style change followed by literal text.
// Style changes apply in the order reset, foreground, background, bold and
// persist until the next reset.
type ColorRun struct {
	Foreground Color
	Background Color
	Bold       bool
	Reset      bool
	Text       string
}

// HasStyle reports whether the run changes any style.
func (r ColorRun) HasStyle() bool {
	return r.Reset || r.Bold || r.Foreground != "" || r.Background != ""
}

// Text returns a run that only carries text.
func Text(s string) ColorRun {
	return ColorRun{Text: s}
}

// Reset returns the run that restores the terminal's default style.
func Reset() ColorRun {
	return ColorRun{Reset: true}
}
