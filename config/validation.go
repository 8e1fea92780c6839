package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/grovetools/promptline/errors"
)

// Validate checks what the schema cannot express: color indexes stay within
// the 256-color palette, and glyphs carry no control characters that would
// escape the shell's zero-width wrapping.
func (s *Settings) Validate() error {
	colors := map[string]string{
		"name_fg":    s.Theme.NameFG,
		"name_bg":    s.Theme.NameBG,
		"path_fg":    s.Theme.PathFG,
		"path_bg":    s.Theme.PathBG,
		"jobs_fg":    s.Theme.JobsFG,
		"jobs_bg":    s.Theme.JobsBG,
		"repo_fg":    s.Theme.RepoFG,
		"repo_bg":    s.Theme.RepoBG,
		"status_fg":  s.Theme.StatusFG,
		"failure_fg": s.Theme.FailureFG,
		"failure_bg": s.Theme.FailureBG,
	}
	for field, color := range colors {
		if err := validateColor(color); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("invalid color for theme.%s", field)).
				WithDetail("field", "theme."+field)
		}
	}

	glyphs := map[string]string{
		"separator":       s.Glyphs.Separator,
		"separator_right": s.Glyphs.SeparatorRight,
		"branch":          s.Glyphs.Branch,
	}
	for field, glyph := range glyphs {
		if err := validateGlyph(glyph); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("invalid glyph for glyphs.%s", field)).
				WithDetail("field", "glyphs."+field)
		}
	}

	return nil
}

func validateColor(color string) error {
	if color == "" || strings.HasPrefix(color, "#") {
		return nil
	}
	n, err := strconv.Atoi(color)
	if err != nil {
		return fmt.Errorf("%q is neither an ANSI index nor #rrggbb", color)
	}
	if n > 255 {
		return fmt.Errorf("ANSI index %d is out of range 0-255", n)
	}
	return nil
}

func validateGlyph(glyph string) error {
	for _, r := range glyph {
		if unicode.IsControl(r) {
			return fmt.Errorf("control character %U is not allowed", r)
		}
	}
	return nil
}
