package prompt

import (
	"github.com/grovetools/promptline/config"
)

// Theme holds the colors and glyphs of every block.
type Theme struct {
	NameFG, NameBG       Color
	PathFG, PathBG       Color
	JobsFG, JobsBG       Color
	RepoFG, RepoBG       Color
	StatusFG             Color
	FailureFG, FailureBG Color

	Separator      string
	SeparatorRight string
	Branch         string
}

// ThemeFromSettings builds a Theme from the settings file values.
func ThemeFromSettings(s *config.Settings) Theme {
	return Theme{
		NameFG:         Color(s.Theme.NameFG),
		NameBG:         Color(s.Theme.NameBG),
		PathFG:         Color(s.Theme.PathFG),
		PathBG:         Color(s.Theme.PathBG),
		JobsFG:         Color(s.Theme.JobsFG),
		JobsBG:         Color(s.Theme.JobsBG),
		RepoFG:         Color(s.Theme.RepoFG),
		RepoBG:         Color(s.Theme.RepoBG),
		StatusFG:       Color(s.Theme.StatusFG),
		FailureFG:      Color(s.Theme.FailureFG),
		FailureBG:      Color(s.Theme.FailureBG),
		Separator:      s.Glyphs.Separator,
		SeparatorRight: s.Glyphs.SeparatorRight,
		Branch:         s.Glyphs.Branch,
	}
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return ThemeFromSettings(config.DefaultSettings())
}
