package prompt

import (
	"github.com/grovetools/promptline/config"
	"github.com/grovetools/promptline/git"
)

// Renderer composes the colored blocks of either side of the prompt.
type Renderer struct {
	theme Theme
}

// NewRenderer creates a renderer drawing with theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render returns the runs for cfg.Mode, always terminated by a reset so the
// shell's own prompt characters keep their style. repo is ignored in left mode.
func (r *Renderer) Render(cfg *config.Config, repo *git.RepoStatus) []ColorRun {
	var runs []ColorRun
	switch cfg.Mode {
	case config.ModeLeft:
		runs = r.left(cfg)
	case config.ModeRight:
		runs = r.right(cfg, repo)
	}
	return append(runs, Reset())
}

func (r *Renderer) left(cfg *config.Config) []ColorRun {
	t := r.theme
	var runs []ColorRun

	if cfg.User != cfg.DefaultUser {
		runs = append(runs,
			ColorRun{Foreground: t.NameFG, Background: t.NameBG, Bold: true, Text: " " + cfg.User + " "},
			ColorRun{Reset: true, Foreground: t.NameBG, Background: t.PathBG, Text: t.Separator},
		)
	} else {
		runs = append(runs, ColorRun{Reset: true, Background: t.PathBG})
	}

	head, tail := Shorten(cfg.ShortenedPath)
	if head == "" {
		runs = append(runs,
			ColorRun{Foreground: t.PathFG},
			ColorRun{Bold: true, Text: " " + tail + " "},
		)
	} else {
		runs = append(runs,
			ColorRun{Foreground: t.PathFG, Text: " " + head},
			ColorRun{Bold: true, Text: tail + " "},
		)
	}
	runs = append(runs, Reset())

	// Any value other than the literal "0" means jobs are present.
	if cfg.JobNum != config.NoJobs {
		runs = append(runs,
			ColorRun{Foreground: t.PathBG, Background: t.JobsBG, Text: t.Separator},
			ColorRun{Foreground: t.JobsFG, Background: t.JobsBG, Bold: true, Text: " " + cfg.JobNum + " "},
			ColorRun{Reset: true, Foreground: t.JobsBG, Text: t.Separator + " "},
		)
	} else {
		runs = append(runs, ColorRun{Reset: true, Foreground: t.PathBG, Text: t.Separator + " "})
	}

	return runs
}

func (r *Renderer) right(cfg *config.Config, repo *git.RepoStatus) []ColorRun {
	t := r.theme
	var runs []ColorRun

	if repo != nil {
		runs = append(runs,
			ColorRun{Foreground: t.RepoBG, Text: t.SeparatorRight},
			ColorRun{Foreground: t.RepoFG, Background: t.RepoBG, Text: " " + t.Branch + " " + repo.Reference + " "},
		)
		// Closes the block when no failure block follows.
		if cfg.LastPipeStatus == config.NoFailure {
			runs = append(runs, Text(" "))
		}
		if label := repo.State.Label(); label != "" {
			runs = append(runs, ColorRun{Foreground: t.StatusFG, Text: label})
		}
	}

	if cfg.LastPipeStatus != config.NoFailure {
		runs = append(runs,
			ColorRun{Foreground: t.FailureBG, Text: t.SeparatorRight},
			ColorRun{Foreground: t.FailureFG, Background: t.FailureBG, Text: " " + cfg.LastPipeStatus + " "},
		)
	}

	return runs
}
