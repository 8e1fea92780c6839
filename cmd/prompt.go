package cmd

import (
	"github.com/grovetools/promptline/config"
	"github.com/grovetools/promptline/git"
	"github.com/grovetools/promptline/prompt"
	"github.com/grovetools/promptline/terminal"
	"github.com/spf13/cobra"
)

var promptShort = map[config.Mode]string{
	config.ModeLeft:  "Render the left prompt (user, path, jobs)",
	config.ModeRight: "Render the right prompt (git reference, state, pipe status)",
}

func (a *App) newPromptCmd(mode config.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   mode.String(),
		Short: promptShort[mode],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.loadSettings(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.New(promptArgs(cmd, mode), a.Getenv("USER"), a.defaultUser(settings))
			if err != nil {
				return err
			}

			var repo *git.RepoStatus
			if cfg.Mode == config.ModeRight {
				repo = a.repoStatus()
			}

			runs := prompt.NewRenderer(prompt.ThemeFromSettings(settings)).Render(cfg, repo)

			encoder := terminal.NewEncoder(
				cmd.OutOrStdout(),
				terminal.WrapperFor(settings.Shell),
				terminal.ProfileFor(settings.ColorProfile),
			)
			return encoder.Encode(runs)
		},
	}
}
