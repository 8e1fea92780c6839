package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/promptline/config"
	"github.com/grovetools/promptline/errors"
	"github.com/grovetools/promptline/prompt"
	"github.com/grovetools/promptline/terminal"
	"github.com/spf13/cobra"
)

func (a *App) newPreviewCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw both prompts on one line, as the shell would",
		Long: `Draw the left and right prompts side by side using the current settings.

Without --shortened_path the working directory is used, with $HOME shown as ~.
Colors follow the capabilities of the output terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.loadSettings(cmd)
			if err != nil {
				return err
			}
			renderer := prompt.NewRenderer(prompt.ThemeFromSettings(settings))

			leftArgs := promptArgs(cmd, config.ModeLeft)
			if leftArgs.ShortenedPath == "" {
				if cwd, err := a.Getwd(); err == nil {
					leftArgs.ShortenedPath = homeRelative(cwd, a.Getenv("HOME"))
				}
			}
			rightArgs := promptArgs(cmd, config.ModeRight)

			user, defaultUser := a.Getenv("USER"), a.defaultUser(settings)
			leftCfg, err := config.New(leftArgs, user, defaultUser)
			if err != nil {
				return err
			}
			rightCfg, err := config.New(rightArgs, user, defaultUser)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			preview := terminal.NewPreview(lipgloss.NewRenderer(out))
			left := preview.Render(renderer.Render(leftCfg, nil))
			right := preview.Render(renderer.Render(rightCfg, a.repoStatus()))

			if width <= 0 {
				width = terminal.Width(os.Stdout)
			}
			if _, err := fmt.Fprintln(out, preview.Line(left, right, width)); err != nil {
				return errors.OutputWrite(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Line width (defaults to the terminal width)")
	return cmd
}

// homeRelative shows paths under home with a leading ~.
func homeRelative(path, home string) string {
	if home == "" || home == "/" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, strings.TrimSuffix(home, "/")+"/"); ok {
		return "~/" + rest
	}
	return path
}
