package cmd

import (
	"fmt"

	"github.com/grovetools/promptline/config"
	"github.com/grovetools/promptline/integration"
	"github.com/spf13/cobra"
)

const binaryName = "promptline"

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "init <zsh|bash>",
		Short:     "Print the shell hook that draws the prompt",
		Long:      `Print the shell hook that draws the prompt. Evaluate it from your shell rc file, e.g. eval "$(promptline init zsh)".`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{config.ShellZsh, config.ShellBash},
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, err := integration.Snippet(args[0], binaryName)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}
}

func newStarshipCmd() *cobra.Command {
	starshipCmd := &cobra.Command{
		Use:   "starship",
		Short: "Manage Starship prompt integration",
		Long:  `Show the promptline right segment as a custom module of the Starship prompt.`,
	}

	var configPath string
	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install the promptline module to your starship.toml",
		Long: `Appends a custom module to your starship.toml configuration file. It will
also attempt to add the module to your main prompt format next to the git modules.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				var err error
				if path, err = integration.StarshipConfigPath(); err != nil {
					return err
				}
			}
			return integration.InstallStarship(path, binaryName, cmd.OutOrStdout())
		},
	}
	installCmd.Flags().StringVar(&configPath, "starship-config", "", "Path to starship.toml")

	starshipCmd.AddCommand(installCmd)
	return starshipCmd
}
