package cli

import (
	"github.com/grovetools/promptline/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds common options for promptline commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging to stderr")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a promptline settings file")

	return cmd
}

// GetLogger returns the CLI logger, raised to debug level with --verbose
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	entry := logging.NewLogger("cli")

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}

	return entry
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
	}
}
