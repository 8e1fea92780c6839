package cmd

import (
	"fmt"

	"github.com/grovetools/promptline/cli"
	"github.com/grovetools/promptline/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate promptline settings",
		Long: `Inspect and validate promptline settings.

Settings are read from --config, $PROMPTLINE_CONFIG, or
$XDG_CONFIG_HOME/promptline/promptline.{yml,yaml,toml}, in that order.`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings, defaults included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			settings, path, err := config.LoadDefault(opts.ConfigFile, cli.GetLogger(cmd).Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path != "" {
				fmt.Fprintf(out, "# Source: %s\n", path)
			} else {
				fmt.Fprintln(out, "# Source: built-in defaults")
			}

			data, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("failed to marshal settings: %w", err)
			}
			fmt.Fprint(out, string(data))

			if len(settings.Extensions) > 0 {
				data, err := yaml.Marshal(settings.Extensions)
				if err != nil {
					return fmt.Errorf("failed to marshal extensions: %w", err)
				}
				fmt.Fprint(out, string(data))
			}
			return nil
		},
	}
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a settings file against the schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cli.GetOptions(cmd).ConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				found, err := config.FindConfigFile()
				if err != nil {
					return err
				}
				path = found
			}

			if err := config.ValidateFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", path)
			return nil
		},
	}
}
