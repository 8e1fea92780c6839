package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/promptline/cli"
	"github.com/grovetools/promptline/config"
	"github.com/grovetools/promptline/errors"
	"github.com/grovetools/promptline/git"
	"github.com/grovetools/promptline/logging"
	"github.com/grovetools/promptline/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const rootLong = `Render a powerline-style shell prompt.

Call "promptline left" from PROMPT and "promptline right" from RPROMPT,
passing the shell state as flags:

  --last_exit_code    exit code of the last command
  --last_pipe_status  space separated exit codes of the last pipeline
  --shortened_path    working directory, already shortened by the shell
  --jobnum            number of background jobs`

// App carries the process environment the commands read. Tests replace the
// fields to run commands without touching the real environment.
type App struct {
	// Inspector is created on first use when nil.
	Inspector git.StateInspector
	Getwd     func() (string, error)
	Getenv    func(string) string
}

// NewApp returns an App bound to the current process.
func NewApp() *App {
	return &App{
		Getwd:  os.Getwd,
		Getenv: os.Getenv,
	}
}

// NewRootCmd builds the promptline command tree.
func (a *App) NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand("promptline", "Render a powerline-style shell prompt")
	root.Long = rootLong
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.Args = cobra.NoArgs
	root.SetFlagErrorFunc(cli.FlagError)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return errors.MissingMode()
	}

	root.PersistentFlags().Bool("version", false, "Print the version and exit")
	addPromptFlags(root.PersistentFlags())

	root.AddCommand(a.newPromptCmd(config.ModeLeft))
	root.AddCommand(a.newPromptCmd(config.ModeRight))
	root.AddCommand(a.newPreviewCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newStarshipCmd())
	root.AddCommand(newVersionCmd())

	handleVersionFlag(root)
	return root
}

// handleVersionFlag makes --version short-circuit every runnable command, so
// "promptline left --version" prints the version instead of a prompt.
func handleVersionFlag(cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		handleVersionFlag(sub)
	}
	if cmd.RunE == nil {
		return
	}
	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if show, _ := cmd.Flags().GetBool("version"); show {
			return printVersion(cmd.OutOrStdout())
		}
		return run(cmd, args)
	}
}

func printVersion(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Version %s\n", version.GetInfo().Version); err != nil {
		return errors.OutputWrite(err)
	}
	return nil
}

func addPromptFlags(flags *pflag.FlagSet) {
	defaults := config.DefaultArgs()
	flags.String("last_exit_code", defaults.LastExitCode, "Exit code of the last command")
	flags.String("last_pipe_status", defaults.LastPipeStatus, "Space separated exit codes of the last pipeline")
	flags.String("shortened_path", defaults.ShortenedPath, "Working directory as shortened by the shell")
	flags.String("jobnum", defaults.JobNum, "Number of background jobs")
	flags.String("shell", "", "Escape wrapping for this run: zsh, bash or none (overrides the settings file)")
}

func promptArgs(cmd *cobra.Command, mode config.Mode) config.Args {
	shortened, _ := cmd.Flags().GetString("shortened_path")
	exitCode, _ := cmd.Flags().GetString("last_exit_code")
	pipeStatus, _ := cmd.Flags().GetString("last_pipe_status")
	jobs, _ := cmd.Flags().GetString("jobnum")

	return config.Args{
		Left:           mode == config.ModeLeft,
		Right:          mode == config.ModeRight,
		ShortenedPath:  shortened,
		LastExitCode:   exitCode,
		LastPipeStatus: pipeStatus,
		JobNum:         jobs,
	}
}

// loadSettings reads the settings file and configures logging from it. A
// missing or invalid file never blocks the prompt; defaults are used instead.
func (a *App) loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	opts := cli.GetOptions(cmd)
	logger := cli.GetLogger(cmd)

	settings, path, err := config.LoadDefault(opts.ConfigFile, logger.Logger)
	if err != nil {
		logger.WithError(err).WithField("path", path).Warn("Ignoring settings file")
		settings = config.DefaultSettings()
	}

	logCfg, err := logging.ConfigFromSettings(settings)
	if err != nil {
		logger.WithError(err).Warn("Ignoring logging settings")
	}
	if opts.Verbose {
		logCfg.Level = "debug"
		logCfg.Format.StructuredToStderr = "always"
	}
	logging.Setup(logCfg)

	if shell, _ := cmd.Flags().GetString("shell"); shell != "" {
		switch shell {
		case config.ShellZsh, config.ShellBash, config.ShellNone:
			settings.Shell = shell
		default:
			return nil, errors.New(errors.ErrCodeUsage, fmt.Sprintf("Error unsupported shell: %q", shell))
		}
	}

	return settings, nil
}

// defaultUser prefers the settings file over $DEFAULT_USER.
func (a *App) defaultUser(settings *config.Settings) string {
	if settings.DefaultUser != "" {
		return settings.DefaultUser
	}
	return a.Getenv("DEFAULT_USER")
}

func (a *App) inspector() git.StateInspector {
	if a.Inspector == nil {
		a.Inspector = git.NewInspector()
	}
	return a.Inspector
}

// repoStatus inspects the working directory. Without one there is no repository.
func (a *App) repoStatus() *git.RepoStatus {
	cwd, err := a.Getwd()
	if err != nil {
		logging.NewLogger("cli").WithError(err).Debug("Cannot determine working directory")
		return nil
	}
	return a.inspector().Inspect(cwd)
}
