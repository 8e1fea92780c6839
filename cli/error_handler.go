package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grovetools/promptline/errors"
	"github.com/spf13/cobra"
)

// ErrorHandler reports command errors and picks the process exit code
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints err and returns the exit code. Usage errors, including the
// ones cobra raises for unknown commands, are followed by the usage text.
func (h *ErrorHandler) Handle(cmd *cobra.Command, err error) int {
	if err == nil {
		return 0
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeUsage, "":
		fmt.Fprintln(h.Out, message(err))
		fmt.Fprint(h.Out, cmd.UsageString())
		return 1

	case errors.ErrCodeConfigNotFound, errors.ErrCodeConfigInvalid:
		fmt.Fprintf(h.Out, "❌ %s\n", message(err))
		if h.Verbose {
			if promptErr, ok := errors.As(err); ok {
				fmt.Fprintf(h.Out, "\nError details:\n%s\n", promptErr.ToJSON())
			}
		}
		return 1

	default:
		fmt.Fprintf(h.Out, "❌ Error: %v\n", err)
		return 1
	}
}

// FlagError converts pflag parse errors into usage errors.
func FlagError(cmd *cobra.Command, err error) error {
	if name, ok := strings.CutPrefix(err.Error(), "unknown flag: "); ok {
		return errors.UnsupportedOption(name)
	}
	return errors.Wrap(err, errors.ErrCodeUsage, err.Error())
}

func message(err error) string {
	if promptErr, ok := errors.As(err); ok {
		return promptErr.Summary()
	}
	return err.Error()
}
