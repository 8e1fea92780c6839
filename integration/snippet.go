package integration

import (
	"strings"

	"github.com/grovetools/promptline/config"
	"github.com/grovetools/promptline/errors"
)

const zshSnippet = `# promptline: add 'eval "$(@BIN@ init zsh)"' to ~/.zshrc
zmodload zsh/parameter
_promptline_precmd() {
  local exit_code=$? pipe_status="${pipestatus[*]}"
  local path_arg="${(%):-%~}"
  PROMPT="$(@BIN@ --shell zsh left --last_exit_code "$exit_code" --last_pipe_status "$pipe_status" --shortened_path "$path_arg" --jobnum "${#jobstates}")"
  RPROMPT="$(@BIN@ --shell zsh right --last_exit_code "$exit_code" --last_pipe_status "$pipe_status")"
}
autoload -Uz add-zsh-hook
add-zsh-hook precmd _promptline_precmd
`

const bashSnippet = `# promptline: add 'eval "$(@BIN@ init bash)"' to ~/.bashrc
_promptline_prompt() {
  local pipe_status="${PIPESTATUS[*]}" exit_code=$?
  local path_arg="${PWD/#$HOME/\~}"
  PS1="$(@BIN@ --shell bash left --last_exit_code "$exit_code" --last_pipe_status "$pipe_status" --shortened_path "$path_arg" --jobnum "$(jobs -p | wc -l)")"
}
PROMPT_COMMAND="_promptline_prompt${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
`

// Snippet returns the hook script that wires binary into the given shell.
func Snippet(shell, binary string) (string, error) {
	var tmpl string
	switch shell {
	case config.ShellZsh:
		tmpl = zshSnippet
	case config.ShellBash:
		tmpl = bashSnippet
	default:
		return "", errors.New(errors.ErrCodeUsage, "unsupported shell: "+shell).
			WithDetail("supported", []string{config.ShellZsh, config.ShellBash})
	}
	return strings.ReplaceAll(tmpl, "@BIN@", binary), nil
}
