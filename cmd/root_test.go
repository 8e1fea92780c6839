package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/promptline/errors"
	"github.com/grovetools/promptline/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInspector struct {
	status *git.RepoStatus
	calls  []string
}

func (f *fakeInspector) Inspect(cwd string) *git.RepoStatus {
	f.calls = append(f.calls, cwd)
	return f.status
}

func newTestApp(t *testing.T, env map[string]string, status *git.RepoStatus) (*App, *fakeInspector) {
	t.Helper()
	t.Setenv("PROMPTLINE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PROMPTLINE_CONFIG", "")
	t.Setenv("PROMPTLINE_LOG_LEVEL", "")

	inspector := &fakeInspector{status: status}
	return &App{
		Inspector: inspector,
		Getwd:     func() (string, error) { return "/work/repo", nil },
		Getenv:    func(key string) string { return env[key] },
	}, inspector
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := app.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLeftDefaultUserAtRoot(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{"USER": "bob", "DEFAULT_USER": "bob"}, nil)

	out, err := execute(t, app, "left", "--shortened_path=/")
	require.NoError(t, err)

	want := "%{\x1b[0m\x1b[100m%}" +
		"%{\x1b[37m%}" +
		"%{\x1b[1m%} / " +
		"%{\x1b[0m%}" +
		"%{\x1b[0m\x1b[90m%}\ue0b0 " +
		"%{\x1b[0m%}"
	assert.Equal(t, want, out)
}

func TestLeftShowsUserAndJobs(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{"USER": "alice", "DEFAULT_USER": "bob"}, nil)

	out, err := execute(t, app, "--jobnum", " 2 ", "left", "--shortened_path", "~/src/app")
	require.NoError(t, err)

	assert.Contains(t, out, "%{\x1b[97m\x1b[46m\x1b[1m%} alice ")
	assert.Contains(t, out, " ~ \ue0b1 src \ue0b1")
	assert.Contains(t, out, "%{\x1b[1m%} app ")
	assert.Contains(t, out, "%{\x1b[93m\x1b[43m\x1b[1m%} 2 ")
	assert.True(t, strings.HasSuffix(out, "%{\x1b[0m%}"))
}

func TestRightWithoutRepoOrFailure(t *testing.T) {
	app, inspector := newTestApp(t, nil, nil)

	out, err := execute(t, app, "right", "--last_pipe_status=0")
	require.NoError(t, err)
	assert.Equal(t, "%{\x1b[0m%}", out)
	assert.Equal(t, []string{"/work/repo"}, inspector.calls)
}

func TestRightPipeFailure(t *testing.T) {
	app, _ := newTestApp(t, nil, nil)

	out, err := execute(t, app, "right", "--last_pipe_status", "0 1")
	require.NoError(t, err)

	want := "%{\x1b[31m%}\ue0b2" +
		"%{\x1b[37m\x1b[41m%} 0 \ue0b3 1 " +
		"%{\x1b[0m%}"
	assert.Equal(t, want, out)
}

func TestExplicitEmptyValuesRenderBlocks(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{"USER": "alice"}, nil)

	for _, arg := range []string{"--jobnum=", "--jobnum= "} {
		out, err := execute(t, app, "left", arg, "--shortened_path=/")
		require.NoError(t, err)
		assert.Contains(t, out, "%{\x1b[93m\x1b[43m\x1b[1m%}  ", arg)
	}

	out, err := execute(t, app, "left", "--shortened_path=/")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[43m")

	out, err = execute(t, app, "right", "--last_pipe_status=")
	require.NoError(t, err)
	want := "%{\x1b[31m%}\ue0b2" +
		"%{\x1b[37m\x1b[41m%}  " +
		"%{\x1b[0m%}"
	assert.Equal(t, want, out)

	out, err = execute(t, app, "right")
	require.NoError(t, err)
	assert.Equal(t, "%{\x1b[0m%}", out)
}

func TestRightRepoState(t *testing.T) {
	app, _ := newTestApp(t, nil, &git.RepoStatus{Reference: "main", State: git.StateMerge})

	out, err := execute(t, app, "right")
	require.NoError(t, err)

	want := "%{\x1b[90m%}\ue0b2" +
		"%{\x1b[37m\x1b[100m%} \ue0a0 main " +
		" " +
		"%{\x1b[33m%}Merge " +
		"%{\x1b[0m%}"
	assert.Equal(t, want, out)
}

func TestSettingsFile(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{"USER": "alice"}, nil)

	path := filepath.Join(t.TempDir(), "promptline.yml")
	require.NoError(t, os.WriteFile(path, []byte("shell: bash\ndefault_user: alice\ncolor_profile: ascii\n"), 0o644))

	out, err := execute(t, app, "left", "--config", path, "--shortened_path=/tmp")
	require.NoError(t, err)
	assert.NotContains(t, out, "alice")
	assert.NotContains(t, out, "%{")
	assert.NotContains(t, out, "\x1b[37m")
	assert.Contains(t, out, "\\[\x1b[0m\\]")
	assert.Contains(t, out, "tmp \\[\x1b[0m\\]\\[\x1b[0m\\]\ue0b0 ")
}

func TestInvalidSettingsFallBackToDefaults(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{"USER": "alice"}, nil)

	path := filepath.Join(t.TempDir(), "promptline.yml")
	require.NoError(t, os.WriteFile(path, []byte("shell: fish\n"), 0o644))

	out, err := execute(t, app, "left", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "%{")
	assert.Contains(t, out, " alice ")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "no mode",
			args:    []string{"--last_exit_code=1"},
			message: "ERROR! incorrect usage: left or right missing",
		},
		{
			name:    "unknown option",
			args:    []string{"left", "--bogus"},
			message: `Error unsupported option: "--bogus"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, nil, nil)

			_, err := execute(t, app, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeUsage))

			var promptErr *errors.PromptError
			require.ErrorAs(t, err, &promptErr)
			assert.Equal(t, tt.message, promptErr.Message)
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	app, _ := newTestApp(t, nil, nil)

	_, err := execute(t, app, "middle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "middle"`)
}

func TestVersionFlag(t *testing.T) {
	tests := [][]string{
		{"--version"},
		{"left", "--version"},
		{"right", "--last_pipe_status=1", "--version"},
		{"--version", "preview"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			app, inspector := newTestApp(t, nil, nil)

			out, err := execute(t, app, args...)
			require.NoError(t, err)
			assert.Equal(t, "Version dev\n", out)
			assert.Empty(t, inspector.calls)
		})
	}
}

func TestPreview(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{"USER": "alice", "HOME": "/work"}, &git.RepoStatus{Reference: "main"})

	t.Setenv("CLICOLOR_FORCE", "0")

	out, err := execute(t, app, "preview", "--width", "40")
	require.NoError(t, err)

	assert.Contains(t, out, " alice \ue0b0 ~ \ue0b1 repo \ue0b0 ")
	assert.Contains(t, out, "\ue0b2 \ue0a0 main  \n")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, os.ErrClosed
}

func TestPreviewWriteFailure(t *testing.T) {
	app, _ := newTestApp(t, map[string]string{"USER": "alice"}, nil)
	t.Setenv("CLICOLOR_FORCE", "0")

	root := app.NewRootCmd()
	root.SetOut(failingWriter{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"preview", "--width", "40"})

	err := root.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeOutputWrite))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestHomeRelative(t *testing.T) {
	assert.Equal(t, "~", homeRelative("/home/me", "/home/me"))
	assert.Equal(t, "~/src", homeRelative("/home/me/src", "/home/me/"))
	assert.Equal(t, "/home/meow", homeRelative("/home/meow", "/home/me"))
	assert.Equal(t, "/etc", homeRelative("/etc", ""))
}

func TestConfigSchemaAndValidate(t *testing.T) {
	app, _ := newTestApp(t, nil, nil)

	out, err := execute(t, app, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"default_user"`)

	path := filepath.Join(t.TempDir(), "promptline.toml")
	require.NoError(t, os.WriteFile(path, []byte("shell = \"none\"\n"), 0o644))

	out, err = execute(t, app, "config", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	require.NoError(t, os.WriteFile(path, []byte("shell = \"fish\"\n"), 0o644))
	_, err = execute(t, app, "config", "validate", path)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
}

func TestConfigShowDefaults(t *testing.T) {
	app, _ := newTestApp(t, nil, nil)

	out, err := execute(t, app, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# Source: built-in defaults")
	assert.Contains(t, out, "shell: zsh")
}

func TestShellFlagOverridesSettings(t *testing.T) {
	app, _ := newTestApp(t, nil, nil)

	out, err := execute(t, app, "--shell", "none", "right")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[0m", out)

	_, err = execute(t, app, "--shell", "fish", "right")
	assert.True(t, errors.Is(err, errors.ErrCodeUsage))
}

func TestInitCommand(t *testing.T) {
	app, _ := newTestApp(t, nil, nil)

	out, err := execute(t, app, "init", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "promptline --shell zsh right")

	_, err = execute(t, app, "init", "tcsh")
	assert.True(t, errors.Is(err, errors.ErrCodeUsage))
}

func TestStarshipInstallCommand(t *testing.T) {
	app, _ := newTestApp(t, nil, nil)

	path := filepath.Join(t.TempDir(), "starship.toml")
	require.NoError(t, os.WriteFile(path, []byte("add_newline = false\n"), 0o644))

	out, err := execute(t, app, "starship", "install", "--starship-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully updated")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `command = "promptline --shell none right"`)
}
