package logging

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/promptline/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	Setup(Config{})

	logger := NewLogger("test-component")
	require.NotNil(t, logger)
	assert.Equal(t, "test-component", logger.Data["component"])

	// Same component returns the cached entry
	assert.Same(t, logger, NewLogger("test-component"))

	// Setup drops the cache
	Setup(Config{Level: "debug"})
	assert.NotSame(t, logger, NewLogger("test-component"))
}

func TestLevelPrecedence(t *testing.T) {
	t.Setenv(envLogLevel, "")
	assert.Equal(t, logrus.WarnLevel, newLogger(Config{}).GetLevel())
	assert.Equal(t, logrus.InfoLevel, newLogger(Config{Level: "info"}).GetLevel())
	assert.Equal(t, logrus.WarnLevel, newLogger(Config{Level: "loud"}).GetLevel())

	t.Setenv(envLogLevel, "error")
	assert.Equal(t, logrus.ErrorLevel, newLogger(Config{Level: "info"}).GetLevel())
}

func TestStderrModes(t *testing.T) {
	var buf bytes.Buffer
	stderr = &buf
	t.Cleanup(func() { stderr = os.Stderr })

	newLogger(Config{Format: FormatConfig{StructuredToStderr: "never"}}).Error("hidden")
	assert.Empty(t, buf.String())

	newLogger(Config{Format: FormatConfig{StructuredToStderr: "always"}}).Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFileSink(t *testing.T) {
	t.Cleanup(func() { Setup(Config{}) })
	path := filepath.Join(t.TempDir(), "logs", "promptline.log")
	logger := newLogger(Config{
		Level:  "info",
		File:   FileSinkConfig{Enabled: true, Path: path},
		Format: FormatConfig{StructuredToStderr: "never"},
	})
	logger.WithField("component", "git").Info("discovered repository")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO]")
	assert.Contains(t, string(data), "discovered repository")
}

func TestFileSinkDefaultPath(t *testing.T) {
	t.Cleanup(func() { Setup(Config{}) })
	home := t.TempDir()
	t.Setenv("PROMPTLINE_HOME", home)

	logger := newLogger(Config{
		Level:  "info",
		File:   FileSinkConfig{Enabled: true},
		Format: FormatConfig{StructuredToStderr: "never"},
	})
	logger.Info("default location")

	data, err := os.ReadFile(filepath.Join(home, "state", "promptline.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "default location")
}

func TestFileSinkSharedAcrossComponents(t *testing.T) {
	t.Cleanup(func() { Setup(Config{}) })
	t.Setenv(envLogLevel, "")
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	Setup(Config{
		Level:  "info",
		File:   FileSinkConfig{Enabled: true, Path: first},
		Format: FormatConfig{StructuredToStderr: "never"},
	})
	gitLog := NewLogger("git")
	renderLog := NewLogger("render")
	assert.Same(t, gitLog.Logger.Out, renderLog.Logger.Out)

	shared := logFile
	require.NotNil(t, shared)
	assert.Equal(t, first, shared.Name())
	gitLog.Info("from git")
	renderLog.Info("from render")

	// Reconfiguring closes the old handle and opens the new path
	Setup(Config{
		Level:  "info",
		File:   FileSinkConfig{Enabled: true, Path: second},
		Format: FormatConfig{StructuredToStderr: "never"},
	})
	_, err := shared.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.Nil(t, logFile)

	NewLogger("git").Info("after setup")
	assert.Equal(t, second, logFile.Name())

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "from git")
	assert.Contains(t, string(data), "from render")
	assert.NotContains(t, string(data), "after setup")

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "after setup")

	Setup(Config{})
	assert.Nil(t, logFile)
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true}})

	logger.WithField("component", "render").WithField("mode", "left").Warn("slow path")

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "[WARN]"), "got: %s", output)
	assert.Contains(t, output, "render")
	assert.Contains(t, output, "slow path mode=left")
	assert.NotContains(t, output, "\x1b[")

	buf.Reset()
	logger.WithField("path", "/tmp/my dir").WithError(fmt.Errorf("not found")).Info("load")
	assert.Contains(t, buf.String(), `error="not found" path="/tmp/my dir"`)
}

func TestConfigFromSettings(t *testing.T) {
	settings, err := config.LoadFromBytes([]byte(`
logging:
  level: debug
  report_caller: true
  format:
    preset: json
`), false)
	require.NoError(t, err)

	cfg, err := ConfigFromSettings(settings)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.ReportCaller)
	assert.Equal(t, "json", cfg.Format.Preset)

	cfg, err = ConfigFromSettings(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Level)
}
