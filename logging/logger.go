package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/grovetools/promptline/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const (
	envLogLevel  = "PROMPTLINE_LOG_LEVEL"
	envLogCaller = "PROMPTLINE_LOG_CALLER"
	defaultLevel = "warn"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
	current   Config
	stderr    io.Writer = os.Stderr

	// logFile is the file sink shared by every component logger.
	logFile *os.File
)

// Setup replaces the logging configuration. Loggers created before the call
// are dropped from the cache so the next NewLogger picks up the change, and
// the file sink they shared is closed.
func Setup(cfg Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	closeLogFile()
	current = cfg
	loggers = make(map[string]*logrus.Entry)
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := newLogger(current)
	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

func newLogger(logCfg Config) *logrus.Logger {
	logger := logrus.New()

	// Configure Level
	levelStr := defaultLevel
	if os.Getenv(envLogLevel) != "" {
		levelStr = os.Getenv(envLogLevel)
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	if os.Getenv(envLogCaller) == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	var text *TextFormatter
	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		text = &TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}}
	default:
		text = &TextFormatter{Config: logCfg.Format}
	}
	if text != nil {
		logger.SetFormatter(text)
	}

	var writers []io.Writer

	// The prompt is redrawn in every directory, so the file sink is opt-in.
	if logCfg.File.Enabled {
		logFilePath := paths.LogFile()
		if logCfg.File.Path != "" {
			logFilePath = expandPath(logCfg.File.Path)
		}
		if file := openLogFile(logFilePath); file != nil {
			writers = append(writers, file)
		}
	}

	if shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel()) {
		writers = append(writers, stderr)
		// Escape codes must never reach the log file.
		if text != nil && len(writers) == 1 && stderr == os.Stderr {
			text.Color = isatty.IsTerminal(os.Stderr.Fd())
		}
	}

	switch len(writers) {
	case 0:
		// Nothing may leak into the rendered prompt line.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger
}

// openLogFile returns the shared handle for path, opening it on first use.
// A different path replaces the previous handle. It returns nil when the file
// cannot be opened.
func openLogFile(path string) *os.File {
	if logFile != nil && logFile.Name() == path {
		return logFile
	}
	closeLogFile()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	logFile = file
	return logFile
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// shouldLogToStderr applies the structured_to_stderr mode. In "auto" mode logs
// reach stderr only when debugging or when stderr is not an interactive terminal.
func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		isDebug := level >= logrus.DebugLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		return isDebug || !isInteractive
	}
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
