// Package paths resolves the XDG directories promptline reads and writes.
//
// Resolution order:
// 1. PROMPTLINE_HOME (portable root) → $PROMPTLINE_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/promptline
// 3. Platform defaults → ~/.config/promptline, ~/.local/state/promptline
package paths

import (
	"os"
	"path/filepath"
)

const (
	appName = "promptline"
	envHome = "PROMPTLINE_HOME"
)

func baseDir(portable, xdgEnv string, fallback ...string) string {
	if home := os.Getenv(envHome); home != "" {
		return filepath.Join(home, portable)
	}
	if dir := os.Getenv(xdgEnv); dir != "" {
		return filepath.Join(dir, appName)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(append(append([]string{homeDir}, fallback...), appName)...)
	}
	return ""
}

// ConfigDir returns the directory searched for promptline.{yml,yaml,toml}.
func ConfigDir() string {
	return baseDir("config", "XDG_CONFIG_HOME", ".config")
}

// StateDir returns the directory for the optional log file.
func StateDir() string {
	return baseDir("state", "XDG_STATE_HOME", ".local", "state")
}

// LogFile is where the file sink writes when no path is configured.
func LogFile() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, appName+".log")
}
