package config

import (
	"strings"

	"github.com/grovetools/promptline/errors"
)

// Mode selects which side of the prompt is rendered.
type Mode int

const (
	ModeLeft Mode = iota + 1
	ModeRight
)

func (m Mode) String() string {
	switch m {
	case ModeLeft:
		return "left"
	case ModeRight:
		return "right"
	default:
		return "none"
	}
}

const (
	// PathGlyph is the thin powerline separator that replaces each '/' of the shortened path.
	PathGlyph = "\ue0b1"
	// PathMarker is the full replacement for a directory separator.
	PathMarker = " " + PathGlyph + " "
	// PipeMarker separates the exit codes of a pipeline.
	PipeMarker = " \ue0b3 "

	// NoFailure is the pipe status reported when every command of the last pipeline succeeded.
	NoFailure = "0"
	// NoJobs is the job count reported when no background jobs are running.
	NoJobs = "0"
	// NoExitCode is the exit code of a successful command.
	NoExitCode = "0"
)

// Args holds the raw values collected from the command line before normalization.
type Args struct {
	Left           bool
	Right          bool
	ShortenedPath  string
	LastExitCode   string
	LastPipeStatus string
	JobNum         string
}

// Config is the read-only snapshot a single render works from.
type Config struct {
	ShortenedPath  string
	LastExitCode   string
	LastPipeStatus string
	JobNum         string
	Mode           Mode

	// User is the invoking user and DefaultUser the user whose name is hidden.
	User        string
	DefaultUser string
}

// DefaultArgs holds the values the shell reports when nothing happened: a
// successful last command and no background jobs. They apply only when a flag
// is absent; an explicitly empty value is kept and renders as a failure or job.
func DefaultArgs() Args {
	return Args{
		LastExitCode:   NoExitCode,
		LastPipeStatus: NoFailure,
		JobNum:         NoJobs,
	}
}

// New normalizes args the way the shell integration expects and checks that
// exactly one render mode was requested.
func New(args Args, user, defaultUser string) (*Config, error) {
	var mode Mode
	switch {
	case args.Left && args.Right:
		return nil, errors.New(errors.ErrCodeUsage, "ERROR! incorrect usage: left and right are mutually exclusive")
	case args.Left:
		mode = ModeLeft
	case args.Right:
		mode = ModeRight
	default:
		return nil, errors.MissingMode()
	}

	return &Config{
		ShortenedPath:  NormalizePath(args.ShortenedPath),
		LastExitCode:   args.LastExitCode,
		LastPipeStatus: NormalizePipeStatus(args.LastPipeStatus),
		JobNum:         strings.TrimSpace(args.JobNum),
		Mode:           mode,
		User:           user,
		DefaultUser:    defaultUser,
	}, nil
}

// NormalizePath replaces directory separators with PathMarker. A bare "/" is
// kept as is, and a path anchored at the root keeps its leading slash.
func NormalizePath(raw string) string {
	if raw == "/" {
		return raw
	}
	path := strings.ReplaceAll(raw, "/", PathMarker)
	if strings.HasPrefix(path, PathMarker) {
		path = "/" + path
	}
	return path
}

// NormalizePipeStatus turns every space between exit codes into PipeMarker.
func NormalizePipeStatus(raw string) string {
	return strings.ReplaceAll(raw, " ", PipeMarker)
}
