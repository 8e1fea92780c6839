package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

// Shell names accepted by the shell setting.
const (
	ShellZsh  = "zsh"
	ShellBash = "bash"
	ShellNone = "none"
)

// Settings is the optional user configuration file (promptline.yml or promptline.toml).
type Settings struct {
	// DefaultUser hides the user block when it matches the invoking user.
	// Overrides the DEFAULT_USER environment variable.
	DefaultUser string `yaml:"default_user,omitempty" toml:"default_user,omitempty" json:"default_user,omitempty" jsonschema:"description=User whose name is not shown in the left prompt (overrides $DEFAULT_USER)"`

	// Shell selects how escape sequences are wrapped for the hosting shell.
	Shell string `yaml:"shell,omitempty" toml:"shell,omitempty" json:"shell,omitempty" jsonschema:"enum=zsh,enum=bash,enum=none,description=Escape wrapping convention of the hosting shell"`

	// ColorProfile limits the colors emitted. Hex colors are downsampled to fit.
	ColorProfile string `yaml:"color_profile,omitempty" toml:"color_profile,omitempty" json:"color_profile,omitempty" jsonschema:"enum=ascii,enum=ansi,enum=ansi256,enum=truecolor,description=Color depth used when encoding theme colors"`

	Theme  Theme  `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Block colors"`
	Glyphs Glyphs `yaml:"glyphs,omitempty" toml:"glyphs,omitempty" json:"glyphs,omitempty" jsonschema:"description=Powerline glyphs"`

	// Extensions captures all other top-level keys (e.g. logging).
	Extensions map[string]interface{} `yaml:"-" toml:"-" json:"-" jsonschema:"-"`
}

// Theme holds block colors as termenv color specs: an ANSI index ("0" to "255") or "#rrggbb".
type Theme struct {
	NameFG    string `yaml:"name_fg,omitempty" toml:"name_fg,omitempty" json:"name_fg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	NameBG    string `yaml:"name_bg,omitempty" toml:"name_bg,omitempty" json:"name_bg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	PathFG    string `yaml:"path_fg,omitempty" toml:"path_fg,omitempty" json:"path_fg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	PathBG    string `yaml:"path_bg,omitempty" toml:"path_bg,omitempty" json:"path_bg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	JobsFG    string `yaml:"jobs_fg,omitempty" toml:"jobs_fg,omitempty" json:"jobs_fg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	JobsBG    string `yaml:"jobs_bg,omitempty" toml:"jobs_bg,omitempty" json:"jobs_bg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	RepoFG    string `yaml:"repo_fg,omitempty" toml:"repo_fg,omitempty" json:"repo_fg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	RepoBG    string `yaml:"repo_bg,omitempty" toml:"repo_bg,omitempty" json:"repo_bg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	StatusFG  string `yaml:"status_fg,omitempty" toml:"status_fg,omitempty" json:"status_fg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	FailureFG string `yaml:"failure_fg,omitempty" toml:"failure_fg,omitempty" json:"failure_fg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
	FailureBG string `yaml:"failure_bg,omitempty" toml:"failure_bg,omitempty" json:"failure_bg,omitempty" jsonschema:"pattern=^(#[0-9a-fA-F]{6}|[0-9]+)$"`
}

// Glyphs holds the separators drawn between blocks.
type Glyphs struct {
	Separator      string `yaml:"separator,omitempty" toml:"separator,omitempty" json:"separator,omitempty" jsonschema:"description=Arrow closing a left prompt block"`
	SeparatorRight string `yaml:"separator_right,omitempty" toml:"separator_right,omitempty" json:"separator_right,omitempty" jsonschema:"description=Arrow opening a right prompt block"`
	Branch         string `yaml:"branch,omitempty" toml:"branch,omitempty" json:"branch,omitempty" jsonschema:"description=Symbol shown before the current reference"`
}

// DefaultSettings returns the built-in settings: the classic powerline palette on a 16-color terminal.
func DefaultSettings() *Settings {
	return &Settings{
		Shell:        ShellZsh,
		ColorProfile: "ansi256",
		Theme: Theme{
			NameFG:    "15",
			NameBG:    "6",
			PathFG:    "7",
			PathBG:    "8",
			JobsFG:    "11",
			JobsBG:    "3",
			RepoFG:    "7",
			RepoBG:    "8",
			StatusFG:  "3",
			FailureFG: "7",
			FailureBG: "1",
		},
		Glyphs: Glyphs{
			Separator:      "\ue0b0",
			SeparatorRight: "\ue0b2",
			Branch:         "\ue0a0",
		},
	}
}

// UnmarshalExtension decodes a top-level extension section into target.
// A missing section leaves target untouched.
func (s *Settings) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := s.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
