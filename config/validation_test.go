package config

import (
	"testing"

	"github.com/grovetools/promptline/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		field    string
	}{
		{name: "defaults", settings: *DefaultSettings()},
		{name: "hex color", settings: Settings{Theme: Theme{PathBG: "#1e1e2e"}}},
		{name: "index out of range", settings: Settings{Theme: Theme{RepoBG: "256"}}, field: "theme.repo_bg"},
		{name: "escape in glyph", settings: Settings{Glyphs: Glyphs{Branch: "\x1b[31mb"}}, field: "glyphs.branch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))

			var promptErr *errors.PromptError
			require.ErrorAs(t, err, &promptErr)
			assert.Equal(t, tt.field, promptErr.Details["field"])
		})
	}
}

func TestLoadFromBytesRejectsOutOfRangeColor(t *testing.T) {
	_, err := LoadFromBytes([]byte("theme:\n  failure_bg: \"300\"\n"), false)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
}
