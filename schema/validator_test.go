package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "shell": {"type": "string", "enum": ["zsh", "bash", "none"]},
    "theme": {
      "type": "object",
      "properties": {"name_fg": {"type": "string", "pattern": "^[0-9]+$"}},
      "additionalProperties": false
    }
  }
}`

func TestValidator(t *testing.T) {
	v, err := NewValidator([]byte(testSchema))
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(map[string]interface{}{
			"shell": "bash",
			"theme": map[string]interface{}{"name_fg": "6"},
		}))
	})

	t.Run("nested error is reported with its location", func(t *testing.T) {
		err := v.Validate(map[string]interface{}{
			"theme": map[string]interface{}{"name_fg": "cyan"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/theme/name_fg")
	})

	t.Run("every violation is listed in location order", func(t *testing.T) {
		err := v.Validate(map[string]interface{}{
			"shell": "fish",
			"theme": map[string]interface{}{"name_fg": "cyan", "extra": "1"},
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.GreaterOrEqual(t, len(validationErr.Violations), 3)
		assert.Equal(t, "/shell", validationErr.Violations[0].Location)
		for _, violation := range validationErr.Violations[1:] {
			assert.True(t, strings.HasPrefix(violation.Location, "/theme"), violation.String())
		}
	})

	t.Run("typed values are normalized", func(t *testing.T) {
		assert.NoError(t, v.Validate(map[string]interface{}{"shell": "zsh", "count": int64(3)}))
	})
}

func TestNewValidatorRejectsBadSchema(t *testing.T) {
	_, err := NewValidator([]byte(`{"type": 12}`))
	assert.Error(t, err)
}
