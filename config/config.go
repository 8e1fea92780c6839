package config

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/grovetools/promptline/errors"
	"github.com/grovetools/promptline/pkg/paths"
	"github.com/grovetools/promptline/schema"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at a settings file.
const EnvConfigPath = "PROMPTLINE_CONFIG"

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

var configNames = []string{
	"promptline.yml",
	"promptline.yaml",
	"promptline.toml",
}

// Load reads, validates and parses a settings file, layered over DefaultSettings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	settings, err := LoadFromBytes(data, isTOML(path))
	if err != nil {
		if promptErr, ok := errors.As(err); ok {
			return nil, promptErr.WithDetail("path", path)
		}
		return nil, err
	}
	return settings, nil
}

// LoadDefault locates the settings file (see FindConfigFile) and loads it.
// Without a settings file it returns DefaultSettings and an empty path.
func LoadDefault(explicitPath string, logger *logrus.Logger) (*Settings, string, error) {
	path := explicitPath
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debug("No settings file found, using defaults")
			return DefaultSettings(), "", nil
		}
		path = found
	}

	logger.WithField("path", path).Debug("Loading settings")
	settings, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return settings, path, nil
}

// LoadFromBytes parses settings from YAML (or TOML when asTOML is set).
func LoadFromBytes(data []byte, asTOML bool) (*Settings, error) {
	raw, err := parseRaw(data, asTOML)
	if err != nil {
		return nil, err
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if err := validator.Validate(raw); err != nil {
		promptErr := errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
		if validationErr, ok := err.(*schema.ValidationError); ok {
			violations := make([]string, len(validationErr.Violations))
			for i, v := range validationErr.Violations {
				violations[i] = v.String()
			}
			promptErr.WithDetail("violations", violations)
		}
		return nil, promptErr
	}

	var parsed Settings
	var meta mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &parsed,
		TagName:  "yaml",
		Metadata: &meta,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create settings decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode settings")
	}

	// Whatever mapstructure did not consume at the top level is an extension.
	sort.Strings(meta.Unused)
	for _, key := range meta.Unused {
		if strings.Contains(key, ".") {
			continue
		}
		if parsed.Extensions == nil {
			parsed.Extensions = make(map[string]interface{})
		}
		parsed.Extensions[key] = raw[key]
	}

	if err := parsed.Validate(); err != nil {
		return nil, err
	}

	return mergeSettings(DefaultSettings(), &parsed), nil
}

// ValidateFile checks a settings file against the schema without applying it.
func ValidateFile(path string) error {
	_, err := Load(path)
	return err
}

func parseRaw(data []byte, asTOML bool) (map[string]interface{}, error) {
	expanded := []byte(expandEnvVars(string(data)))

	raw := make(map[string]interface{})
	if asTOML {
		if err := toml.Unmarshal(expanded, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(expanded, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}
	return raw, nil
}

// FindConfigFile searches for the settings file with the following precedence:
// 1. $PROMPTLINE_CONFIG
// 2. XDG config directory (~/.config/promptline/promptline.{yml,yaml,toml})
func FindConfigFile() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
		return "", errors.ConfigNotFound(path)
	}

	dir := paths.ConfigDir()
	if dir == "" {
		return "", errors.ConfigNotFound("$XDG_CONFIG_HOME/promptline")
	}
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", errors.ConfigNotFound(dir).WithDetail("searchPath", dir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
