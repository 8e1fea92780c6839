package integration

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/promptline/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	sectionHeader = "[custom.promptline]"
	formatToken   = "${custom.promptline}"
)

// StarshipConfigPath returns $STARSHIP_CONFIG, or ~/.config/starship.toml.
func StarshipConfigPath() (string, error) {
	if path := os.Getenv("STARSHIP_CONFIG"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "starship.toml"), nil
}

func starshipCommand(binary string) string {
	return fmt.Sprintf("%s --shell none right", binary)
}

func moduleBody(binary string) string {
	return fmt.Sprintf(`%s
description = "Git reference, repository state and pipeline failures"
command = %q
when = true
format = "$output"
`, sectionHeader, starshipCommand(binary))
}

func moduleConfig(binary string) string {
	return fmt.Sprintf("\n# Added by '%s starship install'\n%s", binary, moduleBody(binary))
}

// InstallStarship adds or refreshes the promptline custom module in the
// starship config at path. Progress messages go to out.
func InstallStarship(path, binary string, out io.Writer) error {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.ConfigNotFound(path).WithDetail("hint", "ensure starship is installed and configured")
		}
		return fmt.Errorf("could not read starship config: %w", err)
	}

	content := updateModule(string(contentBytes), binary, out)
	content = addToFormat(content, out)

	// Never write back a file starship could no longer read.
	var parsed map[string]interface{}
	if err := toml.Unmarshal([]byte(content), &parsed); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "updated starship config is not valid TOML").
			WithDetail("path", path)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write updated starship config: %w", err)
	}

	fmt.Fprintf(out, "\nSuccessfully updated %s. Please restart your shell to see the changes.\n", path)
	return nil
}

func updateModule(content, binary string, out io.Writer) string {
	startIdx := strings.Index(content, sectionHeader)
	if startIdx == -1 {
		fmt.Fprintf(out, "✓ Added %s module to starship config.\n", sectionHeader)
		return content + moduleConfig(binary)
	}

	section := content[startIdx:]
	endIdx := len(content)
	if next := strings.Index(section[1:], "\n["); next != -1 {
		endIdx = startIdx + next + 1
	}

	if !strings.Contains(content[startIdx:endIdx], fmt.Sprintf("command = %q", starshipCommand(binary))) {
		fmt.Fprintf(out, "ℹ️  %s already exists with a different command.\n", sectionHeader)
		fmt.Fprintln(out, "   Keeping existing configuration.")
		return content
	}

	fmt.Fprintln(out, "✓ Updated existing promptline starship module configuration.")
	return content[:startIdx] + moduleBody(binary) + content[endIdx:]
}

func addToFormat(content string, out io.Writer) string {
	if strings.Contains(content, formatToken) || strings.Contains(content, "$custom.promptline") {
		fmt.Fprintln(out, "✓ promptline module already in starship format.")
		return content
	}

	// The git modules are where a repository segment is expected.
	for _, target := range []string{"$git_status\\", "$git_branch\\"} {
		if strings.Contains(content, target) {
			fmt.Fprintln(out, "✓ Added promptline module to starship format.")
			return strings.Replace(content, target, target+"\n"+formatToken+"\\", 1)
		}
	}

	fmt.Fprintf(out, "⚠️  Could not automatically add '%s' to your starship format.\n", formatToken)
	fmt.Fprintln(out, "   Please add it manually to the 'format' string.")
	return content
}
