// Package command parses and serializes the markdown command files the
// suite installs, using the agent host's frontmatter format.
package command

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Command is one slash-command definition: YAML frontmatter plus a
// markdown body of instructions.
type Command struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	AllowedTools []string `yaml:"allowed-tools,omitempty"`

	// Body is the markdown content below the frontmatter
	Body string `yaml:"-"`
}

// frontmatter controls YAML field ordering on serialization
type frontmatter struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	AllowedTools []string `yaml:"allowed-tools,omitempty"`
}

// Parse reads a command markdown file. Content without a frontmatter
// block parses as a body-only command.
func Parse(content []byte) (*Command, error) {
	cmd := &Command{}
	body, err := parseFrontmatter(content, cmd)
	if err != nil {
		return nil, err
	}
	cmd.Body = body
	return cmd, nil
}

// Serialize renders the command back to markdown with frontmatter.
func (c *Command) Serialize() ([]byte, error) {
	fm := &frontmatter{
		Name:         c.Name,
		Description:  c.Description,
		AllowedTools: c.AllowedTools,
	}

	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize frontmatter: %w", err)
	}

	var result strings.Builder
	result.WriteString("---\n")
	result.Write(yamlBytes)
	result.WriteString("---\n")
	if c.Body != "" {
		result.WriteString("\n")
		result.WriteString(c.Body)
	}

	return []byte(result.String()), nil
}

// parseFrontmatter extracts YAML frontmatter into target and returns the
// body. Content without a leading delimiter is all body.
func parseFrontmatter(content []byte, target *Command) (string, error) {
	text := string(content)

	if !strings.HasPrefix(text, "---") {
		return text, nil
	}

	rest := strings.TrimPrefix(text[3:], "\n")

	idx := strings.Index(rest, "\n---")
	if idx == -1 {
		return text, nil
	}

	yamlContent := rest[:idx]

	// Past the closing delimiter: its own trailing newline, then the
	// blank separator line Serialize emits before the body.
	body := strings.TrimPrefix(rest[idx+4:], "\n")
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(yamlContent), target); err != nil {
		return "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return body, nil
}
