// Package claudedir centralizes the file names and settings keys that form
// the contract with the agent host reading the target project's .claude
// directory. Centralizing these prevents typos and makes refactoring easier.
package claudedir

import "path/filepath"

const (
	// DirName is the agent configuration directory inside a project
	DirName = ".claude"

	// CommandsDirName is the subdirectory holding command markdown files
	CommandsDirName = "commands"

	// SettingsFile is the shared, checked-in settings document
	SettingsFile = "settings.json"

	// LocalSettingsFile is the personal, gitignored settings document
	LocalSettingsFile = "settings.local.json"
)

// Settings keys read by the agent host. These exact names are load-bearing.
const (
	// MarkerKey is the top-level settings key that records a covenant
	// installation (version, timestamps, installed plugins).
	MarkerKey = "covenant"

	// PluginsKey holds per-plugin configuration subtrees
	PluginsKey = "plugins"

	// MCPServersKey holds MCP server definitions
	MCPServersKey = "mcpServers"
)

// Dirs holds the resolved paths for one target project.
type Dirs struct {
	// Root is the target project directory
	Root string

	// Claude is <root>/.claude
	Claude string

	// Commands is <root>/.claude/commands
	Commands string

	// Settings is <root>/.claude/settings.json
	Settings string

	// LocalSettings is <root>/.claude/settings.local.json
	LocalSettings string
}

// At resolves the standard layout under a target project directory.
// The target is always explicit; nothing here reads the process working
// directory.
func At(target string) Dirs {
	claude := filepath.Join(target, DirName)
	return Dirs{
		Root:          target,
		Claude:        claude,
		Commands:      filepath.Join(claude, CommandsDirName),
		Settings:      filepath.Join(claude, SettingsFile),
		LocalSettings: filepath.Join(claude, LocalSettingsFile),
	}
}
