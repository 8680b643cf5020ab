// Package plugin defines the installable workflow suites. The registry is
// an ordered list of records; adding a plugin means adding an entry and an
// asset directory, nothing else.
package plugin

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rgould/covenant/internal/claudedir"
	"github.com/rgould/covenant/internal/command"
	"github.com/rgould/covenant/internal/settings"
)

//go:embed assets
var assets embed.FS

// File is one command markdown file carried by a plugin.
type File struct {
	// Name is the file name as installed, e.g. "plan.md"
	Name    string
	Content []byte

	// Command is the parsed frontmatter and body
	Command *command.Command
}

// Plugin is one installable suite of workflow commands. Its commands are
// installed under .claude/commands/<Name>/ and its Settings subtree under
// the plugins key of settings.json.
type Plugin struct {
	Name        string
	Description string

	// Settings is the plugin's default configuration subtree
	Settings settings.Tree
}

var registry = []Plugin{
	{
		Name:        "flow",
		Description: "Plan, orchestrate, and review multi-agent work",
		Settings: settings.Tree{
			"enabled":    true,
			"maxWorkers": 4,
		},
	},
	{
		Name:        "compound",
		Description: "Bank lessons from finished work into agent instructions",
		Settings: settings.Tree{
			"enabled":          true,
			"instructionsFile": "CLAUDE.md",
		},
	},
	{
		Name:        "frontend",
		Description: "Design review and polish passes for UI work",
		Settings: settings.Tree{
			"enabled": true,
		},
	},
}

// Registry returns the plugins in install order.
func Registry() []Plugin {
	out := make([]Plugin, len(registry))
	copy(out, registry)
	return out
}

// Find looks up a plugin by name.
func Find(name string) (Plugin, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}

// CommandFiles returns the plugin's embedded command files, parsed and
// validated. A command with malformed frontmatter or no name is a broken
// build of the suite itself and fails the install before anything is
// written.
func (p Plugin) CommandFiles() ([]File, error) {
	dir := filepath.ToSlash(filepath.Join("assets", p.Name))
	entries, err := assets.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("plugin %q has no embedded assets: %w", p.Name, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := fs.ReadFile(assets, dir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded %s: %w", entry.Name(), err)
		}
		cmd, err := command.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("embedded command %s/%s: %w", p.Name, entry.Name(), err)
		}
		if cmd.Name == "" {
			return nil, fmt.Errorf("embedded command %s/%s has no name in its frontmatter", p.Name, entry.Name())
		}
		files = append(files, File{Name: entry.Name(), Content: content, Command: cmd})
	}
	return files, nil
}

// CommandDir returns the directory this plugin's commands install into.
func (p Plugin) CommandDir(dirs claudedir.Dirs) string {
	return filepath.Join(dirs.Commands, p.Name)
}

// Install writes the plugin's command files and returns the written paths.
func (p Plugin) Install(dirs claudedir.Dirs) ([]string, error) {
	files, err := p.CommandFiles()
	if err != nil {
		return nil, err
	}

	target := p.CommandDir(dirs)
	if err := os.MkdirAll(target, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", target, err)
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(target, f.Name)
		if err := os.WriteFile(path, f.Content, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Uninstall removes the plugin's command directory. A directory that is
// already gone is not an error.
func (p Plugin) Uninstall(dirs claudedir.Dirs) error {
	if err := os.RemoveAll(p.CommandDir(dirs)); err != nil {
		return fmt.Errorf("failed to remove %s commands: %w", p.Name, err)
	}
	return nil
}

// IsInstalled reports whether the plugin's command directory exists.
func (p Plugin) IsInstalled(dirs claudedir.Dirs) bool {
	info, err := os.Stat(p.CommandDir(dirs))
	return err == nil && info.IsDir()
}
