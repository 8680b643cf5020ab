// Package installer composes conflict detection, plugin installation, and
// settings merging into the install and uninstall workflows.
package installer

import (
	"fmt"
	"os"
	"time"

	"github.com/rgould/covenant/internal/claudedir"
	"github.com/rgould/covenant/internal/conflict"
	"github.com/rgould/covenant/internal/layout"
	"github.com/rgould/covenant/internal/plugin"
	"github.com/rgould/covenant/internal/settings"
)

// Options controls an install run.
type Options struct {
	// Force proceeds past detected conflicts and refreshes the marker
	Force bool

	// Plugins selects a subset by name; empty means the full registry
	Plugins []string

	// Version is recorded in the marker key
	Version string
}

// Result reports what an install run did.
type Result struct {
	Report conflict.Report

	// Aborted is set when conflicts stopped the install before any write
	Aborted bool

	// Written lists the command files installed
	Written []string

	// Plugins lists the plugins installed
	Plugins []string
}

// DefaultSettings is the installer's own settings overlay, applied beneath
// the per-plugin trees. The permissions list is replaced atomically on
// reinstall rather than unioned, so repeated installs stay deterministic.
func DefaultSettings() settings.Tree {
	return settings.Tree{
		"includeCoAuthoredBy": false,
		"permissions": settings.Tree{
			"allow": []any{
				"Bash(git status)",
				"Bash(git diff:*)",
				"Bash(git log:*)",
			},
		},
	}
}

// Install runs conflict checks and, if clear (or forced), writes the
// selected plugins' command files and merges settings. Nothing is written
// before every check and read has succeeded.
func Install(dirs claudedir.Dirs, opts Options) (*Result, error) {
	selected, err := selectPlugins(opts.Plugins)
	if err != nil {
		return nil, err
	}

	shared, _, err := settings.ReadTree(dirs.Settings)
	if err != nil {
		return nil, err
	}
	local, _, err := settings.ReadTree(dirs.LocalSettings)
	if err != nil {
		return nil, err
	}
	installed, err := layout.Scan(dirs.Commands)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Report: conflict.RunAllChecks(installed, shared, local, conflict.Options{Force: opts.Force}),
	}
	if result.Report.HasConflicts && !opts.Force {
		result.Aborted = true
		return result, nil
	}

	if err := os.MkdirAll(dirs.Commands, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dirs.Commands, err)
	}

	pluginTrees := make(map[string]settings.Tree, len(selected))
	for _, p := range selected {
		written, err := p.Install(dirs)
		if err != nil {
			return nil, err
		}
		result.Written = append(result.Written, written...)
		result.Plugins = append(result.Plugins, p.Name)
		pluginTrees[p.Name] = p.Settings
	}

	merged := settings.MergeInstallation(shared, DefaultSettings(), pluginTrees, settings.MergeOptions{Force: opts.Force})
	stampMarker(merged, opts.Version, result.Plugins)

	if err := settings.WriteTree(dirs.Settings, merged); err != nil {
		return nil, err
	}

	return result, nil
}

// Uninstall removes the suite's command directories and strips the
// ownership marker from settings. Everything else the user put in the
// settings file survives.
func Uninstall(dirs claudedir.Dirs) error {
	for _, p := range plugin.Registry() {
		if err := p.Uninstall(dirs); err != nil {
			return err
		}
	}
	// Drop the commands dir if the suite was its only occupant.
	_ = os.Remove(dirs.Commands)

	shared, ok, err := settings.ReadTree(dirs.Settings)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	stripped := settings.StripKey(shared, claudedir.MarkerKey)
	return settings.WriteTree(dirs.Settings, stripped)
}

// PluginStatus is one plugin's install state.
type PluginStatus struct {
	Name        string
	Description string
	Installed   bool
}

// Status reports the marker state and each plugin's presence.
func Status(dirs claudedir.Dirs) (conflict.Installation, []PluginStatus, error) {
	shared, _, err := settings.ReadTree(dirs.Settings)
	if err != nil {
		return conflict.Installation{}, nil, err
	}

	existing := conflict.DetectExistingInstallation(shared)

	var plugins []PluginStatus
	for _, p := range plugin.Registry() {
		plugins = append(plugins, PluginStatus{
			Name:        p.Name,
			Description: p.Description,
			Installed:   p.IsInstalled(dirs),
		})
	}
	return existing, plugins, nil
}

func selectPlugins(names []string) ([]plugin.Plugin, error) {
	if len(names) == 0 {
		return plugin.Registry(), nil
	}
	var selected []plugin.Plugin
	for _, name := range names {
		p, ok := plugin.Find(name)
		if !ok {
			return nil, fmt.Errorf("unknown plugin %q", name)
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// stampMarker records ownership under the marker key. A prior install's
// installedAt is preserved; updatedAt always moves.
func stampMarker(merged settings.Tree, version string, plugins []string) {
	now := time.Now().UTC().Format(time.RFC3339)

	installedAt := now
	if prev, err := settings.AsTree(merged[claudedir.MarkerKey], claudedir.MarkerKey); err == nil {
		if at, ok := prev["installedAt"].(string); ok && at != "" {
			installedAt = at
		}
	}

	names := make([]any, len(plugins))
	for i, name := range plugins {
		names[i] = name
	}

	merged[claudedir.MarkerKey] = settings.Tree{
		"version":     version,
		"installedAt": installedAt,
		"updatedAt":   now,
		"plugins":     names,
	}
}
