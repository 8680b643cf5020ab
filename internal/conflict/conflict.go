// Package conflict detects naming and configuration collisions before an
// install writes anything.
package conflict

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/rgould/covenant/internal/claudedir"
	"github.com/rgould/covenant/internal/layout"
	"github.com/rgould/covenant/internal/settings"
	"github.com/rgould/covenant/internal/similarity"
)

// Kind classifies a detected conflict.
type Kind string

const (
	KindSimilarCommands      Kind = "similar_commands"
	KindPluginOverride       Kind = "plugin_override"
	KindMCPServerOverride    Kind = "mcp_server_override"
	KindDuplicateMCP         Kind = "duplicate_mcp"
	KindExistingInstallation Kind = "existing_installation"
)

// Record is one detected collision. Records are produced once per scan
// and never persisted.
type Record struct {
	Kind    Kind
	Message string

	// Dir names the command directory for similar_commands records
	Dir string

	// Names carries the colliding pair (similar_commands, duplicate_mcp)
	// or the single overlapping key (overrides)
	Names []string
}

// Installation describes a prior install recorded under the marker key.
type Installation struct {
	Installed   bool
	Version     string
	InstalledAt string
}

// Report aggregates all findings of one scan.
type Report struct {
	HasConflicts bool
	Conflicts    []Record
	Existing     Installation
}

// Options controls RunAllChecks.
type Options struct {
	// Force suppresses the existing-installation record
	Force bool
}

// DetectDuplicateCommands scans each command directory independently for
// near-duplicate file names. An empty layout yields no records.
func DetectDuplicateCommands(installed layout.Layout) []Record {
	var records []Record
	for _, dir := range installed.DirNames() {
		for _, pair := range similarity.ScanNames(installed[dir]) {
			records = append(records, Record{
				Kind:    KindSimilarCommands,
				Message: fmt.Sprintf("commands %q and %q in %q look like duplicates", pair.A, pair.B, dir),
				Dir:     dir,
				Names:   []string{pair.A, pair.B},
			})
		}
	}
	return records
}

// DetectSettingsConflicts reports keys defined in both the shared and the
// local settings documents, for the plugins and mcpServers subtrees.
// Absence of either tree, or of either subtree, silently skips that
// check.
func DetectSettingsConflicts(shared, local settings.Tree) []Record {
	if shared == nil || local == nil {
		return nil
	}

	var records []Record
	records = append(records, overlapRecords(shared, local, claudedir.PluginsKey, KindPluginOverride, "plugin")...)
	records = append(records, overlapRecords(shared, local, claudedir.MCPServersKey, KindMCPServerOverride, "MCP server")...)
	return records
}

func overlapRecords(shared, local settings.Tree, key string, kind Kind, label string) []Record {
	sharedSub, ok := subtree(shared, key)
	if !ok {
		return nil
	}
	localSub, ok := subtree(local, key)
	if !ok {
		return nil
	}

	var records []Record
	for _, name := range sortedKeys(sharedSub) {
		if _, ok := localSub[name]; ok {
			records = append(records, Record{
				Kind:    kind,
				Message: fmt.Sprintf("%s %q is defined in both %s and %s", label, name, claudedir.SettingsFile, claudedir.LocalSettingsFile),
				Names:   []string{name},
			})
		}
	}
	return records
}

// DetectMCPDuplicates finds pairs of MCP server entries with identical
// command and args. Identity is structural, element by element.
func DetectMCPDuplicates(shared settings.Tree) []Record {
	servers, ok := subtree(shared, claudedir.MCPServersKey)
	if !ok {
		return nil
	}

	names := sortedKeys(servers)
	var records []Record
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, okA := subtree(servers, names[i])
			b, okB := subtree(servers, names[j])
			if !okA || !okB {
				continue
			}
			if reflect.DeepEqual(a["command"], b["command"]) && reflect.DeepEqual(a["args"], b["args"]) {
				records = append(records, Record{
					Kind:    KindDuplicateMCP,
					Message: fmt.Sprintf("MCP servers %q and %q run the same command", names[i], names[j]),
					Names:   []string{names[i], names[j]},
				})
			}
		}
	}
	return records
}

// DetectExistingInstallation reads the marker key out of the shared
// settings tree.
func DetectExistingInstallation(shared settings.Tree) Installation {
	marker, ok := subtree(shared, claudedir.MarkerKey)
	if !ok {
		return Installation{}
	}

	version := "unknown"
	if v, ok := marker["version"].(string); ok && v != "" {
		version = v
	}
	installedAt, _ := marker["installedAt"].(string)

	return Installation{Installed: true, Version: version, InstalledAt: installedAt}
}

// RunAllChecks runs every check and aggregates the findings. The checks
// read disjoint inputs, so they run concurrently and only join before
// assembling the report. Record order is fixed: command duplicates,
// settings overlaps, MCP duplicates, then — unless force — one
// existing-installation record when a prior install is present.
func RunAllChecks(installed layout.Layout, shared, local settings.Tree, opts Options) Report {
	var (
		commands []Record
		overlaps []Record
		mcpDupes []Record
		existing Installation
		wg       sync.WaitGroup
	)

	wg.Add(4)
	go func() { defer wg.Done(); commands = DetectDuplicateCommands(installed) }()
	go func() { defer wg.Done(); overlaps = DetectSettingsConflicts(shared, local) }()
	go func() { defer wg.Done(); mcpDupes = DetectMCPDuplicates(shared) }()
	go func() { defer wg.Done(); existing = DetectExistingInstallation(shared) }()
	wg.Wait()

	var conflicts []Record
	conflicts = append(conflicts, commands...)
	conflicts = append(conflicts, overlaps...)
	conflicts = append(conflicts, mcpDupes...)

	if existing.Installed && !opts.Force {
		conflicts = append(conflicts, Record{
			Kind:    KindExistingInstallation,
			Message: fmt.Sprintf("covenant %s is already installed (use --force to reinstall)", existing.Version),
			Names:   []string{existing.Version},
		})
	}

	return Report{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
		Existing:     existing,
	}
}

func subtree(tree settings.Tree, key string) (settings.Tree, bool) {
	v, ok := tree[key]
	if !ok {
		return nil, false
	}
	sub, err := settings.AsTree(v, key)
	if err != nil {
		return nil, false
	}
	return sub, true
}

func sortedKeys(tree settings.Tree) []string {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
