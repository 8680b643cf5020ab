// Package layout reads the installed command layout of a .claude tree.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Layout maps a command directory name to the base names (extension
// stripped) of the entries inside it.
type Layout map[string][]string

// Scan lists the command files under commandsDir, one entry per
// subdirectory plus a "" entry for files sitting directly in the root.
// A missing commandsDir is the normal fresh-project state and yields an
// empty layout. Names within a directory are sorted for deterministic
// pair scanning.
func Scan(commandsDir string) (Layout, error) {
	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", commandsDir, err)
	}

	out := Layout{}
	for _, entry := range entries {
		if !entry.IsDir() {
			out[""] = append(out[""], stripExt(entry.Name()))
			continue
		}

		sub, err := os.ReadDir(filepath.Join(commandsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(commandsDir, entry.Name()), err)
		}
		var names []string
		for _, f := range sub {
			if f.IsDir() {
				continue
			}
			names = append(names, stripExt(f.Name()))
		}
		out[entry.Name()] = names
	}

	for dir := range out {
		sort.Strings(out[dir])
	}
	return out, nil
}

// DirNames returns the layout's directory names in sorted order.
func (l Layout) DirNames() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
