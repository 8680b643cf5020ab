// Package settings merges hierarchical JSON configuration trees without
// discarding user-added keys.
package settings

import (
	"fmt"
	"time"

	"github.com/rgould/covenant/internal/claudedir"
)

// Tree is a JSON-shaped configuration document: string keys mapping to
// scalars, arrays, or nested trees.
type Tree map[string]any

// ShapeError reports a malformed tree where an object was required.
type ShapeError struct {
	Path string // dotted path to the offending value
	Got  any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid config shape at %q: expected object, got %T", e.Path, e.Got)
}

// AsTree asserts that v is a configuration tree. Returns a ShapeError
// naming path when it is not.
func AsTree(v any, path string) (Tree, error) {
	switch t := v.(type) {
	case Tree:
		return t, nil
	case map[string]any:
		return Tree(t), nil
	default:
		return nil, &ShapeError{Path: path, Got: v}
	}
}

// DeepMerge returns a new tree equal to base with overlay's keys applied
// recursively on top. Overlay wins on scalars and arrays; arrays are
// atomic and fully replace the base value, never element-merged. Keys
// present only in base survive unchanged at every depth. Neither input
// is mutated.
func DeepMerge(base, overlay Tree) Tree {
	out := make(Tree, len(base)+len(overlay))
	for k, v := range base {
		out[k] = deepCopy(v)
	}
	for k, v := range overlay {
		if sub, ok := asMap(v); ok {
			baseSub, _ := asMap(out[k])
			out[k] = DeepMerge(baseSub, sub)
			continue
		}
		out[k] = deepCopy(v)
	}
	return out
}

// asMap unwraps a nested tree. Arrays and nil are not trees.
func asMap(v any) (Tree, bool) {
	switch t := v.(type) {
	case Tree:
		return t, true
	case map[string]any:
		return Tree(t), true
	default:
		return nil, false
	}
}

// deepCopy guards against downstream aliasing of merged output into the
// caller's inputs.
func deepCopy(v any) any {
	switch t := v.(type) {
	case Tree:
		return copyTree(t)
	case map[string]any:
		return copyTree(Tree(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return v
	}
}

func copyTree(t Tree) Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = deepCopy(v)
	}
	return out
}

// MergeOptions controls MergeInstallation behavior.
type MergeOptions struct {
	// Force refreshes the marker timestamps even when already installed
	Force bool
}

// MergeInstallation layers the installer defaults and then the per-plugin
// defaults onto an existing settings tree. Plugin trees land under the
// "plugins" key, accreting with whatever the user already has there.
// The caller persists the result; no I/O happens here.
func MergeInstallation(existing, defaults Tree, plugins map[string]Tree, opts MergeOptions) Tree {
	merged := DeepMerge(existing, defaults)

	if len(plugins) > 0 {
		overlay := make(Tree, len(plugins))
		for name, tree := range plugins {
			overlay[name] = tree
		}
		current, _ := asMap(merged[claudedir.PluginsKey])
		merged[claudedir.PluginsKey] = DeepMerge(current, overlay)
	}

	if opts.Force {
		now := time.Now().UTC().Format(time.RFC3339)
		marker, _ := asMap(merged[claudedir.MarkerKey])
		marker = DeepMerge(marker, Tree{
			"installedAt": now,
			"updatedAt":   now,
		})
		merged[claudedir.MarkerKey] = marker
	}

	return merged
}

// StripKey returns a shallow copy of tree with key removed. Used on
// uninstall to drop the ownership marker while leaving every other user
// setting in place. The input is not mutated.
func StripKey(tree Tree, key string) Tree {
	out := make(Tree, len(tree))
	for k, v := range tree {
		if k == key {
			continue
		}
		out[k] = v
	}
	return out
}
