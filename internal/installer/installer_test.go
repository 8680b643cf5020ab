package installer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgould/covenant/internal/claudedir"
	"github.com/rgould/covenant/internal/conflict"
	"github.com/rgould/covenant/internal/settings"
)

func TestInstall_FreshProject(t *testing.T) {
	dirs := claudedir.At(t.TempDir())

	result, err := Install(dirs, Options{Version: "1.0.0"})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if result.Aborted {
		t.Fatalf("Aborted on a fresh project: %v", result.Report.Conflicts)
	}
	if len(result.Written) == 0 {
		t.Fatal("no command files written")
	}

	// Command files exist on disk.
	for _, path := range result.Written {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("written file missing: %v", err)
		}
	}
	if _, err := os.Stat(filepath.Join(dirs.Commands, "flow", "plan.md")); err != nil {
		t.Errorf("flow/plan.md missing: %v", err)
	}

	// Settings carry the marker and plugin trees.
	tree, ok, err := settings.ReadTree(dirs.Settings)
	if err != nil || !ok {
		t.Fatalf("ReadTree() = %v, %v after install", ok, err)
	}
	marker, err := settings.AsTree(tree[claudedir.MarkerKey], claudedir.MarkerKey)
	if err != nil {
		t.Fatalf("marker: %v", err)
	}
	if marker["version"] != "1.0.0" {
		t.Errorf("marker version = %v, want 1.0.0", marker["version"])
	}
	if marker["installedAt"] == "" || marker["installedAt"] == nil {
		t.Error("marker has no installedAt")
	}
	plugins, err := settings.AsTree(tree[claudedir.PluginsKey], claudedir.PluginsKey)
	if err != nil {
		t.Fatalf("plugins: %v", err)
	}
	for _, name := range []string{"flow", "compound", "frontend"} {
		if _, ok := plugins[name]; !ok {
			t.Errorf("plugins missing %q", name)
		}
	}
}

func TestInstall_PreservesUserSettings(t *testing.T) {
	dirs := claudedir.At(t.TempDir())
	if err := os.MkdirAll(dirs.Claude, 0755); err != nil {
		t.Fatal(err)
	}
	existing := settings.Tree{
		"userSetting": "mine",
		"plugins":     settings.Tree{"custom": settings.Tree{"enabled": true}},
	}
	if err := settings.WriteTree(dirs.Settings, existing); err != nil {
		t.Fatal(err)
	}

	result, err := Install(dirs, Options{Version: "1.0.0"})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if result.Aborted {
		t.Fatalf("Aborted: %v", result.Report.Conflicts)
	}

	tree, _, err := settings.ReadTree(dirs.Settings)
	if err != nil {
		t.Fatal(err)
	}
	if tree["userSetting"] != "mine" {
		t.Errorf("userSetting = %v, want mine", tree["userSetting"])
	}
	plugins, _ := settings.AsTree(tree[claudedir.PluginsKey], "plugins")
	if _, ok := plugins["custom"]; !ok {
		t.Error("user plugin entry dropped by install")
	}
}

func TestInstall_AbortsOnExistingInstallation(t *testing.T) {
	dirs := claudedir.At(t.TempDir())

	if _, err := Install(dirs, Options{Version: "1.0.0"}); err != nil {
		t.Fatal(err)
	}

	result, err := Install(dirs, Options{Version: "1.1.0"})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if !result.Aborted {
		t.Fatal("second install did not abort")
	}

	found := false
	for _, r := range result.Report.Conflicts {
		if r.Kind == conflict.KindExistingInstallation {
			found = true
		}
	}
	if !found {
		t.Errorf("no existing_installation record in %v", result.Report.Conflicts)
	}

	// Version stays at the first install's.
	tree, _, _ := settings.ReadTree(dirs.Settings)
	marker, _ := settings.AsTree(tree[claudedir.MarkerKey], "covenant")
	if marker["version"] != "1.0.0" {
		t.Errorf("aborted install changed version to %v", marker["version"])
	}
}

func TestInstall_ForceReinstalls(t *testing.T) {
	dirs := claudedir.At(t.TempDir())

	if _, err := Install(dirs, Options{Version: "1.0.0"}); err != nil {
		t.Fatal(err)
	}

	result, err := Install(dirs, Options{Version: "1.1.0", Force: true})
	if err != nil {
		t.Fatalf("forced Install() error = %v", err)
	}
	if result.Aborted {
		t.Fatal("forced install aborted")
	}

	tree, _, _ := settings.ReadTree(dirs.Settings)
	marker, _ := settings.AsTree(tree[claudedir.MarkerKey], "covenant")
	if marker["version"] != "1.1.0" {
		t.Errorf("version = %v, want 1.1.0", marker["version"])
	}
}

func TestInstall_PluginSelection(t *testing.T) {
	dirs := claudedir.At(t.TempDir())

	result, err := Install(dirs, Options{Version: "1.0.0", Plugins: []string{"flow"}})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if len(result.Plugins) != 1 || result.Plugins[0] != "flow" {
		t.Errorf("Plugins = %v, want [flow]", result.Plugins)
	}
	if _, err := os.Stat(filepath.Join(dirs.Commands, "compound")); !os.IsNotExist(err) {
		t.Error("unselected plugin was installed")
	}
}

func TestInstall_UnknownPlugin(t *testing.T) {
	dirs := claudedir.At(t.TempDir())
	if _, err := Install(dirs, Options{Plugins: []string{"nope"}}); err == nil {
		t.Error("Install() error = nil, want unknown plugin error")
	}
}

func TestUninstall(t *testing.T) {
	dirs := claudedir.At(t.TempDir())
	if _, err := Install(dirs, Options{Version: "1.0.0"}); err != nil {
		t.Fatal(err)
	}

	// Seed a user setting to prove it survives.
	tree, _, _ := settings.ReadTree(dirs.Settings)
	tree["userSetting"] = "mine"
	if err := settings.WriteTree(dirs.Settings, tree); err != nil {
		t.Fatal(err)
	}

	if err := Uninstall(dirs); err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dirs.Commands, "flow")); !os.IsNotExist(err) {
		t.Error("flow commands survived uninstall")
	}

	after, ok, err := settings.ReadTree(dirs.Settings)
	if err != nil || !ok {
		t.Fatalf("settings gone after uninstall: %v %v", ok, err)
	}
	if _, exists := after[claudedir.MarkerKey]; exists {
		t.Error("marker key survived uninstall")
	}
	if after["userSetting"] != "mine" {
		t.Errorf("userSetting = %v, want mine", after["userSetting"])
	}
}

func TestUninstall_NothingInstalled(t *testing.T) {
	dirs := claudedir.At(t.TempDir())
	if err := Uninstall(dirs); err != nil {
		t.Errorf("Uninstall() on empty project error = %v", err)
	}
}

func TestStatus(t *testing.T) {
	dirs := claudedir.At(t.TempDir())

	existing, plugins, err := Status(dirs)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if existing.Installed {
		t.Error("fresh project reports installed")
	}
	for _, p := range plugins {
		if p.Installed {
			t.Errorf("plugin %s reports installed on fresh project", p.Name)
		}
	}

	if _, err := Install(dirs, Options{Version: "2.0.0"}); err != nil {
		t.Fatal(err)
	}

	existing, plugins, err = Status(dirs)
	if err != nil {
		t.Fatal(err)
	}
	if !existing.Installed || existing.Version != "2.0.0" {
		t.Errorf("existing = %+v, want installed 2.0.0", existing)
	}
	for _, p := range plugins {
		if !p.Installed {
			t.Errorf("plugin %s not installed after install", p.Name)
		}
	}
}
