package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/rove/internal/tabnav"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	ids := cfg.TabIDs()
	if len(ids) != 3 || ids[0] != "events" || ids[1] != "volunteer" || ids[2] != "achievements" {
		t.Fatalf("TabIDs = %v, want [events volunteer achievements]", ids)
	}
	if cfg.DefaultTab != "events" {
		t.Fatalf("DefaultTab = %q, want events", cfg.DefaultTab)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
default_tab = "  faq  "
log_file = "  ~/rove/debug.log  "

[[tabs]]
id = " news "
label = " News "
body = "  Latest posts  "

[[tabs]]
id = "faq"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Tabs) != 2 {
		t.Fatalf("Tabs = %#v, want 2", cfg.Tabs)
	}
	if cfg.Tabs[0] != (Tab{ID: "news", Label: "News", Body: "Latest posts"}) {
		t.Fatalf("Tabs[0] = %#v", cfg.Tabs[0])
	}
	if cfg.Tabs[1].Label != "faq" {
		t.Fatalf("Tabs[1].Label = %q, want id fallback faq", cfg.Tabs[1].Label)
	}
	if cfg.DefaultTab != "faq" {
		t.Fatalf("DefaultTab = %q, want faq", cfg.DefaultTab)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_TabsWithoutDefaultUseFirst(t *testing.T) {
	path := writeConfig(t, `
[[tabs]]
id = "b"
[[tabs]]
id = "a"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DefaultTab != "b" {
		t.Fatalf("DefaultTab = %q, want b", cfg.DefaultTab)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `default_tab = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"duplicate": "[[tabs]]\nid = \"a\"\n[[tabs]]\nid = \"a\"\n",
		"empty id":  "[[tabs]]\nid = \"  \"\n",
		"default":   "default_tab = \"zzz\"\n",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: Load error = %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestValidate_NoTabs(t *testing.T) {
	if err := (Config{}).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestConfig_TabLookup(t *testing.T) {
	cfg := Defaults()
	tab, ok := cfg.Tab("volunteer")
	if !ok || tab.Label != "Volunteer" {
		t.Fatalf("Tab(volunteer) = %#v, %v", tab, ok)
	}
	if _, ok := cfg.Tab(tabnav.TabID("gone")); ok {
		t.Fatalf("Tab(gone) ok = true, want false")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
