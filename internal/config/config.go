package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/rove/internal/tabnav"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Tab is one configured tab and its panel content.
type Tab struct {
	ID    tabnav.TabID
	Label string
	Body  string
}

// Config captures the screen's tabs and runtime settings.
type Config struct {
	Tabs       []Tab
	DefaultTab tabnav.TabID
	LogFile    string // empty disables debug logging
}

const defaultConfigPath = "~/.config/rove/config.toml"

// Defaults returns the built-in community tabs.
func Defaults() Config {
	return Config{
		Tabs: []Tab{
			{ID: "events", Label: "Events", Body: "Upcoming meetups, workshops and community calls."},
			{ID: "volunteer", Label: "Volunteer", Body: "Open volunteer shifts and ways to help out."},
			{ID: "achievements", Label: "Achievements", Body: "Badges and milestones earned by the community."},
		},
		DefaultTab: "events",
	}
}

// TabIDs returns the ordered tab identifiers.
func (c Config) TabIDs() []tabnav.TabID {
	ids := make([]tabnav.TabID, len(c.Tabs))
	for i, t := range c.Tabs {
		ids[i] = t.ID
	}
	return ids
}

// Tab returns the configured tab with the given id.
func (c Config) Tab(id tabnav.TabID) (Tab, bool) {
	for _, t := range c.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DefaultTab string `toml:"default_tab"`
		LogFile    string `toml:"log_file"`
		Tabs       []struct {
			ID    string `toml:"id"`
			Label string `toml:"label"`
			Body  string `toml:"body"`
		} `toml:"tabs"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Defaults()
	if len(raw.Tabs) > 0 {
		cfg.Tabs = make([]Tab, 0, len(raw.Tabs))
		for _, t := range raw.Tabs {
			id := strings.TrimSpace(t.ID)
			label := strings.TrimSpace(t.Label)
			if label == "" {
				label = id
			}
			cfg.Tabs = append(cfg.Tabs, Tab{
				ID:    tabnav.TabID(id),
				Label: label,
				Body:  strings.TrimSpace(t.Body),
			})
		}
		cfg.DefaultTab = cfg.Tabs[0].ID
	}
	if v := strings.TrimSpace(raw.DefaultTab); v != "" {
		cfg.DefaultTab = tabnav.TabID(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile, err = expandPath(v)
		if err != nil {
			return Config{}, fmt.Errorf("resolve log file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that tab ids are present and unique and that the default
// tab is one of them.
func (c Config) Validate() error {
	if len(c.Tabs) == 0 {
		return fmt.Errorf("%w: no tabs configured", ErrInvalidConfig)
	}
	seen := make(map[tabnav.TabID]bool, len(c.Tabs))
	for i, t := range c.Tabs {
		if t.ID == "" {
			return fmt.Errorf("%w: tab %d has an empty id", ErrInvalidConfig, i)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate tab id %q", ErrInvalidConfig, t.ID)
		}
		seen[t.ID] = true
	}
	if !seen[c.DefaultTab] {
		return fmt.Errorf("%w: default_tab %q is not a configured tab%s", ErrInvalidConfig, c.DefaultTab, Hint(c.DefaultTab, c.TabIDs()))
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
