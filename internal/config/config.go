// Package config defines the persisted settings and theme, plus the
// built-in profile presets a user can apply in one step instead of
// editing individual fields.
package config

// Settings holds the behavioral knobs the config editor exposes.
type Settings struct {
	ShowHiddenFiles     bool   `yaml:"show_hidden_files"`
	ConfirmDelete       bool   `yaml:"confirm_delete"`
	ConfirmOverwrite    bool   `yaml:"confirm_overwrite"`
	MaxUndoLevels       int    `yaml:"max_undo_levels" validate:"gte=0,lte=1000"`
	PipelineConcurrency int64  `yaml:"pipeline_concurrency" validate:"gte=1,lte=64"`
	CacheMaxEntries     int    `yaml:"cache_max_entries" validate:"gte=0"`
	CacheTTLSeconds     int    `yaml:"cache_ttl_seconds" validate:"gte=0"`
	ThemeName           string `yaml:"theme" validate:"required"`
}

// Theme is a named palette. Every color is a "#rrggbb" hex string so it
// round-trips through YAML as plain text and validates with a single
// struct tag instead of a custom unmarshaler.
type Theme struct {
	Name                string `yaml:"name" validate:"required"`
	Background          string `yaml:"background" validate:"required,hexcolor"`
	Foreground          string `yaml:"foreground" validate:"required,hexcolor"`
	ActivePanelBorder   string `yaml:"active_panel_border" validate:"required,hexcolor"`
	InactivePanelBorder string `yaml:"inactive_panel_border" validate:"required,hexcolor"`
	Selection           string `yaml:"selection" validate:"required,hexcolor"`
	Marked              string `yaml:"marked" validate:"required,hexcolor"`
	StatusBar           string `yaml:"status_bar" validate:"required,hexcolor"`
	Error               string `yaml:"error" validate:"required,hexcolor"`
}

// Config is the full persisted document: one active theme name plus a
// library of themes a user can switch between.
type Config struct {
	Settings Settings         `yaml:"settings" validate:"required"`
	Themes   map[string]Theme `yaml:"themes" validate:"required,dive"`
}

// DefaultSettings mirrors the conservative middle ground a fresh install
// should start with: undo on, confirmations on, a modest cache.
func DefaultSettings() Settings {
	return Settings{
		ShowHiddenFiles:     false,
		ConfirmDelete:       true,
		ConfirmOverwrite:    true,
		MaxUndoLevels:       100,
		PipelineConcurrency: 4,
		CacheMaxEntries:     256,
		CacheTTLSeconds:     30,
		ThemeName:           "norton_commander",
	}
}

// BuiltinThemes returns the themes shipped with every install, keyed by
// the name Settings.ThemeName references. "norton_commander" reproduces
// the white-on-blue palette the whole application is styled after;
// "modern_dark" and "midnight_blue" are drawn from the same palette
// catalog original_source/features/config_profiles.py ships per profile;
// "minimal" is a near-monochrome palette for low-color terminals.
func BuiltinThemes() map[string]Theme {
	return map[string]Theme{
		"norton_commander": {
			Name:                "norton_commander",
			Background:          "#0000aa",
			Foreground:          "#ffffff",
			ActivePanelBorder:   "#ffff55",
			InactivePanelBorder: "#aaaaaa",
			Selection:           "#00aaaa",
			Marked:              "#ffff55",
			StatusBar:           "#aaaaaa",
			Error:               "#ff5555",
		},
		"modern_dark": {
			Name:                "modern_dark",
			Background:          "#1e1e2e",
			Foreground:          "#cdd6f4",
			ActivePanelBorder:   "#89b4fa",
			InactivePanelBorder: "#45475a",
			Selection:           "#585b70",
			Marked:              "#f9e2af",
			StatusBar:           "#6c7086",
			Error:               "#f38ba8",
		},
		"midnight_blue": {
			Name:                "midnight_blue",
			Background:          "#0b1021",
			Foreground:          "#d6e0f0",
			ActivePanelBorder:   "#5e81ac",
			InactivePanelBorder: "#3b4252",
			Selection:           "#434c5e",
			Marked:              "#ebcb8b",
			StatusBar:           "#4c566a",
			Error:               "#bf616a",
		},
		"minimal": {
			Name:                "minimal",
			Background:          "#000000",
			Foreground:          "#c0c0c0",
			ActivePanelBorder:   "#ffffff",
			InactivePanelBorder: "#808080",
			Selection:           "#404040",
			Marked:              "#c0c0c0",
			StatusBar:           "#808080",
			Error:               "#c0c0c0",
		},
	}
}

// Default returns the document written for a fresh install: default
// settings plus the full built-in theme library.
func Default() Config {
	return Config{
		Settings: DefaultSettings(),
		Themes:   BuiltinThemes(),
	}
}
