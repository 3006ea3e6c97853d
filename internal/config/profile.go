package config

// ProfileType names one of the built-in presets a user can apply in a
// single step. Grounded on original_source/features/config_profiles.py's
// ProfileType enum (PERFORMANCE/SAFETY/POWER_USER/MINIMAL/CUSTOM).
type ProfileType string

const (
	ProfilePerformance ProfileType = "performance"
	ProfileSafety      ProfileType = "safety"
	ProfilePowerUser   ProfileType = "power_user"
	ProfileMinimal     ProfileType = "minimal"
	ProfileCustom      ProfileType = "custom"
)

// Profile bundles a Settings override and a theme choice under a name
// and description, mirroring ConfigProfile's (cache, ui, operations, ...)
// grouping but flattened into the single Settings struct this repo
// already persists, since there is no separate performance/safety/ui
// settings struct here to bundle.
type Profile struct {
	Type        ProfileType
	Name        string
	Description string
	Settings    Settings
	ThemeName   string
}

// BuiltinProfiles returns the four fixed presets, each a concrete
// Settings override plus a theme pick. Field values follow the python
// BUILTIN_PROFILES table: Performance trades undo depth and
// confirmations for speed, Safety maximizes confirmations and undo
// depth, Power User raises concurrency and undo depth without
// sacrificing confirmations, Minimal turns off everything but the
// essentials for a constrained terminal.
func BuiltinProfiles() map[ProfileType]Profile {
	return map[ProfileType]Profile{
		ProfilePerformance: {
			Type:        ProfilePerformance,
			Name:        "Performance Mode",
			Description: "Maximizes throughput: larger cache, more concurrent transfers, fewer prompts.",
			Settings: Settings{
				ShowHiddenFiles:     false,
				ConfirmDelete:       false,
				ConfirmOverwrite:    false,
				MaxUndoLevels:       20,
				PipelineConcurrency: 16,
				CacheMaxEntries:     1024,
				CacheTTLSeconds:     60,
				ThemeName:           "modern_dark",
			},
			ThemeName: "modern_dark",
		},
		ProfileSafety: {
			Type:        ProfileSafety,
			Name:        "Safety Mode",
			Description: "Confirms every destructive action and keeps the longest undo history.",
			Settings: Settings{
				ShowHiddenFiles:     true,
				ConfirmDelete:       true,
				ConfirmOverwrite:    true,
				MaxUndoLevels:       500,
				PipelineConcurrency: 2,
				CacheMaxEntries:     128,
				CacheTTLSeconds:     10,
				ThemeName:           "norton_commander",
			},
			ThemeName: "norton_commander",
		},
		ProfilePowerUser: {
			Type:        ProfilePowerUser,
			Name:        "Power User",
			Description: "High concurrency and deep undo history, confirmations still on.",
			Settings: Settings{
				ShowHiddenFiles:     true,
				ConfirmDelete:       true,
				ConfirmOverwrite:    true,
				MaxUndoLevels:       250,
				PipelineConcurrency: 12,
				CacheMaxEntries:     512,
				CacheTTLSeconds:     30,
				ThemeName:           "midnight_blue",
			},
			ThemeName: "midnight_blue",
		},
		ProfileMinimal: {
			Type:        ProfileMinimal,
			Name:        "Minimal",
			Description: "Lowest resource use: small cache, single in-flight transfer, plain palette.",
			Settings: Settings{
				ShowHiddenFiles:     false,
				ConfirmDelete:       true,
				ConfirmOverwrite:    true,
				MaxUndoLevels:       10,
				PipelineConcurrency: 1,
				CacheMaxEntries:     32,
				CacheTTLSeconds:     5,
				ThemeName:           "minimal",
			},
			ThemeName: "minimal",
		},
	}
}

// ApplyProfile returns cfg with Settings replaced by the profile's
// Settings. The profile's theme must already exist in cfg.Themes (every
// built-in profile above names a built-in theme, so this only fails for
// a hand-edited config that deleted a theme a profile still points at).
func ApplyProfile(cfg Config, p Profile) (Config, error) {
	if _, ok := cfg.Themes[p.ThemeName]; !ok {
		return cfg, &UnknownThemeError{Name: p.ThemeName}
	}
	cfg.Settings = p.Settings
	return cfg, nil
}
