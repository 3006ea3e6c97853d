package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Store loads and saves a Config at a fixed path. Grounded on
// obusalli-csd-devtrack's config Loader (Load/LoadWithCreate/Save against
// a single configPath), with one change the expanded scope here calls
// for: Save writes to a temp file in the same directory and renames it
// over the target, so a crash or a second instance saving concurrently
// can never leave a half-written config behind the way a direct
// os.WriteFile can.
type Store struct {
	path     string
	validate *validator.Validate
}

// NewStore returns a Store bound to path. path is not touched until
// Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path, validate: validator.New()}
}

// DefaultPath returns the conventional location: $XDG_CONFIG_HOME (or
// its platform equivalent, via os.UserConfigDir)/twinpane/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "twinpane", "config.yaml"), nil
}

// Path returns the path this Store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a config file is already present at s.Path().
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and validates the config at s.Path(). If the file is
// absent, it returns Default() without writing anything — the caller
// decides whether to persist it (mirrors LoadWithCreate's
// createIfMissing split, except creation is always the caller's choice
// here rather than a boolean parameter).
func (s *Store) Load() (Config, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	backfillDefaults(&cfg)
	if err := s.validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validating %s: %w", s.path, err)
	}
	return cfg, nil
}

// backfillDefaults fills in fields a hand-edited or older config file
// omitted, the same back-fill-missing-sections role LoadWithCreate's
// comparison against DefaultConfig() plays for WidgetProfiles/BuildProfiles.
func backfillDefaults(cfg *Config) {
	if cfg.Settings.ThemeName == "" {
		cfg.Settings.ThemeName = DefaultSettings().ThemeName
	}
	if cfg.Settings.PipelineConcurrency == 0 {
		cfg.Settings.PipelineConcurrency = DefaultSettings().PipelineConcurrency
	}
	if cfg.Themes == nil {
		cfg.Themes = map[string]Theme{}
	}
	for name, theme := range BuiltinThemes() {
		if _, ok := cfg.Themes[name]; !ok {
			cfg.Themes[name] = theme
		}
	}
}

// Save validates cfg and writes it to s.Path(), creating the parent
// directory if needed. The write goes to a sibling temp file first and
// is renamed into place, so a reader never observes a partial file.
func (s *Store) Save(cfg Config) error {
	if err := s.validate.Struct(cfg); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}
