package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsInternallyConsistent(t *testing.T) {
	cfg := Default()
	_, ok := cfg.Themes[cfg.Settings.ThemeName]
	require.True(t, ok, "default settings must name a theme present in the default theme map")
}

func TestBuiltinThemesAllResolve(t *testing.T) {
	for name, theme := range BuiltinThemes() {
		_, err := theme.Resolve()
		require.NoError(t, err, "theme %s", name)
	}
}

func TestApplyProfileSwapsSettings(t *testing.T) {
	cfg := Default()
	profile := BuiltinProfiles()[ProfileMinimal]

	updated, err := ApplyProfile(cfg, profile)
	require.NoError(t, err)
	require.Equal(t, profile.Settings, updated.Settings)
}

func TestApplyProfileRejectsMissingTheme(t *testing.T) {
	cfg := Default()
	delete(cfg.Themes, "minimal")
	profile := BuiltinProfiles()[ProfileMinimal]

	_, err := ApplyProfile(cfg, profile)
	require.Error(t, err)
	var unknownTheme *UnknownThemeError
	require.ErrorAs(t, err, &unknownTheme)
}

func TestBuiltinProfilesCoverEveryType(t *testing.T) {
	profiles := BuiltinProfiles()
	for _, want := range []ProfileType{ProfilePerformance, ProfileSafety, ProfilePowerUser, ProfileMinimal} {
		p, ok := profiles[want]
		require.True(t, ok, "missing profile %s", want)
		require.Equal(t, want, p.Type)
		_, themed := Default().Themes[p.ThemeName]
		require.True(t, themed, "profile %s points at unknown theme %s", want, p.ThemeName)
	}
}
