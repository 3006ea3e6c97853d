package config

import "fmt"

// UnknownThemeError reports a theme name referenced by a profile or by
// Settings.ThemeName that has no entry in Config.Themes.
type UnknownThemeError struct {
	Name string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q", e.Name)
}
