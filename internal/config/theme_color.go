package config

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RenderColors is a Theme's palette resolved to tcell.Color values, the
// shape the renderer actually draws with. Adapted from the
// fixed render.ColorTheme (internal/ui/render/theme.go), generalized
// from a single hardcoded palette into one derived from whichever Theme
// is active. HiddenFg has no field in the persisted Theme — it is
// derived at resolve time by blending Foreground toward Background,
// the same muted-but-still-legible color previously hardcoded as
// tcell.ColorLightSlateGray regardless of the active theme.
type RenderColors struct {
	Background          tcell.Color
	Foreground          tcell.Color
	HiddenFg            tcell.Color
	ActivePanelBorder   tcell.Color
	InactivePanelBorder tcell.Color
	Selection           tcell.Color
	Marked              tcell.Color
	StatusBar           tcell.Color
	Error               tcell.Color
}

// Resolve parses every hex field of t and derives HiddenFg, returning
// an error naming the first field that fails to parse as "#rrggbb".
func (t Theme) Resolve() (RenderColors, error) {
	bg, err := parseHex(t.Background)
	if err != nil {
		return RenderColors{}, fmt.Errorf("background: %w", err)
	}
	fg, err := parseHex(t.Foreground)
	if err != nil {
		return RenderColors{}, fmt.Errorf("foreground: %w", err)
	}
	activeBorder, err := parseHex(t.ActivePanelBorder)
	if err != nil {
		return RenderColors{}, fmt.Errorf("active_panel_border: %w", err)
	}
	inactiveBorder, err := parseHex(t.InactivePanelBorder)
	if err != nil {
		return RenderColors{}, fmt.Errorf("inactive_panel_border: %w", err)
	}
	selection, err := parseHex(t.Selection)
	if err != nil {
		return RenderColors{}, fmt.Errorf("selection: %w", err)
	}
	marked, err := parseHex(t.Marked)
	if err != nil {
		return RenderColors{}, fmt.Errorf("marked: %w", err)
	}
	statusBar, err := parseHex(t.StatusBar)
	if err != nil {
		return RenderColors{}, fmt.Errorf("status_bar: %w", err)
	}
	errColor, err := parseHex(t.Error)
	if err != nil {
		return RenderColors{}, fmt.Errorf("error: %w", err)
	}

	bgColorful, _ := colorful.Hex(t.Background)
	fgColorful, _ := colorful.Hex(t.Foreground)
	hidden := fgColorful.BlendLab(bgColorful, 0.55)

	return RenderColors{
		Background:          bg,
		Foreground:          fg,
		HiddenFg:            tcell.GetColor(hidden.Hex()),
		ActivePanelBorder:   activeBorder,
		InactivePanelBorder: inactiveBorder,
		Selection:           selection,
		Marked:              marked,
		StatusBar:           statusBar,
		Error:               errColor,
	}, nil
}

func parseHex(hex string) (tcell.Color, error) {
	if _, err := colorful.Hex(hex); err != nil {
		return tcell.ColorDefault, err
	}
	return tcell.GetColor(hex), nil
}
