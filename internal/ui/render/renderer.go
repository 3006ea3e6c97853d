// Package render draws the dual-pane shell onto a tcell.Screen: two
// side-by-side directory listings, a status bar, a contextual footer, and
// any modal dialog on top. Generalizes the single-pane Renderer
// (drawHeader/drawMainPanel/drawStatusLine in the original renderer.go)
// from one listing panel plus a sidebar into two equal listing columns,
// and from ColorTheme's hardcoded tcell.Color constants into
// config.RenderColors resolved from the persisted theme.
package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/twinpane/internal/config"
	"github.com/kk-code-lab/twinpane/internal/dialog"
	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/kk-code-lab/twinpane/internal/panel"
	"github.com/kk-code-lab/twinpane/internal/sortview"
	"github.com/kk-code-lab/twinpane/internal/textutil"
)

// Renderer draws the whole screen from application state each frame.
type Renderer struct {
	screen tcell.Screen

	runeWidthCache   [128]int
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map
}

// NewRenderer wraps screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws both panes, the status bar, the footer, and the topmost
// dialog, if any is stacked.
func (r *Renderer) Render(pair *panel.Pair, dialogs *dialog.Stack, colors config.RenderColors) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if h < 4 {
		r.screen.Show()
		return
	}

	listBottom := h - 2
	leftWidth := (w - 1) / 2
	rightStart := leftWidth + 1

	r.drawPane(pair.Left, 0, leftWidth, listBottom, colors)
	r.drawSeparator(leftWidth, listBottom, colors)
	r.drawPane(pair.Right, rightStart, w-rightStart, listBottom, colors)

	r.drawStatusBar(pair.Active(), 0, w, h-2, colors)
	r.drawFooter(pair.Active(), 0, w, h-1, colors)

	if top, ok := dialogs.Top(); ok {
		r.drawDialog(top, w, h, colors)
	}

	r.screen.Show()
}

func (r *Renderer) drawSeparator(x, bottom int, colors config.RenderColors) {
	style := tcell.StyleDefault.Background(colors.Background).Foreground(colors.InactivePanelBorder)
	for y := 0; y < bottom; y++ {
		r.screen.SetContent(x, y, '│', nil, style)
	}
}

// drawPane renders one pane's header row and its visible listing rows
// within [startX, startX+width) and [0, bottom).
func (r *Renderer) drawPane(p *panel.State, startX, width, bottom int, colors config.RenderColors) {
	borderColor := colors.InactivePanelBorder
	if p.Active {
		borderColor = colors.ActivePanelBorder
	}
	headerStyle := tcell.StyleDefault.Background(colors.Background).Foreground(borderColor).Bold(true)

	header := p.CurrentPath
	if p.Mode == panel.QuickSearching {
		header = fmt.Sprintf("%s  search: %s", p.CurrentPath, p.QuickSearch.Buffer())
	}
	header = textutil.SanitizeTerminalText(header)
	header = r.truncateTextToWidth(header, width)
	endX := r.drawTextLine(startX, 0, width, header, headerStyle)
	for x := endX; x < startX+width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, headerStyle)
	}

	p.SetViewportRows(bottom - 1)
	baseStyle := tcell.StyleDefault.Background(colors.Background).Foreground(colors.Foreground)

	visibleRows := bottom - 1
	end := p.ScrollOffset + visibleRows
	if end > len(p.Entries) {
		end = len(p.Entries)
	}

	y := 1
	for i := p.ScrollOffset; i < end; i++ {
		entry := p.Entries[i]
		style := r.rowStyle(p, entry, i, baseStyle, colors)
		line := formatEntryLine(entry, p.View, width)
		endX := r.drawTextLine(startX, y, width, line, style)
		for x := endX; x < startX+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
		y++
	}
	for ; y < bottom; y++ {
		for x := startX; x < startX+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}
}

func (r *Renderer) rowStyle(p *panel.State, entry fsutil.DirectoryEntry, index int, base tcell.Style, colors config.RenderColors) tcell.Style {
	style := base
	if entry.IsHidden() {
		style = style.Foreground(colors.HiddenFg)
	}
	if p.Marks.IsMarked(entry.FullPath) {
		style = style.Foreground(colors.Marked)
	}
	if index == p.Cursor {
		style = tcell.StyleDefault.Background(colors.Selection).Foreground(colors.Background)
	}
	return style
}

func formatEntryLine(entry fsutil.DirectoryEntry, view sortview.ViewMode, width int) string {
	icon := " "
	switch {
	case entry.IsSymlink:
		icon = "@"
	case entry.IsDir:
		icon = "/"
	}
	name := textutil.SanitizeTerminalText(entry.Name)

	switch view {
	case sortview.ViewBrief:
		return fmt.Sprintf(" %s%s", icon, name)
	default:
		sizeCol := formatSize(entry)
		dateCol := entry.Modified.Format("2006-01-02 15:04")
		extra := ""
		if view == sortview.ViewInfo && entry.HasOwnerInfo() {
			extra = fmt.Sprintf(" %-10s %-8s", entry.Perm, entry.Owner)
		}
		nameWidth := width - 1 - 1 - 9 - 17 - len(extra)
		if nameWidth < 4 {
			return fmt.Sprintf(" %s%s", icon, name)
		}
		return fmt.Sprintf(" %s%-*s %8s %s%s", icon, nameWidth, name, sizeCol, dateCol, extra)
	}
}

func formatSize(entry fsutil.DirectoryEntry) string {
	if entry.IsDir {
		return "<DIR>"
	}
	const unit = 1024
	size := entry.Size
	if size < unit {
		return fmt.Sprintf("%d", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(size)/float64(div), "KMGTPE"[exp])
}

func (r *Renderer) drawStatusBar(active *panel.State, startX, width, y int, colors config.RenderColors) {
	style := tcell.StyleDefault.Background(colors.StatusBar).Foreground(colors.Foreground)
	marked := active.Marks.Count()
	text := active.CurrentPath
	if marked > 0 {
		text = fmt.Sprintf("%s  (%d marked)", active.CurrentPath, marked)
	}
	text = r.truncateTextToWidth(textutil.SanitizeTerminalText(text), width)
	endX := r.drawTextLine(startX, y, width, text, style)
	for x := endX; x < startX+width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *Renderer) drawFooter(active *panel.State, startX, width, y int, colors config.RenderColors) {
	style := tcell.StyleDefault.Background(colors.Background).Foreground(colors.Foreground)
	text := footerText(active)
	text = r.truncateTextToWidth(text, width)
	endX := r.drawTextLine(startX, y, width, text, style)
	for x := endX; x < startX+width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func footerText(active *panel.State) string {
	if active.Mode == panel.QuickSearching {
		return " type to search  Esc: exit"
	}
	return " F2 Rename F5 Copy F6 Move F7 Mkdir F8 Delete F9 Help F10 Quit"
}

// drawDialog paints d as a centered box, sized to its content, on top of
// whatever the panes already drew this frame.
func (r *Renderer) drawDialog(d *dialog.Dialog, screenW, screenH int, colors config.RenderColors) {
	width := len(d.Title) + 8
	if len(d.Message) > width {
		width = len(d.Message) + 4
	}
	if len(d.Buffer)+4 > width {
		width = len(d.Buffer) + 4
	}
	if width > screenW-4 {
		width = screenW - 4
	}
	if width < 20 {
		width = 20
	}
	height := 5
	x0 := (screenW - width) / 2
	y0 := (screenH - height) / 2

	boxStyle := tcell.StyleDefault.Background(colors.Background).Foreground(colors.ActivePanelBorder)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, boxStyle)
		}
	}
	r.drawTextLine(x0+2, y0, width-4, d.Title, boxStyle.Bold(true))
	r.drawTextLine(x0+2, y0+2, width-4, d.Message, boxStyle)

	switch d.Kind {
	case dialog.KindInput, dialog.KindFind:
		cursorStyle := tcell.StyleDefault.Background(colors.Selection).Foreground(colors.Background)
		endX := r.drawTextLine(x0+2, y0+3, width-4, d.Buffer, boxStyle)
		r.drawStyledRune(endX, y0+3, x0+width-2, '█', cursorStyle)
	case dialog.KindProgress:
		r.drawTextLine(x0+2, y0+3, width-4, "Working…", boxStyle)
	}
}
