// Package app wires every other package into the running program: two
// panels, the undo history, the async copy/move/delete pipeline, the
// keybinding dispatcher, the modal stack, and the persisted config, driven
// by one tcell event loop. Adapted from the original single-pane
// internal/app (application.go/loop.go), generalizing from one
// AppState/one pane into a panel.Pair plus the shared services both
// panes draw on.
package app

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/kk-code-lab/twinpane/internal/cache"
	"github.com/kk-code-lab/twinpane/internal/command"
	"github.com/kk-code-lab/twinpane/internal/config"
	"github.com/kk-code-lab/twinpane/internal/dialog"
	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/kk-code-lab/twinpane/internal/keybind"
	"github.com/kk-code-lab/twinpane/internal/panel"
	"github.com/kk-code-lab/twinpane/internal/pipeline"
	renderui "github.com/kk-code-lab/twinpane/internal/ui/render"
)

// Application is the running program.
type Application struct {
	screen tcell.Screen

	panels     *panel.Pair
	history    *command.History
	dialogs    dialog.Stack
	dispatcher *keybind.Dispatcher
	pipeline   *pipeline.Pipeline
	cache      *cache.Cache

	cfgStore *config.Store
	cfg      config.Config
	colors   config.RenderColors

	renderer *renderui.Renderer
	logger   *zap.Logger

	shouldQuit  bool
	currentPath string

	clipboardCmd   []string
	clipboardAvail bool
	editorCmd      []string
	editorAvail    bool
}

// Close releases the terminal and flushes the logger.
func (app *Application) Close() error {
	app.screen.Fini()
	_ = app.logger.Sync()
	return nil
}

// GetCurrentPath returns the active pane's directory, for shell-integration
// cd-on-exit, mirroring the single-pane GetCurrentPath.
func (app *Application) GetCurrentPath() string {
	return app.currentPath
}

// GetCwd returns the process's working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}

// NewApplication builds and initializes the application: terminal, config,
// both panes loaded at cwd, and every shared service.
func NewApplication() (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cwd, err := GetCwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		screen.Fini()
		return nil, err
	}
	store := config.NewStore(cfgPath)
	cfg, err := store.Load()
	if err != nil {
		screen.Fini()
		return nil, err
	}
	theme := cfg.Themes[cfg.Settings.ThemeName]
	colors, err := theme.Resolve()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	c := cache.New(cfg.Settings.CacheMaxEntries, secondsToDuration(cfg.Settings.CacheTTLSeconds))

	pair := panel.NewPair(cwd, cwd)
	if err := reloadPane(pair.Left, c); err != nil {
		screen.Fini()
		return nil, err
	}
	if err := reloadPane(pair.Right, c); err != nil {
		screen.Fini()
		return nil, err
	}

	clipboardCmd, clipboardAvail := detectClipboard()
	editorCmd, editorAvail := detectEditorCommand()
	logger := newLogger(cfgPath)

	app := &Application{
		screen:         screen,
		panels:         pair,
		history:        command.NewHistory(cfg.Settings.MaxUndoLevels),
		dispatcher:     keybind.NewDispatcher(keybind.DefaultTable()),
		pipeline:       pipeline.New(cfg.Settings.PipelineConcurrency, fsutil.DefaultCopyOptions(), fsutil.DefaultDeleteOptions(), c),
		cache:          c,
		cfgStore:       store,
		cfg:            cfg,
		colors:         colors,
		renderer:       renderui.NewRenderer(screen),
		logger:         logger,
		currentPath:    cwd,
		clipboardCmd:   clipboardCmd,
		clipboardAvail: clipboardAvail,
		editorCmd:      editorCmd,
		editorAvail:    editorAvail,
	}
	logger.Info("started", zap.String("cwd", cwd), zap.String("theme", cfg.Settings.ThemeName))
	return app, nil
}
