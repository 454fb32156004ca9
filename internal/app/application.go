package app

import (
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"mindnote/internal/config"
	"mindnote/internal/editor"
	"mindnote/internal/gui"
	"mindnote/internal/logger"
	"mindnote/internal/shutdown"
	"mindnote/internal/storage"
)

const (
	AppName    = editor.AppTitle
	AppID      = "com.mindnote.app"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	guiManager *gui.Manager
	editor     *editor.Controller
	watcher    *storage.Watcher
	signals    *shutdown.Manager
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(fyneapp.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"watch_files":   cfg.WatchFiles,
	})

	guiManager := gui.NewManager(window, log)
	files := storage.NewTextFiles(log)
	controller := editor.NewController(guiManager, guiManager, guiManager, files, log)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		guiManager: guiManager,
		editor:     controller,
		signals:    shutdown.NewManager(log),
	}

	if cfg.WatchFiles {
		watcher, err := storage.NewWatcher(log, func(path string) {
			fyne.Do(func() {
				a.editor.ExternalChange(path)
			})
		})
		if err != nil {
			return nil, err
		}
		a.watcher = watcher
	}

	controller.OnPathChange(a.pathChanged)
	guiManager.SetActions(NewHandlers(controller, guiManager, log).Actions())

	a.lifecycle = NewLifecycle(a.signals, guiManager, a.watcher, log)

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

func (a *Application) pathChanged(path string) {
	a.guiManager.RememberPath(path)
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Watch(path); err != nil {
		a.logger.Warning("Application", "cannot watch file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}

// Run shows the window and blocks until it closes. A non-empty initialPath
// is opened once the window is up.
func (a *Application) Run(initialPath string) error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "close requested", nil)
		a.editor.Exit()
	})
	a.signals.Listen(func(os.Signal) {
		fyne.Do(a.editor.Exit)
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.editor.Start()
	a.window.Show()
	a.guiManager.FocusSheet()

	if initialPath != "" {
		a.openInitial(initialPath)
	}

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) openInitial(path string) {
	if err := a.editor.OpenPath(path); err != nil {
		a.guiManager.ShowError(editor.ErrorTitle(err), err)
	}
}
