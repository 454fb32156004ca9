package app

import (
	"sync"

	"mindnote/internal/gui"
	"mindnote/internal/logger"
	"mindnote/internal/shutdown"
	"mindnote/internal/storage"
)

// Lifecycle tears the application down once the window is gone.
type Lifecycle struct {
	signals *shutdown.Manager
	logger  logger.Logger
	once    sync.Once
}

// NewLifecycle registers components with signals. They stop in reverse
// order, so the watcher goes before the GUI manager.
func NewLifecycle(signals *shutdown.Manager, gm *gui.Manager, watcher *storage.Watcher, log logger.Logger) *Lifecycle {
	if gm != nil {
		signals.Register(gm)
	}
	if watcher != nil {
		signals.Register(watcher)
	}

	return &Lifecycle{
		signals: signals,
		logger:  log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
		l.signals.Shutdown()
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}
