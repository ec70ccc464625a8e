package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// ConfigReloadedMsg is delivered to the running program after the config
// file changed on disk. Err is set when the new file could not be loaded;
// the previous config stays in effect.
type ConfigReloadedMsg struct {
	Config *UserConfig
	Err    error
}

// Watcher reloads the config file whenever it is written or created.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	reloads chan ConfigReloadedMsg
	logger  *log.Logger
}

// NewWatcher watches the directory holding path, since editors often replace
// the file rather than write it in place.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		fs:      fs,
		reloads: make(chan ConfigReloadedMsg, 1),
		logger:  logger,
	}
	go w.run()
	return w, nil
}

// Reloads returns the channel reload results are sent on. It is closed when
// the watcher stops.
func (w *Watcher) Reloads() <-chan ConfigReloadedMsg { return w.reloads }

// Close stops watching.
func (w *Watcher) Close() error { return w.fs.Close() }

func (w *Watcher) run() {
	defer close(w.reloads)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := LoadUserConfigFrom(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", "path", w.path, "err", err)
			} else {
				w.logger.Info("config reloaded", "path", w.path)
			}
			w.publish(ConfigReloadedMsg{Config: cfg, Err: err})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", "err", err)
		}
	}
}

// publish keeps only the newest result when the program is slow to read.
func (w *Watcher) publish(msg ConfigReloadedMsg) {
	for {
		select {
		case w.reloads <- msg:
			return
		default:
		}
		select {
		case <-w.reloads:
		default:
		}
	}
}
