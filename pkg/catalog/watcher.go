package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/cardvice/errors"
	"github.com/grovetools/cardvice/pkg/advice"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a catalog file when it changes on disk. Editors often save
// through a rename, so the containing directory is watched rather than the
// file itself.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	target   string // resolved symlink target, if any
	debounce time.Duration
	logger   *logrus.Entry
	onReload func(advice.Catalog)

	mu      sync.Mutex
	lastErr error
}

// NewWatcher creates a watcher for the catalog at path. onReload is called
// from the watcher goroutine with each successfully parsed catalog; parse
// failures are logged and the previous catalog stays in use.
func NewWatcher(path string, debounce time.Duration, logger *logrus.Entry, onReload func(advice.Catalog)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeWatchFailed, "failed to resolve catalog path")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeWatchFailed, "failed to create file watcher")
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, errors.Wrap(err, errors.ErrCodeWatchFailed, "failed to watch catalog directory").
			WithDetail("path", abs)
	}

	// fsnotify doesn't follow symlinks, so watch the target's directory too.
	var target string
	if info, err := os.Lstat(abs); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			target = resolved
			if filepath.Dir(resolved) != filepath.Dir(abs) {
				if err := fsw.Add(filepath.Dir(resolved)); err != nil {
					logger.WithError(err).Warnf("Failed to watch symlink target dir %s", filepath.Dir(resolved))
				}
			}
		}
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		watcher:  fsw,
		path:     abs,
		target:   target,
		debounce: debounce,
		logger:   logger,
		onReload: onReload,
	}, nil
}

// Start watches for changes until the context is cancelled. It blocks, so
// callers run it in its own goroutine. The underlying watcher is closed on
// return.
func (w *Watcher) Start(ctx context.Context) {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			// Trailing-edge debounce: reload once writes have settled.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	return name == w.path || (w.target != "" && name == w.target)
}

func (w *Watcher) reload() {
	c, err := Load(w.path)

	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()

	if err != nil {
		w.logger.WithError(err).Warn("Catalog reload failed, keeping previous catalog")
		return
	}

	w.logger.WithField("path", w.path).Info("Catalog reloaded")
	if w.onReload != nil {
		w.onReload(c)
	}
}

// LastError returns the error of the most recent reload attempt, if any.
func (w *Watcher) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close releases the watcher without starting it.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
