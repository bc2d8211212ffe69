package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileWatcher calls back whenever a single file changes. Bursts of events
// within the debounce window collapse into one callback, and callbacks never
// run concurrently with each other.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending sync.WaitGroup

	// held while a callback runs
	running sync.Mutex
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, logger *zap.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		debounce: debounce,
		logger:   logger,
	}, nil
}

// Watch blocks until ctx is done, calling onChange after the file at path is
// written, created or replaced. The parent directory is watched so editors
// that save by renaming a temporary file are noticed too.
func (fw *FileWatcher) Watch(ctx context.Context, path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}
	defer fw.drain()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.logger.Debug("file changed", zap.String("path", absPath), zap.Stringer("op", event.Op))
				fw.schedule(onChange)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// schedule replaces any pending callback. Every scheduled callback is counted
// in pending until it has either run or been cancelled.
func (fw *FileWatcher) schedule(onChange func()) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	fw.cancelLocked()
	fw.pending.Add(1)
	fw.timer = time.AfterFunc(fw.debounce, func() {
		defer fw.pending.Done()

		fw.running.Lock()
		defer fw.running.Unlock()
		onChange()
	})
}

func (fw *FileWatcher) cancelLocked() {
	if fw.timer != nil && fw.timer.Stop() {
		fw.pending.Done()
	}
	fw.timer = nil
}

// drain cancels the pending callback and waits for one already running
func (fw *FileWatcher) drain() {
	fw.mu.Lock()
	fw.cancelLocked()
	fw.mu.Unlock()

	fw.pending.Wait()
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
