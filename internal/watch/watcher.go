// Package watch regenerates Go code when declaration files change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/conduit-lang/enumgen/internal/utils"
)

// Change is a debounced batch of declaration file events
type Change struct {
	Modified []string
	Removed  []string
}

// FileWatcher watches a directory tree for .enum changes
type FileWatcher struct {
	root      string
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	logger    *zap.Logger
	changes   chan Change
	done      chan struct{}
}

// NewFileWatcher creates a watcher for root. Batches are delivered on
// Changes after the debounce delay has passed without new events.
func NewFileWatcher(root string, debounce time.Duration, logger *zap.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw := &FileWatcher{
		root:      root,
		watcher:   w,
		debouncer: NewDebouncer(debounce),
		logger:    logger,
		changes:   make(chan Change, 1),
		done:      make(chan struct{}),
	}
	fw.debouncer.SetCallback(fw.emit)

	return fw, nil
}

// Changes returns the channel of debounced batches
func (fw *FileWatcher) Changes() <-chan Change {
	return fw.changes
}

// Run watches until ctx is cancelled
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.close()

	if err := fw.addTree(fw.root); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			fw.handle(event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("watch error", zap.Error(err))

		case <-ctx.Done():
			return nil
		}
	}
}

func (fw *FileWatcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := fw.addTree(event.Name); err != nil {
				fw.logger.Warn("failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
			}
			return
		}
	}

	if filepath.Ext(event.Name) != utils.EnumExt {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	fw.logger.Debug("declaration changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
	fw.debouncer.Add(event.Name)
}

// addTree watches dir and every directory below it that FindEnumFiles
// would descend into
func (fw *FileWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && utils.SkipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := fw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		fw.logger.Debug("watching directory", zap.String("dir", path))
		return nil
	})
}

// emit splits a batch into modified and removed files
func (fw *FileWatcher) emit(files []string) {
	var change Change
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			change.Removed = append(change.Removed, f)
		} else {
			change.Modified = append(change.Modified, f)
		}
	}
	select {
	case fw.changes <- change:
	case <-fw.done:
	}
}

func (fw *FileWatcher) close() {
	close(fw.done)
	fw.debouncer.Stop()
	if err := fw.watcher.Close(); err != nil {
		fw.logger.Debug("failed to close watcher", zap.Error(err))
	}
}

// Debouncer collects paths and hands them to a callback once no new path
// arrived for the configured duration
type Debouncer struct {
	duration time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	files    map[string]struct{}
	callback func([]string)
	stopped  bool
}

// NewDebouncer creates a debouncer
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
		files:    make(map[string]struct{}),
	}
}

// SetCallback sets the function receiving flushed batches
func (d *Debouncer) SetCallback(callback func([]string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callback = callback
}

// Add records a path and restarts the delay
func (d *Debouncer) Add(file string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.files[file] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.flush)
}

func (d *Debouncer) flush() {
	d.mu.Lock()
	if len(d.files) == 0 || d.stopped {
		d.mu.Unlock()
		return
	}
	files := make([]string, 0, len(d.files))
	for f := range d.files {
		files = append(files, f)
	}
	d.files = make(map[string]struct{})
	callback := d.callback
	d.mu.Unlock()

	sort.Strings(files)
	if callback != nil {
		callback(files)
	}
}

// Stop discards pending paths; later calls to Add are ignored
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.files = make(map[string]struct{})
}
