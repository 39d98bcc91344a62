package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/lina/core"
)

// FileInfo tracks a watched file and the last time it changed on disk.
type FileInfo struct {
	Path        string
	LastChanged time.Time
}

// Watcher reports writes to a set of files. Directories are watched rather
// than the files themselves so editors that save by rename keep working.
type Watcher struct {
	files map[string]FileInfo
	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	events   chan string
	errors   chan error
}

func New() (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		files:    make(map[string]FileInfo),
		fsnotify: fsWatch,
		events:   make(chan string),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}
	go w.start()

	return w, nil
}

// Add starts watching the named file.
func (w *Watcher) Add(name string) error {
	path, err := filepath.Abs(name)
	if err != nil {
		return err
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isClosed {
		return core.ErrWatcherClosed
	}
	if err := w.fsnotify.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", name, err)
	}
	w.files[path] = FileInfo{Path: path, LastChanged: time.Now()}
	core.LogDebug("watching %s", path)
	return nil
}

// Files returns a snapshot of the watched files.
func (w *Watcher) Files() []FileInfo {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	files := make([]FileInfo, 0, len(w.files))
	for _, f := range w.files {
		files = append(files, f)
	}
	return files
}

// Events delivers the absolute path of every watched file that was created or
// written. The channel is closed by Close.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors delivers errors raised by the underlying notifier.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isClosed {
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	close(w.done)
	return nil
}

func (w *Watcher) start() {
	for {
		select {

		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			path, tracked := w.touch(e.Name)
			if !tracked {
				continue
			}
			select {
			case w.events <- path:
			case <-w.done:
				w.shutdown()
				return
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%v", err)
			select {
			case w.errors <- err:
			case <-w.done:
				w.shutdown()
				return
			}

		case <-w.done:
			w.shutdown()
			return
		}
	}
}

// touch refreshes the change time of name when it is watched.
func (w *Watcher) touch(name string) (string, bool) {
	path := filepath.Clean(name)

	w.mutex.Lock()
	defer w.mutex.Unlock()

	f, ok := w.files[path]
	if !ok {
		return "", false
	}
	f.LastChanged = time.Now()
	w.files[path] = f
	return path, true
}

func (w *Watcher) shutdown() {
	w.fsnotify.Close()
	close(w.events)
	close(w.errors)
}
