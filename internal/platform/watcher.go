package platform

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce groups bursts of events from a single save
const DefaultWatchDebounce = 200 * time.Millisecond

// FileWatcher calls onChange when the content of one file changes. The
// parent directory is watched so rename-over saves are seen.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange func()

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu       sync.Mutex
	lastHash string
	pending  time.Time
}

// WatchFile starts watching path and returns the running watcher
func WatchFile(path string, debounce time.Duration, onChange func()) (*FileWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	w := &FileWatcher{
		path:     filepath.Clean(absPath),
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	w.lastHash = w.hash()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.fsWatcher = fsw

	w.wg.Add(1)
	go w.loop()

	log.Printf("Watching %s for changes", w.path)
	return w, nil
}

// Stop terminates the watcher; safe to call more than once
func (w *FileWatcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.fsWatcher.Close()
	})
	return err
}

func (w *FileWatcher) loop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-ticker.C:
			w.processPending()
		}
	}
}

func (w *FileWatcher) processPending() {
	w.mu.Lock()
	ready := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
	if ready {
		w.pending = time.Time{}
	}
	w.mu.Unlock()

	if !ready {
		return
	}

	hash := w.hash()
	w.mu.Lock()
	changed := hash != w.lastHash
	w.lastHash = hash
	w.mu.Unlock()

	if !changed {
		return
	}

	log.Printf("File changed: %s", w.path)
	if w.onChange != nil {
		w.onChange()
	}
}

// hash returns the content hash, or "" when the file is missing
func (w *FileWatcher) hash() string {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Failed to read watched file %s: %v", w.path, err)
		}
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
