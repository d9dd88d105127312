package server

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 250 * time.Millisecond

// Watcher rebuilds the site when files under the content directory
// change and then notifies the reload hub. Bursts of events, as
// editors produce on save, collapse into a single rebuild carrying
// every path touched in the window.
type Watcher struct {
	contentDir string
	rebuild    func(changed []string) error
	server     *Server

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]bool
}

// NewWatcher creates a watcher over contentDir. rebuild regenerates
// the site from the changed paths; on success the server's reload hub
// is notified.
func NewWatcher(contentDir string, rebuild func(changed []string) error, srv *Server) *Watcher {
	return &Watcher{
		contentDir: contentDir,
		rebuild:    rebuild,
		server:     srv,
		pending:    make(map[string]bool),
	}
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := addRecursive(fsw, w.contentDir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			// New directories need their own watch before anything
			// written inside them is seen.
			if event.Op.Has(fsnotify.Create) {
				// addRecursive only registers directories, so plain
				// file creates pass through untouched.
				_ = addRecursive(fsw, event.Name)
			}
			w.schedule(event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// schedule records the path and arms the debounce timer, replacing any
// pending rebuild.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[path] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceWindow, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	start := time.Now()
	if err := w.rebuild(changed); err != nil {
		log.Printf("rebuild failed: %v", err)
		return
	}
	log.Printf("rebuilt site in %s", time.Since(start).Round(time.Millisecond))
	w.server.NotifyReload()
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && d.Name()[0] == '.' {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
