package catalog

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/fsnotify/fsnotify"

	"faqdesk/internal/eventbus"
)

// reloadSettle coalesces the burst of events editors emit on save.
const reloadSettle = 150 * time.Millisecond

// Watcher reloads a catalog file when it changes on disk and replaces the
// store contents wholesale. The parent directory is watched so that
// rename-on-save editors are handled.
type Watcher struct {
	path  string
	store Store
	bus   eventbus.EventBus
	clock clock.Clock

	fw      *fsnotify.Watcher
	mu      sync.Mutex
	pending *clock.Timer
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher for path. bus may be nil.
func NewWatcher(path string, store Store, bus eventbus.EventBus) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		path:  abs,
		store: store,
		bus:   bus,
		clock: clock.New(),
		fw:    fw,
		done:  make(chan struct{}),
	}, nil
}

// Start begins watching until ctx is cancelled or Close is called
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	w.wg.Add(1)
	go w.loop(ctx)
	return nil
}

// Close stops the watcher and waits for the event loop to exit
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}

	err := w.fw.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.mu.Unlock()
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("Catalog watcher error: %v", err)
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = w.clock.AfterFunc(reloadSettle, w.reload)
}

// reload is also called directly by tests
func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		// Keep serving the previous collection
		log.Printf("Catalog reload failed: %v", err)
		if w.bus != nil {
			w.bus.Publish(eventbus.ErrorEvent{Message: "catalog reload failed", Err: err})
		}
		return
	}

	gen := w.store.Replace(c)
	log.Printf("Reloaded catalog from %s: %d entries (generation %d)", c.Source, len(c.Entries), gen)

	if w.bus != nil {
		w.bus.Publish(eventbus.CatalogReloadedEvent{Source: c.Source, Entries: c.Entries})
	}
}
