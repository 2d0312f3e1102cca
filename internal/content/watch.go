package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"coursepage/internal/domain"
	"coursepage/internal/eventbus"
)

// DefaultDebounce batches the burst of events an editor produces for one save
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions configures a Watcher
type WatchOptions struct {
	Debounce time.Duration
	Clock    clockwork.Clock
	Logger   *zap.Logger
}

// Watcher reloads a content file when it changes on disk and publishes the result on the bus:
// ContentReloaded with the new page, or ContentInvalid when the new file does not validate.
type Watcher struct {
	path     string
	bus      eventbus.EventBus
	log      *zap.Logger
	clock    clockwork.Clock
	debounce time.Duration
	fs       *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher for path
func NewWatcher(path string, bus eventbus.EventBus, opts WatchOptions) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Watcher{
		path:     abs,
		bus:      bus,
		log:      opts.Logger.Named("watch"),
		clock:    opts.Clock,
		debounce: opts.Debounce,
		fs:       fs,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Start watches the file's directory, since editors often save by replacing the file.
// It returns immediately.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if err := w.fs.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.running = true
	go w.run(ctx)

	w.log.Info("watching content file", zap.String("path", w.path))
	return nil
}

// Stop ends watching and waits for the loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.fs.Close(); err != nil {
		w.log.Warn("closing file watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var (
		timer   clockwork.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("content file event", zap.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = w.clock.NewTimer(w.debounce)
			pending = timer.Chan()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	page, err := Load(w.path)
	if err != nil {
		w.log.Warn("content reload rejected", zap.Error(err))
		w.bus.Publish(domain.ContentInvalidEvent{Path: w.path, Err: err})
		return
	}
	w.log.Info("content reloaded", zap.Int("sections", len(page.Sections)))
	w.bus.Publish(domain.ContentReloadedEvent{Path: w.path, Page: page})
}
