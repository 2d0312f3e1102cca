package autoplay

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is how long each testimonial stays centered before the carousel moves on
const DefaultInterval = 5 * time.Second

// Timer fires a callback on a fixed interval while started.
//
// The hosting view owns the Timer. Stop is synchronous: once it returns, the callback
// will not run again for that run, even for a tick the ticker already delivered.
// Close is the unmount path; a closed Timer never starts again.
//
// The callback runs on the Timer's goroutine while the Timer's lock is held, so it must be
// quick and must not call back into the Timer.
type Timer struct {
	clock    clockwork.Clock
	interval time.Duration
	onTick   func()

	mu      sync.Mutex
	gen     uint64
	running bool
	closed  bool
	ticker  clockwork.Ticker
	stop    chan struct{}
	wg      sync.WaitGroup
}

// New creates a stopped timer. A non-positive interval falls back to DefaultInterval.
func New(clock clockwork.Clock, interval time.Duration, onTick func()) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Timer{
		clock:    clock,
		interval: interval,
		onTick:   onTick,
	}
}

// Interval returns the tick period
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Start begins ticking. It is a no-op when already running or closed.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running || t.closed {
		return
	}
	t.gen++
	t.running = true
	t.ticker = t.clock.NewTicker(t.interval)
	t.stop = make(chan struct{})

	t.wg.Add(1)
	go t.loop(t.gen, t.ticker, t.stop)
}

// Stop cancels the current run and waits for its goroutine to exit
func (t *Timer) Stop() {
	t.mu.Lock()
	t.halt()
	t.mu.Unlock()

	t.wg.Wait()
}

// Close stops the timer for good
func (t *Timer) Close() {
	t.mu.Lock()
	t.closed = true
	t.halt()
	t.mu.Unlock()

	t.wg.Wait()
}

// Running reports whether the timer is currently ticking
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Closed reports whether Close has been called
func (t *Timer) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// halt must be called with mu held
func (t *Timer) halt() {
	if !t.running {
		return
	}
	t.running = false
	t.gen++ // invalidates ticks already in flight
	t.ticker.Stop()
	close(t.stop)
	t.ticker = nil
	t.stop = nil
}

func (t *Timer) loop(gen uint64, ticker clockwork.Ticker, stop <-chan struct{}) {
	defer t.wg.Done()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			t.fire(gen)
		}
	}
}

func (t *Timer) fire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || !t.running || t.gen != gen {
		return
	}
	if t.onTick != nil {
		t.onTick()
	}
}
