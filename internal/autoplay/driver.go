package autoplay

import (
	"time"

	"github.com/jonboulle/clockwork"

	"coursepage/internal/carousel"
)

// Tick is delivered to the hosting view each time the timer fires.
// It remembers which Driver produced it so ticks from an unmounted view can be told apart.
type Tick struct {
	source *Driver
}

// Options configures a Driver
type Options struct {
	Clock    clockwork.Clock
	Interval time.Duration
	Disabled bool // never start the timer; manual navigation still works
}

// Driver binds one carousel controller to an autoplay Timer for a single mount of a view.
// A Driver cannot be remounted after Unmount; build a new one for new content.
type Driver struct {
	ctrl     *carousel.Controller
	timer    *Timer
	disabled bool
	mounted  bool
	hovering bool
}

// NewDriver creates an unmounted driver. notify is called from the timer goroutine and must not block.
func NewDriver(ctrl *carousel.Controller, opts Options, notify func(Tick)) *Driver {
	d := &Driver{
		ctrl:     ctrl,
		disabled: opts.Disabled,
	}
	d.timer = New(opts.Clock, opts.Interval, func() {
		if notify != nil {
			notify(Tick{source: d})
		}
	})
	return d
}

// Controller returns the driven carousel
func (d *Driver) Controller() *carousel.Controller {
	return d.ctrl
}

// Timer returns the underlying timer
func (d *Driver) Timer() *Timer {
	return d.timer
}

// Mount starts autoplay unless the view is hovered or autoplay is disabled
func (d *Driver) Mount() {
	if d.timer.Closed() {
		return
	}
	d.mounted = true
	d.sync()
}

// Unmount cancels the timer unconditionally
func (d *Driver) Unmount() {
	d.mounted = false
	d.timer.Close()
}

// Mounted reports whether the view is live
func (d *Driver) Mounted() bool {
	return d.mounted
}

// SetHover pauses the carousel and stops the timer in one step when hovering starts,
// and resumes both when it ends
func (d *Driver) SetHover(hovering bool) {
	d.hovering = hovering
	d.ctrl.SetPaused(hovering)
	d.sync()
}

// Hovering reports whether the view is currently hovered or focused
func (d *Driver) Hovering() bool {
	return d.hovering
}

// HandleTick advances the carousel if the tick belongs to this live, unpaused mount.
// It reports whether the carousel moved.
func (d *Driver) HandleTick(t Tick) bool {
	if t.source != d || !d.mounted || d.ctrl.IsPaused() {
		return false
	}
	d.ctrl.Advance()
	return true
}

func (d *Driver) sync() {
	if d.mounted && !d.hovering && !d.disabled {
		d.timer.Start()
		return
	}
	d.timer.Stop()
}
