package autoplay

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"coursepage/internal/carousel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const interval = 5 * time.Second

func newCountingTimer(t *testing.T) (*Timer, clockwork.FakeClock, *atomic.Int32) {
	t.Helper()
	fc := clockwork.NewFakeClock()
	var ticks atomic.Int32
	timer := New(fc, interval, func() { ticks.Add(1) })
	t.Cleanup(timer.Close)
	return timer, fc, &ticks
}

// advance moves the fake clock one interval and waits for the tick to land
func advance(t *testing.T, fc clockwork.FakeClock, ticks *atomic.Int32, want int32) {
	t.Helper()
	fc.Advance(interval)
	require.Eventually(t, func() bool { return ticks.Load() == want },
		time.Second, time.Millisecond, "expected %d ticks", want)
}

// settle gives a wrongly delivered tick time to show up
func settle() {
	time.Sleep(20 * time.Millisecond)
}

func TestNewDefaultsInterval(t *testing.T) {
	timer := New(clockwork.NewFakeClock(), 0, nil)
	assert.Equal(t, DefaultInterval, timer.Interval())
	assert.Equal(t, 5*time.Second, DefaultInterval)
}

func TestTimerTicksWhileRunning(t *testing.T) {
	timer, fc, ticks := newCountingTimer(t)
	timer.Start()
	require.True(t, timer.Running())

	advance(t, fc, ticks, 1)
	advance(t, fc, ticks, 2)
	advance(t, fc, ticks, 3)
}

func TestTimerDoesNotTickBeforeInterval(t *testing.T) {
	timer, fc, ticks := newCountingTimer(t)
	timer.Start()

	fc.Advance(interval - time.Millisecond)
	settle()
	assert.Equal(t, int32(0), ticks.Load())
}

func TestStopIsImmediate(t *testing.T) {
	timer, fc, ticks := newCountingTimer(t)
	timer.Start()
	advance(t, fc, ticks, 1)

	timer.Stop()
	assert.False(t, timer.Running())
	for i := 0; i < 5; i++ {
		fc.Advance(interval)
	}
	settle()
	assert.Equal(t, int32(1), ticks.Load())
}

func TestStartAfterStopResumes(t *testing.T) {
	timer, fc, ticks := newCountingTimer(t)
	timer.Start()
	timer.Stop()
	timer.Start()

	advance(t, fc, ticks, 1)
}

func TestStartTwiceIsNoop(t *testing.T) {
	timer, fc, ticks := newCountingTimer(t)
	timer.Start()
	timer.Start()

	advance(t, fc, ticks, 1)
	settle()
	assert.Equal(t, int32(1), ticks.Load(), "a second Start must not spawn a second ticker")
}

func TestCloseThenStartIsNoop(t *testing.T) {
	timer, fc, ticks := newCountingTimer(t)
	timer.Start()
	timer.Close()
	timer.Start()

	assert.True(t, timer.Closed())
	assert.False(t, timer.Running())
	fc.Advance(10 * interval)
	settle()
	assert.Equal(t, int32(0), ticks.Load())
}

func TestStaleGenerationIsDropped(t *testing.T) {
	timer, _, ticks := newCountingTimer(t)
	timer.Start()

	timer.mu.Lock()
	stale := timer.gen
	timer.mu.Unlock()

	timer.Stop()
	timer.Start()

	// a tick the old run had already received when Stop ran
	timer.fire(stale)
	assert.Equal(t, int32(0), ticks.Load())
}

func newDriver(t *testing.T, n int) (*Driver, clockwork.FakeClock, chan Tick) {
	t.Helper()
	ctrl, err := carousel.New(n)
	require.NoError(t, err)

	fc := clockwork.NewFakeClock()
	ticks := make(chan Tick, 16)
	d := NewDriver(ctrl, Options{Clock: fc, Interval: interval}, func(tick Tick) {
		select {
		case ticks <- tick:
		default:
		}
	})
	t.Cleanup(d.Unmount)
	return d, fc, ticks
}

// pump feeds every delivered tick back to the driver, like the view's update loop does
func pump(d *Driver, ticks chan Tick) int {
	moved := 0
	for {
		select {
		case tick := <-ticks:
			if d.HandleTick(tick) {
				moved++
			}
		default:
			return moved
		}
	}
}

func TestDriverAutoplayAdvances(t *testing.T) {
	d, fc, ticks := newDriver(t, 5)
	d.Mount()

	fc.Advance(interval)
	require.Eventually(t, func() bool { return len(ticks) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, 1, pump(d, ticks))
	assert.Equal(t, 1, d.Controller().ActiveIndex())
}

func TestDriverUnmountRightAfterMountNeverAdvances(t *testing.T) {
	d, fc, ticks := newDriver(t, 5)
	d.Mount()
	d.Unmount()

	for i := 0; i < 10; i++ {
		fc.Advance(interval)
	}
	settle()
	assert.Equal(t, 0, pump(d, ticks))
	assert.Equal(t, 0, d.Controller().ActiveIndex())
	assert.False(t, d.Timer().Running())
}

func TestDriverDropsQueuedTickAfterUnmount(t *testing.T) {
	d, fc, ticks := newDriver(t, 5)
	d.Mount()

	fc.Advance(interval)
	require.Eventually(t, func() bool { return len(ticks) == 1 }, time.Second, time.Millisecond)

	d.Unmount()
	assert.Equal(t, 0, pump(d, ticks), "a tick queued before unmount must not advance")
	assert.Equal(t, 0, d.Controller().ActiveIndex())
}

func TestDriverHoverStopsTimerImmediately(t *testing.T) {
	d, fc, ticks := newDriver(t, 5)
	d.Mount()

	d.SetHover(true)
	assert.True(t, d.Controller().IsPaused())
	assert.False(t, d.Timer().Running())

	fc.Advance(3 * interval)
	settle()
	assert.Equal(t, 0, pump(d, ticks))

	d.SetHover(false)
	assert.False(t, d.Controller().IsPaused())
	assert.True(t, d.Timer().Running())
	fc.Advance(interval)
	require.Eventually(t, func() bool { return len(ticks) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, 1, pump(d, ticks))
}

func TestDriverDropsTickQueuedBeforeHover(t *testing.T) {
	d, fc, ticks := newDriver(t, 5)
	d.Mount()

	fc.Advance(interval)
	require.Eventually(t, func() bool { return len(ticks) == 1 }, time.Second, time.Millisecond)

	d.SetHover(true)
	assert.Equal(t, 0, pump(d, ticks))
	assert.Equal(t, 0, d.Controller().ActiveIndex())
}

func TestDriverIgnoresTicksFromOtherDrivers(t *testing.T) {
	d, _, _ := newDriver(t, 5)
	other, _, _ := newDriver(t, 5)
	d.Mount()

	assert.False(t, d.HandleTick(Tick{source: other}))
	assert.False(t, d.HandleTick(Tick{}))
	assert.True(t, d.HandleTick(Tick{source: d}))
	assert.Equal(t, 1, d.Controller().ActiveIndex())
}

func TestDriverDisabledNeverStarts(t *testing.T) {
	ctrl, err := carousel.New(3)
	require.NoError(t, err)
	d := NewDriver(ctrl, Options{Clock: clockwork.NewFakeClock(), Disabled: true}, nil)
	defer d.Unmount()

	d.Mount()
	assert.False(t, d.Timer().Running())
	assert.True(t, d.HandleTick(Tick{source: d}), "manual ticks still work when autoplay is off")
}

func TestDriverCannotRemount(t *testing.T) {
	d, _, _ := newDriver(t, 3)
	d.Mount()
	d.Unmount()
	d.Mount()

	assert.False(t, d.Mounted())
	assert.False(t, d.Timer().Running())
}
