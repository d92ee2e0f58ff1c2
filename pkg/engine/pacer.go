package engine

import (
	"sync"
	"time"
)

// FramePacer is the host's frame-pacing primitive: a "call me back on the
// next tick" capability. The loop schedules exactly one callback per frame
// and suspends between ticks; pacers never call back more than once per
// Schedule.
type FramePacer interface {
	// Schedule requests a single callback on the next tick. A later call
	// before the tick fires replaces the pending callback.
	Schedule(callback func())
}

// DefaultFrameInterval approximates a 60 Hz display.
const DefaultFrameInterval = time.Second / 60

// TickerPacer paces frames off a wall-clock ticker. It stands in for a
// platform display link when none is available.
type TickerPacer struct {
	interval time.Duration

	mu      sync.Mutex
	pending func()
	stop    chan struct{}
	started bool
}

// NewTickerPacer creates a pacer firing at the given interval.
// Non-positive intervals fall back to DefaultFrameInterval.
func NewTickerPacer(interval time.Duration) *TickerPacer {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerPacer{interval: interval, stop: make(chan struct{})}
}

// Schedule requests a callback on the next ticker fire.
func (p *TickerPacer) Schedule(callback func()) {
	p.mu.Lock()
	p.pending = callback
	if !p.started {
		p.started = true
		go p.run()
	}
	p.mu.Unlock()
}

func (p *TickerPacer) run() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.mu.Lock()
			callback := p.pending
			p.pending = nil
			p.mu.Unlock()
			if callback != nil {
				callback()
			}
		}
	}
}

// Close stops the pacer's goroutine. Pending callbacks are dropped.
// Safe to call more than once.
func (p *TickerPacer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = nil
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
}

// ManualPacer is a test pacer: scheduled callbacks run only when Fire is
// called, giving tests full control over frame timing.
type ManualPacer struct {
	mu      sync.Mutex
	pending func()
}

// NewManualPacer creates a manual pacer with no pending tick.
func NewManualPacer() *ManualPacer {
	return &ManualPacer{}
}

// Schedule stores the callback for the next Fire.
func (p *ManualPacer) Schedule(callback func()) {
	p.mu.Lock()
	p.pending = callback
	p.mu.Unlock()
}

// Fire runs the pending callback, if any, and reports whether one ran.
func (p *ManualPacer) Fire() bool {
	p.mu.Lock()
	callback := p.pending
	p.pending = nil
	p.mu.Unlock()
	if callback == nil {
		return false
	}
	callback()
	return true
}

// Pending reports whether a tick is scheduled.
func (p *ManualPacer) Pending() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending != nil
}
