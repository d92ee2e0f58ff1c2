// Package engine drives the per-frame render loop over a reconciled scene.
//
// The loop is the only recurring asynchronous actor in the framework: it
// reads the native tree each tick and never mutates it. Reconciliation
// happens synchronously elsewhere, on the same cooperative schedule.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-scenic/scenic/pkg/errors"
	"github.com/go-scenic/scenic/pkg/scene"
)

// RenderFunc draws one frame of the scene through the given camera.
type RenderFunc func(root *scene.Scene, camera scene.Camera) error

// Loop repeatedly invokes a render callback against a scene/camera pair,
// once per frame tick, until stopped.
//
// At most one tick is in flight at a time: the next tick is scheduled only
// after the render callback returns, so a slow frame delays rather than
// overlaps its successor. Stop is idempotent and leaves no dangling tick.
type Loop struct {
	pacer  FramePacer
	render RenderFunc

	mu         sync.Mutex
	root       *scene.Scene
	camera     scene.Camera
	running    bool
	generation uint64
	frames     uint64

	errs chan error
}

// NewLoop creates a stopped loop over the given pacer and render callback.
func NewLoop(pacer FramePacer, render RenderFunc) *Loop {
	return &Loop{
		pacer:  pacer,
		render: render,
		errs:   make(chan error, 16),
	}
}

// SetScene points the loop at the scene root and camera to render. Safe to
// call while the loop runs; the next tick picks the new pair up.
func (l *Loop) SetScene(root *scene.Scene, camera scene.Camera) {
	l.mu.Lock()
	l.root = root
	l.camera = camera
	l.mu.Unlock()
}

// Start begins scheduling ticks. Starting a running loop is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return
	}
	l.running = true
	l.generation++
	generation := l.generation
	l.pacer.Schedule(func() { l.tick(generation) })
}

// Stop cancels the pending tick. Idempotent: stopping a stopped loop does
// nothing, and a tick scheduled before Stop sees the stale generation and
// dies without rendering.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	l.running = false
	l.generation++
}

// Running reports whether the loop is scheduling ticks.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Frames returns the number of completed render ticks.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Errors exposes render-callback failures. A failed frame is reported here
// and to the global error handler; the loop keeps scheduling regardless.
// The channel is buffered; unread errors beyond the buffer are dropped.
func (l *Loop) Errors() <-chan error {
	return l.errs
}

func (l *Loop) tick(generation uint64) {
	l.mu.Lock()
	if !l.running || generation != l.generation {
		l.mu.Unlock()
		return
	}
	root := l.root
	camera := l.camera
	frame := l.frames
	l.mu.Unlock()

	if root != nil && camera != nil {
		if err := l.renderFrame(root, camera, frame); err != nil {
			tickErr := &errors.TickError{Frame: frame, Err: err}
			errors.Report(&errors.SceneError{
				Op:   "engine.tick",
				Kind: errors.KindRender,
				Err:  tickErr,
			})
			select {
			case l.errs <- tickErr:
			default:
			}
		}
	}

	l.mu.Lock()
	l.frames++
	if l.running && generation == l.generation {
		l.pacer.Schedule(func() { l.tick(generation) })
	}
	l.mu.Unlock()
}

// renderFrame invokes the callback with panic recovery so a bad frame
// cannot kill the scheduling loop.
func (l *Loop) renderFrame(root *scene.Scene, camera scene.Camera, frame uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "engine.renderFrame",
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
			err = fmt.Errorf("render callback panicked: %v", r)
		}
	}()
	if l.render == nil {
		return nil
	}
	return l.render(root, camera)
}
