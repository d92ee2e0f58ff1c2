package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scenic/scenic/pkg/scene"
)

func testScene() (*scene.Scene, scene.Camera) {
	return scene.NewScene(), scene.NewPerspectiveCamera(60, 1, 0.1, 100)
}

func TestLoopRendersEachTick(t *testing.T) {
	pacer := NewManualPacer()
	frames := 0
	loop := NewLoop(pacer, func(root *scene.Scene, camera scene.Camera) error {
		frames++
		require.NotNil(t, root)
		require.NotNil(t, camera)
		return nil
	})
	loop.SetScene(testScene())

	loop.Start()
	require.True(t, pacer.Pending(), "Start should schedule the first tick")

	for i := 0; i < 3; i++ {
		require.True(t, pacer.Fire())
	}
	assert.Equal(t, 3, frames)
	assert.Equal(t, uint64(3), loop.Frames())
	assert.True(t, pacer.Pending(), "each tick should schedule the next")
}

func TestLoopStopLeavesNoDanglingTick(t *testing.T) {
	pacer := NewManualPacer()
	frames := 0
	loop := NewLoop(pacer, func(*scene.Scene, scene.Camera) error {
		frames++
		return nil
	})
	loop.SetScene(testScene())

	loop.Start()
	loop.Stop()

	// The tick scheduled before Stop is stale and must not render.
	pacer.Fire()
	assert.Equal(t, 0, frames)
	assert.False(t, pacer.Pending(), "stale tick must not reschedule")
}

func TestLoopStopTwiceIsIdempotent(t *testing.T) {
	pacer := NewManualPacer()
	loop := NewLoop(pacer, func(*scene.Scene, scene.Camera) error { return nil })
	loop.SetScene(testScene())

	loop.Start()
	loop.Stop()
	loop.Stop()

	pacer.Fire()
	assert.Equal(t, uint64(0), loop.Frames())
	assert.False(t, loop.Running())
}

func TestLoopRestartsAfterStop(t *testing.T) {
	pacer := NewManualPacer()
	frames := 0
	loop := NewLoop(pacer, func(*scene.Scene, scene.Camera) error {
		frames++
		return nil
	})
	loop.SetScene(testScene())

	loop.Start()
	require.True(t, pacer.Fire())
	loop.Stop()
	loop.Start()
	require.True(t, pacer.Fire())

	assert.Equal(t, 2, frames)
}

func TestLoopStartWhileRunningIsNoOp(t *testing.T) {
	pacer := NewManualPacer()
	loop := NewLoop(pacer, func(*scene.Scene, scene.Camera) error { return nil })
	loop.SetScene(testScene())

	loop.Start()
	loop.Start()
	require.True(t, pacer.Fire())
	assert.Equal(t, uint64(1), loop.Frames())
}

func TestLoopContinuesAfterRenderError(t *testing.T) {
	pacer := NewManualPacer()
	calls := 0
	loop := NewLoop(pacer, func(*scene.Scene, scene.Camera) error {
		calls++
		if calls == 1 {
			return errors.New("device lost")
		}
		return nil
	})
	loop.SetScene(testScene())

	loop.Start()
	require.True(t, pacer.Fire())

	// The failure surfaces on the error channel.
	select {
	case err := <-loop.Errors():
		assert.Contains(t, err.Error(), "device lost")
	default:
		t.Fatal("expected an error on the channel")
	}

	// And the loop keeps scheduling.
	require.True(t, pacer.Pending())
	require.True(t, pacer.Fire())
	assert.Equal(t, 2, calls)
}

func TestLoopRecoversRenderPanic(t *testing.T) {
	pacer := NewManualPacer()
	calls := 0
	loop := NewLoop(pacer, func(*scene.Scene, scene.Camera) error {
		calls++
		if calls == 1 {
			panic("shader exploded")
		}
		return nil
	})
	loop.SetScene(testScene())

	loop.Start()
	require.True(t, pacer.Fire())

	select {
	case err := <-loop.Errors():
		assert.Contains(t, err.Error(), "shader exploded")
	default:
		t.Fatal("expected an error on the channel")
	}
	require.True(t, pacer.Pending(), "panic must not stop the loop")
}

func TestLoopSkipsRenderWithoutScene(t *testing.T) {
	pacer := NewManualPacer()
	rendered := false
	loop := NewLoop(pacer, func(*scene.Scene, scene.Camera) error {
		rendered = true
		return nil
	})

	loop.Start()
	require.True(t, pacer.Fire())
	assert.False(t, rendered)
	// Ticks still count and reschedule while waiting for a scene.
	assert.Equal(t, uint64(1), loop.Frames())
	assert.True(t, pacer.Pending())
}

func TestTickerPacerFires(t *testing.T) {
	pacer := NewTickerPacer(time.Millisecond)
	defer pacer.Close()

	done := make(chan struct{})
	pacer.Schedule(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker pacer never fired")
	}
}

func TestTickerPacerCloseTwice(t *testing.T) {
	pacer := NewTickerPacer(time.Millisecond)
	pacer.Close()
	pacer.Close()
}

func TestManualPacerReplacesPending(t *testing.T) {
	pacer := NewManualPacer()
	first, second := false, false
	pacer.Schedule(func() { first = true })
	pacer.Schedule(func() { second = true })

	require.True(t, pacer.Fire())
	assert.False(t, first)
	assert.True(t, second)
	assert.False(t, pacer.Fire(), "no pending tick after firing")
}
