package effects

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodicStopsWithinOneTick(t *testing.T) {
	p := periodic{base: base{model: "test"}, interval: 20 * time.Millisecond}
	var ticks atomic.Int64
	p.frame = func() error {
		ticks.Add(1)
		return nil
	}

	require.NoError(t, p.Start())

	deadline := time.Now().Add(time.Second)
	for ticks.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	require.GreaterOrEqual(t, ticks.Load(), int64(2), "loop should tick repeatedly")

	start := time.Now()
	p.Stop()
	assert.Less(t, time.Since(start), 500*time.Millisecond, "stop must return within about one tick")

	after := ticks.Load()
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, after, ticks.Load(), "no ticks after stop")
}

func TestPeriodicRunsSetupOnce(t *testing.T) {
	p := periodic{base: base{model: "test"}, interval: 10 * time.Millisecond}
	var setups, ticks atomic.Int64
	p.setup = func() { setups.Add(1) }
	p.frame = func() error {
		ticks.Add(1)
		return nil
	}

	require.NoError(t, p.Start())
	deadline := time.Now().Add(time.Second)
	for ticks.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	p.Stop()
	assert.Equal(t, int64(1), setups.Load())
}

func TestPeriodicFrameErrorTerminatesLoop(t *testing.T) {
	p := periodic{base: base{model: "test"}, interval: 5 * time.Millisecond}
	var ticks atomic.Int64
	p.frame = func() error {
		ticks.Add(1)
		return errors.New("transfer fault")
	}

	require.NoError(t, p.Start())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), ticks.Load(), "loop must die on the first fault")

	// Stop after a self-terminated loop must not hang.
	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked after loop terminated itself")
	}
}

func TestStopWithoutStart(t *testing.T) {
	p := periodic{base: base{model: "test"}, interval: time.Millisecond}
	assert.NotPanics(t, func() { p.Stop() })
}
