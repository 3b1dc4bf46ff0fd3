package effects

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// periodic is the shared tick loop under the reactive effects. Each Start
// spawns one goroutine that computes and sends a frame, sleeps for the
// configured interval, and checks for cancellation. Stop closes the done
// channel and blocks until the loop observes it; termination latency is
// bounded by one tick interval.
//
// Calling Start twice without Stop spawns a second loop against the same
// devices. That race exists in the hardware protocol's usage model and is
// not guarded here.
type periodic struct {
	base
	interval time.Duration

	// frame computes and sends one tick; an error ends the loop.
	frame func() error
	// setup, if set, runs once before the first frame.
	setup func()

	done chan struct{}
	wg   sync.WaitGroup
}

func (p *periodic) init(model string, cfg Config) {
	p.model = model
	p.interval = cfg.tickInterval()
}

func (p *periodic) Start() error {
	p.done = make(chan struct{})
	p.wg.Add(1)
	go p.loop(p.done)
	return nil
}

func (p *periodic) loop(done chan struct{}) {
	defer p.wg.Done()
	if p.setup != nil {
		p.setup()
	}
	for {
		if err := p.frame(); err != nil {
			log.Error().Err(err).Str("model", p.model).Msg("lighting loop terminated")
			return
		}
		select {
		case <-done:
			return
		case <-time.After(p.interval):
		}
	}
}

func (p *periodic) Stop() {
	if p.done == nil {
		return
	}
	close(p.done)
	p.done = nil
	p.wg.Wait()
}
