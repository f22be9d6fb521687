package breathing

import (
	"context"
	"sync"
	"time"
)

// Event is reported to a Runner's observer after every state change.
type Event struct {
	State       State
	Phase       Phase
	Cycle       int
	PhaseChange bool
	Done        bool
}

// Runner drives a State from a background goroutine using a time.Ticker.
// All state transitions are serialized through mu.
type Runner struct {
	program  Program
	interval time.Duration
	observe  func(Event)

	mu    sync.Mutex
	state State
	wake  chan struct{}
	quit  chan struct{}
	once  sync.Once
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithInterval overrides the one-second tick period.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) { r.interval = d }
}

// WithObserver registers a callback for state changes. It is called
// without the runner lock held, from the runner goroutine for ticks and
// from the caller for Toggle and Reset.
func WithObserver(fn func(Event)) RunnerOption {
	return func(r *Runner) { r.observe = fn }
}

// NewRunner returns a stopped runner for the program.
func NewRunner(p Program, opts ...RunnerOption) (*Runner, error) {
	s, err := New(p)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		program:  p,
		interval: time.Second,
		state:    s,
		wake:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// State returns a snapshot of the current state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Toggle starts, pauses, resumes or restarts the timer.
func (r *Runner) Toggle() {
	r.mu.Lock()
	r.state = Toggle(r.state, r.program)
	ev := r.event(false)
	r.mu.Unlock()
	r.notify(ev)
	r.poke()
}

// Reset stops the timer and returns it to the first phase.
func (r *Runner) Reset() {
	r.mu.Lock()
	r.state = Reset(r.program)
	ev := r.event(true)
	r.mu.Unlock()
	r.notify(ev)
	r.poke()
}

// Stop ends Run. It is safe to call more than once.
func (r *Runner) Stop() {
	r.once.Do(func() { close(r.quit) })
}

// Run ticks the timer until it completes, Stop is called or ctx is
// cancelled. The ticker only exists while the timer is running.
func (r *Runner) Run(ctx context.Context) error {
	var (
		ticker *time.Ticker
		tickC  <-chan time.Time
	)
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tickC = nil, nil
		}
	}
	defer stopTicker()

	arm := func() {
		running := r.State().Running
		switch {
		case running && ticker == nil:
			ticker = time.NewTicker(r.interval)
			tickC = ticker.C
		case !running:
			stopTicker()
		}
	}
	arm()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.quit:
			return nil
		case <-r.wake:
			arm()
		case <-tickC:
			r.mu.Lock()
			before := r.state
			r.state = Tick(r.state, r.program)
			ev := r.event(before.PhaseIndex != r.state.PhaseIndex || before.CyclesLeft != r.state.CyclesLeft)
			r.mu.Unlock()
			r.notify(ev)
			if ev.Done {
				return nil
			}
			arm()
		}
	}
}

func (r *Runner) event(phaseChange bool) Event {
	return Event{
		State:       r.state,
		Phase:       CurrentPhase(r.state, r.program),
		Cycle:       CurrentCycle(r.state, r.program),
		PhaseChange: phaseChange,
		Done:        Done(r.state),
	}
}

func (r *Runner) notify(ev Event) {
	if r.observe != nil {
		r.observe(ev)
	}
}

func (r *Runner) poke() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}
