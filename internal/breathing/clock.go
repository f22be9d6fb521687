package breathing

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickMsg is delivered once per second to a running Clock.
type TickMsg struct {
	Session string
	Gen     int
}

// Clock drives a State from the Bubble Tea event loop. Each Clock owns a
// session id and a generation; a tick whose generation no longer matches
// is dropped, so pausing, resetting or discarding the clock cancels any
// tick already in flight.
type Clock struct {
	Program Program
	State   State

	session  string
	gen      int
	interval time.Duration
}

// NewClock returns a stopped clock for the program.
func NewClock(session string, p Program) (*Clock, error) {
	s, err := New(p)
	if err != nil {
		return nil, err
	}
	return &Clock{Program: p, State: s, session: session, interval: time.Second}, nil
}

// Session returns the clock's session id.
func (c *Clock) Session() string { return c.session }

// Gen returns the current generation.
func (c *Clock) Gen() int { return c.gen }

// SetInterval changes the tick period. Used by tests and demos.
func (c *Clock) SetInterval(d time.Duration) { c.interval = d }

// Toggle flips the running state and returns the command that schedules
// the next tick, if any.
func (c *Clock) Toggle() tea.Cmd {
	c.State = Toggle(c.State, c.Program)
	c.gen++
	if c.State.Running {
		return c.schedule()
	}
	return nil
}

// Reset stops the clock and returns it to the first phase.
func (c *Clock) Reset() {
	c.State = Reset(c.Program)
	c.gen++
}

// Stop cancels any pending tick without changing the position.
func (c *Clock) Stop() {
	c.State.Running = false
	c.gen++
}

// Update applies a tick addressed to this clock. It reports whether the
// message was accepted and returns the command for the next tick.
func (c *Clock) Update(msg TickMsg) (bool, tea.Cmd) {
	if msg.Session != c.session || msg.Gen != c.gen || !c.State.Running {
		return false, nil
	}
	c.State = Tick(c.State, c.Program)
	if !c.State.Running {
		return true, nil
	}
	return true, c.schedule()
}

func (c *Clock) schedule() tea.Cmd {
	session, gen := c.session, c.gen
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return TickMsg{Session: session, Gen: gen}
	})
}
