package breathing

// Primary button labels.
const (
	LabelStart   = "Start"
	LabelStop    = "Stop"
	LabelRestart = "Restart"
)

// State is the runtime state of one exercise session.
type State struct {
	Running     bool
	PhaseIndex  int
	SecondsLeft int
	CyclesLeft  int
}

// New validates the program and returns its initial, stopped state.
func New(p Program) (State, error) {
	if err := p.Validate(); err != nil {
		return State{}, err
	}
	return initial(p), nil
}

func initial(p Program) State {
	if len(p.Phases) == 0 {
		return State{}
	}
	return State{
		PhaseIndex:  0,
		SecondsLeft: p.Phases[0].Seconds,
		CyclesLeft:  p.TotalCycles,
	}
}

// Toggle pauses a running timer in place. A stopped timer resumes from
// where it was, or restarts from the first phase if it had completed.
func Toggle(s State, p Program) State {
	if s.Running {
		s.Running = false
		return s
	}
	if s.CyclesLeft == 0 {
		s = initial(p)
	}
	s.Running = true
	return s
}

// Reset returns the program's initial state, stopped.
func Reset(p Program) State {
	return initial(p)
}

// Tick advances a running timer by one second. Reaching zero seconds
// resolves the phase boundary in the same tick: the next phase, the next
// cycle, or completion. Ticking a stopped timer returns it unchanged.
func Tick(s State, p Program) State {
	if !s.Running {
		return s
	}
	if s.CyclesLeft <= 0 {
		s.Running = false
		return s
	}

	if s.SecondsLeft > 0 {
		s.SecondsLeft--
	}
	if s.SecondsLeft > 0 {
		return s
	}

	last := len(p.Phases) - 1
	switch {
	case s.PhaseIndex < last:
		s.PhaseIndex++
		s.SecondsLeft = p.Phases[s.PhaseIndex].Seconds
	case s.CyclesLeft == 1:
		s.CyclesLeft = 0
		s.Running = false
	default:
		s.CyclesLeft--
		s.PhaseIndex = 0
		s.SecondsLeft = p.Phases[0].Seconds
	}
	return s
}

// Done reports whether every cycle has been completed.
func Done(s State) bool {
	return s.CyclesLeft <= 0
}

// CurrentPhase returns the phase the timer is in.
func CurrentPhase(s State, p Program) Phase {
	if s.PhaseIndex < 0 || s.PhaseIndex >= len(p.Phases) {
		return Phase{}
	}
	return p.Phases[s.PhaseIndex]
}

// CurrentCycle returns the 1-based cycle number for display. A completed
// timer reports the final cycle.
func CurrentCycle(s State, p Program) int {
	if s.CyclesLeft <= 0 {
		return p.TotalCycles
	}
	return p.TotalCycles - s.CyclesLeft + 1
}

// PrimaryLabel returns the label for the start/stop control.
func PrimaryLabel(s State) string {
	switch {
	case s.Running:
		return LabelStop
	case s.CyclesLeft == 0:
		return LabelRestart
	default:
		return LabelStart
	}
}

// Elapsed returns the number of seconds of practice completed so far.
func Elapsed(s State, p Program) int {
	if Done(s) {
		return p.TotalSeconds()
	}
	done := (p.TotalCycles - s.CyclesLeft) * p.CycleSeconds()
	for i := 0; i < s.PhaseIndex && i < len(p.Phases); i++ {
		done += p.Phases[i].Seconds
	}
	return done + CurrentPhase(s, p).Seconds - s.SecondsLeft
}

// Progress returns the completed fraction of the exercise in [0, 1].
func Progress(s State, p Program) float64 {
	total := p.TotalSeconds()
	if total <= 0 {
		return 0
	}
	return float64(Elapsed(s, p)) / float64(total)
}

// CyclesCompleted returns the number of full cycles finished.
func CyclesCompleted(s State, p Program) int {
	if Done(s) {
		return p.TotalCycles
	}
	return p.TotalCycles - s.CyclesLeft
}
