package breathing

import (
	"errors"
	"fmt"
)

// ErrUnknownProgram is returned when a program ID is not in the catalog.
var ErrUnknownProgram = errors.New("unknown breathing program")

// Phase is one named segment of a breathing cycle.
type Phase struct {
	Key     string `yaml:"key"`
	Label   string `yaml:"label"`
	Seconds int    `yaml:"seconds"`
}

// Program is the static configuration for one breathing exercise.
// The state machine only reads Phases and TotalCycles; the remaining
// fields are for display.
type Program struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Summary     string  `yaml:"summary"`
	Guide       string  `yaml:"guide"`
	VideoURL    string  `yaml:"video_url"`
	Phases      []Phase `yaml:"phases"`
	TotalCycles int     `yaml:"cycles"`
}

// ConfigError reports a program that cannot drive a timer.
type ConfigError struct {
	Program string
	Field   string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Program == "" {
		return fmt.Sprintf("invalid breathing program: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid breathing program %q: %s %s", e.Program, e.Field, e.Reason)
}

// Validate checks that the program has at least one phase, that every
// phase lasts a positive number of seconds, and that it repeats at least once.
func (p Program) Validate() error {
	if len(p.Phases) == 0 {
		return &ConfigError{Program: p.ID, Field: "phases", Reason: "must not be empty"}
	}
	for i, ph := range p.Phases {
		if ph.Seconds <= 0 {
			return &ConfigError{
				Program: p.ID,
				Field:   fmt.Sprintf("phases[%d].seconds", i),
				Reason:  fmt.Sprintf("must be positive, got %d", ph.Seconds),
			}
		}
	}
	if p.TotalCycles <= 0 {
		return &ConfigError{
			Program: p.ID,
			Field:   "cycles",
			Reason:  fmt.Sprintf("must be positive, got %d", p.TotalCycles),
		}
	}
	return nil
}

// CycleSeconds returns the length of one full pass through the phases.
func (p Program) CycleSeconds() int {
	total := 0
	for _, ph := range p.Phases {
		total += ph.Seconds
	}
	return total
}

// TotalSeconds returns the length of the whole exercise.
func (p Program) TotalSeconds() int {
	return p.CycleSeconds() * p.TotalCycles
}

// WithCycles returns a copy of the program repeating n times.
func (p Program) WithCycles(n int) Program {
	out := p
	out.Phases = append([]Phase(nil), p.Phases...)
	out.TotalCycles = n
	return out
}

// Pattern renders the phase durations, e.g. "4-7-8".
func (p Program) Pattern() string {
	s := ""
	for i, ph := range p.Phases {
		if i > 0 {
			s += "-"
		}
		s += fmt.Sprintf("%d", ph.Seconds)
	}
	return s
}
