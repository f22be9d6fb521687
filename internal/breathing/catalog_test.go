package breathing

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultCatalog_Builtins(t *testing.T) {
	c := DefaultCatalog()
	tests := []struct {
		id      string
		pattern string
		cycles  int
	}{
		{"478", "4-7-8", 4},
		{"box", "4-4-4-4", 6},
		{"diaphragmatic", "4-6", 10},
		{"counting", "5-7", 8},
		{"nostril", "4-2-4-4-2-4", 6},
		{"guided", "4-2-6", 10},
	}
	if c.Len() != len(tests) {
		t.Fatalf("Len = %d, want %d", c.Len(), len(tests))
	}
	for _, tt := range tests {
		p, err := c.Lookup(tt.id)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.id, err)
		}
		if p.Pattern() != tt.pattern {
			t.Errorf("%s pattern = %q, want %q", tt.id, p.Pattern(), tt.pattern)
		}
		if p.TotalCycles != tt.cycles {
			t.Errorf("%s cycles = %d, want %d", tt.id, p.TotalCycles, tt.cycles)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("%s invalid: %v", tt.id, err)
		}
		if strings.TrimSpace(p.Guide) == "" {
			t.Errorf("%s has no guide", tt.id)
		}
	}
}

func TestCatalog_LookupUnknown(t *testing.T) {
	_, err := DefaultCatalog().Lookup("nope")
	if !errors.Is(err, ErrUnknownProgram) {
		t.Errorf("err = %v, want ErrUnknownProgram", err)
	}
}

func TestCatalog_AddOverridesInPlace(t *testing.T) {
	c := DefaultCatalog()
	before := c.All()

	err := c.Add(Program{ID: "box", Phases: []Phase{{Key: "in", Seconds: 3}}, TotalCycles: 2})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	after := c.All()
	if len(after) != len(before) {
		t.Fatalf("len = %d, want %d", len(after), len(before))
	}
	if after[1].ID != "box" || after[1].TotalCycles != 2 {
		t.Errorf("box not replaced in place: %+v", after[1])
	}
	if after[1].Name != "box" {
		t.Errorf("Name = %q, want id fallback", after[1].Name)
	}
}

func TestCatalog_AddRejectsInvalid(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Add(Program{Phases: []Phase{{Seconds: 1}}, TotalCycles: 1}); err == nil {
		t.Error("expected error for empty id")
	}
	var cfgErr *ConfigError
	if err := c.Add(Program{ID: "bad", TotalCycles: 1}); !errors.As(err, &cfgErr) {
		t.Errorf("err = %v, want *ConfigError", err)
	}
	if c.Len() != 6 {
		t.Errorf("Len = %d, want 6", c.Len())
	}
}

func TestCatalog_IDsSorted(t *testing.T) {
	ids := DefaultCatalog().IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("IDs not sorted: %v", ids)
		}
	}
}
