package breathing

import (
	"fmt"
	"sort"
)

// builtins is the fixed set of exercises shipped with the app.
var builtins = []Program{
	{
		ID:      "478",
		Name:    "4-7-8 Breathing",
		Summary: "A slow rhythm that helps the body switch into rest mode.",
		Phases: []Phase{
			{Key: "inhale", Label: "Inhale quietly through your nose", Seconds: 4},
			{Key: "hold", Label: "Hold your breath", Seconds: 7},
			{Key: "exhale", Label: `Exhale through your mouth with a "whoooosh" sound`, Seconds: 8},
		},
		TotalCycles: 4,
		VideoURL:    "https://youtu.be/1Dv-ldGLnIY",
		Guide: `## How to practice

1. Sit with your back straight and rest the tip of your tongue behind your upper front teeth.
2. Exhale completely through your mouth.
3. Inhale quietly through your nose for **4** seconds.
4. Hold your breath for **7** seconds.
5. Exhale through your mouth for **8** seconds.

Start with **4 cycles**. If you feel light-headed, stop and breathe normally.`,
	},
	{
		ID:      "box",
		Name:    "Box Breathing",
		Summary: "Four equal sides: inhale, hold, exhale, hold.",
		Phases: []Phase{
			{Key: "inhale", Label: "Inhale (4 seconds)", Seconds: 4},
			{Key: "hold1", Label: "Hold (4 seconds)", Seconds: 4},
			{Key: "exhale", Label: "Exhale (4 seconds)", Seconds: 4},
			{Key: "hold2", Label: "Hold (4 seconds)", Seconds: 4},
		},
		TotalCycles: 6,
		Guide: `## How to practice

- Inhale gently through your nose for 4 seconds.
- Hold your breath for 4 seconds.
- Exhale slowly through your mouth for 4 seconds.
- Hold again for 4 seconds.

If 4 seconds feels too long at first, start with 3-3-3-3 and build up.`,
	},
	{
		ID:      "diaphragmatic",
		Name:    "Diaphragmatic (Belly) Breathing",
		Summary: "Breathe low into the belly instead of the chest.",
		Phases: []Phase{
			{Key: "inhale", Label: "Inhale through your nose, belly rising", Seconds: 4},
			{Key: "exhale", Label: "Exhale gently through your mouth", Seconds: 6},
		},
		TotalCycles: 10,
		VideoURL:    "https://www.youtube.com/watch?v=9jpchJcKivk",
		Guide: `## How to practice

- Sit or lie down comfortably.
- Place one hand on your chest and the other on your stomach.
- Breathe in through your nose so the hand on your belly rises while your chest stays still.
- Exhale slowly and feel the belly fall.

Useful before an exam, a game or a difficult conversation.`,
	},
	{
		ID:      "counting",
		Name:    "Counting Breaths",
		Summary: "A steady, rhythmic count to anchor wandering thoughts.",
		Phases: []Phase{
			{Key: "inhale", Label: "Inhale, counting 1 to 5", Seconds: 5},
			{Key: "exhale", Label: "Exhale, counting 1 to 7", Seconds: 7},
		},
		TotalCycles: 8,
		VideoURL:    "https://www.youtube.com/watch?v=wzDB1IgU5RE",
		Guide: `## How to practice

- Sit comfortably with your back supported.
- Inhale through your nose, counting 1 to 5 in your mind.
- Exhale through your mouth, counting 1 to 7.
- Focus on the sound and rhythm of each breath.

Repeat for 5 to 10 calm, unhurried rounds.`,
	},
	{
		ID:      "nostril",
		Name:    "Alternate Nostril Breathing",
		Summary: "Balance the breath between left and right.",
		Phases: []Phase{
			{Key: "inhale-left", Label: "Close the right nostril, inhale through the left", Seconds: 4},
			{Key: "hold-left", Label: "Close both nostrils and pause", Seconds: 2},
			{Key: "exhale-right", Label: "Exhale through the right nostril", Seconds: 4},
			{Key: "inhale-right", Label: "Inhale through the right nostril", Seconds: 4},
			{Key: "hold-right", Label: "Close both nostrils and pause", Seconds: 2},
			{Key: "exhale-left", Label: "Exhale through the left nostril", Seconds: 4},
		},
		TotalCycles: 6,
		VideoURL:    "https://youtu.be/a7re4bKxB3A",
		Guide: `## How to practice

- Sit with your spine tall and shoulders relaxed.
- Always start and end with the **left** nostril.
- Keep the breath smooth and quiet; never force it.

Repeat the left and right pattern for 6 to 10 rounds, then rest.`,
	},
	{
		ID:      "guided",
		Name:    "Guided Visualization Breathing",
		Summary: "Pair each breath with a calming image.",
		Phases: []Phase{
			{Key: "inhale", Label: "Breathe in a calm blue light", Seconds: 4},
			{Key: "hold", Label: "Let the light spread through your body", Seconds: 2},
			{Key: "exhale", Label: "Breathe out the stress like dark smoke", Seconds: 6},
		},
		TotalCycles: 10,
		VideoURL:    "https://youtu.be/enJyOTvEn4M",
		Guide: `## How to practice

1. Close your eyes and take a slow, deep breath in.
2. Imagine a calm blue light entering your chest and spreading through your body.
3. Exhale slowly, picturing stress leaving your body as dark smoke.

If you feel dizzy or spaced out, open your eyes, breathe normally and re-orient yourself in the room.`,
	},
}

// Catalog holds the programs available to the user, keyed by ID.
type Catalog struct {
	order    []string
	programs map[string]Program
}

// DefaultCatalog returns a catalog with the built-in programs.
func DefaultCatalog() *Catalog {
	c := &Catalog{programs: make(map[string]Program)}
	for _, p := range builtins {
		c.order = append(c.order, p.ID)
		c.programs[p.ID] = p
	}
	return c
}

// Add validates and registers a program. A program with an existing ID
// replaces it in place.
func (c *Catalog) Add(p Program) error {
	if p.ID == "" {
		return &ConfigError{Field: "id", Reason: "must not be empty"}
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := c.programs[p.ID]; !ok {
		c.order = append(c.order, p.ID)
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	c.programs[p.ID] = p
	return nil
}

// Lookup returns the program with the given ID.
func (c *Catalog) Lookup(id string) (Program, error) {
	p, ok := c.programs[id]
	if !ok {
		return Program{}, fmt.Errorf("%w: %q", ErrUnknownProgram, id)
	}
	return p, nil
}

// All returns programs in registration order.
func (c *Catalog) All() []Program {
	out := make([]Program, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.programs[id])
	}
	return out
}

// IDs returns the sorted program IDs.
func (c *Catalog) IDs() []string {
	ids := append([]string(nil), c.order...)
	sort.Strings(ids)
	return ids
}

// Len returns the number of programs.
func (c *Catalog) Len() int {
	return len(c.order)
}
