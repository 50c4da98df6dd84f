package core

import "fmt"

// Size describes the dimensions of a world grid.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Phase enumerates the top-level states of the program.
type Phase int

const (
	// PhaseLoading waits for the biome catalog and texture atlas.
	PhaseLoading Phase = iota
	// PhaseMapGeneration runs while a generation task is outstanding.
	PhaseMapGeneration
	// PhaseMain is entered once the tilemap is in place.
	PhaseMain
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseMapGeneration:
		return "map-generation"
	case PhaseMain:
		return "main"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PhaseMachine tracks the current phase and reports each transition once.
type PhaseMachine struct {
	current Phase
	entered bool
}

// NewPhaseMachine starts in the provided phase. The initial phase counts as
// freshly entered.
func NewPhaseMachine(initial Phase) *PhaseMachine {
	return &PhaseMachine{current: initial, entered: true}
}

// Current returns the active phase.
func (m *PhaseMachine) Current() Phase { return m.current }

// Set switches to next. Setting the active phase again is a no-op.
func (m *PhaseMachine) Set(next Phase) {
	if next == m.current {
		return
	}
	m.current = next
	m.entered = true
}

// Entered reports true exactly once after the machine switched into p.
func (m *PhaseMachine) Entered(p Phase) bool {
	if m.current != p || !m.entered {
		return false
	}
	m.entered = false
	return true
}
