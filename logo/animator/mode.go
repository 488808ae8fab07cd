package animator

import "discube/logo/geom"

// Mode selects what the tentacles chase.
type Mode uint8

const (
	// ModeDrift follows the noise field. It is the zero value and the startup mode.
	ModeDrift Mode = iota
	// ModePointer follows the pointer.
	ModePointer
)

func (m Mode) String() string {
	switch m {
	case ModePointer:
		return "mouse"
	case ModeDrift:
		return "noise"
	default:
		return "unknown"
	}
}

// State is the animator's mode plus the seek flag. Seeking is set while the pointer is held
// over the logo and cleared on release or once the pointer is far away; nothing reads it to
// pick targets.
type State struct {
	Mode    Mode
	Seeking bool
}

// Input is the per-frame pointer classification fed to Transition.
type Input struct {
	Hovering   bool // strictly inside the radius square
	Outside    bool // strictly outside the 1.5·radius square
	FarOutside bool // strictly outside the 3·radius square
	Held       bool
}

// Half-widths of the bounding squares, in multiples of the radius.
const (
	leaveFactor = 1.5
	seekFactor  = 3
)

// Classify evaluates the bounding squares around center for pointer p.
func Classify(center geom.Vec2, radius float64, p Pointer) Input {
	return Input{
		Hovering:   geom.Square(center, radius).ContainsOpen(p.Pos),
		Outside:    geom.Square(center, radius*leaveFactor).Outside(p.Pos),
		FarOutside: geom.Square(center, radius*seekFactor).Outside(p.Pos),
		Held:       p.Held,
	}
}

// Transition is the mode state machine. Hovering switches to ModePointer; leaving the
// 1.5·radius square with the button released switches to ModeDrift; anything else keeps the
// current mode.
func Transition(s State, in Input) State {
	switch {
	case in.Hovering:
		s.Mode = ModePointer
	case in.Outside && !in.Held:
		s.Mode = ModeDrift
	}

	if in.Hovering && in.Held {
		s.Seeking = true
	}
	if in.FarOutside || !in.Held {
		s.Seeking = false
	}
	return s
}
