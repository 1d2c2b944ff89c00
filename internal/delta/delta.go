// Package delta implements the 2D direction vector an instruction pointer
// moves by on each tick, ported from original_source/src/program/delta.rs.
package delta

import (
	"math/rand"

	"funge98/internal/cellkind"
)

// Delta is a direction vector (dx, dy) expressed in the interpreter's
// selected cell width, so it can be added directly to a position.
type Delta struct {
	DX, DY cellkind.Cell
}

// East, West, South, and North build the four canonical unit vectors at
// the given factory's width. East is the default direction a fresh
// instruction pointer starts with.
func East(f cellkind.Factory) Delta  { return Delta{f.FromInt64(1), f.FromInt64(0)} }
func West(f cellkind.Factory) Delta  { return Delta{f.FromInt64(-1), f.FromInt64(0)} }
func South(f cellkind.Factory) Delta { return Delta{f.FromInt64(0), f.FromInt64(1)} }
func North(f cellkind.Factory) Delta { return Delta{f.FromInt64(0), f.FromInt64(-1)} }

// Reflect negates both components, turning the delta to point the exact
// opposite way.
func (d Delta) Reflect() Delta {
	return Delta{d.DX.Neg(), d.DY.Neg()}
}

// TurnLeft rotates the delta 90 degrees counterclockwise: (dx,dy) -> (dy,-dx).
func (d Delta) TurnLeft() Delta {
	return Delta{d.DY, d.DX.Neg()}
}

// TurnRight rotates the delta 90 degrees clockwise: (dx,dy) -> (-dy,dx).
func (d Delta) TurnRight() Delta {
	return Delta{d.DY.Neg(), d.DX}
}

// Random samples uniformly from the four cardinal directions, used by `?`.
func Random(f cellkind.Factory) Delta {
	switch rand.Intn(4) {
	case 0:
		return East(f)
	case 1:
		return South(f)
	case 2:
		return West(f)
	default:
		return North(f)
	}
}

// Equal reports whether two deltas have the same components.
func (d Delta) Equal(o Delta) bool {
	return d.DX.Cmp(o.DX) == 0 && d.DY.Cmp(o.DY) == 0
}
