// Package cellkind implements the signed-integer cell abstraction at the
// heart of Funge-Space: one value of implementation-chosen width (1, 2, 4,
// 8, or 16 bytes), with overflow-reporting arithmetic.
//
// The CLI selects the width at run time (the `-s` flag), not at compile
// time, so Cell is a narrow interface with five concrete implementations
// chosen by New rather than a single generic type parameterised over Go's
// built-in integer kinds. See DESIGN.md for why.
package cellkind

import "math/big"

// Blank is the ASCII value Funge-Space cells default to.
const Blank = 32

// Cell is one value of Funge-Space: a signed integer of fixed, run-time
// selected width. All arithmetic reports whether the checked operation
// overflowed; callers decide whether to warn.
type Cell interface {
	// Int64 widens the cell to an int64, e.g. for use as a map/grid
	// coordinate, a loop counter, or a %d argument.
	Int64() int64
	// String renders the cell's exact decimal value, unlike Int64 not
	// lossy for the 128-bit width — used by `.` output.
	String() string
	// Width reports the cell's size in bytes (1, 2, 4, 8, or 16).
	Width() int
	Add(other Cell) (Cell, bool)
	Sub(other Cell) (Cell, bool)
	Mul(other Cell) (Cell, bool)
	// Div and Mod implement Befunge's b/a, b mod a given a=other. Callers
	// must check other.IsZero() themselves; dividing by zero here panics.
	Div(other Cell) (Cell, bool)
	Mod(other Cell) (Cell, bool)
	Neg() Cell
	IsZero() bool
	// Cmp returns -1, 0, or 1 as the cell is less than, equal to, or
	// greater than other.
	Cmp(other Cell) int
}

// Factory produces cells of one fixed width. Grid, Cursor, StackOfStacks
// and the interpreter all hold a Factory rather than hard-coding a width.
type Factory struct {
	width int
}

// NewFactory returns a Factory for the given cell width in bytes. Valid
// widths are 1, 2, 4, 8, and 16; any other value falls back to 4 (the
// Funge-98 reference width), matching the original interpreter's "default
// is i32" REPL behaviour.
func NewFactory(width int) Factory {
	switch width {
	case 1, 2, 4, 8, 16:
		return Factory{width: width}
	default:
		return Factory{width: 4}
	}
}

// Width reports the byte width this factory produces.
func (f Factory) Width() int { return f.width }

// Zero returns the additive identity at this factory's width.
func (f Factory) Zero() Cell { return f.FromInt64(0) }

// Blank returns the cell value meaning "empty" (ASCII space).
func (f Factory) Blank() Cell { return f.FromInt64(Blank) }

// FromInt64 constructs a cell from a widened value, truncating two's
// complement if v does not fit in the factory's width.
func (f Factory) FromInt64(v int64) Cell {
	switch f.width {
	case 1:
		return cell8(int8(v))
	case 2:
		return cell16(int16(v))
	case 4:
		return cell32(int32(v))
	case 8:
		return cell64(v)
	case 16:
		return newCell128FromInt64(v)
	default:
		return cell32(int32(v))
	}
}

// FromByte constructs a cell from a single source byte via unsigned
// zero-extension, as required when loading Funge-Space from source text.
func (f Factory) FromByte(b byte) Cell {
	return f.FromInt64(int64(b))
}

var bigOne = big.NewInt(1)
