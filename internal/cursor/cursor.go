// Package cursor implements the Funge-98 instruction pointer: its
// position, direction delta, and storage offset, plus the Lahey-space
// wrap-around movement rule. The wrap algorithm here is the general one
// spec.md §4.1 specifies for arbitrary (non-cardinal) deltas; the
// original_source Rust cursor.rs only special-cases axis-aligned
// overshoot by exactly one cell, since it never exercises `x`.
package cursor

import (
	"funge98/internal/bounds"
	"funge98/internal/cellkind"
	"funge98/internal/delta"
)

// Cursor is one instruction pointer's complete movement state.
type Cursor struct {
	X, Y           int64
	Delta          delta.Delta
	StorageOffsetX int64
	StorageOffsetY int64
}

// New returns a fresh cursor at the origin, moving east, with a zero
// storage offset — the state every Funge-98 program begins execution in.
func New(f cellkind.Factory) *Cursor {
	return &Cursor{Delta: delta.East(f)}
}

// Reflect negates the delta, turning the cursor to point the exact
// opposite way.
func (c *Cursor) Reflect() { c.Delta = c.Delta.Reflect() }

// TurnLeft and TurnRight rotate the delta 90 degrees.
func (c *Cursor) TurnLeft()  { c.Delta = c.Delta.TurnLeft() }
func (c *Cursor) TurnRight() { c.Delta = c.Delta.TurnRight() }

// TranslateToStorage applies the storage offset to a coordinate, as
// required for every `g`/`p` argument.
func (c *Cursor) TranslateToStorage(x, y int64) (int64, int64) {
	return x + c.StorageOffsetX, y + c.StorageOffsetY
}

// Move advances the cursor one step along its delta, applying Lahey-space
// wrap-around against b: if the tentative step lands outside b, the
// cursor walks backwards along the negated delta until one more step
// would leave b, and stops there — on the exact far-side boundary cell
// the line from the old position re-enters at.
// This handles non-cardinal deltas (from `x` or a reflected `j`) as well
// as the axis-aligned case.
func (c *Cursor) Move(b bounds.Bounds) {
	dx, dy := c.Delta.DX.Int64(), c.Delta.DY.Int64()
	nx, ny := c.X+dx, c.Y+dy
	if !b.OutOfBounds(nx, ny) {
		c.X, c.Y = nx, ny
		return
	}
	// Walk backwards from the tentative point until one more backward
	// step would leave the box; the last in-box point is the new position.
	bx, by := nx, ny
	for {
		tx, ty := bx-dx, by-dy
		if b.OutOfBounds(tx, ty) {
			break
		}
		bx, by = tx, ty
	}
	c.X, c.Y = bx, by
}
