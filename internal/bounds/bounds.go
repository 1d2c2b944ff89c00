// Package bounds implements the axis-aligned box that tracks the extent of
// Funge-Space ever written to, ported from
// original_source/src/program/bounds.rs.
package bounds

// Bounds describes a half-open rectangle: a point (x, y) is inside iff
// LowerX <= x < UpperX and LowerY <= y < UpperY.
type Bounds struct {
	LowerX, LowerY int64
	UpperX, UpperY int64
}

// New constructs a Bounds from explicit edges.
func New(lowerX, lowerY, upperX, upperY int64) Bounds {
	return Bounds{LowerX: lowerX, LowerY: lowerY, UpperX: upperX, UpperY: upperY}
}

// OutOfBounds reports whether (x, y) falls outside the rectangle.
func (b Bounds) OutOfBounds(x, y int64) bool {
	return x < b.LowerX || x >= b.UpperX || y < b.LowerY || y >= b.UpperY
}

// Width and Height report the rectangle's extent along each axis.
func (b Bounds) Width() int64  { return b.UpperX - b.LowerX }
func (b Bounds) Height() int64 { return b.UpperY - b.LowerY }
