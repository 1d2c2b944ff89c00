package cellkind

import "strconv"

// cell8, cell16, and cell32 widen to int64 for arithmetic — the widest
// product of two such values (2^31 * 2^31 for cell32) always fits in an
// int64, so overflow can be detected by comparing the widened result
// against the narrower type's own range rather than with bit tricks.

type cell8 int8
type cell16 int16
type cell32 int32

func (c cell8) Int64() int64  { return int64(c) }
func (c cell16) Int64() int64 { return int64(c) }
func (c cell32) Int64() int64 { return int64(c) }

func (c cell8) Width() int  { return 1 }
func (c cell16) Width() int { return 2 }
func (c cell32) Width() int { return 4 }

func (c cell8) String() string  { return strconv.FormatInt(c.Int64(), 10) }
func (c cell16) String() string { return strconv.FormatInt(c.Int64(), 10) }
func (c cell32) String() string { return strconv.FormatInt(c.Int64(), 10) }

const (
	min8, max8   = -1 << 7, 1<<7 - 1
	min16, max16 = -1 << 15, 1<<15 - 1
	min32, max32 = -1 << 31, 1<<31 - 1
)

func clamped8(v int64) (cell8, bool) {
	if v < min8 || v > max8 {
		return cell8(int8(v)), true
	}
	return cell8(v), false
}

func clamped16(v int64) (cell16, bool) {
	if v < min16 || v > max16 {
		return cell16(int16(v)), true
	}
	return cell16(v), false
}

func clamped32(v int64) (cell32, bool) {
	if v < min32 || v > max32 {
		return cell32(int32(v)), true
	}
	return cell32(v), false
}

func (c cell8) Add(o Cell) (Cell, bool) { r, ov := clamped8(c.Int64() + o.Int64()); return r, ov }
func (c cell8) Sub(o Cell) (Cell, bool) { r, ov := clamped8(c.Int64() - o.Int64()); return r, ov }
func (c cell8) Mul(o Cell) (Cell, bool) { r, ov := clamped8(c.Int64() * o.Int64()); return r, ov }
func (c cell8) Div(o Cell) (Cell, bool) { r, ov := clamped8(c.Int64() / o.Int64()); return r, ov }
func (c cell8) Mod(o Cell) (Cell, bool) { r, ov := clamped8(c.Int64() % o.Int64()); return r, ov }
func (c cell8) Neg() Cell                { r, _ := clamped8(-c.Int64()); return r }
func (c cell8) IsZero() bool             { return c == 0 }
func (c cell8) Cmp(o Cell) int           { return cmp64(c.Int64(), o.Int64()) }

func (c cell16) Add(o Cell) (Cell, bool) { r, ov := clamped16(c.Int64() + o.Int64()); return r, ov }
func (c cell16) Sub(o Cell) (Cell, bool) { r, ov := clamped16(c.Int64() - o.Int64()); return r, ov }
func (c cell16) Mul(o Cell) (Cell, bool) { r, ov := clamped16(c.Int64() * o.Int64()); return r, ov }
func (c cell16) Div(o Cell) (Cell, bool) { r, ov := clamped16(c.Int64() / o.Int64()); return r, ov }
func (c cell16) Mod(o Cell) (Cell, bool) { r, ov := clamped16(c.Int64() % o.Int64()); return r, ov }
func (c cell16) Neg() Cell                { r, _ := clamped16(-c.Int64()); return r }
func (c cell16) IsZero() bool             { return c == 0 }
func (c cell16) Cmp(o Cell) int           { return cmp64(c.Int64(), o.Int64()) }

func (c cell32) Add(o Cell) (Cell, bool) { r, ov := clamped32(c.Int64() + o.Int64()); return r, ov }
func (c cell32) Sub(o Cell) (Cell, bool) { r, ov := clamped32(c.Int64() - o.Int64()); return r, ov }
func (c cell32) Mul(o Cell) (Cell, bool) { r, ov := clamped32(c.Int64() * o.Int64()); return r, ov }
func (c cell32) Div(o Cell) (Cell, bool) { r, ov := clamped32(c.Int64() / o.Int64()); return r, ov }
func (c cell32) Mod(o Cell) (Cell, bool) { r, ov := clamped32(c.Int64() % o.Int64()); return r, ov }
func (c cell32) Neg() Cell                { r, _ := clamped32(-c.Int64()); return r }
func (c cell32) IsZero() bool             { return c == 0 }
func (c cell32) Cmp(o Cell) int           { return cmp64(c.Int64(), o.Int64()) }

func cmp64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
