package cellkind

import (
	"math/big"
	"strconv"
)

// cell64 is the 8-byte cell. Unlike the narrower widths it cannot widen
// further using native int64 arithmetic, so overflow is detected with
// sign analysis for add/sub and a big.Int round-trip for mul (kept simple
// deliberately; mul overflow via pure bit tricks on int64 is error-prone
// and this path is not the hot loop for the common -s 4 default).
type cell64 int64

func (c cell64) Int64() int64    { return int64(c) }
func (c cell64) Width() int      { return 8 }
func (c cell64) String() string { return strconv.FormatInt(int64(c), 10) }

func (c cell64) Add(o Cell) (Cell, bool) {
	a, b := int64(c), o.Int64()
	sum := a + b
	overflow := (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0)
	return cell64(sum), overflow
}

func (c cell64) Sub(o Cell) (Cell, bool) {
	a, b := int64(c), o.Int64()
	diff := a - b
	overflow := (b < 0 && diff < a) || (b > 0 && diff > a)
	return cell64(diff), overflow
}

func (c cell64) Mul(o Cell) (Cell, bool) {
	a, b := int64(c), o.Int64()
	prod := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	return cell64(prod.Int64()), !prod.IsInt64()
}

func (c cell64) Div(o Cell) (Cell, bool) {
	a, b := int64(c), o.Int64()
	// The only int64 division that overflows: MinInt64 / -1.
	if a == minInt64 && b == -1 {
		return cell64(minInt64), true
	}
	return cell64(a / b), false
}

func (c cell64) Mod(o Cell) (Cell, bool) {
	a, b := int64(c), o.Int64()
	if a == minInt64 && b == -1 {
		return cell64(0), true
	}
	return cell64(a % b), false
}

func (c cell64) Neg() Cell {
	if int64(c) == minInt64 {
		return cell64(minInt64)
	}
	return cell64(-c)
}

func (c cell64) IsZero() bool   { return c == 0 }
func (c cell64) Cmp(o Cell) int { return cmp64(int64(c), o.Int64()) }

const minInt64 = -1 << 63
