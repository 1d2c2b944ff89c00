package cellkind

import "math/big"

// cell128 is the 16-byte cell. Go has no native int128, so its value is
// held as a two's-complement-range-checked *big.Int; arithmetic is exact
// (big.Int never silently truncates) and overflow is detected by
// comparing the true mathematical result against [min128, max128] before
// wrapping it back into range.
type cell128 struct {
	v *big.Int
}

var (
	max128 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 127), bigOne)
	min128 = new(big.Int).Neg(new(big.Int).Lsh(bigOne, 127))
	mod128 = new(big.Int).Lsh(bigOne, 128)
)

func newCell128FromInt64(v int64) Cell {
	return cell128{v: big.NewInt(v)}
}

// wrap128 reduces v modulo 2^128 into two's-complement range, reporting
// whether v was outside [min128, max128] to begin with.
func wrap128(v *big.Int) (cell128, bool) {
	if v.Cmp(min128) >= 0 && v.Cmp(max128) <= 0 {
		return cell128{v: v}, false
	}
	wrapped := new(big.Int).Mod(v, mod128)
	if wrapped.Cmp(max128) > 0 {
		wrapped.Sub(wrapped, mod128)
	}
	return cell128{v: wrapped}, true
}

func (c cell128) Int64() int64    { return c.v.Int64() }
func (c cell128) String() string { return c.v.String() }
func (c cell128) Width() int     { return 16 }

func (c cell128) Add(o Cell) (Cell, bool) {
	r, ov := wrap128(new(big.Int).Add(c.v, other128(o)))
	return r, ov
}

func (c cell128) Sub(o Cell) (Cell, bool) {
	r, ov := wrap128(new(big.Int).Sub(c.v, other128(o)))
	return r, ov
}

func (c cell128) Mul(o Cell) (Cell, bool) {
	r, ov := wrap128(new(big.Int).Mul(c.v, other128(o)))
	return r, ov
}

func (c cell128) Div(o Cell) (Cell, bool) {
	// Truncated (towards zero) division, matching Go/Funge-98 integer
	// division semantics; big.Int's Quo already truncates towards zero.
	r, ov := wrap128(new(big.Int).Quo(c.v, other128(o)))
	return r, ov
}

func (c cell128) Mod(o Cell) (Cell, bool) {
	r, ov := wrap128(new(big.Int).Rem(c.v, other128(o)))
	return r, ov
}

func (c cell128) Neg() Cell {
	r, _ := wrap128(new(big.Int).Neg(c.v))
	return r
}

func (c cell128) IsZero() bool   { return c.v.Sign() == 0 }
func (c cell128) Cmp(o Cell) int { return c.v.Cmp(other128(o)) }

func other128(o Cell) *big.Int {
	if c128, ok := o.(cell128); ok {
		return c128.v
	}
	return big.NewInt(o.Int64())
}
