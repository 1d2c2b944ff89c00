package library

import "funge98/internal/fingerprint"

// Modu implements the MODU fingerprint (id 0x4d4f4455): alternative
// modulo/remainder behaviours beyond plain `%`'s truncated-division
// remainder.
//
//   - M: modulo whose sign follows the divisor (floored division),
//     popping b then a and pushing a mod b.
//   - R: plain remainder, sign follows the dividend — identical to `%`,
//     offered here for programs that want it spelled explicitly.
//   - U: unsigned modulo, treating both operands as non-negative
//     magnitudes regardless of sign.
type Modu struct{}

func NewModu() *Modu { return &Modu{} }

func (*Modu) Name() string         { return "MODU" }
func (*Modu) Instructions() string { return "MRU" }

func (*Modu) Execute(ctx fingerprint.ProgramContext, instr byte) bool {
	if instr != 'M' && instr != 'R' && instr != 'U' {
		return false
	}
	b := ctx.Pop().Int64()
	a := ctx.Pop().Int64()
	f := ctx.Factory()
	if b == 0 {
		ctx.Push(f.Zero())
		return true
	}
	var result int64
	switch instr {
	case 'M':
		result = a % b
		if result != 0 && (result < 0) != (b < 0) {
			result += b
		}
	case 'R':
		result = a % b
	case 'U':
		ua, ub := a, b
		if ua < 0 {
			ua = -ua
		}
		if ub < 0 {
			ub = -ub
		}
		result = ua % ub
	default:
		return false
	}
	ctx.Push(f.FromInt64(result))
	return true
}
