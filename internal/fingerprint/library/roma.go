// Package library holds the bundled fingerprint extensions, one file per
// fingerprint, grounded on
// original_source/src/program/fingerprints/library/*.rs.
package library

import "funge98/internal/fingerprint"

// Roma implements the ROMA fingerprint (id 0x524f4d41): Roman numeral
// literals. Each instruction is itself one of the seven Roman digit
// letters; consecutive digits combine using the usual subtractive rule
// (IV -> 4) by retroactively adjusting the most recent push.
//
// Simplification: the "consecutive" run is tracked as extension-wide
// state rather than per instruction-pointer, since this interpreter runs
// a single IP at a time. A ROMA digit executed after unrelated
// instructions elsewhere in the program is still treated as continuing
// the previous run; real multi-IP (Concurrent Funge) programs would need
// this keyed per IP.
type Roma struct {
	lastVal int64
	haveRun bool
}

func NewRoma() *Roma { return &Roma{} }

func (*Roma) Name() string         { return "ROMA" }
func (*Roma) Instructions() string { return "CDILMVX" }

var romanValues = map[byte]int64{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

func (r *Roma) Execute(ctx fingerprint.ProgramContext, instr byte) bool {
	val, ok := romanValues[instr]
	if !ok {
		return false
	}
	f := ctx.Factory()
	if r.haveRun {
		top := ctx.Pop().Int64()
		var total int64
		if val > r.lastVal {
			total = top - 2*r.lastVal + val
		} else {
			total = top + val
		}
		ctx.Push(f.FromInt64(total))
	} else {
		ctx.Push(f.FromInt64(val))
	}
	r.lastVal = val
	r.haveRun = true
	return true
}
