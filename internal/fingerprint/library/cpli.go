package library

import (
	"math"
	"strconv"

	"funge98/internal/fingerprint"
)

// Cpli implements the CPLI fingerprint (id 0x43504c49): complex-number
// arithmetic over pairs of cells (real, imaginary), both stacked with the
// real part below the imaginary part.
//
//   - A: addition        (a+bi) + (c+di)
//   - S: subtraction      (a+bi) - (c+di)
//   - M: multiplication   (a+bi) * (c+di)
//   - D: division         (a+bi) / (c+di)
//   - O: output as "re,im "
//   - V: magnitude, sqrt(re^2+im^2), pushed as a single truncated integer
type Cpli struct{}

func NewCpli() *Cpli { return &Cpli{} }

func (*Cpli) Name() string         { return "CPLI" }
func (*Cpli) Instructions() string { return "ADMOSV" }

func (*Cpli) Execute(ctx fingerprint.ProgramContext, instr byte) bool {
	f := ctx.Factory()
	switch instr {
	case 'A', 'S', 'M', 'D':
		di := ctx.Pop().Int64()
		dr := ctx.Pop().Int64()
		bi := ctx.Pop().Int64()
		br := ctx.Pop().Int64()
		var rr, ri int64
		switch instr {
		case 'A':
			rr, ri = br+dr, bi+di
		case 'S':
			rr, ri = br-dr, bi-di
		case 'M':
			rr = br*dr - bi*di
			ri = br*di + bi*dr
		case 'D':
			denom := dr*dr + di*di
			if denom == 0 {
				rr, ri = 0, 0
			} else {
				rr = (br*dr + bi*di) / denom
				ri = (bi*dr - br*di) / denom
			}
		}
		ctx.Push(f.FromInt64(rr))
		ctx.Push(f.FromInt64(ri))
	case 'O':
		im := ctx.Pop().Int64()
		re := ctx.Pop().Int64()
		ctx.Stdout().WriteString(strconv.FormatInt(re, 10) + "," + strconv.FormatInt(im, 10) + " ")
		ctx.Stdout().Flush()
	case 'V':
		im := ctx.Pop().Int64()
		re := ctx.Pop().Int64()
		mag := math.Sqrt(float64(re)*float64(re) + float64(im)*float64(im))
		ctx.Push(f.FromInt64(int64(mag)))
	default:
		return false
	}
	return true
}
