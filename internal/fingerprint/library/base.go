package library

import (
	"strconv"
	"strings"

	"funge98/internal/fingerprint"
)

// Base implements the BASE fingerprint (id 0x42415345): I/O of integers
// in bases other than decimal.
//
//   - B: pop a value, print it in binary followed by a space.
//   - O: pop a value, print it in octal followed by a space.
//   - H: pop a value, print it in hexadecimal followed by a space.
//   - N: pop a base (2-36), read a run of digits valid in that base from
//     stdin, and push the parsed value.
type Base struct{}

func NewBase() *Base { return &Base{} }

func (*Base) Name() string         { return "BASE" }
func (*Base) Instructions() string { return "BHNO" }

func (*Base) Execute(ctx fingerprint.ProgramContext, instr byte) bool {
	switch instr {
	case 'B':
		writeBase(ctx, 2)
	case 'O':
		writeBase(ctx, 8)
	case 'H':
		writeBase(ctx, 16)
	case 'N':
		readBase(ctx)
	default:
		return false
	}
	return true
}

func writeBase(ctx fingerprint.ProgramContext, base int) {
	v := ctx.Pop().Int64()
	ctx.Stdout().WriteString(strconv.FormatInt(v, base) + " ")
	ctx.Stdout().Flush()
}

func readBase(ctx fingerprint.ProgramContext) {
	base := int(ctx.Pop().Int64())
	if base < 2 || base > 36 {
		base = 10
	}
	var sb strings.Builder
	for {
		b, err := ctx.Stdin().ReadByte()
		if err != nil {
			break
		}
		if _, digitErr := strconv.ParseInt(string(b), base, 64); digitErr != nil && b != '-' {
			break
		}
		sb.WriteByte(b)
	}
	v, _ := strconv.ParseInt(sb.String(), base, 64)
	ctx.Push(ctx.Factory().FromInt64(v))
}
