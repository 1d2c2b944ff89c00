package library

import (
	"os"

	"funge98/internal/fingerprint"
)

// Evar implements the EVAR fingerprint (id 0x45564152): access to the
// host process's environment variables.
//
//   - G: pop a 0gnirts name, push its value as 0gnirts (empty string if
//     unset).
//   - P: pop a 0gnirts value then a 0gnirts name, and set that
//     environment variable for the remainder of the run.
type Evar struct{}

func NewEvar() *Evar { return &Evar{} }

func (*Evar) Name() string         { return "EVAR" }
func (*Evar) Instructions() string { return "GP" }

func (*Evar) Execute(ctx fingerprint.ProgramContext, instr byte) bool {
	switch instr {
	case 'G':
		name := fingerprint.PopString(ctx)
		fingerprint.PushString(ctx, os.Getenv(name))
	case 'P':
		value := fingerprint.PopString(ctx)
		name := fingerprint.PopString(ctx)
		os.Setenv(name, value)
	default:
		return false
	}
	return true
}
