package library

import "funge98/internal/fingerprint"

// Null implements the NULL fingerprint (id 0x4e554c4c): every instruction
// A-Z reflects without effect. Loading NULL over another fingerprint's
// letters is the standard Funge-98 way to "turn off" instructions a
// program doesn't want, without unloading whatever implemented them.
type Null struct{}

func NewNull() *Null { return &Null{} }

func (*Null) Name() string         { return "NULL" }
func (*Null) Instructions() string { return "ABCDEFGHIJKLMNOPQRSTUVWXYZ" }

func (*Null) Execute(ctx fingerprint.ProgramContext, instr byte) bool {
	ctx.Reflect()
	return true
}
