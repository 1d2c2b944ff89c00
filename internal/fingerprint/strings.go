package fingerprint

// PopString pops a Funge-98 "0gnirts"-encoded string off TOSS: characters
// are popped until a zero cell is found (and discarded), yielding the
// string in forward reading order.
func PopString(ctx ProgramContext) string {
	var buf []byte
	for {
		c := ctx.Pop()
		if c.IsZero() {
			break
		}
		buf = append(buf, byte(c.Int64()))
	}
	return string(buf)
}

// PushString pushes s in 0gnirts form: a trailing zero cell first, then
// each byte of s in reverse, so that PopString (or repeated plain Pop)
// yields s's bytes in forward order followed by the terminator.
func PushString(ctx ProgramContext, s string) {
	ctx.Push(ctx.Factory().Zero())
	for i := len(s) - 1; i >= 0; i-- {
		ctx.Push(ctx.Factory().FromByte(s[i]))
	}
}
