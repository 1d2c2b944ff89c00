package interp

import (
	"funge98/internal/cellkind"
	"funge98/internal/delta"
)

// execute dispatches one non-string-mode instruction. It reports whether
// the caller should still perform the standard single-step cursor move
// (false means the instruction already fully handled its own movement,
// as `j` does).
func (ip *Interpreter) execute(instr byte) (advance bool, err error) {
	switch {
	case instr >= '0' && instr <= '9':
		ip.push(ip.factory.FromInt64(int64(instr - '0')))
		return true, nil
	case instr >= 'a' && instr <= 'f':
		ip.push(ip.factory.FromInt64(int64(instr-'a') + 10))
		return true, nil
	}

	switch instr {
	case ' ', 'z':
		// no-op
	case '"':
		ip.stringMode = true
		ip.lastWasSpace = false
	case '+':
		ip.binaryOp(cellkind.Cell.Add, "addition")
	case '-':
		ip.binaryOp(cellkind.Cell.Sub, "subtraction")
	case '*':
		ip.binaryOp(cellkind.Cell.Mul, "multiplication")
	case '/':
		ip.divOp()
	case '%':
		ip.modOp()
	case '!':
		v := ip.pop()
		if v.IsZero() {
			ip.push(ip.factory.FromInt64(1))
		} else {
			ip.push(ip.factory.FromInt64(0))
		}
	case '`':
		b := ip.pop()
		a := ip.pop()
		if a.Cmp(b) > 0 {
			ip.push(ip.factory.FromInt64(1))
		} else {
			ip.push(ip.factory.FromInt64(0))
		}
	case '>':
		ip.cursor.Delta = delta.East(ip.factory)
	case '<':
		ip.cursor.Delta = delta.West(ip.factory)
	case '^':
		ip.cursor.Delta = delta.North(ip.factory)
	case 'v':
		ip.cursor.Delta = delta.South(ip.factory)
	case '?':
		ip.cursor.Delta = delta.Random(ip.factory)
	case '_':
		if ip.pop().IsZero() {
			ip.cursor.Delta = delta.East(ip.factory)
		} else {
			ip.cursor.Delta = delta.West(ip.factory)
		}
	case '|':
		if ip.pop().IsZero() {
			ip.cursor.Delta = delta.South(ip.factory)
		} else {
			ip.cursor.Delta = delta.North(ip.factory)
		}
	case 'w':
		b := ip.pop()
		a := ip.pop()
		switch {
		case a.Cmp(b) < 0:
			ip.cursor.TurnLeft()
		case a.Cmp(b) > 0:
			ip.cursor.TurnRight()
		}
	case ':':
		v := ip.stack.Peek(0)
		ip.push(v)
	case '\\':
		a := ip.pop()
		b := ip.pop()
		ip.push(a)
		ip.push(b)
	case '$':
		ip.pop()
	case 'n':
		ip.stack.Clear()
	case '.':
		ip.outputInt()
	case ',':
		ip.outputChar()
	case '&':
		if e := ip.inputInt(); e != nil {
			return true, e
		}
	case '~':
		if e := ip.inputChar(); e != nil {
			return true, e
		}
	case '#':
		ip.cursor.Move(ip.grid.Bounds())
	case ';':
		ip.skipComment()
	case 'g':
		return true, ip.getCell()
	case 'p':
		return true, ip.putCell()
	case '\'':
		return ip.fetchCharacter()
	case 's':
		v := ip.pop()
		ip.putAhead(ip.factory.FromInt64(v.Int64() & 0xff))
		ip.cursor.Move(ip.grid.Bounds())
	case '{':
		ip.stack.Create(ip.pop().Int64(), ip.factory.FromInt64(ip.cursor.StorageOffsetX), ip.factory.FromInt64(ip.cursor.StorageOffsetY))
		ip.cursor.StorageOffsetX, ip.cursor.StorageOffsetY = ip.aheadPosition()
	case '}':
		n := ip.pop().Int64()
		soX, soY, ok := ip.stack.Destroy(n)
		if !ok {
			ip.cursor.Reflect()
			break
		}
		ip.cursor.StorageOffsetX, ip.cursor.StorageOffsetY = soX.Int64(), soY.Int64()
	case 'u':
		if !ip.stack.Transfer(ip.pop().Int64()) {
			ip.cursor.Reflect()
		}
	case 'x':
		dy := ip.pop()
		dx := ip.pop()
		ip.cursor.Delta = delta.Delta{DX: dx, DY: dy}
	case 'j':
		ip.jump(ip.pop().Int64())
		return false, nil
	case 'k':
		ip.iterate(ip.pop().Int64())
		return true, nil
	case '(':
		ip.loadFingerprint(true)
	case ')':
		ip.loadFingerprint(false)
	case 'y':
		ip.pushSysinfo()
	case '@':
		ip.halted = true
	case 'q':
		ip.exitCode = int(ip.pop().Int64())
		ip.halted = true
	default:
		if instr >= 'A' && instr <= 'Z' {
			handled, found := ip.fingerprints.Dispatch(ip, instr)
			if !found || !handled {
				ip.cursor.Reflect()
			}
		} else {
			ip.cursor.Reflect()
		}
	}
	return true, nil
}

func (ip *Interpreter) binaryOp(op func(cellkind.Cell, cellkind.Cell) (cellkind.Cell, bool), name string) {
	b := ip.pop()
	a := ip.pop()
	r, ok := op(a, b)
	if ok {
		ip.warn(name + " resulted in overflow")
	}
	ip.push(r)
}


func (ip *Interpreter) divOp() {
	b := ip.pop()
	a := ip.pop()
	if b.IsZero() {
		ip.warn("division by zero")
		ip.push(ip.factory.Zero())
		return
	}
	r, ok := a.Div(b)
	if ok {
		ip.warn("division resulted in overflow")
	}
	ip.push(r)
}

func (ip *Interpreter) modOp() {
	b := ip.pop()
	a := ip.pop()
	if b.IsZero() {
		ip.warn("modulo by zero")
		ip.push(ip.factory.Zero())
		return
	}
	r, _ := a.Mod(b)
	ip.push(r)
}

func (ip *Interpreter) outputInt() {
	v := ip.pop()
	ip.stdout.WriteString(v.String())
	ip.stdout.WriteString(" ")
}

func (ip *Interpreter) outputChar() {
	v := ip.pop()
	ip.stdout.WriteByte(byte(v.Int64()))
}

func (ip *Interpreter) inputInt() error {
	n, err := readInt(ip.stdin)
	if err != nil {
		ip.cursor.Reflect()
		return nil
	}
	ip.push(ip.factory.FromInt64(n))
	return nil
}

func (ip *Interpreter) inputChar() error {
	b, err := ip.stdin.ReadByte()
	if err != nil {
		return wrapIOError(err)
	}
	ip.push(ip.factory.FromByte(b))
	return nil
}

func (ip *Interpreter) getCell() error {
	y := ip.pop()
	x := ip.pop()
	ax, ay := ip.cursor.TranslateToStorage(x.Int64(), y.Int64())
	ip.push(ip.grid.Get(ax, ay))
	return nil
}

func (ip *Interpreter) putCell() error {
	y := ip.pop()
	x := ip.pop()
	v := ip.pop()
	ax, ay := ip.cursor.TranslateToStorage(x.Int64(), y.Int64())
	ip.grid.Put(ax, ay, v)
	return nil
}

// putAhead implements `s`: store a value one cell ahead of the cursor
// along its current delta (absolute coordinates, ignoring storage
// offset), used for self-modifying output of a single character.
func (ip *Interpreter) putAhead(v cellkind.Cell) {
	nx := ip.cursor.X + ip.cursor.Delta.DX.Int64()
	ny := ip.cursor.Y + ip.cursor.Delta.DY.Int64()
	ip.grid.Put(nx, ny, v)
}

// fetchCharacter implements `'`: push the value of the cell immediately
// following in program flow, then skip over it (a "character fetch").
func (ip *Interpreter) fetchCharacter() (bool, error) {
	nx := ip.cursor.X + ip.cursor.Delta.DX.Int64()
	ny := ip.cursor.Y + ip.cursor.Delta.DY.Int64()
	ip.push(ip.grid.Get(nx, ny))
	ip.cursor.Move(ip.grid.Bounds())
	return true, nil
}

// aheadPosition returns the raw (unwrapped) coordinate one delta-step
// ahead of the cursor, without moving it — `{` sets the new frame's
// storage offset to this position, per spec.
func (ip *Interpreter) aheadPosition() (int64, int64) {
	return ip.cursor.X + ip.cursor.Delta.DX.Int64(), ip.cursor.Y + ip.cursor.Delta.DY.Int64()
}

func (ip *Interpreter) jump(n int64) {
	if n == 0 {
		ip.cursor.Move(ip.grid.Bounds())
		return
	}
	orig := ip.cursor.Delta
	if n < 0 {
		ip.cursor.Delta = orig.Reflect()
		n = -n
	}
	b := ip.grid.Bounds()
	for i := int64(0); i < n; i++ {
		ip.cursor.Move(b)
	}
	ip.cursor.Delta = orig
}

// skipComment implements the semicolon-delimited comment span used by `;`
// and by k's lookahead: it walks the cursor forward, cell by cell, until
// it lands on a closing `;` and consumes that cell too. Neither the
// opening nor the closing `;` is ever executed, and nothing in between
// is either.
func (ip *Interpreter) skipComment() {
	b := ip.grid.Bounds()
	for {
		ip.cursor.Move(b)
		if ip.grid.Get(ip.cursor.X, ip.cursor.Y).Int64() == int64(';') {
			return
		}
	}
}

// peekNextInstruction finds the next "useful" instruction ahead of the
// cursor without permanently moving it: blanks are skipped, whole
// `;`-delimited comment spans are skipped via skipComment, and the
// cursor's position and delta are restored before returning. This is the
// idempotent lookahead `k` needs to find the instruction it iterates.
func (ip *Interpreter) peekNextInstruction() byte {
	x, y, d := ip.cursor.X, ip.cursor.Y, ip.cursor.Delta
	defer func() { ip.cursor.X, ip.cursor.Y, ip.cursor.Delta = x, y, d }()

	b := ip.grid.Bounds()
	for {
		ip.cursor.Move(b)
		instr := byte(ip.grid.Get(ip.cursor.X, ip.cursor.Y).Int64())
		switch instr {
		case ' ':
			continue
		case ';':
			ip.skipComment()
			continue
		default:
			return instr
		}
	}
}

// iterate implements `k`: the next useful instruction ahead of the cursor
// is located by an idempotent lookahead (skipping blanks and `;`-comment
// spans without moving the real cursor), then executed n times in place.
// For n > 0 the cursor itself never leaves k's own cell, so the caller's
// standard post-execute move advances exactly one cell from there, same
// as any other instruction. For n == 0 the cursor is moved onto that
// instruction's cell instead, so the caller's move steps past it and it
// never executes.
func (ip *Interpreter) iterate(n int64) {
	if n == 0 {
		b := ip.grid.Bounds()
		for {
			ip.cursor.Move(b)
			switch ip.grid.Get(ip.cursor.X, ip.cursor.Y).Int64() {
			case ' ':
				continue
			case ';':
				ip.skipComment()
				continue
			}
			return
		}
	}
	target := ip.peekNextInstruction()
	for i := int64(0); i < n; i++ {
		ip.execute(target)
	}
}

func (ip *Interpreter) loadFingerprint(load bool) {
	n := ip.pop().Int64()
	var id int64
	for i := int64(0); i < n; i++ {
		id = id*256 + ip.pop().Int64()
	}
	if load {
		if !ip.fingerprints.Load(id) {
			ip.cursor.Reflect()
			return
		}
		ip.push(ip.factory.FromInt64(id))
		ip.push(ip.factory.FromInt64(n))
		return
	}
	if !ip.fingerprints.Unload(id) {
		ip.cursor.Reflect()
	}
}

func (ip *Interpreter) pushSysinfo() {
	n := ip.pop().Int64()
	report := sysinfoReport(ip)
	if n == 0 {
		for _, c := range report {
			ip.push(c)
		}
		return
	}
	reportLen := int64(len(report))
	if n > reportLen {
		ip.push(ip.stack.Peek(int(n - reportLen - 1)))
		return
	}
	idx := reportLen - n
	if idx < 0 || idx >= reportLen {
		ip.push(ip.factory.Zero())
		return
	}
	ip.push(report[idx])
}

