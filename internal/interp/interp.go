// Package interp runs a Befunge-98/Unefunge-98 program to completion (or
// until it halts via `@` or falls off the edge of a non-wrapping error),
// ported from original_source/src/program/vm.rs. It ties together Grid,
// Cursor, the stack-of-stacks, and fingerprint dispatch into a single
// tick loop.
package interp

import (
	"bufio"
	"io"
	"time"

	"github.com/pkg/errors"

	"funge98/internal/bounds"
	"funge98/internal/cellkind"
	"funge98/internal/cursor"
	"funge98/internal/devserver"
	"funge98/internal/diag"
	"funge98/internal/fingerprint"
	"funge98/internal/fingerprint/library"
	"funge98/internal/grid"
	"funge98/internal/stackstack"
	"funge98/internal/sysinfo"
	"funge98/internal/tracestore"
)

// Config configures one interpreter run.
type Config struct {
	Width    int // cell width in bytes: 1, 2, 4, 8, or 16
	Unefunge bool
	Stdin    io.Reader
	Stdout   io.Writer
	Warnings io.Writer // non-fatal diagnostics; nil discards them
	Argv     []string
	Env      []string

	// Trace and Live are both optional diagnostics sinks; neither is
	// required for normal execution, and a nil value disables that
	// feature entirely with no per-tick cost beyond a nil check.
	Trace *tracestore.Store
	Live  *devserver.Server
}

// Interpreter holds one program's complete execution state.
type Interpreter struct {
	factory      cellkind.Factory
	grid         *grid.Grid
	cursor       *cursor.Cursor
	stack        *stackstack.StackOfStacks
	fingerprints *fingerprint.Manager

	stringMode   bool
	lastWasSpace bool
	halted       bool
	exitCode     int

	stdin    *bufio.Reader
	stdout   *bufio.Writer
	warnings io.Writer

	argv []string
	env  []string

	unefunge bool

	trace *tracestore.Store
	live  *devserver.Server
	tick  int64
}

// New builds an Interpreter over source, split into lines by the caller
// (one []byte per line, already newline-stripped).
func New(lines [][]byte, cfg Config) *Interpreter {
	f := cellkind.NewFactory(cfg.Width)
	g := grid.FromLines(f, lines)
	c := cursor.New(f)

	warnings := cfg.Warnings
	if warnings == nil {
		warnings = io.Discard
	}
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = bytesReader(nil)
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	return &Interpreter{
		factory: f,
		grid:    g,
		cursor:  c,
		stack:   stackstack.New(f),
		fingerprints: fingerprint.NewManager(fingerprint.NewRegistry(
			library.NewRoma(),
			library.NewModu(),
			library.NewNull(),
			library.NewBase(),
			library.NewCpli(),
			library.NewEvar(),
		)),
		stdin:    bufio.NewReader(stdin),
		stdout:   bufio.NewWriter(stdout),
		warnings: warnings,
		argv:     cfg.Argv,
		env:      cfg.Env,
		unefunge: cfg.Unefunge,
		trace:    cfg.Trace,
		live:     cfg.Live,
	}
}

func bytesReader(b []byte) io.Reader { return &byteSliceReader{b: b} }

type byteSliceReader struct{ b []byte }

func (r *byteSliceReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}

// Run ticks the interpreter until it halts, returning the process exit
// code `q` set (0 if the program ended via `@` or fell through without
// ever calling `q`).
func (ip *Interpreter) Run() (int, error) {
	for !ip.halted {
		if err := ip.Tick(); err != nil {
			ip.stdout.Flush()
			return ip.exitCode, err
		}
	}
	ip.stdout.Flush()
	return ip.exitCode, nil
}

// Tick executes exactly one instruction (or one string-mode character)
// and advances the cursor.
func (ip *Interpreter) Tick() error {
	b := ip.grid.Bounds()
	instr := byte(ip.grid.Get(ip.cursor.X, ip.cursor.Y).Int64())
	ip.tick++

	if ip.trace != nil {
		ip.trace.Record(ip.cursor.X, ip.cursor.Y, instr, time.Now())
	}

	var err error
	var advance bool
	if ip.stringMode {
		err = ip.tickStringMode(instr, b)
		advance = false
	} else {
		advance, err = ip.execute(instr)
		if err == nil && advance {
			ip.cursor.Move(b)
		}
	}

	if ip.live != nil {
		ip.live.Broadcast(devserver.Snapshot{
			Seq:      ip.tick,
			X:        ip.cursor.X,
			Y:        ip.cursor.Y,
			DX:       ip.cursor.Delta.DX.Int64(),
			DY:       ip.cursor.Delta.DY.Int64(),
			StackTop: ip.stack.Peek(0).String(),
			Halted:   ip.halted,
		})
	}
	return err
}

func (ip *Interpreter) tickStringMode(instr byte, b bounds.Bounds) error {
	switch {
	case instr == '"':
		ip.stringMode = false
		ip.lastWasSpace = false
	case instr == ' ':
		if !ip.lastWasSpace {
			ip.push(ip.factory.FromByte(' '))
		}
		ip.lastWasSpace = true
	default:
		ip.push(ip.factory.FromByte(instr))
		ip.lastWasSpace = false
	}
	ip.cursor.Move(b)
	return nil
}

func (ip *Interpreter) push(c cellkind.Cell) { ip.stack.Push(c) }
func (ip *Interpreter) pop() cellkind.Cell   { return ip.stack.Pop() }

// --- fingerprint.ProgramContext ---

func (ip *Interpreter) Pop() cellkind.Cell        { return ip.pop() }
func (ip *Interpreter) Push(c cellkind.Cell)      { ip.push(c) }
func (ip *Interpreter) Reflect()                  { ip.cursor.Reflect() }
func (ip *Interpreter) Factory() cellkind.Factory { return ip.factory }
func (ip *Interpreter) Stdout() fingerprint.StdWriter { return ip.stdout }
func (ip *Interpreter) Stdin() fingerprint.StdReader  { return ip.stdin }

func (ip *Interpreter) warn(message string) {
	diag.Emit(ip.warnings, diag.Warning{
		At:      time.Now(),
		X:       ip.cursor.X,
		Y:       ip.cursor.Y,
		Message: message,
	})
}

func wrapIOError(err error) error {
	return errors.Wrap(err, "funge98: I/O")
}

func sysinfoReport(ip *Interpreter) []cellkind.Cell {
	sizes := ip.stack.StackSizes()
	lx, ly := ip.grid.LeastPoint()
	gdx, gdy := ip.grid.GreatestPoint()
	return sysinfo.Report(
		ip.factory,
		sysinfo.FlagIOUnbuffered,
		sysinfo.IPState{
			ID:             1,
			Team:           0,
			X:              ip.cursor.X,
			Y:              ip.cursor.Y,
			DX:             ip.cursor.Delta.DX.Int64(),
			DY:             ip.cursor.Delta.DY.Int64(),
			StorageOffsetX: ip.cursor.StorageOffsetX,
			StorageOffsetY: ip.cursor.StorageOffsetY,
		},
		1,
		sysinfo.Bounds{LeastX: lx, LeastY: ly, GreatestDX: gdx, GreatestDY: gdy},
		sizes,
		ip.argv,
		ip.env,
		time.Now(),
	)
}
