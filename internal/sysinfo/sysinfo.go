// Package sysinfo assembles the `y` instruction's system information
// report: flags, implementation identity, the current IP's full state,
// Funge-Space's bounds, the stack-of-stacks shape, and the program's
// command-line/environment, ported from
// original_source/src/program/sysinfo.rs.
package sysinfo

import (
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"funge98/internal/cellkind"
)

// Handprint is this implementation's four-letter identity, packed the
// same way a fingerprint id is packed.
const Handprint = "GOBF"

// Version is the implementation's semantic version, flattened into the
// single integer Funge-98 programs expect via `y`'s fourth field.
var Version = flattenVersion("v0.1.0")

// flattenVersion turns a semver string into the single integer `y`'s
// fourth field expects, using golang.org/x/mod/semver to validate and
// canonicalize the string before flattening major.minor.patch into
// major*10000 + minor*100 + patch.
func flattenVersion(v string) int64 {
	if !semver.IsValid(v) {
		return 0
	}
	v = semver.Canonical(v)
	fields := strings.SplitN(strings.TrimPrefix(v, "v"), ".", 3)
	var maj, min, pat int64
	if len(fields) > 0 {
		maj = parseIntField(fields[0])
	}
	if len(fields) > 1 {
		min = parseIntField(fields[1])
	}
	if len(fields) > 2 {
		pat = parseIntField(strings.SplitN(fields[2], "-", 2)[0])
	}
	return maj*10000 + min*100 + pat
}

func parseIntField(s string) int64 {
	var n int64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
	}
	return n
}

// Flags bits for the report's first field.
const (
	FlagConcurrent    = 1 << 0
	FlagIInstruction  = 1 << 1
	FlagOInstruction  = 1 << 2
	FlagEqInstruction = 1 << 3
	FlagIOUnbuffered  = 1 << 4
)

func pathSeparator() byte { return byte(os.PathSeparator) }

// IPState is the subset of cursor.Cursor the report needs, passed in by
// value so this package never imports cursor (avoiding a cycle with
// interp, which composes both).
type IPState struct {
	ID             int64
	Team           int64
	X, Y           int64
	DX, DY         int64
	StorageOffsetX int64
	StorageOffsetY int64
}

// Bounds is the subset of bounds.Bounds the report needs, by value for
// the same reason as IPState.
type Bounds struct {
	LeastX, LeastY       int64
	GreatestDX, GreatestDY int64
}

// Report builds the full `y` push sequence, in push order (the caller
// pushes element 0 first, so that after all pushes the last element sits
// on top — matching every other Funge-98 stack convention here).
func Report(f cellkind.Factory, flags int64, ip IPState, numIPs int64, b Bounds, stackSizes []int, argv, env []string, now time.Time) []cellkind.Cell {
	var out []cellkind.Cell
	push := func(v int64) { out = append(out, f.FromInt64(v)) }

	push(flags)
	push(int64(f.Width()))
	push(packHandprint(Handprint))
	push(Version)
	push(0) // operating paradigm: `=` is unsupported, see DESIGN.md
	push(int64(pathSeparator()))
	push(2) // scalars per vector: this is a 2D (or 1D) interpreter
	push(ip.ID)
	push(numIPs)
	push(ip.Team)
	push(ip.X)
	push(ip.Y)
	push(ip.DX)
	push(ip.DY)
	push(ip.StorageOffsetX)
	push(ip.StorageOffsetY)
	push(b.LeastX)
	push(b.LeastY)
	push(b.GreatestDX)
	push(b.GreatestDY)
	push(packDate(now))
	push(packTime(now))
	push(int64(len(stackSizes)))
	for _, sz := range stackSizes {
		push(int64(sz))
	}

	n := int64(len(out))

	for _, a := range argv {
		out = appendCString(f, out, a)
	}
	out = append(out, f.Zero())
	for _, e := range env {
		out = appendCString(f, out, e)
	}
	out = append(out, f.Zero())

	out = append(out, f.FromInt64(n))
	return out
}

func appendCString(f cellkind.Factory, out []cellkind.Cell, s string) []cellkind.Cell {
	for i := 0; i < len(s); i++ {
		out = append(out, f.FromByte(s[i]))
	}
	return append(out, f.Zero())
}

func packHandprint(s string) int64 {
	var id int64
	for i := 0; i < len(s); i++ {
		id = id*256 + int64(s[i])
	}
	return id
}

func packDate(t time.Time) int64 {
	return int64(t.Year()-1900)*256*256 + int64(t.Month())*256 + int64(t.Day())
}

func packTime(t time.Time) int64 {
	return int64(t.Hour())*256*256 + int64(t.Minute())*256 + int64(t.Second())
}
