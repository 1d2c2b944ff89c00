// Package fingerprint implements the Funge-98 fingerprint dispatch
// mechanism: a registry of named extensions, a load/unload stack, and one
// dispatch stack per uppercase letter A-Z, ported from
// original_source/src/program/fingerprints/mod.rs. Unlike that source
// (which re-scans a single flat `loaded` list for every letter call),
// this keeps the real per-letter stacks spec.md's data model requires, so
// unloading an inner fingerprint correctly exposes whichever outer one
// loaded the same letter earlier.
package fingerprint

import "funge98/internal/cellkind"

// ProgramContext is the view of interpreter state an Extension needs to
// do its work, kept narrow so this package never imports interp (which
// imports fingerprint).
type ProgramContext interface {
	Pop() cellkind.Cell
	Push(cellkind.Cell)
	Reflect()
	Factory() cellkind.Factory
	Stdout() StdWriter
	Stdin() StdReader
}

// StdWriter and StdReader are the minimal byte-stream operations
// fingerprints need; satisfied by *bufio.Writer/*bufio.Reader in interp.
type StdWriter interface {
	WriteString(string) (int, error)
	Flush() error
}

type StdReader interface {
	ReadString(delim byte) (string, error)
	ReadByte() (byte, error)
}

// Extension is one loadable fingerprint.
type Extension interface {
	// Name is the fingerprint's 1-8 uppercase-letter identifier.
	Name() string
	// Instructions is the set of uppercase letters this extension
	// implements, as a string (e.g. "ADMOSV").
	Instructions() string
	// Execute runs instr and reports whether it handled it.
	Execute(ctx ProgramContext, instr byte) bool
}

// ID packs a fingerprint name into a cell value as Funge-98 specifies:
// id = sum(c * 256^k) over the name's bytes, most significant first.
func ID(name string) int64 {
	var id int64
	for i := 0; i < len(name); i++ {
		id = id*256 + int64(name[i])
	}
	return id
}

// Registry is the closed set of fingerprints this build knows about.
type Registry struct {
	byID map[int64]Extension
}

// NewRegistry builds a Registry from a fixed extension list.
func NewRegistry(extensions ...Extension) *Registry {
	r := &Registry{byID: make(map[int64]Extension, len(extensions))}
	for _, e := range extensions {
		r.byID[ID(e.Name())] = e
	}
	return r
}

// Lookup finds a registered extension by packed id.
func (r *Registry) Lookup(id int64) (Extension, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Manager is the run-time load state: the LIFO of currently loaded
// extensions, and one dispatch stack per letter A-Z holding indices into
// that LIFO in load order (top of stack is the active handler).
type Manager struct {
	registry  *Registry
	loaded    []Extension
	perLetter [26][]int // indices into loaded, per letter A-Z
}

// NewManager returns a Manager with nothing loaded.
func NewManager(r *Registry) *Manager {
	return &Manager{registry: r}
}

// Load implements `(`: finds id in the registry, and if found, pushes it
// onto loaded and, for each letter it implements, onto that letter's
// dispatch stack. Reports whether a matching fingerprint was found.
func (m *Manager) Load(id int64) bool {
	ext, ok := m.registry.Lookup(id)
	if !ok {
		return false
	}
	idx := len(m.loaded)
	m.loaded = append(m.loaded, ext)
	for i := 0; i < len(ext.Instructions()); i++ {
		letter := ext.Instructions()[i] - 'A'
		if letter < 26 {
			m.perLetter[letter] = append(m.perLetter[letter], idx)
		}
	}
	return true
}

// Unload implements `)`: finds the topmost loaded extension matching id,
// removes it from loaded, and pops one index off each letter dispatch
// stack it contributed to. Reports whether a match was found.
func (m *Manager) Unload(id int64) bool {
	for i := len(m.loaded) - 1; i >= 0; i-- {
		if ID(m.loaded[i].Name()) != id {
			continue
		}
		ext := m.loaded[i]
		m.loaded = append(m.loaded[:i], m.loaded[i+1:]...)
		for li := 0; li < len(ext.Instructions()); li++ {
			letter := ext.Instructions()[li] - 'A'
			if letter >= 26 {
				continue
			}
			stack := m.perLetter[letter]
			for j := len(stack) - 1; j >= 0; j-- {
				if stack[j] == i {
					m.perLetter[letter] = append(stack[:j], stack[j+1:]...)
					break
				}
			}
		}
		// Any remaining index greater than the removed slot, in every
		// letter's stack, shifts down by one, since loaded was spliced.
		for l := range m.perLetter {
			for j := range m.perLetter[l] {
				if m.perLetter[l][j] > i {
					m.perLetter[l][j]--
				}
			}
		}
		return true
	}
	return false
}

// Dispatch looks up the top of letter's dispatch stack and, if present,
// runs that extension. It reports (handled, found): found is false if no
// fingerprint implements letter at all (caller should reflect), and
// handled is false if the extension itself declined the instruction.
func (m *Manager) Dispatch(ctx ProgramContext, letter byte) (handled bool, found bool) {
	idx := letter - 'A'
	if idx >= 26 || len(m.perLetter[idx]) == 0 {
		return false, false
	}
	top := m.perLetter[idx][len(m.perLetter[idx])-1]
	ext := m.loaded[top]
	return ext.Execute(ctx, letter), true
}
