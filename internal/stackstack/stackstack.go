// Package stackstack implements Funge-98's stack-of-stacks: TOSS (the
// active stack), SOSS (the one beneath it), and the `{`/`}`/`u` block
// operations, ported field-for-field from
// original_source/src/program/sstack.rs.
package stackstack

import "funge98/internal/cellkind"

// StackOfStacks is an ordered sequence of value stacks; the last is TOSS,
// the second-last (if any) is SOSS.
type StackOfStacks struct {
	factory cellkind.Factory
	stacks  [][]cellkind.Cell
}

// New returns a StackOfStacks holding a single empty TOSS.
func New(f cellkind.Factory) *StackOfStacks {
	return &StackOfStacks{factory: f, stacks: [][]cellkind.Cell{{}}}
}

func (s *StackOfStacks) toss() []cellkind.Cell {
	return s.stacks[len(s.stacks)-1]
}

func (s *StackOfStacks) setToss(v []cellkind.Cell) {
	s.stacks[len(s.stacks)-1] = v
}

// Depth reports how many stacks are currently live (1 means TOSS only).
func (s *StackOfStacks) Depth() int { return len(s.stacks) }

// StackSizes reports each stack's length, TOSS first.
func (s *StackOfStacks) StackSizes() []int {
	sizes := make([]int, len(s.stacks))
	for i := range s.stacks {
		// TOSS is stacks[len-1]; report it first.
		sizes[i] = len(s.stacks[len(s.stacks)-1-i])
	}
	return sizes
}

// Push pushes x onto TOSS.
func (s *StackOfStacks) Push(x cellkind.Cell) {
	s.setToss(append(s.toss(), x))
}

// Pop pops and returns TOSS's top, or zero if TOSS is empty.
func (s *StackOfStacks) Pop() cellkind.Cell {
	t := s.toss()
	if len(t) == 0 {
		return s.factory.Zero()
	}
	v := t[len(t)-1]
	s.setToss(t[:len(t)-1])
	return v
}

// Clear empties TOSS.
func (s *StackOfStacks) Clear() {
	s.setToss(nil)
}

// Peek returns the n-th element of TOSS counting from the top (0 is the
// topmost element), or zero if n is out of range — used by `y`'s
// peek-deeper behaviour past the end of the system-info report.
func (s *StackOfStacks) Peek(n int) cellkind.Cell {
	t := s.toss()
	if n < 0 || n >= len(t) {
		return s.factory.Zero()
	}
	return t[len(t)-1-n]
}

// Create implements `{`: pops n off the caller's hands (n is supplied by
// the caller, already popped from TOSS) and builds a new TOSS on top,
// moving the old TOSS's tail into the new one and pushing the current
// storage offset onto what becomes SOSS.
//
//   - n > 0: move min(n, len(oldTOSS)) elements (preserving order) into
//     the new TOSS; if n exceeds len(oldTOSS), left-pad the new TOSS with
//     zeros so it has exactly n elements.
//   - n < 0: push |n| zeros onto the (soon-to-be) SOSS; new TOSS is empty.
//   - n == 0: new TOSS is empty, nothing moves.
func (s *StackOfStacks) Create(n int64, storageOffsetX, storageOffsetY cellkind.Cell) {
	old := s.toss()
	var newToss []cellkind.Cell
	switch {
	case n > 0:
		nu := int(n)
		oldLen := len(old)
		if nu > oldLen {
			newToss = make([]cellkind.Cell, 0, nu)
			for i := 0; i < nu-oldLen; i++ {
				newToss = append(newToss, s.factory.Zero())
			}
			newToss = append(newToss, old...)
			old = nil
		} else {
			split := oldLen - nu
			newToss = append([]cellkind.Cell{}, old[split:]...)
			old = old[:split]
		}
	case n < 0:
		for i := int64(0); i < -n; i++ {
			old = append(old, s.factory.Zero())
		}
	}
	s.setToss(old)
	s.Push(storageOffsetX)
	s.Push(storageOffsetY)
	s.stacks = append(s.stacks, newToss)
}

// Destroy implements `}`: fails (returns ok=false) if only one stack is
// live. Otherwise it removes TOSS, pops the restored storage offset off
// the stack beneath it (which becomes TOSS again), and returns that restored
// storage offset after applying n:
//
//   - n > 0: move the removed TOSS's top min(n, len) elements (preserving
//     order) back onto it, zero-padding below them if n exceeds len.
//   - n < 0: drop |n| elements from it (or all of them, if fewer).
//   - n == 0: the removed TOSS is discarded.
func (s *StackOfStacks) Destroy(n int64) (soX, soY cellkind.Cell, ok bool) {
	if len(s.stacks) < 2 {
		return nil, nil, false
	}
	removed := s.stacks[len(s.stacks)-1]
	s.stacks = s.stacks[:len(s.stacks)-1]

	soss := s.toss()
	soY = s.popFrom(&soss)
	soX = s.popFrom(&soss)

	switch {
	case n > 0:
		nu := int(n)
		if nu > len(removed) {
			for i := 0; i < nu-len(removed); i++ {
				soss = append(soss, s.factory.Zero())
			}
			soss = append(soss, removed...)
		} else {
			soss = append(soss, removed[len(removed)-nu:]...)
		}
	case n < 0:
		drop := int(-n)
		if drop > len(soss) {
			drop = len(soss)
		}
		soss = soss[:len(soss)-drop]
	}
	s.setToss(soss)
	return soX, soY, true
}

func (s *StackOfStacks) popFrom(stack *[]cellkind.Cell) cellkind.Cell {
	t := *stack
	if len(t) == 0 {
		return s.factory.Zero()
	}
	v := t[len(t)-1]
	*stack = t[:len(t)-1]
	return v
}

// Transfer implements `u`: fails if fewer than two stacks are live.
// n > 0 pops n elements off SOSS and pushes them onto TOSS, one at a
// time (so their order reverses); n < 0 is the symmetric TOSS-to-SOSS
// transfer; n == 0 is a no-op success.
func (s *StackOfStacks) Transfer(n int64) (ok bool) {
	if len(s.stacks) < 2 {
		return false
	}
	if n == 0 {
		return true
	}
	fromIdx, toIdx := len(s.stacks)-2, len(s.stacks)-1
	if n < 0 {
		fromIdx, toIdx = toIdx, fromIdx
	}
	count := n
	if count < 0 {
		count = -count
	}
	from := s.stacks[fromIdx]
	to := s.stacks[toIdx]
	for i := int64(0); i < count; i++ {
		var v cellkind.Cell
		if len(from) == 0 {
			v = s.factory.Zero()
		} else {
			v = from[len(from)-1]
			from = from[:len(from)-1]
		}
		to = append(to, v)
	}
	s.stacks[fromIdx] = from
	s.stacks[toIdx] = to
	return true
}
