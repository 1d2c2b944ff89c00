package stackstack

import (
	"testing"

	"funge98/internal/cellkind"
)

func TestPushPopOrder(t *testing.T) {
	f := cellkind.NewFactory(4)
	s := New(f)
	s.Push(f.FromInt64(1))
	s.Push(f.FromInt64(2))
	if v := s.Pop().Int64(); v != 2 {
		t.Fatalf("Pop() = %d, want 2", v)
	}
	if v := s.Pop().Int64(); v != 1 {
		t.Fatalf("Pop() = %d, want 1", v)
	}
}

func TestPopEmptyReturnsZero(t *testing.T) {
	f := cellkind.NewFactory(4)
	s := New(f)
	if v := s.Pop().Int64(); v != 0 {
		t.Fatalf("Pop() on empty stack = %d, want 0", v)
	}
}

func TestCreateAndDestroyRoundTrip(t *testing.T) {
	f := cellkind.NewFactory(4)
	s := New(f)
	s.Push(f.FromInt64(1))
	s.Push(f.FromInt64(2))
	s.Push(f.FromInt64(3))

	s.Create(2, f.FromInt64(10), f.FromInt64(20))
	if s.Depth() != 2 {
		t.Fatalf("Depth() after Create = %d, want 2", s.Depth())
	}
	if v := s.Pop().Int64(); v != 3 {
		t.Fatalf("new TOSS top = %d, want 3 (moved from old TOSS)", v)
	}
	if v := s.Pop().Int64(); v != 2 {
		t.Fatalf("new TOSS second = %d, want 2", v)
	}

	soX, soY, ok := s.Destroy(0)
	if !ok {
		t.Fatal("Destroy should succeed with two live stacks")
	}
	if soX.Int64() != 10 || soY.Int64() != 20 {
		t.Fatalf("Destroy restored offset (%d,%d), want (10,20)", soX.Int64(), soY.Int64())
	}
	if s.Depth() != 1 {
		t.Fatalf("Depth() after Destroy = %d, want 1", s.Depth())
	}
	if v := s.Pop().Int64(); v != 1 {
		t.Fatalf("remaining SOSS top = %d, want 1", v)
	}
}

func TestDestroyFailsWithOneStack(t *testing.T) {
	f := cellkind.NewFactory(4)
	s := New(f)
	if _, _, ok := s.Destroy(0); ok {
		t.Fatal("Destroy should fail when only TOSS is live")
	}
}

func TestTransferMovesBetweenStacks(t *testing.T) {
	f := cellkind.NewFactory(4)
	s := New(f)
	s.Push(f.FromInt64(1))
	// Create moves old TOSS's storage offset onto what becomes SOSS, so
	// SOSS is now [1, 0, 0] (the two zero offsets on top) and TOSS is empty.
	s.Create(0, f.Zero(), f.Zero())
	s.Push(f.FromInt64(9))

	if ok := s.Transfer(1); !ok {
		t.Fatal("Transfer should succeed with two live stacks")
	}
	// Transfer(1) pops one element off SOSS (the top offset, 0) and pushes
	// it onto TOSS, so TOSS's new top is that transferred 0, not the 9
	// already there.
	if v := s.Pop().Int64(); v != 0 {
		t.Fatalf("TOSS top after transfer = %d, want 0 (transferred from SOSS)", v)
	}
	if v := s.Pop().Int64(); v != 9 {
		t.Fatalf("TOSS second after transfer = %d, want 9 (original TOSS content)", v)
	}
}

func TestTransferFailsWithOneStack(t *testing.T) {
	f := cellkind.NewFactory(4)
	s := New(f)
	if s.Transfer(1) {
		t.Fatal("Transfer should fail when only one stack is live")
	}
}

func TestPeekOutOfRangeReturnsZero(t *testing.T) {
	f := cellkind.NewFactory(4)
	s := New(f)
	s.Push(f.FromInt64(5))
	if v := s.Peek(5).Int64(); v != 0 {
		t.Fatalf("Peek out of range = %d, want 0", v)
	}
	if v := s.Peek(0).Int64(); v != 5 {
		t.Fatalf("Peek(0) = %d, want 5", v)
	}
}

func TestStackSizesReportsTossFirst(t *testing.T) {
	f := cellkind.NewFactory(4)
	s := New(f)
	s.Push(f.FromInt64(1))
	s.Push(f.FromInt64(2))
	s.Create(1, f.Zero(), f.Zero())
	sizes := s.StackSizes()
	if len(sizes) != 2 {
		t.Fatalf("StackSizes() len = %d, want 2", len(sizes))
	}
	if sizes[0] != 1 {
		t.Fatalf("TOSS size = %d, want 1", sizes[0])
	}
}
