package cellkind

import "testing"

func TestFromInt64RoundTrips(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8, 16} {
		f := NewFactory(width)
		c := f.FromInt64(41)
		if c.Int64() != 41 {
			t.Fatalf("width %d: got %d, want 41", width, c.Int64())
		}
		if c.Width() != width {
			t.Fatalf("width %d: Width() returned %d", width, c.Width())
		}
	}
}

func TestNarrowOverflowWraps(t *testing.T) {
	f := NewFactory(1)
	a := f.FromInt64(max8)
	b := f.FromInt64(1)
	sum, ok := a.Add(b)
	if !ok {
		t.Fatal("expected overflow to be reported")
	}
	if sum.Int64() != min8 {
		t.Fatalf("got %d, want wraparound to %d", sum.Int64(), min8)
	}
}

func Test64BitMulOverflow(t *testing.T) {
	f := NewFactory(8)
	big := f.FromInt64(1 << 40)
	prod, ok := big.Mul(big)
	if !ok {
		t.Fatal("expected overflow")
	}
	_ = prod
}

func TestCell128NoOverflowForLargeValues(t *testing.T) {
	f := NewFactory(16)
	a := f.FromInt64(1 << 62)
	b := f.FromInt64(1 << 62)
	sum, ok := a.Add(b)
	if ok {
		t.Fatal("sum of two 2^62 values should not overflow a 128-bit cell")
	}
	if sum.String() == "" {
		t.Fatal("expected a non-empty decimal string")
	}
}

func TestCmpAndIsZero(t *testing.T) {
	f := NewFactory(4)
	zero := f.Zero()
	if !zero.IsZero() {
		t.Fatal("Zero() should report IsZero")
	}
	one := f.FromInt64(1)
	if one.Cmp(zero) <= 0 {
		t.Fatal("1 should compare greater than 0")
	}
}

func TestNegHandlesMinInt64(t *testing.T) {
	f := NewFactory(8)
	min := f.FromInt64(minInt64)
	neg := min.Neg()
	if neg.Int64() != minInt64 {
		t.Fatalf("negating MinInt64 should wrap back to itself, got %d", neg.Int64())
	}
}
