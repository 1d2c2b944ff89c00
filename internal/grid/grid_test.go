package grid

import (
	"testing"

	"funge98/internal/cellkind"
)

func TestFromLinesReadsCells(t *testing.T) {
	f := cellkind.NewFactory(4)
	g := FromLines(f, [][]byte{[]byte("12+")})
	if g.Get(0, 0).Int64() != '1' {
		t.Fatalf("Get(0,0) = %d, want %d", g.Get(0, 0).Int64(), '1')
	}
	if g.Get(2, 0).Int64() != '+' {
		t.Fatalf("Get(2,0) = %d, want %d", g.Get(2, 0).Int64(), '+')
	}
}

func TestGetOutOfBoundsReadsBlank(t *testing.T) {
	f := cellkind.NewFactory(4)
	g := New(f)
	if g.Get(100, 100).Int64() != cellkind.Blank {
		t.Fatal("reading an untouched coordinate should return blank")
	}
}

func TestPutGrowsBounds(t *testing.T) {
	f := cellkind.NewFactory(4)
	g := New(f)
	g.Put(5, 5, f.FromInt64('x'))
	b := g.Bounds()
	if b.OutOfBounds(5, 5) {
		t.Fatal("bounds should grow to cover a newly written point")
	}
	if g.Get(5, 5).Int64() != 'x' {
		t.Fatal("Get should return the value just Put")
	}
}

func TestPutBlankShrinksBounds(t *testing.T) {
	f := cellkind.NewFactory(4)
	g := New(f)
	g.Put(0, 0, f.FromInt64('a'))
	g.Put(4, 0, f.FromInt64('b'))
	g.Put(4, 0, f.Blank())
	b := g.Bounds()
	if !b.OutOfBounds(4, 0) {
		t.Fatal("erasing the rightmost cell should shrink bounds back inward")
	}
}

func TestLeastAndGreatestPoint(t *testing.T) {
	f := cellkind.NewFactory(4)
	g := New(f)
	g.Put(2, 3, f.FromInt64('a'))
	g.Put(5, 1, f.FromInt64('b'))
	lx, ly := g.LeastPoint()
	if lx != 2 || ly != 1 {
		t.Fatalf("LeastPoint() = (%d,%d), want (2,1)", lx, ly)
	}
	gdx, gdy := g.GreatestPoint()
	if gdx != 3 || gdy != 2 {
		t.Fatalf("GreatestPoint() = (%d,%d), want (3,2)", gdx, gdy)
	}
}
