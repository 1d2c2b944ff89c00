package library

import "testing"

func TestModuFlooredModulo(t *testing.T) {
	m := NewModu()
	ctx := newStubContext("")
	ctx.push(-1) // a
	ctx.push(3)  // b
	m.Execute(ctx, 'M')
	if v := ctx.Pop().Int64(); v != 2 {
		t.Fatalf("-1 M 3 = %d, want 2 (floored)", v)
	}
}

func TestModuPlainRemainder(t *testing.T) {
	m := NewModu()
	ctx := newStubContext("")
	ctx.push(-1)
	ctx.push(3)
	m.Execute(ctx, 'R')
	if v := ctx.Pop().Int64(); v != -1 {
		t.Fatalf("-1 R 3 = %d, want -1 (truncated)", v)
	}
}

func TestModuUnsigned(t *testing.T) {
	m := NewModu()
	ctx := newStubContext("")
	ctx.push(-7)
	ctx.push(-3)
	m.Execute(ctx, 'U')
	if v := ctx.Pop().Int64(); v != 1 {
		t.Fatalf("-7 U -3 = %d, want 1", v)
	}
}

func TestModuByZeroPushesZero(t *testing.T) {
	m := NewModu()
	ctx := newStubContext("")
	ctx.push(5)
	ctx.push(0)
	m.Execute(ctx, 'M')
	if v := ctx.Pop().Int64(); v != 0 {
		t.Fatalf("modulo by zero = %d, want 0", v)
	}
}
