package library

import "testing"

func TestRomaSimpleDigit(t *testing.T) {
	r := NewRoma()
	ctx := newStubContext("")
	if !r.Execute(ctx, 'V') {
		t.Fatal("Execute('V') should be handled")
	}
	if v := ctx.Pop().Int64(); v != 5 {
		t.Fatalf("pushed %d, want 5", v)
	}
}

func TestRomaSubtractiveRun(t *testing.T) {
	r := NewRoma()
	ctx := newStubContext("")
	r.Execute(ctx, 'I')
	r.Execute(ctx, 'V')
	if v := ctx.Pop().Int64(); v != 4 {
		t.Fatalf("IV = %d, want 4", v)
	}
}

func TestRomaAdditiveRun(t *testing.T) {
	r := NewRoma()
	ctx := newStubContext("")
	r.Execute(ctx, 'V')
	r.Execute(ctx, 'I')
	if v := ctx.Pop().Int64(); v != 6 {
		t.Fatalf("VI = %d, want 6", v)
	}
}

func TestRomaUnknownLetterDeclines(t *testing.T) {
	r := NewRoma()
	ctx := newStubContext("")
	if r.Execute(ctx, 'Z') {
		t.Fatal("Execute('Z') should decline, ROMA doesn't implement it")
	}
}
