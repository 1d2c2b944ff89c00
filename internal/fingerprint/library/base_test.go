package library

import "testing"

func TestBaseWriteBinary(t *testing.T) {
	b := NewBase()
	ctx := newStubContext("")
	ctx.push(5)
	b.Execute(ctx, 'B')
	if got := ctx.outBuf.String(); got != "101 " {
		t.Fatalf("writeBase(2) on 5 = %q, want %q", got, "101 ")
	}
}

func TestBaseWriteHex(t *testing.T) {
	b := NewBase()
	ctx := newStubContext("")
	ctx.push(255)
	b.Execute(ctx, 'H')
	if got := ctx.outBuf.String(); got != "ff " {
		t.Fatalf("writeBase(16) on 255 = %q, want %q", got, "ff ")
	}
}

func TestBaseReadCustomBase(t *testing.T) {
	b := NewBase()
	ctx := newStubContext("101")
	ctx.push(2)
	b.Execute(ctx, 'N')
	if v := ctx.Pop().Int64(); v != 5 {
		t.Fatalf("readBase(2) on \"101\" = %d, want 5", v)
	}
}

func TestBaseUnknownInstructionDeclines(t *testing.T) {
	b := NewBase()
	ctx := newStubContext("")
	if b.Execute(ctx, 'Z') {
		t.Fatal("BASE doesn't implement Z, Execute should decline")
	}
}
