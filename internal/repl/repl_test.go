package repl

import (
	"bytes"
	"strings"
	"testing"
)

func TestReplRunsProgramOnBlankLine(t *testing.T) {
	in := strings.NewReader("34+.@\n\n:exit\n")
	var out bytes.Buffer
	if err := Start(in, &out); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if !strings.Contains(out.String(), "7") {
		t.Fatalf("repl output = %q, want it to contain the printed 7", out.String())
	}
}

func TestReplDumpWithoutRunIsGraceful(t *testing.T) {
	in := strings.NewReader(":dump\n:exit\n")
	var out bytes.Buffer
	if err := Start(in, &out); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if !strings.Contains(out.String(), "no run yet") {
		t.Fatalf("repl output = %q, want the no-run-yet message", out.String())
	}
}

func TestReplExitStopsTheLoop(t *testing.T) {
	in := strings.NewReader(":exit\nthis line should never be read\n")
	var out bytes.Buffer
	if err := Start(in, &out); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
}
