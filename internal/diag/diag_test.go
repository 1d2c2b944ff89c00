package diag

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatIncludesPositionAndMessage(t *testing.T) {
	w := Warning{At: time.Date(2026, 1, 1, 9, 5, 3, 0, time.UTC), X: 2, Y: 7, Message: "addition resulted in overflow"}
	got := Format(w)
	if !strings.Contains(got, "09:05:03") {
		t.Fatalf("Format() = %q, missing timestamp", got)
	}
	if !strings.Contains(got, "(2,7)") {
		t.Fatalf("Format() = %q, missing position", got)
	}
	if !strings.Contains(got, "addition resulted in overflow") {
		t.Fatalf("Format() = %q, missing message", got)
	}
}

func TestEmitWritesNewlineTerminated(t *testing.T) {
	var buf bytes.Buffer
	Emit(&buf, Warning{At: time.Now(), Message: "division by zero"})
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatal("Emit should write a trailing newline")
	}
}

func TestFormatCellCount(t *testing.T) {
	if got := FormatCellCount(1234); got != "1,234 cells" {
		t.Fatalf("FormatCellCount(1234) = %q, want %q", got, "1,234 cells")
	}
}
