package sysinfo

import (
	"testing"
	"time"

	"funge98/internal/cellkind"
)

func TestFlattenVersion(t *testing.T) {
	if v := flattenVersion("v1.2.3"); v != 10203 {
		t.Fatalf("flattenVersion(v1.2.3) = %d, want 10203", v)
	}
	if v := flattenVersion("not-a-version"); v != 0 {
		t.Fatalf("flattenVersion of an invalid string = %d, want 0", v)
	}
}

func TestPackHandprint(t *testing.T) {
	if got := packHandprint("GOBF"); got != 0x474F4246 {
		t.Fatalf("packHandprint(GOBF) = %#x, want 0x474F4246", got)
	}
}

func TestPackDateTime(t *testing.T) {
	tm := time.Date(2026, time.March, 5, 13, 45, 6, 0, time.UTC)
	if d := packDate(tm); d != int64(126)*256*256+3*256+5 {
		t.Fatalf("packDate = %d, want %d", d, int64(126)*256*256+3*256+5)
	}
	if tt := packTime(tm); tt != 13*256*256+45*256+6 {
		t.Fatalf("packTime = %d, want %d", tt, 13*256*256+45*256+6)
	}
}

func TestReportFieldCountAndOrder(t *testing.T) {
	f := cellkind.NewFactory(4)
	report := Report(f, FlagIInstruction|FlagOInstruction, IPState{ID: 1, X: 3, Y: 4}, 1,
		Bounds{LeastX: 0, LeastY: 0, GreatestDX: 10, GreatestDY: 5},
		[]int{2, 0}, []string{"prog"}, []string{"A=1"}, time.Now())

	if report[0].Int64() != FlagIInstruction|FlagOInstruction {
		t.Fatalf("report[0] (flags) = %d, want %d", report[0].Int64(), FlagIInstruction|FlagOInstruction)
	}
	if report[1].Int64() != 4 {
		t.Fatalf("report[1] (cell width) = %d, want 4", report[1].Int64())
	}
	if report[2].Int64() != packHandprint(Handprint) {
		t.Fatal("report[2] should be the packed handprint")
	}

	// The fixed-field count n is pushed right after the argv/env blocks,
	// as the very last element.
	n := report[len(report)-1].Int64()
	if n <= 0 || n >= int64(len(report)) {
		t.Fatalf("trailing field count n = %d, out of range for %d total fields", n, len(report))
	}
}

func TestReportIncludesArgvAndEnvAsNullTerminatedBlocks(t *testing.T) {
	f := cellkind.NewFactory(4)
	report := Report(f, 0, IPState{}, 1, Bounds{}, nil, []string{"ab"}, []string{"X=1"}, time.Now())

	var bytesOut []byte
	for _, c := range report {
		bytesOut = append(bytesOut, byte(c.Int64()))
	}
	s := string(bytesOut)
	if !containsSubsequence(s, "ab\x00\x00") {
		t.Fatalf("report should contain argv bytes ending in a double zero, got %q", s)
	}
	if !containsSubsequence(s, "X=1\x00\x00") {
		t.Fatalf("report should contain env bytes ending in a double zero, got %q", s)
	}
}

func containsSubsequence(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
