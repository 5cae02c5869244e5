package battle

import (
	"strings"
	"testing"

	"go.redcode.dev/mars/mars"
	"go.redcode.dev/mars/trace"
)

func scenarioConfig() mars.Config {
	return mars.Config{
		CoreSize: 8000, MaxCycles: 80000, MaxProcesses: 8000,
		ReadLimit: 8000, WriteLimit: 8000,
		MinDistance: 100, MaxWarriorLength: 100,
		Rounds: 10, Seed: 1,
	}
}

func TestImpVsImp(t *testing.T) {
	imp := "MOV.I $0, $1"
	got := Run(imp, 10, imp, 20, scenarioConfig(), trace.NopSink{})
	want := "10 0 0 0 10 scores\n20 0 0 0 10 scores"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDwarfVsSuicide(t *testing.T) {
	dwarf := "ADD.AB #4, $3\nMOV.I $2, @2\nJMP.B $-2, $0\nDAT.F #0, #0"
	suicide := "DAT.F #0, #0"
	got := Run(dwarf, 10, suicide, 20, scenarioConfig(), trace.NopSink{})
	// Dwarf wins every round; after round 6 the score gap (18) exceeds
	// 3*rounds_remaining (12), so the tournament stops early at 18-0
	// instead of playing out all 10 rounds for 30-0.
	want := "10 0 0 0 18 scores\n20 0 0 0 0 scores"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestImpVsStone(t *testing.T) {
	imp := "MOV.I $0, $1"
	stone := "DAT.F #0, #0\nMOV.AB #0, $-1"
	got := Run(imp, 10, stone, 20, scenarioConfig(), trace.NopSink{})
	// Same early-termination arithmetic as TestDwarfVsSuicide: Imp wins
	// every round and the tournament stops at 18-0 after round 6.
	want := "10 0 0 0 18 scores\n20 0 0 0 0 scores"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMutualAnnihilation(t *testing.T) {
	dat := "DAT.F #0, #0"
	got := Run(dat, 10, dat, 20, scenarioConfig(), trace.NopSink{})
	want := "10 0 0 0 15 scores\n20 0 0 0 15 scores"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSPLBomb(t *testing.T) {
	bomb := "SPL.B $0, $0\nJMP.B $-1, $0"
	suicide := "DAT.F #0, #0"
	got := Run(bomb, 10, suicide, 20, scenarioConfig(), trace.NopSink{})
	// Same early-termination arithmetic as TestDwarfVsSuicide: the bomb
	// wins every round and the tournament stops at 18-0 after round 6.
	want := "10 0 0 0 18 scores\n20 0 0 0 0 scores"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunReportsParseErrors(t *testing.T) {
	got := Run("NOTANOPCODE.F #0, #0", 10, "DAT.F #0, #0", 20, scenarioConfig(), trace.NopSink{})
	if !strings.HasPrefix(got, "ERROR: ") {
		t.Fatalf("expected ERROR-prefixed result, got %q", got)
	}
}

func TestRunReportsConfigErrors(t *testing.T) {
	cfg := scenarioConfig()
	cfg.CoreSize = 1 // below the hard minimum of 2
	got := Run("DAT.F #0, #0", 10, "DAT.F #0, #0", 20, cfg, trace.NopSink{})
	if !strings.HasPrefix(got, "ERROR: ") {
		t.Fatalf("expected ERROR-prefixed result, got %q", got)
	}
}

func TestDeterminismWithFixedSeed(t *testing.T) {
	imp := "MOV.I $0, $1"
	stone := "DAT.F #0, #0\nMOV.AB #0, $-1"
	cfg := scenarioConfig()
	a := Run(imp, 10, stone, 20, cfg, trace.NopSink{})
	b := Run(imp, 10, stone, 20, cfg, trace.NopSink{})
	if a != b {
		t.Fatalf("non-deterministic result with fixed seed: %q vs %q", a, b)
	}
}
