package asm

import (
	"strings"
	"testing"

	"go.redcode.dev/mars/redcode"
)

func TestParseDwarf(t *testing.T) {
	src := "ADD.AB #4, $3\nMOV.I $2, @2\nJMP.B $-2, $0\nDAT.F #0, #0"
	w, err := Parse(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.Instructions) != 4 {
		t.Fatalf("got %d instructions, want 4", len(w.Instructions))
	}
	if w.EntryOffset != 0 {
		t.Fatalf("EntryOffset = %d, want 0", w.EntryOffset)
	}
	if w.Instructions[0].Opcode != redcode.ADD || w.Instructions[0].Modifier != redcode.AB {
		t.Fatalf("unexpected first instruction: %+v", w.Instructions[0])
	}
}

func TestParseComments(t *testing.T) {
	src := "; a comment\nDAT.F #0, #0 ; trailing comment\n\n"
	w, err := Parse(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.Instructions) != 1 {
		t.Fatalf("got %d instructions, want 1", len(w.Instructions))
	}
}

func TestParseOrgDirective(t *testing.T) {
	src := "ORG start\nJMP.B $0, $0\nstart: DAT.F #0, #0"
	w, err := Parse(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.EntryOffset != 1 {
		t.Fatalf("EntryOffset = %d, want 1", w.EntryOffset)
	}
}

func TestParseOrgNotAtHead(t *testing.T) {
	src := "DAT.F #0, #0\nORG foo"
	_, err := Parse(src, Options{})
	if err == nil {
		t.Fatal("expected error for ORG not at file head")
	}
}

func TestParseOrgUndefinedLabel(t *testing.T) {
	src := "ORG nowhere\nDAT.F #0, #0"
	_, err := Parse(src, Options{})
	if err == nil {
		t.Fatal("expected error for undefined ORG label")
	}
}

func TestParseDuplicateLabel(t *testing.T) {
	src := "x: DAT.F #0, #0\nx: DAT.F #0, #0"
	_, err := Parse(src, Options{})
	if err == nil {
		t.Fatal("expected error for duplicate label")
	}
}

func TestParseMissingModifier(t *testing.T) {
	_, err := Parse("MOV $0, $1", Options{})
	if err == nil {
		t.Fatal("expected error for missing modifier")
	}
}

func TestParseMissingBOperand(t *testing.T) {
	_, err := Parse("DAT.F #0", Options{})
	if err == nil {
		t.Fatal("expected error for missing B-operand")
	}
}

func TestParseUnknownOpcode(t *testing.T) {
	_, err := Parse("FOO.F #0, #0", Options{})
	if err == nil {
		t.Fatal("expected error for unknown opcode")
	}
}

func TestParseNonDecimalOperand(t *testing.T) {
	_, err := Parse("DAT.F #x, #0", Options{})
	if err == nil {
		t.Fatal("expected error for non-decimal operand")
	}
}

func TestParseEmptyWarrior(t *testing.T) {
	_, err := Parse("; only a comment\n", Options{})
	if err == nil {
		t.Fatal("expected error for empty instruction list")
	}
}

func TestParse1988RulesRejectsMUL(t *testing.T) {
	_, err := Parse("MUL.AB #1, $1", Options{Use1988Rules: true})
	if err == nil {
		t.Fatal("expected 1988-rules violation for MUL")
	}
}

func TestParse1988RulesAcceptsSPL(t *testing.T) {
	_, err := Parse("SPL.B $0, $0", Options{Use1988Rules: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseWarriorLengthExceeded(t *testing.T) {
	src := "DAT.F #0, #0\nDAT.F #0, #0\nDAT.F #0, #0"
	_, err := Parse(src, Options{MaxWarriorLength: 2})
	if err == nil {
		t.Fatal("expected error for warrior exceeding max length")
	}
	if !strings.Contains(err.Error(), "maximum length") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestParseInstructionRoundTrip(t *testing.T) {
	want := redcode.Instruction{Opcode: redcode.JMP, Modifier: redcode.B, AMode: redcode.Direct, BMode: redcode.Direct, AField: -2, BField: 0}
	got, err := ParseInstruction(want.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}
