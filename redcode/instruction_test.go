package redcode

import "testing"

func TestZeroValueIsCanonicalDATCell(t *testing.T) {
	var zero Instruction
	if zero.Opcode != DAT || zero.Modifier != F || zero.AMode != Direct || zero.BMode != Direct {
		t.Fatalf("zero-value Instruction is not the canonical DAT.F $0, $0 cell: %+v", zero)
	}
	if zero.String() != "DAT.F $0, $0" {
		t.Fatalf("String() = %q, want %q", zero.String(), "DAT.F $0, $0")
	}
}

func TestOpcodeLookupSEQAliasesToCMP(t *testing.T) {
	op, ok := LookupOpcode("SEQ")
	if !ok || op != CMP {
		t.Fatalf("LookupOpcode(SEQ) = (%v,%v), want (CMP,true)", op, ok)
	}
}

func TestWarriorEqual(t *testing.T) {
	a := Warrior{Instructions: []Instruction{{Opcode: MOV, Modifier: I}}, EntryOffset: 0}
	b := Warrior{Instructions: []Instruction{{Opcode: MOV, Modifier: I}}, EntryOffset: 0}
	c := Warrior{Instructions: []Instruction{{Opcode: MOV, Modifier: A}}, EntryOffset: 0}
	if !a.Equal(b) {
		t.Fatal("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Fatal("expected !a.Equal(c)")
	}
}
