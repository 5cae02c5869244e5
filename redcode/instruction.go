package redcode

import "fmt"

// Instruction is a value record for a single Redcode cell: opcode, modifier,
// the two addressing modes and their normalized fields. Equality is
// structural over all six fields — the zero value is the canonical
// DAT.F $0, $0 cell the arena is initialized with.
type Instruction struct {
	Opcode   Opcode
	Modifier Modifier
	AMode    Mode
	BMode    Mode
	AField   int
	BField   int
}

// String renders the instruction in its canonical source form,
// <OPCODE>.<MOD> <a_mode><a_field>, <b_mode><b_field>.
func (ins Instruction) String() string {
	return fmt.Sprintf("%s.%s %s%d, %s%d", ins.Opcode, ins.Modifier, ins.AMode, ins.AField, ins.BMode, ins.BField)
}

// Warrior is a finite ordered sequence of Instructions plus the address (as
// an offset from the warrior's placement) its first process starts at.
type Warrior struct {
	Instructions []Instruction
	EntryOffset  int
}

// Equal reports whether two warriors have identical instruction sequences
// and entry offsets. Not used by Tournament.Run (see DESIGN.md), kept as
// a standalone, independently tested comparison.
func (w Warrior) Equal(other Warrior) bool {
	if w.EntryOffset != other.EntryOffset || len(w.Instructions) != len(other.Instructions) {
		return false
	}
	for i, ins := range w.Instructions {
		if ins != other.Instructions[i] {
			return false
		}
	}
	return true
}
