package mars

import "go.redcode.dev/mars/redcode"

// Arena is a fixed-length circular buffer of instructions. Every address
// passed in or out is normalized modulo its size; there is no other bounds
// check.
type Arena struct {
	cells []redcode.Instruction
}

// newArena returns a size-cell arena. The zero value of redcode.Instruction
// is DAT.F $0, $0, so a freshly allocated slice needs no fill loop.
func newArena(size int) *Arena {
	return &Arena{cells: make([]redcode.Instruction, size)}
}

// Size returns the arena's core size.
func (a *Arena) Size() int { return len(a.cells) }

// Read returns the instruction at addr, normalized.
func (a *Arena) Read(addr int) redcode.Instruction {
	return a.cells[redcode.Normalize(addr, len(a.cells))]
}

// Write stores instr at addr, normalized.
func (a *Arena) Write(addr int, instr redcode.Instruction) {
	a.cells[redcode.Normalize(addr, len(a.cells))] = instr
}

// place copies w's instructions into the arena starting at start. Field
// values come straight from the parser and may be any signed integer
// (e.g. a literal $-2); place normalizes them into [0, core_size) the same
// way every later arena write does.
func (a *Arena) place(start int, w redcode.Warrior) {
	size := len(a.cells)
	for i, instr := range w.Instructions {
		instr.AField = redcode.Normalize(instr.AField, size)
		instr.BField = redcode.Normalize(instr.BField, size)
		a.Write(start+i, instr)
	}
}

// At returns a mutable handle to the cell at addr, for opcodes that write
// whole instructions or several of their fields in one dispatch.
func (a *Arena) At(addr int) *redcode.Instruction {
	return &a.cells[redcode.Normalize(addr, len(a.cells))]
}

// field returns a pointer to the A-field or B-field of the cell at addr,
// giving the engine a mutable handle for pre-decrement and post-increment
// side effects without exposing the whole cell.
func (a *Arena) field(addr int, useA bool) *int {
	idx := redcode.Normalize(addr, len(a.cells))
	if useA {
		return &a.cells[idx].AField
	}
	return &a.cells[idx].BField
}
