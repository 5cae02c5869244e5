// Package disasm formats arena cells back into Redcode source text, the
// inverse of asm.Parse for a single instruction.
package disasm

import (
	"go.redcode.dev/mars/asm"
	"go.redcode.dev/mars/redcode"
)

// Format renders an instruction in its canonical source form.
func Format(instr redcode.Instruction) string {
	return instr.String()
}

// Parse re-parses a line Format produced (or any equivalent instruction
// line), for round-trip property tests.
func Parse(line string) (redcode.Instruction, error) {
	return asm.ParseInstruction(line)
}
