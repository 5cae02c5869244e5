package asm

import (
	"strings"

	"go.redcode.dev/mars/redcode"
)

// ParseInstruction parses a single unlabeled instruction line, the same
// grammar Parse uses for each warrior line. It exists for disassembler
// round-trip tests and tools that work one instruction at a time rather
// than a whole warrior file.
func ParseInstruction(line string) (redcode.Instruction, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return redcode.Instruction{}, parseErrorf(0, line, "empty instruction")
	}
	return parseInstructionLine(sourceLine{num: 0, text: trimmed}, trimmed)
}
