package asm

// Options controls how Parse reads a warrior's source text.
type Options struct {
	// Use1988Rules restricts opcodes, modifiers and addressing modes to the
	// 1988 ICWS subset, and forbids modifier-less instructions from
	// defaulting to anything outside that subset.
	Use1988Rules bool

	// MaxWarriorLength caps the number of instructions a warrior may
	// assemble to. Zero means no cap beyond the global hard limit.
	MaxWarriorLength int
}

// hardMaxWarriorLength mirrors the reference implementation's
// MAX_WARRIOR_LENGTH constant, enforced during parsing regardless of the
// battle-specific MaxWarriorLength in Options.
const hardMaxWarriorLength = 262144
