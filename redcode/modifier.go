package redcode

// Modifier selects which field(s) of the source and destination
// instructions participate in an opcode's execution.
//
// F is given the zero value so that a zero-value Instruction is the
// canonical DAT.F $0, $0 cell the arena is initialized with.
type Modifier int

const (
	F Modifier = iota
	A
	B
	AB
	BA
	X
	I
)

var modifierNames = [...]string{
	F: "F", A: "A", B: "B", AB: "AB", BA: "BA", X: "X", I: "I",
}

func (m Modifier) String() string {
	if int(m) < 0 || int(m) >= len(modifierNames) {
		return "UNKNOWN"
	}
	return modifierNames[m]
}

var modifierLookup = func() map[string]Modifier {
	m := make(map[string]Modifier, len(modifierNames))
	for mod, name := range modifierNames {
		m[name] = Modifier(mod)
	}
	return m
}()

// LookupModifier resolves a (already upper-cased) modifier token.
func LookupModifier(token string) (Modifier, bool) {
	mod, ok := modifierLookup[token]
	return mod, ok
}

// AllowedIn1988 reports whether the modifier is part of the restricted 1988
// modifier set.
func (m Modifier) AllowedIn1988() bool {
	switch m {
	case A, B, AB, BA, F:
		return true
	default:
		return false
	}
}
