package mars

import "go.redcode.dev/mars/redcode"

// fieldSel picks one of an instruction's two fields, the axis every
// modifier table in §4.E is expressed over.
type fieldSel int

const (
	fieldA fieldSel = iota
	fieldB
)

func getField(i redcode.Instruction, f fieldSel) int {
	if f == fieldA {
		return i.AField
	}
	return i.BField
}

func setField(i *redcode.Instruction, f fieldSel, v int) {
	if f == fieldA {
		i.AField = v
	} else {
		i.BField = v
	}
}

type fieldPair struct {
	src, dst fieldSel
}

// modifierPairs returns which src field feeds which dst field for a
// modifier, for every opcode family except MOV.I (a whole-instruction
// copy, handled separately) and the JMZ/JMN/DJN family (which tests
// fields of a single instruction rather than mapping src onto dst). I is
// treated the same as F here, per §4.E.
func modifierPairs(m redcode.Modifier) []fieldPair {
	switch m {
	case redcode.A:
		return []fieldPair{{fieldA, fieldA}}
	case redcode.B:
		return []fieldPair{{fieldB, fieldB}}
	case redcode.AB:
		return []fieldPair{{fieldA, fieldB}}
	case redcode.BA:
		return []fieldPair{{fieldB, fieldA}}
	case redcode.X:
		return []fieldPair{{fieldA, fieldB}, {fieldB, fieldA}}
	default: // F, I
		return []fieldPair{{fieldA, fieldA}, {fieldB, fieldB}}
	}
}

// testFields returns which field(s) of a single instruction a JMZ, JMN or
// DJN inspects (or decrements) for its modifier. A and AB test the A
// field only; B and BA test the B field only; F, X and I test both.
func testFields(m redcode.Modifier) []fieldSel {
	switch m {
	case redcode.A, redcode.AB:
		return []fieldSel{fieldA}
	case redcode.B, redcode.BA:
		return []fieldSel{fieldB}
	default:
		return []fieldSel{fieldA, fieldB}
	}
}
