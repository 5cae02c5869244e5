// Package asm turns Redcode warrior source text into a redcode.Warrior the
// mars engine can place and execute.
package asm

import (
	"strconv"
	"strings"

	"go.redcode.dev/mars/redcode"
)

// sourceLine is a single non-blank, comment-stripped input line together
// with the original line number it came from, kept around for error
// reporting.
type sourceLine struct {
	num  int
	text string
}

// Parse assembles Redcode source text into a Warrior, enforcing the §4.C
// grammar: one labeled-or-unlabeled instruction per line, a required
// opcode.modifier pair, two explicit mode-prefixed operands, and an
// optional ORG directive as the first line.
func Parse(source string, opts Options) (redcode.Warrior, error) {
	lines := stripCommentsAndBlanks(source)
	if len(lines) == 0 {
		return redcode.Warrior{}, parseErrorf(0, "", "warrior has no instructions")
	}

	labels := map[string]int{}
	var instructions []redcode.Instruction

	orgTarget := ""
	orgSeen := false

	limit := opts.MaxWarriorLength
	if limit <= 0 || limit > hardMaxWarriorLength {
		limit = hardMaxWarriorLength
	}

	for i, ln := range lines {
		if target, ok, err := tryParseOrg(ln, i); err != nil {
			return redcode.Warrior{}, err
		} else if ok {
			orgTarget = target
			orgSeen = true
			continue
		}

		label, rest := splitLabel(ln.text)
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return redcode.Warrior{}, parseErrorf(ln.num, ln.text, "label with no instruction")
		}

		if label != "" {
			if _, dup := labels[label]; dup {
				return redcode.Warrior{}, parseErrorf(ln.num, ln.text, "duplicate label %q", label)
			}
			labels[label] = len(instructions)
		}

		if strings.EqualFold(strings.Fields(rest)[0], "ORG") {
			return redcode.Warrior{}, parseErrorf(ln.num, ln.text, "ORG must be the first instruction of the file")
		}

		inst, err := parseInstructionLine(ln, rest)
		if err != nil {
			return redcode.Warrior{}, err
		}
		if opts.Use1988Rules {
			if err := check1988(ln, inst); err != nil {
				return redcode.Warrior{}, err
			}
		}

		if len(instructions)+1 > limit {
			return redcode.Warrior{}, parseErrorf(ln.num, ln.text, "warrior exceeds maximum length of %d instructions", limit)
		}
		instructions = append(instructions, inst)
	}

	if len(instructions) == 0 {
		return redcode.Warrior{}, parseErrorf(0, "", "warrior has no instructions")
	}

	entryOffset := 0
	if orgSeen {
		idx, ok := labels[orgTarget]
		if !ok {
			return redcode.Warrior{}, parseErrorf(0, orgTarget, "ORG references undefined label %q", orgTarget)
		}
		entryOffset = idx
	}

	return redcode.Warrior{Instructions: instructions, EntryOffset: entryOffset}, nil
}

// tryParseOrg recognizes "ORG <label>" when it is the first line of the
// file. i is the index of ln within the already-filtered line list.
func tryParseOrg(ln sourceLine, i int) (string, bool, error) {
	fields := strings.Fields(ln.text)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "ORG") {
		return "", false, nil
	}
	if i != 0 {
		return "", false, parseErrorf(ln.num, ln.text, "ORG must be the first instruction of the file")
	}
	if len(fields) != 2 {
		return "", false, parseErrorf(ln.num, ln.text, "ORG takes exactly one label argument")
	}
	return fields[1], true, nil
}

// splitLabel separates a leading label from the rest of an instruction
// line. Per §4.C, a label is any leading token containing no '.'; an
// opcode token always contains one (OPCODE.MODIFIER), so the distinction
// is unambiguous.
func splitLabel(line string) (string, string) {
	trimmed := strings.TrimLeft(line, " \t")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return "", trimmed
	}
	first := fields[0]
	if strings.Contains(first, ".") {
		return "", trimmed
	}
	label := strings.TrimSuffix(first, ":")
	rest := strings.TrimPrefix(trimmed, first)
	return label, rest
}

func parseInstructionLine(ln sourceLine, rest string) (redcode.Instruction, error) {
	opTok, operandText, hasOperands := strings.Cut(rest, " ")
	opTok = strings.TrimSpace(opTok)
	operandText = strings.TrimSpace(operandText)

	name, modTok, hasMod := strings.Cut(opTok, ".")
	if !hasMod || modTok == "" {
		return redcode.Instruction{}, parseErrorf(ln.num, ln.text, "missing modifier on %q", name)
	}

	opcode, ok := redcode.LookupOpcode(name)
	if !ok {
		return redcode.Instruction{}, parseErrorf(ln.num, ln.text, "unknown opcode %q", name)
	}
	modifier, ok := redcode.LookupModifier(strings.ToUpper(modTok))
	if !ok {
		return redcode.Instruction{}, parseErrorf(ln.num, ln.text, "unknown modifier %q", modTok)
	}

	if !hasOperands || operandText == "" {
		return redcode.Instruction{}, parseErrorf(ln.num, ln.text, "missing operands for %s", name)
	}

	aText, bText, hasB := strings.Cut(operandText, ",")
	if !hasB || strings.TrimSpace(bText) == "" {
		return redcode.Instruction{}, parseErrorf(ln.num, ln.text, "missing comma or B-operand")
	}

	aMode, aField, err := parseOperand(ln, strings.TrimSpace(aText))
	if err != nil {
		return redcode.Instruction{}, err
	}
	bMode, bField, err := parseOperand(ln, strings.TrimSpace(bText))
	if err != nil {
		return redcode.Instruction{}, err
	}

	return redcode.Instruction{
		Opcode: opcode, Modifier: modifier,
		AMode: aMode, BMode: bMode,
		AField: aField, BField: bField,
	}, nil
}

func parseOperand(ln sourceLine, text string) (redcode.Mode, int, error) {
	if text == "" {
		return 0, 0, parseErrorf(ln.num, ln.text, "empty operand")
	}
	mode, ok := redcode.LookupMode(rune(text[0]))
	if !ok {
		return 0, 0, parseErrorf(ln.num, ln.text, "invalid addressing mode %q", text[:1])
	}
	digits := text[1:]
	if digits == "" {
		return 0, 0, parseErrorf(ln.num, ln.text, "operand missing value after addressing mode")
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, parseErrorf(ln.num, ln.text, "non-decimal operand %q", digits)
	}
	return mode, n, nil
}

func check1988(ln sourceLine, inst redcode.Instruction) error {
	if !inst.Opcode.AllowedIn1988() {
		return parseErrorf(ln.num, ln.text, "opcode %s not permitted under 1988 rules", inst.Opcode)
	}
	if !inst.Modifier.AllowedIn1988() {
		return parseErrorf(ln.num, ln.text, "modifier %s not permitted under 1988 rules", inst.Modifier)
	}
	if !inst.AMode.AllowedIn1988() {
		return parseErrorf(ln.num, ln.text, "addressing mode %s not permitted under 1988 rules", inst.AMode)
	}
	if !inst.BMode.AllowedIn1988() {
		return parseErrorf(ln.num, ln.text, "addressing mode %s not permitted under 1988 rules", inst.BMode)
	}
	return nil
}

func stripCommentsAndBlanks(source string) []sourceLine {
	var out []sourceLine
	for i, raw := range strings.Split(source, "\n") {
		line := raw
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, sourceLine{num: i + 1, text: line})
	}
	return out
}
