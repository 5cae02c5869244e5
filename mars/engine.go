package mars

import (
	"fmt"

	"go.redcode.dev/mars/redcode"
	"go.redcode.dev/mars/trace"
)

// Engine evaluates one instruction at a time against a shared Arena. It
// holds no per-process state, so the same Engine can drive every process
// in a round.
type Engine struct {
	Arena        *Arena
	CoreSize     int
	ReadLimit    int
	WriteLimit   int
	MaxProcesses int
	Trace        trace.Sink
}

func syntheticImmediate(field int) redcode.Instruction {
	return redcode.Instruction{
		Opcode: redcode.DAT, Modifier: redcode.F,
		AMode: redcode.Immediate, BMode: redcode.Immediate,
		AField: field, BField: field,
	}
}

// resolveOperand implements the addressing-mode table shared by the A- and
// B-operand. It returns the effective address to read or write through,
// and, for a post-increment mode with mutate set, a pointer to the field
// that must be incremented later by the caller.
//
// Pre-decrement is applied immediately (mutate gates it) because the same
// instruction's read depends on the decremented value. Post-increment is
// always deferred: the caller decides when the other operand may have
// already observed the old value.
func (e *Engine) resolveOperand(pc, field int, mode redcode.Mode, limit int, mutate bool) (addr int, deferred *int) {
	switch mode {
	case redcode.Immediate:
		return pc, nil
	case redcode.Direct:
		p := redcode.Fold(field, limit)
		return redcode.Normalize(pc+p, e.CoreSize), nil
	default:
		p := redcode.Fold(field, limit)
		pointerCell := redcode.Normalize(pc+p, e.CoreSize)
		ptr := e.Arena.field(pointerCell, mode.UsesAField())

		var off int
		switch {
		case mode.IsPredec():
			if mutate {
				*ptr = redcode.Normalize(*ptr-1, e.CoreSize)
			}
			off = *ptr
		case mode.IsPostinc():
			off = *ptr
			if mutate {
				deferred = ptr
			}
		default: // AIndirect, BIndirect
			off = *ptr
		}

		addr = redcode.Normalize(pc+redcode.Fold(p+off, limit), e.CoreSize)
		return addr, deferred
	}
}

// Execute runs one cycle for process p: fetch, resolve operands, dispatch
// the opcode, and push whatever successor process (if any) the instruction
// produces onto queue. It never touches the opponent's queue.
func (e *Engine) Execute(p Process, queue *ProcessQueue) {
	pc := p.PC
	instr := e.Arena.Read(pc)

	if instr.Opcode == redcode.DAT {
		e.trace(pc, instr, pc, instr, pc, instr, false, redcode.Instruction{})
		return
	}

	// Step 2: resolve the A-operand.
	aAddr, aDeferred := e.resolveOperand(pc, instr.AField, instr.AMode, e.ReadLimit, true)
	var src redcode.Instruction
	if instr.AMode == redcode.Immediate {
		src = syntheticImmediate(instr.AField)
	} else {
		src = e.Arena.Read(aAddr)
	}

	// Step 3: commit the deferred A post-increment before B resolution.
	if aDeferred != nil {
		*aDeferred = redcode.Normalize(*aDeferred+1, e.CoreSize)
	}

	// Step 4: resolve the B-operand against write_limit; fall back to a
	// second, non-mutating resolution against read_limit only when the
	// two limits actually differ, to get the address dst_snapshot is read
	// from.
	bAddrWrite, bDeferred := e.resolveOperand(pc, instr.BField, instr.BMode, e.WriteLimit, true)
	bAddrRead := bAddrWrite
	if e.ReadLimit != e.WriteLimit {
		bAddrRead, _ = e.resolveOperand(pc, instr.BField, instr.BMode, e.ReadLimit, false)
	}

	var dstSnapshot redcode.Instruction
	if instr.BMode == redcode.Immediate {
		dstSnapshot = syntheticImmediate(instr.BField)
	} else {
		dstSnapshot = e.Arena.Read(bAddrRead)
	}

	// Step 5: commit the deferred B post-increment.
	if bDeferred != nil {
		*bDeferred = redcode.Normalize(*bDeferred+1, e.CoreSize)
	}

	dst := e.Arena.At(bAddrWrite)
	before := *dst

	queued, skip, died := e.dispatch(instr, p, src, dstSnapshot, aAddr, dst, queue)

	wrote := *dst != before
	e.trace(pc, instr, aAddr, src, bAddrWrite, before, wrote, *dst)

	if died {
		return
	}
	if !queued {
		next := pc + 1
		if skip {
			next = pc + 2
		}
		queue.push(Process{PC: redcode.Normalize(next, e.CoreSize), Owner: p.Owner})
	}
}

// dispatch executes the opcode/modifier combination once both operands
// are resolved, reporting back whether it already queued its own
// successor, whether the fallthrough PC should advance by two instead of
// one, and whether the process terminated outright.
func (e *Engine) dispatch(instr redcode.Instruction, p Process, src, dstSnapshot redcode.Instruction, aAddr int, dst *redcode.Instruction, queue *ProcessQueue) (queued, skip, died bool) {
	switch instr.Opcode {
	case redcode.MOV:
		if instr.Modifier == redcode.I {
			*dst = src
		} else {
			for _, pr := range modifierPairs(instr.Modifier) {
				setField(dst, pr.dst, getField(src, pr.src))
			}
		}

	case redcode.ADD, redcode.SUB, redcode.MUL:
		for _, pr := range modifierPairs(instr.Modifier) {
			a := getField(src, pr.src)
			b := getField(*dst, pr.dst)
			var res int
			switch instr.Opcode {
			case redcode.ADD:
				res = a + b
			case redcode.SUB:
				res = b - a
			case redcode.MUL:
				res = a * b
			}
			setField(dst, pr.dst, redcode.Normalize(res, e.CoreSize))
		}

	case redcode.DIV, redcode.MOD:
		anyZero := false
		for _, pr := range modifierPairs(instr.Modifier) {
			divisor := getField(src, pr.src)
			if divisor == 0 {
				anyZero = true
				continue
			}
			dividend := getField(*dst, pr.dst)
			var res int
			if instr.Opcode == redcode.DIV {
				res = dividend / divisor
			} else {
				res = dividend % divisor
			}
			setField(dst, pr.dst, redcode.Normalize(res, e.CoreSize))
		}
		if anyZero {
			died = true
		}

	case redcode.CMP, redcode.SNE:
		var equal bool
		if instr.Modifier == redcode.I {
			equal = src == dstSnapshot
		} else {
			equal = true
			for _, pr := range modifierPairs(instr.Modifier) {
				if getField(src, pr.src) != getField(dstSnapshot, pr.dst) {
					equal = false
				}
			}
		}
		if instr.Opcode == redcode.CMP {
			skip = equal
		} else {
			skip = !equal
		}

	case redcode.SLT:
		less := true
		for _, pr := range modifierPairs(instr.Modifier) {
			if !(getField(src, pr.src) < getField(dstSnapshot, pr.dst)) {
				less = false
			}
		}
		skip = less

	case redcode.JMP:
		queue.push(Process{PC: aAddr, Owner: p.Owner})
		queued = true

	case redcode.JMZ, redcode.JMN:
		anyNonzero := false
		for _, f := range testFields(instr.Modifier) {
			if getField(dstSnapshot, f) != 0 {
				anyNonzero = true
			}
		}
		branch := anyNonzero
		if instr.Opcode == redcode.JMZ {
			branch = !anyNonzero
		}
		if branch {
			queue.push(Process{PC: aAddr, Owner: p.Owner})
			queued = true
		}

	case redcode.DJN:
		anyNonzero := false
		for _, f := range testFields(instr.Modifier) {
			v := redcode.Normalize(getField(*dst, f)-1, e.CoreSize)
			setField(dst, f, v)
			if v != 0 {
				anyNonzero = true
			}
		}
		if anyNonzero {
			queue.push(Process{PC: aAddr, Owner: p.Owner})
			queued = true
		}

	case redcode.SPL:
		queue.push(Process{PC: redcode.Normalize(p.PC+1, e.CoreSize), Owner: p.Owner})
		queue.push(Process{PC: aAddr, Owner: p.Owner})
		queued = true

	case redcode.NOP:
		// falls through unchanged

	default:
		panic(fmt.Sprintf("unhandled opcode %s", instr.Opcode))
	}

	return queued, skip, died
}

func (e *Engine) trace(pc int, instr redcode.Instruction, aAddr int, src redcode.Instruction, bAddr int, before redcode.Instruction, wrote bool, after redcode.Instruction) {
	if e.Trace == nil {
		return
	}
	e.Trace.Line(fmt.Sprintf("PC=%d %s | A=%d {%s}, B=%d {%s}", pc, instr, aAddr, src, bAddr, before))
	if wrote {
		e.Trace.Line(fmt.Sprintf("  -> WRITE @%d {%s}", bAddr, after))
	}
}
