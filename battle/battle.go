// Package battle re-expresses the C-callable battle entry point §6
// describes: parse two warriors, run a tournament, and return a single
// formatted string whether it succeeds or fails.
package battle

import (
	"fmt"

	"go.redcode.dev/mars/asm"
	"go.redcode.dev/mars/mars"
	"go.redcode.dev/mars/redcode"
	"go.redcode.dev/mars/trace"
)

// Run assembles both warriors, runs a tournament between them under cfg,
// and returns either the two-line scoreboard or a single "ERROR: ..."
// line. It never panics out to the caller: every failure mode, including
// an unexpected internal panic, is folded into the returned string,
// matching a boundary that cannot propagate Go errors across its
// C-callable seam.
func Run(w1Source string, w1ID int, w2Source string, w2ID int, cfg mars.Config, sink trace.Sink) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = "ERROR: Unknown exception encountered while running battle"
		}
	}()

	opts := asm.Options{Use1988Rules: cfg.Use1988Rules, MaxWarriorLength: cfg.MaxWarriorLength}

	w1, err := asm.Parse(w1Source, opts)
	if err != nil {
		return fmt.Sprintf("ERROR: warrior %d: %s", w1ID, err)
	}
	w2, err := asm.Parse(w2Source, opts)
	if err != nil {
		return fmt.Sprintf("ERROR: warrior %d: %s", w2ID, err)
	}

	tour := &mars.Tournament{Config: cfg, Warriors: [2]redcode.Warrior{w1, w2}, Trace: sink}

	scoreboard, err := tour.Run()
	if err != nil {
		return fmt.Sprintf("ERROR: %s", err)
	}

	return scoreboard.Format(w1ID, w2ID)
}
