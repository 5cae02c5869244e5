package mars

// Round drives one complete battle between two already-placed warriors to
// its conclusion, one cycle (one process executed per warrior) at a time.
// Step is exported so an interactive viewer can single-step a live round
// instead of only ever running it to completion.
type Round struct {
	engine     *Engine
	queues     [2]*ProcessQueue
	firstIndex int
	cycles     int
	maxCycles  int

	winner    int
	winnerSet bool
}

func newRound(engine *Engine, queues [2]*ProcessQueue, firstIndex, maxCycles int) *Round {
	return &Round{engine: engine, queues: queues, firstIndex: firstIndex, maxCycles: maxCycles}
}

// Step runs one cycle: one process popped and executed from each
// warrior's queue, in this round's turn order. It reports whether the
// round should continue — false means either queue was already empty
// before this cycle began, or max_cycles has been reached.
func (r *Round) Step() bool {
	if r.cycles >= r.maxCycles {
		return false
	}
	if r.queues[0].Empty() || r.queues[1].Empty() {
		return false
	}

	order := [2]int{r.firstIndex, 1 - r.firstIndex}
	for _, idx := range order {
		q := r.queues[idx]
		proc := q.pop()
		r.engine.Execute(proc, q)
		if q.Empty() && !r.winnerSet {
			r.winner = 1 - idx
			r.winnerSet = true
		}
	}
	r.cycles++
	return true
}

// Run steps the round to completion.
func (r *Round) Run() {
	for r.Step() {
	}
}

// Result reports the round's outcome: (winnerIndex, true) if one warrior
// won, or (-1, false) for a tie.
func (r *Round) Result() (winner int, ok bool) {
	if r.winnerSet {
		return r.winner, true
	}
	return -1, false
}
