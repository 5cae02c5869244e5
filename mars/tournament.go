package mars

import (
	"go.redcode.dev/mars/redcode"
	"go.redcode.dev/mars/trace"
)

// Tournament runs up to Config.Rounds independent rounds between the same
// pair of warriors, alternating which one moves first, and aggregates a
// Scoreboard. No state survives across rounds: each round gets a fresh
// arena, fresh queues, and the placement RNG's next state only.
type Tournament struct {
	Config   Config
	Warriors [2]redcode.Warrior
	Trace    trace.Sink
}

// Run validates the configuration, applies the identical-warrior
// short-circuit, then plays rounds until Config.Rounds is reached or the
// early-termination rule fires.
func (t *Tournament) Run() (Scoreboard, error) {
	if err := t.Config.Validate(); err != nil {
		return Scoreboard{}, err
	}

	rng, err := newPlacementRNG(t.Config.Seed, t.Config.MinDistance)
	if err != nil {
		return Scoreboard{}, err
	}

	var score [2]int
	roundsPlayed := 0
	placements := int64(t.Config.placements())

	for round := 0; round < t.Config.Rounds; round++ {
		start1 := redcode.Normalize(t.Config.MinDistance+int(rng.current()%placements), t.Config.CoreSize)
		rng.advance()

		winner, tied := t.playRound(round, start1)
		roundsPlayed++
		if tied {
			score[0]++
			score[1]++
		} else {
			score[winner] += 3
		}

		remaining := t.Config.Rounds - roundsPlayed
		if abs(score[0]-score[1]) > 3*remaining {
			break
		}
	}

	return Scoreboard{Score: score, RoundsPlayed: roundsPlayed}, nil
}

func (t *Tournament) playRound(round, start1 int) (winner int, tied bool) {
	core := t.Config.CoreSize

	arena := newArena(core)
	arena.place(0, t.Warriors[0])
	arena.place(start1, t.Warriors[1])

	entry0 := redcode.Normalize(t.Warriors[0].EntryOffset, core)
	entry1 := redcode.Normalize(start1+t.Warriors[1].EntryOffset, core)

	q0 := newProcessQueue(t.Config.MaxProcesses)
	q0.push(Process{PC: entry0, Owner: 0})
	q1 := newProcessQueue(t.Config.MaxProcesses)
	q1.push(Process{PC: entry1, Owner: 1})

	engine := &Engine{
		Arena: arena, CoreSize: core,
		ReadLimit: t.Config.ReadLimit, WriteLimit: t.Config.WriteLimit,
		MaxProcesses: t.Config.MaxProcesses, Trace: t.Trace,
	}

	r := newRound(engine, [2]*ProcessQueue{q0, q1}, round%2, t.Config.MaxCycles)
	r.Run()

	if w, ok := r.Result(); ok {
		return w, false
	}
	return -1, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
