package mars

import (
	"go.redcode.dev/mars/redcode"
	"go.redcode.dev/mars/trace"
)

// Live is a single round exposed for interactive stepping, the shape a
// spectator UI needs: the arena to render, both process queues to list,
// and the Round driving them.
type Live struct {
	Arena  *Arena
	Queues [2]*ProcessQueue
	Round  *Round
}

// NewLive places both warriors under cfg using the same placement rule a
// tournament round would use for round 0, and returns a steppable round a
// viewer can drive one cycle at a time.
func NewLive(cfg Config, warriors [2]redcode.Warrior, sink trace.Sink) (*Live, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng, err := newPlacementRNG(cfg.Seed, cfg.MinDistance)
	if err != nil {
		return nil, err
	}
	placements := int64(cfg.placements())
	start1 := redcode.Normalize(cfg.MinDistance+int(rng.current()%placements), cfg.CoreSize)

	arena := newArena(cfg.CoreSize)
	arena.place(0, warriors[0])
	arena.place(start1, warriors[1])

	entry0 := redcode.Normalize(warriors[0].EntryOffset, cfg.CoreSize)
	entry1 := redcode.Normalize(start1+warriors[1].EntryOffset, cfg.CoreSize)

	q0 := newProcessQueue(cfg.MaxProcesses)
	q0.push(Process{PC: entry0, Owner: 0})
	q1 := newProcessQueue(cfg.MaxProcesses)
	q1.push(Process{PC: entry1, Owner: 1})

	engine := &Engine{
		Arena: arena, CoreSize: cfg.CoreSize,
		ReadLimit: cfg.ReadLimit, WriteLimit: cfg.WriteLimit,
		MaxProcesses: cfg.MaxProcesses, Trace: sink,
	}

	round := newRound(engine, [2]*ProcessQueue{q0, q1}, 0, cfg.MaxCycles)
	return &Live{Arena: arena, Queues: [2]*ProcessQueue{q0, q1}, Round: round}, nil
}

// Processes returns a snapshot of a queue's current contents, front first,
// for a viewer to list without exposing the queue's mutation methods.
func (q *ProcessQueue) Processes() []Process {
	out := make([]Process, len(q.entries))
	copy(out, q.entries)
	return out
}
