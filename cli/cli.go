// Package cli parses the command-line surface shared by the battle
// runner and the two spectator binaries.
package cli

import (
	"flag"
	"fmt"
	"os"

	"go.redcode.dev/mars/mars"
)

// Defaults mirror the battle parameters the reference host configures a
// standalone run with.
const (
	DefaultCoreSize         = 8000
	DefaultMaxCycles        = 80000
	DefaultMaxProcesses     = 8000
	DefaultReadWriteLimit   = 8000
	DefaultMinDistance      = 100
	DefaultMaxWarriorLength = 100
	DefaultRounds           = 10
)

// ConfigError reports a command-line flag combination that cannot be
// turned into a valid battle.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// BattleParams is the full input a battle binary needs: the two warrior
// files plus everything mars.Config requires.
type BattleParams struct {
	Warrior1Path string
	Warrior1ID   int
	Warrior2Path string
	Warrior2ID   int
	Config       mars.Config
	Parallel     int
}

// Parse registers the shared flag set on fs, parses args, and returns the
// assembled parameters. fs lets each binary add its own extra flags
// (e.g. -parallel) before calling Parse.
func Parse(fs *flag.FlagSet, args []string) (BattleParams, error) {
	p := BattleParams{}

	fs.IntVar(&p.Config.CoreSize, "core", DefaultCoreSize, "core size in instructions")
	fs.IntVar(&p.Config.MaxCycles, "cycles", DefaultMaxCycles, "max cycles per round")
	fs.IntVar(&p.Config.MaxProcesses, "processes", DefaultMaxProcesses, "max processes per warrior")
	fs.IntVar(&p.Config.ReadLimit, "read-limit", DefaultReadWriteLimit, "read distance limit")
	fs.IntVar(&p.Config.WriteLimit, "write-limit", DefaultReadWriteLimit, "write distance limit")
	fs.IntVar(&p.Config.MinDistance, "min-distance", DefaultMinDistance, "minimum placement distance")
	fs.IntVar(&p.Config.MaxWarriorLength, "max-length", DefaultMaxWarriorLength, "max instructions per warrior")
	fs.IntVar(&p.Config.Rounds, "rounds", DefaultRounds, "number of rounds")
	var seed int64
	fs.Int64Var(&seed, "seed", 0, "placement RNG seed (<=0 draws from OS entropy)")
	fs.BoolVar(&p.Config.Use1988Rules, "1988", false, "restrict to the 1988 ICWS opcode/modifier/mode set")
	fs.IntVar(&p.Warrior1ID, "id1", 1, "warrior 1 id")
	fs.IntVar(&p.Warrior2ID, "id2", 2, "warrior 2 id")
	fs.IntVar(&p.Parallel, "parallel", 1, "number of battles to run concurrently")

	if err := fs.Parse(args); err != nil {
		return BattleParams{}, err
	}
	p.Config.Seed = seed

	rest := fs.Args()
	if len(rest) != 2 {
		return BattleParams{}, &ConfigError{Message: fmt.Sprintf("expected exactly two warrior files, got %d", len(rest))}
	}
	p.Warrior1Path, p.Warrior2Path = rest[0], rest[1]

	if err := p.Config.Validate(); err != nil {
		return BattleParams{}, err
	}
	return p, nil
}

// ReadWarrior loads a warrior source file from disk.
func ReadWarrior(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading warrior %s: %w", path, err)
	}
	return string(data), nil
}
