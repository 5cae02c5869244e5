// Command redcode-battle runs a headless tournament between two warrior
// files and prints the scoreboard.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"go.redcode.dev/mars/battle"
	"go.redcode.dev/mars/cli"
	"go.redcode.dev/mars/trace"
)

func main() {
	fs := flag.NewFlagSet("redcode-battle", flag.ExitOnError)
	params, err := cli.Parse(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	w1, err := cli.ReadWarrior(params.Warrior1Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	w2, err := cli.ReadWarrior(params.Warrior2Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	sink, closeSink, err := trace.FromEnv(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	defer closeSink()

	if params.Parallel <= 1 {
		fmt.Println(battle.Run(w1, params.Warrior1ID, w2, params.Warrior2ID, params.Config, sink))
		return
	}

	runParallel(params, w1, w2, sink)
}

// runParallel fans the same battle out across params.Parallel goroutines,
// each with its own OS-entropy placement draw when Config.Seed is
// non-positive, demonstrating that the core carries no shared mutable
// state across concurrent rounds.
func runParallel(params cli.BattleParams, w1, w2 string, sink trace.Sink) {
	results := make([]string, params.Parallel)
	var wg sync.WaitGroup
	for i := 0; i < params.Parallel; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = battle.Run(w1, params.Warrior1ID, w2, params.Warrior2ID, params.Config, sink)
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		fmt.Printf("battle %d:\n%s\n", i, r)
	}
}
