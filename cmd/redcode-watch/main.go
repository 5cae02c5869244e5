// Command redcode-watch is a terminal spectator for a single Redcode
// round: an arena grid colored by owner, a process table per warrior, and
// keyboard-driven stepping.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"go.redcode.dev/mars/asm"
	"go.redcode.dev/mars/cli"
	"go.redcode.dev/mars/mars"
	"go.redcode.dev/mars/redcode"
	"go.redcode.dev/mars/trace"
)

var ownerColors = [2]tcell.Color{tcell.ColorGreen, tcell.ColorRed}

type watcher struct {
	app      *tview.Application
	live     *mars.Live
	coreSize int
	paused   bool
	cycles   int

	arenaView *tview.TextView
	procView  *tview.Table
	stateView *tview.TextView
	logsView  *tview.TextView
}

func main() {
	fs := flag.NewFlagSet("redcode-watch", flag.ExitOnError)
	params, err := cli.Parse(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	w1src, err := cli.ReadWarrior(params.Warrior1Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	w2src, err := cli.ReadWarrior(params.Warrior2Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	opts := asm.Options{Use1988Rules: params.Config.Use1988Rules, MaxWarriorLength: params.Config.MaxWarriorLength}
	w1, err := asm.Parse(w1src, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	w2, err := asm.Parse(w2src, opts)
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

	live, err := mars.NewLive(params.Config, [2]redcode.Warrior{w1, w2}, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	w := newWatcher(live, params.Config.CoreSize)
	if err := w.run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func newWatcher(live *mars.Live, coreSize int) *watcher {
	return &watcher{
		app:       tview.NewApplication(),
		live:      live,
		coreSize:  coreSize,
		arenaView: tview.NewTextView().SetDynamicColors(true),
		procView:  tview.NewTable(),
		stateView: tview.NewTextView().SetDynamicColors(true),
		logsView:  tview.NewTextView().SetDynamicColors(true).SetScrollable(true),
	}
}

func (w *watcher) run() error {
	w.arenaView.SetBorder(true).SetTitle("arena")
	w.procView.SetBorder(true).SetTitle("processes")
	w.stateView.SetBorder(true).SetTitle("state")
	w.logsView.SetBorder(true).SetTitle("log")

	top := tview.NewFlex().
		AddItem(w.arenaView, 0, 3, false).
		AddItem(w.procView, 0, 1, false)
	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 4, false).
		AddItem(w.stateView, 3, 0, false).
		AddItem(w.logsView, 0, 1, false)

	w.redraw()

	w.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'n':
			w.step()
		case ' ':
			w.paused = !w.paused
			w.redraw()
		case 'q':
			w.app.Stop()
		}
		if event.Key() == tcell.KeyEscape {
			w.app.Stop()
		}
		return event
	})

	return w.app.SetRoot(root, true).Run()
}

func (w *watcher) step() {
	if !w.live.Round.Step() {
		fmt.Fprintf(w.logsView, "round finished after %d cycles\n", w.cycles)
		return
	}
	w.cycles++
	w.redraw()
}

func (w *watcher) redraw() {
	w.drawArena()
	w.drawProcesses()
	w.drawState()
}

func (w *watcher) drawArena() {
	w.arenaView.Clear()
	perRow := 64
	for addr := 0; addr < w.coreSize; addr++ {
		instr := w.live.Arena.Read(addr)
		owner := w.ownerAt(addr)
		color := "white"
		switch owner {
		case 0:
			color = "green"
		case 1:
			color = "red"
		}
		ch := "."
		if instr.Opcode != redcode.DAT {
			ch = "#"
		}
		fmt.Fprintf(w.arenaView, "[%s]%s[white]", color, ch)
		if (addr+1)%perRow == 0 {
			fmt.Fprint(w.arenaView, "\n")
		}
	}
}

// ownerAt reports which warrior (0 or 1) currently has a process pointed
// at addr, or -1 if neither does. It is an approximation for display
// purposes only: ownership of a cell's contents is not tracked, only
// which queue's processes currently reference it.
func (w *watcher) ownerAt(addr int) int {
	for owner, q := range w.live.Queues {
		for _, p := range q.Processes() {
			if p.PC == addr {
				return owner
			}
		}
	}
	return -1
}

func (w *watcher) drawProcesses() {
	w.procView.Clear()
	w.procView.SetCell(0, 0, tview.NewTableCell("W0").SetTextColor(ownerColors[0]))
	w.procView.SetCell(0, 1, tview.NewTableCell("W1").SetTextColor(ownerColors[1]))

	procs0 := w.live.Queues[0].Processes()
	procs1 := w.live.Queues[1].Processes()
	rows := len(procs0)
	if len(procs1) > rows {
		rows = len(procs1)
	}
	for i := 0; i < rows; i++ {
		if i < len(procs0) {
			w.procView.SetCell(i+1, 0, tview.NewTableCell(fmt.Sprintf("%d", procs0[i].PC)))
		}
		if i < len(procs1) {
			w.procView.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf("%d", procs1[i].PC)))
		}
	}
}

func (w *watcher) drawState() {
	w.stateView.Clear()
	status := "running"
	if w.paused {
		status = "paused"
	}
	fmt.Fprintf(w.stateView, "cycle %d | %s | w0 queue=%d w1 queue=%d | [n]ext [space]pause [q]uit\n",
		w.cycles, status, w.live.Queues[0].Len(), w.live.Queues[1].Len())
}
