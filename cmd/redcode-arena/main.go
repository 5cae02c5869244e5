// Command redcode-arena is a pixel-grid GUI for a full Redcode
// tournament: the arena is rendered as one pixel per cell, colored by
// which warrior currently has a process there, with a running score
// overlay.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"go.redcode.dev/mars/asm"
	"go.redcode.dev/mars/cli"
	"go.redcode.dev/mars/mars"
	"go.redcode.dev/mars/redcode"
	"go.redcode.dev/mars/trace"
)

const cellSize = 3

type game struct {
	cfg      mars.Config
	warriors [2]redcode.Warrior
	sink     trace.Sink

	live       *mars.Live
	roundsDone int
	score      [2]int
	finished   bool

	cols, rows int
	colors     [2][3]uint8
	pixels     []byte
	canvas     *ebiten.Image
	face       *text.GoXFace
}

func main() {
	fs := flag.NewFlagSet("redcode-arena", flag.ExitOnError)
	params, err := cli.Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}

	w1src, err := cli.ReadWarrior(params.Warrior1Path)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	w2src, err := cli.ReadWarrior(params.Warrior2Path)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}

	opts := asm.Options{Use1988Rules: params.Config.Use1988Rules, MaxWarriorLength: params.Config.MaxWarriorLength}
	w1, err := asm.Parse(w1src, opts)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	w2, err := asm.Parse(w2src, opts)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}

	sink, closeSink, err := trace.FromEnv(true)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}
	defer closeSink()

	g := newGame(params.Config, [2]redcode.Warrior{w1, w2}, sink)
	if err := g.startRound(); err != nil {
		log.Fatalf("ERROR: %s", err)
	}

	ebiten.SetWindowSize(g.cols*cellSize, g.rows*cellSize+32)
	ebiten.SetWindowTitle("redcode-arena")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func newGame(cfg mars.Config, warriors [2]redcode.Warrior, sink trace.Sink) *game {
	c1, _ := colorful.Hex("#3fb950")
	c2, _ := colorful.Hex("#f85149")
	r1, g1, b1 := c1.RGB255()
	r2, g2, b2 := c2.RGB255()
	cols := isqrtCeil(cfg.CoreSize)

	return &game{
		cfg: cfg, warriors: warriors, sink: sink,
		cols: cols, rows: cols,
		colors: [2][3]uint8{{r1, g1, b1}, {r2, g2, b2}},
		pixels: make([]byte, cols*cols*4),
		canvas: ebiten.NewImage(cols, cols),
		face:   text.NewGoXFace(bitmapfont.Face),
	}
}

func (g *game) startRound() error {
	live, err := mars.NewLive(g.cfg, g.warriors, g.sink)
	if err != nil {
		return err
	}
	g.live = live
	return nil
}

func (g *game) Update() error {
	if g.finished {
		return nil
	}
	for i := 0; i < 8; i++ { // run several cycles per frame so the GUI keeps pace
		if !g.live.Round.Step() {
			g.finishRound()
			break
		}
	}
	return nil
}

func (g *game) finishRound() {
	if winner, ok := g.live.Round.Result(); ok {
		g.score[winner] += 3
	} else {
		g.score[0]++
		g.score[1]++
	}
	g.roundsDone++
	if g.roundsDone >= g.cfg.Rounds {
		g.finished = true
		return
	}
	if err := g.startRound(); err != nil {
		g.finished = true
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	for i := range g.pixels {
		g.pixels[i] = 0
	}
	for addr := 0; addr < g.cfg.CoreSize; addr++ {
		instr := g.live.Arena.Read(addr)
		if instr.Opcode == redcode.DAT {
			continue
		}
		owner := g.ownerAt(addr)
		if owner < 0 {
			continue
		}
		c := g.colors[owner]
		o := addr * 4
		g.pixels[o], g.pixels[o+1], g.pixels[o+2], g.pixels[o+3] = c[0], c[1], c[2], 255
	}
	g.canvas.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellSize, cellSize)
	screen.DrawImage(g.canvas, op)

	msg := fmt.Sprintf("round %d/%d  score %d-%d", g.roundsDone, g.cfg.Rounds, g.score[0], g.score[1])
	text.Draw(screen, msg, g.face, &text.DrawOptions{})
}

func (g *game) ownerAt(addr int) int {
	for owner, q := range g.live.Queues {
		for _, p := range q.Processes() {
			if p.PC == addr {
				return owner
			}
		}
	}
	return -1
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cols * cellSize, g.rows*cellSize + 32
}

func isqrtCeil(n int) int {
	r := 1
	for r*r < n {
		r++
	}
	return r
}
