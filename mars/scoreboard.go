package mars

import "fmt"

// Scoreboard is the cumulative result of a tournament: wins score +3,
// ties score +1 each, across however many rounds actually ran.
type Scoreboard struct {
	Score        [2]int
	RoundsPlayed int
}

// Format renders the scoreboard in the exact two-line form the external
// interface promises: "{id} 0 0 0 {score} scores", warrior 0 then 1.
func (s Scoreboard) Format(id0, id1 int) string {
	return fmt.Sprintf("%d 0 0 0 %d scores\n%d 0 0 0 %d scores", id0, s.Score[0], id1, s.Score[1])
}
