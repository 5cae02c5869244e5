package mars

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// minstdModulus is 2^31 - 1, the Park-Miller MINSTD modulus.
const minstdModulus = 2147483647

// seedModulus is 2^30 + 1, used only to fold a caller-supplied fixed seed
// into a start position before it becomes RNG state.
const seedModulus = 1073741825

// placementRNG is the MINSTD Park-Miller generator pMARS-derived
// simulators use to choose a warrior's starting offset each round. It is
// never shared across rounds or goroutines; each round owns its own state.
type placementRNG struct {
	state int64
}

// newPlacementRNG seeds state per the fixed-seed/OS-entropy rule: a
// positive seed is folded into a start position modulo 2^30+1 and
// rejected if it falls below minDistance; a non-positive seed draws state
// from OS entropy instead.
func newPlacementRNG(seed int64, minDistance int) (*placementRNG, error) {
	var state int64
	if seed > 0 {
		pos := seed % seedModulus
		if pos < int64(minDistance) {
			return nil, configErrorf("fixed seed %d folds to position %d, below min_distance %d", seed, pos, minDistance)
		}
		state = pos - int64(minDistance)
	} else {
		n, err := rand.Int(rand.Reader, big.NewInt(minstdModulus))
		if err != nil {
			return nil, fmt.Errorf("drawing placement seed from OS entropy: %w", err)
		}
		state = n.Int64()
	}

	state %= minstdModulus
	if state <= 0 {
		state += minstdModulus
	}
	return &placementRNG{state: state}, nil
}

// current returns the generator's present state without mutating it.
func (r *placementRNG) current() int64 {
	return r.state
}

// advance steps the generator to its next state.
func (r *placementRNG) advance() {
	hi := r.state / 127773
	lo := r.state % 127773
	s := 16807*lo - 2836*hi
	if s <= 0 {
		s += minstdModulus
	}
	r.state = s
}
