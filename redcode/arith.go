package redcode

// Normalize reduces x into [0, m), the representation every address and
// every field written back to the arena is stored in.
func Normalize(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// Fold reduces offset into [-limit/2, +limit/2], inclusive on the positive
// side only — the historically correct asymmetry pMARS-derived simulators
// rely on. limit is the read or write distance cap; when it equals the core
// size, Fold is the identity modulo the core.
func Fold(offset, limit int) int {
	half := limit / 2
	r := Normalize(offset, limit)
	if r > half {
		return r - limit
	}
	return r
}
