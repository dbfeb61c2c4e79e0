package snake

import "math/rand"

// MaxAppleAttempts bounds how many cells the spawner samples before giving up.
const MaxAppleAttempts = 200

// Apple is the optional food cell.
type Apple struct {
	Pos     Position
	Present bool
}

// At reports whether the apple is present at p.
func (a Apple) At(p Position) bool {
	return a.Present && a.Pos == p
}

// Spawner picks random apple cells.
type Spawner struct {
	rng      *rand.Rand
	attempts int
}

// NewSpawner creates a spawner. attempts <= 0 selects MaxAppleAttempts.
func NewSpawner(rng *rand.Rand, attempts int) *Spawner {
	if attempts <= 0 {
		attempts = MaxAppleAttempts
	}
	return &Spawner{rng: rng, attempts: attempts}
}

// Spawn samples uniformly random cells until one is free of occupied.
// After the attempt cap the last sample is returned even if it is occupied,
// so a nearly full board cannot stall the game.
func (s *Spawner) Spawn(g Grid, occupied PositionSet) Position {
	var candidate Position
	for range s.attempts {
		candidate = Position{X: s.rng.Intn(g.Cols), Y: s.rng.Intn(g.Rows)}
		if !occupied.Has(candidate) {
			return candidate
		}
	}
	return candidate
}
