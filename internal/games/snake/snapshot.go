package snake

// Snapshot is a read-only copy of everything the renderer and HUD need.
type Snapshot struct {
	Grid        Grid
	Segments    []Position // head first
	Apple       Apple
	Direction   Direction
	CellWidth   int // terminal columns per grid cell
	Score       int
	Length      int
	Level       int
	Speed       int
	HighScore   int
	Area        int
	StaticLevel bool
	Phase       Phase
}

// Head returns the first segment.
func (s Snapshot) Head() Position {
	return s.Segments[0]
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:        s.grid,
		Segments:    s.body.Segments(),
		Apple:       s.apple,
		Direction:   s.dir,
		CellWidth:   s.opts.CellWidth,
		Score:       s.score,
		Length:      s.body.Len(),
		Level:       s.level,
		Speed:       s.speed,
		HighScore:   s.highScore,
		Area:        s.area,
		StaticLevel: s.staticLevel,
		Phase:       s.phase,
	}
}
