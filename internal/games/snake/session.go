// Package snake implements the snake game: grid, snake body, apple
// placement, the tick engine and the session lifecycle. It has no terminal,
// audio or storage dependencies; collaborators observe it through events
// and snapshots.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// HighScoreKey is the store namespace for the persisted high score.
const HighScoreKey = "snake_high"

// ScoreStore is a key/value store of integer scalars shared by every
// session that plays against it.
type ScoreStore interface {
	Get(key string) (int, error)
	// Raise stores value under key unless a larger value is already stored,
	// and returns the value stored afterwards. It must be atomic.
	Raise(key string, value int) (int, error)
	Remove(key string) error
}

// Phase is the session lifecycle phase.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a session.
type Options struct {
	Area           int
	Speed          int
	MaxSpeed       int
	StaticLevel    bool
	PointsPerApple int
	LevelEvery     int
	AppleAttempts  int
	CellWidth      int
	Seed           int64      // 0 = time based
	Store          ScoreStore // nil = high score kept in memory only
}

// OptionsFromConfig builds session options from the game configuration.
func OptionsFromConfig(cfg config.Config, seed int64, store ScoreStore) Options {
	g := cfg.Gameplay
	return Options{
		Area:           g.Area,
		Speed:          g.Speed,
		MaxSpeed:       g.MaxSpeed,
		StaticLevel:    g.StaticLevel,
		PointsPerApple: g.PointsPerApple,
		LevelEvery:     g.LevelEvery,
		AppleAttempts:  g.AppleAttempts,
		CellWidth:      cfg.Display.CellWidth,
		Seed:           seed,
		Store:          store,
	}
}

func (o Options) withDefaults() Options {
	d := config.DefaultConfig()
	if o.Area == 0 {
		o.Area = d.Gameplay.Area
	}
	if o.MaxSpeed <= 0 {
		o.MaxSpeed = config.MaxSpeed
	}
	if o.Speed <= 0 {
		o.Speed = d.Gameplay.Speed
	}
	if o.PointsPerApple <= 0 {
		o.PointsPerApple = d.Gameplay.PointsPerApple
	}
	if o.LevelEvery <= 0 {
		o.LevelEvery = d.Gameplay.LevelEvery
	}
	if o.AppleAttempts <= 0 {
		o.AppleAttempts = MaxAppleAttempts
	}
	if o.CellWidth <= 0 {
		o.CellWidth = d.Display.CellWidth
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	o.Area = core.Clamp(o.Area, config.MinArea, config.MaxArea)
	o.Speed = core.Clamp(o.Speed, config.MinSpeed, o.MaxSpeed)
	return o
}

// Session owns all game state. It is not safe for concurrent use; the host
// loop serializes input handling, frames and rendering.
type Session struct {
	opts    Options
	store   ScoreStore
	spawner *Spawner
	clock   Clock

	grid    Grid
	body    Body
	dir     Direction
	pending *Direction
	apple   Apple

	score       int
	level       int
	speed       int
	area        int
	staticLevel bool
	phase       Phase
	highScore   int

	loadErr   error
	listeners []Listener
}

// New creates a session in the Ready phase. The high score is read from
// the store once; a read failure leaves it at 0 and is reported by LoadErr.
func New(opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		opts:        opts,
		store:       opts.Store,
		spawner:     NewSpawner(rand.New(rand.NewSource(opts.Seed)), opts.AppleAttempts),
		speed:       opts.Speed,
		area:        opts.Area,
		staticLevel: opts.StaticLevel,
	}
	if s.store != nil {
		hs, err := s.store.Get(HighScoreKey)
		if err != nil {
			s.loadErr = err
		} else {
			s.highScore = hs
		}
	}
	s.reset()
	return s
}

// Subscribe registers a listener for session events.
func (s *Session) Subscribe(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

func (s *Session) emit(e Event) {
	e.Phase = s.phase
	for _, l := range s.listeners {
		l(e)
	}
}

func (s *Session) updated() Event {
	return Event{
		Kind:   EventUpdated,
		Score:  s.score,
		Length: s.body.Len(),
		Level:  s.level,
		Speed:  s.speed,
	}
}

// LoadErr returns the error from reading the high score at creation, if any.
func (s *Session) LoadErr() error {
	return s.loadErr
}

// reset rebuilds grid, snake, apple and scores. Speed is kept.
func (s *Session) reset() {
	s.grid = GridForArea(s.area)
	s.body = Spawn(s.grid)
	s.dir = DirRight
	s.pending = nil
	s.score = 0
	s.level = 1
	s.phase = PhaseReady
	s.spawnApple()
}

func (s *Session) spawnApple() {
	s.apple = Apple{
		Pos:     s.spawner.Spawn(s.grid, s.body.Occupied()),
		Present: true,
	}
}

// Restart returns to Ready with a fresh snake, apple, score and level.
func (s *Session) Restart() {
	s.reset()
	s.emit(Event{Kind: EventRestart, HighScore: s.highScore})
	s.emit(s.updated())
}

// Play starts or resumes the game. From GameOver it restarts first.
func (s *Session) Play() {
	if s.phase == PhaseGameOver {
		s.Restart()
	}
	if s.phase == PhasePlaying {
		return
	}
	s.phase = PhasePlaying
	s.emit(Event{Kind: EventPhase})
}

// TogglePause switches between Playing and Paused. It does nothing in the
// Ready and GameOver phases.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhasePlaying:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhasePlaying
	default:
		return
	}
	s.emit(Event{Kind: EventPhase})
}

// SetDirection queues a direction for the next tick. Non-unit vectors and
// the reverse of the applied direction are ignored. It reports whether the
// direction was queued.
func (s *Session) SetDirection(dx, dy int) bool {
	d, ok := DirectionOf(dx, dy)
	if !ok || d.Opposite(s.dir) {
		return false
	}
	s.pending = &d
	return true
}

// ResetHighScore clears the persisted high score.
func (s *Session) ResetHighScore() {
	if s.store != nil {
		if err := s.store.Remove(HighScoreKey); err != nil {
			s.emit(Event{Kind: EventStoreError, Err: err})
		}
	}
	s.highScore = 0
	s.emit(Event{Kind: EventHighScoreReset})
}

// SetSpeed changes the tick rate, clamped to [MinSpeed, MaxSpeed]. It takes
// effect from the next frame.
func (s *Session) SetSpeed(speed int) {
	s.speed = core.Clamp(speed, config.MinSpeed, s.opts.MaxSpeed)
	s.emit(s.settings())
}

// SetArea regenerates the grid from the area control and restarts, since
// existing positions may fall outside the new bounds.
func (s *Session) SetArea(area int) {
	s.area = core.Clamp(area, config.MinArea, config.MaxArea)
	s.emit(s.settings())
	s.Restart()
}

// SetStaticLevel freezes or unfreezes level progression.
func (s *Session) SetStaticLevel(on bool) {
	s.staticLevel = on
	s.emit(s.settings())
}

// ToggleStaticLevel flips static level mode.
func (s *Session) ToggleStaticLevel() {
	s.SetStaticLevel(!s.staticLevel)
}

func (s *Session) settings() Event {
	return Event{Kind: EventSettings, Speed: s.speed, Level: s.level, Static: s.staticLevel}
}

// Frame is the per-frame callback. It runs at most one tick when the game
// is playing and a full tick interval has elapsed. It reports whether a
// tick ran.
func (s *Session) Frame(now time.Time) bool {
	if !s.clock.Due(now, s.TickInterval(), s.phase == PhasePlaying) {
		return false
	}
	s.Tick()
	return true
}

// TickInterval returns the current time between ticks.
func (s *Session) TickInterval() time.Duration {
	return TickInterval(s.speed)
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Speed returns the current speed in ticks per second.
func (s *Session) Speed() int { return s.speed }

// Area returns the map area control value.
func (s *Session) Area() int { return s.area }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// StaticLevel reports whether level progression is frozen.
func (s *Session) StaticLevel() bool { return s.staticLevel }

// Grid returns the playing field.
func (s *Session) Grid() Grid { return s.grid }
