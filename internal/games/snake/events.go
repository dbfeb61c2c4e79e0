package snake

// EventKind identifies a session notification.
type EventKind int

const (
	// EventUpdated is emitted after every tick and on restart; carries score, length and level.
	EventUpdated EventKind = iota
	// EventEat is emitted when the snake eats an apple.
	EventEat
	// EventLevelUp is emitted when level and speed increase.
	EventLevelUp
	// EventGameOver is emitted on a fatal collision.
	EventGameOver
	// EventHighScore is emitted when a game ends above the stored high score.
	EventHighScore
	// EventHighScoreReset is emitted after the high score was cleared.
	EventHighScoreReset
	// EventPhase is emitted on play/pause/resume transitions.
	EventPhase
	// EventRestart is emitted when the session returns to Ready.
	EventRestart
	// EventSettings is emitted when speed, area or static level change.
	EventSettings
	// EventStoreError is emitted when the score store fails.
	EventStoreError
)

var eventNames = [...]string{
	EventUpdated:        "updated",
	EventEat:            "eat",
	EventLevelUp:        "level_up",
	EventGameOver:       "game_over",
	EventHighScore:      "high_score",
	EventHighScoreReset: "high_score_reset",
	EventPhase:          "phase",
	EventRestart:        "restart",
	EventSettings:       "settings",
	EventStoreError:     "store_error",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Collision names what ended a game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// Event is a notification from the session to its collaborators (HUD,
// sound, logging). Fields not relevant to the kind are zero.
type Event struct {
	Kind      EventKind
	Phase     Phase
	Score     int
	Length    int
	Level     int
	Speed     int
	HighScore int
	Collision Collision
	Static    bool // static level mode, set on EventSettings
	Err       error
}

// Listener receives session events synchronously, on the goroutine that
// called the session method.
type Listener func(Event)
