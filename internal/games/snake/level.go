package snake

// Progression holds the level-up rule.
type Progression struct {
	Every    int  // score step per level
	MaxSpeed int  // speed cap
	Static   bool // freeze level and speed
}

// After applies the rule to the score reached by an eat. It returns the new
// level and speed and whether a level-up happened.
func (p Progression) After(score, level, speed int) (int, int, bool) {
	if p.Static || p.Every <= 0 || score%p.Every != 0 {
		return level, speed, false
	}
	return level + 1, min(p.MaxSpeed, speed+1), true
}

// checkLevelUp runs right after an eat. The new speed applies to the next tick.
func (s *Session) checkLevelUp() {
	prog := Progression{
		Every:    s.opts.LevelEvery,
		MaxSpeed: s.opts.MaxSpeed,
		Static:   s.staticLevel,
	}
	level, speed, up := prog.After(s.score, s.level, s.speed)
	if !up {
		return
	}
	s.level = level
	s.speed = speed
	s.emit(Event{Kind: EventLevelUp, Level: s.level, Speed: s.speed, Score: s.score})
}
