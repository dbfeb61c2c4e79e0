package snake

// Tick advances the simulation by one step. It does nothing unless the
// session is Playing.
func (s *Session) Tick() {
	if s.phase != PhasePlaying {
		return
	}

	// Apply queued direction
	if s.pending != nil {
		if !s.pending.Opposite(s.dir) {
			s.dir = *s.pending
		}
		s.pending = nil
	}

	head := s.body.Advance(s.dir)

	if s.body.CollidesWithWall(head, s.grid) {
		s.endGame(CollisionWall)
		return
	}
	if s.body.CollidesWithSelf(head) {
		s.endGame(CollisionSelf)
		return
	}

	if s.apple.At(head) {
		s.score += s.opts.PointsPerApple
		s.body.Grow(head)
		s.checkLevelUp()
		s.spawnApple()
		s.emit(Event{Kind: EventEat, Score: s.score, Length: s.body.Len(), Level: s.level})
	} else {
		s.body.MoveWithoutGrowth(head)
	}

	s.emit(s.updated())
}

// endGame moves to GameOver and persists a new high score.
func (s *Session) endGame(cause Collision) {
	s.phase = PhaseGameOver
	s.emit(Event{
		Kind:      EventGameOver,
		Score:     s.score,
		Length:    s.body.Len(),
		Level:     s.level,
		HighScore: s.highScore,
		Collision: cause,
	})

	if s.score <= s.highScore {
		return
	}

	// Other sessions on the same store may have set a higher score since
	// this one read it.
	best := s.score
	if s.store != nil {
		stored, err := s.store.Raise(HighScoreKey, s.score)
		if err != nil {
			s.emit(Event{Kind: EventStoreError, Err: err})
		} else {
			best = max(stored, s.score)
		}
	}

	s.highScore = best
	if best > s.score {
		return
	}
	s.emit(Event{Kind: EventHighScore, Score: s.score, HighScore: s.highScore})
}
