package snake

import "time"

// Clock gates simulation ticks against wall-clock time. It fires at most
// once per frame and never catches up on missed ticks.
type Clock struct {
	lastTick time.Time
}

// Due reports whether a tick should run at now and, if so, records now as
// the last tick. The first frame only starts the clock.
func (c *Clock) Due(now time.Time, interval time.Duration, running bool) bool {
	if c.lastTick.IsZero() {
		c.lastTick = now
	}
	if !running || now.Sub(c.lastTick) < interval {
		return false
	}
	c.lastTick = now
	return true
}

// TickInterval converts a speed in ticks per second into the tick period.
func TickInterval(speed int) time.Duration {
	if speed <= 0 {
		speed = 1
	}
	return time.Second / time.Duration(speed)
}
