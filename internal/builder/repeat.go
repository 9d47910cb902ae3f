package builder

import "math"

// RateLimiter gates an action repeated while a key is held to a fixed
// minimum interval against a monotonic clock read once per tick.
type RateLimiter struct {
	Interval float64
	last     float64
}

func NewRateLimiter(interval float64) RateLimiter {
	return RateLimiter{
		Interval: interval,
		last:     math.Inf(-1),
	}
}

// Try reports whether the action may fire at time now, and records the
// firing when it does.
func (r *RateLimiter) Try(now float64) bool {
	if now-r.last < r.Interval {
		return false
	}
	r.last = now
	return true
}

// Reset clears the last-fired timestamp so the next Try fires immediately.
func (r *RateLimiter) Reset() {
	r.last = math.Inf(-1)
}
