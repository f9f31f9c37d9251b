package domain

import "time"

// Limits is the rate-limit state of one endpoint, decoded from the
// Requests-Remaining/Requests-Limit/Requests-Reset response headers, or from
// Cooldown-Reset when the endpoint is cooling down.
type Limits struct {
	Remaining int
	Limit     int
	Reset     time.Duration

	// Cooldown is non-zero when the endpoint rejected the caller and must
	// not be contacted until it elapses.
	Cooldown time.Duration

	// ObservedAt anchors Reset/Cooldown to the response that carried them.
	ObservedAt time.Time
}

// OnCooldown reports whether the endpoint is in a cooldown window.
func (l Limits) OnCooldown() bool {
	return l.Cooldown > 0
}

// WaitUntil returns the earliest instant a request may be issued. The zero
// time means the endpoint can be contacted immediately.
func (l Limits) WaitUntil() time.Time {
	switch {
	case l.Cooldown > 0:
		return l.ObservedAt.Add(l.Cooldown)
	case l.Remaining == 0 && l.Reset > 0:
		return l.ObservedAt.Add(l.Reset)
	default:
		return time.Time{}
	}
}

// WaitFrom returns how long to hold off before the next request, measured
// from now. Zero means no wait.
func (l Limits) WaitFrom(now time.Time) time.Duration {
	until := l.WaitUntil()
	if until.IsZero() || !until.After(now) {
		return 0
	}
	return until.Sub(now)
}
