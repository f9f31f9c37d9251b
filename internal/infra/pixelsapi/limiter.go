package pixelsapi

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/purefunctor/pixels/internal/domain"
)

// Rate-limit headers emitted by the Pixels API.
const (
	headerRemaining = "Requests-Remaining"
	headerLimit     = "Requests-Limit"
	headerReset     = "Requests-Reset"
	headerCooldown  = "Cooldown-Reset"
)

// Limiter tracks per-endpoint rate-limit state fed from response headers and
// holds callers back until the advertised window reopens.
type Limiter struct {
	mu     sync.Mutex
	limits map[Endpoint]domain.Limits

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// LimiterOption configures a Limiter.
type LimiterOption func(*Limiter)

// WithClock overrides the clock (useful for tests).
func WithClock(now func() time.Time) LimiterOption {
	return func(l *Limiter) { l.now = now }
}

// WithSleeper overrides how waits are performed (useful for tests).
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) LimiterOption {
	return func(l *Limiter) { l.sleep = sleep }
}

func NewLimiter(opts ...LimiterOption) *Limiter {
	l := &Limiter{
		limits: map[Endpoint]domain.Limits{},
		now:    time.Now,
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Observe records the rate-limit state carried by a response. Responses
// without rate-limit headers leave the recorded state untouched.
func (l *Limiter) Observe(ep Endpoint, headers http.Header) {
	lim, ok := parseLimits(headers, l.now())
	if !ok {
		return
	}

	l.mu.Lock()
	l.limits[ep] = lim
	l.mu.Unlock()
}

// Wait blocks until the endpoint may be contacted, honoring ctx cancellation.
func (l *Limiter) Wait(ctx context.Context, ep Endpoint) error {
	l.mu.Lock()
	lim, ok := l.limits[ep]
	l.mu.Unlock()

	if !ok {
		return nil
	}

	d := lim.WaitFrom(l.now())
	if d <= 0 {
		return nil
	}
	return l.sleep(ctx, d)
}

// Snapshot returns a copy of the last observed state per endpoint.
func (l *Limiter) Snapshot() map[string]domain.Limits {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]domain.Limits, len(l.limits))
	for ep, lim := range l.limits {
		out[string(ep)] = lim
	}
	return out
}

func parseLimits(h http.Header, now time.Time) (domain.Limits, bool) {
	if v := h.Get(headerCooldown); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Limits{}, false
		}
		return domain.Limits{
			Cooldown:   secondsToDuration(secs),
			ObservedAt: now,
		}, true
	}

	remaining := h.Get(headerRemaining)
	limit := h.Get(headerLimit)
	reset := h.Get(headerReset)
	if remaining == "" || limit == "" || reset == "" {
		return domain.Limits{}, false
	}

	rem, err := strconv.Atoi(remaining)
	if err != nil {
		return domain.Limits{}, false
	}
	lim, err := strconv.Atoi(limit)
	if err != nil {
		return domain.Limits{}, false
	}
	resetSecs, err := strconv.ParseFloat(reset, 64)
	if err != nil {
		return domain.Limits{}, false
	}

	return domain.Limits{
		Remaining:  rem,
		Limit:      lim,
		Reset:      secondsToDuration(resetSecs),
		ObservedAt: now,
	}, true
}

func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
