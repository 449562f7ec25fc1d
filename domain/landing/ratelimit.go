package landing

import (
	"time"

	"golang.org/x/time/rate"
)

// RateLimit bounds how often one visitor may submit the contact form.
type RateLimit struct {
	PerMinute int
	Burst     int
}

func (l RateLimit) newLimiter() *rate.Limiter {
	perMin, burst := l.PerMinute, l.Burst
	if perMin <= 0 {
		perMin = 6
	}
	if burst <= 0 {
		burst = 3
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), burst)
}

// AllowContact consumes one contact submission token for the session.
func (s *Session) AllowContact() bool {
	return s.limiter.Allow()
}
