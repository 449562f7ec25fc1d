package contact

import (
	"context"
	"time"
)

// Sender delivers a message and reports the outcome through done, exactly
// once. Send must not block the caller.
type Sender interface {
	Send(ctx context.Context, msg Message, done func(error))
}

// SimulatedSender stands in for a delivery backend: nothing leaves the
// process. After Latency it reports Err, which is nil unless a test sets it.
type SimulatedSender struct {
	Clock   Clock
	Latency time.Duration
	Err     error
}

// NewSimulatedSender returns a sender that always succeeds after latency.
func NewSimulatedSender(clock Clock, latency time.Duration) *SimulatedSender {
	return &SimulatedSender{Clock: clock, Latency: latency}
}

func (s *SimulatedSender) Send(_ context.Context, _ Message, done func(error)) {
	err := s.Err
	s.Clock.AfterFunc(s.Latency, func() { done(err) })
}
