// Package contact implements the contact form of the landing page: four
// text fields and the submission status that drives the simulated send.
//
// Lifecycle:
//
//	Idle -> Submitting -> Success -> (after ResetDelay) Idle, fields cleared, OnReset hooks
//	Idle -> Submitting -> Error   (stays until the visitor edits a field)
//
// There is no way to cancel an attempt. Timers keep running when the
// contact modal is dismissed, and the reset still fires afterwards.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Narturebelle/Narturebelle/pkg/logger"
	"github.com/Narturebelle/Narturebelle/pkg/tracing"
)

// Options configures a Machine. Zero values fall back to the wall clock, a
// simulated sender with no latency, and slog.Default().
type Options struct {
	Clock      Clock
	Sender     Sender
	ResetDelay time.Duration
	Log        *slog.Logger
}

// Machine is the contact form state machine. It is safe for concurrent
// use; hooks run after the internal lock is released.
type Machine struct {
	clock      Clock
	sender     Sender
	resetDelay time.Duration
	log        *slog.Logger

	mu          sync.Mutex
	fields      Message
	status      Status
	attempts    int
	transitions []func(from, to Status)
	resets      []func()
}

type transition struct {
	from, to Status
}

// NewMachine creates an idle machine with empty fields.
func NewMachine(opts Options) *Machine {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Sender == nil {
		opts.Sender = NewSimulatedSender(opts.Clock, 0)
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Machine{
		clock:      opts.Clock,
		sender:     opts.Sender,
		resetDelay: opts.ResetDelay,
		log:        opts.Log.With(logger.Scope("contact")),
	}
}

// OnTransition registers fn to observe every status change, in order.
func (m *Machine) OnTransition(fn func(from, to Status)) {
	m.mu.Lock()
	m.transitions = append(m.transitions, fn)
	m.mu.Unlock()
}

// OnReset registers fn to run after a successful attempt has been cleared.
func (m *Machine) OnReset(fn func()) {
	m.mu.Lock()
	m.resets = append(m.resets, fn)
	m.mu.Unlock()
}

// Snapshot returns the current fields and status.
func (m *Machine) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{Fields: m.fields, Status: m.status}
}

// CanSubmit reports whether Submit would be accepted by status alone.
func (m *Machine) CanSubmit() bool {
	return m.Snapshot().CanSubmit()
}

// SetField updates exactly one field. Editing after a failed attempt
// acknowledges the error and returns the form to Idle first.
func (m *Machine) SetField(f Field, value string) error {
	if _, err := ParseField(string(f)); err != nil {
		return err
	}
	return m.edit(func(msg *Message) { msg.set(f, value) })
}

// SetFields replaces all four fields, as a full form post does.
func (m *Machine) SetFields(msg Message) error {
	return m.edit(func(dst *Message) { *dst = msg })
}

func (m *Machine) edit(apply func(*Message)) error {
	m.mu.Lock()
	var ts []transition
	switch m.status {
	case Idle:
	case Error:
		ts = append(ts, m.setStatusLocked(Idle))
	default:
		status := m.status
		m.mu.Unlock()
		return fmt.Errorf("%w (status %s)", ErrFormLocked, status)
	}
	apply(&m.fields)
	m.mu.Unlock()

	m.emit(ts...)
	return nil
}

// Submit starts a simulated send of the current fields. It is only valid
// from Idle and only with every field filled in. The attempt outlives ctx.
func (m *Machine) Submit(ctx context.Context) error {
	m.mu.Lock()
	if m.status != Idle {
		status := m.status
		m.mu.Unlock()
		return fmt.Errorf("%w (status %s)", ErrNotIdle, status)
	}
	if f, missing := m.fields.Missing(); missing {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrMissingField, f)
	}
	msg := m.fields
	m.attempts++
	attempt := m.attempts
	t := m.setStatusLocked(Submitting)
	m.mu.Unlock()

	m.emit(t)

	ctx, span := tracing.Start(context.WithoutCancel(ctx), "contact.submit",
		attribute.Int("narturebelle.contact.attempt", attempt),
		attribute.Int("narturebelle.contact.message_length", len(msg.Message)),
	)
	m.log.Info("contact submission started", slog.Int("attempt", attempt))

	m.sender.Send(ctx, msg, func(err error) {
		m.resolve(span, attempt, err)
	})
	return nil
}

func (m *Machine) resolve(span trace.Span, attempt int, err error) {
	defer span.End()

	m.mu.Lock()
	if m.status != Submitting {
		m.mu.Unlock()
		m.log.Warn("dropping stale submission result", slog.Int("attempt", attempt))
		return
	}
	if err != nil {
		t := m.setStatusLocked(Error)
		m.mu.Unlock()

		err = fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "submission failed")
		m.log.Warn("contact submission failed", slog.Int("attempt", attempt), logger.Error(err))
		m.emit(t)
		return
	}
	t := m.setStatusLocked(Success)
	m.mu.Unlock()

	m.log.Info("contact submission succeeded", slog.Int("attempt", attempt))
	m.emit(t)
	m.clock.AfterFunc(m.resetDelay, m.reset)
}

// reset clears the form after a successful attempt.
func (m *Machine) reset() {
	m.mu.Lock()
	m.fields = Message{}
	t := m.setStatusLocked(Idle)
	hooks := append([]func(){}, m.resets...)
	m.mu.Unlock()

	m.emit(t)
	for _, fn := range hooks {
		fn()
	}
}

func (m *Machine) setStatusLocked(to Status) transition {
	t := transition{from: m.status, to: to}
	m.status = to
	return t
}

func (m *Machine) emit(ts ...transition) {
	if len(ts) == 0 {
		return
	}
	m.mu.Lock()
	observers := append([]func(from, to Status){}, m.transitions...)
	m.mu.Unlock()

	for _, t := range ts {
		m.log.Debug("contact status changed",
			slog.String("from", t.from.String()),
			slog.String("to", t.to.String()),
		)
		for _, fn := range observers {
			fn(t.from, t.to)
		}
	}
}
