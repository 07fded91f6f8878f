package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ShayCichocki/guess/pkg/models"
)

var (
	// ErrSessionOver is returned when a guess is submitted after the session ended.
	ErrSessionOver = errors.New("session is over")
	// ErrInputStream marks a failure of the underlying input stream. It is fatal.
	ErrInputStream = errors.New("input stream failed")
)

// Observer receives session lifecycle events. Implementations must not block.
type Observer interface {
	SessionStarted(id string, target uint32)
	GuessEvaluated(id string, seq int, r Result)
	SessionEnded(id string, status models.SessionStatus, attempts int)
}

// Session owns the target value and the session state machine.
// A Session is not safe for concurrent use.
type Session struct {
	id       string
	target   uint32
	state    State
	attempts int
	seq      int
	ended    bool

	observer Observer
	logger   *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithTarget fixes the target instead of drawing one.
func WithTarget(target uint32) Option {
	return func(s *Session) {
		s.target = target
	}
}

// WithRand draws the target from r.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.target = drawTarget(r)
	}
}

// WithObserver attaches an observer for lifecycle events.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		s.observer = o
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession creates a session in StateAwaitingInput with one target drawn
// uniformly from [MinTarget, MaxTarget] unless an option fixes it.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:     uuid.New().String(),
		target: drawTarget(nil),
		state:  StateAwaitingInput,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Info("session started", zap.String("session_id", s.id))
	if s.observer != nil {
		s.observer.SessionStarted(s.id, s.target)
	}
	return s
}

// drawTarget returns a value in [MinTarget, MaxTarget]. A nil r uses the
// package-level source.
func drawTarget(r *rand.Rand) uint32 {
	span := models.MaxTarget - models.MinTarget + 1
	if r == nil {
		return uint32(models.MinTarget + rand.IntN(span))
	}
	return uint32(models.MinTarget + r.IntN(span))
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Target returns the secret value.
func (s *Session) Target() uint32 {
	return s.target
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Attempts returns the number of guesses that parsed.
func (s *Session) Attempts() int {
	return s.attempts
}

// Submit evaluates one line of input. Input that does not parse yields
// OutcomeInvalid and leaves the state untouched. Submitting after the
// session has ended returns ErrSessionOver.
func (s *Session) Submit(line string) (Result, error) {
	if s.ended || s.state.Terminal() {
		return Result{}, ErrSessionOver
	}

	r := Result{Raw: line, Outcome: models.OutcomeInvalid}
	if v, ok := ParseGuess(line); ok {
		s.attempts++
		r.Value = v
		r.Outcome = Compare(v, s.target)
	}
	r.Attempt = s.attempts

	next, ok := Next(s.state, r.Outcome)
	if !ok {
		return Result{}, fmt.Errorf("no transition from %s on %s", s.state, r.Outcome)
	}
	s.state = next
	s.seq++
	won := next == StateWon
	if won {
		s.ended = true
	}

	s.logger.Debug("guess evaluated",
		zap.String("session_id", s.id),
		zap.Int("seq", s.seq),
		zap.String("outcome", string(r.Outcome)))

	if s.observer != nil {
		s.observer.GuessEvaluated(s.id, s.seq, r)
	}
	if won {
		s.logger.Info("session won", zap.String("session_id", s.id), zap.Int("attempts", s.attempts))
		if s.observer != nil {
			s.observer.SessionEnded(s.id, models.SessionWon, s.attempts)
		}
	}
	return r, nil
}

// Abort ends a session that has not been won. It is a no-op otherwise.
func (s *Session) Abort() {
	if s.ended {
		return
	}
	s.ended = true

	s.logger.Info("session aborted", zap.String("session_id", s.id), zap.Int("attempts", s.attempts))
	if s.observer != nil {
		s.observer.SessionEnded(s.id, models.SessionAborted, s.attempts)
	}
}
