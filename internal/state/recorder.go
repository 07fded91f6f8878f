package state

import (
	"time"

	"go.uber.org/zap"

	"github.com/ShayCichocki/guess/internal/game"
	"github.com/ShayCichocki/guess/pkg/models"
)

// Recorder persists game events to a history store. Write failures are
// logged and never interrupt play.
type Recorder struct {
	store  HistoryStore
	logger *zap.Logger
	now    func() time.Time
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(store HistoryStore, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{store: store, logger: logger, now: time.Now}
}

var _ game.Observer = (*Recorder)(nil)

// SessionStarted implements game.Observer.
func (r *Recorder) SessionStarted(id string, target uint32) {
	err := r.store.CreateSession(&models.Session{
		ID:        id,
		Target:    target,
		Status:    models.SessionActive,
		StartedAt: r.now(),
	})
	if err != nil {
		r.logger.Warn("failed to record session start", zap.String("session_id", id), zap.Error(err))
	}
}

// GuessEvaluated implements game.Observer.
func (r *Recorder) GuessEvaluated(id string, seq int, res game.Result) {
	g := &models.Guess{
		SessionID: id,
		Seq:       seq,
		Raw:       res.Raw,
		Outcome:   res.Outcome,
		CreatedAt: r.now(),
	}
	if res.Outcome != models.OutcomeInvalid {
		v := res.Value
		g.Value = &v
	}
	if err := r.store.RecordGuess(g); err != nil {
		r.logger.Warn("failed to record guess", zap.String("session_id", id), zap.Int("seq", seq), zap.Error(err))
	}
}

// SessionEnded implements game.Observer.
func (r *Recorder) SessionEnded(id string, status models.SessionStatus, attempts int) {
	if err := r.store.FinishSession(id, status, attempts, r.now()); err != nil {
		r.logger.Warn("failed to record session end", zap.String("session_id", id), zap.Error(err))
	}
}
