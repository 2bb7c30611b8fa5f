package form

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/sanad/internal/logging"
	"github.com/muurk/sanad/internal/storage"
)

// opBuffer is the capacity of the persistence queue. A full queue blocks the
// mutating caller rather than dropping or reordering a write.
const opBuffer = 64

// Submitter delivers a completed application to its final destination.
// Implementations live in the submit package; tests supply fakes.
type Submitter interface {
	Submit(ctx context.Context, record Record) error
}

// storeOp is one unit of work for the persistence goroutine.
type storeOp struct {
	blob  string
	clear bool
	ack   chan struct{} // flush barrier, nil for regular writes
}

// Session is the form session state machine. It owns the current step, the
// record, and the submission flag; no other component mutates them.
//
// All methods are safe for concurrent use, though the intended model is a
// single event loop with only the submitter and suggestion calls running off
// it.
type Session struct {
	mu         sync.Mutex
	step       Step
	record     Record
	submitting bool
	closed     bool

	store     storage.Store
	submitter Submitter

	ops  chan storeOp
	done chan struct{}
}

// NewSession creates a session with default state, then performs one
// best-effort load from the store. A missing or unparsable blob is treated as
// "no saved data", not an error; a parsed blob is shallow-merged over the
// defaults.
func NewSession(store storage.Store, submitter Submitter) (*Session, error) {
	if store == nil {
		return nil, fmt.Errorf("session requires a store")
	}
	if submitter == nil {
		return nil, fmt.Errorf("session requires a submitter")
	}

	s := &Session{
		step:      FirstStep,
		record:    NewRecord(),
		store:     store,
		submitter: submitter,
		ops:       make(chan storeOp, opBuffer),
		done:      make(chan struct{}),
	}

	blob, ok, err := store.Load(storage.StorageKey)
	switch {
	case err != nil:
		logging.Warn("Failed to load saved record", zap.Error(err))
	case ok:
		if restored, perr := ParseRecord(blob); perr != nil {
			logging.Warn("Ignoring unparsable saved record", zap.Error(perr))
		} else {
			s.record = restored
			logging.Info("Restored saved record",
				zap.Int("blob_size", len(blob)))
		}
	}

	go s.persistLoop()
	return s, nil
}

// persistLoop applies queued store operations one at a time, in the order the
// mutations occurred. Store failures are logged; in-memory state remains
// authoritative.
func (s *Session) persistLoop() {
	defer close(s.done)
	for op := range s.ops {
		switch {
		case op.ack != nil:
			close(op.ack)
		case op.clear:
			if err := s.store.Clear(storage.StorageKey); err != nil {
				logging.Warn("Failed to clear saved record", zap.Error(err))
			}
		default:
			err := s.store.Save(storage.StorageKey, op.blob)
			logging.LogPersistence(storage.StorageKey, len(op.blob), err)
		}
	}
}

// persistLocked enqueues a write of the current record. Must be called with
// s.mu held so queue order matches mutation order.
func (s *Session) persistLocked() {
	blob, err := s.record.Marshal()
	if err != nil {
		logging.Warn("Failed to serialize record", zap.Error(err))
		return
	}
	s.ops <- storeOp{blob: blob}
}

// clearLocked enqueues removal of the persisted record. Must be called with
// s.mu held.
func (s *Session) clearLocked() {
	s.ops <- storeOp{clear: true}
}

// CurrentStep returns the step the wizard is on (1-3).
func (s *Session) CurrentStep() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Record returns a copy of the current record.
func (s *Session) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

// Field returns the current value of a single field. Unknown fields read as
// empty.
func (s *Session) Field(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record[name]
}

// IsSubmitting reports whether a final submission is in progress.
func (s *Session) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// SubmitStep merges already-validated field values for the given step into
// the record and advances to the next step (the last step does not advance;
// it is terminal for this transition).
//
// Only the current step may be submitted. Submitted keys outside the step's
// schema are ignored; fields belonging to other steps are never touched.
// Validation is the caller's responsibility and happens strictly before this
// call - the session rejects transitions for step-index reasons only.
func (s *Session) SubmitStep(step Step, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return newStateError(ErrKindClosed, "session is closed")
	}
	if !step.Valid() {
		return newStateError(ErrKindWrongStep, "no such step: %d", int(step))
	}
	if step != s.step {
		return newStateError(ErrKindWrongStep,
			"cannot submit step %d while on step %d", int(step), int(s.step))
	}

	for _, f := range step.Fields() {
		if v, ok := fields[f]; ok {
			s.record[f] = v
		}
	}

	from := s.step
	if s.step < LastStep {
		s.step++
	}
	logging.LogStepTransition(int(from), int(s.step), "step submitted")

	s.persistLocked()
	return nil
}

// SubmitField overwrites a single known field and persists the record. This
// is the path shared by manual edits outside step submission and by accepted
// suggestions; it never changes the current step.
func (s *Session) SubmitField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return newStateError(ErrKindClosed, "session is closed")
	}
	if _, known := s.record[name]; !known {
		return newStateError(ErrKindUnknownField, "no such field: %q", name)
	}

	s.record[name] = value
	s.persistLocked()
	return nil
}

// GoBack moves to the previous step. No validation is re-applied; the
// previous step's stored values are exposed unchanged.
func (s *Session) GoBack() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return newStateError(ErrKindClosed, "session is closed")
	}
	if s.step <= FirstStep {
		return newStateError(ErrKindFirstStep, "already on the first step")
	}

	from := s.step
	s.step--
	logging.LogStepTransition(int(from), int(s.step), "went back")
	return nil
}

// SetSubmitting sets the submission-in-progress flag without touching the
// step or the record.
func (s *Session) SetSubmitting(flag bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = flag
}

// FinalSubmit delivers the completed application through the submitter. It is
// legal only from the last step. On success the session returns to its
// initial defaults and the persisted blob is cleared; on failure the record
// and step are left intact so the user can retry, and the submitting flag is
// reset.
func (s *Session) FinalSubmit(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return newStateError(ErrKindClosed, "session is closed")
	}
	if s.step != LastStep {
		s.mu.Unlock()
		return newStateError(ErrKindNotLastStep,
			"cannot submit from step %d", int(s.step))
	}
	if s.submitting {
		s.mu.Unlock()
		return newStateError(ErrKindSubmitInProgress,
			"a submission is already in progress")
	}
	s.submitting = true
	record := s.record.Clone()
	s.mu.Unlock()

	err := s.submitter.Submit(ctx, record)
	logging.LogSubmission(err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		return fmt.Errorf("failed to submit application: %w", err)
	}

	s.step = FirstStep
	s.record = NewRecord()
	s.clearLocked()
	return nil
}

// Reset unconditionally restores initial defaults and clears the persisted
// blob.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.step = FirstStep
	s.record = NewRecord()
	s.submitting = false
	s.clearLocked()
	logging.Info("Session reset")
}

// Flush blocks until every persistence operation enqueued so far has been
// applied to the store. Primarily for tests and orderly shutdown.
func (s *Session) Flush() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	ack := make(chan struct{})
	s.ops <- storeOp{ack: ack}
	s.mu.Unlock()
	<-ack
}

// Close drains pending persistence writes and stops the session. Transitions
// after Close fail with a StateError.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.ops)
	s.mu.Unlock()
	<-s.done
}
