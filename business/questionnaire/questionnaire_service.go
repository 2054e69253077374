package questionnaire

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"
	"glowSkincare/pkg/metrics"

	"github.com/google/uuid"
)

// ErrSessionConflict is returned when a session changed between load and write.
var ErrSessionConflict = fmt.Errorf("%w: questionnaire session changed concurrently", domain.ErrConflict)

const maxApplyAttempts = 3

// Record is what the session store keeps per questionnaire session.
// Version increases on every write.
type Record struct {
	UserID   uint                `json:"user_id"`
	Version  int64               `json:"version"`
	Snapshot Snapshot            `json:"snapshot"`
	Profile  *domain.SkinProfile `json:"profile,omitempty"`
}

// SessionRepository contract interface
type SessionRepository interface {
	SaveSession(ctx context.Context, id string, record Record, ttl time.Duration) error
	GetSession(ctx context.Context, id string) (Record, error)
	// CompareAndSwapSession writes next only while the stored record is still at
	// expectedVersion, otherwise it returns ErrSessionConflict.
	CompareAndSwapSession(ctx context.Context, id string, expectedVersion int64, next Record, ttl time.Duration) error
	DeleteSession(ctx context.Context, id string) error
}

// ProfileService normalizes and stores a submitted questionnaire profile.
type ProfileService interface {
	SubmitQuestionnaire(ctx context.Context, userID uint, partial domain.SkinProfile) (domain.SkinProfile, error)
}

// Session is the view of a questionnaire session handed to the presentation layer.
type Session struct {
	ID         string              `json:"session_id"`
	Step       int                 `json:"step"`
	Total      int                 `json:"total"`
	Progress   float64             `json:"progress"`
	Question   *QuestionView       `json:"question,omitempty"`
	Answers    Answers             `json:"answers"`
	CanProceed bool                `json:"can_proceed"`
	Submitted  bool                `json:"submitted"`
	Exited     bool                `json:"exited"`
	Profile    *domain.SkinProfile `json:"profile,omitempty"`
}

type QuestionView struct {
	Question
	Selected []string `json:"selected"`
}

type service struct {
	sessionRepo SessionRepository
	profiles    ProfileService
	ttl         time.Duration
}

func NewQuestionnaireService(sessionRepo SessionRepository, profiles ProfileService, ttl time.Duration) *service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &service{
		sessionRepo: sessionRepo,
		profiles:    profiles,
		ttl:         ttl,
	}
}

func (s *service) Start(ctx context.Context, userID uint) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, fmt.Errorf("context error: %w", err)
	}

	id := uuid.NewString()
	m := NewMachine()
	record := Record{UserID: userID, Snapshot: m.Snapshot()}

	if err := s.sessionRepo.SaveSession(ctx, id, record, s.ttl); err != nil {
		logger.Error("failed to save questionnaire session", err)
		return Session{}, err
	}

	logger.Debug("questionnaire started", "session_id", id, "user_id", userID)

	return view(id, m, nil), nil
}

func (s *service) Get(ctx context.Context, id string) (Session, error) {
	_, m, record, err := s.load(ctx, id)
	if err != nil {
		return Session{}, err
	}
	return view(id, m, record.Profile), nil
}

func (s *service) Select(ctx context.Context, id, option string) (Session, error) {
	return s.apply(ctx, id, func(m *Machine) error {
		return m.Select(option)
	})
}

// Next advances the session. An unanswered question leaves the session unchanged.
func (s *service) Next(ctx context.Context, id string) (Session, error) {
	return s.apply(ctx, id, func(m *Machine) error {
		m.Next()
		return nil
	})
}

func (s *service) Back(ctx context.Context, id string) (Session, error) {
	return s.apply(ctx, id, func(m *Machine) error {
		m.Back()
		return nil
	})
}

// apply runs transition against the stored session and writes the result back
// with a version check, reloading and replaying on a concurrent change.
func (s *service) apply(ctx context.Context, id string, transition func(m *Machine) error) (Session, error) {
	var lastErr error
	for attempt := 1; attempt <= maxApplyAttempts; attempt++ {
		sess, err := s.applyOnce(ctx, id, transition)
		if !errors.Is(err, ErrSessionConflict) {
			return sess, err
		}
		lastErr = err
		logger.Debug("questionnaire session conflict, retrying", "session_id", id, "attempt", attempt)
	}

	logger.Warn("questionnaire session kept conflicting", "session_id", id, "error", lastErr.Error())
	return Session{}, lastErr
}

func (s *service) applyOnce(ctx context.Context, id string, transition func(m *Machine) error) (Session, error) {
	_, m, record, err := s.load(ctx, id)
	if err != nil {
		return Session{}, err
	}

	// a submitted session no longer changes
	if m.Submitted() {
		if err := transition(m); err != nil {
			return Session{}, err
		}
		return view(id, m, record.Profile), nil
	}

	if err := transition(m); err != nil {
		return Session{}, err
	}

	if m.Exited() {
		if err := s.sessionRepo.DeleteSession(ctx, id); err != nil {
			logger.Warn("failed to delete exited questionnaire session", err)
		}
		return view(id, m, nil), nil
	}

	next := record
	next.Version = record.Version + 1
	next.Snapshot = m.Snapshot()
	if err := s.sessionRepo.CompareAndSwapSession(ctx, id, record.Version, next, s.ttl); err != nil {
		if !errors.Is(err, ErrSessionConflict) {
			logger.Error("failed to save questionnaire session", err)
		}
		return Session{}, err
	}

	if !m.Submitted() {
		return view(id, m, nil), nil
	}

	// only the write that flipped the session to submitted stores the profile
	partial, _ := m.Profile()
	profile, err := s.profiles.SubmitQuestionnaire(ctx, record.UserID, partial)
	if err != nil {
		logger.Error("failed to submit questionnaire profile", err)
		rollback := record
		rollback.Version = next.Version + 1
		if rbErr := s.sessionRepo.CompareAndSwapSession(ctx, id, next.Version, rollback, s.ttl); rbErr != nil {
			logger.Error("failed to reopen questionnaire session", rbErr)
		}
		return Session{}, err
	}

	final := next
	final.Version = next.Version + 1
	final.Profile = &profile
	if err := s.sessionRepo.CompareAndSwapSession(ctx, id, next.Version, final, s.ttl); err != nil {
		logger.Error("failed to store questionnaire profile on session", err)
	}

	metrics.QuestionnaireSubmissions.Inc()
	logger.Info("questionnaire submitted", "session_id", id, "user_id", record.UserID)

	return view(id, m, &profile), nil
}

func (s *service) load(ctx context.Context, id string) (string, *Machine, Record, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, Record{}, fmt.Errorf("context error: %w", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", nil, Record{}, fmt.Errorf("%w: questionnaire session", domain.ErrNotFound)
	}

	record, err := s.sessionRepo.GetSession(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to load questionnaire session", err)
		}
		return "", nil, Record{}, err
	}

	m, err := Restore(record.Snapshot)
	if err != nil {
		logger.Error("corrupt questionnaire session", "session_id", id, "error", err.Error())
		return "", nil, Record{}, err
	}

	return id, m, record, nil
}

func view(id string, m *Machine, profile *domain.SkinProfile) Session {
	sess := Session{
		ID:         id,
		Step:       m.Step(),
		Total:      m.Total(),
		Progress:   m.Progress(),
		Answers:    m.Answers(),
		CanProceed: m.CanProceed(),
		Submitted:  m.Submitted(),
		Exited:     m.Exited(),
		Profile:    profile,
	}

	if q, ok := m.Current(); ok {
		qv := &QuestionView{Question: q, Selected: []string{}}
		for _, opt := range q.Options {
			if m.IsSelected(opt) {
				qv.Selected = append(qv.Selected, opt)
			}
		}
		sess.Question = qv
	}

	return sess
}
