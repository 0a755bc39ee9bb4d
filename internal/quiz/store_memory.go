package quiz

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/memodrill/memodrill/internal/eval"
)

type memoryStore struct {
	mu       sync.RWMutex
	engine   *eval.Engine
	quizzes  map[string]Quiz
	sessions map[string]Session
}

// NewInMemoryStore keeps everything in process memory. Used in tests
// and quick local runs.
func NewInMemoryStore(engine *eval.Engine) Store {
	return &memoryStore{
		engine:   engine,
		quizzes:  map[string]Quiz{},
		sessions: map[string]Session{},
	}
}

func (m *memoryStore) PutQuiz(q Quiz) error {
	if err := q.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	for i := range q.Questions {
		if q.Questions[i].ID == "" {
			q.Questions[i].ID = uuid.NewString()
		}
	}
	if q.CreatedAt == 0 {
		q.CreatedAt = time.Now().Unix()
	}
	m.quizzes[q.ID] = q
	return nil
}

func (m *memoryStore) GetQuiz(id string) (Quiz, error) {
	q, err := m.GetQuizFull(id)
	if err != nil {
		return Quiz{}, err
	}
	return stripAnswers(q), nil
}

func (m *memoryStore) GetQuizFull(id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, errors.New("quiz not found")
	}
	return q, nil
}

func (m *memoryStore) ListQuizzes(_ context.Context, opts ListOpts) ([]QuizSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]QuizSummary, 0, len(m.quizzes))
	needle := strings.ToLower(opts.Q)
	for _, q := range m.quizzes {
		if needle != "" && !strings.Contains(strings.ToLower(q.Title), needle) {
			continue
		}
		out = append(out, QuizSummary{ID: q.ID, Title: q.Title, QuestionCount: len(q.Questions), CreatedAt: q.CreatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return paginate(out, opts.Limit, opts.Offset), nil
}

func (m *memoryStore) NewSession(quizID, userID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.quizzes[quizID]; !ok {
		return Session{}, errors.New("quiz not found")
	}
	s := Session{
		ID:        uuid.NewString(),
		QuizID:    quizID,
		UserID:    userID,
		Status:    "in_progress",
		Answers:   map[string]string{},
		StartedAt: time.Now().Unix(),
	}
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memoryStore) SaveAnswers(sessionID string, answers map[string]string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return Session{}, errors.New("session not found")
	}
	if s.Status == "submitted" {
		return Session{}, errors.New("session already submitted")
	}
	for k, v := range answers {
		s.Answers[k] = v
	}
	m.sessions[sessionID] = s
	return s, nil
}

func (m *memoryStore) Submit(sessionID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return Session{}, errors.New("session not found")
	}
	if s.Status == "submitted" {
		return s, nil
	}
	q, ok := m.quizzes[s.QuizID]
	if !ok {
		return Session{}, errors.New("quiz not found")
	}
	s.Results, s.ScorePercent = gradeAnswers(m.engine, q.Questions, s.Answers)
	s.Status = "submitted"
	s.SubmittedAt = time.Now().Unix()
	m.sessions[sessionID] = s
	return s, nil
}

func (m *memoryStore) GetSession(id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, errors.New("session not found")
	}
	return s, nil
}

func (m *memoryStore) ListSessions(_ context.Context, opts SessionListOpts) ([]Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		if opts.QuizID != "" && s.QuizID != opts.QuizID {
			continue
		}
		if opts.UserID != "" && s.UserID != opts.UserID {
			continue
		}
		if opts.Status != "" && s.Status != opts.Status {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt > out[j].StartedAt })
	return paginate(out, opts.Limit, opts.Offset), nil
}

func stripAnswers(q Quiz) Quiz {
	qs := make([]Question, len(q.Questions))
	copy(qs, q.Questions)
	for i := range qs {
		qs[i].Answer = ""
	}
	q.Questions = qs
	return q
}

func paginate[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return []T{}
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
