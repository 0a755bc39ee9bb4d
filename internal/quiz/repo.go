package quiz

import "context"

type ListOpts struct {
	Q      string
	Limit  int
	Offset int
}

type SessionListOpts struct {
	QuizID string
	UserID string
	Status string // optional: in_progress|submitted
	Limit  int
	Offset int
}

// Store persists quizzes and sessions and runs the submission workflow.
type Store interface {
	PutQuiz(q Quiz) error
	GetQuiz(id string) (Quiz, error)     // learner-safe (no expected answers)
	GetQuizFull(id string) (Quiz, error) // full quiz, for authors
	ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error)

	NewSession(quizID, userID string) (Session, error)
	SaveAnswers(sessionID string, answers map[string]string) (Session, error)
	Submit(sessionID string) (Session, error)
	GetSession(id string) (Session, error)
	ListSessions(ctx context.Context, opts SessionListOpts) ([]Session, error)
}
