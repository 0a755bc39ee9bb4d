package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/memodrill/memodrill/internal/eval"
)

// SQLStore persists quizzes and sessions in sqlite or postgres.
type SQLStore struct {
	db     *sql.DB
	engine *eval.Engine
}

func NewSQLStore(db *sql.DB, engine *eval.Engine) *SQLStore {
	return &SQLStore{db: db, engine: engine}
}

func (s *SQLStore) PutQuiz(q Quiz) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	for i := range q.Questions {
		if q.Questions[i].ID == "" {
			q.Questions[i].ID = uuid.NewString()
		}
	}
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO quizzes (id,title,questions_json,created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, questions_json=EXCLUDED.questions_json`,
		q.ID, q.Title, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetQuiz(id string) (Quiz, error) {
	q, err := s.GetQuizFull(id)
	if err != nil {
		return Quiz{}, err
	}
	return stripAnswers(q), nil
}

func (s *SQLStore) GetQuizFull(id string) (Quiz, error) {
	row := s.db.QueryRow(`SELECT id,title,questions_json,created_at FROM quizzes WHERE id=$1`, id)
	var q Quiz
	var qjson string
	if err := row.Scan(&q.ID, &q.Title, &qjson, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, errors.New("quiz not found")
		}
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *SQLStore) ListQuizzes(ctx context.Context, opts ListOpts) ([]QuizSummary, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id,title,questions_json,created_at FROM quizzes
		WHERE ($1 = '' OR lower(title) LIKE '%' || lower($1) || '%')
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, opts.Q, limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []QuizSummary{}
	for rows.Next() {
		var sum QuizSummary
		var qjson string
		if err := rows.Scan(&sum.ID, &sum.Title, &qjson, &sum.CreatedAt); err != nil {
			return nil, err
		}
		var qs []Question
		if err := json.Unmarshal([]byte(qjson), &qs); err == nil {
			sum.QuestionCount = len(qs)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLStore) NewSession(quizID, userID string) (Session, error) {
	var exist int
	if err := s.db.QueryRow(`SELECT 1 FROM quizzes WHERE id=$1`, quizID).Scan(&exist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, errors.New("quiz not found")
		}
		return Session{}, err
	}
	sess := Session{
		ID:        uuid.NewString(),
		QuizID:    quizID,
		UserID:    userID,
		Status:    "in_progress",
		Answers:   map[string]string{},
		StartedAt: time.Now().Unix(),
	}
	aj, _ := json.Marshal(sess.Answers)
	_, err := s.db.Exec(`INSERT INTO sessions (id,quiz_id,user_id,status,score_percent,answers_json,results_json,started_at)
		VALUES ($1,$2,$3,'in_progress',0,$4,'{}',$5)`,
		sess.ID, quizID, userID, string(aj), sess.StartedAt)
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) SaveAnswers(sessionID string, answers map[string]string) (Session, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return Session{}, err
	}
	if sess.Status == "submitted" {
		return Session{}, errors.New("session already submitted")
	}
	if sess.Answers == nil {
		sess.Answers = map[string]string{}
	}
	for k, v := range answers {
		sess.Answers[k] = v
	}
	buf, _ := json.Marshal(sess.Answers)
	if _, err := s.db.Exec(`UPDATE sessions SET answers_json=$1 WHERE id=$2`, string(buf), sessionID); err != nil {
		return Session{}, err
	}
	return s.GetSession(sessionID)
}

func (s *SQLStore) Submit(sessionID string) (Session, error) {
	sess, err := s.GetSession(sessionID)
	if err != nil {
		return Session{}, err
	}
	if sess.Status == "submitted" {
		return sess, nil
	}

	// Full quiz, with expected answers, for grading.
	q, err := s.GetQuizFull(sess.QuizID)
	if err != nil {
		return Session{}, err
	}
	results, pct := gradeAnswers(s.engine, q.Questions, sess.Answers)

	rj, _ := json.Marshal(results)
	aj, _ := json.Marshal(sess.Answers)
	_, err = s.db.Exec(`UPDATE sessions SET status='submitted', score_percent=$1, answers_json=$2, results_json=$3, submitted_at=$4 WHERE id=$5`,
		pct, string(aj), string(rj), time.Now().Unix(), sessionID)
	if err != nil {
		return Session{}, err
	}
	return s.GetSession(sessionID)
}

func (s *SQLStore) GetSession(id string) (Session, error) {
	row := s.db.QueryRow(`SELECT id,quiz_id,user_id,status,score_percent,answers_json,results_json,started_at,COALESCE(submitted_at,0)
		FROM sessions WHERE id=$1`, id)
	return scanSession(row)
}

func (s *SQLStore) ListSessions(ctx context.Context, opts SessionListOpts) ([]Session, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id,quiz_id,user_id,status,score_percent,answers_json,results_json,started_at,COALESCE(submitted_at,0)
		FROM sessions
		WHERE ($1 = '' OR quiz_id = $1) AND ($2 = '' OR user_id = $2) AND ($3 = '' OR status = $3)
		ORDER BY started_at DESC LIMIT $4 OFFSET $5`,
		opts.QuizID, opts.UserID, opts.Status, limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (Session, error) {
	var sess Session
	var ajson, rjson string
	err := row.Scan(&sess.ID, &sess.QuizID, &sess.UserID, &sess.Status, &sess.ScorePercent,
		&ajson, &rjson, &sess.StartedAt, &sess.SubmittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, errors.New("session not found")
		}
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(ajson), &sess.Answers); err != nil {
		sess.Answers = map[string]string{}
	}
	if err := json.Unmarshal([]byte(rjson), &sess.Results); err != nil {
		sess.Results = nil
	}
	return sess, nil
}
