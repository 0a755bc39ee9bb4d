package quiz

import (
	"fmt"

	"github.com/memodrill/memodrill/internal/eval"
)

// Option is one selectable answer for choice-style questions.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
}

// Question holds the prompt shown to the learner plus the stored answer
// specification the evaluation engine grades against.
type Question struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt,omitempty"`
	Type   string `json:"type"` // one of eval's answer types

	// Answer is the expected literal. Stripped when serving to learners.
	Answer   string                 `json:"answer,omitempty"`
	Options  []Option               `json:"options,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"` // tolerance, overlap_threshold, exact_match
}

// Quiz is an ordered collection of questions.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt int64      `json:"created_at,omitempty"`
}

// QuizSummary is the list-view projection of a quiz.
type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
	CreatedAt     int64  `json:"created_at,omitempty"`
}

// AnswerRecord is the graded outcome kept per answered question.
type AnswerRecord struct {
	Verdict string  `json:"verdict"`
	Score   float64 `json:"score"`
}

// Session is one learner's run through a quiz.
type Session struct {
	ID           string                  `json:"id"`
	QuizID       string                  `json:"quiz_id"`
	UserID       string                  `json:"user_id"`
	Status       string                  `json:"status"` // in_progress|submitted
	ScorePercent int                     `json:"score_percent"`
	Answers      map[string]string       `json:"answers"` // questionID -> raw answer
	Results      map[string]AnswerRecord `json:"results,omitempty"`
	StartedAt    int64                   `json:"started_at,omitempty"`
	SubmittedAt  int64                   `json:"submitted_at,omitempty"`
}

// ParseTuning converts a question's stored metadata into the engine's
// typed tuning. Wrong-typed values fail here, when the quiz is loaded
// or saved, instead of being read as defaults at grading time.
func ParseTuning(meta map[string]interface{}) (eval.Tuning, error) {
	var t eval.Tuning
	for key, v := range meta {
		switch key {
		case "tolerance":
			f, ok := asFloat(v)
			if !ok {
				return eval.Tuning{}, fmt.Errorf("tolerance: expected number, got %T", v)
			}
			t.Tolerance = f
		case "overlap_threshold":
			f, ok := asFloat(v)
			if !ok {
				return eval.Tuning{}, fmt.Errorf("overlap_threshold: expected number, got %T", v)
			}
			t.OverlapThreshold = f
		case "exact_match":
			b, ok := v.(bool)
			if !ok {
				return eval.Tuning{}, fmt.Errorf("exact_match: expected bool, got %T", v)
			}
			t.ExactMatch = b
		}
	}
	return t, nil
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// gradingSpec builds the engine's answer specification for a question.
// Metadata has been validated at load time, so parse failures here are
// ignored and grade with defaults.
func (q Question) gradingSpec() eval.Spec {
	tuning, _ := ParseTuning(q.Metadata)
	var opts []eval.Option
	for _, o := range q.Options {
		opts = append(opts, eval.Option{Key: o.Key, Label: o.Label})
	}
	return eval.Spec{
		Type:     eval.AnswerType(q.Type),
		Expected: q.Answer,
		Options:  opts,
		Tuning:   tuning,
	}
}

// Validate checks a quiz at authoring time. Grading itself never fails
// on malformed data, but catching it here keeps bad specs out of
// storage.
func (z Quiz) Validate() error {
	if z.Title == "" {
		return fmt.Errorf("quiz title required")
	}
	if len(z.Questions) == 0 {
		return fmt.Errorf("quiz needs at least one question")
	}
	for i, q := range z.Questions {
		if q.Answer == "" {
			return fmt.Errorf("question %d: expected answer required", i)
		}
		if _, err := ParseTuning(q.Metadata); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}
