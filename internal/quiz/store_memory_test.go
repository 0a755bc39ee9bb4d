package quiz

import (
	"context"
	"testing"

	"github.com/memodrill/memodrill/internal/eval"
)

func testStore(t *testing.T) Store {
	t.Helper()
	return NewInMemoryStore(eval.New(eval.DefaultConfig()))
}

func sampleQuiz() Quiz {
	return Quiz{
		ID:    "vocab-1",
		Title: "French vocabulary",
		Questions: []Question{
			{ID: "q1", Prompt: "dog?", Type: "text", Answer: "chien"},
			{ID: "q2", Prompt: "days in a leap year?", Type: "integer", Answer: "366", Metadata: map[string]interface{}{"tolerance": 1.0}},
			{ID: "q3", Prompt: "is paris in france?", Type: "boolean", Answer: "true"},
			{ID: "q4", Prompt: "cat?", Type: "text", Answer: "chat"},
		},
	}
}

func TestPutQuizValidation(t *testing.T) {
	s := testStore(t)
	cases := []struct {
		name string
		quiz Quiz
	}{
		{"missing title", Quiz{Questions: []Question{{ID: "q", Type: "text", Answer: "x"}}}},
		{"no questions", Quiz{Title: "empty"}},
		{"empty expected answer", Quiz{Title: "t", Questions: []Question{{ID: "q", Type: "text"}}}},
		{"wrong-typed tolerance", Quiz{Title: "t", Questions: []Question{
			{ID: "q", Type: "integer", Answer: "1", Metadata: map[string]interface{}{"tolerance": "one"}},
		}}},
		{"wrong-typed exact_match", Quiz{Title: "t", Questions: []Question{
			{ID: "q", Type: "multiple_choice", Answer: "a", Metadata: map[string]interface{}{"exact_match": "yes"}},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.PutQuiz(tc.quiz); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestGetQuizStripsAnswers(t *testing.T) {
	s := testStore(t)
	if err := s.PutQuiz(sampleQuiz()); err != nil {
		t.Fatalf("PutQuiz: %v", err)
	}
	q, err := s.GetQuiz("vocab-1")
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}
	for _, question := range q.Questions {
		if question.Answer != "" {
			t.Errorf("question %s leaked expected answer %q", question.ID, question.Answer)
		}
	}
	full, err := s.GetQuizFull("vocab-1")
	if err != nil {
		t.Fatalf("GetQuizFull: %v", err)
	}
	if full.Questions[0].Answer != "chien" {
		t.Errorf("full quiz lost expected answer: %+v", full.Questions[0])
	}
}

func TestSubmissionWorkflow(t *testing.T) {
	s := testStore(t)
	if err := s.PutQuiz(sampleQuiz()); err != nil {
		t.Fatalf("PutQuiz: %v", err)
	}
	sess, err := s.NewSession("vocab-1", "lea")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if sess.Status != "in_progress" {
		t.Fatalf("status = %q", sess.Status)
	}

	_, err = s.SaveAnswers(sess.ID, map[string]string{
		"q1": "chien", // correct, 1.0
		"q2": "365",   // within tolerance, 0.8
		"q3": "no",    // wrong
		// q4 unanswered, counts against the denominator
	})
	if err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}

	done, err := s.Submit(sess.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if done.Status != "submitted" {
		t.Fatalf("status = %q", done.Status)
	}
	// (1.0 + 0.8 + 0 + 0) / 4 = 0.45 -> 45%
	if done.ScorePercent != 45 {
		t.Errorf("score = %d, want 45", done.ScorePercent)
	}
	if got := done.Results["q1"]; got.Verdict != "correct" || got.Score != 1 {
		t.Errorf("q1 result = %+v", got)
	}
	if got := done.Results["q2"]; got.Verdict != "partial" || got.Score != 0.8 {
		t.Errorf("q2 result = %+v", got)
	}
	if got := done.Results["q3"]; got.Verdict != "incorrect" || got.Score != 0 {
		t.Errorf("q3 result = %+v", got)
	}
	if _, ok := done.Results["q4"]; ok {
		t.Error("unanswered question should have no record")
	}

	// Submitting again is a no-op, saving afterwards is rejected.
	again, err := s.Submit(sess.ID)
	if err != nil || again.ScorePercent != 45 {
		t.Fatalf("resubmit: %v %+v", err, again)
	}
	if _, err := s.SaveAnswers(sess.ID, map[string]string{"q4": "chat"}); err == nil {
		t.Error("expected error saving answers after submit")
	}
}

func TestListQuizzes(t *testing.T) {
	s := testStore(t)
	for _, title := range []string{"French vocabulary", "Spanish vocabulary", "Geometry"} {
		err := s.PutQuiz(Quiz{Title: title, Questions: []Question{{Type: "text", Answer: "x"}}})
		if err != nil {
			t.Fatalf("PutQuiz(%s): %v", title, err)
		}
	}
	all, err := s.ListQuizzes(context.Background(), ListOpts{})
	if err != nil || len(all) != 3 {
		t.Fatalf("list all: %v, %d items", err, len(all))
	}
	vocab, err := s.ListQuizzes(context.Background(), ListOpts{Q: "vocabulary"})
	if err != nil || len(vocab) != 2 {
		t.Fatalf("filtered list: %v, %d items", err, len(vocab))
	}
	page, err := s.ListQuizzes(context.Background(), ListOpts{Limit: 2, Offset: 2})
	if err != nil || len(page) != 1 {
		t.Fatalf("paged list: %v, %d items", err, len(page))
	}
}

func TestListSessions(t *testing.T) {
	s := testStore(t)
	if err := s.PutQuiz(sampleQuiz()); err != nil {
		t.Fatalf("PutQuiz: %v", err)
	}
	a, _ := s.NewSession("vocab-1", "lea")
	if _, err := s.NewSession("vocab-1", "max"); err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := s.Submit(a.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	mine, err := s.ListSessions(context.Background(), SessionListOpts{UserID: "lea"})
	if err != nil || len(mine) != 1 {
		t.Fatalf("by user: %v, %d items", err, len(mine))
	}
	open, err := s.ListSessions(context.Background(), SessionListOpts{Status: "in_progress"})
	if err != nil || len(open) != 1 || open[0].UserID != "max" {
		t.Fatalf("by status: %v, %+v", err, open)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		sum   float64
		count int
		want  int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{3, 3, 100},
		{1.8, 4, 45},
		{2, 3, 67},
	}
	for _, tc := range cases {
		if got := percent(tc.sum, tc.count); got != tc.want {
			t.Errorf("percent(%v, %d) = %d, want %d", tc.sum, tc.count, got, tc.want)
		}
	}
}
