package quiz

import (
	"math"

	"github.com/memodrill/memodrill/internal/eval"
)

// gradeAnswers runs every answered question through the engine and
// returns the per-question records plus the session percentage:
// the score sum over the question count, scaled to an integer 0-100.
// Unanswered questions count against the denominator.
func gradeAnswers(engine *eval.Engine, questions []Question, answers map[string]string) (map[string]AnswerRecord, int) {
	results := make(map[string]AnswerRecord, len(answers))
	sum := 0.0
	for _, q := range questions {
		raw, ok := answers[q.ID]
		if !ok {
			continue
		}
		res := engine.Evaluate(raw, q.gradingSpec())
		results[q.ID] = AnswerRecord{Verdict: string(res.Verdict), Score: res.Score}
		sum += res.Score
	}
	return results, percent(sum, len(questions))
}

func percent(sum float64, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count) * 100))
}
