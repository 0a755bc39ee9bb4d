package eval

// AnswerType identifies the grading strategy declared for a question.
type AnswerType string

const (
	TypeText           AnswerType = "text"
	TypeShortText      AnswerType = "short_text"
	TypeInteger        AnswerType = "integer"
	TypeFloat          AnswerType = "float"
	TypeRange          AnswerType = "range"
	TypeBoolean        AnswerType = "boolean"
	TypeChoice         AnswerType = "choice"
	TypeMultipleChoice AnswerType = "multiple_choice"
)

// Option is one selectable answer for choice-style questions.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Tuning holds the per-question grading knobs. Zero value means
// "all defaults". Build it once when the question is loaded, not at
// grading time.
type Tuning struct {
	// Tolerance is the accepted absolute deviation for Integer and
	// Float answers. For Float, zero means the built-in default (0.01).
	Tolerance float64
	// OverlapThreshold is the minimum interval-overlap ratio required
	// for partial credit on Range answers. Zero accepts any overlap.
	OverlapThreshold float64
	// ExactMatch disables partial credit for MultipleChoice answers.
	ExactMatch bool
}

// Spec is the expected-answer contract for one question.
type Spec struct {
	Type AnswerType
	// Expected is the canonical textual form of the correct answer.
	// Its shape depends on Type: a literal for Integer/Float/Boolean,
	// a "min-max" literal for Range, an option key (or comma-joined
	// keys) for Choice/MultipleChoice, free prose otherwise.
	Expected string
	// Options is required for Choice/MultipleChoice and unused otherwise.
	Options []Option
	Tuning  Tuning
}

// Verdict is the three-valued grading outcome.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictPartial   Verdict = "partial"
	VerdictIncorrect Verdict = "incorrect"
)

// Result pairs a verdict with a score in [0,1]. Score is 1 exactly when
// the verdict is Correct, 0 exactly when Incorrect, and strictly
// between otherwise.
type Result struct {
	Verdict Verdict `json:"verdict"`
	Score   float64 `json:"score"`
}

func correct() Result   { return Result{Verdict: VerdictCorrect, Score: 1} }
func incorrect() Result { return Result{Verdict: VerdictIncorrect, Score: 0} }

// partial clamps the score into the open interval so the verdict/score
// pairing invariant always holds, even for boundary inputs.
func partial(score float64) Result {
	if score >= 1 {
		return correct()
	}
	if score <= 0 {
		return incorrect()
	}
	return Result{Verdict: VerdictPartial, Score: score}
}
