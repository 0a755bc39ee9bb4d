package eval

// Thresholds for the text-like evaluators. Near-identical strings are
// accepted as fully correct; short answers get a narrower band that is
// not subject to the configurable threshold.
const (
	textCorrectAt      = 0.98
	shortTextCorrectAt = 0.95
	shortTextPartialAt = 0.85
)

type textStrategy struct{}

func (textStrategy) evaluate(raw string, spec Spec, cfg Config) Result {
	return gradeText(raw, spec.Expected, cfg, textCorrectAt, cfg.SimilarityThreshold)
}

type shortTextStrategy struct{}

func (shortTextStrategy) evaluate(raw string, spec Spec, cfg Config) Result {
	return gradeText(raw, spec.Expected, cfg, shortTextCorrectAt, shortTextPartialAt)
}

func gradeText(raw, expected string, cfg Config, correctAt, partialAt float64) Result {
	user := Normalize(raw, cfg.CaseSensitive)
	want := Normalize(expected, cfg.CaseSensitive)
	if user == want {
		return correct()
	}
	if cfg.StrictMatching {
		return incorrect()
	}
	s := Similarity(user, want)
	if s >= correctAt {
		return correct()
	}
	if cfg.AllowPartialCredit && s >= partialAt {
		return partial(s)
	}
	return incorrect()
}
