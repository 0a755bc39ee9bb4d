package eval

import "strings"

// jaccardPartialAt is the minimum set overlap worth partial credit on a
// multi-select answer.
const jaccardPartialAt = 0.5

type choiceStrategy struct{}

func (choiceStrategy) evaluate(raw string, spec Spec, cfg Config) Result {
	if len(spec.Options) == 0 {
		// A choice question without options is malformed; grade the
		// answer as free text rather than fail.
		return textStrategy{}.evaluate(raw, spec, cfg)
	}
	user := Normalize(raw, false)
	want := Normalize(spec.Expected, false)
	if user == want {
		return correct()
	}
	for _, opt := range spec.Options {
		key := Normalize(opt.Key, false)
		label := Normalize(opt.Label, false)
		if user != key && user != label {
			continue
		}
		// The learner picked a recognized option; it counts only if
		// that option is the expected one.
		if key == want || label == want {
			return correct()
		}
		return incorrect()
	}
	return incorrect()
}

type multipleChoiceStrategy struct{}

func (multipleChoiceStrategy) evaluate(raw string, spec Spec, cfg Config) Result {
	if len(spec.Options) == 0 {
		return textStrategy{}.evaluate(raw, spec, cfg)
	}
	user := tokenSet(raw)
	want := tokenSet(spec.Expected)
	if setsEqual(user, want) {
		return correct()
	}
	if !cfg.partialAllowed() || spec.Tuning.ExactMatch {
		return incorrect()
	}
	j := jaccard(user, want)
	if j >= jaccardPartialAt {
		return partial(j)
	}
	return incorrect()
}

// tokenSet splits a comma-joined selection into normalized tokens.
// Order and duplicates are deliberately irrelevant.
func tokenSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, part := range strings.Split(s, ",") {
		if tok := Normalize(part, false); tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
