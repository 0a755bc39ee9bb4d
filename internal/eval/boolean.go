package eval

import "strings"

var truthyWords = map[string]bool{
	"true": true, "t": true, "yes": true, "y": true, "1": true,
	"correct": true, "right": true,
}

var falsyWords = map[string]bool{
	"false": true, "f": true, "no": true, "n": true, "0": true,
	"incorrect": true, "wrong": true,
}

type booleanStrategy struct{}

// Boolean answers carry no notion of "close": the verdict is binary and
// partial credit never applies.
func (booleanStrategy) evaluate(raw string, spec Spec, _ Config) Result {
	user, ok := parseBool(raw)
	if !ok {
		return incorrect()
	}
	want, ok := parseBool(spec.Expected)
	if !ok {
		return incorrect()
	}
	if user == want {
		return correct()
	}
	return incorrect()
}

func parseBool(s string) (bool, bool) {
	w := strings.ToLower(strings.TrimSpace(s))
	if truthyWords[w] {
		return true, true
	}
	if falsyWords[w] {
		return false, true
	}
	return false, false
}
