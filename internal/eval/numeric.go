package eval

import (
	"math"
	"strconv"
	"strings"
)

// integerPartialScore is the fixed credit for an answer inside the
// declared tolerance but not exact.
const integerPartialScore = 0.8

// floatDefaultTolerance applies when a Float question declares none.
const floatDefaultTolerance = 0.01

// relativeErrorBand is the widest relative error still worth partial
// credit on Float answers.
const relativeErrorBand = 0.10

type integerStrategy struct{}

func (integerStrategy) evaluate(raw string, spec Spec, cfg Config) Result {
	user, ok := parseInt(raw)
	if !ok {
		return incorrect()
	}
	want, ok := parseInt(spec.Expected)
	if !ok {
		return incorrect()
	}
	if user == want {
		return correct()
	}
	tol := spec.Tuning.Tolerance
	if cfg.partialAllowed() && tol > 0 && math.Abs(float64(user)-float64(want)) <= tol {
		return partial(integerPartialScore)
	}
	return incorrect()
}

type floatStrategy struct{}

func (floatStrategy) evaluate(raw string, spec Spec, cfg Config) Result {
	user, ok := parseFloat(raw)
	if !ok {
		return incorrect()
	}
	want, ok := parseFloat(spec.Expected)
	if !ok {
		return incorrect()
	}
	tol := spec.Tuning.Tolerance
	if tol <= 0 {
		tol = floatDefaultTolerance
	}
	diff := math.Abs(user - want)
	if diff <= tol {
		return correct()
	}
	if !cfg.partialAllowed() || want == 0 {
		return incorrect()
	}
	rel := diff / math.Abs(want)
	if rel <= relativeErrorBand {
		return partial(math.Max(0.5, 1-rel))
	}
	return incorrect()
}

func parseInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v, err == nil
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}
