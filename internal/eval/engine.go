// Package eval grades a learner's free-form answer against the expected
// answer declared for a question. It is purely functional: no state
// survives a call, nothing blocks, and any number of evaluations may
// run concurrently. Malformed input on either side is a wrong answer,
// never an error.
package eval

import "strings"

// strategy grades one answer type.
type strategy interface {
	evaluate(raw string, spec Spec, cfg Config) Result
}

// Engine is the single public entry point for grading.
type Engine struct {
	cfg Config
}

// New builds an Engine with the given policy. Use NewConfig to build a
// validated Config.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Evaluate grades a raw answer against spec. Empty or whitespace-only
// input is Incorrect regardless of answer type.
func (e *Engine) Evaluate(raw string, spec Spec) Result {
	if strings.TrimSpace(raw) == "" {
		return incorrect()
	}
	return strategyFor(spec.Type).evaluate(raw, spec, e.cfg)
}

// Evaluate grades a single answer without constructing an Engine.
func Evaluate(raw string, spec Spec, cfg Config) Result {
	return New(cfg).Evaluate(raw, spec)
}

// strategyFor resolves the evaluator for an answer type. An unknown or
// absent type falls back to free-text grading: grading must never fail
// merely because a question's type field is off.
func strategyFor(t AnswerType) strategy {
	switch t {
	case TypeText:
		return textStrategy{}
	case TypeShortText:
		return shortTextStrategy{}
	case TypeInteger:
		return integerStrategy{}
	case TypeFloat:
		return floatStrategy{}
	case TypeRange:
		return rangeStrategy{}
	case TypeBoolean:
		return booleanStrategy{}
	case TypeChoice:
		return choiceStrategy{}
	case TypeMultipleChoice:
		return multipleChoiceStrategy{}
	default:
		return textStrategy{}
	}
}
