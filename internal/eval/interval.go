package eval

import "strings"

// span is a closed numeric interval, normalized so Lo <= Hi.
type span struct {
	Lo, Hi float64
}

type rangeStrategy struct{}

func (rangeStrategy) evaluate(raw string, spec Spec, cfg Config) Result {
	user, ok := parseSpan(raw)
	if !ok {
		return incorrect()
	}
	want, ok := parseSpan(spec.Expected)
	if !ok {
		return incorrect()
	}
	if user == want {
		return correct()
	}
	if !cfg.partialAllowed() {
		return incorrect()
	}
	ratio := overlapRatio(user, want)
	if ratio > 0 && ratio >= spec.Tuning.OverlapThreshold {
		return partial(ratio)
	}
	return incorrect()
}

// parseSpan reads a range literal in one of three forms: "N-M",
// "N to M", "N..M". Endpoint order is normalized.
func parseSpan(s string) (span, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	var left, right string
	switch {
	case strings.Contains(s, ".."):
		left, right, _ = strings.Cut(s, "..")
	case strings.Contains(s, " to "):
		left, right, _ = strings.Cut(s, " to ")
	default:
		// Skip position 0 so a leading minus sign survives.
		if len(s) < 2 {
			return span{}, false
		}
		i := strings.Index(s[1:], "-")
		if i < 0 {
			return span{}, false
		}
		left, right = s[:i+1], s[i+2:]
	}
	lo, ok := parseFloat(left)
	if !ok {
		return span{}, false
	}
	hi, ok := parseFloat(right)
	if !ok {
		return span{}, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return span{Lo: lo, Hi: hi}, true
}

// overlapRatio is the length of the intersection divided by the length
// of the combined extent of both intervals. Zero for disjoint or merely
// touching intervals.
func overlapRatio(a, b span) float64 {
	lo := a.Lo
	if b.Lo > lo {
		lo = b.Lo
	}
	hi := a.Hi
	if b.Hi < hi {
		hi = b.Hi
	}
	if hi <= lo {
		return 0
	}
	extent := maxf(a.Hi, b.Hi) - minf(a.Lo, b.Lo)
	if extent <= 0 {
		return 0
	}
	return (hi - lo) / extent
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
