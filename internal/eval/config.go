package eval

import "fmt"

// Config is the grading policy shared across all evaluations in a
// session. Build it with NewConfig so the threshold range is enforced.
type Config struct {
	CaseSensitive       bool
	StrictMatching      bool
	SimilarityThreshold float64
	AllowPartialCredit  bool
}

// ConfigOption tweaks a Config under construction.
type ConfigOption func(*Config)

func WithCaseSensitive(b bool) ConfigOption  { return func(c *Config) { c.CaseSensitive = b } }
func WithStrictMatching(b bool) ConfigOption { return func(c *Config) { c.StrictMatching = b } }
func WithPartialCredit(b bool) ConfigOption  { return func(c *Config) { c.AllowPartialCredit = b } }
func WithSimilarityThreshold(t float64) ConfigOption {
	return func(c *Config) { c.SimilarityThreshold = t }
}

// DefaultConfig is the policy used when the caller supplies no options:
// case-insensitive, partial credit enabled, similarity threshold 0.8.
func DefaultConfig() Config {
	return Config{SimilarityThreshold: 0.8, AllowPartialCredit: true}
}

// NewConfig builds a Config and validates it. An out-of-range similarity
// threshold is a configuration mistake, not learner input, so it fails
// here rather than at grading time.
func NewConfig(opts ...ConfigOption) (Config, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 1 {
		return Config{}, fmt.Errorf("similarity threshold %v outside [0,1]", cfg.SimilarityThreshold)
	}
	return cfg, nil
}

// partialAllowed reports whether any evaluator may award partial credit
// under this policy.
func (c Config) partialAllowed() bool {
	return c.AllowPartialCredit && !c.StrictMatching
}
