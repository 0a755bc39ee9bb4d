package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	AuthSecret string

	CORSOrigins []string

	// Grading policy shared across every evaluation.
	EvalCaseSensitive       bool
	EvalStrictMatching      bool
	EvalSimilarityThreshold float64
	EvalAllowPartialCredit  bool
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:   addr,
		DBDriver:   envOr("DB_DRIVER", "sqlite"),
		DBDSN:      envOr("DB_DSN", ""),
		AuthSecret: envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),

		EvalCaseSensitive:       envBool("EVAL_CASE_SENSITIVE", false),
		EvalStrictMatching:      envBool("EVAL_STRICT_MATCHING", false),
		EvalSimilarityThreshold: envFloat("EVAL_SIMILARITY_THRESHOLD", 0.8),
		EvalAllowPartialCredit:  envBool("EVAL_ALLOW_PARTIAL", true),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
