package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	AuthSecret string

	// Generation service (any OpenAI-compatible endpoint).
	GenProvider string
	GenAPIKey   string
	GenBaseURL  string
	GenModel    string
	GenTimeout  time.Duration

	BlobBasePath string

	CORSOrigins []string

	NumQuestionsDefault int
	NumQuestionsMax     int
}

func FromEnv() Config {
	return Config{
		HTTPAddr:            envOr("HTTP_ADDR", ":8000"),
		DBDriver:            envOr("DB_DRIVER", "sqlite"),
		DBDSN:               envOr("DB_DSN", ""),
		AuthSecret:          envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		GenProvider:         envOr("GEN_PROVIDER", "openai"),
		GenAPIKey:           os.Getenv("GEN_API_KEY"),
		GenBaseURL:          envOr("GEN_BASE_URL", "https://api.groq.com/openai/v1"),
		GenModel:            envOr("GEN_MODEL", "llama-3.3-70b-versatile"),
		GenTimeout:          time.Duration(envInt("GEN_TIMEOUT_SEC", 60)) * time.Second,
		BlobBasePath:        envOr("BLOB_BASE_PATH", "./data"),
		CORSOrigins:         csvOr("CORS_ORIGINS", "http://localhost:3000"),
		NumQuestionsDefault: envInt("NUM_QUESTIONS_DEFAULT", 10),
		NumQuestionsMax:     envInt("NUM_QUESTIONS_MAX", 50),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
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
