package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultMaxUploadBytes = 10 << 20

// Config holds application configuration. It is built once at process start and
// handed to the services that need it.
type Config struct {
	Port            string
	Env             string   `validate:"oneof=dev local staging production"`
	CORSAllowOrigin []string `validate:"dive,required"`
	PublicBaseURL   string   `validate:"omitempty,url"`
	MaxUploadBytes  int64    `validate:"gt=0"`

	LLMProvider      string `validate:"oneof=groq openai gemini anthropic"`
	LLMModel         string
	LLMBaseURL       string `validate:"omitempty,url"`
	LLMTimeout       time.Duration
	CompletionAPIKey string

	StripeSecretKey string
	StripeAPIURL    string `validate:"omitempty,url"`
}

// providerKeyEnv lists the provider-specific credential variables consulted when
// COMPLETION_API_KEY is unset.
var providerKeyEnv = map[string]string{
	"groq":      "GROQ_API_KEY",
	"openai":    "OPENAI_API_KEY",
	"gemini":    "GEMINI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
}

// Load reads configuration from environment variables with sensible defaults.
// Credentials may be blank here; their absence is reported per request.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		PublicBaseURL:   strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		MaxUploadBytes:  getInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		LLMModel:        getEnv("LLM_MODEL", ""),
		LLMBaseURL:      getEnv("LLM_BASE_URL", ""),
		LLMTimeout:      time.Duration(getInt64("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		StripeSecretKey: strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		StripeAPIURL:    getEnv("STRIPE_API_URL", ""),
	}
	cfg.UseProvider(getEnv("LLM_PROVIDER", "groq"))
	return cfg
}

// UseProvider switches the completion provider and re-resolves its credential:
// COMPLETION_API_KEY first, then the provider's own key variable.
func (c *Config) UseProvider(provider string) {
	c.LLMProvider = NormalizeProvider(provider)
	c.CompletionAPIKey = strings.TrimSpace(os.Getenv("COMPLETION_API_KEY"))
	if c.CompletionAPIKey == "" {
		c.CompletionAPIKey = strings.TrimSpace(os.Getenv(providerKeyEnv[c.LLMProvider]))
	}
}

// Validate checks the shape of non-secret settings.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		// godotenv.Load never overrides variables that are already set.
		_ = godotenv.Load(path)
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

// NormalizeProvider maps provider names and aliases onto groq, openai, gemini
// or anthropic. Unknown names become groq.
func NormalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	case "gemini", "google":
		return "gemini"
	case "anthropic", "claude":
		return "anthropic"
	default:
		return "groq"
	}
}
