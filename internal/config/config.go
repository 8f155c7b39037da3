// Package config loads runtime settings from the environment (and an
// optional .env file). Invalid values fail fast at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFile   string
	SecretKey string
	OutputDir string

	Converter        string // "chromedp" or "wkhtmltopdf"
	ConverterPath    string
	ConverterTimeout time.Duration

	FileTTL       time.Duration
	SweepInterval time.Duration

	LLMAPIKey        string
	LLMBaseURL       string
	LLMModel         string
	LLMMaxTokens     int
	LLMTemperature   float64
	LLMTimeout       time.Duration
	LLMRatePerSecond float64
	LLMBurst         int

	SummaryStrictStatus bool

	DatabaseURL string
}

const (
	ConverterChromedp    = "chromedp"
	ConverterWkhtmltopdf = "wkhtmltopdf"
)

// Load reads configuration. A .env file in the working directory is loaded
// first if present; real environment variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "5000"),
		Env:        getEnv("ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", "resume_log.txt"),
		SecretKey:  getEnv("SECRET_KEY", getEnv("FLASK_SECRET_KEY", "supersecretkey")),
		OutputDir:  getEnv("OUTPUT_DIR", "output"),
		Converter:  strings.ToLower(getEnv("CONVERTER", ConverterChromedp)),
		LLMAPIKey:  getEnv("LLM_API_KEY", os.Getenv("OPENAI_API_KEY")),
		LLMBaseURL: strings.TrimRight(getEnv("LLM_BASE_URL", "https://api.openai.com/v1"), "/"),
		LLMModel:   getEnv("LLM_MODEL", "gpt-4o-mini"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	cfg.ConverterPath = getEnv("CONVERTER_PATH", os.Getenv("CHROME_PATH"))

	var err error
	if cfg.ConverterTimeout, err = getDuration("CONVERTER_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.FileTTL, err = getDuration("FILE_TTL", 120*time.Second); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = getDuration("SWEEP_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.LLMTimeout, err = getDuration("LLM_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.LLMMaxTokens, err = getInt("LLM_MAX_TOKENS", 150); err != nil {
		return nil, err
	}
	if cfg.LLMBurst, err = getInt("LLM_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.LLMTemperature, err = getFloat("LLM_TEMPERATURE", 0.7); err != nil {
		return nil, err
	}
	if cfg.LLMRatePerSecond, err = getFloat("LLM_RATE_PER_SECOND", 2); err != nil {
		return nil, err
	}
	if cfg.SummaryStrictStatus, err = getBool("SUMMARY_STRICT_STATUS", false); err != nil {
		return nil, err
	}

	switch cfg.Converter {
	case ConverterChromedp, ConverterWkhtmltopdf:
	default:
		return nil, fmt.Errorf("CONVERTER must be %q or %q, got %q", ConverterChromedp, ConverterWkhtmltopdf, cfg.Converter)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// getDuration accepts Go durations ("90s") or a bare number of seconds.
func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("%s must be positive, got %q", key, raw)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}

func getFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("%s must be a non-negative number, got %q", key, raw)
	}
	return f, nil
}

func getBool(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return b, nil
}
