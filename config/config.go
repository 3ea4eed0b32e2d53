package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
	SentryDSN      string
	SeedData       bool

	StorageBackend string
	Database       DatabaseConfig

	Analysis AnalysisConfig
	// minimum number of entries in list-typed create fields
	ListMinLength int

	Uploads UploadsConfig
}

type DatabaseConfig struct {
	URL      string
	Username string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

// DSN prefers DATABASE_URL and falls back to the individual parts.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

type AnalysisConfig struct {
	APIKey          string
	Model           string
	Timeout         time.Duration
	MaxOutputTokens int
}

type UploadsConfig struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	URLExpiration   time.Duration
}

func (c UploadsConfig) Configured() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.AccessKeySecret != "" && c.BucketName != ""
}

// Load reads an optional .env file and then the process environment.
// A missing GOOGLE_API_KEY is not an error here; analysis requests fail
// individually instead.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:           GetEnv("PORT", "8083"),
		Env:            GetEnv("ENV", "local"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		AllowedOrigins: GetSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		SentryDSN:      GetEnv("SENTRY_DSN", ""),
		SeedData:       GetBoolEnv("SEED_SAMPLE_DATA", true),
		StorageBackend: strings.ToLower(GetEnv("STORAGE_BACKEND", BackendMemory)),
		Database: DatabaseConfig{
			URL:      GetEnv("DATABASE_URL", ""),
			Username: GetEnv("DB_USERNAME", "postgres"),
			Password: GetEnv("DB_PASSWORD", ""),
			Host:     GetEnv("DB_HOST", "localhost"),
			Port:     GetEnv("DB_PORT", "5432"),
			Name:     GetEnv("DB_NAME", "stylist"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
		},
		Analysis: AnalysisConfig{
			APIKey:          GetEnv("GOOGLE_API_KEY", ""),
			Model:           GetEnv("ANALYSIS_MODEL", "gemini-2.5-flash"),
			Timeout:         GetDurationEnv("ANALYSIS_TIMEOUT", 60*time.Second),
			MaxOutputTokens: GetIntEnv("ANALYSIS_MAX_OUTPUT_TOKENS", 1500),
		},
		ListMinLength: GetIntEnv("LIST_MIN_LENGTH", 0),
		Uploads: UploadsConfig{
			AccountID:       GetEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     GetEnv("R2_ACCESS_KEY_ID", ""),
			AccessKeySecret: GetEnv("R2_ACCESS_KEY_SECRET", ""),
			BucketName:      GetEnv("R2_BUCKET_NAME", ""),
			URLExpiration:   GetDurationEnv("UPLOAD_URL_TTL", 15*time.Minute),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", BackendMemory, BackendPostgres, c.StorageBackend)
	}
	if c.ListMinLength < 0 {
		return fmt.Errorf("LIST_MIN_LENGTH must not be negative, got %d", c.ListMinLength)
	}
	if c.Analysis.Timeout <= 0 {
		return fmt.Errorf("ANALYSIS_TIMEOUT must be positive, got %s", c.Analysis.Timeout)
	}
	if c.Analysis.MaxOutputTokens <= 0 {
		return fmt.Errorf("ANALYSIS_MAX_OUTPUT_TOKENS must be positive, got %d", c.Analysis.MaxOutputTokens)
	}
	return nil
}

func (c Config) IsLocal() bool {
	return c.Env == "local"
}

func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func GetIntEnv(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func GetBoolEnv(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func GetDurationEnv(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func GetSliceEnv(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
