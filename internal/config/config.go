package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Payroll   PayrollConfig
	Upstream  UpstreamConfig
}

type AppConfig struct {
	Port string
	Env  string
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr       string
	MaxRetries int
}

type KafkaConfig struct {
	Broker             string
	OutboxPollInterval time.Duration
	OutboxRetention    time.Duration
}

type JWTConfig struct {
	Secret string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// PayrollConfig.CarryForward lists the categories whose baseline salary may be
// carried forward from previously saved reports.
type PayrollConfig struct {
	CarryForward []string
	DraftTTL     time.Duration
}

// UpstreamConfig points the payroll engine at remote collaborators.
// An empty BaseURL keeps the in-process attendance/employee/loan modules.
type UpstreamConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

var defaultCarryForward = []string{"ESI/PF", "No ESI/PF", "Casual Labour"}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}
	var errs []error

	cfg.App = AppConfig{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("APP_ENV", "development"),
	}

	cfg.Database = DatabaseConfig{
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       getEnv("DB_PORT", "5432"),
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "go_erp"),
		SSLMode:    getEnv("DB_SSLMODE", "disable"),
		MaxRetries: getEnvInt("DB_MAX_RETRIES", 5, &errs),
	}

	cfg.Redis = RedisConfig{
		Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
		MaxRetries: getEnvInt("REDIS_MAX_RETRIES", 5, &errs),
	}

	cfg.Kafka = KafkaConfig{
		Broker:             getEnv("KAFKA_BROKER", ""),
		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second, &errs),
		OutboxRetention:    getEnvDuration("OUTBOX_RETENTION", 7*24*time.Hour, &errs),
	}

	cfg.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET", ""),
	}

	cfg.RateLimit = RateLimitConfig{
		RPS:   getEnvFloat("RATE_LIMIT_RPS", 10, &errs),
		Burst: getEnvInt("RATE_LIMIT_BURST", 20, &errs),
	}

	cfg.Payroll = PayrollConfig{
		CarryForward: getEnvList("PAYROLL_CARRY_FORWARD_CATEGORIES", defaultCarryForward),
		DraftTTL:     getEnvDuration("PAYROLL_DRAFT_TTL", 24*time.Hour, &errs),
	}

	cfg.Upstream = UpstreamConfig{
		BaseURL:      strings.TrimRight(getEnv("UPSTREAM_BASE_URL", ""), "/"),
		Timeout:      getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second, &errs),
		MaxRetries:   getEnvInt("UPSTREAM_MAX_RETRIES", 2, &errs),
		RetryBackoff: getEnvDuration("UPSTREAM_RETRY_BACKOFF", 300*time.Millisecond, &errs),
	}

	if cfg.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if cfg.Upstream.MaxRetries < 0 {
		errs = append(errs, errors.New("UPSTREAM_MAX_RETRIES cannot be negative"))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int, errs *[]error) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64, errs *[]error) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return v
}

// getEnvList splits a comma separated value. A value of "none" yields an empty list.
func getEnvList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return append([]string(nil), fallback...)
	}
	if strings.EqualFold(raw, "none") {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
