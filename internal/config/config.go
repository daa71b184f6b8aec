package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Database access policy
	DBTimeout       time.Duration `env:"DB_TIMEOUT" envDefault:"5s"`
	DBRetryAttempts uint          `env:"DB_RETRY_ATTEMPTS" envDefault:"3"`
	DBRetryDelay    time.Duration `env:"DB_RETRY_DELAY" envDefault:"200ms"`
	DBMaxConns      int32         `env:"DB_MAX_CONNS" envDefault:"10"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	EventsChannel string `env:"EVENTS_CHANNEL" envDefault:"safepoint:incidents"`

	// Cache Config
	SafepointCacheTTL time.Duration `env:"SAFEPOINT_CACHE_TTL" envDefault:"1m"`
	IncidentCacheTTL  time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Code phrase shown to staff when system_config has no value
	CodePhraseFallback string `env:"CODE_PHRASE_FALLBACK" envDefault:"Is Angela on shift?"`

	// API Keys for staff and admin routes
	APIKeys []string `env:"API_KEYS"`

	// Allowed origins for the web frontends
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "file://migrations"),
		DBTimeout:          getEnvAsDuration("DB_TIMEOUT", 5*time.Second),
		DBRetryDelay:       getEnvAsDuration("DB_RETRY_DELAY", 200*time.Millisecond),
		DBMaxConns:         int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:      getEnvAsInt("REDIS_POOL_SIZE", 10),
		EventsChannel:      getEnv("EVENTS_CHANNEL", "safepoint:incidents"),
		SafepointCacheTTL:  getEnvAsDuration("SAFEPOINT_CACHE_TTL", time.Minute),
		IncidentCacheTTL:   getEnvAsDuration("INCIDENT_CACHE_TTL", 5*time.Minute),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		CodePhraseFallback: getEnv("CODE_PHRASE_FALLBACK", "Is Angela on shift?"),
		APIKeys:            getEnvAsList("API_KEYS", nil),
		CORSOrigins:        getEnvAsList("CORS_ORIGINS", []string{"*"}),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Хотя бы одна попытка обращения к БД
	attempts := getEnvAsInt("DB_RETRY_ATTEMPTS", 3)
	if attempts < 1 {
		attempts = 1
	}
	cfg.DBRetryAttempts = uint(attempts)

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
