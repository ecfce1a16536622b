package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
	Insecure bool
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	GRPCPort      int
	HTTPPort      int
	StoreBackend  string // "memory" or "postgres"
	MigrationsDir string
	DB            DatabaseConfig
	Kafka         KafkaConfig
	Tracing       TracingConfig
	Log           LogConfig
	ServiceName   string
}

// Validate panics on configuration the service cannot start with. The
// in-memory backend needs no database credentials.
func (c Config) Validate() {
	switch c.StoreBackend {
	case StoreMemory, StorePostgres:
	default:
		panic(fmt.Sprintf("STORE_BACKEND must be %q or %q, got %q", StoreMemory, StorePostgres, c.StoreBackend))
	}
	if c.StoreBackend == StorePostgres && c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required with the postgres backend")
	}
}

func Load() Config {
	return Config{
		GRPCPort:      getEnvInt("GRPC_PORT", 9096),
		HTTPPort:      getEnvInt("HTTP_PORT", 8096),
		StoreBackend:  getEnv("STORE_BACKEND", StoreMemory),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "quoting"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "quoting"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvBool("TRACING_ENABLED", false),
			Endpoint: getEnv("OTLP_ENDPOINT", "localhost:4317"),
			Insecure: getEnvBool("OTLP_INSECURE", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		ServiceName: "quoting-service",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
