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
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Cart        CartConfig
	Auth        AuthConfig
	RabbitMQ    RabbitMQConfig
	Kafka       KafkaConfig
	Events      EventsConfig
	RateLimit   RateLimitConfig
	Warehouse   WarehouseConfig
}

type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
	// BaseURL is what the reassignment consumer calls back into.
	BaseURL string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LockWaitTimeout int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CartConfig struct {
	TTL time.Duration
}

type AuthConfig struct {
	JWTSecret      string
	InternalAPIKey string
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type EventsConfig struct {
	// Broker is one of "rabbitmq", "kafka" or "none".
	Broker string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type WarehouseConfig struct {
	DefaultRackCapacity int
	AuditDefaultLimit   int
	AuditMaxLimit       int
	ReportMaxRows       int
}

// Load reads configuration from the environment, seeded by an optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			ReadTimeout:    getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:   getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:    getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			RequestTimeout: getDuration("SERVER_REQUEST_TIMEOUT", 10*time.Second),
			BaseURL:        getEnv("SERVER_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "warehouse"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			LockWaitTimeout: getInt("DB_LOCK_WAIT_TIMEOUT", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Cart: CartConfig{
			TTL: getDuration("CART_TTL", 24*time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			InternalAPIKey: getEnv("INTERNAL_API_KEY", ""),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Kafka: KafkaConfig{
			Brokers: getList("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC", "warehouse-events"),
		},
		Events: EventsConfig{
			Broker: strings.ToLower(getEnv("EVENT_BROKER", "rabbitmq")),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getFloat("RATE_LIMIT_RPS", 20),
			Burst:             getInt("RATE_LIMIT_BURST", 40),
		},
		Warehouse: WarehouseConfig{
			DefaultRackCapacity: getInt("RACK_DEFAULT_CAPACITY", 10),
			AuditDefaultLimit:   getInt("AUDIT_DEFAULT_LIMIT", 50),
			AuditMaxLimit:       getInt("AUDIT_MAX_LIMIT", 500),
			ReportMaxRows:       getInt("REPORT_MAX_ROWS", 200),
		},
	}
}

// GetDSN builds the MySQL DSN; parseTime is required for DATETIME scanning.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&innodb_lock_wait_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.LockWaitTimeout,
	)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
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
