package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceFixture  = "fixture"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	AppEnv    string
	Port      string
	LogLevel  string
	OriginURL string

	CatalogSource string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMigrate     bool
	MigrationsDir string

	RedisURL      string
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	KafkaBrokers   []string
	KafkaCartTopic string
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil || cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}

	return &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("APP_PORT", getEnv("PORT", "8082")),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		OriginURL: os.Getenv("ORIGIN_URL"),

		CatalogSource: getEnv("CATALOG_SOURCE", CatalogSourceFixture),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5454"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "storefront"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBMigrate:     getEnvBool("DB_MIGRATE", true),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migration"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      cacheTTL,

		KafkaBrokers:   splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaCartTopic: getEnv("KAFKA_CART_TOPIC", "cart.changed"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
