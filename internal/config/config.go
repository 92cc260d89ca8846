package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPass         string
	DBName         string
	ServerPort     string
	RedisURL       string
	Env            string
	RedisTTL       time.Duration
	BoardCacheTTL  time.Duration
	SessionTTL     time.Duration
	FrontendURLs   []string
	BcryptCost     int
	SeedOnStartup  bool
	MigrateOnStart bool
}

func LoadConfig() Config {
	return Config{
		DBHost:         getEnv("DB_HOST", "postgres"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPass:         getEnv("DB_PASSWORD", "password"),
		DBName:         getEnv("DB_NAME", "db_board"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		RedisURL:       getEnv("REDIS_URL", "redis:6379"),
		Env:            getEnv("ENV", "dev"),
		RedisTTL:       getEnvAsDuration("REDIS_TTL", 5*time.Minute),
		BoardCacheTTL:  getEnvAsDuration("BOARD_CACHE_TTL", time.Minute),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		FrontendURLs:   getEnvAsList("FRONTEND_URL", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
		BcryptCost:     getEnvAsInt("BCRYPT_COST", 10),
		SeedOnStartup:  getEnvAsBool("SEED_ON_STARTUP", true),
		MigrateOnStart: getEnvAsBool("MIGRATE_ON_STARTUP", true),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}
