package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

const devSecret = "verysecretkey"

type Config struct {
	Port      string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	JWTSecret string
	RedisAddr string
}

func Load() *Config {
	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    getEnv("DB_PORT", "5432"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBPass:    getEnv("DB_PASS", "postgres"),
		DBName:    getEnv("DB_NAME", "techzone"),
		JWTSecret: getEnv("JWT_SECRET", devSecret),
		RedisAddr: os.Getenv("REDIS_ADDR"),
	}

	if cfg.JWTSecret == devSecret {
		log.Warn().Msg("JWT_SECRET not set, using development default. Set JWT_SECRET in production!")
	}

	return cfg
}

// DSN builds the Postgres connection string the way the rest of the stack
// expects it.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
