package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config collects everything the server reads from the environment.
type Config struct {
	Port string

	Postgres PostgresConfig
	Redis    RedisConfig

	JWTSecret  string
	SessionTTL time.Duration

	TelegramToken  string
	TelegramChatID int64
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the postgres connection string for gorm.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		p.Host, p.User, p.Password, p.DBName, p.Port, p.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// New reads the configuration from the environment with local-dev
// defaults. Call godotenv.Load first when a .env file is in play.
func New() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),
		Postgres: PostgresConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "user"),
			Password: getenv("DB_PASSWORD", "password"),
			DBName:   getenv("DB_NAME", "complaintdesk"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},
		JWTSecret:      getenv("JWT_SECRET", "dev-only-secret"),
		SessionTTL:     time.Duration(getenvInt("SESSION_TTL_HOURS", 72)) * time.Hour,
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID: int64(getenvInt("TELEGRAM_CHAT_ID", 0)),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
