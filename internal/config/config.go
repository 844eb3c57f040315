package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/bgogeta007/health-hustler/pkg/db"
)

// Config holds all runtime configuration, loaded from the environment
type Config struct {
	ServerPort  string
	MetricsPort string

	Database db.Config

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	FTPHost     string
	FTPPort     string
	FTPUser     string
	FTPPassword string
	FTPBaseDir  string
	PublicCDN   string

	SessionTTL       time.Duration
	SettingsCacheTTL time.Duration
}

// Load reads .env if present, then the process environment
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),

		Database: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 3306),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "health_hustler"),
		},

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		FTPHost:     getEnv("FTP_HOST", "localhost"),
		FTPPort:     getEnv("FTP_PORT", "21"),
		FTPUser:     getEnv("FTP_USER", ""),
		FTPPassword: getEnv("FTP_PASSWORD", ""),
		FTPBaseDir:  getEnv("FTP_BASE_DIR", "/uploads"),
		PublicCDN:   getEnv("PUBLIC_CDN_URL", "http://localhost:8081/uploads"),

		SessionTTL:       getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		SettingsCacheTTL: getEnvDuration("SETTINGS_CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
