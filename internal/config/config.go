package config

import (
	"os"
	"strings"

	"github.com/alp-turan/sugarbyte/internal/logger"
)

type Config struct {
	DB       DBConfig
	Logger   LoggerConfig
	Alarm    AlarmConfig
	Notifier NotifierConfig
}

type DBConfig struct {
	Path string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

// AlarmConfig selects the backing store for the alarm's notified-slot set.
// "memory" keeps it in-process; "redis" shares it across restarts.
type AlarmConfig struct {
	State     string
	RedisHost string
	RedisPort string
}

// NotifierConfig selects the notification sink. "log" writes alerts to the
// application log; "smtp" emails the doctor on record.
type NotifierConfig struct {
	Sink         string
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	return &Config{
		DB: DBConfig{
			Path: getEnvOrDefault("SUGARBYTE_DB_PATH", "data/sugarbyte.db"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
		Alarm: AlarmConfig{
			State:     getEnvOrDefault("ALARM_STATE", "memory"),
			RedisHost: getEnvOrDefault("REDIS_HOST", "localhost"),
			RedisPort: getEnvOrDefault("REDIS_PORT", "6379"),
		},
		Notifier: NotifierConfig{
			Sink:         getEnvOrDefault("NOTIFIER", "log"),
			SMTPHost:     getEnvOrDefault("SMTP_HOST", "localhost"),
			SMTPPort:     getEnvOrDefault("SMTP_PORT", "587"),
			SMTPUser:     os.Getenv("SMTP_USER"),
			SMTPPassword: os.Getenv("SMTP_PASSWORD"),
			SMTPFrom:     getEnvOrDefault("SMTP_FROM", "alerts@sugarbyte.local"),
		},
	}, nil
}
