package main

import (
	"fmt"
	"os"

	"github.com/alp-turan/sugarbyte/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Checking configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Note: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Configuration invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration OK")
	fmt.Printf("  - DB path: %s\n", cfg.DB.Path)
	fmt.Printf("  - Log level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log format: %s\n", cfg.Logger.Format)
	fmt.Printf("  - Alarm state: %s\n", cfg.Alarm.State)
	if cfg.Alarm.State == "redis" {
		fmt.Printf("  - Redis: %s:%s\n", cfg.Alarm.RedisHost, cfg.Alarm.RedisPort)
	}
	fmt.Printf("  - Notifier: %s\n", cfg.Notifier.Sink)
	if cfg.Notifier.Sink == "smtp" {
		fmt.Printf("  - SMTP host: %s:%s\n", cfg.Notifier.SMTPHost, cfg.Notifier.SMTPPort)
		fmt.Printf("  - SMTP user: %s\n", maskSecret(cfg.Notifier.SMTPUser))
		fmt.Printf("  - SMTP password: %s\n", maskSecret(cfg.Notifier.SMTPPassword))
		fmt.Printf("  - SMTP from: %s\n", cfg.Notifier.SMTPFrom)
	}
}

func maskSecret(s string) string {
	if s == "" {
		return "<not set>"
	}
	if len(s) <= 4 {
		return "***"
	}
	return s[:2] + "..." + s[len(s)-2:]
}
