package main

import (
	"context"
	"log"

	"github.com/alecthomas/kong"
	"github.com/alp-turan/sugarbyte/internal/alarm/state"
	"github.com/alp-turan/sugarbyte/internal/cli"
	"github.com/alp-turan/sugarbyte/internal/config"
	"github.com/alp-turan/sugarbyte/internal/database"
	apperrors "github.com/alp-turan/sugarbyte/internal/errors"
	"github.com/alp-turan/sugarbyte/internal/logger"
	"github.com/alp-turan/sugarbyte/internal/notifier"
	"github.com/alp-turan/sugarbyte/internal/repository"
	"github.com/alp-turan/sugarbyte/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.Open(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	notified, err := buildNotifiedSet(cfg.Alarm)
	if err != nil {
		logger.Fatalf("Failed to initialize alarm state: %v", err)
	}

	sink, err := buildNotifier(cfg.Notifier)
	if err != nil {
		logger.Fatalf("Failed to initialize notifier: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewLogEntryRepository(db)

	alarmService := services.NewAlarmService(notified, sink)
	userService := services.NewUserService(userRepo)
	logService := services.NewLogService(entryRepo, alarmService)

	errHandler := apperrors.NewHandler(logger.GetLogger())

	ctx := kong.Parse(&cli.CLI{},
		kong.Name("sugarbyte"),
		kong.Description("Diabetes logbook: accounts, daily readings and out-of-range alarms."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli.Context{Users: userService, Logs: logService}); err != nil {
		errHandler.Handle(context.Background(), err)
		ctx.FatalIfErrorf(err)
	}
}

func buildNotifiedSet(cfg config.AlarmConfig) (state.NotifiedSet, error) {
	if cfg.State == "redis" {
		return state.NewRedisSet(cfg.RedisHost, cfg.RedisPort)
	}
	return state.NewMemorySet(), nil
}

func buildNotifier(cfg config.NotifierConfig) (notifier.Notifier, error) {
	if cfg.Sink == "smtp" {
		return notifier.NewSMTPNotifier(cfg)
	}
	return notifier.NewLogNotifier(), nil
}
