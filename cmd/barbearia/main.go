package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"barbearia/internal/catalog"
	"barbearia/internal/config"
	"barbearia/internal/service/appointments"
	"barbearia/internal/service/auth"
	"barbearia/internal/store/bolt"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With(
		slog.String("service", "barbearia"),
	)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})).With(
		slog.String("service", "barbearia"),
	)
	slog.SetDefault(log)

	log.Info("starting", slog.String("storage_path", cfg.StoragePath), slog.String("log_level", cfg.LogLevel))

	slot, err := bolt.Open(cfg.StoragePath)
	if err != nil {
		log.Error("storage open failed", slog.Any("err", err), slog.String("storage_path", cfg.StoragePath))
		os.Exit(1)
	}
	defer func() {
		if err := bolt.Close(slot); err != nil {
			log.Warn("storage close failed", slog.Any("err", err))
		}
	}()

	ctx := context.Background()
	appts := appointments.NewService(ctx, slot, log)
	sessions := auth.NewService(log)

	directory := catalog.Catalog()
	log.Info("ready",
		slog.Int("providers", len(directory)),
	)

	for _, b := range directory {
		schedule := appts.ListByProvider(ctx, b.ID)
		log.Info("provider schedule",
			slog.String("provider_id", b.ID),
			slog.String("provider", b.Name),
			slog.Int("appointments", len(schedule)),
		)
	}

	if _, ok := sessions.Current(); !ok {
		log.Info("no active session")
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
