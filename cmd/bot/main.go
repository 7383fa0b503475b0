package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"homework_bot/internal/bot"
	"homework_bot/internal/config"
	"homework_bot/internal/logger"
	"homework_bot/internal/practicum"
	"homework_bot/internal/schedule"
)

func main() {
	config.LoadEnv()

	logCfg, err := config.ParseLog()
	if err != nil {
		log.Fatalf("Failed to read log config: %v", err)
	}
	root, closer, err := logger.Open(logCfg)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closer.Close()

	mainLog := logger.Named(root, "main")

	cfg, err := config.New()
	if err != nil {
		// Fatal завершает процесс с кодом 1 до входа в цикл.
		mainLog.Fatal().Err(err).Msg("Ошибка конфигурации")
	}

	notifier := bot.NewTelegram(cfg, logger.Named(root, "telegram"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	b := bot.New(
		practicum.New(cfg, logger.Named(root, "practicum")),
		notifier,
		schedule.Every(cfg.RetryTime),
		logger.Named(root, "bot"),
	)

	mainLog.Info().Dur("retry_time", cfg.RetryTime).Msg("Запуск бота")
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLog.Error().Err(err).Msg("Бот завершился с ошибкой")
		closer.Close()
		os.Exit(1)
	}
}
