package main

import (
	"context"
	"fmt"
	"os"

	"quizapp/internal/cli"
	"quizapp/internal/config"
	"quizapp/internal/quiz"
	"quizapp/internal/quiz/sqlite"
	"quizapp/internal/telemetry"
)

func main() {
	cfg := config.Load()
	log := telemetry.Init(telemetry.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.DBPath).Msg("open store failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer store.Close()

	service := quiz.NewService(store, store, store)
	app := cli.New(service, log)

	if err := app.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("session failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
