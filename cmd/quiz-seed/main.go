// quiz-seed is the external question-bank loader: it pulls trivia
// questions from OpenTriviaDB and files them under one of the app's
// subjects. The interactive quiz never writes questions itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"quizapp/internal/config"
	"quizapp/internal/opentdb"
	"quizapp/internal/quiz"
	"quizapp/internal/quiz/sqlite"
	"quizapp/internal/telemetry"
)

// OpenTriviaDB has no per-subject categories matching ours, so every
// subject draws from its Computers pool and is labeled locally.
const computersCategoryID = 18

func main() {
	subject := flag.String("subject", "", "subject to seed: 1-3 or name (required)")
	amount := flag.Int("amount", 10, "number of questions to fetch")
	timeout := flag.Duration("timeout", 10*time.Second, "HTTP timeout")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "error: -subject is required")
		os.Exit(1)
	}

	category, err := quiz.ParseCategory(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: unknown subject %q (choose 1-%d or a subject name)\n", *subject, len(quiz.Categories()))
		os.Exit(1)
	}

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

	ctx := context.Background()
	client := opentdb.NewClient(&http.Client{Timeout: *timeout})

	raw, err := client.FetchQuestions(ctx, *amount, computersCategoryID)
	if err != nil {
		log.Error().Err(err).Msg("fetch questions failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	service := quiz.NewService(store, store, store)
	inserted, err := service.SeedQuestions(ctx, category, raw)
	if err != nil {
		log.Error().Err(err).Msg("seed questions failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	log.Info().Str("subject", string(category)).Int("inserted", inserted).Msg("questions seeded")
	fmt.Printf("Seeded %d questions for %s\n", inserted, category)
}
