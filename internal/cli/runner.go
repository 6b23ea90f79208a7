package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"quizapp/internal/quiz"
)

// takeQuiz runs one attempt: subject selection, the question loop, and
// the single result write. Timing starts right before the first question
// is shown and stops as the last answer is accepted.
func (a *App) takeQuiz(ctx context.Context, reader *bufio.Reader, out io.Writer, enrollment string) error {
	fmt.Fprintln(out, "\n--- Take a Quiz ---")

	categories := quiz.Categories()
	fmt.Fprintln(out, "Available subjects:")
	for idx, category := range categories {
		fmt.Fprintf(out, "%d. %s\n", idx+1, category)
	}

	selection, err := promptChoice(
		reader,
		out,
		fmt.Sprintf("Enter the number corresponding to the subject you want to attempt (1-%d): ", len(categories)),
		fmt.Sprintf("Invalid input! Please enter a valid number (1-%d).", len(categories)),
		len(categories),
	)
	if err != nil {
		return err
	}
	subject := categories[selection-1]

	fmt.Fprintf(out, "\nYou selected: %s\n", subject)

	questions, err := a.service.LoadQuestions(ctx, subject)
	if err != nil {
		return err
	}

	if len(questions) == 0 {
		fmt.Fprintf(out, "No questions available for %s.\n", subject)
		return nil
	}

	correct := 0
	start := time.Now()

	for idx, question := range questions {
		fmt.Fprintf(out, "\nQ%d: %s\n", idx+1, question.Prompt)
		for optionIdx, option := range question.Options {
			fmt.Fprintf(out, "%d. %s\n", optionIdx+1, option)
		}

		answer, err := promptChoice(
			reader,
			out,
			fmt.Sprintf("Your answer (1-%d): ", quiz.OptionCount),
			fmt.Sprintf("Invalid input! Please enter a number between 1 and %d.", quiz.OptionCount),
			quiz.OptionCount,
		)
		if err != nil {
			return err
		}

		if quiz.ScoreAnswer(question, answer) {
			correct++
		}
	}

	elapsed := time.Since(start)

	result, err := a.service.RecordResult(ctx, enrollment, subject, correct, len(questions), elapsed)
	if err != nil {
		return err
	}

	a.log.Info().
		Str("enrollment", enrollment).
		Str("subject", string(subject)).
		Str("score", result.Score).
		Float64("time_taken", result.TimeTaken).
		Msg("quiz completed")

	fmt.Fprintf(out, "\nQuiz finished! Your score: %s\n", result.Score)
	fmt.Fprintf(out, "Time taken: %.2f seconds\n", result.TimeTaken)
	return nil
}

func (a *App) viewResults(ctx context.Context, out io.Writer, enrollment string) error {
	fmt.Fprintln(out, "\n--- Results ---")

	results, err := a.service.ResultsFor(ctx, enrollment)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No results found!")
		return nil
	}

	for _, result := range results {
		fmt.Fprintf(out, "Subject: %s, Score: %s, Time: %.2f seconds\n", result.Subject, result.Score, result.TimeTaken)
	}
	return nil
}
