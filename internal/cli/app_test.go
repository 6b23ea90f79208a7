package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"quizapp/internal/quiz"
	"quizapp/internal/quiz/sqlite"
)

func newTestApp(t *testing.T) (*App, *sqlite.Store) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("sqlite.New failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	service := quiz.NewService(store, store, store)
	return New(service, zerolog.Nop()), store
}

func runSession(t *testing.T, app *App, script string) string {
	t.Helper()

	var out bytes.Buffer
	if err := app.Run(context.Background(), strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run failed: %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func seedCyberQuestions(t *testing.T, store *sqlite.Store) {
	t.Helper()

	err := store.InsertQuestions(context.Background(), []quiz.Question{
		{
			Prompt:        "What does a firewall filter?",
			Options:       [quiz.OptionCount]string{"Traffic", "Power", "Light", "Sound"},
			CorrectOption: "Traffic",
			Category:      quiz.CategoryCybersecurity,
		},
		{
			Prompt:        "What is a brute-force attack?",
			Options:       [quiz.OptionCount]string{"Social engineering", "Password guessing", "Port scanning", "Spoofing"},
			CorrectOption: "Password guessing",
			Category:      quiz.CategoryCybersecurity,
		},
	})
	if err != nil {
		t.Fatalf("seed questions failed: %v", err)
	}
}

func TestFullSessionRegisterLoginQuizAndResults(t *testing.T) {
	app, store := newTestApp(t)
	seedCyberQuestions(t, store)

	// Register, log in, take the Cybersecurity quiz answering both
	// questions correctly (with one invalid answer retried), view the
	// stored result, log out, exit.
	script := strings.Join([]string{
		"1",
		"Alice",
		"E001",
		"alice@example.com",
		"p1",
		"2",
		"E001",
		"p1",
		"1",
		"1",
		"5",
		"1",
		"2",
		"2",
		"3",
		"3",
	}, "\n") + "\n"

	output := runSession(t, app, script)

	for _, want := range []string{
		"Account created successfully!",
		"Login successful!",
		"You selected: Cybersecurity",
		"Invalid input! Please enter a number between 1 and 4.",
		"Quiz finished! Your score: 2/2",
		"Time taken:",
		"Subject: Cybersecurity, Score: 2/2",
		"Exiting...",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}

	results, err := store.ResultsByEnrollment(context.Background(), "E001")
	if err != nil {
		t.Fatalf("ResultsByEnrollment failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one result row, got %d", len(results))
	}
	if results[0].Score != "2/2" || results[0].TimeTaken < 0 {
		t.Fatalf("unexpected stored result: %+v", results[0])
	}
}

func TestTakeQuizEmptyCategoryWritesNoResult(t *testing.T) {
	app, store := newTestApp(t)

	if err := store.CreateUser(context.Background(), quiz.User{Enrollment: "E001", Password: "p1", Name: "Alice"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// Log in, attempt the unseeded DBMS subject, then check results.
	script := strings.Join([]string{
		"2",
		"E001",
		"p1",
		"1",
		"3",
		"2",
		"3",
		"3",
	}, "\n") + "\n"

	output := runSession(t, app, script)

	if !strings.Contains(output, "No questions available for DBMS.") {
		t.Fatalf("expected empty-subject message, got:\n%s", output)
	}
	if !strings.Contains(output, "No results found!") {
		t.Fatalf("expected empty results message, got:\n%s", output)
	}

	results, err := store.ResultsByEnrollment(context.Background(), "E001")
	if err != nil {
		t.Fatalf("ResultsByEnrollment failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("empty attempt must not write a result row, got %d", len(results))
	}
}

func TestBlankEnrollmentReportedAndSessionContinues(t *testing.T) {
	app, store := newTestApp(t)

	// Pressing Enter at the enrollment prompt is ordinary keyboard
	// input: the session must report it and return to the menu.
	script := strings.Join([]string{
		"1", "Alice", "", "alice@example.com", "p1",
		"3",
	}, "\n") + "\n"

	output := runSession(t, app, script)

	if !strings.Contains(output, "Enrollment number is required! Please try again.") {
		t.Fatalf("expected missing enrollment message, got:\n%s", output)
	}
	if !strings.Contains(output, "Exiting...") {
		t.Fatalf("session should continue after blank enrollment, got:\n%s", output)
	}

	if _, err := store.FindByCredentials(context.Background(), "", "p1"); !errors.Is(err, quiz.ErrInvalidCredentials) {
		t.Fatalf("blank enrollment must not create a user, lookup err = %v", err)
	}
}

func TestViewResultsRendersStoredRows(t *testing.T) {
	app, store := newTestApp(t)
	ctx := context.Background()

	if err := store.CreateUser(ctx, quiz.User{Enrollment: "E001", Password: "p1"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := store.InsertResult(ctx, quiz.Result{
		Enrollment: "E001",
		Score:      "2/2",
		TimeTaken:  12.5,
		Subject:    quiz.CategoryCybersecurity,
	}); err != nil {
		t.Fatalf("InsertResult failed: %v", err)
	}

	script := "2\nE001\np1\n2\n3\n3\n"
	output := runSession(t, app, script)

	if !strings.Contains(output, "Subject: Cybersecurity, Score: 2/2, Time: 12.50 seconds") {
		t.Fatalf("unexpected result rendering:\n%s", output)
	}
}

func TestDuplicateRegistrationReportedAndSessionContinues(t *testing.T) {
	app, _ := newTestApp(t)

	script := strings.Join([]string{
		"1", "Alice", "E001", "alice@example.com", "p1",
		"1", "Bob", "E001", "bob@example.com", "p2",
		"3",
	}, "\n") + "\n"

	output := runSession(t, app, script)

	if !strings.Contains(output, "Enrollment number already exists! Please try again with a different enrollment number.") {
		t.Fatalf("expected duplicate enrollment message, got:\n%s", output)
	}
	if !strings.Contains(output, "Exiting...") {
		t.Fatalf("session should continue after duplicate registration, got:\n%s", output)
	}
}

func TestInvalidCredentialsDoNotOpenSession(t *testing.T) {
	app, store := newTestApp(t)

	if err := store.CreateUser(context.Background(), quiz.User{Enrollment: "E001", Password: "p1"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	script := "2\nE001\nwrong\n3\n"
	output := runSession(t, app, script)

	if !strings.Contains(output, "Invalid enrollment number or password!") {
		t.Fatalf("expected rejection message, got:\n%s", output)
	}
	if strings.Contains(output, "1. Take a Quiz") {
		t.Fatalf("authenticated menu must not appear after failed login:\n%s", output)
	}
}

func TestMenuInvalidChoiceReprompts(t *testing.T) {
	app, _ := newTestApp(t)

	output := runSession(t, app, "9\n3\n")

	if !strings.Contains(output, "Invalid choice!") {
		t.Fatalf("expected invalid choice message, got:\n%s", output)
	}
	if !strings.Contains(output, "Exiting...") {
		t.Fatalf("expected clean exit after retry, got:\n%s", output)
	}
}

func TestRunEndsCleanlyOnClosedInput(t *testing.T) {
	app, _ := newTestApp(t)

	var out bytes.Buffer
	if err := app.Run(context.Background(), strings.NewReader(""), &out); err != nil {
		t.Fatalf("Run on closed input returned error: %v", err)
	}
}
