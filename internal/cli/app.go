package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"quizapp/internal/quiz"
)

// App drives the interactive session: the top-level account menu and,
// after a successful login, the per-user quiz menu. The authenticated
// enrollment is an explicit value handed to each operation, never
// package state.
type App struct {
	service *quiz.Service
	log     zerolog.Logger
}

func New(service *quiz.Service, log zerolog.Logger) *App {
	return &App{
		service: service,
		log:     log,
	}
}

// Run loops over the top-level menu until Exit is chosen or the input
// closes. Closed input ends the session cleanly so scripted runs behave
// like an explicit exit.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintln(out, "\n--- Quiz Application ---")
		fmt.Fprintln(out, "1. Create Account")
		fmt.Fprintln(out, "2. Login")
		fmt.Fprintln(out, "3. Exit")

		choice, err := promptLine(reader, out, "Enter your choice: ")
		if err != nil {
			return finishOnClosedInput(out, err)
		}

		switch choice {
		case "1":
			if err := a.createAccount(ctx, reader, out); err != nil {
				return finishOnClosedInput(out, err)
			}
		case "2":
			enrollment, err := a.login(ctx, reader, out)
			if err != nil {
				return finishOnClosedInput(out, err)
			}
			if enrollment == "" {
				continue
			}
			if err := a.sessionMenu(ctx, reader, out, enrollment); err != nil {
				return finishOnClosedInput(out, err)
			}
		case "3":
			fmt.Fprintln(out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice!")
		}
	}
}

func (a *App) sessionMenu(ctx context.Context, reader *bufio.Reader, out io.Writer, enrollment string) error {
	for {
		fmt.Fprintln(out, "\n1. Take a Quiz")
		fmt.Fprintln(out, "2. View Results")
		fmt.Fprintln(out, "3. Logout")

		choice, err := promptLine(reader, out, "Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := a.takeQuiz(ctx, reader, out, enrollment); err != nil {
				return err
			}
		case "2":
			if err := a.viewResults(ctx, out, enrollment); err != nil {
				return err
			}
		case "3":
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice!")
		}
	}
}

func (a *App) createAccount(ctx context.Context, reader *bufio.Reader, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Create Account ---")

	name, err := promptLine(reader, out, "Enter your name: ")
	if err != nil {
		return err
	}
	enrollment, err := promptLine(reader, out, "Enter your enrollment number: ")
	if err != nil {
		return err
	}
	email, err := promptLine(reader, out, "Enter your email: ")
	if err != nil {
		return err
	}
	password, err := promptLine(reader, out, "Enter your password: ")
	if err != nil {
		return err
	}

	err = a.service.Register(ctx, name, enrollment, email, password)
	if errors.Is(err, quiz.ErrEnrollmentRequired) {
		fmt.Fprintln(out, "Enrollment number is required! Please try again.")
		return nil
	}
	if errors.Is(err, quiz.ErrDuplicateEnrollment) {
		fmt.Fprintln(out, "Enrollment number already exists! Please try again with a different enrollment number.")
		return nil
	}
	if err != nil {
		return err
	}

	a.log.Info().Str("enrollment", enrollment).Msg("account created")
	fmt.Fprintln(out, "Account created successfully!")
	return nil
}

// login returns the authenticated enrollment, or "" when the credentials
// were rejected (already reported to the user).
func (a *App) login(ctx context.Context, reader *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "\n--- Login ---")

	enrollment, err := promptLine(reader, out, "Enter your enrollment number: ")
	if err != nil {
		return "", err
	}
	password, err := promptLine(reader, out, "Enter your password: ")
	if err != nil {
		return "", err
	}

	authenticated, err := a.service.Authenticate(ctx, enrollment, password)
	if errors.Is(err, quiz.ErrInvalidCredentials) {
		a.log.Warn().Str("enrollment", enrollment).Msg("login rejected")
		fmt.Fprintln(out, "Invalid enrollment number or password!")
		return "", nil
	}
	if err != nil {
		return "", err
	}

	a.log.Info().Str("enrollment", authenticated).Msg("login successful")
	fmt.Fprintln(out, "Login successful!")
	return authenticated, nil
}

func finishOnClosedInput(out io.Writer, err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
		return nil
	}
	return err
}
