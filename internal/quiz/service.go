package quiz

import (
	"context"
	"strings"
	"time"

	"quizapp/internal/opentdb"
)

type Service struct {
	users     UserRepository
	questions QuestionRepository
	results   ResultRepository
}

func NewService(users UserRepository, questions QuestionRepository, results ResultRepository) *Service {
	return &Service{
		users:     users,
		questions: questions,
		results:   results,
	}
}

// Register creates a new user. The store's uniqueness constraint on the
// enrollment is the single authority for duplicates; a violation surfaces
// as ErrDuplicateEnrollment with no partial write.
func (s *Service) Register(ctx context.Context, name, enrollment, email, password string) error {
	enrollment = strings.TrimSpace(enrollment)
	if enrollment == "" {
		return ErrEnrollmentRequired
	}

	return s.users.CreateUser(ctx, User{
		Enrollment: enrollment,
		Password:   password,
		Name:       name,
		Email:      email,
	})
}

// Authenticate returns the enrollment on an exact credential match and
// ErrInvalidCredentials otherwise.
func (s *Service) Authenticate(ctx context.Context, enrollment, password string) (string, error) {
	enrollment = strings.TrimSpace(enrollment)
	if enrollment == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.FindByCredentials(ctx, enrollment, password)
	if err != nil {
		return "", err
	}
	return user.Enrollment, nil
}

// LoadQuestions returns every question for the subject in storage order.
// An empty slice means the subject has no content, not a failure.
func (s *Service) LoadQuestions(ctx context.Context, category Category) ([]Question, error) {
	return s.questions.QuestionsByCategory(ctx, category)
}

// RecordResult appends the single result row for a completed attempt.
func (s *Service) RecordResult(ctx context.Context, enrollment string, subject Category, correct, total int, elapsed time.Duration) (Result, error) {
	return s.results.InsertResult(ctx, Result{
		Enrollment: enrollment,
		Score:      FormatScore(correct, total),
		TimeTaken:  RoundSeconds(elapsed),
		Subject:    subject,
	})
}

func (s *Service) ResultsFor(ctx context.Context, enrollment string) ([]Result, error) {
	return s.results.ResultsByEnrollment(ctx, strings.TrimSpace(enrollment))
}

// SeedQuestions converts raw trivia payloads into four-option questions
// under the given subject and stores them. Returns how many were inserted;
// payloads that don't fit the four-option layout are skipped.
func (s *Service) SeedQuestions(ctx context.Context, category Category, raw []opentdb.RawQuestion) (int, error) {
	questions := BuildQuestions(category, raw)
	if len(questions) == 0 {
		return 0, nil
	}

	if err := s.questions.InsertQuestions(ctx, questions); err != nil {
		return 0, err
	}
	return len(questions), nil
}
