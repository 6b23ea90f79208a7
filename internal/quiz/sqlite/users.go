package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"quizapp/internal/quiz"
)

func (s *Store) CreateUser(ctx context.Context, user quiz.User) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO users (enrollment, password, name, email) VALUES (?, ?, ?, ?)`,
		user.Enrollment,
		user.Password,
		user.Name,
		user.Email,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return quiz.ErrDuplicateEnrollment
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByCredentials matches both enrollment and password exactly, as
// stored. Password comparison is opaque text on purpose; see the schema
// notes on preserved behavior.
func (s *Store) FindByCredentials(ctx context.Context, enrollment, password string) (quiz.User, error) {
	var user quiz.User
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, enrollment, password, name, email FROM users WHERE enrollment = ? AND password = ?`,
		enrollment,
		password,
	).Scan(&user.ID, &user.Enrollment, &user.Password, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.User{}, quiz.ErrInvalidCredentials
		}
		return quiz.User{}, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}
