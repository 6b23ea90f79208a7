package sqlite

import (
	"context"
)

func (s *Store) initSchema(ctx context.Context) error {
	// No FK from results.enrollment to users: results are append-only
	// history and the layout deliberately keeps the three tables
	// independent. The UNIQUE constraint on users.enrollment is the
	// single enforcement point for duplicate registration.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			enrollment TEXT UNIQUE,
			password TEXT,
			name TEXT,
			email TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question TEXT,
			option1 TEXT,
			option2 TEXT,
			option3 TEXT,
			option4 TEXT,
			correct_option TEXT,
			category TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			enrollment TEXT,
			score TEXT,
			time_taken REAL,
			subject TEXT
		);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
