package sqlite

import (
	"context"
	"fmt"

	"quizapp/internal/quiz"
)

func (s *Store) InsertResult(ctx context.Context, result quiz.Result) (quiz.Result, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO results (enrollment, score, time_taken, subject) VALUES (?, ?, ?, ?)`,
		result.Enrollment,
		result.Score,
		result.TimeTaken,
		string(result.Subject),
	)
	if err != nil {
		return quiz.Result{}, fmt.Errorf("insert result: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		result.ID = id
	}
	return result, nil
}

func (s *Store) ResultsByEnrollment(ctx context.Context, enrollment string) ([]quiz.Result, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, enrollment, score, time_taken, subject FROM results WHERE enrollment = ? ORDER BY id ASC`,
		enrollment,
	)
	if err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}
	defer rows.Close()

	results := make([]quiz.Result, 0)
	for rows.Next() {
		var result quiz.Result
		if err := rows.Scan(&result.ID, &result.Enrollment, &result.Score, &result.TimeTaken, &result.Subject); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}
