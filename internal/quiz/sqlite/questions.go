package sqlite

import (
	"context"
	"fmt"

	"quizapp/internal/quiz"
)

// InsertQuestions stores a seeded batch in one transaction so a failed
// import leaves no partial subject behind.
func (s *Store) InsertQuestions(ctx context.Context, questions []quiz.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, question := range questions {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO questions (question, option1, option2, option3, option4, correct_option, category)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			question.Prompt,
			question.Options[0],
			question.Options[1],
			question.Options[2],
			question.Options[3],
			question.CorrectOption,
			string(question.Category),
		)
		if err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) QuestionsByCategory(ctx context.Context, category quiz.Category) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, question, option1, option2, option3, option4, correct_option, category
		 FROM questions
		 WHERE category = ?
		 ORDER BY id ASC`,
		string(category),
	)
	if err != nil {
		return nil, fmt.Errorf("select questions: %w", err)
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	for rows.Next() {
		var question quiz.Question
		if err := rows.Scan(
			&question.ID,
			&question.Prompt,
			&question.Options[0],
			&question.Options[1],
			&question.Options[2],
			&question.Options[3],
			&question.CorrectOption,
			&question.Category,
		); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}
