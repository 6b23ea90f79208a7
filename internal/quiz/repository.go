package quiz

import "context"

type UserRepository interface {
	CreateUser(ctx context.Context, user User) error
	FindByCredentials(ctx context.Context, enrollment, password string) (User, error)
}

type QuestionRepository interface {
	InsertQuestions(ctx context.Context, questions []Question) error
	QuestionsByCategory(ctx context.Context, category Category) ([]Question, error)
}

type ResultRepository interface {
	InsertResult(ctx context.Context, result Result) (Result, error)
	ResultsByEnrollment(ctx context.Context, enrollment string) ([]Result, error)
}
