package quiz

import (
	"errors"
	"strings"
)

var (
	ErrDuplicateEnrollment = errors.New("enrollment already registered")
	ErrEnrollmentRequired  = errors.New("enrollment is required")
	ErrInvalidCredentials  = errors.New("invalid enrollment or password")
	ErrInvalidCategory     = errors.New("invalid category")
)

// Category is one of the closed set of quiz subjects. Results and
// questions are partitioned by it; nothing else is a valid label.
type Category string

const (
	CategoryCybersecurity    Category = "Cybersecurity"
	CategoryComputerNetworks Category = "Computer Networks"
	CategoryDBMS             Category = "DBMS"
)

// OptionCount is fixed by the questions table layout (option1..option4).
const OptionCount = 4

// Categories returns the selectable subjects in menu order.
func Categories() []Category {
	return []Category{
		CategoryCybersecurity,
		CategoryComputerNetworks,
		CategoryDBMS,
	}
}

// ParseCategory resolves a subject given either its 1-based menu number
// or its name (case-insensitive).
func ParseCategory(value string) (Category, error) {
	value = strings.TrimSpace(value)
	categories := Categories()

	if len(value) == 1 && value[0] >= '1' && value[0] <= '9' {
		idx := int(value[0] - '1')
		if idx < len(categories) {
			return categories[idx], nil
		}
		return "", ErrInvalidCategory
	}

	for _, category := range categories {
		if strings.EqualFold(value, string(category)) {
			return category, nil
		}
	}
	return "", ErrInvalidCategory
}

type User struct {
	ID         int64
	Enrollment string
	Password   string
	Name       string
	Email      string
}

type Question struct {
	ID            int64
	Prompt        string
	Options       [OptionCount]string
	CorrectOption string
	Category      Category
}

// Result is one completed attempt. Rows are append-only; Score keeps the
// original "{correct}/{total}" text form and TimeTaken is wall-clock
// seconds rounded to two decimals.
type Result struct {
	ID         int64
	Enrollment string
	Score      string
	TimeTaken  float64
	Subject    Category
}
