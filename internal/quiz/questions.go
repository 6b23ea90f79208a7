package quiz

import (
	"html"
	"math/rand"

	"quizapp/internal/opentdb"
)

// BuildQuestions converts raw OpenTriviaDB payloads into storable
// questions for the given subject. Only multiple-choice payloads with
// exactly three incorrect answers fit the fixed four-option layout;
// anything else is dropped.
func BuildQuestions(category Category, raw []opentdb.RawQuestion) []Question {
	questions := make([]Question, 0, len(raw))
	for _, item := range raw {
		question, ok := buildQuestion(category, item)
		if !ok {
			continue
		}
		questions = append(questions, question)
	}
	return questions
}

func buildQuestion(category Category, raw opentdb.RawQuestion) (Question, bool) {
	if len(raw.IncorrectAnswers) != OptionCount-1 {
		return Question{}, false
	}

	correctText := html.UnescapeString(raw.CorrectAnswer)
	texts := make([]string, 0, OptionCount)
	for _, incorrect := range raw.IncorrectAnswers {
		texts = append(texts, html.UnescapeString(incorrect))
	}
	texts = append(texts, correctText)

	rand.Shuffle(len(texts), func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
	})

	question := Question{
		Prompt:        html.UnescapeString(raw.Question),
		CorrectOption: correctText,
		Category:      category,
	}
	copy(question.Options[:], texts)
	return question, true
}
