package quiz

import (
	"math"
	"strconv"
	"time"
)

// ScoreAnswer reports whether the 1-based choice selects the option whose
// text equals the question's stored correct option. Out-of-range choices
// never score; the interactive layer re-prompts before calling this.
func ScoreAnswer(question Question, choice int) bool {
	if choice < 1 || choice > OptionCount {
		return false
	}
	return question.Options[choice-1] == question.CorrectOption
}

// FormatScore renders the persisted "{correct}/{total}" score text.
func FormatScore(correct, total int) string {
	return strconv.Itoa(correct) + "/" + strconv.Itoa(total)
}

// RoundSeconds converts elapsed wall-clock time to seconds rounded to two
// decimal places, the precision the results table stores.
func RoundSeconds(elapsed time.Duration) float64 {
	return math.Round(elapsed.Seconds()*100) / 100
}
