// Package grading implements the deterministic half of the submission
// grading pipeline: objective question scoring and the expected-answer
// fallback used for essays when assistant grading is off or fails.
package grading

import (
	"strings"

	"exam-service/internal/models"
)

// Result is the outcome of grading a single answer.
type Result struct {
	IsCorrect  bool    `json:"is_correct"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// GradeMultipleChoice awards full credit iff the set of selected choice
// contents exactly equals the set of choices flagged correct on the
// question. Order does not matter; there is no partial credit.
func GradeMultipleChoice(q *models.Question, selected []string, maxScore float64) Result {
	correct := make(map[string]bool)
	for _, content := range q.CorrectChoiceContents() {
		correct[content] = true
	}
	chosen := make(map[string]bool)
	for _, s := range selected {
		chosen[s] = true
	}
	if len(chosen) != len(correct) {
		return Result{Confidence: 1.0}
	}
	for content := range chosen {
		if !correct[content] {
			return Result{Confidence: 1.0}
		}
	}
	return Result{IsCorrect: true, Score: maxScore, Confidence: 1.0}
}

// GradeTrueFalse awards full credit iff the submitted boolean matches the
// question's correct value. A nil answer is incorrect.
func GradeTrueFalse(q *models.Question, answer *bool, maxScore float64) Result {
	if answer == nil || q.IsTrue == nil || *answer != *q.IsTrue {
		return Result{Confidence: 1.0}
	}
	return Result{IsCorrect: true, Score: maxScore, Confidence: 1.0}
}

// substringMinLen guards the containment check: strings of 10 characters
// or fewer only ever match exactly.
const substringMinLen = 10

// MatchExpectedAnswer reports whether the student answer matches any of
// the expected answers. Comparison is case-insensitive on trimmed text;
// beyond exact equality, a string longer than 10 characters also matches
// when it contains, or is contained in, the other side.
func MatchExpectedAnswer(expectedAnswers []string, answer string) bool {
	student := strings.ToLower(strings.TrimSpace(answer))
	for _, expected := range expectedAnswers {
		exp := strings.ToLower(strings.TrimSpace(expected))
		if student == exp {
			return true
		}
		if len(student) > substringMinLen && strings.Contains(exp, student) {
			return true
		}
		if len(exp) > substringMinLen && strings.Contains(student, exp) {
			return true
		}
	}
	return false
}

// GradeEssayFallback applies expected-answer matching to an essay answer.
// The second return value is false when the question carries no expected
// answers, meaning the answer stays ungraded pending manual review.
func GradeEssayFallback(expectedAnswers []string, answer string, maxScore float64) (Result, bool) {
	if len(expectedAnswers) == 0 {
		return Result{}, false
	}
	if MatchExpectedAnswer(expectedAnswers, answer) {
		return Result{IsCorrect: true, Score: maxScore, Confidence: 1.0}, true
	}
	return Result{Confidence: 1.0}, true
}

// Percentage computes total/max*100, returning 0 for a zero denominator.
func Percentage(total, max float64) float64 {
	if max == 0 {
		return 0
	}
	return total / max * 100
}

// SumScores adds up every graded answer's obtained score.
func SumScores(answers []models.SubmittedAnswer) float64 {
	var total float64
	for i := range answers {
		if answers[i].ScoreObtained != nil {
			total += *answers[i].ScoreObtained
		}
	}
	return total
}

// FullyGraded reports whether every essay-type answer has both grading
// fields set. Objective answers are always graded by the pipeline, so
// only essays can hold a submission in the submitted state.
func FullyGraded(answers []models.SubmittedAnswer) bool {
	for i := range answers {
		a := &answers[i]
		if a.QuestionType != models.QuestionShortEssay && a.QuestionType != models.QuestionLongEssay {
			continue
		}
		if !a.Graded() {
			return false
		}
	}
	return true
}
