package grading

import (
	"testing"

	"exam-service/internal/models"
)

func mcQuestion(correct []string, wrong []string) *models.Question {
	q := &models.Question{ID: "q1", Type: models.QuestionMultipleChoice, Score: 5}
	for _, c := range correct {
		q.Choices = append(q.Choices, models.Choice{Content: c, IsCorrect: true})
	}
	for _, c := range wrong {
		q.Choices = append(q.Choices, models.Choice{Content: c})
	}
	return q
}

func TestGradeMultipleChoice(t *testing.T) {
	testCases := []struct {
		name     string
		correct  []string
		wrong    []string
		selected []string
		want     bool
	}{
		{"exact set", []string{"A", "B"}, []string{"C"}, []string{"A", "B"}, true},
		{"order independent", []string{"A", "B"}, []string{"C"}, []string{"B", "A"}, true},
		{"missing one", []string{"A", "B"}, []string{"C"}, []string{"A"}, false},
		{"extra one", []string{"A", "B"}, []string{"C"}, []string{"A", "B", "C"}, false},
		{"wrong choice", []string{"A"}, []string{"B"}, []string{"B"}, false},
		{"nothing selected", []string{"A"}, []string{"B"}, nil, false},
		{"single correct", []string{"A"}, []string{"B", "C"}, []string{"A"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := mcQuestion(tc.correct, tc.wrong)
			res := GradeMultipleChoice(q, tc.selected, 5)
			if res.IsCorrect != tc.want {
				t.Errorf("IsCorrect = %v, want %v", res.IsCorrect, tc.want)
			}
			wantScore := 0.0
			if tc.want {
				wantScore = 5
			}
			if res.Score != wantScore {
				t.Errorf("Score = %v, want %v (no partial credit)", res.Score, wantScore)
			}
		})
	}
}

func TestGradeTrueFalse(t *testing.T) {
	truth := true
	lie := false
	q := &models.Question{Type: models.QuestionTrueFalse, IsTrue: &truth}

	if res := GradeTrueFalse(q, &truth, 2); !res.IsCorrect || res.Score != 2 {
		t.Errorf("matching boolean: %+v", res)
	}
	if res := GradeTrueFalse(q, &lie, 2); res.IsCorrect || res.Score != 0 {
		t.Errorf("mismatched boolean: %+v", res)
	}
	if res := GradeTrueFalse(q, nil, 2); res.IsCorrect {
		t.Errorf("nil answer graded correct: %+v", res)
	}
}

func TestMatchExpectedAnswer(t *testing.T) {
	testCases := []struct {
		name     string
		expected []string
		answer   string
		want     bool
	}{
		{"exact", []string{"Paris"}, "Paris", true},
		{"case and whitespace insensitive", []string{"Paris"}, "  paris ", true},
		{"short strings never substring-match", []string{"Paris"}, "Paris!", false},
		{"long student answer contained in expected", []string{"Paris is the capital of France"}, "the capital of France", true},
		{"long expected contained in student answer", []string{"Paris is the capital"}, "I think Paris is the capital of France", true},
		{"reordered words do not match", []string{"Paris is the capital of France"}, "the capital of france is paris", false},
		{"any expected answer suffices", []string{"wrong", "right answer here"}, "right answer here", true},
		{"no expected answers", nil, "anything", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchExpectedAnswer(tc.expected, tc.answer); got != tc.want {
				t.Errorf("MatchExpectedAnswer(%v, %q) = %v, want %v", tc.expected, tc.answer, got, tc.want)
			}
		})
	}
}

func TestGradeEssayFallback(t *testing.T) {
	res, graded := GradeEssayFallback([]string{"photosynthesis"}, "Photosynthesis", 10)
	if !graded || !res.IsCorrect || res.Score != 10 {
		t.Errorf("matching essay: %+v graded=%v", res, graded)
	}

	res, graded = GradeEssayFallback([]string{"photosynthesis"}, "respiration", 10)
	if !graded || res.IsCorrect || res.Score != 0 {
		t.Errorf("non-matching essay: %+v graded=%v", res, graded)
	}

	_, graded = GradeEssayFallback(nil, "anything", 10)
	if graded {
		t.Error("essay without expected answers must stay ungraded")
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(7.5, 10); got != 75 {
		t.Errorf("Percentage(7.5, 10) = %v", got)
	}
	if got := Percentage(5, 0); got != 0 {
		t.Errorf("zero denominator: got %v, want 0", got)
	}
}

func TestSumScoresAndFullyGraded(t *testing.T) {
	score := func(v float64) *float64 { return &v }
	flag := func(v bool) *bool { return &v }

	answers := []models.SubmittedAnswer{
		{QuestionType: models.QuestionMultipleChoice, IsCorrect: flag(true), ScoreObtained: score(5)},
		{QuestionType: models.QuestionShortEssay, IsCorrect: flag(false), ScoreObtained: score(0)},
		{QuestionType: models.QuestionLongEssay},
	}

	if got := SumScores(answers); got != 5 {
		t.Errorf("SumScores = %v, want 5", got)
	}
	if FullyGraded(answers) {
		t.Error("ungraded essay should block full grading")
	}

	answers[2].IsCorrect = flag(true)
	answers[2].ScoreObtained = score(8)
	if !FullyGraded(answers) {
		t.Error("all essays graded, submission should be fully graded")
	}
	if got := SumScores(answers); got != 13 {
		t.Errorf("SumScores = %v, want 13", got)
	}
}
