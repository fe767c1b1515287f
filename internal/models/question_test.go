package models

import (
	"testing"
	"time"
)

func TestCloneIsDeep(t *testing.T) {
	truth := true
	q := Question{
		ID:    "q1",
		Type:  QuestionNested,
		Score: 10,
		Children: []Question{
			{
				ID:      "q1a",
				Type:    QuestionMultipleChoice,
				Score:   5,
				Choices: []Choice{{Content: "A", IsCorrect: true}, {Content: "B"}},
			},
			{
				ID:     "q1b",
				Type:   QuestionTrueFalse,
				Score:  5,
				IsTrue: &truth,
			},
		},
	}

	cp := q.Clone()
	cp.Children[0].Choices[0].Content = "changed"
	*cp.Children[1].IsTrue = false

	if q.Children[0].Choices[0].Content != "A" {
		t.Errorf("clone shares choice slice with original")
	}
	if *q.Children[1].IsTrue != true {
		t.Errorf("clone shares IsTrue pointer with original")
	}
}

func TestCorrectChoiceContents(t *testing.T) {
	q := Question{
		Type: QuestionMultipleChoice,
		Choices: []Choice{
			{Content: "A", IsCorrect: true},
			{Content: "B"},
			{Content: "C", IsCorrect: true},
		},
	}
	got := q.CorrectChoiceContents()
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Errorf("CorrectChoiceContents() = %v, want [A C]", got)
	}
}

func TestTotalScore(t *testing.T) {
	questions := []Question{
		{ID: "q1", Score: 2.5},
		{ID: "q2", Score: 5},
		{ID: "q3", Score: 0},
	}
	if got := TotalScore(questions); got != 7.5 {
		t.Errorf("TotalScore() = %v, want 7.5", got)
	}
}

func TestFindQuestion(t *testing.T) {
	s := ExaminationSchedule{
		Questions: []Question{{ID: "q1"}, {ID: "q2"}},
	}
	if q := s.FindQuestion("q2"); q == nil || q.ID != "q2" {
		t.Errorf("FindQuestion(q2) = %v", q)
	}
	if q := s.FindQuestion("missing"); q != nil {
		t.Errorf("FindQuestion(missing) = %v, want nil", q)
	}
}

func TestIsOpenAt(t *testing.T) {
	open := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	closed := open.Add(2 * time.Hour)
	s := ExaminationSchedule{OpenTime: open, CloseTime: closed}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before open", open.Add(-time.Minute), false},
		{"at open", open, true},
		{"during", open.Add(time.Hour), true},
		{"at close", closed, true},
		{"after close", closed.Add(time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.IsOpenAt(tt.at); got != tt.want {
				t.Errorf("IsOpenAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
