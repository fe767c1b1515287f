package selection

import (
	"testing"

	"exam-service/internal/models"
)

func questionList(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			ID:    string(rune('a' + i)),
			Type:  models.QuestionMultipleChoice,
			Score: 2,
			Choices: []models.Choice{
				{Content: "A", IsCorrect: true},
				{Content: "B"},
			},
		}
	}
	return questions
}

func TestSampleSize(t *testing.T) {
	questions := questionList(10)

	testCases := []struct {
		name string
		n    int
		want int
	}{
		{"subset", 4, 4},
		{"zero takes all", 0, 10},
		{"negative takes all", -1, 10},
		{"oversized takes all", 20, 10},
		{"exact takes all", 10, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sample(questions, tc.n)
			if len(got) != tc.want {
				t.Errorf("len = %d, want %d", len(got), tc.want)
			}
			seen := make(map[string]bool)
			for _, q := range got {
				if seen[q.ID] {
					t.Errorf("question %s sampled twice", q.ID)
				}
				seen[q.ID] = true
			}
		})
	}
}

func TestSampleIsDeepCopy(t *testing.T) {
	questions := questionList(3)
	sampled := Sample(questions, 3)

	sampled[0].Choices[0].Content = "mutated"
	for _, q := range questions {
		for _, c := range q.Choices {
			if c.Content == "mutated" {
				t.Fatal("sample shares choice storage with the source")
			}
		}
	}
}

func TestForDeliveryPreservesSnapshot(t *testing.T) {
	schedule := &models.ExaminationSchedule{
		Questions:          questionList(8),
		RandomizeQuestions: true,
		RandomizeChoices:   true,
	}
	before := make([]string, len(schedule.Questions))
	for i, q := range schedule.Questions {
		before[i] = q.ID
	}

	delivered := ForDelivery(schedule)
	if len(delivered) != len(schedule.Questions) {
		t.Fatalf("delivered %d questions, want %d", len(delivered), len(schedule.Questions))
	}
	for i, q := range schedule.Questions {
		if q.ID != before[i] {
			t.Fatal("stored snapshot was reordered")
		}
	}
}

func TestForDeliveryWithoutFlags(t *testing.T) {
	schedule := &models.ExaminationSchedule{Questions: questionList(5)}
	delivered := ForDelivery(schedule)
	for i, q := range delivered {
		if q.ID != schedule.Questions[i].ID {
			t.Fatal("order changed without randomize flags")
		}
	}
}
