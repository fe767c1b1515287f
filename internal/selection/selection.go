// Package selection picks and orders the questions a student actually
// sees: random down-sampling at schedule creation and delivery-time
// shuffling of questions and choices.
package selection

import (
	"math/rand"

	"exam-service/internal/models"
)

// Sample returns a deep copy of up to n randomly chosen questions.
// n <= 0 or n >= len(questions) copies the whole list in original order.
func Sample(questions []models.Question, n int) []models.Question {
	if n <= 0 || n >= len(questions) {
		return models.CloneQuestions(questions)
	}
	idx := rand.Perm(len(questions))[:n]
	sampled := make([]models.Question, 0, n)
	for _, i := range idx {
		sampled = append(sampled, questions[i].Clone())
	}
	return sampled
}

// ForDelivery produces the question list to hand to a student: a deep
// copy of the schedule's snapshot, shuffled according to the schedule's
// randomize flags. The stored snapshot itself is never reordered.
func ForDelivery(schedule *models.ExaminationSchedule) []models.Question {
	questions := models.CloneQuestions(schedule.Questions)
	if schedule.RandomizeQuestions {
		rand.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	if schedule.RandomizeChoices {
		for i := range questions {
			shuffleChoices(&questions[i])
		}
	}
	return questions
}

func shuffleChoices(q *models.Question) {
	if q.Type == models.QuestionMultipleChoice {
		rand.Shuffle(len(q.Choices), func(i, j int) {
			q.Choices[i], q.Choices[j] = q.Choices[j], q.Choices[i]
		})
	}
	for i := range q.Children {
		shuffleChoices(&q.Children[i])
	}
}
