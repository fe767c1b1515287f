package models

import "time"

// ExaminationSchedule is a scheduled instance of an examination. Questions
// are a deep snapshot taken at creation time; editing the source
// examination afterwards does not change the schedule.
type ExaminationSchedule struct {
	ID                 string     `bson:"_id,omitempty" json:"id"`
	ExaminationID      string     `bson:"examination_id" json:"examination_id"`
	InstructorID       string     `bson:"instructor_id" json:"instructor_id"`
	Title              string     `bson:"title" json:"title"`
	Description        string     `bson:"description" json:"description"`
	Category           string     `bson:"category" json:"category"`
	Questions          []Question `bson:"questions" json:"questions"`
	OpenTime           time.Time  `bson:"open_time" json:"open_time"`
	CloseTime          time.Time  `bson:"close_time" json:"close_time"`
	IPRange            string     `bson:"ip_range,omitempty" json:"ip_range,omitempty"`
	ExamCode           string     `bson:"exam_code,omitempty" json:"exam_code,omitempty"`
	AllowedAttempts    int        `bson:"allowed_attempts" json:"allowed_attempts"`
	AllowReview        bool       `bson:"allow_review" json:"allow_review"`
	ShowAnswers        bool       `bson:"show_answers" json:"show_answers"`
	RandomizeQuestions bool       `bson:"randomize_questions" json:"randomize_questions"`
	RandomizeChoices   bool       `bson:"randomize_choices" json:"randomize_choices"`
	TotalScore         float64    `bson:"total_score" json:"total_score"`
	AssistantGrading   bool       `bson:"assistant_grading" json:"assistant_grading"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at" json:"updated_at"`
}

// FindQuestion returns the snapshot question with the given id, or nil.
func (s *ExaminationSchedule) FindQuestion(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// IsOpenAt reports whether the schedule accepts submissions at t.
func (s *ExaminationSchedule) IsOpenAt(t time.Time) bool {
	return !t.Before(s.OpenTime) && !t.After(s.CloseTime)
}
