package models

import "time"

const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusGraded    = "graded"
	SubmissionStatusReviewed  = "reviewed"
)

// SubmittedAnswer records one answered question inside a submission.
// IsCorrect and ScoreObtained stay nil until the answer has been graded,
// either by the pipeline or by a manual override.
type SubmittedAnswer struct {
	QuestionID      string       `bson:"question_id" json:"question_id"`
	QuestionText    string       `bson:"question_text" json:"question_text"`
	QuestionType    QuestionType `bson:"question_type" json:"question_type"`
	SelectedChoices []string     `bson:"selected_choices,omitempty" json:"selected_choices,omitempty"`
	BoolAnswer      *bool        `bson:"bool_answer,omitempty" json:"bool_answer,omitempty"`
	TextAnswer      string       `bson:"text_answer,omitempty" json:"text_answer,omitempty"`
	MaxScore        float64      `bson:"max_score" json:"max_score"`
	IsCorrect       *bool        `bson:"is_correct,omitempty" json:"is_correct,omitempty"`
	ScoreObtained   *float64     `bson:"score_obtained,omitempty" json:"score_obtained,omitempty"`
	AISuggestion    string       `bson:"ai_suggestion,omitempty" json:"ai_suggestion,omitempty"`
	AIConfidence    float64      `bson:"ai_confidence,omitempty" json:"ai_confidence,omitempty"`
	OriginalChoices []Choice     `bson:"original_choices,omitempty" json:"original_choices,omitempty"`
}

// Graded reports whether both grading fields have been set.
func (a *SubmittedAnswer) Graded() bool {
	return a.IsCorrect != nil && a.ScoreObtained != nil
}

type ExamSubmission struct {
	ID               string            `bson:"_id,omitempty" json:"id"`
	ScheduleID       string            `bson:"schedule_id" json:"schedule_id"`
	StudentID        string            `bson:"student_id" json:"student_id"`
	CourseID         string            `bson:"course_id,omitempty" json:"course_id,omitempty"`
	GroupID          string            `bson:"group_id,omitempty" json:"group_id,omitempty"`
	Answers          []SubmittedAnswer `bson:"answers" json:"answers"`
	SubmittedAt      time.Time         `bson:"submitted_at" json:"submitted_at"`
	TimeTakenSeconds int               `bson:"time_taken_seconds" json:"time_taken_seconds"`
	TotalScore       float64           `bson:"total_score" json:"total_score"`
	MaxPossibleScore float64           `bson:"max_possible_score" json:"max_possible_score"`
	PercentageScore  float64           `bson:"percentage_score" json:"percentage_score"`
	IsGraded         bool              `bson:"is_graded" json:"is_graded"`
	GradedBy         string            `bson:"graded_by,omitempty" json:"graded_by,omitempty"`
	GradedAt         *time.Time        `bson:"graded_at,omitempty" json:"graded_at,omitempty"`
	Status           string            `bson:"status" json:"status"`
	AttemptNumber    int               `bson:"attempt_number" json:"attempt_number"`
}
