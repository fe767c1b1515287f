package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"exam-service/internal/assistant"
	"exam-service/internal/grading"
	"exam-service/internal/models"
	"exam-service/internal/repository"
)

// SystemGrader is recorded as the grader for automatic grading passes.
const SystemGrader = "system"

// SubmissionService records student attempts and runs the grading
// pipeline. Assistant may be nil, in which case essay questions fall
// back to expected-answer matching regardless of schedule settings.
type SubmissionService struct {
	Repo         *repository.SubmissionRepository
	ScheduleRepo *repository.ScheduleRepository
	Assistant    *assistant.Client
}

func NewSubmissionService(repo *repository.SubmissionRepository, scheduleRepo *repository.ScheduleRepository, ai *assistant.Client) *SubmissionService {
	return &SubmissionService{Repo: repo, ScheduleRepo: scheduleRepo, Assistant: ai}
}

// SubmissionAnswer is one answered question as received from the client.
type SubmissionAnswer struct {
	QuestionID      string              `json:"question_id"`
	QuestionText    string              `json:"question_text"`
	QuestionType    models.QuestionType `json:"question_type"`
	SelectedChoices []string            `json:"selected_choices,omitempty"`
	BoolAnswer      *bool               `json:"bool_answer,omitempty"`
	TextAnswer      string              `json:"text_answer,omitempty"`
	MaxScore        float64             `json:"max_score"`
}

// SubmitExamRequest is one student attempt as received from the client.
type SubmitExamRequest struct {
	ScheduleID       string             `json:"schedule_id"`
	StudentID        string             `json:"student_id"`
	CourseID         string             `json:"course_id"`
	GroupID          string             `json:"group_id"`
	TimeTakenSeconds int                `json:"time_taken_seconds"`
	Answers          []SubmissionAnswer `json:"answers"`
}

// SubmitExam records a new attempt and immediately runs a full grading
// pass attributed to the system grader. If grading fails the raw
// ungraded submission is returned instead.
//
// The per-answer max score is taken from the client as declared, not
// re-derived from the schedule's stored question scores.
func (s *SubmissionService) SubmitExam(ctx context.Context, req SubmitExamRequest) (*models.ExamSubmission, error) {
	count, err := s.Repo.CountAttempts(ctx, req.ScheduleID, req.StudentID)
	if err != nil {
		return nil, err
	}

	var maxPossible float64
	answers := make([]models.SubmittedAnswer, len(req.Answers))
	for i, a := range req.Answers {
		maxPossible += a.MaxScore
		answers[i] = models.SubmittedAnswer{
			QuestionID:      a.QuestionID,
			QuestionText:    a.QuestionText,
			QuestionType:    a.QuestionType,
			SelectedChoices: a.SelectedChoices,
			BoolAnswer:      a.BoolAnswer,
			TextAnswer:      a.TextAnswer,
			MaxScore:        a.MaxScore,
		}
	}

	sub := &models.ExamSubmission{
		ScheduleID:       req.ScheduleID,
		StudentID:        req.StudentID,
		CourseID:         req.CourseID,
		GroupID:          req.GroupID,
		Answers:          answers,
		SubmittedAt:      time.Now(),
		TimeTakenSeconds: req.TimeTakenSeconds,
		MaxPossibleScore: maxPossible,
		Status:           models.SubmissionStatusSubmitted,
		AttemptNumber:    int(count) + 1,
	}
	if err := s.Repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	graded, err := s.GradeSubmission(ctx, sub.ID, SystemGrader)
	if err != nil {
		log.Printf("auto-grading of submission %s failed: %v", sub.ID, err)
		return sub, nil
	}
	return graded, nil
}

// GradeSubmission runs the full grading pass over a submission against
// its schedule's question snapshot.
func (s *SubmissionService) GradeSubmission(ctx context.Context, submissionID, gradedBy string) (*models.ExamSubmission, error) {
	sub, err := s.Repo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("submission %s not found", submissionID)
	}
	schedule, err := s.ScheduleRepo.FindByID(ctx, sub.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s not found for submission %s", sub.ScheduleID, submissionID)
	}

	for i := range sub.Answers {
		s.gradeAnswer(ctx, schedule, &sub.Answers[i])
	}

	now := time.Now()
	sub.TotalScore = grading.SumScores(sub.Answers)
	sub.PercentageScore = grading.Percentage(sub.TotalScore, sub.MaxPossibleScore)
	sub.IsGraded = true
	sub.Status = models.SubmissionStatusGraded
	sub.GradedBy = gradedBy
	sub.GradedAt = &now

	err = s.Repo.Update(ctx, sub.ID, bson.M{
		"answers":          sub.Answers,
		"total_score":      sub.TotalScore,
		"percentage_score": sub.PercentageScore,
		"is_graded":        sub.IsGraded,
		"status":           sub.Status,
		"graded_by":        sub.GradedBy,
		"graded_at":        sub.GradedAt,
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) gradeAnswer(ctx context.Context, schedule *models.ExaminationSchedule, a *models.SubmittedAnswer) {
	q := schedule.FindQuestion(a.QuestionID)
	if q == nil {
		setResult(a, grading.Result{Confidence: 1.0})
		return
	}

	switch q.Type {
	case models.QuestionMultipleChoice:
		a.OriginalChoices = append([]models.Choice(nil), q.Choices...)
		setResult(a, grading.GradeMultipleChoice(q, a.SelectedChoices, a.MaxScore))

	case models.QuestionTrueFalse:
		setResult(a, grading.GradeTrueFalse(q, a.BoolAnswer, a.MaxScore))

	case models.QuestionShortEssay, models.QuestionLongEssay:
		s.gradeEssay(ctx, schedule, q, a)

	case models.QuestionNested:
		// Nested questions are manual-only; sub-questions are not
		// auto-graded.
		setResult(a, grading.Result{})
	}
}

func (s *SubmissionService) gradeEssay(ctx context.Context, schedule *models.ExaminationSchedule, q *models.Question, a *models.SubmittedAnswer) {
	if schedule.AssistantGrading && s.Assistant != nil && strings.TrimSpace(a.TextAnswer) != "" {
		res, suggestion := s.Assistant.GradeEssay(ctx, assistant.EssayRequest{
			QuestionText:    q.Text,
			ExpectedAnswers: q.ExpectedAnswers,
			StudentAnswer:   a.TextAnswer,
			MaxScore:        a.MaxScore,
			QuestionType:    q.Type,
		})
		a.AISuggestion = suggestion
		a.AIConfidence = res.Confidence
		setResult(a, res)
		return
	}

	res, graded := grading.GradeEssayFallback(q.ExpectedAnswers, a.TextAnswer, a.MaxScore)
	if !graded {
		// No expected answers and no assistant: incorrect/zero until a
		// manual override comes in.
		setResult(a, grading.Result{})
		return
	}
	setResult(a, res)
}

func setResult(a *models.SubmittedAnswer, res grading.Result) {
	correct := res.IsCorrect
	score := res.Score
	a.IsCorrect = &correct
	a.ScoreObtained = &score
}

// ManualGradeQuestion overrides one answer's grade and recomputes the
// aggregate. The submission flips to graded only once every essay-type
// answer carries both grading fields.
func (s *SubmissionService) ManualGradeQuestion(ctx context.Context, submissionID, questionID string, score float64, isCorrect bool, gradedBy string) (*models.ExamSubmission, error) {
	sub, err := s.Repo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("submission %s not found", submissionID)
	}

	var target *models.SubmittedAnswer
	for i := range sub.Answers {
		if sub.Answers[i].QuestionID == questionID {
			target = &sub.Answers[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("question %s not found in submission %s", questionID, submissionID)
	}
	setResult(target, grading.Result{IsCorrect: isCorrect, Score: score})

	sub.TotalScore = grading.SumScores(sub.Answers)
	sub.PercentageScore = grading.Percentage(sub.TotalScore, sub.MaxPossibleScore)

	update := bson.M{
		"answers":          sub.Answers,
		"total_score":      sub.TotalScore,
		"percentage_score": sub.PercentageScore,
	}
	if grading.FullyGraded(sub.Answers) {
		now := time.Now()
		sub.IsGraded = true
		sub.Status = models.SubmissionStatusGraded
		sub.GradedBy = gradedBy
		sub.GradedAt = &now
		update["is_graded"] = true
		update["status"] = sub.Status
		update["graded_by"] = gradedBy
		update["graded_at"] = sub.GradedAt
	}
	if err := s.Repo.Update(ctx, sub.ID, update); err != nil {
		return nil, err
	}
	return sub, nil
}

// CanStudentAttemptExam is a read-side guard; callers are expected to
// honor it before submitting.
func (s *SubmissionService) CanStudentAttemptExam(ctx context.Context, scheduleID, studentID string, allowedAttempts int) (bool, error) {
	count, err := s.Repo.CountAttempts(ctx, scheduleID, studentID)
	if err != nil {
		return false, err
	}
	return int(count) < allowedAttempts, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id string) (*models.ExamSubmission, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *SubmissionService) ListBySchedule(ctx context.Context, scheduleID string) ([]models.ExamSubmission, error) {
	return s.Repo.FindBySchedule(ctx, scheduleID)
}

func (s *SubmissionService) ListByStudent(ctx context.Context, studentID string) ([]models.ExamSubmission, error) {
	return s.Repo.FindByStudent(ctx, studentID)
}

// MarkReviewed sets the terminal administrative status.
func (s *SubmissionService) MarkReviewed(ctx context.Context, id string) error {
	return s.Repo.Update(ctx, id, bson.M{"status": models.SubmissionStatusReviewed})
}
