package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/selection"
)

type ScheduleService struct {
	Repo     *repository.ScheduleRepository
	ExamRepo *repository.ExaminationRepository
	SubRepo  *repository.SubmissionRepository
}

func NewScheduleService(repo *repository.ScheduleRepository, examRepo *repository.ExaminationRepository, subRepo *repository.SubmissionRepository) *ScheduleService {
	return &ScheduleService{Repo: repo, ExamRepo: examRepo, SubRepo: subRepo}
}

// CreateScheduleRequest carries the instructor's scheduling choices.
type CreateScheduleRequest struct {
	ExaminationID      string    `json:"examination_id"`
	InstructorID       string    `json:"instructor_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	QuestionCount      int       `json:"question_count"`
	OpenTime           time.Time `json:"open_time"`
	CloseTime          time.Time `json:"close_time"`
	IPRange            string    `json:"ip_range"`
	ExamCode           string    `json:"exam_code"`
	AllowedAttempts    int       `json:"allowed_attempts"`
	AllowReview        bool      `json:"allow_review"`
	ShowAnswers        bool      `json:"show_answers"`
	RandomizeQuestions bool      `json:"randomize_questions"`
	RandomizeChoices   bool      `json:"randomize_choices"`
	AssistantGrading   bool      `json:"assistant_grading"`
}

// CreateSchedule snapshots the examination's questions, optionally
// down-sampled to QuestionCount at random, into a new schedule. The
// snapshot is a deep copy: later edits to the examination never reach
// the schedule.
func (s *ScheduleService) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*models.ExaminationSchedule, error) {
	exam, err := s.ExamRepo.FindByID(ctx, req.ExaminationID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, fmt.Errorf("examination %s not found", req.ExaminationID)
	}

	questions := selection.Sample(exam.Questions, req.QuestionCount)
	schedule := &models.ExaminationSchedule{
		ExaminationID:      exam.ID,
		InstructorID:       req.InstructorID,
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Questions:          questions,
		OpenTime:           req.OpenTime,
		CloseTime:          req.CloseTime,
		IPRange:            req.IPRange,
		ExamCode:           req.ExamCode,
		AllowedAttempts:    req.AllowedAttempts,
		AllowReview:        req.AllowReview,
		ShowAnswers:        req.ShowAnswers,
		RandomizeQuestions: req.RandomizeQuestions,
		RandomizeChoices:   req.RandomizeChoices,
		TotalScore:         models.TotalScore(questions),
		AssistantGrading:   req.AssistantGrading,
	}
	if schedule.Title == "" {
		schedule.Title = exam.Title
	}
	if err := s.Repo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, id string) (*models.ExaminationSchedule, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ScheduleService) ListByInstructor(ctx context.Context, instructorID string) ([]models.ExaminationSchedule, error) {
	return s.Repo.FindByInstructor(ctx, instructorID)
}

// UpdateSettings edits administrative settings only; the question
// snapshot is immutable.
func (s *ScheduleService) UpdateSettings(ctx context.Context, id string, update map[string]any) error {
	delete(update, "questions")
	delete(update, "total_score")
	return s.Repo.Update(ctx, id, bson.M(update))
}

// DeleteSchedule removes the schedule and cascades to its submissions.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	deleted, err := s.SubRepo.DeleteBySchedule(ctx, id)
	if err != nil {
		log.Printf("failed to cascade submissions of schedule %s: %v", id, err)
		return nil
	}
	if deleted > 0 {
		log.Printf("deleted %d submissions of schedule %s", deleted, id)
	}
	return nil
}

// DeliveryQuestions returns the schedule's questions as a student should
// see them, honoring the randomize flags. Returns nil when the schedule
// does not exist.
func (s *ScheduleService) DeliveryQuestions(ctx context.Context, id string) ([]models.Question, error) {
	schedule, err := s.Repo.FindByID(ctx, id)
	if err != nil || schedule == nil {
		return nil, err
	}
	return selection.ForDelivery(schedule), nil
}

// CheckAccess verifies the scheduling window and exam code. The attempt
// limit is checked separately by the submission pipeline.
func (s *ScheduleService) CheckAccess(schedule *models.ExaminationSchedule, examCode string, now time.Time) error {
	if !schedule.IsOpenAt(now) {
		return fmt.Errorf("schedule is not open")
	}
	if schedule.ExamCode != "" && schedule.ExamCode != examCode {
		return fmt.Errorf("invalid exam code")
	}
	return nil
}
