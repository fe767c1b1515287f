package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

type ExaminationService struct {
	Repo  *repository.ExaminationRepository
	Banks *BankService
}

func NewExaminationService(repo *repository.ExaminationRepository, banks *BankService) *ExaminationService {
	return &ExaminationService{Repo: repo, Banks: banks}
}

func (s *ExaminationService) GetExamination(ctx context.Context, id string) (*models.Examination, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ExaminationService) ListByInstructor(ctx context.Context, instructorID string) ([]models.Examination, error) {
	return s.Repo.FindByInstructor(ctx, instructorID)
}

func (s *ExaminationService) CreateExamination(ctx context.Context, exam *models.Examination) error {
	ensureQuestionIDs(exam.Questions)
	return s.Repo.Create(ctx, exam)
}

func (s *ExaminationService) UpdateExamination(ctx context.Context, id string, update map[string]any) error {
	return s.Repo.Update(ctx, id, bson.M(update))
}

// DeleteExamination removes the document and sweeps its id out of every
// bank at any depth.
func (s *ExaminationService) DeleteExamination(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.Banks.RemoveExamFromAllBanks(ctx, id)
}

func ensureQuestionIDs(questions []models.Question) {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = newID()
		}
		ensureQuestionIDs(questions[i].Children)
	}
}
