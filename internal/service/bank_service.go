package service

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exam-service/internal/banktree"
	"exam-service/internal/models"
	"exam-service/internal/repository"
)

// BankService owns the question-bank aggregates. Every tree mutation
// loads the whole bank, changes it in memory and writes the full
// sub-bank tree back.
type BankService struct {
	Repo     *repository.BankRepository
	ExamRepo *repository.ExaminationRepository
	UserRepo *repository.UserRepository
}

func NewBankService(repo *repository.BankRepository, examRepo *repository.ExaminationRepository, userRepo *repository.UserRepository) *BankService {
	return &BankService{Repo: repo, ExamRepo: examRepo, UserRepo: userRepo}
}

func (s *BankService) GetBank(ctx context.Context, id string) (*models.Bank, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *BankService) ListBanksByInstructor(ctx context.Context, instructorID string) ([]models.Bank, error) {
	return s.Repo.FindByInstructor(ctx, instructorID)
}

// CreateBank persists a new bank and registers it on the owning
// instructor's bank list.
func (s *BankService) CreateBank(ctx context.Context, bank *models.Bank) error {
	if err := s.Repo.Create(ctx, bank); err != nil {
		return err
	}
	return s.UserRepo.AddBank(ctx, bank.InstructorID, bank.ID)
}

// CanCreateSubBank is the pre-flight depth check for a creation under
// the node addressed by path. It does not mutate anything.
func (s *BankService) CanCreateSubBank(ctx context.Context, bankID string, path []string) (banktree.CreateCheck, error) {
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil {
		return banktree.CreateCheck{}, err
	}
	if bank == nil {
		return banktree.CreateCheck{Reason: "bank not found", MaxDepth: models.MaxSubBankDepth}, nil
	}
	return banktree.CanCreateAtPath(path), nil
}

// CanCreateSubBankInSubBank locates the target sub-bank anywhere in the
// tree and checks whether it may gain a child.
func (s *BankService) CanCreateSubBankInSubBank(ctx context.Context, bankID, subBankID string) (banktree.CreateCheck, error) {
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil {
		return banktree.CreateCheck{}, err
	}
	if bank == nil {
		return banktree.CreateCheck{Reason: "bank not found", MaxDepth: models.MaxSubBankDepth}, nil
	}
	check, _ := banktree.CanCreateIn(bank, subBankID)
	return check, nil
}

// CreateSubBank appends a new direct child to the bank's top-level
// sub-bank list. Depth-1 creation is never blocked.
func (s *BankService) CreateSubBank(ctx context.Context, bankID, name string, examIDs []string, parentID string) (*models.SubBank, error) {
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil || bank == nil {
		return nil, err
	}
	if parentID == "" {
		parentID = bankID
	}
	node := models.SubBank{
		ID:       primitive.NewObjectID().Hex(),
		Name:     name,
		ParentID: parentID,
		ExamIDs:  append([]string(nil), examIDs...),
	}
	bank.SubBanks = append(bank.SubBanks, node)
	if err := s.Repo.SaveTree(ctx, bank); err != nil {
		return nil, err
	}
	return &node, nil
}

// CreateNestedSubBank creates a child under the node addressed by path.
// A depth violation is an error; an unresolvable path returns nil.
func (s *BankService) CreateNestedSubBank(ctx context.Context, bankID string, path []string, name string, examIDs []string) (*models.SubBank, error) {
	if check := banktree.CanCreateAtPath(path); !check.CanCreate {
		return nil, fmt.Errorf("cannot create sub-bank: %s", check.Reason)
	}
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil || bank == nil {
		return nil, err
	}
	parent := banktree.ResolvePath(bank, path)
	if parent == nil {
		return nil, nil
	}
	node := models.SubBank{
		ID:       primitive.NewObjectID().Hex(),
		Name:     name,
		ParentID: parent.ID,
		ExamIDs:  append([]string(nil), examIDs...),
	}
	parent.SubBanks = append(parent.SubBanks, node)
	if err := s.Repo.SaveTree(ctx, bank); err != nil {
		return nil, err
	}
	return &node, nil
}

// CreateSubBankInSubBank creates a child under the sub-bank found by
// depth-first search. Missing targets and depth violations are errors.
func (s *BankService) CreateSubBankInSubBank(ctx context.Context, bankID, subBankID, name string, examIDs []string) (*models.SubBank, error) {
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, fmt.Errorf("bank %s not found", bankID)
	}
	check, found := banktree.CanCreateIn(bank, subBankID)
	if !found {
		return nil, fmt.Errorf("sub-bank %s not found in bank %s", subBankID, bankID)
	}
	if !check.CanCreate {
		return nil, fmt.Errorf("cannot create sub-bank: %s", check.Reason)
	}
	parent, _ := banktree.FindSubBank(bank, subBankID)
	node := models.SubBank{
		ID:       primitive.NewObjectID().Hex(),
		Name:     name,
		ParentID: parent.ID,
		ExamIDs:  append([]string(nil), examIDs...),
	}
	parent.SubBanks = append(parent.SubBanks, node)
	if err := s.Repo.SaveTree(ctx, bank); err != nil {
		return nil, err
	}
	return &node, nil
}

// AddExamToSubBank adds an exam reference to the node addressed by path,
// with set semantics.
func (s *BankService) AddExamToSubBank(ctx context.Context, bankID string, path []string, examID string) (*models.SubBank, error) {
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil || bank == nil {
		return nil, err
	}
	node := banktree.ResolvePath(bank, path)
	if node == nil {
		return nil, nil
	}
	if banktree.AddExam(node, examID) {
		if err := s.Repo.SaveTree(ctx, bank); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// RemoveExamFromSubBank drops the exam reference from the node addressed
// by path and cascade-deletes the examination document itself. An exam
// belongs to exactly one bank slot, so removing the reference destroys
// the exam; schedules are unaffected because they snapshot questions.
// Deleting the document is best-effort and never blocks the bank update.
func (s *BankService) RemoveExamFromSubBank(ctx context.Context, bankID string, path []string, examID string) (*models.SubBank, error) {
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil || bank == nil {
		return nil, err
	}
	node := banktree.ResolvePath(bank, path)
	if node == nil {
		return nil, nil
	}
	if banktree.RemoveExam(node, examID) {
		if err := s.Repo.SaveTree(ctx, bank); err != nil {
			return nil, err
		}
		if err := s.ExamRepo.Delete(ctx, examID); err != nil {
			log.Printf("failed to delete examination %s during removal from bank %s: %v", examID, bankID, err)
		}
	}
	return node, nil
}

// RemoveExamFromAllBanks sweeps every bank in two phases: top-level
// exam lists first, then the full sub-bank trees. Banks that changed are
// persisted whole.
func (s *BankService) RemoveExamFromAllBanks(ctx context.Context, examID string) error {
	banks, err := s.Repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range banks {
		if banktree.RemoveExamEverywhere(&banks[i], examID) {
			if err := s.Repo.SaveTree(ctx, &banks[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteSubBank removes the node and its whole subtree, cascade-deleting
// every examination referenced anywhere below it. Individual deletion
// failures are logged and skipped.
func (s *BankService) DeleteSubBank(ctx context.Context, bankID string, path []string, subBankID string) (*models.SubBank, error) {
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil || bank == nil {
		return nil, err
	}
	removed, ok := banktree.RemoveSubBank(bank, path, subBankID)
	if !ok {
		return nil, nil
	}
	s.cascadeDeleteExams(ctx, banktree.CollectExamIDs(removed))
	if err := s.Repo.SaveTree(ctx, bank); err != nil {
		return nil, err
	}
	return removed, nil
}

// DeleteBank cascade-deletes every examination referenced anywhere in the
// bank, removes the bank document and pulls its id off the owning
// instructor. Returns nil when the bank or instructor does not exist.
func (s *BankService) DeleteBank(ctx context.Context, id, instructorID string) (*models.Bank, error) {
	bank, err := s.Repo.FindByID(ctx, id)
	if err != nil || bank == nil {
		return nil, err
	}
	instructor, err := s.UserRepo.FindByID(ctx, instructorID)
	if err != nil || instructor == nil {
		return nil, err
	}
	s.cascadeDeleteExams(ctx, banktree.CollectBankExamIDs(bank))
	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := s.UserRepo.PullBank(ctx, instructorID, id); err != nil {
		return nil, err
	}
	return bank, nil
}

// RenameSubBank renames the first node matching subBankID.
func (s *BankService) RenameSubBank(ctx context.Context, bankID, subBankID, name string) (*models.Bank, error) {
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil || bank == nil {
		return nil, err
	}
	if !banktree.Rename(bank, subBankID, name) {
		return nil, nil
	}
	if err := s.Repo.SaveTree(ctx, bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// UpdateSubBank overwrites the node's name and exam list in place.
func (s *BankService) UpdateSubBank(ctx context.Context, bankID, subBankID, name string, examIDs []string) (*models.SubBank, error) {
	bank, err := s.Repo.FindByID(ctx, bankID)
	if err != nil || bank == nil {
		return nil, err
	}
	node, _ := banktree.FindSubBank(bank, subBankID)
	if node == nil {
		return nil, nil
	}
	if name != "" {
		node.Name = name
	}
	if examIDs != nil {
		node.ExamIDs = append([]string(nil), examIDs...)
	}
	if err := s.Repo.SaveTree(ctx, bank); err != nil {
		return nil, err
	}
	return node, nil
}

// cascadeDeleteExams attempts to delete every examination document in
// ids, logging failures and continuing. Partial failure leaves orphaned
// documents; there is no rollback.
func (s *BankService) cascadeDeleteExams(ctx context.Context, ids []string) {
	for _, examID := range ids {
		if err := s.ExamRepo.Delete(ctx, examID); err != nil {
			log.Printf("cascade delete: failed to delete examination %s: %v", examID, err)
		}
	}
}
