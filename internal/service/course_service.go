package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

type CourseService struct {
	Repo *repository.CourseRepository
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.Repo.FindAll(ctx)
}

func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	return s.Repo.Create(ctx, course)
}

func (s *CourseService) UpdateCourse(ctx context.Context, id string, update map[string]any) error {
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *CourseService) EnrollStudent(ctx context.Context, courseID, studentID string) error {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return fmt.Errorf("course %s not found", courseID)
	}
	return s.Repo.EnrollStudent(ctx, courseID, studentID)
}

func (s *CourseService) UnenrollStudent(ctx context.Context, courseID, studentID string) error {
	return s.Repo.UnenrollStudent(ctx, courseID, studentID)
}

// AddGroup appends a named group to the course.
func (s *CourseService) AddGroup(ctx context.Context, courseID, name string) (*models.Group, error) {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}
	group := models.Group{ID: newID(), Name: name}
	course.Groups = append(course.Groups, group)
	if err := s.Repo.Update(ctx, courseID, bson.M{"groups": course.Groups}); err != nil {
		return nil, err
	}
	return &group, nil
}

// AddStudentToGroup adds a student to a group with set semantics.
func (s *CourseService) AddStudentToGroup(ctx context.Context, courseID, groupID, studentID string) error {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return fmt.Errorf("course %s not found", courseID)
	}
	for i := range course.Groups {
		if course.Groups[i].ID != groupID {
			continue
		}
		for _, id := range course.Groups[i].StudentIDs {
			if id == studentID {
				return nil
			}
		}
		course.Groups[i].StudentIDs = append(course.Groups[i].StudentIDs, studentID)
		return s.Repo.Update(ctx, courseID, bson.M{"groups": course.Groups})
	}
	return fmt.Errorf("group %s not found in course %s", groupID, courseID)
}
