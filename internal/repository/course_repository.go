package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"exam-service/internal/models"
)

type CourseRepository struct {
	Col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{Col: db.Collection("courses")}
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]models.Course, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var courses []models.Course
	for cur.Next(ctx) {
		var c models.Course
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = primitive.NewObjectID().Hex()
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	_, err := r.Col.InsertOne(ctx, course)
	return err
}

func (r *CourseRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// EnrollStudent adds a student to the course roster with set semantics.
func (r *CourseRepository) EnrollStudent(ctx context.Context, courseID, studentID string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": courseID}, bson.M{"$addToSet": bson.M{"student_ids": studentID}})
	return err
}

// UnenrollStudent removes a student from the course roster.
func (r *CourseRepository) UnenrollStudent(ctx context.Context, courseID, studentID string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": courseID}, bson.M{"$pull": bson.M{"student_ids": studentID}})
	return err
}
