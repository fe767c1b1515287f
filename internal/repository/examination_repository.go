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

type ExaminationRepository struct {
	Col *mongo.Collection
}

func NewExaminationRepository(db *mongo.Database) *ExaminationRepository {
	return &ExaminationRepository{Col: db.Collection("examinations")}
}

func (r *ExaminationRepository) FindByID(ctx context.Context, id string) (*models.Examination, error) {
	var exam models.Examination
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&exam)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *ExaminationRepository) FindByInstructor(ctx context.Context, instructorID string) ([]models.Examination, error) {
	cur, err := r.Col.Find(ctx, bson.M{"instructor_id": instructorID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var exams []models.Examination
	for cur.Next(ctx) {
		var e models.Examination
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, nil
}

func (r *ExaminationRepository) Create(ctx context.Context, exam *models.Examination) error {
	if exam.ID == "" {
		exam.ID = primitive.NewObjectID().Hex()
	}
	exam.CreatedAt = time.Now()
	exam.UpdatedAt = exam.CreatedAt
	_, err := r.Col.InsertOne(ctx, exam)
	return err
}

func (r *ExaminationRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *ExaminationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
