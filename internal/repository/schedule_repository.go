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

type ScheduleRepository struct {
	Col *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{Col: db.Collection("examination_schedules")}
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*models.ExaminationSchedule, error) {
	var schedule models.ExaminationSchedule
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *ScheduleRepository) FindByInstructor(ctx context.Context, instructorID string) ([]models.ExaminationSchedule, error) {
	return r.findFilter(ctx, bson.M{"instructor_id": instructorID})
}

func (r *ScheduleRepository) FindByExamination(ctx context.Context, examinationID string) ([]models.ExaminationSchedule, error) {
	return r.findFilter(ctx, bson.M{"examination_id": examinationID})
}

func (r *ScheduleRepository) findFilter(ctx context.Context, filter bson.M) ([]models.ExaminationSchedule, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var schedules []models.ExaminationSchedule
	for cur.Next(ctx) {
		var s models.ExaminationSchedule
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.ExaminationSchedule) error {
	if schedule.ID == "" {
		schedule.ID = primitive.NewObjectID().Hex()
	}
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = schedule.CreatedAt
	_, err := r.Col.InsertOne(ctx, schedule)
	return err
}

func (r *ScheduleRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
