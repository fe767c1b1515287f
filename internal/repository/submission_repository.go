package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"exam-service/internal/models"
)

type SubmissionRepository struct {
	Col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{Col: db.Collection("exam_submissions")}
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*models.ExamSubmission, error) {
	var sub models.ExamSubmission
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// CountAttempts returns how many submissions already exist for the
// (schedule, student) pair.
func (r *SubmissionRepository) CountAttempts(ctx context.Context, scheduleID, studentID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"schedule_id": scheduleID, "student_id": studentID})
}

func (r *SubmissionRepository) FindBySchedule(ctx context.Context, scheduleID string) ([]models.ExamSubmission, error) {
	return r.findFilter(ctx, bson.M{"schedule_id": scheduleID})
}

func (r *SubmissionRepository) FindByStudent(ctx context.Context, studentID string) ([]models.ExamSubmission, error) {
	return r.findFilter(ctx, bson.M{"student_id": studentID})
}

func (r *SubmissionRepository) findFilter(ctx context.Context, filter bson.M) ([]models.ExamSubmission, error) {
	opts := options.Find().SetSort(bson.M{"submitted_at": -1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var subs []models.ExamSubmission
	for cur.Next(ctx) {
		var s models.ExamSubmission
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

func (r *SubmissionRepository) Create(ctx context.Context, sub *models.ExamSubmission) error {
	if sub.ID == "" {
		sub.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, sub)
	return err
}

func (r *SubmissionRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteBySchedule removes every submission attached to a schedule,
// used when the schedule itself is deleted.
func (r *SubmissionRepository) DeleteBySchedule(ctx context.Context, scheduleID string) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, bson.M{"schedule_id": scheduleID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
