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

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	user.CreatedAt = time.Now()
	_, err := r.Col.InsertOne(ctx, user)
	return err
}

func (r *UserRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

// AddBank appends a bank reference to an instructor's bank list.
func (r *UserRepository) AddBank(ctx context.Context, userID, bankID string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$addToSet": bson.M{"bank_ids": bankID}})
	return err
}

// PullBank removes a bank reference from an instructor's bank list.
func (r *UserRepository) PullBank(ctx context.Context, userID, bankID string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$pull": bson.M{"bank_ids": bankID}})
	return err
}
