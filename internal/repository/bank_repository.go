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

type BankRepository struct {
	Col *mongo.Collection
}

func NewBankRepository(db *mongo.Database) *BankRepository {
	return &BankRepository{Col: db.Collection("banks")}
}

// FindByID returns nil without error when no bank matches.
func (r *BankRepository) FindByID(ctx context.Context, id string) (*models.Bank, error) {
	var bank models.Bank
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&bank)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *BankRepository) FindAll(ctx context.Context) ([]models.Bank, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var banks []models.Bank
	for cur.Next(ctx) {
		var b models.Bank
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		banks = append(banks, b)
	}
	return banks, nil
}

func (r *BankRepository) FindByInstructor(ctx context.Context, instructorID string) ([]models.Bank, error) {
	cur, err := r.Col.Find(ctx, bson.M{"instructor_id": instructorID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var banks []models.Bank
	for cur.Next(ctx) {
		var b models.Bank
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		banks = append(banks, b)
	}
	return banks, nil
}

func (r *BankRepository) Create(ctx context.Context, bank *models.Bank) error {
	if bank.ID == "" {
		bank.ID = primitive.NewObjectID().Hex()
	}
	bank.CreatedAt = time.Now()
	bank.UpdatedAt = bank.CreatedAt
	_, err := r.Col.InsertOne(ctx, bank)
	return err
}

// SaveTree writes the whole sub-bank tree and top-level exam list back in
// one update. Bank mutations always round-trip through the full aggregate,
// so concurrent writers to the same bank are last-write-wins.
func (r *BankRepository) SaveTree(ctx context.Context, bank *models.Bank) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": bank.ID}, bson.M{"$set": bson.M{
		"sub_banks":  bank.SubBanks,
		"exam_ids":   bank.ExamIDs,
		"updated_at": time.Now(),
	}})
	return err
}

func (r *BankRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *BankRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
