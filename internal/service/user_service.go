package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

// Register creates a user with a bcrypt-hashed password. Usernames are
// unique.
func (s *UserService) Register(ctx context.Context, username, email, password, fullName string, role models.Role) (*models.User, error) {
	existing, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s already taken", username)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and returns the user on success.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.FindByID(ctx, id)
}
