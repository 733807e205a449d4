package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"podium/internal/models"
	"podium/internal/repositories"
)

type UserService struct {
	Repo *repositories.UserRepository
}

func NewUserService(repo *repositories.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) Create(name, email, password string, roleID int) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
	}
	id, err := s.Repo.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = int(id)
	return user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
}

func (s *UserService) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
