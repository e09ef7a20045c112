package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"gorm.io/gorm"
)

// UserService manages the users that own OAuth2 clients
type UserService interface {
	// EnsureUser returns the user with the email, creating it with the role when missing
	EnsureUser(ctx context.Context, email, name, role string) (*models.User, bool, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) EnsureUser(ctx context.Context, email, name, role string) (*models.User, bool, error) {
	existing, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user := &models.User{Email: email, Name: name, Role: role}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
