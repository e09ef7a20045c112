package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ClientService manages the OAuth2 clients allowed to call the API
type ClientService interface {
	// RegisterClient stores a client with its secret hashed
	RegisterClient(ctx context.Context, client *models.OAuthClient, plainSecret string) error
	GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error)
	GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error)
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) RegisterClient(ctx context.Context, client *models.OAuthClient, plainSecret string) error {
	if plainSecret == "" {
		return errors.New("client secret must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainSecret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	client.Secret = string(hash)
	return s.db.WithContext(ctx).Create(client).Error
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *clientService) GetClientsByUserID(ctx context.Context, userID uint) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}
