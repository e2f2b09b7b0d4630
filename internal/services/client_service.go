package services

import (
	"errors"
	"fmt"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/fidias-dev/technician-agenda/internal/models"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

// List returns the caller's active clients with their addresses.
func (s *ClientService) List(userID uint) ([]models.Client, error) {
	var clients []models.Client
	err := s.db.Scopes(auth.OwnedBy(userID)).
		Where("active = true").
		Preload("Directions").
		Order("surname, name").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) Get(userID, id uint) (*models.Client, error) {
	var client models.Client
	err := s.db.Scopes(auth.OwnedBy(userID)).
		Where("active = true").
		Preload("Directions").
		First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// Create stamps the caller as owner regardless of any client-supplied value.
func (s *ClientService) Create(userID uint, req *dto.ClientRequest) (*models.Client, error) {
	client := models.Client{
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
		Email:   req.Email,
		Active:  true,
		UserID:  userID,
	}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

// Update changes contact fields only; the owner id is immutable.
func (s *ClientService) Update(userID, id uint, req *dto.ClientRequest) (*models.Client, error) {
	var client models.Client
	err := s.db.Scopes(auth.OwnedBy(userID)).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	client.Name = req.Name
	client.Surname = req.Surname
	client.Phone = req.Phone
	client.Email = req.Email

	if err := s.db.Save(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return &client, nil
}

// Delete soft-deletes by flipping the active flag.
func (s *ClientService) Delete(userID, id uint) error {
	result := s.db.Model(&models.Client{}).
		Scopes(auth.OwnedBy(userID)).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Restore reactivates a soft-deleted client.
func (s *ClientService) Restore(userID, id uint) (*models.Client, error) {
	var client models.Client
	err := s.db.Scopes(auth.OwnedBy(userID)).
		Where("active = false").
		First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	client.Active = true
	if err := s.db.Save(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to restore client: %w", err)
	}
	return &client, nil
}
