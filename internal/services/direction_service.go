package services

import (
	"errors"
	"fmt"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/catalog"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/fidias-dev/technician-agenda/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUnknownClient = errors.New("client not found")
	ErrUnknownRegion = errors.New("unknown region")
	ErrUnknownComuna = errors.New("comuna does not belong to the region")
)

type DirectionService struct {
	db *gorm.DB
}

func NewDirectionService(db *gorm.DB) *DirectionService {
	return &DirectionService{db: db}
}

// ListForClient returns the addresses of one of the caller's clients.
func (s *DirectionService) ListForClient(userID, clientID uint) ([]models.Direction, error) {
	if !s.clientOwned(userID, clientID) {
		return nil, ErrUnknownClient
	}

	var directions []models.Direction
	if err := s.db.Where("client_id = ?", clientID).Find(&directions).Error; err != nil {
		return nil, fmt.Errorf("failed to list directions: %w", err)
	}
	return directions, nil
}

func (s *DirectionService) Create(userID uint, req *dto.DirectionRequest) (*models.Direction, error) {
	if !s.clientOwned(userID, req.ClientID) {
		return nil, ErrUnknownClient
	}
	if !catalog.ValidRegion(req.Region) {
		return nil, ErrUnknownRegion
	}
	if !catalog.ValidComuna(req.Region, req.Comuna) {
		return nil, ErrUnknownComuna
	}

	direction := models.Direction{
		Street:    req.Street,
		Region:    req.Region,
		Comuna:    req.Comuna,
		Reference: req.Reference,
		ClientID:  req.ClientID,
	}
	if err := s.db.Create(&direction).Error; err != nil {
		return nil, fmt.Errorf("failed to create direction: %w", err)
	}
	return &direction, nil
}

func (s *DirectionService) clientOwned(userID, clientID uint) bool {
	var count int64
	s.db.Model(&models.Client{}).
		Scopes(auth.OwnedBy(userID)).
		Where("id = ?", clientID).
		Count(&count)
	return count > 0
}
