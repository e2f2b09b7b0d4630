package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/fidias-dev/technician-agenda/internal/models"
	"github.com/fidias-dev/technician-agenda/internal/storage"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrDuplicateDocument  = errors.New("a technician with that RUT or passport already exists")
)

// PhotoUpload carries an incoming technician photo without tying the service
// to the HTTP layer.
type PhotoUpload struct {
	Name    string
	Content io.Reader
}

type TechnicianService struct {
	db      *gorm.DB
	storage *storage.Local
	// shared makes technicians a global directory instead of per-user rows.
	shared bool
}

func NewTechnicianService(db *gorm.DB, store *storage.Local, shared bool) *TechnicianService {
	return &TechnicianService{db: db, storage: store, shared: shared}
}

func (s *TechnicianService) scoped(userID uint) *gorm.DB {
	if s.shared {
		return s.db
	}
	return s.db.Scopes(auth.OwnedBy(userID))
}

func (s *TechnicianService) List(userID uint) ([]models.Technician, error) {
	var technicians []models.Technician
	err := s.scoped(userID).Order("surname, name").Find(&technicians).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	return technicians, nil
}

func (s *TechnicianService) Get(userID, id uint) (*models.Technician, error) {
	var technician models.Technician
	err := s.scoped(userID).First(&technician, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTechnicianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}
	return &technician, nil
}

// Summary returns the lightweight projection used by assignment pickers.
func (s *TechnicianService) Summary(userID uint) ([]dto.TechnicianSummary, error) {
	technicians, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TechnicianSummary, 0, len(technicians))
	for _, t := range technicians {
		out = append(out, dto.TechnicianSummary{
			ID:         t.ID,
			Name:       t.Name,
			Surname:    t.Surname,
			DocumentID: t.DocumentID,
			FullName:   t.Name + " " + t.Surname,
		})
	}
	return out, nil
}

func (s *TechnicianService) Create(userID uint, in *dto.TechnicianInput, photo *PhotoUpload) (*models.Technician, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if s.documentTaken(in.DocumentID, 0) {
		return nil, ErrDuplicateDocument
	}

	technician := models.Technician{
		Name:           in.Name,
		Surname:        in.Surname,
		Nationality:    in.Nationality,
		DocumentID:     in.DocumentID,
		BirthDate:      datatypes.Date(in.BirthDate),
		Region:         in.Region,
		Comuna:         in.Comuna,
		Address:        in.Address,
		Email:          in.Email,
		Phone:          in.Phone,
		AltPhone:       in.AltPhone,
		VehiclePlate:   in.VehiclePlate,
		Certifications: in.Certifications,
		UserID:         userID,
	}

	if photo != nil {
		path, err := s.storage.Store("technicians", photo.Name, photo.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to store photo: %w", err)
		}
		technician.PhotoPath = &path
	}

	if err := s.db.Create(&technician).Error; err != nil {
		return nil, fmt.Errorf("failed to create technician: %w", err)
	}
	return &technician, nil
}

// Update replaces every field; a new photo deletes the previous binary first
// so a technician only ever has one photo on disk.
func (s *TechnicianService) Update(userID, id uint, in *dto.TechnicianInput, photo *PhotoUpload) (*models.Technician, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var technician models.Technician
	err := s.scoped(userID).First(&technician, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTechnicianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load technician: %w", err)
	}

	if s.documentTaken(in.DocumentID, technician.ID) {
		return nil, ErrDuplicateDocument
	}

	technician.Name = in.Name
	technician.Surname = in.Surname
	technician.Nationality = in.Nationality
	technician.DocumentID = in.DocumentID
	technician.BirthDate = datatypes.Date(in.BirthDate)
	technician.Region = in.Region
	technician.Comuna = in.Comuna
	technician.Address = in.Address
	technician.Email = in.Email
	technician.Phone = in.Phone
	technician.AltPhone = in.AltPhone
	technician.VehiclePlate = in.VehiclePlate
	technician.Certifications = in.Certifications

	if photo != nil {
		if technician.PhotoPath != nil {
			if err := s.storage.Remove(*technician.PhotoPath); err != nil {
				slog.Warn("failed to remove old technician photo", "path", *technician.PhotoPath, "error", err)
			}
		}
		path, err := s.storage.Store("technicians", photo.Name, photo.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to store photo: %w", err)
		}
		technician.PhotoPath = &path
	}

	if err := s.db.Save(&technician).Error; err != nil {
		return nil, fmt.Errorf("failed to update technician: %w", err)
	}
	return &technician, nil
}

// Delete removes the technician and its photo binary. Assigned works keep
// existing with their technician reference nulled by the store.
func (s *TechnicianService) Delete(userID, id uint) error {
	var technician models.Technician
	err := s.scoped(userID).First(&technician, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTechnicianNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load technician: %w", err)
	}

	if technician.PhotoPath != nil {
		if err := s.storage.Remove(*technician.PhotoPath); err != nil {
			slog.Warn("failed to remove technician photo", "path", *technician.PhotoPath, "error", err)
		}
	}

	if err := s.db.Delete(&technician).Error; err != nil {
		return fmt.Errorf("failed to delete technician: %w", err)
	}
	return nil
}

func (s *TechnicianService) documentTaken(documentID string, excludeID uint) bool {
	var count int64
	s.db.Model(&models.Technician{}).
		Where("document_id = ? AND id <> ?", documentID, excludeID).
		Count(&count)
	return count > 0
}
