package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/cache"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/fidias-dev/technician-agenda/internal/models"
	"github.com/fidias-dev/technician-agenda/internal/storage"
	"gorm.io/gorm"
)

const workListTTL = 5 * time.Minute

var (
	ErrWorkNotFound       = errors.New("work not found")
	ErrUnknownDirection   = errors.New("direction not found")
	ErrUnknownCategory    = errors.New("job category not found")
	ErrUnknownSubcategory = errors.New("job subcategory not found")
	ErrUnknownTechnician  = errors.New("technician not found")
	ErrNegativeAmount     = errors.New("money fields must not be negative")
	ErrInvalidPayment     = errors.New("invalid payment status")
	ErrVersionConflict    = errors.New("work was modified concurrently")
)

// WorkService owns the work-order CRUD, the referential validation in front
// of every write and the per-owner cache-aside list path. The cache is
// advisory: every read error degrades to the store and every mutation
// invalidates before returning.
type WorkService struct {
	db      *gorm.DB
	cache   cache.Cache
	storage *storage.Local
	// technicians validated globally when the directory is shared
	techsShared bool
}

func NewWorkService(db *gorm.DB, c cache.Cache, store *storage.Local, techsShared bool) *WorkService {
	return &WorkService{db: db, cache: c, storage: store, techsShared: techsShared}
}

func workListKey(userID uint) string {
	return fmt.Sprintf("works:user:%d", userID)
}

func (s *WorkService) preloaded() *gorm.DB {
	return s.db.
		Preload("Client").
		Preload("Direction").
		Preload("JobCategory").
		Preload("JobSubcategory").
		Preload("Technician").
		Preload("Files")
}

// List serves the caller's work orders newest first, from the cache when the
// entry is populated.
func (s *WorkService) List(ctx context.Context, userID uint) ([]dto.WorkResponse, error) {
	key := workListKey(userID)

	if payload, err := s.cache.Get(ctx, key); err == nil {
		var works []dto.WorkResponse
		if err := json.Unmarshal(payload, &works); err == nil {
			return works, nil
		}
		slog.Warn("discarding undecodable work list cache entry", "key", key, "error", err)
	} else if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("work list cache read failed, falling back to store", "error", err)
	}

	var rows []models.Work
	err := s.preloaded().
		Scopes(auth.OwnedBy(userID)).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}

	works := make([]dto.WorkResponse, 0, len(rows))
	for i := range rows {
		works = append(works, dto.NewWorkResponse(&rows[i]))
	}

	if payload, err := json.Marshal(works); err == nil {
		if err := s.cache.Set(ctx, key, payload, workListTTL); err != nil {
			slog.Warn("work list cache write failed", "error", err)
		}
	}

	return works, nil
}

func (s *WorkService) Get(userID, id uint) (*dto.WorkResponse, error) {
	var work models.Work
	err := s.preloaded().
		Scopes(auth.OwnedBy(userID)).
		First(&work, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWorkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work: %w", err)
	}

	resp := dto.NewWorkResponse(&work)
	return &resp, nil
}

func (s *WorkService) Create(ctx context.Context, userID uint, req *dto.WorkRequest) (*dto.WorkResponse, error) {
	if err := s.validate(userID, req, nil); err != nil {
		return nil, err
	}

	work := models.Work{
		JobCategoryID:    req.JobCategoryID,
		JobSubcategoryID: req.JobSubcategoryID,
		Details:          req.Details,
		Date:             req.Date,
		Completed:        req.Completed,
		Cost:             req.Cost,
		AmountToCharge:   req.AmountToCharge,
		PaymentStatus:    req.PaymentStatus,
		ClientID:         req.ClientID,
		DirectionID:      req.DirectionID,
		TechnicianID:     req.TechnicianID,
		TechnicianFee:    req.TechnicianFee,
		TechnicianPaid:   req.TechnicianPaid,
		UserID:           userID,
		Version:          1,
	}
	if work.PaymentStatus == "" {
		work.PaymentStatus = models.PaymentPending
	}

	if err := s.db.Create(&work).Error; err != nil {
		return nil, fmt.Errorf("failed to create work: %w", err)
	}

	s.invalidate(ctx, userID)

	return s.Get(userID, work.ID)
}

// Update replaces the mutable fields of a work. Changed references are
// re-validated; the owner id never changes. A non-zero request version that
// does not match the stored row fails with ErrVersionConflict.
func (s *WorkService) Update(ctx context.Context, userID, id uint, req *dto.WorkRequest) (*dto.WorkResponse, error) {
	var work models.Work
	err := s.db.Scopes(auth.OwnedBy(userID)).First(&work, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWorkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load work: %w", err)
	}

	if req.Version != 0 && req.Version != work.Version {
		return nil, ErrVersionConflict
	}

	if err := s.validate(userID, req, &work); err != nil {
		return nil, err
	}

	work.JobCategoryID = req.JobCategoryID
	work.JobSubcategoryID = req.JobSubcategoryID
	work.Details = req.Details
	work.Date = req.Date
	work.Completed = req.Completed
	work.Cost = req.Cost
	work.AmountToCharge = req.AmountToCharge
	work.PaymentStatus = req.PaymentStatus
	work.ClientID = req.ClientID
	work.DirectionID = req.DirectionID
	work.TechnicianID = req.TechnicianID
	work.TechnicianFee = req.TechnicianFee
	work.TechnicianPaid = req.TechnicianPaid
	work.Version++

	if err := s.db.Save(&work).Error; err != nil {
		return nil, fmt.Errorf("failed to update work: %w", err)
	}

	s.invalidate(ctx, userID)

	return s.Get(userID, work.ID)
}

// SetCompleted patches the completion flag.
func (s *WorkService) SetCompleted(ctx context.Context, userID, id uint, completed bool) (*dto.WorkResponse, error) {
	return s.patch(ctx, userID, id, map[string]interface{}{"completed": completed})
}

// SetTechnicianPaid patches the payment-to-technician flag.
func (s *WorkService) SetTechnicianPaid(ctx context.Context, userID, id uint, paid bool) (*dto.WorkResponse, error) {
	return s.patch(ctx, userID, id, map[string]interface{}{"technician_paid": paid})
}

func (s *WorkService) patch(ctx context.Context, userID, id uint, fields map[string]interface{}) (*dto.WorkResponse, error) {
	result := s.db.Model(&models.Work{}).
		Scopes(auth.OwnedBy(userID)).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to patch work: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrWorkNotFound
	}

	s.invalidate(ctx, userID)

	return s.Get(userID, id)
}

// Delete removes the work row together with every attachment binary; the
// WorkFile rows cascade at the store level.
func (s *WorkService) Delete(ctx context.Context, userID, id uint) error {
	var work models.Work
	err := s.db.Scopes(auth.OwnedBy(userID)).
		Preload("Files").
		First(&work, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrWorkNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load work: %w", err)
	}

	for _, f := range work.Files {
		if err := s.storage.Remove(f.FilePath); err != nil {
			slog.Warn("failed to remove attachment binary", "path", f.FilePath, "error", err)
		}
	}

	if err := s.db.Select("Files").Delete(&work).Error; err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

// Invalidate drops the caller's cached work list. The file service calls
// this after attachment mutations.
func (s *WorkService) Invalidate(ctx context.Context, userID uint) {
	s.invalidate(ctx, userID)
}

func (s *WorkService) invalidate(ctx context.Context, userID uint) {
	if err := s.cache.Delete(ctx, workListKey(userID)); err != nil {
		// The TTL bounds how long the stale entry can survive.
		slog.Warn("work list cache invalidation failed", "user_id", userID, "error", err)
	}
}

// validate checks money bounds and every referenced row. On update only the
// references that changed are re-checked.
func (s *WorkService) validate(userID uint, req *dto.WorkRequest, current *models.Work) error {
	if req.Cost.IsNegative() || req.AmountToCharge.IsNegative() || req.TechnicianFee.IsNegative() {
		return ErrNegativeAmount
	}
	if req.PaymentStatus != "" && !req.PaymentStatus.Valid() {
		return ErrInvalidPayment
	}

	if current == nil || current.ClientID != req.ClientID {
		if !s.exists(s.db.Model(&models.Client{}).Scopes(auth.OwnedBy(userID)).Where("id = ?", req.ClientID)) {
			return ErrUnknownClient
		}
	}
	if current == nil || current.DirectionID != req.DirectionID {
		q := s.db.Model(&models.Direction{}).
			Joins("JOIN clients ON clients.id = directions.client_id").
			Where("directions.id = ? AND clients.user_id = ?", req.DirectionID, userID)
		if !s.exists(q) {
			return ErrUnknownDirection
		}
	}
	if current == nil || current.JobCategoryID != req.JobCategoryID {
		if !s.exists(s.db.Model(&models.JobCategory{}).Where("id = ?", req.JobCategoryID)) {
			return ErrUnknownCategory
		}
	}
	if current == nil || current.JobSubcategoryID != req.JobSubcategoryID {
		if !s.exists(s.db.Model(&models.JobSubcategory{}).Where("id = ?", req.JobSubcategoryID)) {
			return ErrUnknownSubcategory
		}
	}
	if req.TechnicianID != nil {
		q := s.db.Model(&models.Technician{}).Where("id = ?", *req.TechnicianID)
		if !s.techsShared {
			q = q.Scopes(auth.OwnedBy(userID))
		}
		if !s.exists(q) {
			return ErrUnknownTechnician
		}
	}
	return nil
}

func (s *WorkService) exists(q *gorm.DB) bool {
	var count int64
	q.Count(&count)
	return count > 0
}
