package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/models"
	"github.com/fidias-dev/technician-agenda/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrNoFiles      = errors.New("no files uploaded")
	ErrFileNotFound = errors.New("file not found")
)

// FileService manages work-order attachments: binaries on the uploads tree
// plus their WorkFile rows, with cache invalidation after every mutation.
type FileService struct {
	db      *gorm.DB
	storage *storage.Local
	works   *WorkService
}

func NewFileService(db *gorm.DB, store *storage.Local, works *WorkService) *FileService {
	return &FileService{db: db, storage: store, works: works}
}

// Upload stores each non-empty file and persists a row per stored binary.
// The batch is fire-and-continue: files completed before a failure stay
// persisted and are returned alongside the error.
func (s *FileService) Upload(ctx context.Context, userID, workID uint, files []*multipart.FileHeader) ([]models.WorkFile, error) {
	if !s.workOwned(userID, workID) {
		return nil, ErrWorkNotFound
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	uploaded := make([]models.WorkFile, 0, len(files))
	defer func() {
		if len(uploaded) > 0 {
			s.works.Invalidate(ctx, userID)
		}
	}()

	for _, fh := range files {
		if fh.Size == 0 {
			continue
		}

		src, err := fh.Open()
		if err != nil {
			return uploaded, fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
		}

		path, err := s.storage.Store("", fh.Filename, src)
		src.Close()
		if err != nil {
			return uploaded, fmt.Errorf("failed to store %q: %w", fh.Filename, err)
		}

		workFile := models.WorkFile{
			FileName: fh.Filename,
			FilePath: path,
			FileType: mediaKind(fh.Header.Get("Content-Type")),
			WorkID:   workID,
		}
		if err := s.db.Create(&workFile).Error; err != nil {
			return uploaded, fmt.Errorf("failed to persist %q: %w", fh.Filename, err)
		}

		uploaded = append(uploaded, workFile)
	}

	if len(uploaded) == 0 {
		return nil, ErrNoFiles
	}
	return uploaded, nil
}

// ListForWork returns the attachments of one of the caller's works.
func (s *FileService) ListForWork(userID, workID uint) ([]models.WorkFile, error) {
	if !s.workOwned(userID, workID) {
		return nil, ErrWorkNotFound
	}

	var files []models.WorkFile
	if err := s.db.Where("work_id = ?", workID).Find(&files).Error; err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// Delete removes the binary (tolerating one already gone) and then the row.
func (s *FileService) Delete(ctx context.Context, userID, fileID uint) error {
	var file models.WorkFile
	err := s.db.
		Joins("JOIN works ON works.id = work_files.work_id").
		Where("work_files.id = ? AND works.user_id = ?", fileID, userID).
		First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	if err := s.storage.Remove(file.FilePath); err != nil {
		slog.Warn("failed to remove attachment binary", "path", file.FilePath, "error", err)
	}

	if err := s.db.Delete(&file).Error; err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.works.Invalidate(ctx, userID)
	return nil
}

func (s *FileService) workOwned(userID, workID uint) bool {
	var count int64
	s.db.Model(&models.Work{}).
		Scopes(auth.OwnedBy(userID)).
		Where("id = ?", workID).
		Count(&count)
	return count > 0
}

// mediaKind maps the declared content type to the stored media kind.
func mediaKind(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return "image"
	}
	return "video"
}
