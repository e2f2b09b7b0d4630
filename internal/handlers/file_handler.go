package handlers

import (
	"errors"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	fileService *services.FileService
}

func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

func (h *FileHandler) Upload(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	workID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid work id")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "Expected multipart form data")
	}

	uploaded, err := h.fileService.Upload(c.Context(), userID, uint(workID), form.File["files"])
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWorkNotFound):
			return notFound(c, "Work not found")
		case errors.Is(err, services.ErrNoFiles):
			return badRequest(c, "No files in request")
		}
		// partial uploads still return what landed
		if len(uploaded) > 0 {
			return c.Status(fiber.StatusCreated).JSON(uploaded)
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(uploaded)
}

func (h *FileHandler) ListForWork(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	workID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid work id")
	}

	files, err := h.fileService.ListForWork(userID, uint(workID))
	if err != nil {
		if errors.Is(err, services.ErrWorkNotFound) {
			return notFound(c, "Work not found")
		}
		return internalError(c)
	}
	return c.JSON(files)
}

func (h *FileHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	fileID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid file id")
	}

	if err := h.fileService.Delete(c.Context(), userID, uint(fileID)); err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			return notFound(c, "File not found")
		}
		return internalError(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
