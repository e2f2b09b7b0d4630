package handlers

import (
	"errors"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/fidias-dev/technician-agenda/internal/services"
	"github.com/gofiber/fiber/v2"
)

type WorkHandler struct {
	workService *services.WorkService
}

func NewWorkHandler(workService *services.WorkService) *WorkHandler {
	return &WorkHandler{workService: workService}
}

func (h *WorkHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	works, err := h.workService.List(c.Context(), userID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(works)
}

func (h *WorkHandler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid work id")
	}

	work, err := h.workService.Get(userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrWorkNotFound) {
			return notFound(c, "Work not found")
		}
		return internalError(c)
	}
	return c.JSON(work)
}

func (h *WorkHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.WorkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	work, err := h.workService.Create(c.Context(), userID, &req)
	if err != nil {
		if isWorkValidation(err) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(work)
}

func (h *WorkHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid work id")
	}

	var req dto.WorkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	work, err := h.workService.Update(c.Context(), userID, uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWorkNotFound):
			return notFound(c, "Work not found")
		case errors.Is(err, services.ErrVersionConflict):
			return conflict(c, err.Error())
		}
		if isWorkValidation(err) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}
	return c.JSON(work)
}

func (h *WorkHandler) SetCompleted(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid work id")
	}

	var patch dto.StatusPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	work, err := h.workService.SetCompleted(c.Context(), userID, uint(id), patch.Completed)
	if err != nil {
		if errors.Is(err, services.ErrWorkNotFound) {
			return notFound(c, "Work not found")
		}
		return internalError(c)
	}
	return c.JSON(work)
}

func (h *WorkHandler) SetTechnicianPaid(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid work id")
	}

	var patch dto.TechnicianPaymentPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	work, err := h.workService.SetTechnicianPaid(c.Context(), userID, uint(id), patch.Paid)
	if err != nil {
		if errors.Is(err, services.ErrWorkNotFound) {
			return notFound(c, "Work not found")
		}
		return internalError(c)
	}
	return c.JSON(work)
}

func (h *WorkHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid work id")
	}

	if err := h.workService.Delete(c.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, services.ErrWorkNotFound) {
			return notFound(c, "Work not found")
		}
		return internalError(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// isWorkValidation reports whether the error is a caller mistake rather
// than a store failure.
func isWorkValidation(err error) bool {
	return errors.Is(err, services.ErrUnknownClient) ||
		errors.Is(err, services.ErrUnknownDirection) ||
		errors.Is(err, services.ErrUnknownCategory) ||
		errors.Is(err, services.ErrUnknownSubcategory) ||
		errors.Is(err, services.ErrUnknownTechnician) ||
		errors.Is(err, services.ErrNegativeAmount) ||
		errors.Is(err, services.ErrInvalidPayment)
}
