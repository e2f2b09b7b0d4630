package handlers

import (
	"errors"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/fidias-dev/technician-agenda/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DirectionHandler struct {
	directionService *services.DirectionService
}

func NewDirectionHandler(directionService *services.DirectionService) *DirectionHandler {
	return &DirectionHandler{directionService: directionService}
}

func (h *DirectionHandler) ListForClient(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	clientID, err := c.ParamsInt("clientId")
	if err != nil {
		return badRequest(c, "Invalid client id")
	}

	directions, err := h.directionService.ListForClient(userID, uint(clientID))
	if err != nil {
		if errors.Is(err, services.ErrUnknownClient) {
			return notFound(c, "Client not found")
		}
		return internalError(c)
	}
	return c.JSON(directions)
}

func (h *DirectionHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.DirectionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	direction, err := h.directionService.Create(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownClient):
			return badRequest(c, "Client does not exist")
		case errors.Is(err, services.ErrUnknownRegion):
			return badRequest(c, "Unknown region")
		case errors.Is(err, services.ErrUnknownComuna):
			return badRequest(c, "Comuna does not belong to region")
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(direction)
}
