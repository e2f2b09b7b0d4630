package handlers

import (
	"errors"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/fidias-dev/technician-agenda/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	clients, err := h.clientService.List(userID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(clients)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid client id")
	}

	client, err := h.clientService.Get(userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return notFound(c, "Client not found")
		}
		return internalError(c)
	}
	return c.JSON(client)
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Create(userID, &req)
	if err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid client id")
	}

	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Update(userID, uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return notFound(c, "Client not found")
		}
		return internalError(c)
	}
	return c.JSON(client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid client id")
	}

	if err := h.clientService.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return notFound(c, "Client not found")
		}
		return internalError(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ClientHandler) Restore(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid client id")
	}

	client, err := h.clientService.Restore(userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			return notFound(c, "Client not found")
		}
		return internalError(c)
	}
	return c.JSON(client)
}
