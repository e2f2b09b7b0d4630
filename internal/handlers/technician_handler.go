package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	"github.com/fidias-dev/technician-agenda/internal/services"
	"github.com/gofiber/fiber/v2"
)

type TechnicianHandler struct {
	technicianService *services.TechnicianService
}

func NewTechnicianHandler(technicianService *services.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{technicianService: technicianService}
}

func (h *TechnicianHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	technicians, err := h.technicianService.List(userID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(technicians)
}

func (h *TechnicianHandler) Summary(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	summaries, err := h.technicianService.Summary(userID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(summaries)
}

func (h *TechnicianHandler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid technician id")
	}

	technician, err := h.technicianService.Get(userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTechnicianNotFound) {
			return notFound(c, "Technician not found")
		}
		return internalError(c)
	}
	return c.JSON(technician)
}

func (h *TechnicianHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	input, err := parseTechnicianForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	photo, closePhoto, err := formPhoto(c)
	if err != nil {
		return badRequest(c, "Invalid photo upload")
	}
	defer closePhoto()

	technician, err := h.technicianService.Create(userID, input, photo)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateDocument) {
			return conflict(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(technician)
}

func (h *TechnicianHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid technician id")
	}

	input, err := parseTechnicianForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	photo, closePhoto, err := formPhoto(c)
	if err != nil {
		return badRequest(c, "Invalid photo upload")
	}
	defer closePhoto()

	technician, err := h.technicianService.Update(userID, uint(id), input, photo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTechnicianNotFound):
			return notFound(c, "Technician not found")
		case errors.Is(err, services.ErrDuplicateDocument):
			return conflict(c, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(technician)
}

func (h *TechnicianHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid technician id")
	}

	if err := h.technicianService.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, services.ErrTechnicianNotFound) {
			return notFound(c, "Technician not found")
		}
		return internalError(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseTechnicianForm maps the multipart fields into the typed input. Dates
// arrive as yyyy-mm-dd from the date picker.
func parseTechnicianForm(c *fiber.Ctx) (*dto.TechnicianInput, error) {
	input := &dto.TechnicianInput{
		Name:           c.FormValue("name"),
		Surname:        c.FormValue("surname"),
		Nationality:    c.FormValue("nationality"),
		DocumentID:     c.FormValue("document_id"),
		Comuna:         c.FormValue("comuna"),
		Address:        c.FormValue("address"),
		Email:          c.FormValue("email"),
		Phone:          c.FormValue("phone"),
		AltPhone:       c.FormValue("alt_phone"),
		VehiclePlate:   c.FormValue("vehicle_plate"),
		Certifications: c.FormValue("certifications"),
	}

	if raw := c.FormValue("birth_date"); raw != "" {
		birthDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, errors.New("birth date must be yyyy-mm-dd")
		}
		input.BirthDate = birthDate
	}

	if raw := c.FormValue("region"); raw != "" {
		region, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("region must be numeric")
		}
		input.Region = region
	}

	return input, nil
}

// formPhoto returns the optional photo part. The returned closer is always
// safe to defer.
func formPhoto(c *fiber.Ctx) (*services.PhotoUpload, func(), error) {
	header, err := c.FormFile("photo")
	if err != nil {
		// fiber reports a missing part as an error; treat it as no photo
		return nil, func() {}, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &services.PhotoUpload{Name: header.Filename, Content: file}, func() { file.Close() }, nil
}
