package handlers

import (
	"github.com/fidias-dev/technician-agenda/internal/catalog"
	"github.com/fidias-dev/technician-agenda/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CatalogHandler serves the static lookup data backing the form pickers:
// Chilean regions and comunas plus the job category tree.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

func (h *CatalogHandler) Regions(c *fiber.Ctx) error {
	return c.JSON(catalog.Regions())
}

func (h *CatalogHandler) Comunas(c *fiber.Ctx) error {
	regionID, err := c.ParamsInt("regionId")
	if err != nil {
		return badRequest(c, "Invalid region id")
	}

	comunas, ok := catalog.Comunas(regionID)
	if !ok {
		return notFound(c, "Unknown region")
	}
	return c.JSON(comunas)
}

func (h *CatalogHandler) JobCategories(c *fiber.Ctx) error {
	var categories []models.JobCategory
	err := h.db.Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order")
	}).Order("display_order").Find(&categories).Error
	if err != nil {
		return internalError(c)
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) Subcategories(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	var subcategories []models.JobSubcategory
	err = h.db.Where("job_category_id = ?", categoryID).
		Order("display_order").Find(&subcategories).Error
	if err != nil {
		return internalError(c)
	}
	return c.JSON(subcategories)
}
