package menu

import (
	"strings"

	"kafe-backend/internal/audit"
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Image       string  `json:"image"`
	Promotion   *string `json:"promotion"`
}

func (r *ProductRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Price = strings.TrimSpace(r.Price)
	r.Image = strings.TrimSpace(r.Image)
}

func (r *ProductRequest) valid() bool {
	return r.Name != "" && r.Description != "" && r.Price != "" && r.Image != ""
}

// GET /api/products (public, the infoscreen polls this)
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		products := []models.Product{}
		if err := database.DB.Find(&products).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fetch products",
				"details": err.Error(),
			})
		}
		return c.JSON(products)
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		return c.JSON(p)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.trim()
		if !body.valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}

		p := models.Product{
			Name:        body.Name,
			Description: body.Description,
			Price:       body.Price,
			Image:       body.Image,
			Promotion:   body.Promotion,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create product",
				"details": err.Error(),
			})
		}

		audit.Record(c, "product", p.ID, models.AuditActionCreate, "Created product "+p.Name, nil, p)

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.trim()
		if !body.valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
		}

		before := p

		p.Name = body.Name
		p.Description = body.Description
		p.Price = body.Price
		p.Image = body.Image
		p.Promotion = body.Promotion

		if err := database.DB.Save(&p).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to update product",
				"details": err.Error(),
			})
		}

		audit.Record(c, "product", p.ID, models.AuditActionUpdate, "Updated product "+p.Name, before, p)

		return c.JSON(p)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		if err := database.DB.Delete(&p).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to delete product",
				"details": err.Error(),
			})
		}

		audit.Record(c, "product", p.ID, models.AuditActionDelete, "Deleted product "+p.Name, p, nil)
		logger.Info().Uint("id", p.ID).Str("name", p.Name).Msg("product deleted")

		return c.SendStatus(fiber.StatusNoContent)
	}
}
