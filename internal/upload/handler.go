package upload

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MaxFileSize caps uploads; the images shown on the infoscreen are small.
const MaxFileSize = 5 * 1024 * 1024 // 5MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// POST /api/upload (multipart, field "file")
// Saves the file under uploadDir with a random name and returns the relative
// path clients can use directly as an image URL.
func FileHandler(uploadDir string, logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
		}

		if file.Size > MaxFileSize {
			return fiber.NewError(fiber.StatusBadRequest, "File exceeds 5MB limit")
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			return fiber.NewError(fiber.StatusBadRequest, "File type not allowed, expected an image")
		}

		fileName := uuid.NewString() + ext
		relativePath := "/uploads/" + fileName

		if err := os.MkdirAll(uploadDir, 0755); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to upload file",
				"details": err.Error(),
			})
		}

		fullPath := filepath.Join(uploadDir, fileName)
		if err := c.SaveFile(file, fullPath); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to upload file",
				"details": err.Error(),
			})
		}

		logger.Info().Str("path", fullPath).Msg("uploaded file saved")

		return c.JSON(fiber.Map{
			"success":  true,
			"filePath": relativePath,
		})
	}
}
