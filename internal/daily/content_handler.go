package daily

import (
	"errors"
	"strings"

	"kafe-backend/internal/audit"
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	TypeOffer = "offer"
	TypeQuote = "quote"
)

type ContentResponse struct {
	CurrentOffer string   `json:"currentOffer"`
	CurrentQuote string   `json:"currentQuote"`
	OfferImage   string   `json:"offerImage"`
	QuoteImage   string   `json:"quoteImage"`
	Offers       []string `json:"offers"`
	Quotes       []string `json:"quotes"`
}

func toResponse(dc *models.DailyContent) ContentResponse {
	if dc == nil {
		return ContentResponse{Offers: []string{}, Quotes: []string{}}
	}
	return ContentResponse{
		CurrentOffer: dc.CurrentOffer,
		CurrentQuote: dc.CurrentQuote,
		OfferImage:   dc.OfferImage,
		QuoteImage:   dc.QuoteImage,
		Offers:       decodeHistory(dc.OfferHistory),
		Quotes:       decodeHistory(dc.QuoteHistory),
	}
}

// GET /api/daily-content (public)
func GetContentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dc models.DailyContent
		err := database.DB.First(&dc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(toResponse(nil))
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fetch daily content",
				"details": err.Error(),
			})
		}

		return c.JSON(toResponse(&dc))
	}
}

type UpsertContentRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

// POST /api/daily-content
// Sets the current offer or quote and folds the value into its bounded
// history. The singleton row is created lazily on first write.
//
// The read-modify-write below is not serialized against a second writer;
// with a single admin last write wins is fine.
func UpsertContentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpsertContentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Content = strings.TrimSpace(body.Content)
		body.Image = strings.TrimSpace(body.Image)

		if body.Content == "" || (body.Type != TypeOffer && body.Type != TypeQuote) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request data")
		}

		var dc models.DailyContent
		err := database.DB.First(&dc).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			dc = models.DailyContent{
				OfferHistory: "[]",
				QuoteHistory: "[]",
			}
			if body.Type == TypeOffer {
				dc.CurrentOffer = body.Content
				dc.OfferImage = body.Image
				dc.OfferHistory = encodeHistory([]string{body.Content})
			} else {
				dc.CurrentQuote = body.Content
				dc.QuoteImage = body.Image
				dc.QuoteHistory = encodeHistory([]string{body.Content})
			}

			if err := database.DB.Create(&dc).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to update daily content",
					"details": err.Error(),
				})
			}

			audit.Record(c, "daily_content", dc.ID, models.AuditActionCreate, "Set "+body.Type+" of the day", nil, toResponse(&dc))
			return c.JSON(toResponse(&dc))
		}

		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to update daily content",
				"details": err.Error(),
			})
		}

		before := toResponse(&dc)

		if body.Type == TypeOffer {
			dc.CurrentOffer = body.Content
			if body.Image != "" {
				dc.OfferImage = body.Image
			}
			dc.OfferHistory = encodeHistory(UpdateHistory(decodeHistory(dc.OfferHistory), body.Content))
		} else {
			dc.CurrentQuote = body.Content
			if body.Image != "" {
				dc.QuoteImage = body.Image
			}
			dc.QuoteHistory = encodeHistory(UpdateHistory(decodeHistory(dc.QuoteHistory), body.Content))
		}

		if err := database.DB.Save(&dc).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to update daily content",
				"details": err.Error(),
			})
		}

		audit.Record(c, "daily_content", dc.ID, models.AuditActionUpdate, "Set "+body.Type+" of the day", before, toResponse(&dc))
		return c.JSON(toResponse(&dc))
	}
}
