package schedule

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"kafe-backend/internal/audit"
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Closed marker, shown verbatim on the infoscreen.
const Closed = "Stengt"

// Weekday names in canonical order. Every list response follows this order.
var Weekdays = []string{
	"Mandag",
	"Tirsdag",
	"Onsdag",
	"Torsdag",
	"Fredag",
	"Lørdag",
	"Søndag",
}

const defaultOpenHours = "09:30 - 12:00"

var hoursPattern = regexp.MustCompile(`^([0-9]{1,2}:[0-9]{2}\s*-\s*[0-9]{1,2}:[0-9]{2}|Stengt)$`)

// validHours accepts the closed marker or an open window of two real
// clock times. The pattern alone would let "25:00 - 26:00" through.
func validHours(s string) bool {
	if s == Closed {
		return true
	}
	if !hoursPattern.MatchString(s) {
		return false
	}
	for _, part := range strings.SplitN(s, "-", 2) {
		hhmm := strings.Split(strings.TrimSpace(part), ":")
		hour, _ := strconv.Atoi(hhmm[0])
		minute, _ := strconv.Atoi(hhmm[1])
		if hour > 23 || minute > 59 {
			return false
		}
	}
	return true
}

func weekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return len(Weekdays)
}

func sortByWeekday(hours []models.OpeningHours) {
	sort.Slice(hours, func(i, j int) bool {
		return weekdayIndex(hours[i].Day) < weekdayIndex(hours[j].Day)
	})
}

// defaultHoursFor returns the reset schedule: open on weekdays, closed on
// Lørdag and Søndag.
func defaultHoursFor(day string) string {
	if day == "Lørdag" || day == "Søndag" {
		return Closed
	}
	return defaultOpenHours
}

// GET /api/opening-hours (public)
// Completes the 7-day set before returning: days missing from the database
// are created closed, so clients always see exactly one row per weekday.
func ListOpeningHoursHandler(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var hours []models.OpeningHours
		if err := database.DB.Find(&hours).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fetch opening hours",
				"details": err.Error(),
			})
		}

		if len(hours) < len(Weekdays) {
			existing := make(map[string]bool, len(hours))
			for _, h := range hours {
				existing[h.Day] = true
			}

			for _, day := range Weekdays {
				if existing[day] {
					continue
				}
				newDay := models.OpeningHours{Day: day, Hours: Closed}
				if err := database.DB.Create(&newDay).Error; err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"error":   "Failed to fetch opening hours",
						"details": err.Error(),
					})
				}
				logger.Info().Str("day", day).Msg("created missing opening hours day")
				hours = append(hours, newDay)
			}
		}

		sortByWeekday(hours)
		return c.JSON(hours)
	}
}

// POST /api/opening-hours
// Resets every weekday to the default schedule, creating missing days.
func ResetOpeningHoursHandler(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results := make([]models.OpeningHours, 0, len(Weekdays))

		for _, day := range Weekdays {
			var existing models.OpeningHours
			err := database.DB.Where("day = ?", day).First(&existing).Error
			if err == nil {
				existing.Hours = defaultHoursFor(day)
				if err := database.DB.Save(&existing).Error; err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"error":   "Failed to initialize opening hours",
						"details": err.Error(),
					})
				}
				results = append(results, existing)
				continue
			}

			created := models.OpeningHours{Day: day, Hours: defaultHoursFor(day)}
			if err := database.DB.Create(&created).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to initialize opening hours",
					"details": err.Error(),
				})
			}
			results = append(results, created)
		}

		audit.Record(c, "opening_hours", 0, models.AuditActionUpdate, "Reset opening hours to defaults", nil, results)
		logger.Info().Msg("opening hours reset to defaults")

		sortByWeekday(results)
		return c.JSON(results)
	}
}

type UpdateHoursRequest struct {
	Hours string `json:"hours"`
}

// PUT /api/opening-hours/:id
func UpdateOpeningHoursHandler(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateHoursRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Hours = strings.TrimSpace(body.Hours)
		if body.Hours == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Hours are required")
		}
		if !validHours(body.Hours) {
			return fiber.NewError(fiber.StatusBadRequest, "Hours must be in format 'HH:MM - HH:MM' or 'Stengt'")
		}

		var day models.OpeningHours
		if err := database.DB.First(&day, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Opening hours not found")
		}

		before := day
		day.Hours = body.Hours

		if err := database.DB.Save(&day).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to update opening hours",
				"details": err.Error(),
			})
		}

		audit.Record(c, "opening_hours", day.ID, models.AuditActionUpdate, "Updated hours for "+day.Day, before, day)
		logger.Info().Str("day", day.Day).Str("hours", day.Hours).Msg("opening hours updated")

		return c.JSON(day)
	}
}
