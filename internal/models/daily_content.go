package models

import "time"

// DailyContent - singleton row holding the offer/quote of the day.
// Histories are stored as JSON string arrays, most recent first, max 10.
type DailyContent struct {
	ID           uint   `gorm:"primaryKey"`
	CurrentOffer string `gorm:"size:500"`
	CurrentQuote string `gorm:"size:500"`
	OfferImage   string `gorm:"size:500"`
	QuoteImage   string `gorm:"size:500"`
	OfferHistory string `gorm:"type:jsonb;default:'[]'"`
	QuoteHistory string `gorm:"type:jsonb;default:'[]'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
