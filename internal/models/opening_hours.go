package models

import "time"

// OpeningHours - one row per weekday, day names in Norwegian (Mandag..Søndag)
type OpeningHours struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Day       string    `gorm:"size:20;uniqueIndex;not null" json:"day"`
	Hours     string    `gorm:"size:50;not null" json:"hours"` // "HH:MM - HH:MM" or "Stengt"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
