package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"size:1000;not null" json:"description"`
	Price       string    `gorm:"size:50;not null" json:"price"` // display text, e.g. "49 kr"
	Image       string    `gorm:"size:500;not null" json:"image"`
	Promotion   *string   `gorm:"size:200" json:"promotion"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
