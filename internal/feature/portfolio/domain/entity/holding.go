package entity

import "time"

// HoldingEntry is a recorded purchase lot of a symbol. Repeat purchases of
// the same symbol create separate lots; they are deliberately not merged
// into a running average position.
type HoldingEntry struct {
	// ID is the unique identifier for the lot.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID references the owning user.
	UserID uint `gorm:"not null;index" json:"-"`

	// Symbol is the ticker, stored uppercased.
	Symbol string `gorm:"size:32;not null" json:"symbol"`

	// Quantity is the number of units held. Never negative; a fully sold
	// lot stays at zero until the user deletes it.
	Quantity float64 `gorm:"not null" json:"quantity"`

	// AveragePrice is the acquisition price per unit. Never negative.
	AveragePrice float64 `gorm:"not null" json:"averagePrice"`

	// Notes is free-form user text.
	Notes string `gorm:"size:512" json:"notes"`

	// PurchasedAt is when the lot was recorded.
	PurchasedAt time.Time `gorm:"autoCreateTime" json:"purchaseDate"`
}
