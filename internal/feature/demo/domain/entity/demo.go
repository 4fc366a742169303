// Package entity defines the legacy demo entities shown to unauthenticated
// visitors. They carry pre-rendered display strings rather than raw numbers,
// matching the dashboard's historical wire format.
package entity

// DemoHolding is a canned holdings row for the public demo dashboard.
type DemoHolding struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"size:64;not null" json:"name"`
	Qty    float64 `gorm:"not null" json:"qty"`
	Avg    float64 `gorm:"not null" json:"avg"`
	Price  float64 `gorm:"not null" json:"price"`
	Net    string  `gorm:"size:16" json:"net"`
	Day    string  `gorm:"size:16" json:"day"`
	IsLoss bool    `json:"isLoss"`
}

// DemoPosition is a canned positions row for the public demo dashboard.
type DemoPosition struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Product string  `gorm:"size:16;not null" json:"product"`
	Name    string  `gorm:"size:64;not null" json:"name"`
	Qty     float64 `gorm:"not null" json:"qty"`
	Avg     float64 `gorm:"not null" json:"avg"`
	Price   float64 `gorm:"not null" json:"price"`
	Net     string  `gorm:"size:16" json:"net"`
	Day     string  `gorm:"size:16" json:"day"`
	IsLoss  bool    `json:"isLoss"`
}
