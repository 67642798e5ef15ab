package model

import "gorm.io/gorm"

// Cafe is a listed venue. Rating is the mean of all review ratings rounded
// to one decimal place; it stays at its last value (0.0 for a new cafe)
// until the next review arrives.
type Cafe struct {
	gorm.Model
	Name        string  `gorm:"not null"`
	Location    string  `gorm:"not null"`
	ImgURL      string  `gorm:"not null"`
	CoffeePrice string  `gorm:"not null"`
	Detail      string  `gorm:"not null"`
	Rating      float64 `gorm:"not null;default:0"`

	Reviews []Review `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Review is a single numeric rating against one cafe. Immutable once
// created; removed only together with its cafe.
type Review struct {
	gorm.Model
	CafeID uint    `gorm:"not null;index"`
	Rating float64 `gorm:"not null"`
}
