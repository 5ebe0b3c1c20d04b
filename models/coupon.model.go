package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon is a percentage discount with a redemption quota. Quota is only
// ever decremented through an atomic conditional update, so it never goes
// below zero.
type Coupon struct {
	gorm.Model
	Code        string    `gorm:"unique;not null" json:"code"`
	DiscountPct float64   `gorm:"not null" json:"discountPct"`
	Quota       int       `gorm:"not null" json:"quota"`
	ExpiryDate  time.Time `gorm:"not null" json:"expiryDate"`
}
