package models

import (
	"time"

	"gorm.io/gorm"
)

// Purchase records a completed course purchase. Rows are immutable after
// insert. CouponID is set only when a coupon was applied.
type Purchase struct {
	gorm.Model
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	CourseID      uint      `gorm:"index;not null" json:"course_id"`
	CouponID      *uint     `gorm:"index" json:"coupon_id"`
	PricePaid     float64   `gorm:"not null" json:"price_paid"`
	PaymentMethod string    `gorm:"type:varchar(20);not null" json:"payment_method"`
	PurchasedAt   time.Time `gorm:"not null" json:"purchased_at"`

	// Relations - read-only joins for reporting
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Course Course  `gorm:"foreignKey:CourseID" json:"-"`
	Coupon *Coupon `gorm:"foreignKey:CouponID" json:"-"`
}
