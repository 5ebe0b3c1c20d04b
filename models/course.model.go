package models

import "gorm.io/gorm"

// Course represents a purchasable course. A course exclusively owns its
// module list; updates replace the whole list rather than merging.
type Course struct {
	gorm.Model
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Duration    int            `gorm:"not null" json:"duration"` // minutes
	Modules     []CourseModule `gorm:"constraint:OnDelete:CASCADE" json:"modules,omitempty"`
}

// CourseModule is a titled content unit belonging to exactly one course.
type CourseModule struct {
	gorm.Model
	CourseID uint   `gorm:"index;not null" json:"course_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}
