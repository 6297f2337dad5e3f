package db_models

import (
	"github.com/google/uuid"
)

type Category struct {
	BaseModel
	Name string
	Slug string `gorm:"uniqueIndex"`
}

type Course struct {
	BaseModel
	Title        string
	Slug         string `gorm:"uniqueIndex"`
	Description  string
	CategoryID   uuid.UUID `gorm:"index"`
	InstructorID uuid.UUID `gorm:"index"`
	Published    bool      `gorm:"default:false;index"`
	// IsFree opens every lesson of the course regardless of subscription.
	IsFree bool `gorm:"default:false"`

	Category   Category `gorm:"foreignKey:CategoryID"`
	Instructor Account  `gorm:"foreignKey:InstructorID"`
	Lessons    []Lesson `gorm:"foreignKey:CourseID"`
}
