package db_models

import (
	"github.com/google/uuid"
)

type Lesson struct {
	BaseModel
	CourseID uuid.UUID `gorm:"index"`
	Title    string
	Position int `gorm:"index"`
	Content  string
	VideoURL string
	IsFree   bool `gorm:"default:false"`

	Course Course `gorm:"foreignKey:CourseID"`
}

type LessonProgress struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"index:idx_progress_account_lesson,unique"`
	LessonID    uuid.UUID `gorm:"index:idx_progress_account_lesson,unique"`
	Completed   bool      `gorm:"default:false"`
	CompletedAt *int64

	Account Account `gorm:"foreignKey:AccountID"`
	Lesson  Lesson  `gorm:"foreignKey:LessonID"`
}
