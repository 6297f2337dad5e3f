package db_models

import (
	"gorm.io/datatypes"
)

type AccountRole string

const (
	RoleStudent    AccountRole = "student"
	RoleInstructor AccountRole = "instructor"
	RoleAdmin      AccountRole = "admin"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         AccountRole `gorm:"default:student;index"`

	// Instructor onboarding fields; Bio/Links are filled in when the
	// account applies, Approved is flipped by an admin.
	InstructorApproved bool `gorm:"default:false"`
	InstructorBio      *string
	InstructorLinks    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Subscriptions []Subscription `gorm:"foreignKey:AccountID"`
}
