package db_models

import (
	"gorm.io/datatypes"
)

type BillingInterval string

const (
	IntervalMonth BillingInterval = "month"
	IntervalYear  BillingInterval = "year"
)

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g., "monthly", "yearly"
	Name        string
	Description *string
	Interval    BillingInterval `gorm:"type:varchar(8)"` // "month" | "year"
	PriceMinor  int64           // 2900 = K29.00
	Currency    string          `gorm:"size:3"` // ISO 4217, e.g. "ZMW"
	// No default tag: gorm skips zero values for defaulted columns on
	// insert, which would store an inactive plan as active.
	IsActive bool

	Features datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
