package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusPending    SubscriptionStatus = "pending"
	SubStatusActive     SubscriptionStatus = "active"
	SubStatusIncomplete SubscriptionStatus = "incomplete"
	SubStatusCanceled   SubscriptionStatus = "canceled"
)

type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	PlanID    uuid.UUID `gorm:"index"`

	Status SubscriptionStatus `gorm:"type:varchar(16);index"`

	// PeriodStart/PeriodEnd stay nil until the payment webhook activates
	// the subscription.
	PeriodStart *int64
	PeriodEnd   *int64

	// Provider correlation. ExternalReference is generated at checkout and
	// echoed back in webhook payloads; it is the only key the reconciler
	// has to find this row again.
	Provider           string `gorm:"index"`
	ExternalReference  string `gorm:"uniqueIndex"`
	ExternalCustomerID *string

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
	Plan    Plan    `gorm:"foreignKey:PlanID"`
}
