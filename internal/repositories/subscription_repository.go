package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"elimu/internal/models/db_models"
	"elimu/pkg/utils"
)

// SubscriptionRepository owns every subscription state transition. Nothing
// else writes to the subscriptions table, so the lifecycle invariants stay
// in one place.
type SubscriptionRepository interface {
	FindActiveForAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
	FindPendingForAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
	FindByExternalReference(ctx context.Context, reference string) (*db_models.Subscription, error)
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error)
	CreatePending(ctx context.Context, accountID, planID uuid.UUID, provider, reference string) (*db_models.Subscription, error)
	Activate(ctx context.Context, subscriptionID uuid.UUID, externalCustomerID *string) (*db_models.Subscription, error)
	MarkIncomplete(ctx context.Context, subscriptionID uuid.UUID) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// FindActiveForAccount returns the active, unexpired subscription for the
// account. The invariant says there is at most one; if drift ever produces
// more, the latest-expiring wins.
func (s *subscriptionRepository) FindActiveForAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ? AND status = ? AND period_end >= ?",
			accountID, db_models.SubStatusActive, time.Now().Unix()).
		Order("period_end DESC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s *subscriptionRepository) FindPendingForAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Where("account_id = ? AND status = ?", accountID, db_models.SubStatusPending).
		Order("created_at DESC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s *subscriptionRepository) FindByExternalReference(ctx context.Context, reference string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Preload("Account").
		Where("external_reference = ?", reference).
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s *subscriptionRepository) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&subs).Error

	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (s *subscriptionRepository) CreatePending(ctx context.Context, accountID, planID uuid.UUID, provider, reference string) (*db_models.Subscription, error) {
	sub := &db_models.Subscription{
		AccountID:         accountID,
		PlanID:            planID,
		Status:            db_models.SubStatusPending,
		Provider:          provider,
		ExternalReference: reference,
	}

	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}

	return sub, nil
}

// Activate sets the subscription active and stamps the billing period:
// PeriodStart = now, PeriodEnd = now + one plan interval with end-of-month
// clamping (Jan 31 + 1 month lands on the last day of February).
func (s *subscriptionRepository) Activate(ctx context.Context, subscriptionID uuid.UUID, externalCustomerID *string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		First(&sub, "id = ?", subscriptionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrSubscriptionNotFound
		}
		return nil, err
	}

	now := time.Now()
	periodStart := now.Unix()
	periodEnd := utils.AddBillingInterval(now, sub.Plan.Interval).Unix()

	updates := map[string]interface{}{
		"status":       db_models.SubStatusActive,
		"period_start": periodStart,
		"period_end":   periodEnd,
	}
	if externalCustomerID != nil && *externalCustomerID != "" {
		updates["external_customer_id"] = *externalCustomerID
	}

	if err := s.db.WithContext(ctx).Model(&sub).Updates(updates).Error; err != nil {
		return nil, err
	}

	sub.Status = db_models.SubStatusActive
	sub.PeriodStart = &periodStart
	sub.PeriodEnd = &periodEnd
	if externalCustomerID != nil && *externalCustomerID != "" {
		sub.ExternalCustomerID = externalCustomerID
	}

	return &sub, nil
}

// MarkIncomplete records a failed payment. Idempotent, and never demotes
// an already-active subscription: a late failed event for a reference that
// has since activated is ignored.
func (s *subscriptionRepository) MarkIncomplete(ctx context.Context, subscriptionID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("id = ? AND status <> ?", subscriptionID, db_models.SubStatusActive).
		Update("status", db_models.SubStatusIncomplete).Error
}
