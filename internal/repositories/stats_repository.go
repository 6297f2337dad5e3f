package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"elimu/internal/models/db_models"
)

type StatsRepository interface {
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountPublishedCourses(ctx context.Context) (int64, error)
	CountActiveSubscriptions(ctx context.Context) (int64, error)
	CountSubscriptionsByStatus(ctx context.Context, status db_models.SubscriptionStatus) (int64, error)
	CountPendingInstructorApplications(ctx context.Context) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Account{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountPublishedCourses(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Course{}).
		Where("published = ?", true).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("status = ? AND period_end >= ?", db_models.SubStatusActive, time.Now().Unix()).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) CountSubscriptionsByStatus(ctx context.Context, status db_models.SubscriptionStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) CountPendingInstructorApplications(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("instructor_bio IS NOT NULL AND instructor_approved = ?", false).
		Count(&n).Error
	return n, err
}
