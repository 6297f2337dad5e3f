package services

import (
	"context"

	"elimu/internal/models/db_models"
	"elimu/internal/models/response_models"
	"elimu/internal/repositories"
	"elimu/pkg/utils"
)

type StatsServiceInterface interface {
	GetAdminStats(ctx context.Context) (*response_models.AdminStatsResponse, error)
}

type StatsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsServiceInterface {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) GetAdminStats(ctx context.Context) (*response_models.AdminStatsResponse, error) {
	accounts, err := s.statsRepo.CountTotalAccounts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	courses, err := s.statsRepo.CountPublishedCourses(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	active, err := s.statsRepo.CountActiveSubscriptions(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pending, err := s.statsRepo.CountSubscriptionsByStatus(ctx, db_models.SubStatusPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	incomplete, err := s.statsRepo.CountSubscriptionsByStatus(ctx, db_models.SubStatusIncomplete)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	applicants, err := s.statsRepo.CountPendingInstructorApplications(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdminStatsResponse{
		TotalAccounts:           accounts,
		PublishedCourses:        courses,
		ActiveSubscriptions:     active,
		PendingSubscriptions:    pending,
		IncompleteSubscriptions: incomplete,
		PendingInstructors:      applicants,
	}, nil
}
