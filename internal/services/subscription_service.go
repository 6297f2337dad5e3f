package services

import (
	"context"

	"github.com/google/uuid"

	"elimu/internal/models/response_models"
	"elimu/internal/repositories"
	"elimu/pkg/utils"
)

type SubscriptionServiceInterface interface {
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error)
}

type SubscriptionService struct {
	subRepo repositories.SubscriptionRepository
}

func NewSubscriptionService(subRepo repositories.SubscriptionRepository) SubscriptionServiceInterface {
	return &SubscriptionService{subRepo: subRepo}
}

func (s *SubscriptionService) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error) {
	subs, err := s.subRepo.ListForAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		result = append(result, response_models.SubscriptionResponse{
			ID:          sub.ID,
			PlanCode:    sub.Plan.Code,
			PlanName:    sub.Plan.Name,
			Status:      string(sub.Status),
			Reference:   sub.ExternalReference,
			PeriodStart: sub.PeriodStart,
			PeriodEnd:   sub.PeriodEnd,
			CreatedAt:   sub.CreatedAt,
		})
	}

	return result, nil
}
