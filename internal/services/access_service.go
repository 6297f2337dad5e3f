package services

import (
	"context"

	"github.com/google/uuid"

	"elimu/internal/models/db_models"
	"elimu/internal/repositories"
	"elimu/pkg/utils"
)

type AccessService interface {
	HasActiveSubscription(ctx context.Context, accountID uuid.UUID) (bool, error)
	CanAccessLesson(ctx context.Context, accountID uuid.UUID, lesson *db_models.Lesson, course *db_models.Course) (bool, error)
}

type accessService struct {
	subRepo repositories.SubscriptionRepository
}

func NewAccessService(subRepo repositories.SubscriptionRepository) AccessService {
	return &accessService{subRepo: subRepo}
}

func (a *accessService) HasActiveSubscription(ctx context.Context, accountID uuid.UUID) (bool, error) {
	if accountID == uuid.Nil {
		return false, nil
	}

	sub, err := a.subRepo.FindActiveForAccount(ctx, accountID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}

	return sub != nil, nil
}

// CanAccessLesson derives the access decision from content flags and
// subscription state. Free lessons and free courses need no lookup.
func (a *accessService) CanAccessLesson(ctx context.Context, accountID uuid.UUID, lesson *db_models.Lesson, course *db_models.Course) (bool, error) {
	if lesson.IsFree {
		return true, nil
	}
	if course != nil && course.IsFree {
		return true, nil
	}

	return a.HasActiveSubscription(ctx, accountID)
}
