package services

import (
	"context"
	"encoding/json"

	"elimu/internal/models/response_models"
	"elimu/internal/repositories"
	"elimu/pkg/utils"
)

type PlanServiceInterface interface {
	GetActivePlans(ctx context.Context) ([]response_models.PlanResponse, error)
	GetPlanInfoById(ctx context.Context, planID string) (response_models.PlanResponse, error)
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func (p *PlanService) GetActivePlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := p.planRepo.GetActivePlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		result = append(result, response_models.PlanResponse{
			ID:          plan.ID,
			Code:        plan.Code,
			Name:        plan.Name,
			Description: plan.Description,
			Interval:    string(plan.Interval),
			PriceMinor:  plan.PriceMinor,
			Currency:    plan.Currency,
			Features:    decodeFeatures(plan.Features),
		})
	}

	return result, nil
}

func (p *PlanService) GetPlanInfoById(ctx context.Context, planID string) (response_models.PlanResponse, error) {
	plan, err := p.planRepo.GetPlanInfoById(ctx, planID)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}

	return response_models.PlanResponse{
		ID:          plan.ID,
		Code:        plan.Code,
		Name:        plan.Name,
		Description: plan.Description,
		Interval:    string(plan.Interval),
		PriceMinor:  plan.PriceMinor,
		Currency:    plan.Currency,
		Features:    decodeFeatures(plan.Features),
	}, nil
}

func decodeFeatures(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var features []string
	if err := json.Unmarshal(raw, &features); err != nil {
		return nil
	}
	return features
}
