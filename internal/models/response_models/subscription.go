package response_models

import (
	"github.com/google/uuid"
)

type SubscriptionResponse struct {
	ID          uuid.UUID `json:"id"`
	PlanCode    string    `json:"plan_code"`
	PlanName    string    `json:"plan_name"`
	Status      string    `json:"status"`
	Reference   string    `json:"reference"`
	PeriodStart *int64    `json:"period_start,omitempty"`
	PeriodEnd   *int64    `json:"period_end,omitempty"`
	CreatedAt   int64     `json:"created_at"`
}

type CreateCheckoutResponse struct {
	Reference string      `json:"reference"`
	Status    string      `json:"status"`
	Message   string      `json:"message"`
	Payment   interface{} `json:"payment,omitempty"`
}
