package request_models

type CreateCheckoutRequest struct {
	PlanID string `json:"plan_id" binding:"required,uuid4"`
	Phone  string `json:"phone" binding:"required"`
}
