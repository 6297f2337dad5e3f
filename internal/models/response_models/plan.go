package response_models

import (
	"github.com/google/uuid"
)

type PlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Interval    string    `json:"interval"` // "month" | "year"
	PriceMinor  int64     `json:"price_minor"`
	Currency    string    `json:"currency"`
	Features    []string  `json:"features,omitempty"`
}
