package request_models

type InstructorApplyRequest struct {
	Bio   string            `json:"bio" binding:"required,min=20"`
	Links map[string]string `json:"links"`
}

type ApproveInstructorRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid4"`
}
