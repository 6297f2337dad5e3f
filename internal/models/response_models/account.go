package response_models

type AccountLoginResponse struct {
	Token                 string `json:"token"`
	HasActiveSubscription bool   `json:"has_active_subscription"`
}

type AccountResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	InstructorApproved bool   `json:"instructor_approved"`
}

type AdminStatsResponse struct {
	TotalAccounts           int64 `json:"total_accounts"`
	PublishedCourses        int64 `json:"published_courses"`
	ActiveSubscriptions     int64 `json:"active_subscriptions"`
	PendingSubscriptions    int64 `json:"pending_subscriptions"`
	IncompleteSubscriptions int64 `json:"incomplete_subscriptions"`
	PendingInstructors      int64 `json:"pending_instructors"`
}
