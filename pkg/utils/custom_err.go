package utils

import "errors"

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrCourseNotFound       = errors.New("course not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySubscribed    = errors.New("account already has an active or pending subscription")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrValidation           = errors.New("validation failed")
	ErrGatewayError         = errors.New("payment gateway request failed")
	ErrSignatureInvalid     = errors.New("webhook signature invalid")
	ErrForbidden            = errors.New("insufficient permissions")
	ErrAccessDenied         = errors.New("active subscription required")
	ErrDatabaseError        = errors.New("database error")
)
