package response_models

import (
	"github.com/google/uuid"
)

type LessonOutlineItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Position    int       `json:"position"`
	IsFree      bool      `json:"is_free"`
	IsCompleted bool      `json:"is_completed"`
}

type LessonDetailResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Position    int       `json:"position"`
	IsFree      bool      `json:"is_free"`
	IsCompleted bool      `json:"is_completed"`
	HasAccess   bool      `json:"has_access"`

	// Content and VideoURL are omitted when the caller has no access.
	Content  string `json:"content,omitempty"`
	VideoURL string `json:"video_url,omitempty"`

	CourseID       uuid.UUID           `json:"course_id"`
	CourseTitle    string              `json:"course_title"`
	CourseIsFree   bool                `json:"course_is_free"`
	InstructorName string              `json:"instructor_name"`
	Outline        []LessonOutlineItem `json:"outline"`
}

type CourseListItem struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	InstructorName string    `json:"instructor_name"`
	IsFree         bool      `json:"is_free"`
}
