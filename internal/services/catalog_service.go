package services

import (
	"context"

	"github.com/google/uuid"

	"elimu/internal/models/response_models"
	"elimu/internal/repositories"
	"elimu/pkg/utils"
)

type CatalogServiceInterface interface {
	ListCourses(ctx context.Context) ([]response_models.CourseListItem, error)
	GetLessonDetail(ctx context.Context, accountID uuid.UUID, lessonID string) (*response_models.LessonDetailResponse, error)
	CompleteLesson(ctx context.Context, accountID uuid.UUID, lessonID string) error
}

type CatalogService struct {
	courseRepo repositories.ICourseRepository
	lessonRepo repositories.ILessonRepository
	access     AccessService
}

func NewCatalogService(
	courseRepo repositories.ICourseRepository,
	lessonRepo repositories.ILessonRepository,
	access AccessService,
) CatalogServiceInterface {
	return &CatalogService{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		access:     access,
	}
}

func (c *CatalogService) ListCourses(ctx context.Context) ([]response_models.CourseListItem, error) {
	courses, err := c.courseRepo.GetPublishedCourses(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.CourseListItem, 0, len(courses))
	for _, course := range courses {
		result = append(result, response_models.CourseListItem{
			ID:             course.ID,
			Title:          course.Title,
			Slug:           course.Slug,
			Description:    course.Description,
			Category:       course.Category.Name,
			InstructorName: course.Instructor.Name,
			IsFree:         course.IsFree,
		})
	}

	return result, nil
}

// GetLessonDetail returns the lesson plus the course outline. Lesson
// content and video URL are stripped when the caller has no access; the
// outline and metadata are always visible so the page can render a
// paywall. accountID may be uuid.Nil for anonymous visitors.
func (c *CatalogService) GetLessonDetail(ctx context.Context, accountID uuid.UUID, lessonID string) (*response_models.LessonDetailResponse, error) {
	lesson, err := c.lessonRepo.GetLessonWithCourse(ctx, lessonID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if lesson == nil {
		return nil, utils.ErrLessonNotFound
	}

	hasAccess, err := c.access.CanAccessLesson(ctx, accountID, lesson, &lesson.Course)
	if err != nil {
		return nil, err
	}

	siblings, err := c.lessonRepo.GetCourseLessons(ctx, lesson.CourseID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	completed := map[uuid.UUID]bool{}
	if accountID != uuid.Nil {
		ids := make([]uuid.UUID, 0, len(siblings))
		for _, l := range siblings {
			ids = append(ids, l.ID)
		}
		records, err := c.lessonRepo.GetProgressForLessons(ctx, accountID, ids)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		for _, rec := range records {
			completed[rec.LessonID] = rec.Completed
		}
	}

	outline := make([]response_models.LessonOutlineItem, 0, len(siblings))
	for _, l := range siblings {
		outline = append(outline, response_models.LessonOutlineItem{
			ID:          l.ID,
			Title:       l.Title,
			Position:    l.Position,
			IsFree:      l.IsFree,
			IsCompleted: completed[l.ID],
		})
	}

	detail := &response_models.LessonDetailResponse{
		ID:             lesson.ID,
		Title:          lesson.Title,
		Position:       lesson.Position,
		IsFree:         lesson.IsFree,
		IsCompleted:    completed[lesson.ID],
		HasAccess:      hasAccess,
		CourseID:       lesson.CourseID,
		CourseTitle:    lesson.Course.Title,
		CourseIsFree:   lesson.Course.IsFree,
		InstructorName: lesson.Course.Instructor.Name,
		Outline:        outline,
	}

	if hasAccess {
		detail.Content = lesson.Content
		detail.VideoURL = lesson.VideoURL
	}

	return detail, nil
}

func (c *CatalogService) CompleteLesson(ctx context.Context, accountID uuid.UUID, lessonID string) error {
	lesson, err := c.lessonRepo.GetLessonWithCourse(ctx, lessonID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if lesson == nil {
		return utils.ErrLessonNotFound
	}

	hasAccess, err := c.access.CanAccessLesson(ctx, accountID, lesson, &lesson.Course)
	if err != nil {
		return err
	}
	if !hasAccess {
		return utils.ErrAccessDenied
	}

	if err := c.lessonRepo.MarkCompleted(ctx, accountID, lesson.ID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
