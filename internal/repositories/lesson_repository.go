package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"elimu/internal/models/db_models"
)

type ILessonRepository interface {
	GetLessonWithCourse(ctx context.Context, lessonID string) (*db_models.Lesson, error)
	GetCourseLessons(ctx context.Context, courseID uuid.UUID) ([]db_models.Lesson, error)
	GetProgress(ctx context.Context, accountID, lessonID uuid.UUID) (*db_models.LessonProgress, error)
	GetProgressForLessons(ctx context.Context, accountID uuid.UUID, lessonIDs []uuid.UUID) ([]db_models.LessonProgress, error)
	MarkCompleted(ctx context.Context, accountID, lessonID uuid.UUID) error
}

type LessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) ILessonRepository {
	return &LessonRepository{db: db}
}

func (r LessonRepository) GetLessonWithCourse(ctx context.Context, lessonID string) (*db_models.Lesson, error) {
	var lesson db_models.Lesson
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Course.Instructor").
		First(&lesson, "id = ?", lessonID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &lesson, nil
}

func (r LessonRepository) GetCourseLessons(ctx context.Context, courseID uuid.UUID) ([]db_models.Lesson, error) {
	var lessons []db_models.Lesson
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position ASC").
		Find(&lessons).Error

	if err != nil {
		return nil, err
	}

	return lessons, nil
}

func (r LessonRepository) GetProgress(ctx context.Context, accountID, lessonID uuid.UUID) (*db_models.LessonProgress, error) {
	var progress db_models.LessonProgress
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND lesson_id = ?", accountID, lessonID).
		First(&progress).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &progress, nil
}

func (r LessonRepository) GetProgressForLessons(ctx context.Context, accountID uuid.UUID, lessonIDs []uuid.UUID) ([]db_models.LessonProgress, error) {
	var records []db_models.LessonProgress
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND lesson_id IN ?", accountID, lessonIDs).
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

// MarkCompleted upserts the completion record; repeating a completion is a
// no-op rather than an error.
func (r LessonRepository) MarkCompleted(ctx context.Context, accountID, lessonID uuid.UUID) error {
	existing, err := r.GetProgress(ctx, accountID, lessonID)
	if err != nil {
		return err
	}

	now := time.Now().Unix()

	if existing != nil {
		if existing.Completed {
			return nil
		}
		return r.db.WithContext(ctx).
			Model(existing).
			Updates(map[string]interface{}{
				"completed":    true,
				"completed_at": now,
			}).Error
	}

	progress := &db_models.LessonProgress{
		AccountID:   accountID,
		LessonID:    lessonID,
		Completed:   true,
		CompletedAt: &now,
	}
	return r.db.WithContext(ctx).Create(progress).Error
}
