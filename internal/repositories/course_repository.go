package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"elimu/internal/models/db_models"
)

type ICourseRepository interface {
	GetPublishedCourses(ctx context.Context) ([]db_models.Course, error)
	GetCourseById(ctx context.Context, courseID string) (*db_models.Course, error)
}

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) ICourseRepository {
	return &CourseRepository{db: db}
}

func (r CourseRepository) GetPublishedCourses(ctx context.Context) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Instructor").
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&courses).Error

	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (r CourseRepository) GetCourseById(ctx context.Context, courseID string) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Instructor").
		First(&course, "id = ?", courseID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &course, nil
}
