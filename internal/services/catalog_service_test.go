package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"elimu/internal/models/db_models"
	"elimu/internal/repositories"
	"elimu/internal/testutil"
	"elimu/pkg/utils"
)

func newCatalogService(db *gorm.DB) CatalogServiceInterface {
	return NewCatalogService(
		repositories.NewCourseRepository(db),
		repositories.NewLessonRepository(db),
		NewAccessService(repositories.NewSubscriptionRepository(db)),
	)
}

func TestListCourses_OnlyPublished(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCatalogService(db)

	published := testutil.TestCourse(t, db)
	testutil.TestCourse(t, db, testutil.WithUnpublished())

	courses, err := service.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, published.ID, courses[0].ID)
	assert.NotEmpty(t, courses[0].Category)
	assert.NotEmpty(t, courses[0].InstructorName)
}

func TestGetLessonDetail_StripsContentWithoutAccess(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCatalogService(db)

	course := testutil.TestCourse(t, db)
	lesson := testutil.TestLesson(t, db, course.ID)
	testutil.TestLesson(t, db, course.ID, testutil.WithPosition(2), testutil.WithFreeLesson())

	detail, err := service.GetLessonDetail(context.Background(), uuid.Nil, lesson.ID.String())
	require.NoError(t, err)

	assert.False(t, detail.HasAccess)
	assert.Empty(t, detail.Content)
	assert.Empty(t, detail.VideoURL)

	// Metadata and outline still render so the page can show a paywall.
	assert.Equal(t, lesson.Title, detail.Title)
	assert.Equal(t, course.Title, detail.CourseTitle)
	require.Len(t, detail.Outline, 2)
	assert.Equal(t, 1, detail.Outline[0].Position)
	assert.Equal(t, 2, detail.Outline[1].Position)
}

func TestGetLessonDetail_SubscriberSeesContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCatalogService(db)

	course := testutil.TestCourse(t, db)
	lesson := testutil.TestLesson(t, db, course.ID)

	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)
	testutil.TestSubscription(t, db, account, plan, testutil.WithActivePeriod())

	detail, err := service.GetLessonDetail(context.Background(), account.ID, lesson.ID.String())
	require.NoError(t, err)

	assert.True(t, detail.HasAccess)
	assert.Equal(t, lesson.Content, detail.Content)
	assert.Equal(t, lesson.VideoURL, detail.VideoURL)
}

func TestGetLessonDetail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCatalogService(db)

	_, err := service.GetLessonDetail(context.Background(), uuid.Nil, uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrLessonNotFound)
}

func TestCompleteLesson(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCatalogService(db)
	ctx := context.Background()

	course := testutil.TestCourse(t, db)
	lesson := testutil.TestLesson(t, db, course.ID)

	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)
	testutil.TestSubscription(t, db, account, plan, testutil.WithActivePeriod())

	require.NoError(t, service.CompleteLesson(ctx, account.ID, lesson.ID.String()))
	// Completing twice upserts rather than duplicating.
	require.NoError(t, service.CompleteLesson(ctx, account.ID, lesson.ID.String()))

	var count int64
	require.NoError(t, db.Model(&db_models.LessonProgress{}).
		Where("account_id = ? AND lesson_id = ?", account.ID, lesson.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	detail, err := service.GetLessonDetail(ctx, account.ID, lesson.ID.String())
	require.NoError(t, err)
	assert.True(t, detail.IsCompleted)
}

func TestCompleteLesson_DeniedWithoutSubscription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCatalogService(db)

	course := testutil.TestCourse(t, db)
	lesson := testutil.TestLesson(t, db, course.ID)
	account := testutil.TestAccount(t, db)

	err := service.CompleteLesson(context.Background(), account.ID, lesson.ID.String())
	assert.ErrorIs(t, err, utils.ErrAccessDenied)
}

func TestCompleteLesson_FreeLessonWithoutSubscription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCatalogService(db)

	course := testutil.TestCourse(t, db)
	lesson := testutil.TestLesson(t, db, course.ID, testutil.WithFreeLesson())
	account := testutil.TestAccount(t, db)

	assert.NoError(t, service.CompleteLesson(context.Background(), account.ID, lesson.ID.String()))
}
