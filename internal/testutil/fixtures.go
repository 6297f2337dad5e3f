package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"elimu/internal/models/db_models"
)

// TestAccount creates a student account.
func TestAccount(t *testing.T, db *gorm.DB, opts ...func(*db_models.Account)) *db_models.Account {
	t.Helper()

	account := &db_models.Account{
		Name:         "Test Student",
		Email:        fmt.Sprintf("student_%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz123456",
		Role:         db_models.RoleStudent,
	}

	for _, opt := range opts {
		opt(account)
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return account
}

func WithEmail(email string) func(*db_models.Account) {
	return func(a *db_models.Account) {
		a.Email = email
	}
}

func WithRole(role db_models.AccountRole) func(*db_models.Account) {
	return func(a *db_models.Account) {
		a.Role = role
	}
}

// TestPlan creates an active monthly plan priced at 2900 minor units.
func TestPlan(t *testing.T, db *gorm.DB, opts ...func(*db_models.Plan)) *db_models.Plan {
	t.Helper()

	plan := &db_models.Plan{
		Code:       fmt.Sprintf("monthly_%d", time.Now().UnixNano()),
		Name:       "Monthly",
		Interval:   db_models.IntervalMonth,
		PriceMinor: 2900,
		Currency:   "ZMW",
		IsActive:   true,
	}

	for _, opt := range opts {
		opt(plan)
	}

	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("Failed to create test plan: %v", err)
	}

	return plan
}

func WithInterval(interval db_models.BillingInterval) func(*db_models.Plan) {
	return func(p *db_models.Plan) {
		p.Interval = interval
	}
}

func WithInactivePlan() func(*db_models.Plan) {
	return func(p *db_models.Plan) {
		p.IsActive = false
	}
}

// TestSubscription creates a subscription for the account/plan pair.
// Defaults to pending with a fresh reference.
func TestSubscription(t *testing.T, db *gorm.DB, account *db_models.Account, plan *db_models.Plan, opts ...func(*db_models.Subscription)) *db_models.Subscription {
	t.Helper()

	sub := &db_models.Subscription{
		AccountID:         account.ID,
		PlanID:            plan.ID,
		Status:            db_models.SubStatusPending,
		Provider:          "lenco",
		ExternalReference: fmt.Sprintf("sub_%s_%d", account.ID, time.Now().UnixNano()),
	}

	for _, opt := range opts {
		opt(sub)
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}

func WithStatus(status db_models.SubscriptionStatus) func(*db_models.Subscription) {
	return func(s *db_models.Subscription) {
		s.Status = status
	}
}

func WithReference(reference string) func(*db_models.Subscription) {
	return func(s *db_models.Subscription) {
		s.ExternalReference = reference
	}
}

// WithActivePeriod marks the subscription active from now until now+30d.
func WithActivePeriod() func(*db_models.Subscription) {
	return func(s *db_models.Subscription) {
		start := time.Now().Unix()
		end := time.Now().AddDate(0, 0, 30).Unix()
		s.Status = db_models.SubStatusActive
		s.PeriodStart = &start
		s.PeriodEnd = &end
	}
}

// WithExpiredPeriod marks the subscription active but already lapsed.
func WithExpiredPeriod() func(*db_models.Subscription) {
	return func(s *db_models.Subscription) {
		start := time.Now().AddDate(0, -2, 0).Unix()
		end := time.Now().AddDate(0, -1, 0).Unix()
		s.Status = db_models.SubStatusActive
		s.PeriodStart = &start
		s.PeriodEnd = &end
	}
}

// TestCourse creates a published course with its own category and
// instructor.
func TestCourse(t *testing.T, db *gorm.DB, opts ...func(*db_models.Course)) *db_models.Course {
	t.Helper()

	suffix := time.Now().UnixNano()

	category := &db_models.Category{
		Name: "Leadership",
		Slug: fmt.Sprintf("leadership_%d", suffix),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	instructor := TestAccount(t, db, WithRole(db_models.RoleInstructor))

	course := &db_models.Course{
		Title:        "The Game Changer",
		Slug:         fmt.Sprintf("the-game-changer_%d", suffix),
		Description:  "Transform your leadership approach.",
		CategoryID:   category.ID,
		InstructorID: instructor.ID,
		Published:    true,
	}

	for _, opt := range opts {
		opt(course)
	}

	if err := db.Create(course).Error; err != nil {
		t.Fatalf("Failed to create test course: %v", err)
	}

	return course
}

func WithFreeCourse() func(*db_models.Course) {
	return func(c *db_models.Course) {
		c.IsFree = true
	}
}

func WithUnpublished() func(*db_models.Course) {
	return func(c *db_models.Course) {
		c.Published = false
	}
}

// TestLesson creates a lesson in the given course.
func TestLesson(t *testing.T, db *gorm.DB, courseID uuid.UUID, opts ...func(*db_models.Lesson)) *db_models.Lesson {
	t.Helper()

	lesson := &db_models.Lesson{
		CourseID: courseID,
		Title:    "Lesson One",
		Position: 1,
		Content:  "Lesson body",
		VideoURL: "https://videos.example.com/lesson-one",
	}

	for _, opt := range opts {
		opt(lesson)
	}

	if err := db.Create(lesson).Error; err != nil {
		t.Fatalf("Failed to create test lesson: %v", err)
	}

	return lesson
}

func WithFreeLesson() func(*db_models.Lesson) {
	return func(l *db_models.Lesson) {
		l.IsFree = true
	}
}

func WithPosition(position int) func(*db_models.Lesson) {
	return func(l *db_models.Lesson) {
		l.Position = position
	}
}
