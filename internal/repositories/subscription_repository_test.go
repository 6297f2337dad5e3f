package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elimu/internal/models/db_models"
	"elimu/internal/testutil"
	"elimu/pkg/utils"
)

func TestSubscriptionRepository_CreatePendingAndFindByReference(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	sub, err := repo.CreatePending(context.Background(), account.ID, plan.ID, "lenco", "sub_ref_1")
	require.NoError(t, err)

	assert.Equal(t, db_models.SubStatusPending, sub.Status)
	assert.Nil(t, sub.PeriodEnd)

	found, err := repo.FindByExternalReference(context.Background(), "sub_ref_1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, sub.ID, found.ID)
	assert.Equal(t, plan.ID, found.Plan.ID)
}

func TestSubscriptionRepository_FindByReference_Absent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)

	found, err := repo.FindByExternalReference(context.Background(), "no_such_ref")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSubscriptionRepository_FindActiveForAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	// No subscription at all.
	found, err := repo.FindActiveForAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Pending does not count as active.
	testutil.TestSubscription(t, db, account, plan)
	found, err = repo.FindActiveForAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSubscriptionRepository_FindActiveForAccount_ExpiredExcluded(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	testutil.TestSubscription(t, db, account, plan, testutil.WithExpiredPeriod())

	found, err := repo.FindActiveForAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSubscriptionRepository_FindActiveForAccount_LatestExpiryWins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	near := testutil.TestSubscription(t, db, account, plan, testutil.WithActivePeriod())
	_ = near

	farEnd := time.Now().AddDate(0, 6, 0).Unix()
	farStart := time.Now().Unix()
	far := testutil.TestSubscription(t, db, account, plan, func(s *db_models.Subscription) {
		s.Status = db_models.SubStatusActive
		s.PeriodStart = &farStart
		s.PeriodEnd = &farEnd
	})

	found, err := repo.FindActiveForAccount(context.Background(), account.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, far.ID, found.ID)
}

func TestSubscriptionRepository_Activate_MonthlyPeriod(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db) // monthly
	sub := testutil.TestSubscription(t, db, account, plan)

	customerID := "cus_123"
	activated, err := repo.Activate(context.Background(), sub.ID, &customerID)
	require.NoError(t, err)

	assert.Equal(t, db_models.SubStatusActive, activated.Status)
	require.NotNil(t, activated.PeriodStart)
	require.NotNil(t, activated.PeriodEnd)
	require.NotNil(t, activated.ExternalCustomerID)
	assert.Equal(t, "cus_123", *activated.ExternalCustomerID)

	start := time.Unix(*activated.PeriodStart, 0)
	end := time.Unix(*activated.PeriodEnd, 0)
	expected := utils.AddBillingInterval(start, db_models.IntervalMonth)
	assert.WithinDuration(t, expected, end, time.Second)
}

func TestSubscriptionRepository_Activate_YearlyPeriod(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db, testutil.WithInterval(db_models.IntervalYear))
	sub := testutil.TestSubscription(t, db, account, plan)

	activated, err := repo.Activate(context.Background(), sub.ID, nil)
	require.NoError(t, err)

	start := time.Unix(*activated.PeriodStart, 0)
	end := time.Unix(*activated.PeriodEnd, 0)
	expected := utils.AddBillingInterval(start, db_models.IntervalYear)
	assert.WithinDuration(t, expected, end, time.Second)
}

func TestSubscriptionRepository_Activate_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)

	_, err := repo.Activate(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, utils.ErrSubscriptionNotFound)
}

func TestSubscriptionRepository_MarkIncomplete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)
	sub := testutil.TestSubscription(t, db, account, plan)

	require.NoError(t, repo.MarkIncomplete(context.Background(), sub.ID))
	// Repeating is a no-op, not an error.
	require.NoError(t, repo.MarkIncomplete(context.Background(), sub.ID))

	var got db_models.Subscription
	require.NoError(t, db.First(&got, "id = ?", sub.ID).Error)
	assert.Equal(t, db_models.SubStatusIncomplete, got.Status)
}

func TestSubscriptionRepository_MarkIncomplete_NeverDemotesActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)
	sub := testutil.TestSubscription(t, db, account, plan, testutil.WithActivePeriod())

	require.NoError(t, repo.MarkIncomplete(context.Background(), sub.ID))

	var got db_models.Subscription
	require.NoError(t, db.First(&got, "id = ?", sub.ID).Error)
	assert.Equal(t, db_models.SubStatusActive, got.Status)
}

func TestSubscriptionRepository_ListForAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSubscriptionRepository(db)
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	testutil.TestSubscription(t, db, account, plan, testutil.WithStatus(db_models.SubStatusIncomplete))
	testutil.TestSubscription(t, db, account, plan, testutil.WithActivePeriod())

	subs, err := repo.ListForAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
	assert.Equal(t, plan.Code, subs[0].Plan.Code)
}
