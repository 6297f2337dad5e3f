package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"elimu/internal/gateway"
	"elimu/internal/models/db_models"
	"elimu/internal/repositories"
	"elimu/internal/testutil"
	"elimu/pkg/memcache"
	"elimu/pkg/utils"
)

func newCheckoutService(t *testing.T, db *gorm.DB, gw *gateway.Client) CheckoutService {
	t.Helper()

	return NewCheckoutService(
		repositories.NewPlanRepository(db),
		repositories.NewAccountRepository(db),
		repositories.NewSubscriptionRepository(db),
		gw,
		memcache.NewCheckoutLocks(),
	)
}

func TestStartCheckout_CreatesPendingSubscription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	// Gateway without credentials runs in logged no-op mode.
	service := newCheckoutService(t, db, gateway.NewClient(gateway.Config{}))

	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	checkout, err := service.StartCheckout(context.Background(), account.ID, plan.ID.String(), "0977000000")
	require.NoError(t, err)

	assert.NotEmpty(t, checkout.Reference)
	assert.Equal(t, "pending", checkout.Status)

	var sub db_models.Subscription
	require.NoError(t, db.First(&sub, "external_reference = ?", checkout.Reference).Error)
	assert.Equal(t, db_models.SubStatusPending, sub.Status)
	assert.Equal(t, account.ID, sub.AccountID)
	assert.Equal(t, plan.ID, sub.PlanID)
	assert.Nil(t, sub.PeriodEnd)
}

func TestStartCheckout_PhoneRequired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCheckoutService(t, db, gateway.NewClient(gateway.Config{}))
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	_, err := service.StartCheckout(context.Background(), account.ID, plan.ID.String(), "")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestStartCheckout_PlanNotFoundOrInactive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCheckoutService(t, db, gateway.NewClient(gateway.Config{}))
	account := testutil.TestAccount(t, db)

	_, err := service.StartCheckout(context.Background(), account.ID, uuid.New().String(), "0977000000")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)

	inactive := testutil.TestPlan(t, db, testutil.WithInactivePlan())
	_, err = service.StartCheckout(context.Background(), account.ID, inactive.ID.String(), "0977000000")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)

	_, err = service.StartCheckout(context.Background(), account.ID, "not-a-uuid", "0977000000")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestStartCheckout_AccountNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCheckoutService(t, db, gateway.NewClient(gateway.Config{}))
	plan := testutil.TestPlan(t, db)

	_, err := service.StartCheckout(context.Background(), uuid.New(), plan.ID.String(), "0977000000")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestStartCheckout_ConflictWithActiveSubscription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCheckoutService(t, db, gateway.NewClient(gateway.Config{}))
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)
	testutil.TestSubscription(t, db, account, plan, testutil.WithActivePeriod())

	_, err := service.StartCheckout(context.Background(), account.ID, plan.ID.String(), "0977000000")
	assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)

	// No second row was created.
	var count int64
	require.NoError(t, db.Model(&db_models.Subscription{}).Where("account_id = ?", account.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStartCheckout_ConflictWithPendingSubscription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCheckoutService(t, db, gateway.NewClient(gateway.Config{}))
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)
	testutil.TestSubscription(t, db, account, plan)

	_, err := service.StartCheckout(context.Background(), account.ID, plan.ID.String(), "0977000000")
	assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)
}

func TestStartCheckout_GatewayFailureMarksIncomplete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Operator unavailable"})
	}))
	defer srv.Close()

	gw := gateway.NewClient(gateway.Config{SecretKey: "sk_test", BaseURL: srv.URL})
	service := newCheckoutService(t, db, gw)

	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	_, err := service.StartCheckout(context.Background(), account.ID, plan.ID.String(), "0977000000")
	require.ErrorIs(t, err, utils.ErrGatewayError)

	// Compensating action: the pending row is not left orphaned.
	var sub db_models.Subscription
	require.NoError(t, db.First(&sub, "account_id = ?", account.ID).Error)
	assert.Equal(t, db_models.SubStatusIncomplete, sub.Status)
}

func TestStartCheckout_SlowGatewayLeavesPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	gw := gateway.NewClient(gateway.Config{
		SecretKey: "sk_test",
		BaseURL:   srv.URL,
		Timeout:   50 * time.Millisecond,
	})
	service := newCheckoutService(t, db, gw)

	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	_, err := service.StartCheckout(context.Background(), account.ID, plan.ID.String(), "0977000000")
	require.ErrorIs(t, err, utils.ErrGatewayError)

	// The payment may still complete; the webhook settles the row later.
	var sub db_models.Subscription
	require.NoError(t, db.First(&sub, "account_id = ?", account.ID).Error)
	assert.Equal(t, db_models.SubStatusPending, sub.Status)
}

func TestStartCheckout_ConcurrentDuplicatesSerialized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := newCheckoutService(t, db, gateway.NewClient(gateway.Config{}))
	account := testutil.TestAccount(t, db)
	plan := testutil.TestPlan(t, db)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.StartCheckout(context.Background(), account.ID, plan.ID.String(), "0977000000")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, db.Model(&db_models.Subscription{}).Where("account_id = ?", account.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
