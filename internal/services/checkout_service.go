package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/google/uuid"

	"elimu/internal/gateway"
	"elimu/internal/models/response_models"
	"elimu/internal/repositories"
	"elimu/pkg/memcache"
	"elimu/pkg/utils"
)

type CheckoutService interface {
	StartCheckout(ctx context.Context, accountID uuid.UUID, planID, phone string) (*response_models.CreateCheckoutResponse, error)
}

type checkoutService struct {
	planRepo    repositories.IPlanRepository
	accountRepo repositories.AccountRepository
	subRepo     repositories.SubscriptionRepository
	gateway     *gateway.Client
	locks       memcache.CheckoutLockStore
}

func NewCheckoutService(
	planRepo repositories.IPlanRepository,
	accountRepo repositories.AccountRepository,
	subRepo repositories.SubscriptionRepository,
	gw *gateway.Client,
	locks memcache.CheckoutLockStore,
) CheckoutService {
	return &checkoutService{
		planRepo:    planRepo,
		accountRepo: accountRepo,
		subRepo:     subRepo,
		gateway:     gw,
		locks:       locks,
	}
}

// StartCheckout creates a pending subscription and asks the provider to
// prompt the payer's phone. It returns as soon as the collection is
// initiated; the subscription stays pending until the webhook settles it,
// so callers poll subscription status rather than waiting here.
func (s *checkoutService) StartCheckout(ctx context.Context, accountID uuid.UUID, planID, phone string) (*response_models.CreateCheckoutResponse, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required for mobile money payment", utils.ErrValidation)
	}

	plan, err := s.planRepo.GetPlanInfoById(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || !plan.IsActive {
		return nil, utils.ErrPlanNotFound
	}

	account, err := s.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	// Serialize the check-then-create sequence per account. Without this
	// two concurrent checkouts could both pass the duplicate check below.
	release := s.locks.Acquire(accountID.String())
	defer release()

	active, err := s.subRepo.FindActiveForAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if active != nil {
		return nil, utils.ErrAlreadySubscribed
	}

	pending, err := s.subRepo.FindPendingForAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pending != nil {
		return nil, utils.ErrAlreadySubscribed
	}

	reference := fmt.Sprintf("sub_%s_%d", accountID, time.Now().UnixNano())

	sub, err := s.subRepo.CreatePending(ctx, accountID, plan.ID, s.gateway.ProviderName(), reference)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	payment, err := s.gateway.InitiateMobileMoneyCharge(ctx, gateway.ChargeRequest{
		AmountMinor: plan.PriceMinor,
		Currency:    plan.Currency,
		Email:       account.Email,
		Phone:       phone,
		Reference:   reference,
	})
	if err != nil {
		// Compensating action: the pending row would otherwise sit
		// orphaned forever. A timeout is the exception, the payment may
		// still complete and the webhook will settle the row.
		if isInitiationTimeout(ctx, err) {
			log.Printf("checkout: gateway call timed out for %s, leaving subscription pending", reference)
		} else {
			if markErr := s.subRepo.MarkIncomplete(ctx, sub.ID); markErr != nil {
				log.Printf("checkout: failed to mark subscription %s incomplete after gateway error: %v", sub.ID, markErr)
			}
		}
		return nil, err
	}

	return &response_models.CreateCheckoutResponse{
		Reference: reference,
		Status:    "pending",
		Message:   "Payment initiated. Check your phone to approve.",
		Payment:   payment,
	}, nil
}

// isInitiationTimeout reports whether the charge initiation failed because
// of a deadline rather than a rejection. Covers the caller's context and
// the gateway's own http.Client timeout, which fires without touching
// ctx.Err().
func isInitiationTimeout(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
