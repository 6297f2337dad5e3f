package services

import (
	"context"
	"log"

	"elimu/internal/gateway"
	"elimu/internal/models/db_models"
	"elimu/internal/repositories"
	"elimu/pkg/utils"
)

// WebhookResult is what the HTTP boundary reports back to the provider.
// Processed=false still acknowledges receipt; only a bad signature is
// rejected, everything else returns 200 so the provider never retries
// because of our internal problems.
type WebhookResult struct {
	Received  bool `json:"received"`
	Processed bool `json:"processed"`
}

type WebhookService interface {
	HandleEvent(ctx context.Context, rawBody []byte, signatureHeader string) (WebhookResult, error)
}

type webhookService struct {
	subRepo repositories.SubscriptionRepository
	gateway *gateway.Client
	mail    IMailService
}

func NewWebhookService(
	subRepo repositories.SubscriptionRepository,
	gw *gateway.Client,
	mail IMailService,
) WebhookService {
	return &webhookService{
		subRepo: subRepo,
		gateway: gw,
		mail:    mail,
	}
}

// HandleEvent reconciles one provider event into subscription state. It is
// idempotent under at-least-once delivery: replaying a successful event
// cannot double-activate or move the billing period, and a failed event
// arriving after activation is ignored (active is sticky).
func (w *webhookService) HandleEvent(ctx context.Context, rawBody []byte, signatureHeader string) (WebhookResult, error) {
	if !w.gateway.VerifySignature(rawBody, signatureHeader) {
		return WebhookResult{}, utils.ErrSignatureInvalid
	}

	event, err := gateway.ParseEvent(rawBody)
	if err != nil {
		log.Printf("webhook: unparseable payload: %v", err)
		return WebhookResult{Received: true}, nil
	}

	log.Printf("webhook: received %s for reference %q", event.Type, event.Reference)

	switch event.Type {
	case gateway.EventTransactionSuccessful:
		return w.handleSuccessful(ctx, event), nil
	case gateway.EventTransactionFailed:
		return w.handleFailed(ctx, event), nil
	default:
		log.Printf("webhook: unhandled event type %q", event.Type)
		return WebhookResult{Received: true}, nil
	}
}

func (w *webhookService) handleSuccessful(ctx context.Context, event gateway.WebhookEvent) WebhookResult {
	sub, err := w.subRepo.FindByExternalReference(ctx, event.Reference)
	if err != nil {
		log.Printf("webhook: lookup failed for reference %q: %v", event.Reference, err)
		return WebhookResult{Received: true}
	}
	if sub == nil {
		log.Printf("webhook: no subscription for reference %q", event.Reference)
		return WebhookResult{Received: true}
	}

	if sub.Status == db_models.SubStatusActive {
		// Replayed delivery; the period dates were already stamped.
		log.Printf("webhook: subscription %s already active", sub.ID)
		return WebhookResult{Received: true, Processed: true}
	}

	var customerID *string
	if event.CustomerID != "" {
		customerID = &event.CustomerID
	}

	activated, err := w.subRepo.Activate(ctx, sub.ID, customerID)
	if err != nil {
		log.Printf("webhook: failed to activate subscription %s: %v", sub.ID, err)
		return WebhookResult{Received: true}
	}

	log.Printf("webhook: subscription %s activated until %d", activated.ID, *activated.PeriodEnd)

	if w.mail != nil && sub.Account.Email != "" {
		if err := w.mail.SendSubscriptionActivated(
			sub.Account.Email,
			sub.Account.Name,
			sub.Plan.Name,
			utils.FromUnixSeconds(*activated.PeriodEnd),
		); err != nil {
			log.Printf("webhook: confirmation mail to %s failed: %v", sub.Account.Email, err)
		}
	}

	return WebhookResult{Received: true, Processed: true}
}

func (w *webhookService) handleFailed(ctx context.Context, event gateway.WebhookEvent) WebhookResult {
	sub, err := w.subRepo.FindByExternalReference(ctx, event.Reference)
	if err != nil {
		log.Printf("webhook: lookup failed for reference %q: %v", event.Reference, err)
		return WebhookResult{Received: true}
	}
	if sub == nil {
		return WebhookResult{Received: true}
	}

	if sub.Status == db_models.SubStatusActive {
		// Out-of-order delivery: a failed event for an already-paid
		// subscription must not regress it.
		log.Printf("webhook: ignoring failed event for active subscription %s", sub.ID)
		return WebhookResult{Received: true, Processed: true}
	}

	if err := w.subRepo.MarkIncomplete(ctx, sub.ID); err != nil {
		log.Printf("webhook: failed to mark subscription %s incomplete: %v", sub.ID, err)
		return WebhookResult{Received: true}
	}

	log.Printf("webhook: subscription %s marked incomplete", sub.ID)
	return WebhookResult{Received: true, Processed: true}
}
