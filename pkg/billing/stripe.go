package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeConfig holds configuration for the Stripe billing provider.
type StripeConfig struct {
	APIKey string `env:"STRIPE_SECRET_KEY,required"`
}

// StripeProvider implements Provider for Stripe. It owns a per-instance
// API client rather than mutating the SDK's package-level key, so multiple
// providers with different credentials can coexist in one process.
type StripeProvider struct {
	api    *client.API
	config StripeConfig
}

// NewStripeProvider creates a new Stripe billing provider.
func NewStripeProvider(config StripeConfig) (*StripeProvider, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	api := &client.API{}
	api.Init(config.APIKey, nil)

	return &StripeProvider{
		api:    api,
		config: config,
	}, nil
}

// ListRecentSubscriptions returns up to limit of the customer's subscriptions,
// most recent first. Stripe orders list results by creation date descending,
// which matches the "most recent subscription" contract.
func (p *StripeProvider) ListRecentSubscriptions(ctx context.Context, customerID string, limit int) ([]SubscriptionRecord, error) {
	if customerID == "" {
		return nil, errors.New("billing: customer ID is required")
	}

	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx
	if limit > 0 {
		params.Limit = stripe.Int64(int64(limit))
	}

	records := make([]SubscriptionRecord, 0, limit)
	iter := p.api.Subscriptions.List(params)
	for iter.Next() {
		records = append(records, newSubscriptionRecord(iter.Subscription()))
		// The iterator auto-paginates past Limit; stop once enough collected.
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	if err := iter.Err(); err != nil {
		return nil, providerError("list subscriptions", err)
	}

	return records, nil
}

// CreatePortalSession creates a Stripe billing portal session for the
// customer. The session URL is single-use and expires on Stripe's schedule.
func (p *StripeProvider) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalSessionRecord, error) {
	if customerID == "" {
		return nil, errors.New("billing: customer ID is required")
	}
	if returnURL == "" {
		return nil, ErrMissingReturnURL
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	sess, err := p.api.BillingPortalSessions.New(params)
	if err != nil {
		return nil, providerError("create billing portal session", err)
	}
	if sess.URL == "" {
		return nil, providerError("create billing portal session", ErrNoPortalURL)
	}

	return &PortalSessionRecord{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// newSubscriptionRecord copies raw Stripe fields into the provider-neutral
// record. A subscription with zero line items still maps cleanly; the
// nickname simply stays empty and defaulting happens downstream.
func newSubscriptionRecord(sub *stripe.Subscription) SubscriptionRecord {
	rec := SubscriptionRecord{
		ID:                sub.ID,
		Status:            string(sub.Status),
		CurrentPeriodEnd:  sub.CurrentPeriodEnd,
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		if price := sub.Items.Data[0].Price; price != nil {
			rec.PlanNickname = price.Nickname
		}
	}
	return rec
}

// providerError wraps a Stripe failure, preferring Stripe's own message so it
// reaches the ErrorResult verbatim.
func providerError(op string, err error) *ProviderError {
	msg := err.Error()
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Msg != "" {
		msg = sErr.Msg
	}
	return &ProviderError{
		Message: msg,
		Err:     fmt.Errorf("stripe: %s: %w", op, err),
	}
}
