package billing

import "context"

// Provider defines the minimal capability interface over the external billing
// service. The resolvers depend only on this interface, never on a provider
// SDK shape, so the integration stays substitutable in tests without
// environment mutation.
//
// Implementations must not retry: a single upstream failure surfaces
// immediately as a *ProviderError.
type Provider interface {
	// ListRecentSubscriptions returns up to limit subscription records for the
	// customer, most recent first. An empty slice is a valid answer and means
	// the customer has no subscriptions.
	ListRecentSubscriptions(ctx context.Context, customerID string, limit int) ([]SubscriptionRecord, error)

	// CreatePortalSession creates a live, provider-tracked self-service portal
	// session. The returned URL is single-use and time-boxed by the provider.
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalSessionRecord, error)
}

// SubscriptionRecord is the provider-neutral view of a raw subscription.
// Adapters copy provider fields into it without interpreting them; defaulting
// rules live in the resolver.
type SubscriptionRecord struct {
	ID                string
	Status            string // provider's status enumeration, case preserved
	PlanNickname      string // empty when the provider supplies none
	CurrentPeriodEnd  int64  // unix seconds, zero when absent
	CancelAtPeriodEnd bool
}

// PortalSessionRecord is a provider-issued billing portal session.
type PortalSessionRecord struct {
	ID  string
	URL string
}
