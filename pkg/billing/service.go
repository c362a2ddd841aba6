package billing

import "context"

// recentSubscriptionsLimit caps the provider read to the single most recent
// subscription; reconciling multiple subscriptions per customer is out of
// scope.
const recentSubscriptionsLimit = 1

// Service defines the two self-service billing operations. Both gate on the
// caller identity carried in the context, and both always answer with a
// Result value; no failure escapes as an error or panic.
type Service interface {
	// ResolveStatus fetches the customer's most recent subscription and maps
	// it into the normalized status contract. Zero subscriptions is a valid
	// terminal state reported as NoSubscriptionResult.
	ResolveStatus(ctx context.Context) Result

	// CreatePortalSession issues a single-use billing portal session URL for
	// the customer. The session is tracked by the provider, not by this
	// service.
	CreatePortalSession(ctx context.Context) Result
}

type service struct {
	provider  Provider
	customers CustomerResolver
	returnURL string
}

// NewService creates a Service backed by the given provider and customer
// binding. Panics if provider or customers is nil to fail fast during
// initialization; returns an error for missing configuration values.
func NewService(provider Provider, customers CustomerResolver, returnURL string) (Service, error) {
	if provider == nil {
		panic("billing: Provider is required")
	}
	if customers == nil {
		panic("billing: CustomerResolver is required")
	}
	if returnURL == "" {
		return nil, ErrMissingReturnURL
	}

	return &service{
		provider:  provider,
		customers: customers,
		returnURL: returnURL,
	}, nil
}

func (s *service) ResolveStatus(ctx context.Context) Result {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return notAuthenticated()
	}

	customerID, err := s.customers(ctx, userID)
	if err != nil {
		return operationError(ErrorFetchStatus, userID, err)
	}

	records, err := s.provider.ListRecentSubscriptions(ctx, customerID, recentSubscriptionsLimit)
	if err != nil {
		return operationError(ErrorFetchStatus, userID, err)
	}

	if len(records) == 0 {
		return noSubscription(userID)
	}

	return normalizeStatus(records[0], userID)
}

func (s *service) CreatePortalSession(ctx context.Context) Result {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return notAuthenticated()
	}

	customerID, err := s.customers(ctx, userID)
	if err != nil {
		return operationError(ErrorCreatePortalSession, userID, err)
	}

	sess, err := s.provider.CreatePortalSession(ctx, customerID, s.returnURL)
	if err != nil {
		return operationError(ErrorCreatePortalSession, userID, err)
	}

	return SessionResult{
		Kind:   KindSession,
		URL:    sess.URL,
		UserID: userID,
	}
}

// normalizeStatus maps a raw subscription record into the stable status
// contract: status copied verbatim, plan name defaulted when the provider
// supplies no nickname, period end nullable, cancel flag defaulting to false
// through the record's zero value.
func normalizeStatus(rec SubscriptionRecord, userID string) StatusResult {
	planName := rec.PlanNickname
	if planName == "" {
		planName = DefaultPlanName
	}

	var periodEnd *Timestamp
	if rec.CurrentPeriodEnd > 0 {
		ts := NewTimestamp(rec.CurrentPeriodEnd)
		periodEnd = &ts
	}

	return StatusResult{
		Kind:              KindStatus,
		Status:            rec.Status,
		PlanName:          planName,
		CurrentPeriodEnd:  periodEnd,
		CancelAtPeriodEnd: rec.CancelAtPeriodEnd,
		UserID:            userID,
	}
}
