// Package billing exposes an authenticated user's subscription state from an
// external billing provider and issues hosted self-service portal sessions.
//
// The package sits between an identity-gated invocation and the billing
// provider. Every operation gates on the caller identity carried in the
// context, resolves it to a provider customer through an injected
// CustomerResolver, talks to the provider through the minimal Provider
// interface, and converts every category of upstream failure into a plain
// Result value. Nothing escapes the boundary as an error or panic.
//
// # Architecture
//
//   - Service: the two operations, ResolveStatus and CreatePortalSession
//   - Provider: capability interface over the external billing service
//   - StripeProvider: Provider implementation on the official Stripe SDK
//   - CustomerResolver: injected identity-to-customer binding
//   - Result: closed union of the four response shapes
//
// Each invocation is independent and stateless: no cache, no subscription
// store, no shared mutable state, no retries. The provider call is the only
// suspension point, and the context's deadline bounds it.
//
// # Quick Start
//
//	provider, err := billing.NewStripeProvider(billing.StripeConfig{
//		APIKey: os.Getenv("STRIPE_SECRET_KEY"),
//	})
//	if err != nil {
//		// handle error
//	}
//
//	svc, err := billing.NewService(
//		provider,
//		billing.StaticCustomerResolver("cus_123"),
//		"https://app.example.com/billing",
//	)
//	if err != nil {
//		// handle error
//	}
//
//	ctx := billing.WithUserID(r.Context(), userID)
//	result := svc.ResolveStatus(ctx)
//	switch res := result.(type) {
//	case billing.StatusResult:
//		// res.Status, res.PlanName, res.CurrentPeriodEnd, ...
//	case billing.NoSubscriptionResult:
//		// the customer has no subscriptions; valid terminal state
//	case billing.ErrorResult:
//		// res.Error is a stable category, res.Message the diagnostics
//	}
//
// # Response Contract
//
// Results serialize to JSON with an explicit "kind" discriminant:
//
//	{"kind":"status","status":"active","planName":"Pro","currentPeriodEnd":"2023-11-14T22:13:20.000Z","cancelAtPeriodEnd":false,"userId":"..."}
//	{"kind":"no_subscription","status":"No subscription","userId":"..."}
//	{"kind":"session","url":"https://billing.stripe.com/session/...","userId":"..."}
//	{"kind":"error","error":"Failed to fetch subscription status","message":"...","userId":"..."}
//
// userId is present on every response once identity has been resolved; the
// unauthenticated rejection is the only shape that omits it.
package billing
