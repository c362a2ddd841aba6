package billing

import "context"

// CustomerResolver maps an internal caller identity to the billing provider's
// customer identifier. Implementations may fail; any error aborts the
// operation and is reported as an ErrorResult with the caller's identity
// attached.
//
// A production deployment backs this with a persistent store; development
// setups can pin every caller to a single test customer via
// StaticCustomerResolver.
type CustomerResolver func(ctx context.Context, userID string) (string, error)

// StaticCustomerResolver returns a resolver that maps every caller to the
// same provider customer. This reproduces the fixed-binding deployment
// shortcut without baking the constant into the resolvers themselves.
func StaticCustomerResolver(customerID string) CustomerResolver {
	return func(ctx context.Context, _ string) (string, error) {
		if customerID == "" {
			return "", ErrCustomerResolution
		}
		return customerID, nil
	}
}
