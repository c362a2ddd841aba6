package billing

import "errors"

var (
	ErrNotAuthenticated   = errors.New("billing: caller is not authenticated")
	ErrCustomerResolution = errors.New("billing: failed to resolve billing customer")

	// Constructor guards
	ErrMissingAPIKey           = errors.New("billing: provider API key is required")
	ErrMissingReturnURL        = errors.New("billing: portal return URL is required")
	ErrMissingProvider         = errors.New("billing: provider is required")
	ErrMissingCustomerResolver = errors.New("billing: customer resolver is required")
	ErrNoPortalURL             = errors.New("billing: no portal URL returned from provider")
)

// ProviderError reports a failure from the billing provider. Message preserves
// the provider's own human-readable diagnostics so it can be surfaced verbatim
// in an ErrorResult.
type ProviderError struct {
	Message string
	Err     error // underlying SDK/transport error, may be nil
}

func (e *ProviderError) Error() string {
	return "billing provider: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// errorDetail extracts the diagnostic message carried by err. Provider errors
// contribute their verbatim provider message; anything else falls back to the
// error string.
func errorDetail(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	return err.Error()
}
