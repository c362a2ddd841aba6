package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/billingkit/pkg/billing"
)

func TestNewStripeProvider(t *testing.T) {
	t.Parallel()

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()
		_, err := billing.NewStripeProvider(billing.StripeConfig{})
		assert.ErrorIs(t, err, billing.ErrMissingAPIKey)
	})

	t.Run("creates provider with key", func(t *testing.T) {
		t.Parallel()
		provider, err := billing.NewStripeProvider(billing.StripeConfig{APIKey: "sk_test_placeholder"})
		require.NoError(t, err)
		assert.NotNil(t, provider)
	})
}

func TestStripeProvider_InputValidation(t *testing.T) {
	t.Parallel()

	provider, err := billing.NewStripeProvider(billing.StripeConfig{APIKey: "sk_test_placeholder"})
	require.NoError(t, err)

	t.Run("list requires customer ID", func(t *testing.T) {
		t.Parallel()
		_, err := provider.ListRecentSubscriptions(context.Background(), "", 1)
		assert.Error(t, err)
	})

	t.Run("portal session requires customer ID", func(t *testing.T) {
		t.Parallel()
		_, err := provider.CreatePortalSession(context.Background(), "", "https://example.com")
		assert.Error(t, err)
	})

	t.Run("portal session requires return URL", func(t *testing.T) {
		t.Parallel()
		_, err := provider.CreatePortalSession(context.Background(), "cus_test", "")
		assert.ErrorIs(t, err, billing.ErrMissingReturnURL)
	})
}

func TestProviderError(t *testing.T) {
	t.Parallel()

	t.Run("carries verbatim provider message", func(t *testing.T) {
		t.Parallel()
		err := &billing.ProviderError{Message: "No such customer: cus_missing"}
		assert.Equal(t, "billing provider: No such customer: cus_missing", err.Error())
	})

	t.Run("unwraps the underlying error", func(t *testing.T) {
		t.Parallel()
		underlying := assert.AnError
		err := &billing.ProviderError{Message: "boom", Err: underlying}
		assert.ErrorIs(t, err, underlying)
	})
}
