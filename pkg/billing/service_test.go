package billing_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/billingkit/pkg/billing"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) ListRecentSubscriptions(ctx context.Context, customerID string, limit int) ([]billing.SubscriptionRecord, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.SubscriptionRecord), args.Error(1)
}

func (m *mockProvider) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*billing.PortalSessionRecord, error) {
	args := m.Called(ctx, customerID, returnURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PortalSessionRecord), args.Error(1)
}

const (
	testUserID     = "user-7c9e"
	testCustomerID = "cus_test123"
	testReturnURL  = "https://app.example.com/billing"
)

func newTestService(t *testing.T, provider billing.Provider) billing.Service {
	t.Helper()
	svc, err := billing.NewService(provider, billing.StaticCustomerResolver(testCustomerID), testReturnURL)
	require.NoError(t, err)
	return svc
}

func authedContext() context.Context {
	return billing.WithUserID(context.Background(), testUserID)
}

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("requires return URL", func(t *testing.T) {
		t.Parallel()
		_, err := billing.NewService(&mockProvider{}, billing.StaticCustomerResolver(testCustomerID), "")
		assert.ErrorIs(t, err, billing.ErrMissingReturnURL)
	})

	t.Run("panics on nil provider", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			_, _ = billing.NewService(nil, billing.StaticCustomerResolver(testCustomerID), testReturnURL)
		})
	})

	t.Run("panics on nil customer resolver", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			_, _ = billing.NewService(&mockProvider{}, nil, testReturnURL)
		})
	})
}

func TestService_ResolveStatus_IdentityGate(t *testing.T) {
	t.Parallel()

	t.Run("rejects missing identity without calling provider", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		svc := newTestService(t, provider)

		result := svc.ResolveStatus(context.Background())

		errResult, ok := result.(billing.ErrorResult)
		require.True(t, ok)
		assert.Equal(t, billing.ErrorNotAuthenticated, errResult.Error)
		assert.Empty(t, errResult.UserID)
		assert.Empty(t, errResult.Message)
		provider.AssertNotCalled(t, "ListRecentSubscriptions", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects blank identity", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		svc := newTestService(t, provider)

		ctx := billing.WithUserID(context.Background(), "   ")
		result := svc.ResolveStatus(ctx)

		errResult, ok := result.(billing.ErrorResult)
		require.True(t, ok)
		assert.Equal(t, billing.ErrorNotAuthenticated, errResult.Error)
		assert.Empty(t, errResult.UserID)
	})

	t.Run("unauthenticated response omits userId key", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		svc := newTestService(t, provider)

		raw, err := json.Marshal(svc.ResolveStatus(context.Background()))
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(raw, &fields))
		assert.NotContains(t, fields, "userId")
		assert.Equal(t, billing.ErrorNotAuthenticated, fields["error"])
	})
}

func TestService_ResolveStatus(t *testing.T) {
	t.Parallel()

	t.Run("returns no-subscription result for empty list", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("ListRecentSubscriptions", mock.Anything, testCustomerID, 1).
			Return([]billing.SubscriptionRecord{}, nil)
		svc := newTestService(t, provider)

		result := svc.ResolveStatus(authedContext())

		noSub, ok := result.(billing.NoSubscriptionResult)
		require.True(t, ok)
		assert.Equal(t, billing.StatusNoSubscription, noSub.Status)
		assert.Equal(t, testUserID, noSub.UserID)
	})

	t.Run("normalizes a full subscription record", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("ListRecentSubscriptions", mock.Anything, testCustomerID, 1).
			Return([]billing.SubscriptionRecord{{
				ID:                "sub_1",
				Status:            "active",
				PlanNickname:      "Pro Monthly",
				CurrentPeriodEnd:  1700000000,
				CancelAtPeriodEnd: true,
			}}, nil)
		svc := newTestService(t, provider)

		result := svc.ResolveStatus(authedContext())

		status, ok := result.(billing.StatusResult)
		require.True(t, ok)
		assert.Equal(t, "active", status.Status)
		assert.Equal(t, "Pro Monthly", status.PlanName)
		require.NotNil(t, status.CurrentPeriodEnd)
		assert.Equal(t, "2023-11-14T22:13:20.000Z", status.CurrentPeriodEnd.String())
		assert.True(t, status.CancelAtPeriodEnd)
		assert.Equal(t, testUserID, status.UserID)
	})

	t.Run("preserves provider status case verbatim", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("ListRecentSubscriptions", mock.Anything, testCustomerID, 1).
			Return([]billing.SubscriptionRecord{{Status: "Past_Due"}}, nil)
		svc := newTestService(t, provider)

		status, ok := svc.ResolveStatus(authedContext()).(billing.StatusResult)
		require.True(t, ok)
		assert.Equal(t, "Past_Due", status.Status)
	})

	t.Run("defaults plan name when nickname is absent", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("ListRecentSubscriptions", mock.Anything, testCustomerID, 1).
			Return([]billing.SubscriptionRecord{{
				Status: "trialing",
			}}, nil)
		svc := newTestService(t, provider)

		status, ok := svc.ResolveStatus(authedContext()).(billing.StatusResult)
		require.True(t, ok)
		assert.Equal(t, "Default Plan", status.PlanName)
		assert.Nil(t, status.CurrentPeriodEnd)
		assert.False(t, status.CancelAtPeriodEnd)
	})

	t.Run("serializes absent period end as null", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("ListRecentSubscriptions", mock.Anything, testCustomerID, 1).
			Return([]billing.SubscriptionRecord{{Status: "active"}}, nil)
		svc := newTestService(t, provider)

		raw, err := json.Marshal(svc.ResolveStatus(authedContext()))
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(raw, &fields))
		assert.Contains(t, fields, "currentPeriodEnd")
		assert.Nil(t, fields["currentPeriodEnd"])
	})

	t.Run("is idempotent with an unchanged provider answer", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("ListRecentSubscriptions", mock.Anything, testCustomerID, 1).
			Return([]billing.SubscriptionRecord{{
				ID:               "sub_1",
				Status:           "active",
				PlanNickname:     "Pro Monthly",
				CurrentPeriodEnd: 1700000000,
			}}, nil)
		svc := newTestService(t, provider)

		first, err := json.Marshal(svc.ResolveStatus(authedContext()))
		require.NoError(t, err)
		second, err := json.Marshal(svc.ResolveStatus(authedContext()))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("converts provider failure into error result", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("ListRecentSubscriptions", mock.Anything, testCustomerID, 1).
			Return(nil, &billing.ProviderError{Message: "rate limit exceeded"})
		svc := newTestService(t, provider)

		errResult, ok := svc.ResolveStatus(authedContext()).(billing.ErrorResult)
		require.True(t, ok)
		assert.Equal(t, billing.ErrorFetchStatus, errResult.Error)
		assert.Equal(t, "rate limit exceeded", errResult.Message)
		assert.Equal(t, testUserID, errResult.UserID)
	})

	t.Run("converts customer resolution failure into error result", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		resolver := func(ctx context.Context, userID string) (string, error) {
			return "", errors.New("customer mapping not found")
		}
		svc, err := billing.NewService(provider, resolver, testReturnURL)
		require.NoError(t, err)

		errResult, ok := svc.ResolveStatus(authedContext()).(billing.ErrorResult)
		require.True(t, ok)
		assert.Equal(t, billing.ErrorFetchStatus, errResult.Error)
		assert.Equal(t, "customer mapping not found", errResult.Message)
		assert.Equal(t, testUserID, errResult.UserID)
		provider.AssertNotCalled(t, "ListRecentSubscriptions", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_CreatePortalSession(t *testing.T) {
	t.Parallel()

	t.Run("rejects missing identity without calling provider", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		svc := newTestService(t, provider)

		errResult, ok := svc.CreatePortalSession(context.Background()).(billing.ErrorResult)
		require.True(t, ok)
		assert.Equal(t, billing.ErrorNotAuthenticated, errResult.Error)
		assert.Empty(t, errResult.UserID)
		provider.AssertNotCalled(t, "CreatePortalSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns provider URL unmodified", func(t *testing.T) {
		t.Parallel()
		const portalURL = "https://billing.stripe.com/p/session/test_abc123"
		provider := &mockProvider{}
		provider.On("CreatePortalSession", mock.Anything, testCustomerID, testReturnURL).
			Return(&billing.PortalSessionRecord{ID: "bps_1", URL: portalURL}, nil)
		svc := newTestService(t, provider)

		session, ok := svc.CreatePortalSession(authedContext()).(billing.SessionResult)
		require.True(t, ok)
		assert.Equal(t, portalURL, session.URL)
		assert.Equal(t, testUserID, session.UserID)
	})

	t.Run("converts provider failure into error result", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		provider.On("CreatePortalSession", mock.Anything, testCustomerID, testReturnURL).
			Return(nil, &billing.ProviderError{Message: "invalid API key provided"})
		svc := newTestService(t, provider)

		errResult, ok := svc.CreatePortalSession(authedContext()).(billing.ErrorResult)
		require.True(t, ok)
		assert.Equal(t, billing.ErrorCreatePortalSession, errResult.Error)
		assert.Equal(t, "invalid API key provided", errResult.Message)
		assert.Equal(t, testUserID, errResult.UserID)
	})

	t.Run("converts customer resolution failure into error result", func(t *testing.T) {
		t.Parallel()
		provider := &mockProvider{}
		resolver := func(ctx context.Context, userID string) (string, error) {
			return "", errors.New("lookup store unavailable")
		}
		svc, err := billing.NewService(provider, resolver, testReturnURL)
		require.NoError(t, err)

		errResult, ok := svc.CreatePortalSession(authedContext()).(billing.ErrorResult)
		require.True(t, ok)
		assert.Equal(t, billing.ErrorCreatePortalSession, errResult.Error)
		assert.Equal(t, "lookup store unavailable", errResult.Message)
		assert.Equal(t, testUserID, errResult.UserID)
	})
}
