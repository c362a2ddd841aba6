package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/billingkit/pkg/requestid"
)

func serveWithMiddleware(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var captured string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = requestid.FromContext(r.Context())
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, captured
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates a UUID when header is absent", func(t *testing.T) {
		t.Parallel()
		rec, captured := serveWithMiddleware(t, httptest.NewRequest(http.MethodGet, "/", nil))

		echoed := rec.Header().Get(requestid.Header)
		require.NotEmpty(t, echoed)
		_, err := uuid.Parse(echoed)
		assert.NoError(t, err)
		assert.Equal(t, echoed, captured)
	})

	t.Run("honors a well-formed inbound id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "trace-abc_123")

		rec, captured := serveWithMiddleware(t, req)
		assert.Equal(t, "trace-abc_123", rec.Header().Get(requestid.Header))
		assert.Equal(t, "trace-abc_123", captured)
	})

	t.Run("replaces malformed or oversized ids", func(t *testing.T) {
		t.Parallel()
		for _, inbound := range []string{"bad id!", strings.Repeat("x", 129)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(requestid.Header, inbound)

			rec, _ := serveWithMiddleware(t, req)
			assert.NotEqual(t, inbound, rec.Header().Get(requestid.Header))
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(context.Background()))
}
