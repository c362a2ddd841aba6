// Package selfservice exposes the self-service billing endpoints: reading the
// caller's subscription status and opening a hosted billing portal session.
//
// Both endpoints always answer HTTP 200 with a JSON body — failures travel as
// data in the payload, never as transport-level status codes. Consumers
// switch on the payload's "kind" field.
package selfservice

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/billingkit/pkg/billing"
	"github.com/dmitrymomot/billingkit/pkg/logger"
)

// Module serves the self-service billing HTTP surface.
type Module struct {
	svc     billing.Service
	log     *slog.Logger
	timeout time.Duration
}

// Option configures the module.
type Option func(*Module)

// WithLogger enables diagnostic logging of error results. Logging stays an
// HTTP-layer concern; the billing core itself never logs.
func WithLogger(log *slog.Logger) Option {
	return func(m *Module) { m.log = log }
}

// WithRequestTimeout bounds each request's wall-clock budget, including the
// provider call.
func WithRequestTimeout(d time.Duration) Option {
	return func(m *Module) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// New creates the module. Panics on a nil service to fail fast during wiring.
func New(svc billing.Service, opts ...Option) *Module {
	if svc == nil {
		panic("selfservice: billing.Service is required")
	}
	m := &Module{svc: svc}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Router returns the module's routes, ready to be mounted:
//
//	r.Mount("/billing", selfservice.New(svc).Router())
func (m *Module) Router() chi.Router {
	r := chi.NewRouter()
	if m.timeout > 0 {
		r.Use(RequestBudget(m.timeout))
	}
	r.Get("/subscription", m.handleSubscriptionStatus)
	r.Post("/portal", m.handlePortalSession)
	return r
}

func (m *Module) handleSubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	m.respond(w, r, m.svc.ResolveStatus(r.Context()))
}

func (m *Module) handlePortalSession(w http.ResponseWriter, r *http.Request) {
	m.respond(w, r, m.svc.CreatePortalSession(r.Context()))
}

func (m *Module) respond(w http.ResponseWriter, r *http.Request, result billing.Result) {
	if m.log != nil {
		if errResult, ok := result.(billing.ErrorResult); ok {
			m.log.ErrorContext(r.Context(), "billing operation failed",
				slog.String("category", errResult.Error),
				slog.String("detail", errResult.Message),
				logger.UserID(errResult.UserID),
			)
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil && m.log != nil {
		m.log.ErrorContext(r.Context(), "failed to encode response", logger.Error(err))
	}
}
