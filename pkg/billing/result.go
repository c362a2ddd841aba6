package billing

import (
	"encoding/json"
	"time"
)

// Kind discriminates the result variants on the wire. Consumers should switch
// on it instead of probing for field presence.
type Kind string

const (
	KindStatus         Kind = "status"
	KindNoSubscription Kind = "no_subscription"
	KindSession        Kind = "session"
	KindError          Kind = "error"
)

// Error categories reported in ErrorResult.Error. These are stable,
// machine-checkable strings; human-readable diagnostics go into Message.
const (
	ErrorNotAuthenticated    = "Not authenticated"
	ErrorFetchStatus         = "Failed to fetch subscription status"
	ErrorCreatePortalSession = "Failed to create billing portal session"
)

// StatusNoSubscription is the sentinel status reported when the customer has
// zero subscriptions. It is a valid terminal state, not an error.
const StatusNoSubscription = "No subscription"

// DefaultPlanName is reported when the provider supplies no plan nickname.
const DefaultPlanName = "Default Plan"

// Result is one of StatusResult, NoSubscriptionResult, SessionResult or
// ErrorResult. Every variant is a plain JSON-serializable value; operations
// never report failure through any other channel.
type Result interface {
	ResultKind() Kind
}

// timestampLayout renders instants with millisecond precision in UTC,
// e.g. 2023-11-14T22:13:20.000Z.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is an absolute instant marshalled as an ISO-8601 string with
// millisecond precision.
type Timestamp time.Time

// NewTimestamp builds a Timestamp from a unix timestamp in seconds.
func NewTimestamp(sec int64) Timestamp {
	return Timestamp(time.Unix(sec, 0).UTC())
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(timestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// StatusResult is the normalized subscription status contract. It is built
// fresh from the customer's most recent subscription on every request and
// never cached.
type StatusResult struct {
	Kind              Kind       `json:"kind"`
	Status            string     `json:"status"`
	PlanName          string     `json:"planName"`
	CurrentPeriodEnd  *Timestamp `json:"currentPeriodEnd"` // null when the provider omits it
	CancelAtPeriodEnd bool       `json:"cancelAtPeriodEnd"`
	UserID            string     `json:"userId"`
}

func (StatusResult) ResultKind() Kind { return KindStatus }

// NoSubscriptionResult reports that the customer has zero subscriptions.
type NoSubscriptionResult struct {
	Kind   Kind   `json:"kind"`
	Status string `json:"status"`
	UserID string `json:"userId"`
}

func (NoSubscriptionResult) ResultKind() Kind { return KindNoSubscription }

// SessionResult carries a single-use, provider-issued billing portal URL.
// The URL is time-boxed by the provider; issued sessions are not tracked here.
type SessionResult struct {
	Kind   Kind   `json:"kind"`
	URL    string `json:"url"`
	UserID string `json:"userId"`
}

func (SessionResult) ResultKind() Kind { return KindSession }

// ErrorResult reports a failure as data. UserID is present whenever identity
// was resolved before the failure; the unauthenticated path is the only one
// that omits it.
type ErrorResult struct {
	Kind    Kind   `json:"kind"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	UserID  string `json:"userId,omitempty"`
}

func (ErrorResult) ResultKind() Kind { return KindError }

func notAuthenticated() ErrorResult {
	return ErrorResult{Kind: KindError, Error: ErrorNotAuthenticated}
}

func operationError(category, userID string, err error) ErrorResult {
	return ErrorResult{
		Kind:    KindError,
		Error:   category,
		Message: errorDetail(err),
		UserID:  userID,
	}
}

func noSubscription(userID string) NoSubscriptionResult {
	return NoSubscriptionResult{
		Kind:   KindNoSubscription,
		Status: StatusNoSubscription,
		UserID: userID,
	}
}
