package api

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Common errors returned by the client.
var (
	// ErrNotFound indicates the named resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrAuthRequired indicates a missing or rejected API key.
	ErrAuthRequired = errors.New("authentication required")

	// ErrRateLimited indicates the server throttled the request.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrPlanLimit indicates a plan or quota ceiling was hit.
	ErrPlanLimit = errors.New("plan limit reached")

	// ErrAlreadyClaimed indicates the project already has an owner.
	ErrAlreadyClaimed = errors.New("project already claimed")

	// ErrValidation indicates the server rejected the request payload.
	ErrValidation = errors.New("validation failed")

	// ErrNetwork indicates a connectivity problem before any response.
	ErrNetwork = errors.New("network error communicating with shov")

	// ErrInvalidResponse indicates an unparsable API response.
	ErrInvalidResponse = errors.New("invalid response from shov")
)

// Reason is the machine-readable failure code carried in the server's
// error envelope under details.reason. Newer endpoints always set it;
// classification falls back to status codes and message substrings for
// the rest.
type Reason string

const (
	ReasonAuthRequired   Reason = "authentication_required"
	ReasonPlanLimit      Reason = "plan_limit_exceeded"
	ReasonAlreadyClaimed Reason = "already_claimed"
	ReasonNotFound       Reason = "not_found"
	ReasonValidation     Reason = "validation_failed"
	ReasonRateLimited    Reason = "rate_limited"
)

// Error is a classified failure response from the API.
type Error struct {
	StatusCode     int
	Reason         Reason
	Message        string
	RetryAfter     time.Duration  // populated on 429 when the server hints
	Details        map[string]any // raw details from the error envelope
	UpgradeMessage string
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("shov API error (status %d, reason %s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("shov API error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap maps the classified reason onto the matching sentinel so
// callers can test with errors.Is.
func (e *Error) Unwrap() error {
	switch e.Reason {
	case ReasonNotFound:
		return ErrNotFound
	case ReasonAuthRequired:
		return ErrAuthRequired
	case ReasonRateLimited:
		return ErrRateLimited
	case ReasonPlanLimit:
		return ErrPlanLimit
	case ReasonAlreadyClaimed:
		return ErrAlreadyClaimed
	case ReasonValidation:
		return ErrValidation
	}
	return nil
}

// Hint returns contextual guidance for the user, or "" when the error
// carries none. Reason codes are matched first; the documented message
// substrings are a fallback for endpoints that predate details.reason.
func (e *Error) Hint() string {
	switch e.Reason {
	case ReasonRateLimited:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("You are sending requests too quickly. Try again in %s.", humanizeWait(e.RetryAfter))
		}
		return "You are sending requests too quickly. Wait a moment and try again."
	case ReasonAuthRequired:
		return "Check your API key: run 'shov whoami' to see which credentials are in effect, or 'shov init <project> --key <apiKey>' to set them."
	case ReasonPlanLimit:
		return e.quotaHint()
	case ReasonAlreadyClaimed:
		return "This project has already been claimed by another account. Create a new project with 'shov new' instead."
	case ReasonNotFound:
		return "Names are case-sensitive: check the exact spelling of the project, key, or collection."
	case ReasonValidation:
		return e.validationHint()
	}
	if e.UpgradeMessage != "" {
		return e.UpgradeMessage
	}
	return ""
}

// quotaHint surfaces current usage alongside the upgrade pointer when
// the envelope includes them.
func (e *Error) quotaHint() string {
	current, haveCurrent := e.Details["current"]
	limit, haveLimit := e.Details["limit"]

	msg := "Your plan limit has been reached."
	if haveCurrent && haveLimit {
		msg = fmt.Sprintf("Your plan limit has been reached (%v of %v used).", current, limit)
	}
	if e.UpgradeMessage != "" {
		return msg + " " + e.UpgradeMessage
	}
	return msg + " Upgrade at https://shov.com/pricing to raise it."
}

// validationHint pattern-matches the known server message fragments to
// pick a specific hint. Fragile by nature; kept only for endpoints
// that do not emit a structured reason yet.
func (e *Error) validationHint() string {
	msg := strings.ToLower(e.Message)
	switch {
	case strings.Contains(msg, "alias") || strings.Contains(msg, "plus"):
		return "Email aliases (plus-addressing) are not accepted here; use the base address."
	case strings.Contains(msg, "disposable"):
		return "Disposable email providers are not accepted; use a permanent address."
	case strings.Contains(msg, "email"):
		return "That does not look like a valid email address."
	}
	return ""
}

// humanizeWait renders a retry delay the way a person would say it.
func humanizeWait(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d%time.Minute == 0 {
		m := int(d.Minutes())
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}

// IsNotFound reports whether the error indicates a missing resource.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404 || apiErr.Reason == ReasonNotFound
	}
	return false
}

// IsAuthError reports whether the error indicates rejected credentials.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrAuthRequired) {
		return true
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.Reason == ReasonAuthRequired
	}
	return false
}

// IsRateLimited reports whether the error indicates throttling.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429 || apiErr.Reason == ReasonRateLimited
	}
	return false
}

// IsPlanLimit reports whether the error indicates a quota ceiling.
func IsPlanLimit(err error) bool {
	if errors.Is(err, ErrPlanLimit) {
		return true
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Reason == ReasonPlanLimit
	}
	return false
}
