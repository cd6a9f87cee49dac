package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

// newTestClient wires a client to an in-process server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New("demo-app", "shov_live_abc123",
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
	)
}

func TestDoSendsStandardHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotUserAgent string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	if err := c.Set(context.Background(), "greeting", json.RawMessage(`"hello"`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if gotAuth != "Bearer shov_live_abc123" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotUserAgent != "shov-cli" {
		t.Errorf("User-Agent = %q, want shov-cli", gotUserAgent)
	}
}

func TestDoOmitsAuthWithoutKey(t *testing.T) {
	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"project": "quiet-meadow-1234",
			"apiKey":  "shov_live_fresh",
		})
	}))
	defer server.Close()

	c := New("", "", WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	resp, err := c.CreateProject(context.Background(), "", "")
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if sawAuth {
		t.Error("anonymous bootstrap sent an Authorization header")
	}
	if resp.Project != "quiet-meadow-1234" || resp.APIKey != "shov_live_fresh" {
		t.Errorf("CreateProject() = %+v, want generated project and key", resp)
	}
}

func TestNewHonorsEnvBaseURL(t *testing.T) {
	orig := os.Getenv(EnvBaseURL)
	defer os.Setenv(EnvBaseURL, orig)

	os.Setenv(EnvBaseURL, "http://localhost:4444/")
	c := New("demo-app", "k")
	if c.baseURL != "http://localhost:4444" {
		t.Errorf("baseURL = %q, want env override without trailing slash", c.baseURL)
	}

	// An explicit option still wins over the environment.
	c = New("demo-app", "k", WithBaseURL("http://localhost:5555"))
	if c.baseURL != "http://localhost:5555" {
		t.Errorf("baseURL = %q, want option override", c.baseURL)
	}
}

func TestClassifyReasonCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error": "project limit reached",
			"details": map[string]any{
				"reason":  "plan_limit_exceeded",
				"current": 3,
				"limit":   3,
			},
			"upgradeMessage": "Upgrade to Pro for more projects.",
		})
	})

	_, err := c.CreateProject(context.Background(), "fourth", "")
	if err == nil {
		t.Fatal("CreateProject() expected error")
	}
	if !IsPlanLimit(err) {
		t.Errorf("IsPlanLimit() = false, want true for %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T is not *Error", err)
	}
	if apiErr.Reason != ReasonPlanLimit {
		t.Errorf("Reason = %q, want %q", apiErr.Reason, ReasonPlanLimit)
	}
	hint := apiErr.Hint()
	if !strings.Contains(hint, "3 of 3") {
		t.Errorf("Hint() = %q, want usage figures", hint)
	}
	if !strings.Contains(hint, "Upgrade to Pro") {
		t.Errorf("Hint() = %q, want upgrade message", hint)
	}
}

func TestClassifyStatusFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such key", http.StatusNotFound)
	})

	_, err := c.Get(context.Background(), "Missing")
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound() = false for %v", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false for %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T is not *Error", err)
	}
	if apiErr.Reason != ReasonNotFound {
		t.Errorf("Reason = %q, want fallback %q", apiErr.Reason, ReasonNotFound)
	}
	if !strings.Contains(apiErr.Hint(), "case-sensitive") {
		t.Errorf("Hint() = %q, want case-sensitivity guidance", apiErr.Hint())
	}
}

func TestClassifyRateLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error":   "slow down",
			"details": map[string]any{"reason": "rate_limited"},
		})
	})

	err := c.Set(context.Background(), "k", json.RawMessage(`1`))
	if !IsRateLimited(err) {
		t.Fatalf("IsRateLimited() = false for %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T is not *Error", err)
	}
	if apiErr.RetryAfter != 2*time.Minute {
		t.Errorf("RetryAfter = %v, want 2m", apiErr.RetryAfter)
	}
	if !strings.Contains(apiErr.Hint(), "2 minutes") {
		t.Errorf("Hint() = %q, want humanized wait", apiErr.Hint())
	}
}

func TestValidationHints(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"alias rejected", "email aliases are not allowed", "plus-addressing"},
		{"plus addressing", "plus addressing detected", "plus-addressing"},
		{"disposable domain", "disposable email providers are blocked", "permanent address"},
		{"malformed email", "invalid email format", "valid email"},
		{"unrelated", "value too large", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := &Error{
				StatusCode: http.StatusBadRequest,
				Reason:     ReasonValidation,
				Message:    tt.message,
			}
			hint := apiErr.Hint()
			if tt.want == "" {
				if hint != "" {
					t.Errorf("Hint() = %q, want none", hint)
				}
				return
			}
			if !strings.Contains(hint, tt.want) {
				t.Errorf("Hint() = %q, want substring %q", hint, tt.want)
			}
		})
	}
}

func TestHumanizeWait(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30 seconds"},
		{time.Minute, "1 minute"},
		{2 * time.Minute, "2 minutes"},
		{90 * time.Second, "1m 30s"},
	}
	for _, tt := range tests {
		if got := humanizeWait(tt.d); got != tt.want {
			t.Errorf("humanizeWait(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("90"); got != 90*time.Second {
		t.Errorf("parseRetryAfter(90) = %v, want 90s", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Errorf("parseRetryAfter(empty) = %v, want 0", got)
	}
	future := time.Now().Add(5 * time.Minute).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(future); got < 4*time.Minute || got > 5*time.Minute {
		t.Errorf("parseRetryAfter(date) = %v, want about 5m", got)
	}
}

func TestDoNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New("demo-app", "k", WithBaseURL(server.URL))
	err := c.Set(context.Background(), "k", json.RawMessage(`1`))
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Set() against closed server = %v, want ErrNetwork", err)
	}
}

func TestProjectPathEscaping(t *testing.T) {
	c := New("my app", "k")
	if got := c.projectPath("forget", "a/b"); got != "/api/forget/my%20app/a%2Fb" {
		t.Errorf("projectPath() = %q", got)
	}
}
