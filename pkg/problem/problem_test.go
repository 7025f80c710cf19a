package problem

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"
)

func TestNewAndWithErrors(t *testing.T) {
    fieldErrors := []FieldError{{Field: "name", Message: "required"}}
    p := New(http.StatusBadRequest, "bad-request", "Bad Request", "details").WithErrors(fieldErrors)

    if got, want := p.Type, BaseURI+"/bad-request"; got != want {
        t.Fatalf("unexpected type: got %q want %q", got, want)
    }
    if p.Status != http.StatusBadRequest {
        t.Fatalf("unexpected status: %d", p.Status)
    }
    if len(p.Errors) != 1 || p.Errors[0] != fieldErrors[0] {
        t.Fatalf("errors not set: %+v", p.Errors)
    }
}

func TestProblemWrite(t *testing.T) {
    resp := httptest.NewRecorder()
    p := BadRequest("invalid")
    p.Write(resp)

    if resp.Code != http.StatusBadRequest {
        t.Fatalf("unexpected status: %d", resp.Code)
    }
    if got := resp.Header().Get("Content-Type"); got != ContentType {
        t.Fatalf("missing content type: %s", got)
    }

    var decoded Problem
    if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
        t.Fatalf("failed to decode body: %v", err)
    }
    if decoded.Title != "Bad Request" || decoded.Detail != "invalid" {
        t.Fatalf("unexpected payload: %+v", decoded)
    }
}

func TestTooManyRequestsWritesRetryAfter(t *testing.T) {
	resp := httptest.NewRecorder()
	TooManyRequests("slow down", 90*time.Second+time.Millisecond).Write(resp)

	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if got := resp.Header().Get("Retry-After"); got != "91" {
		t.Fatalf("Retry-After = %q, want 91", got)
	}
	if strings.Contains(resp.Body.String(), "RetryAfter") {
		t.Fatalf("retry hint leaked into body: %s", resp.Body.String())
	}

	noHint := httptest.NewRecorder()
	TooManyRequests("slow down", 0).Write(noHint)
	if got := noHint.Header().Get("Retry-After"); got != "" {
		t.Fatalf("unexpected Retry-After %q", got)
	}
}

func TestUpstreamConstructors(t *testing.T) {
	tests := []struct {
		p    *Problem
		want int
	}{
		{Unauthorized("token expired"), http.StatusUnauthorized},
		{BadGateway("fitbit down"), http.StatusBadGateway},
		{ServiceUnavailable("llm off"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		if tt.p.Status != tt.want {
			t.Errorf("%s: status %d, want %d", tt.p.Title, tt.p.Status, tt.want)
		}
	}
}
