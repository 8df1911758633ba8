package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func newTestServer(limiter *rate.Limiter) *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: limiter,
	}
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddlewareVariants(t *testing.T) {
	const validID = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"generates when missing", "", false},
		{"keeps valid uuid", validID, true},
		{"replaces invalid id", "invalid-not-a-uuid", false},
	}

	s := newTestServer(rate.NewLimiter(100, 200))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				captured = RequestID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/key", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if _, err := uuid.Parse(captured); err != nil {
				t.Fatalf("expected valid UUID, got %q", captured)
			}
			if (captured == tt.header) != tt.wantSame {
				t.Errorf("captured %q, header %q, wantSame %v", captured, tt.header, tt.wantSame)
			}
			if rec.Header().Get("X-Request-Id") != captured {
				t.Errorf("X-Request-Id header %q does not match context %q",
					rec.Header().Get("X-Request-Id"), captured)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	var captured string
	handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = APIVersion(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/key", nil)
	req.Header.Set("Accept", "application/vnd.nvidia.verkey.v1+json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if captured != "v1" {
		t.Errorf("expected v1 in context, got %q", captured)
	}
	if rec.Header().Get("X-API-Version") != "v1" {
		t.Errorf("expected X-API-Version v1, got %q", rec.Header().Get("X-API-Version"))
	}
}

func TestContextHelpersDefaults(t *testing.T) {
	ctx := context.Background()
	if got := RequestID(ctx); got != "" {
		t.Errorf("RequestID() = %q, want empty", got)
	}
	if got := APIVersion(ctx); got != DefaultAPIVersion {
		t.Errorf("APIVersion() = %q, want %q", got, DefaultAPIVersion)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows and sets headers", func(t *testing.T) {
		s := newTestServer(rate.NewLimiter(100, 200))
		rec := httptest.NewRecorder()
		s.rateLimitMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/v1/key", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
		for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
			if rec.Header().Get(h) == "" {
				t.Errorf("expected %s header", h)
			}
		}
	})

	t.Run("rejects when exhausted", func(t *testing.T) {
		s := newTestServer(rate.NewLimiter(0, 0))
		called := false
		handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/key", nil))

		if called {
			t.Error("handler should not be called when rate limited")
		}
		if rec.Code != http.StatusTooManyRequests {
			t.Errorf("expected status 429, got %d", rec.Code)
		}
		if rec.Header().Get("Retry-After") == "" {
			t.Error("expected Retry-After header when rate limited")
		}

		var resp ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if resp.Code != "RATE_LIMIT_EXCEEDED" || !resp.Retryable {
			t.Errorf("unexpected error response %+v", resp)
		}
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	t.Run("recovers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
			panic("test panic")
		})(rec, httptest.NewRequest(http.MethodGet, "/v1/key", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", rec.Code)
		}
	})

	t.Run("passes normal requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.panicRecoveryMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/v1/key", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})
}

func TestLoggingMiddlewarePreservesStatus(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusBadRequest, http.StatusNotFound} {
		handler := s.requestIDMiddleware(s.loggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/key", nil))

		if rec.Code != status {
			t.Errorf("expected status %d, got %d", status, rec.Code)
		}
	}
}

func TestMiddlewareChain(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	var requestID, apiVersion string
	handler := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		requestID = RequestID(r.Context())
		apiVersion = APIVersion(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/key", nil))

	if requestID == "" || apiVersion == "" {
		t.Errorf("expected request ID and API version in context, got %q %q", requestID, apiVersion)
	}
	for _, header := range []string{
		"X-Request-Id",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"X-API-Version",
	} {
		if rec.Header().Get(header) == "" {
			t.Errorf("expected header %s to be set", header)
		}
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Status() != http.StatusOK {
		t.Errorf("expected default status 200, got %d", rw.Status())
	}

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusTeapot) // ignored

	if _, err := rw.Write([]byte("ok")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if rw.Status() != http.StatusAccepted || rec.Code != http.StatusAccepted {
		t.Errorf("expected 202, got wrapper %d recorder %d", rw.Status(), rec.Code)
	}
	if rw.Unwrap() != rec {
		t.Error("Unwrap should return the wrapped writer")
	}
}
