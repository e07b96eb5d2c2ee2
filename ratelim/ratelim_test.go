package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestLimitBlocksBursts(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	newReq := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		r.RemoteAddr = "10.0.0.1:5000"
		return r
	}

	rec := httptest.NewRecorder()
	handler(rec, newReq(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}

	// burst is 1, so an immediate follow-up is throttled
	rec = httptest.NewRecorder()
	handler(rec, newReq(), nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}
}

func TestLimitIsPerVisitor(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	first := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	rec := httptest.NewRecorder()
	handler(rec, first, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("visitor A: expected 200, got %d", rec.Code)
	}

	other := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	rec = httptest.NewRecorder()
	handler(rec, other, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("visitor B must have its own bucket, got %d", rec.Code)
	}
}
