package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mysteryidea/ledgerd/internal/middleware"
	"golang.org/x/time/rate"
)

func TestRouter_Routes(t *testing.T) {
	handler := &Handler{}
	limiter := middleware.NewUserRateLimiter(rate.Inf, 1)
	router := NewRouter(handler, "testsecret", limiter)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/api/wallet", http.StatusUnauthorized},
		{"GET", "/api/wallet/activity", http.StatusUnauthorized},
		{"POST", "/api/wallet/withdrawals", http.StatusUnauthorized},
		{"POST", "/api/wallet/deposits", http.StatusUnauthorized},
		{"POST", "/api/payout/connect", http.StatusUnauthorized},
		{"POST", "/api/purchases/checkout", http.StatusUnauthorized},
		{"POST", "/api/purchases/wallet", http.StatusUnauthorized},
		{"GET", "/api/purchases", http.StatusUnauthorized},
		{"GET", "/api/purchases/1/verify", http.StatusUnauthorized},
		{"POST", "/api/webhooks/stripe", http.StatusBadRequest},
		{"POST", "/api/webhooks/identity", http.StatusBadRequest},
		{"GET", "/notfound", http.StatusNotFound},
		{"DELETE", "/api/wallet", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		resp := w.Result()
		if resp.StatusCode != tt.status {
			t.Errorf("%s %s: got %d, want %d", tt.method, tt.path, resp.StatusCode, tt.status)
		}
	}
}
