package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLog_GeneratesRequestID(t *testing.T) {
	handler := RequestLogMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("expected generated X-Request-Id header")
	}
}

func TestRequestLog_KeepsClientRequestID(t *testing.T) {
	handler := RequestLogMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "client-supplied-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-Id"); got != "client-supplied-id" {
		t.Errorf("expected client request ID echoed, got %q", got)
	}
	if rr.Code != http.StatusTeapot {
		t.Errorf("expected inner status preserved, got %d", rr.Code)
	}
}
