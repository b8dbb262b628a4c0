package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func limitedRequest(e *echo.Echo, h echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := echo.New()
	h := RateLimiter(ctx, 1, 3)(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, limitedRequest(e, h, "192.168.1.100").Code, "request %d", i)
	}

	rec := limitedRequest(e, h, "192.168.1.100")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_PerIP(t *testing.T) {
	store := newVisitorStore(1, 1)
	e := echo.New()
	h := rateLimit(store)(okHandler)

	assert.Equal(t, http.StatusOK, limitedRequest(e, h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, limitedRequest(e, h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, limitedRequest(e, h, "10.0.0.2").Code)
	assert.Equal(t, 2, store.size())
}

func TestVisitorStore_Evict(t *testing.T) {
	store := newVisitorStore(5, 10)
	now := time.Now()

	store.get("old", now.Add(-10*time.Minute))
	store.get("fresh", now)
	store.evict(now)

	assert.Equal(t, 1, store.size())
}

func TestGetIP(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, want: "203.0.113.7"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "198.51.100.4"}, want: "198.51.100.4"},
		{name: "peer", want: "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:4000"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getIP(e.NewContext(req, httptest.NewRecorder())))
		})
	}
}
