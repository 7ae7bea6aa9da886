package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func okRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func doGet(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequestID_GeneratesID(t *testing.T) {
	r := okRouter(RequestID())

	first := doGet(r, nil)
	second := doGet(r, nil)

	assert.NotEmpty(t, first.Header().Get(RequestIDHeader))
	assert.NotEqual(t, first.Header().Get(RequestIDHeader), second.Header().Get(RequestIDHeader))
}

func TestRequestID_HonoursClientID(t *testing.T) {
	r := okRouter(RequestID())

	rec := doGet(r, map[string]string{RequestIDHeader: "trace-me"})

	assert.Equal(t, "trace-me", rec.Header().Get(RequestIDHeader))
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	r := okRouter(RateLimiter(100))

	for i := 0; i < 5; i++ {
		rec := doGet(r, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_RejectsBurst(t *testing.T) {
	r := okRouter(RateLimiter(2))

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		codes = append(codes, doGet(r, nil).Code)
	}

	assert.Contains(t, codes, http.StatusTooManyRequests)
	assert.Equal(t, http.StatusOK, codes[0])
}
