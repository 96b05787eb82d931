package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/crgw/accessibility-hub/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	perform := func(router *gin.Engine, target string) int {
		request := httptest.NewRequest(http.MethodGet, target, nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder.Code
	}

	t.Run("should reject requests above the burst", func(t *testing.T) {
		router := gin.New()
		router.Use(web.RateLimit(1, 2))
		router.GET("/:provider/hotel", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		assert.Equal(t, http.StatusOK, perform(router, "/serpapi/hotel"))
		assert.Equal(t, http.StatusOK, perform(router, "/serpapi/hotel"))
		assert.Equal(t, http.StatusTooManyRequests, perform(router, "/serpapi/hotel"))
	})

	t.Run("should keep providers in separate buckets", func(t *testing.T) {
		router := gin.New()
		router.Use(web.RateLimit(1, 1))
		router.GET("/:provider/hotel", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		assert.Equal(t, http.StatusOK, perform(router, "/serpapi/hotel"))
		assert.Equal(t, http.StatusTooManyRequests, perform(router, "/serpapi/hotel"))
		assert.Equal(t, http.StatusOK, perform(router, "/amadeus/hotel"))
	})
}
