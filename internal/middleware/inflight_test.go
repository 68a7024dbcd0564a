package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestInFlightGuard_SerializesPerDish(t *testing.T) {
	gin.SetMode(gin.TestMode)

	guard := NewInFlightGuard()
	started := make(chan struct{})
	var startedOnce sync.Once
	release := make(chan struct{})

	router := gin.New()
	router.PATCH("/dishes/:dishID/picks", guard.Guard(), func(c *gin.Context) {
		startedOnce.Do(func() { close(started) })
		<-release
		c.Status(http.StatusOK)
	})

	var wg sync.WaitGroup
	wg.Add(1)

	first := httptest.NewRecorder()
	go func() {
		defer wg.Done()
		router.ServeHTTP(first, httptest.NewRequest(http.MethodPatch, "/dishes/abc/picks", nil))
	}()

	<-started

	// Second mutation for the same dish is rejected while the first runs.
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPatch, "/dishes/abc/picks", nil))
	assert.Equal(t, http.StatusConflict, second.Code)

	close(release)
	wg.Wait()
	assert.Equal(t, http.StatusOK, first.Code)

	// After completion the dish accepts mutations again.
	third := httptest.NewRecorder()
	router.ServeHTTP(third, httptest.NewRequest(http.MethodPatch, "/dishes/abc/picks", nil))
	assert.Equal(t, http.StatusOK, third.Code)
}

func TestInFlightGuard_IndependentDishes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	guard := NewInFlightGuard()
	release := make(chan struct{})

	router := gin.New()
	router.PATCH("/dishes/:dishID/picks", guard.Guard(), func(c *gin.Context) {
		if c.Param(DishIDParam) == "slow" {
			<-release
		}
		c.Status(http.StatusOK)
	})

	slow := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		router.ServeHTTP(slow, httptest.NewRequest(http.MethodPatch, "/dishes/slow/picks", nil))
		close(done)
	}()

	// Give the slow request time to acquire its marker.
	time.Sleep(10 * time.Millisecond)

	other := httptest.NewRecorder()
	router.ServeHTTP(other, httptest.NewRequest(http.MethodPatch, "/dishes/other/picks", nil))
	assert.Equal(t, http.StatusOK, other.Code)

	close(release)
	<-done
	assert.Equal(t, http.StatusOK, slow.Code)
}

func TestInFlightGuard_NoDishParamPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	guard := NewInFlightGuard()
	router := gin.New()
	router.POST("/dishes", guard.Guard(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/dishes", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}
